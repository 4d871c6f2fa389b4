package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"voterkyc/internal/domain"
)

// MockVoteRepo is a mock implementation of port.VoteRepository.
type MockVoteRepo struct {
	mock.Mock
}

func (m *MockVoteRepo) Cast(ctx context.Context, vote *domain.Vote) error {
	args := m.Called(ctx, vote)
	return args.Error(0)
}

func (m *MockVoteRepo) GetByUser(ctx context.Context, userID uuid.UUID) (*domain.Vote, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vote), args.Error(1)
}

func (m *MockVoteRepo) Tally(ctx context.Context) ([]domain.CandidateTally, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CandidateTally), args.Error(1)
}
