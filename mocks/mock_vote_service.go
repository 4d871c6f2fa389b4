package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"voterkyc/internal/domain"
	"voterkyc/internal/service"
)

// MockVoteService is a mock implementation of service.VoteService.
type MockVoteService struct {
	mock.Mock
}

func (m *MockVoteService) Cast(ctx context.Context, userID uuid.UUID, input service.CastVoteInput) (*domain.Vote, error) {
	args := m.Called(ctx, userID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vote), args.Error(1)
}

func (m *MockVoteService) HasVoted(ctx context.Context, userID uuid.UUID) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockVoteService) Results(ctx context.Context) ([]domain.CandidateTally, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CandidateTally), args.Error(1)
}
