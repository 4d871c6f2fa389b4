package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"voterkyc/internal/service"
)

// MockKYCService is a mock implementation of service.KYCService.
type MockKYCService struct {
	mock.Mock
}

func (m *MockKYCService) Preview(ctx context.Context, raw []byte) (*service.KYCPreview, error) {
	args := m.Called(ctx, raw)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.KYCPreview), args.Error(1)
}

func (m *MockKYCService) Verify(ctx context.Context, userID uuid.UUID, raw []byte) (*service.KYCVerification, error) {
	args := m.Called(ctx, userID, raw)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.KYCVerification), args.Error(1)
}
