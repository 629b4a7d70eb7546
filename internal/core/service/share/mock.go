package share

import (
	"context"

	"deep-vault/internal/core/domain"
	"deep-vault/internal/core/port"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockShareService is a mock implementation of ShareService
type MockShareService struct {
	mock.Mock
}

// NewMockShareService creates a new MockShareService
func NewMockShareService() *MockShareService {
	return &MockShareService{}
}

func (m *MockShareService) Create(ctx context.Context, ownerID uuid.UUID, params port.CreateShareParams) (*domain.FileShare, error) {
	args := m.Called(ctx, ownerID, params)
	return args.Get(0).(*domain.FileShare), args.Error(1)
}

func (m *MockShareService) Cancel(ctx context.Context, callerID, shareID uuid.UUID) error {
	args := m.Called(ctx, callerID, shareID)
	return args.Error(0)
}

func (m *MockShareService) CheckAccess(ctx context.Context, callerID, fileID uuid.UUID) (*domain.FileShare, error) {
	args := m.Called(ctx, callerID, fileID)
	return args.Get(0).(*domain.FileShare), args.Error(1)
}

func (m *MockShareService) ListOutgoing(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]domain.FileShare, error) {
	args := m.Called(ctx, ownerID, limit, offset)
	return args.Get(0).([]domain.FileShare), args.Error(1)
}

func (m *MockShareService) ListIncoming(ctx context.Context, principalID uuid.UUID, limit, offset int) ([]domain.FileShare, error) {
	args := m.Called(ctx, principalID, limit, offset)
	return args.Get(0).([]domain.FileShare), args.Error(1)
}

func (m *MockShareService) Detail(ctx context.Context, callerID, shareID uuid.UUID) (*domain.FileShare, error) {
	args := m.Called(ctx, callerID, shareID)
	return args.Get(0).(*domain.FileShare), args.Error(1)
}
