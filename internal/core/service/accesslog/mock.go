package accesslog

import (
	"context"

	"deep-vault/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockAccessLogService is a mock implementation of AccessLogService
type MockAccessLogService struct {
	mock.Mock
}

// NewMockAccessLogService creates a new MockAccessLogService
func NewMockAccessLogService() *MockAccessLogService {
	return &MockAccessLogService{}
}

func (m *MockAccessLogService) Record(ctx context.Context, entry domain.AccessLogEntry) {
	m.Called(ctx, entry)
}

func (m *MockAccessLogService) ListForFile(ctx context.Context, ownerID, fileID uuid.UUID, limit, offset int) ([]domain.AccessLogEntry, error) {
	args := m.Called(ctx, ownerID, fileID, limit, offset)
	return args.Get(0).([]domain.AccessLogEntry), args.Error(1)
}

func (m *MockAccessLogService) Statistics(ctx context.Context, ownerID uuid.UUID) (*domain.OwnerStatistics, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).(*domain.OwnerStatistics), args.Error(1)
}
