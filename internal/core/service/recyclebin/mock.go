package recyclebin

import (
	"context"

	"deep-vault/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockRecycleBinService is a mock implementation of RecycleBinService
type MockRecycleBinService struct {
	mock.Mock
}

// NewMockRecycleBinService creates a new MockRecycleBinService
func NewMockRecycleBinService() *MockRecycleBinService {
	return &MockRecycleBinService{}
}

func (m *MockRecycleBinService) Trash(ctx context.Context, ownerID, fileID uuid.UUID) error {
	args := m.Called(ctx, ownerID, fileID)
	return args.Error(0)
}

func (m *MockRecycleBinService) TrashBatch(ctx context.Context, ownerID uuid.UUID, fileIDs []uuid.UUID) (domain.BatchResult, error) {
	args := m.Called(ctx, ownerID, fileIDs)
	return args.Get(0).(domain.BatchResult), args.Error(1)
}

func (m *MockRecycleBinService) Restore(ctx context.Context, ownerID, fileID uuid.UUID) error {
	args := m.Called(ctx, ownerID, fileID)
	return args.Error(0)
}

func (m *MockRecycleBinService) RestoreBatch(ctx context.Context, ownerID uuid.UUID, fileIDs []uuid.UUID) (domain.BatchResult, error) {
	args := m.Called(ctx, ownerID, fileIDs)
	return args.Get(0).(domain.BatchResult), args.Error(1)
}

func (m *MockRecycleBinService) ListTrash(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]domain.FileRecord, error) {
	args := m.Called(ctx, ownerID, limit, offset)
	return args.Get(0).([]domain.FileRecord), args.Error(1)
}

func (m *MockRecycleBinService) Stats(ctx context.Context, ownerID uuid.UUID) (*domain.TrashStats, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).(*domain.TrashStats), args.Error(1)
}

func (m *MockRecycleBinService) PermanentDelete(ctx context.Context, ownerID, fileID uuid.UUID) error {
	args := m.Called(ctx, ownerID, fileID)
	return args.Error(0)
}

func (m *MockRecycleBinService) PermanentDeleteBatch(ctx context.Context, ownerID uuid.UUID, fileIDs []uuid.UUID) (domain.BatchResult, error) {
	args := m.Called(ctx, ownerID, fileIDs)
	return args.Get(0).(domain.BatchResult), args.Error(1)
}

func (m *MockRecycleBinService) EmptyRecycleBin(ctx context.Context, ownerID uuid.UUID) (domain.BatchResult, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).(domain.BatchResult), args.Error(1)
}
