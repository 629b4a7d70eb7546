package tag

import (
	"context"

	"deep-vault/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockTagService is a mock implementation of TagService
type MockTagService struct {
	mock.Mock
}

// NewMockTagService creates a new MockTagService
func NewMockTagService() *MockTagService {
	return &MockTagService{}
}

func (m *MockTagService) Create(ctx context.Context, ownerID uuid.UUID, name, color string) (*domain.Tag, error) {
	args := m.Called(ctx, ownerID, name, color)
	return args.Get(0).(*domain.Tag), args.Error(1)
}

func (m *MockTagService) Update(ctx context.Context, ownerID, tagID uuid.UUID, name, color string) (*domain.Tag, error) {
	args := m.Called(ctx, ownerID, tagID, name, color)
	return args.Get(0).(*domain.Tag), args.Error(1)
}

func (m *MockTagService) Delete(ctx context.Context, ownerID, tagID uuid.UUID) error {
	args := m.Called(ctx, ownerID, tagID)
	return args.Error(0)
}

func (m *MockTagService) List(ctx context.Context, ownerID uuid.UUID) ([]domain.Tag, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]domain.Tag), args.Error(1)
}

func (m *MockTagService) SetFileTags(ctx context.Context, ownerID, fileID uuid.UUID, tagIDs []uuid.UUID) ([]uuid.UUID, error) {
	args := m.Called(ctx, ownerID, fileID, tagIDs)
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

func (m *MockTagService) RemoveFileTag(ctx context.Context, ownerID, fileID, tagID uuid.UUID) error {
	args := m.Called(ctx, ownerID, fileID, tagID)
	return args.Error(0)
}

func (m *MockTagService) GetFileTags(ctx context.Context, callerID, fileID uuid.UUID) ([]domain.Tag, error) {
	args := m.Called(ctx, callerID, fileID)
	return args.Get(0).([]domain.Tag), args.Error(1)
}
