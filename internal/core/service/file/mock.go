package file

import (
	"context"
	"io"
	"time"

	"deep-vault/internal/core/domain"
	"deep-vault/internal/core/port"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockFileService is a mock implementation of FileService
type MockFileService struct {
	mock.Mock
}

// NewMockFileService creates a new MockFileService
func NewMockFileService() *MockFileService {
	return &MockFileService{}
}

func (m *MockFileService) Upload(ctx context.Context, ownerID uuid.UUID, content []byte, name string, category domain.Category, tagIDs []uuid.UUID, actx domain.AccessContext) (*domain.FileRecord, error) {
	args := m.Called(ctx, ownerID, content, name, category, tagIDs, actx)
	return args.Get(0).(*domain.FileRecord), args.Error(1)
}

func (m *MockFileService) CheckExists(ctx context.Context, ownerID uuid.UUID, contentHash string) (bool, *domain.FileRecord, error) {
	args := m.Called(ctx, ownerID, contentHash)
	return args.Bool(0), args.Get(1).(*domain.FileRecord), args.Error(2)
}

func (m *MockFileService) Get(ctx context.Context, callerID, fileID uuid.UUID) (*domain.FileDetail, error) {
	args := m.Called(ctx, callerID, fileID)
	return args.Get(0).(*domain.FileDetail), args.Error(1)
}

func (m *MockFileService) List(ctx context.Context, ownerID uuid.UUID, filter port.FileListFilter) ([]domain.FileRecord, int64, error) {
	args := m.Called(ctx, ownerID, filter)
	return args.Get(0).([]domain.FileRecord), args.Get(1).(int64), args.Error(2)
}

func (m *MockFileService) Rename(ctx context.Context, ownerID, fileID uuid.UUID, newName string) (*domain.FileRecord, error) {
	args := m.Called(ctx, ownerID, fileID, newName)
	return args.Get(0).(*domain.FileRecord), args.Error(1)
}

func (m *MockFileService) Download(ctx context.Context, callerID, fileID uuid.UUID, actx domain.AccessContext) (io.ReadCloser, *domain.FileRecord, error) {
	args := m.Called(ctx, callerID, fileID, actx)
	return args.Get(0).(io.ReadCloser), args.Get(1).(*domain.FileRecord), args.Error(2)
}

func (m *MockFileService) PreviewURL(ctx context.Context, callerID, fileID uuid.UUID, expiry time.Duration, actx domain.AccessContext) (*domain.PreviewGrant, error) {
	args := m.Called(ctx, callerID, fileID, expiry, actx)
	return args.Get(0).(*domain.PreviewGrant), args.Error(1)
}
