package file_test

import (
	"context"
	"testing"
	"time"

	"deep-vault/internal/adapters/repository"
	"deep-vault/internal/adapters/storage"
	"deep-vault/internal/config"
	"deep-vault/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func previewConfig() config.FileUploadConfig {
	return config.FileUploadConfig{
		MaxFileSize:          1024,
		DefaultPreviewExpiry: time.Hour,
		MinPreviewExpiry:     60 * time.Second,
	}
}

func TestPreviewURL_Owner_DefaultExpiry(t *testing.T) {
	//Arrange
	uow := repository.NewMockUnitOfWork()
	store := storage.NewMockStorage()
	svc := newService(uow, store, previewConfig())
	ctx := context.Background()
	ownerID := uuid.New()
	record := &domain.FileRecord{ID: uuid.New(), OwnerID: ownerID, StorageKey: "k", Status: domain.FileStatusCompleted}

	uow.On("Execute", ctx, mock.Anything).Return(nil)
	uow.GetFileRepoMock().On("FindByID", ctx, record.ID).Return(record, nil)
	uow.GetAccessLogRepoMock().On("Create", ctx, mock.Anything).Return(nil)
	store.On("PresignedDownloadURL", ctx, "k", time.Hour).Return("https://signed.example/k", nil)

	//Act
	grant, err := svc.PreviewURL(ctx, ownerID, record.ID, 0, domain.AccessContext{})

	//Assert
	require.NoError(t, err)
	assert.Equal(t, "https://signed.example/k", grant.URL)
	assert.Equal(t, time.Hour, grant.ExpiresIn)
	store.AssertExpectations(t)
}

func TestPreviewURL_Share_ClampedToRemainingWindow(t *testing.T) {
	//Arrange
	uow := repository.NewMockUnitOfWork()
	store := storage.NewMockStorage()
	svc := newService(uow, store, previewConfig())
	ctx := context.Background()
	callerID := uuid.New()
	expires := time.Now().Add(10 * time.Minute)
	record := &domain.FileRecord{ID: uuid.New(), OwnerID: uuid.New(), StorageKey: "k", Status: domain.FileStatusCompleted}
	share := &domain.FileShare{ID: uuid.New(), FileID: record.ID, ToPrincipalID: callerID, ExpiresAt: &expires}

	uow.On("Execute", ctx, mock.Anything).Return(nil)
	uow.GetFileRepoMock().On("FindByID", ctx, record.ID).Return(record, nil)
	uow.GetShareRepoMock().On("FindActiveByFileAndPrincipal", ctx, record.ID, callerID).Return(share, nil)
	uow.GetShareRepoMock().On("IncrementViewCount", ctx, share.ID).Return(nil)
	uow.GetAccessLogRepoMock().On("Create", ctx, mock.Anything).Return(nil)
	store.On("PresignedDownloadURL", ctx, "k", mock.Anything).Return("https://signed.example/k", nil)

	//Act
	grant, err := svc.PreviewURL(ctx, callerID, record.ID, time.Hour, domain.AccessContext{})

	//Assert
	require.NoError(t, err)
	assert.LessOrEqual(t, grant.ExpiresIn, 10*time.Minute)
	assert.Greater(t, grant.ExpiresIn, 9*time.Minute)
	uow.GetShareRepoMock().AssertExpectations(t)
}

func TestPreviewURL_Share_FloorOnAlmostExpired(t *testing.T) {
	//Arrange
	uow := repository.NewMockUnitOfWork()
	store := storage.NewMockStorage()
	svc := newService(uow, store, previewConfig())
	ctx := context.Background()
	callerID := uuid.New()
	expires := time.Now().Add(10 * time.Second)
	record := &domain.FileRecord{ID: uuid.New(), OwnerID: uuid.New(), StorageKey: "k", Status: domain.FileStatusCompleted}
	share := &domain.FileShare{ID: uuid.New(), FileID: record.ID, ToPrincipalID: callerID, ExpiresAt: &expires}

	uow.On("Execute", ctx, mock.Anything).Return(nil)
	uow.GetFileRepoMock().On("FindByID", ctx, record.ID).Return(record, nil)
	uow.GetShareRepoMock().On("FindActiveByFileAndPrincipal", ctx, record.ID, callerID).Return(share, nil)
	uow.GetShareRepoMock().On("IncrementViewCount", ctx, share.ID).Return(nil)
	uow.GetAccessLogRepoMock().On("Create", ctx, mock.Anything).Return(nil)
	store.On("PresignedDownloadURL", ctx, "k", 60*time.Second).Return("https://signed.example/k", nil)

	//Act
	grant, err := svc.PreviewURL(ctx, callerID, record.ID, time.Hour, domain.AccessContext{})

	//Assert
	require.NoError(t, err)
	assert.Equal(t, 60*time.Second, grant.ExpiresIn)
	store.AssertExpectations(t)
}

func TestPreviewURL_Owner_ShortExpiry_Unclamped(t *testing.T) {
	//Arrange
	uow := repository.NewMockUnitOfWork()
	store := storage.NewMockStorage()
	svc := newService(uow, store, previewConfig())
	ctx := context.Background()
	ownerID := uuid.New()
	record := &domain.FileRecord{ID: uuid.New(), OwnerID: ownerID, StorageKey: "k", Status: domain.FileStatusCompleted}

	uow.On("Execute", ctx, mock.Anything).Return(nil)
	uow.GetFileRepoMock().On("FindByID", ctx, record.ID).Return(record, nil)
	uow.GetAccessLogRepoMock().On("Create", ctx, mock.Anything).Return(nil)
	store.On("PresignedDownloadURL", ctx, "k", 30*time.Second).Return("https://signed.example/k", nil)

	//Act
	grant, err := svc.PreviewURL(ctx, ownerID, record.ID, 30*time.Second, domain.AccessContext{})

	//Assert
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, grant.ExpiresIn)
	store.AssertExpectations(t)
}

func TestPreviewURL_Share_RequestInsideWindow_Unclamped(t *testing.T) {
	//Arrange
	uow := repository.NewMockUnitOfWork()
	store := storage.NewMockStorage()
	svc := newService(uow, store, previewConfig())
	ctx := context.Background()
	callerID := uuid.New()
	expires := time.Now().Add(90 * time.Second)
	record := &domain.FileRecord{ID: uuid.New(), OwnerID: uuid.New(), StorageKey: "k", Status: domain.FileStatusCompleted}
	share := &domain.FileShare{ID: uuid.New(), FileID: record.ID, ToPrincipalID: callerID, ExpiresAt: &expires}

	uow.On("Execute", ctx, mock.Anything).Return(nil)
	uow.GetFileRepoMock().On("FindByID", ctx, record.ID).Return(record, nil)
	uow.GetShareRepoMock().On("FindActiveByFileAndPrincipal", ctx, record.ID, callerID).Return(share, nil)
	uow.GetShareRepoMock().On("IncrementViewCount", ctx, share.ID).Return(nil)
	uow.GetAccessLogRepoMock().On("Create", ctx, mock.Anything).Return(nil)
	store.On("PresignedDownloadURL", ctx, "k", 30*time.Second).Return("https://signed.example/k", nil)

	//Act
	grant, err := svc.PreviewURL(ctx, callerID, record.ID, 30*time.Second, domain.AccessContext{})

	//Assert
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, grant.ExpiresIn)
	store.AssertExpectations(t)
}

func TestPreviewURL_ExpiredShare_ko(t *testing.T) {
	//Arrange
	uow := repository.NewMockUnitOfWork()
	store := storage.NewMockStorage()
	svc := newService(uow, store, previewConfig())
	ctx := context.Background()
	callerID := uuid.New()
	expired := time.Now().Add(-time.Minute)
	record := &domain.FileRecord{ID: uuid.New(), OwnerID: uuid.New(), StorageKey: "k", Status: domain.FileStatusCompleted}
	share := &domain.FileShare{ID: uuid.New(), FileID: record.ID, ToPrincipalID: callerID, ExpiresAt: &expired}

	uow.On("Execute", ctx, mock.Anything).Return(nil)
	uow.GetFileRepoMock().On("FindByID", ctx, record.ID).Return(record, nil)
	uow.GetShareRepoMock().On("FindActiveByFileAndPrincipal", ctx, record.ID, callerID).Return(share, nil)

	//Act
	_, err := svc.PreviewURL(ctx, callerID, record.ID, time.Hour, domain.AccessContext{})

	//Assert
	require.ErrorIs(t, err, domain.ErrShareExpired)
	store.AssertNotCalled(t, "PresignedDownloadURL", mock.Anything, mock.Anything, mock.Anything)
}

func TestPreviewURL_NotCompleted_ko(t *testing.T) {
	//Arrange
	uow := repository.NewMockUnitOfWork()
	store := storage.NewMockStorage()
	svc := newService(uow, store, previewConfig())
	ctx := context.Background()
	ownerID := uuid.New()
	record := &domain.FileRecord{ID: uuid.New(), OwnerID: ownerID, Status: domain.FileStatusUploading}

	uow.On("Execute", ctx, mock.Anything).Return(nil)
	uow.GetFileRepoMock().On("FindByID", ctx, record.ID).Return(record, nil)

	//Act
	_, err := svc.PreviewURL(ctx, ownerID, record.ID, 0, domain.AccessContext{})

	//Assert
	require.ErrorIs(t, err, domain.ErrFileNotReady)
}
