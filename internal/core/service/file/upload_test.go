package file_test

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"log/slog"
	"strings"
	"testing"

	"deep-vault/internal/adapters/repository"
	"deep-vault/internal/adapters/storage"
	"deep-vault/internal/config"
	"deep-vault/internal/core/domain"
	"deep-vault/internal/core/port"
	"deep-vault/internal/core/service/accesslog"
	"deep-vault/internal/core/service/file"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func uploadConfig() config.FileUploadConfig {
	return config.FileUploadConfig{
		MaxFileSize: 1024,
		MaxFileTags: 3,
	}
}

func newService(uow *repository.MockUnitOfWork, store *storage.MockStorage, cfg config.FileUploadConfig) port.FileService {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return file.NewFileService(uow, store, accesslog.NewAccessLogService(uow, logger), cfg)
}

func TestUpload_NewContent_ok(t *testing.T) {
	//Arrange
	uow := repository.NewMockUnitOfWork()
	store := storage.NewMockStorage()
	svc := newService(uow, store, uploadConfig())
	ctx := context.Background()
	ownerID := uuid.New()
	content := []byte("fresh bytes")
	sum := sha256.Sum256(content)
	wantHash := hex.EncodeToString(sum[:])

	uow.On("Execute", ctx, mock.Anything).Return(nil)
	uow.GetFileRepoMock().On("FindByOwnerAndHash", ctx, ownerID, wantHash).
		Return((*domain.FileRecord)(nil), domain.ErrFileNotFound)
	uow.GetFileRepoMock().On("FindCanonicalByHash", ctx, wantHash).
		Return((*domain.FileRecord)(nil), domain.ErrFileNotFound)
	store.On("Put", ctx, mock.Anything, mock.Anything, int64(len(content)), mock.Anything).Return(nil)
	uow.GetFileRepoMock().On("Create", ctx, mock.Anything).Return(nil)
	uow.GetAccessLogRepoMock().On("Create", ctx, mock.Anything).Return(nil)

	//Act
	record, err := svc.Upload(ctx, ownerID, content, "notes.txt", domain.CategoryDocument, nil, domain.AccessContext{})

	//Assert
	require.NoError(t, err)
	assert.Equal(t, wantHash, record.ContentHash)
	assert.Equal(t, domain.FileStatusCompleted, record.Status)
	assert.Equal(t, domain.VisibilityPrivate, record.Visibility)
	assert.True(t, strings.HasPrefix(record.StorageKey, ownerID.String()+"/document/"))
	store.AssertExpectations(t)
	uow.GetFileRepoMock().AssertExpectations(t)
}

func TestUpload_SameOwnerDedup_ReturnsExisting(t *testing.T) {
	//Arrange
	uow := repository.NewMockUnitOfWork()
	store := storage.NewMockStorage()
	svc := newService(uow, store, uploadConfig())
	ctx := context.Background()
	ownerID := uuid.New()
	content := []byte("already stored")
	sum := sha256.Sum256(content)
	hash := hex.EncodeToString(sum[:])
	existing := &domain.FileRecord{ID: uuid.New(), OwnerID: ownerID, ContentHash: hash, StorageKey: "k"}

	uow.On("Execute", ctx, mock.Anything).Return(nil)
	uow.GetFileRepoMock().On("FindByOwnerAndHash", ctx, ownerID, hash).Return(existing, nil)
	uow.GetAccessLogRepoMock().On("Create", ctx, mock.Anything).Return(nil)

	//Act
	record, err := svc.Upload(ctx, ownerID, content, "dup.txt", domain.CategoryDocument, nil, domain.AccessContext{})

	//Assert
	require.NoError(t, err)
	assert.Equal(t, existing.ID, record.ID)
	store.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	uow.GetFileRepoMock().AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUpload_CrossOwnerDedup_SharesObject(t *testing.T) {
	//Arrange
	uow := repository.NewMockUnitOfWork()
	store := storage.NewMockStorage()
	svc := newService(uow, store, uploadConfig())
	ctx := context.Background()
	ownerID := uuid.New()
	content := []byte("shared bytes")
	sum := sha256.Sum256(content)
	hash := hex.EncodeToString(sum[:])
	canonical := &domain.FileRecord{ID: uuid.New(), OwnerID: uuid.New(), ContentHash: hash, StorageKey: "other/document/20260101/x.txt"}

	uow.On("Execute", ctx, mock.Anything).Return(nil)
	uow.GetFileRepoMock().On("FindByOwnerAndHash", ctx, ownerID, hash).
		Return((*domain.FileRecord)(nil), domain.ErrFileNotFound)
	uow.GetFileRepoMock().On("FindCanonicalByHash", ctx, hash).Return(canonical, nil)
	uow.GetFileRepoMock().On("Create", ctx, mock.Anything).Return(nil)
	uow.GetFileRepoMock().On("IncrementRefCount", ctx, canonical.ID).Return(nil)
	uow.GetAccessLogRepoMock().On("Create", ctx, mock.Anything).Return(nil)

	//Act
	record, err := svc.Upload(ctx, ownerID, content, "copy.txt", domain.CategoryDocument, nil, domain.AccessContext{})

	//Assert
	require.NoError(t, err)
	assert.Equal(t, canonical.StorageKey, record.StorageKey)
	assert.Equal(t, ownerID, record.OwnerID)
	store.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	uow.GetFileRepoMock().AssertExpectations(t)
}

func TestUpload_FileTooBig_ko(t *testing.T) {
	//Arrange
	uow := repository.NewMockUnitOfWork()
	store := storage.NewMockStorage()
	svc := newService(uow, store, uploadConfig())

	//Act
	_, err := svc.Upload(context.Background(), uuid.New(), make([]byte, 2048), "big.bin", domain.CategoryDocument, nil, domain.AccessContext{})

	//Assert
	require.ErrorIs(t, err, domain.ErrFileSizeTooBig)
}

func TestUpload_InvalidCategory_ko(t *testing.T) {
	//Arrange
	uow := repository.NewMockUnitOfWork()
	store := storage.NewMockStorage()
	svc := newService(uow, store, uploadConfig())

	//Act
	_, err := svc.Upload(context.Background(), uuid.New(), []byte("x"), "a.txt", domain.Category("archive"), nil, domain.AccessContext{})

	//Assert
	require.ErrorIs(t, err, domain.ErrInvalidCategory)
}

func TestUpload_InvalidFilename_ko(t *testing.T) {
	//Arrange
	uow := repository.NewMockUnitOfWork()
	store := storage.NewMockStorage()
	svc := newService(uow, store, uploadConfig())

	//Act
	_, err := svc.Upload(context.Background(), uuid.New(), []byte("x"), "../escape.txt", domain.CategoryDocument, nil, domain.AccessContext{})

	//Assert
	require.ErrorIs(t, err, domain.ErrInvalidFilename)
}

func TestUpload_WithTags_ok(t *testing.T) {
	//Arrange
	uow := repository.NewMockUnitOfWork()
	store := storage.NewMockStorage()
	svc := newService(uow, store, uploadConfig())
	ctx := context.Background()
	ownerID := uuid.New()
	tagA, tagB := uuid.New(), uuid.New()
	tagIDs := []uuid.UUID{tagA, tagB}

	uow.On("Execute", ctx, mock.Anything).Return(nil)
	uow.GetFileRepoMock().On("FindByOwnerAndHash", ctx, ownerID, mock.Anything).
		Return((*domain.FileRecord)(nil), domain.ErrFileNotFound)
	uow.GetFileRepoMock().On("FindCanonicalByHash", ctx, mock.Anything).
		Return((*domain.FileRecord)(nil), domain.ErrFileNotFound)
	store.On("Put", ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	uow.GetFileRepoMock().On("Create", ctx, mock.Anything).Return(nil)
	uow.GetTagRepoMock().On("FindOwnedByIDs", ctx, ownerID, tagIDs).
		Return([]domain.Tag{{ID: tagA}, {ID: tagB}}, nil)
	uow.GetFileTagRepoMock().On("CreateMany", ctx, mock.Anything, []uuid.UUID{tagA, tagB}).Return(2, nil)
	uow.GetTagRepoMock().On("IncrementUsage", ctx, []uuid.UUID{tagA, tagB}).Return(nil)
	uow.GetAccessLogRepoMock().On("Create", ctx, mock.Anything).Return(nil)

	//Act
	_, err := svc.Upload(ctx, ownerID, []byte("tagged"), "t.txt", domain.CategoryDocument, tagIDs, domain.AccessContext{})

	//Assert
	require.NoError(t, err)
	uow.GetTagRepoMock().AssertExpectations(t)
	uow.GetFileTagRepoMock().AssertExpectations(t)
}

func TestUpload_ForeignTag_DroppedSilently(t *testing.T) {
	//Arrange
	uow := repository.NewMockUnitOfWork()
	store := storage.NewMockStorage()
	svc := newService(uow, store, uploadConfig())
	ctx := context.Background()
	ownerID := uuid.New()
	owned, foreign := uuid.New(), uuid.New()
	tagIDs := []uuid.UUID{owned, foreign}

	uow.On("Execute", ctx, mock.Anything).Return(nil)
	uow.GetFileRepoMock().On("FindByOwnerAndHash", ctx, ownerID, mock.Anything).
		Return((*domain.FileRecord)(nil), domain.ErrFileNotFound)
	uow.GetFileRepoMock().On("FindCanonicalByHash", ctx, mock.Anything).
		Return((*domain.FileRecord)(nil), domain.ErrFileNotFound)
	store.On("Put", ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	uow.GetFileRepoMock().On("Create", ctx, mock.Anything).Return(nil)
	uow.GetTagRepoMock().On("FindOwnedByIDs", ctx, ownerID, tagIDs).
		Return([]domain.Tag{{ID: owned}}, nil)
	uow.GetFileTagRepoMock().On("CreateMany", ctx, mock.Anything, []uuid.UUID{owned}).Return(1, nil)
	uow.GetTagRepoMock().On("IncrementUsage", ctx, []uuid.UUID{owned}).Return(nil)
	uow.GetAccessLogRepoMock().On("Create", ctx, mock.Anything).Return(nil)

	//Act
	_, err := svc.Upload(ctx, ownerID, []byte("tagged"), "t.txt", domain.CategoryDocument, tagIDs, domain.AccessContext{})

	//Assert
	require.NoError(t, err)
	uow.GetFileTagRepoMock().AssertExpectations(t)
	uow.GetTagRepoMock().AssertExpectations(t)
}

func TestUpload_AuditWriteFailure_StillSucceeds(t *testing.T) {
	//Arrange
	uow := repository.NewMockUnitOfWork()
	store := storage.NewMockStorage()
	svc := newService(uow, store, uploadConfig())
	ctx := context.Background()
	ownerID := uuid.New()

	uow.On("Execute", ctx, mock.Anything).Return(nil)
	uow.GetFileRepoMock().On("FindByOwnerAndHash", ctx, ownerID, mock.Anything).
		Return((*domain.FileRecord)(nil), domain.ErrFileNotFound)
	uow.GetFileRepoMock().On("FindCanonicalByHash", ctx, mock.Anything).
		Return((*domain.FileRecord)(nil), domain.ErrFileNotFound)
	store.On("Put", ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	uow.GetFileRepoMock().On("Create", ctx, mock.Anything).Return(nil)
	uow.GetAccessLogRepoMock().On("Create", ctx, mock.Anything).Return(assert.AnError)

	//Act
	record, err := svc.Upload(ctx, ownerID, []byte("logged"), "l.txt", domain.CategoryDocument, nil, domain.AccessContext{})

	//Assert
	require.NoError(t, err)
	assert.NotNil(t, record)
}

func TestUpload_TooManyTags_ko(t *testing.T) {
	//Arrange
	uow := repository.NewMockUnitOfWork()
	store := storage.NewMockStorage()
	svc := newService(uow, store, uploadConfig())
	tagIDs := []uuid.UUID{uuid.New(), uuid.New(), uuid.New(), uuid.New()}

	//Act
	_, err := svc.Upload(context.Background(), uuid.New(), []byte("x"), "t.txt", domain.CategoryDocument, tagIDs, domain.AccessContext{})

	//Assert
	require.ErrorIs(t, err, domain.ErrTagNotFound)
}
