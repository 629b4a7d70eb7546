package recyclebin_test

import (
	"context"
	"testing"

	"deep-vault/internal/adapters/repository"
	"deep-vault/internal/adapters/storage"
	"deep-vault/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func trashedRecord(ownerID uuid.UUID) *domain.FileRecord {
	return &domain.FileRecord{
		ID:         uuid.New(),
		OwnerID:    ownerID,
		StorageKey: "key-1",
		DeleteFlag: true,
		Status:     domain.FileStatusDeleted,
	}
}

func TestPermanentDelete_LastRecord_RemovesObject(t *testing.T) {
	//Arrange
	uow := repository.NewMockUnitOfWork()
	store := storage.NewMockStorage()
	svc := newService(uow, store)
	ctx := context.Background()
	ownerID := uuid.New()
	record := trashedRecord(ownerID)

	uow.On("Execute", ctx, mock.Anything).Return(nil)
	uow.GetFileRepoMock().On("FindByID", ctx, record.ID).Return(record, nil)
	uow.GetFileRepoMock().On("CountByStorageKey", ctx, "key-1", record.ID).Return(0, nil)
	uow.GetFileTagRepoMock().On("DeleteByFileID", ctx, record.ID).Return(nil)
	uow.GetShareRepoMock().On("DeleteByFileID", ctx, record.ID).Return(nil)
	uow.GetFileRepoMock().On("Delete", ctx, record.ID).Return(nil)
	store.On("Delete", ctx, "key-1").Return(nil)

	//Act
	err := svc.PermanentDelete(ctx, ownerID, record.ID)

	//Assert
	require.NoError(t, err)
	store.AssertExpectations(t)
	uow.GetFileRepoMock().AssertExpectations(t)
}

func TestPermanentDelete_ObjectDeleteFailure_Swallowed(t *testing.T) {
	//Arrange
	uow := repository.NewMockUnitOfWork()
	store := storage.NewMockStorage()
	svc := newService(uow, store)
	ctx := context.Background()
	ownerID := uuid.New()
	record := trashedRecord(ownerID)

	uow.On("Execute", ctx, mock.Anything).Return(nil)
	uow.GetFileRepoMock().On("FindByID", ctx, record.ID).Return(record, nil)
	uow.GetFileRepoMock().On("CountByStorageKey", ctx, "key-1", record.ID).Return(0, nil)
	uow.GetFileTagRepoMock().On("DeleteByFileID", ctx, record.ID).Return(nil)
	uow.GetShareRepoMock().On("DeleteByFileID", ctx, record.ID).Return(nil)
	uow.GetFileRepoMock().On("Delete", ctx, record.ID).Return(nil)
	store.On("Delete", ctx, "key-1").Return(assert.AnError)

	//Act
	err := svc.PermanentDelete(ctx, ownerID, record.ID)

	//Assert
	require.NoError(t, err)
	store.AssertExpectations(t)
}

func TestPermanentDelete_SharedObject_KeepsBytes(t *testing.T) {
	//Arrange
	uow := repository.NewMockUnitOfWork()
	store := storage.NewMockStorage()
	svc := newService(uow, store)
	ctx := context.Background()
	ownerID := uuid.New()
	record := trashedRecord(ownerID)

	uow.On("Execute", ctx, mock.Anything).Return(nil)
	uow.GetFileRepoMock().On("FindByID", ctx, record.ID).Return(record, nil)
	uow.GetFileRepoMock().On("CountByStorageKey", ctx, "key-1", record.ID).Return(1, nil)
	uow.GetFileRepoMock().On("DecrementRefCountByStorageKey", ctx, "key-1", record.ID).Return(nil)
	uow.GetFileTagRepoMock().On("DeleteByFileID", ctx, record.ID).Return(nil)
	uow.GetShareRepoMock().On("DeleteByFileID", ctx, record.ID).Return(nil)
	uow.GetFileRepoMock().On("Delete", ctx, record.ID).Return(nil)

	//Act
	err := svc.PermanentDelete(ctx, ownerID, record.ID)

	//Assert
	require.NoError(t, err)
	store.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	uow.GetFileRepoMock().AssertExpectations(t)
}

func TestPermanentDelete_StillReferenced_ko(t *testing.T) {
	//Arrange
	uow := repository.NewMockUnitOfWork()
	store := storage.NewMockStorage()
	svc := newService(uow, store)
	ctx := context.Background()
	ownerID := uuid.New()
	record := trashedRecord(ownerID)
	record.ReferenceCount = 2

	uow.On("Execute", ctx, mock.Anything).Return(nil)
	uow.GetFileRepoMock().On("FindByID", ctx, record.ID).Return(record, nil)

	//Act
	err := svc.PermanentDelete(ctx, ownerID, record.ID)

	//Assert
	require.ErrorIs(t, err, domain.ErrFileStillReferenced)
	uow.GetFileRepoMock().AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	store.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestPermanentDelete_NotTrashed_ko(t *testing.T) {
	//Arrange
	uow := repository.NewMockUnitOfWork()
	svc := newService(uow, storage.NewMockStorage())
	ctx := context.Background()
	ownerID := uuid.New()
	record := trashedRecord(ownerID)
	record.DeleteFlag = false
	record.Status = domain.FileStatusCompleted

	uow.On("Execute", ctx, mock.Anything).Return(nil)
	uow.GetFileRepoMock().On("FindByID", ctx, record.ID).Return(record, nil)

	//Act
	err := svc.PermanentDelete(ctx, ownerID, record.ID)

	//Assert
	require.ErrorIs(t, err, domain.ErrFileNotFound)
}

func TestPermanentDelete_WrongOwner_ko(t *testing.T) {
	//Arrange
	uow := repository.NewMockUnitOfWork()
	svc := newService(uow, storage.NewMockStorage())
	ctx := context.Background()
	record := trashedRecord(uuid.New())

	uow.On("Execute", ctx, mock.Anything).Return(nil)
	uow.GetFileRepoMock().On("FindByID", ctx, record.ID).Return(record, nil)

	//Act
	err := svc.PermanentDelete(ctx, uuid.New(), record.ID)

	//Assert
	require.ErrorIs(t, err, domain.ErrPermissionDenied)
}
