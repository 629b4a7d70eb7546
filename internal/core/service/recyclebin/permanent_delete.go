package recyclebin

import (
	"context"

	"deep-vault/internal/core/domain"
	"deep-vault/internal/core/port"

	"github.com/google/uuid"
)

// PermanentDelete destroys a trashed record for good. The stored object
// is removed only when no other record addresses the same storage key;
// otherwise the canonical record's reference count is released instead.
// A canonical record still carrying references refuses to go.
func (r *recycleBinService) PermanentDelete(ctx context.Context, ownerID, fileID uuid.UUID) error {
	var storageKey string
	var deleteObject bool

	txErr := r.uow.Execute(ctx, func(uow port.UnitOfWork) error {
		record, err := uow.FileRepo().FindByID(ctx, fileID)
		if err != nil {
			return err
		}
		if record.OwnerID != ownerID {
			return domain.ErrPermissionDenied
		}
		if !record.DeleteFlag {
			return domain.ErrFileNotFound
		}
		if record.ReferenceCount > 0 {
			return domain.ErrFileStillReferenced
		}

		others, err := uow.FileRepo().CountByStorageKey(ctx, record.StorageKey, record.ID)
		if err != nil {
			return err
		}
		if others == 0 {
			storageKey = record.StorageKey
			deleteObject = true
		} else {
			if err := uow.FileRepo().DecrementRefCountByStorageKey(ctx, record.StorageKey, record.ID); err != nil {
				return err
			}
		}

		if err := uow.FileTagRepo().DeleteByFileID(ctx, fileID); err != nil {
			return err
		}
		if err := uow.ShareRepo().DeleteByFileID(ctx, fileID); err != nil {
			return err
		}
		return uow.FileRepo().Delete(ctx, fileID)
	})
	if txErr != nil {
		return txErr
	}

	// Metadata is gone; a failed object delete leaves an orphan for the
	// reconcile sweep rather than a dangling record.
	if deleteObject {
		if err := r.storage.Delete(ctx, storageKey); err != nil {
			r.logger.Warn("failed to delete object after permanent delete", "storage_key", storageKey, "file_id", fileID, "error", err)
		}
	}
	return nil
}

// PermanentDeleteBatch deletes each file independently.
func (r *recycleBinService) PermanentDeleteBatch(ctx context.Context, ownerID uuid.UUID, fileIDs []uuid.UUID) (domain.BatchResult, error) {
	result := domain.BatchResult{Total: len(fileIDs)}
	for _, fileID := range fileIDs {
		if err := r.PermanentDelete(ctx, ownerID, fileID); err != nil {
			result.Failed++
			continue
		}
		result.Succeeded++
	}
	return result, nil
}

// EmptyRecycleBin permanently deletes everything in the owner's trash.
// Records gated by live references fail their item and stay trashed.
func (r *recycleBinService) EmptyRecycleBin(ctx context.Context, ownerID uuid.UUID) (domain.BatchResult, error) {
	var ids []uuid.UUID
	for offset := 0; ; offset += 100 {
		var page []domain.FileRecord
		txErr := r.uow.Execute(ctx, func(uow port.UnitOfWork) error {
			var err error
			page, err = uow.FileRepo().ListTrashed(ctx, ownerID, 100, offset)
			return err
		})
		if txErr != nil {
			return domain.BatchResult{}, txErr
		}
		for _, record := range page {
			ids = append(ids, record.ID)
		}
		if len(page) < 100 {
			break
		}
	}

	return r.PermanentDeleteBatch(ctx, ownerID, ids)
}
