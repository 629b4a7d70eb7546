package recyclebin

import (
	"context"

	"deep-vault/internal/core/domain"
	"deep-vault/internal/core/port"

	"github.com/google/uuid"
)

// Trash soft-deletes a file: the record is flagged, its tags release
// one usage each, the stored object stays put. Trashing an
// already-trashed or foreign file reports not found.
func (r *recycleBinService) Trash(ctx context.Context, ownerID, fileID uuid.UUID) error {
	return r.uow.Execute(ctx, func(uow port.UnitOfWork) error {
		if err := uow.FileRepo().SetTrashed(ctx, fileID, ownerID, true); err != nil {
			return err
		}

		tagIDs, err := fileTagIDs(ctx, uow, fileID)
		if err != nil {
			return err
		}
		return uow.TagRepo().DecrementUsage(ctx, tagIDs)
	})
}

// TrashBatch trashes each file independently; one failure does not
// roll back the others.
func (r *recycleBinService) TrashBatch(ctx context.Context, ownerID uuid.UUID, fileIDs []uuid.UUID) (domain.BatchResult, error) {
	result := domain.BatchResult{Total: len(fileIDs)}
	for _, fileID := range fileIDs {
		if err := r.Trash(ctx, ownerID, fileID); err != nil {
			result.Failed++
			continue
		}
		result.Succeeded++
	}
	return result, nil
}

// Restore brings a trashed file back and re-links its tag usage.
func (r *recycleBinService) Restore(ctx context.Context, ownerID, fileID uuid.UUID) error {
	return r.uow.Execute(ctx, func(uow port.UnitOfWork) error {
		if err := uow.FileRepo().SetTrashed(ctx, fileID, ownerID, false); err != nil {
			return err
		}

		tagIDs, err := fileTagIDs(ctx, uow, fileID)
		if err != nil {
			return err
		}
		return uow.TagRepo().IncrementUsage(ctx, tagIDs)
	})
}

// RestoreBatch restores each file independently.
func (r *recycleBinService) RestoreBatch(ctx context.Context, ownerID uuid.UUID, fileIDs []uuid.UUID) (domain.BatchResult, error) {
	result := domain.BatchResult{Total: len(fileIDs)}
	for _, fileID := range fileIDs {
		if err := r.Restore(ctx, ownerID, fileID); err != nil {
			result.Failed++
			continue
		}
		result.Succeeded++
	}
	return result, nil
}
