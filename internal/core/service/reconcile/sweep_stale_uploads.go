package reconcile

import (
	"context"
	"time"

	"deep-vault/internal/core/domain"
	"deep-vault/internal/core/port"

	"github.com/google/uuid"
)

// SweepStaleUploads fails every uploading record whose upload has been
// in flight longer than the configured TTL. Tag links are detached with
// their usage counts released, and any partially written object is
// removed unless another record still addresses the same storage key.
func (r *reconcileService) SweepStaleUploads(ctx context.Context, now time.Time) error {
	cutoff := now.Add(-r.cfg.UploadTTL)

	var stale []domain.FileRecord
	txErr := r.uow.Execute(ctx, func(uow port.UnitOfWork) error {
		var err error
		stale, err = uow.FileRepo().FindStaleUploading(ctx, cutoff)
		return err
	})
	if txErr != nil {
		return txErr
	}

	for _, record := range stale {
		if err := r.failStaleUpload(ctx, record); err != nil {
			r.logger.Error("failed to sweep stale upload", "file_id", record.ID, "error", err)
			continue
		}
		r.logger.Info("stale upload marked failed", "file_id", record.ID, "storage_key", record.StorageKey)
	}
	return nil
}

func (r *reconcileService) failStaleUpload(ctx context.Context, record domain.FileRecord) error {
	var deleteObject bool

	txErr := r.uow.Execute(ctx, func(uow port.UnitOfWork) error {
		links, err := uow.FileTagRepo().FindByFileID(ctx, record.ID)
		if err != nil {
			return err
		}
		if len(links) > 0 {
			tagIDs := make([]uuid.UUID, 0, len(links))
			for _, link := range links {
				tagIDs = append(tagIDs, link.TagID)
			}
			if err := uow.FileTagRepo().DeleteByFileID(ctx, record.ID); err != nil {
				return err
			}
			if err := uow.TagRepo().DecrementUsage(ctx, tagIDs); err != nil {
				return err
			}
		}

		others, err := uow.FileRepo().CountByStorageKey(ctx, record.StorageKey, record.ID)
		if err != nil {
			return err
		}
		deleteObject = others == 0

		return uow.FileRepo().UpdateStatus(ctx, record.ID, domain.FileStatusFailed)
	})
	if txErr != nil {
		return txErr
	}

	if deleteObject {
		if err := r.storage.Delete(ctx, record.StorageKey); err != nil {
			r.logger.Warn("failed to remove object of failed upload", "storage_key", record.StorageKey, "error", err)
		}
	}
	return nil
}
