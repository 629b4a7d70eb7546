package accesslog

import (
	"context"

	"deep-vault/internal/core/domain"
	"deep-vault/internal/core/port"

	"github.com/google/uuid"
)

// Statistics aggregates the owner's dashboard numbers by scanning their
// active records, share counters and access log on demand.
func (a *accessLogService) Statistics(ctx context.Context, ownerID uuid.UUID) (*domain.OwnerStatistics, error) {
	stats := &domain.OwnerStatistics{
		CategoryCounts: make(map[domain.Category]int64),
	}

	txErr := a.uow.Execute(ctx, func(uow port.UnitOfWork) error {
		records, err := uow.FileRepo().ListActiveByOwner(ctx, ownerID)
		if err != nil {
			return err
		}
		for _, record := range records {
			stats.TotalFiles++
			stats.TotalSizeBytes += record.SizeBytes
			stats.CategoryCounts[record.Category]++
			if stats.LastUploadedAt == nil || record.CreatedAt.After(*stats.LastUploadedAt) {
				uploadedAt := record.CreatedAt
				stats.LastUploadedAt = &uploadedAt
			}
		}

		if stats.ShareOutCount, err = uow.ShareRepo().CountActiveFrom(ctx, ownerID); err != nil {
			return err
		}
		if stats.ShareInCount, err = uow.ShareRepo().CountActiveTo(ctx, ownerID); err != nil {
			return err
		}

		counts, err := uow.AccessLogRepo().CountByTypeForOwner(ctx, ownerID)
		if err != nil {
			return err
		}
		stats.TotalUploads = counts[domain.AccessTypeUpload]
		stats.TotalDownloads = counts[domain.AccessTypeDownload]
		stats.TotalPreviews = counts[domain.AccessTypePreview]
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return stats, nil
}
