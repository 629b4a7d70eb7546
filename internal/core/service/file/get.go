package file

import (
	"context"

	"deep-vault/internal/core/domain"
	"deep-vault/internal/core/port"

	"github.com/google/uuid"
)

// Get returns the full detail view of a file the caller may see. Tags
// always ride along; active shares are included for the owner only.
func (f *fileService) Get(ctx context.Context, callerID, fileID uuid.UUID) (*domain.FileDetail, error) {
	var detail *domain.FileDetail
	txErr := f.uow.Execute(ctx, func(uow port.UnitOfWork) error {
		record, err := uow.FileRepo().FindByID(ctx, fileID)
		if err != nil {
			return err
		}
		if record.DeleteFlag {
			return domain.ErrFileNotFound
		}

		if _, err := resolveAccess(ctx, uow, callerID, record); err != nil {
			return err
		}

		detail = &domain.FileDetail{FileRecord: *record}

		links, err := uow.FileTagRepo().FindByFileID(ctx, fileID)
		if err != nil {
			return err
		}
		if len(links) > 0 {
			tagIDs := make([]uuid.UUID, 0, len(links))
			for _, link := range links {
				tagIDs = append(tagIDs, link.TagID)
			}
			tags, err := uow.TagRepo().FindOwnedByIDs(ctx, record.OwnerID, tagIDs)
			if err != nil {
				return err
			}
			detail.Tags = tags
		}

		if record.OwnerID == callerID {
			shares, err := uow.ShareRepo().ListActiveByFile(ctx, fileID)
			if err != nil {
				return err
			}
			detail.Shares = shares
		}

		counts, err := uow.AccessLogRepo().CountByTypeForFile(ctx, fileID)
		if err != nil {
			return err
		}
		detail.ViewCount = counts[domain.AccessTypePreview]
		detail.DownloadCount = counts[domain.AccessTypeDownload]

		recent, err := uow.AccessLogRepo().ListByFileID(ctx, fileID, 1, 0)
		if err != nil {
			return err
		}
		if len(recent) > 0 {
			last := recent[0].CreatedAt
			detail.LastAccessedAt = &last
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return detail, nil
}
