package tag

import (
	"context"

	"deep-vault/internal/core/domain"
	"deep-vault/internal/core/port"

	"github.com/google/uuid"
)

// GetFileTags lists the tags attached to a file the caller may see.
func (t *tagService) GetFileTags(ctx context.Context, callerID, fileID uuid.UUID) ([]domain.Tag, error) {
	var tags []domain.Tag
	txErr := t.uow.Execute(ctx, func(uow port.UnitOfWork) error {
		record, err := uow.FileRepo().FindByID(ctx, fileID)
		if err != nil {
			return err
		}
		if record.DeleteFlag {
			return domain.ErrFileNotFound
		}
		if err := canSeeFile(ctx, uow, callerID, record); err != nil {
			return err
		}

		links, err := uow.FileTagRepo().FindByFileID(ctx, fileID)
		if err != nil {
			return err
		}
		if len(links) == 0 {
			return nil
		}

		ids := make([]uuid.UUID, 0, len(links))
		for _, link := range links {
			ids = append(ids, link.TagID)
		}
		tags, err = uow.TagRepo().FindOwnedByIDs(ctx, record.OwnerID, ids)
		return err
	})
	if txErr != nil {
		return nil, txErr
	}
	return tags, nil
}
