package tag

import (
	"context"

	"deep-vault/internal/core/port"

	"github.com/google/uuid"
)

// RemoveFileTag unlinks a single tag from a file and releases its usage.
func (t *tagService) RemoveFileTag(ctx context.Context, ownerID, fileID, tagID uuid.UUID) error {
	return t.uow.Execute(ctx, func(uow port.UnitOfWork) error {
		if _, err := loadOwnedFile(ctx, uow, ownerID, fileID); err != nil {
			return err
		}

		if err := uow.FileTagRepo().Delete(ctx, fileID, tagID); err != nil {
			return err
		}
		return uow.TagRepo().DecrementUsage(ctx, []uuid.UUID{tagID})
	})
}
