package tag

import (
	"context"

	"deep-vault/internal/core/domain"
	"deep-vault/internal/core/port"

	"github.com/google/uuid"
)

// Delete removes one of the owner's tags and every link that references
// it. Files keep existing untouched; only the association disappears.
func (t *tagService) Delete(ctx context.Context, ownerID, tagID uuid.UUID) error {
	return t.uow.Execute(ctx, func(uow port.UnitOfWork) error {
		tag, err := uow.TagRepo().FindByID(ctx, tagID)
		if err != nil {
			return err
		}
		if tag.OwnerID != ownerID {
			return domain.ErrPermissionDenied
		}

		if err := uow.FileTagRepo().DeleteByTagID(ctx, tagID); err != nil {
			return err
		}
		return uow.TagRepo().Delete(ctx, tagID)
	})
}
