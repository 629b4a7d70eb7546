package tag

import (
	"context"

	"deep-vault/internal/core/domain"
	"deep-vault/internal/core/port"

	"github.com/google/uuid"
)

// Update renames or recolors one of the owner's tags.
func (t *tagService) Update(ctx context.Context, ownerID, tagID uuid.UUID, name, color string) (*domain.Tag, error) {
	normalized, err := normalizeTagName(name)
	if err != nil {
		return nil, err
	}

	var updated *domain.Tag
	txErr := t.uow.Execute(ctx, func(uow port.UnitOfWork) error {
		tag, err := uow.TagRepo().FindByID(ctx, tagID)
		if err != nil {
			return err
		}
		if tag.OwnerID != ownerID {
			return domain.ErrPermissionDenied
		}

		if err := uow.TagRepo().Update(ctx, tagID, normalized, color); err != nil {
			return err
		}
		tag.Name = normalized
		tag.Color = color
		updated = tag
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return updated, nil
}
