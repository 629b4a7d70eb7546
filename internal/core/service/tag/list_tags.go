package tag

import (
	"context"

	"deep-vault/internal/core/domain"
	"deep-vault/internal/core/port"

	"github.com/google/uuid"
)

// List returns the owner's tags with their current usage counts.
func (t *tagService) List(ctx context.Context, ownerID uuid.UUID) ([]domain.Tag, error) {
	var tags []domain.Tag
	txErr := t.uow.Execute(ctx, func(uow port.UnitOfWork) error {
		var err error
		tags, err = uow.TagRepo().ListByOwner(ctx, ownerID)
		return err
	})
	if txErr != nil {
		return nil, txErr
	}
	return tags, nil
}
