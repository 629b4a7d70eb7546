package tag

import (
	"context"

	"deep-vault/internal/core/domain"
	"deep-vault/internal/core/port"

	"github.com/google/uuid"
)

// Create registers a new tag for the owner. Names are lowercased and
// unique per owner.
func (t *tagService) Create(ctx context.Context, ownerID uuid.UUID, name, color string) (*domain.Tag, error) {
	normalized, err := normalizeTagName(name)
	if err != nil {
		return nil, err
	}

	tag := domain.Tag{
		ID:      uuid.New(),
		OwnerID: ownerID,
		Name:    normalized,
		Color:   color,
	}

	txErr := t.uow.Execute(ctx, func(uow port.UnitOfWork) error {
		return uow.TagRepo().Create(ctx, tag)
	})
	if txErr != nil {
		return nil, txErr
	}
	return &tag, nil
}
