package port

import (
	"context"

	"deep-vault/internal/core/domain"

	"github.com/google/uuid"
)

// TagRepository represents a tag repository implementation
type TagRepository interface {
	Create(ctx context.Context, tag domain.Tag) error
	Update(ctx context.Context, id uuid.UUID, name, color string) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Tag, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Tag, error)
	FindOwnedByIDs(ctx context.Context, ownerID uuid.UUID, ids []uuid.UUID) ([]domain.Tag, error)
	IncrementUsage(ctx context.Context, ids []uuid.UUID) error
	DecrementUsage(ctx context.Context, ids []uuid.UUID) error
}

// TagService represents a tag service implementation
type TagService interface {
	Create(ctx context.Context, ownerID uuid.UUID, name, color string) (*domain.Tag, error)
	Update(ctx context.Context, ownerID, tagID uuid.UUID, name, color string) (*domain.Tag, error)
	Delete(ctx context.Context, ownerID, tagID uuid.UUID) error
	List(ctx context.Context, ownerID uuid.UUID) ([]domain.Tag, error)
	SetFileTags(ctx context.Context, ownerID, fileID uuid.UUID, tagIDs []uuid.UUID) ([]uuid.UUID, error)
	RemoveFileTag(ctx context.Context, ownerID, fileID, tagID uuid.UUID) error
	GetFileTags(ctx context.Context, callerID, fileID uuid.UUID) ([]domain.Tag, error)
}
