package port

import (
	"context"

	"deep-vault/internal/core/domain"

	"github.com/google/uuid"
)

// FileTagRepository manages the file-to-tag association rows
type FileTagRepository interface {
	FindByFileID(ctx context.Context, fileID uuid.UUID) ([]domain.FileTag, error)
	CreateMany(ctx context.Context, fileID uuid.UUID, tagIDs []uuid.UUID) (int, error)
	Delete(ctx context.Context, fileID, tagID uuid.UUID) error
	DeleteByFileID(ctx context.Context, fileID uuid.UUID) error
	DeleteByTagID(ctx context.Context, tagID uuid.UUID) error
}
