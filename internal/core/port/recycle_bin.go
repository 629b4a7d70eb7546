package port

import (
	"context"

	"deep-vault/internal/core/domain"

	"github.com/google/uuid"
)

// RecycleBinService owns the soft-delete lifecycle and permanent deletion
type RecycleBinService interface {
	Trash(ctx context.Context, ownerID, fileID uuid.UUID) error
	TrashBatch(ctx context.Context, ownerID uuid.UUID, fileIDs []uuid.UUID) (domain.BatchResult, error)
	Restore(ctx context.Context, ownerID, fileID uuid.UUID) error
	RestoreBatch(ctx context.Context, ownerID uuid.UUID, fileIDs []uuid.UUID) (domain.BatchResult, error)
	ListTrash(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]domain.FileRecord, error)
	Stats(ctx context.Context, ownerID uuid.UUID) (*domain.TrashStats, error)
	PermanentDelete(ctx context.Context, ownerID, fileID uuid.UUID) error
	PermanentDeleteBatch(ctx context.Context, ownerID uuid.UUID, fileIDs []uuid.UUID) (domain.BatchResult, error)
	EmptyRecycleBin(ctx context.Context, ownerID uuid.UUID) (domain.BatchResult, error)
}
