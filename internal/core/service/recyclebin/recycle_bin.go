package recyclebin

import (
	"context"
	"log/slog"

	"deep-vault/internal/core/domain"
	"deep-vault/internal/core/port"

	"github.com/google/uuid"
)

type recycleBinService struct {
	uow     port.UnitOfWork
	storage port.ObjectStorage
	logger  *slog.Logger
}

// NewRecycleBinService creates a new recycle bin service
func NewRecycleBinService(uow port.UnitOfWork, storage port.ObjectStorage, logger *slog.Logger) port.RecycleBinService {
	return &recycleBinService{uow: uow, storage: storage, logger: logger}
}

// ListTrash pages through the owner's trashed records.
func (r *recycleBinService) ListTrash(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]domain.FileRecord, error) {
	var records []domain.FileRecord
	txErr := r.uow.Execute(ctx, func(uow port.UnitOfWork) error {
		var err error
		records, err = uow.FileRepo().ListTrashed(ctx, ownerID, limit, offset)
		return err
	})
	if txErr != nil {
		return nil, txErr
	}
	return records, nil
}

// Stats summarizes the owner's recycle bin.
func (r *recycleBinService) Stats(ctx context.Context, ownerID uuid.UUID) (*domain.TrashStats, error) {
	var stats *domain.TrashStats
	txErr := r.uow.Execute(ctx, func(uow port.UnitOfWork) error {
		var err error
		stats, err = uow.FileRepo().TrashStats(ctx, ownerID)
		return err
	})
	if txErr != nil {
		return nil, txErr
	}
	return stats, nil
}

func fileTagIDs(ctx context.Context, uow port.UnitOfWork, fileID uuid.UUID) ([]uuid.UUID, error) {
	links, err := uow.FileTagRepo().FindByFileID(ctx, fileID)
	if err != nil {
		return nil, err
	}
	ids := make([]uuid.UUID, 0, len(links))
	for _, link := range links {
		ids = append(ids, link.TagID)
	}
	return ids, nil
}
