package file

import (
	"context"

	"deep-vault/internal/core/domain"
	"deep-vault/internal/core/port"

	"github.com/google/uuid"
)

// List pages through the owner's non-trashed files.
func (f *fileService) List(ctx context.Context, ownerID uuid.UUID, filter port.FileListFilter) ([]domain.FileRecord, int64, error) {
	var records []domain.FileRecord
	var total int64
	txErr := f.uow.Execute(ctx, func(uow port.UnitOfWork) error {
		var err error
		records, total, err = uow.FileRepo().List(ctx, ownerID, filter)
		return err
	})
	if txErr != nil {
		return nil, 0, txErr
	}
	return records, total, nil
}
