package file

import (
	"context"

	"deep-vault/internal/core/domain"
	"deep-vault/internal/core/port"

	"github.com/google/uuid"
)

// Rename changes a record's display name. Owner only; the storage key
// and content hash never change.
func (f *fileService) Rename(ctx context.Context, ownerID, fileID uuid.UUID, newName string) (*domain.FileRecord, error) {
	if err := validateFilename(newName); err != nil {
		return nil, err
	}

	var renamed *domain.FileRecord
	txErr := f.uow.Execute(ctx, func(uow port.UnitOfWork) error {
		record, err := uow.FileRepo().FindByID(ctx, fileID)
		if err != nil {
			return err
		}
		if record.DeleteFlag {
			return domain.ErrFileNotFound
		}
		if record.OwnerID != ownerID {
			return domain.ErrPermissionDenied
		}

		if err := uow.FileRepo().UpdateName(ctx, fileID, newName); err != nil {
			return err
		}
		record.OriginalName = newName
		renamed = record
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return renamed, nil
}
