package file

import (
	"context"
	"errors"

	"deep-vault/internal/core/domain"
	"deep-vault/internal/core/port"

	"github.com/google/uuid"
)

// CheckExists answers the instant-upload probe: does content with this
// hash already exist anywhere? The record is only returned when the
// caller owns one, so other owners' metadata never leaks.
func (f *fileService) CheckExists(ctx context.Context, ownerID uuid.UUID, contentHash string) (bool, *domain.FileRecord, error) {
	if err := validateHash(contentHash); err != nil {
		return false, nil, err
	}

	var exists bool
	var own *domain.FileRecord
	txErr := f.uow.Execute(ctx, func(uow port.UnitOfWork) error {
		record, err := uow.FileRepo().FindByOwnerAndHash(ctx, ownerID, contentHash)
		if err == nil {
			exists = true
			own = record
			return nil
		}
		if !errors.Is(err, domain.ErrFileNotFound) {
			return err
		}

		_, err = uow.FileRepo().FindCanonicalByHash(ctx, contentHash)
		if err == nil {
			exists = true
			return nil
		}
		if errors.Is(err, domain.ErrFileNotFound) {
			return nil
		}
		return err
	})
	if txErr != nil {
		return false, nil, txErr
	}
	return exists, own, nil
}
