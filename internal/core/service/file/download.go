package file

import (
	"context"
	"io"

	"deep-vault/internal/core/domain"
	"deep-vault/internal/core/port"

	"github.com/google/uuid"
)

// Download streams a file's bytes to a caller who may see it. Shared
// downloads bump the share's download counter; every download is
// appended to the access log.
func (f *fileService) Download(ctx context.Context, callerID, fileID uuid.UUID, actx domain.AccessContext) (io.ReadCloser, *domain.FileRecord, error) {
	var record *domain.FileRecord
	var shareID *uuid.UUID
	txErr := f.uow.Execute(ctx, func(uow port.UnitOfWork) error {
		found, err := uow.FileRepo().FindByID(ctx, fileID)
		if err != nil {
			return err
		}
		if found.DeleteFlag {
			return domain.ErrFileNotFound
		}
		if found.Status != domain.FileStatusCompleted {
			return domain.ErrFileNotReady
		}

		share, err := resolveAccess(ctx, uow, callerID, found)
		if err != nil {
			return err
		}

		if share != nil {
			shareID = &share.ID
			if err := uow.ShareRepo().IncrementDownloadCount(ctx, share.ID); err != nil {
				return err
			}
		}

		record = found
		return nil
	})
	if txErr != nil {
		return nil, nil, txErr
	}

	body, err := f.storage.Get(ctx, record.StorageKey)
	if err != nil {
		return nil, nil, err
	}

	f.logAccess(ctx, fileID, callerID, domain.AccessTypeDownload, shareID, actx)

	return body, record, nil
}
