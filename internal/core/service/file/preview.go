package file

import (
	"context"
	"time"

	"deep-vault/internal/core/domain"
	"deep-vault/internal/core/port"

	"github.com/google/uuid"
)

// PreviewURL issues a presigned link to a file's bytes. The owner gets
// whatever positive lifetime was asked for. For shared callers the
// lifetime is clamped to the share's remaining window so a URL can
// never outlive the grant that produced it, with a short floor so an
// almost-expired share still yields a usable link.
func (f *fileService) PreviewURL(ctx context.Context, callerID, fileID uuid.UUID, expiry time.Duration, actx domain.AccessContext) (*domain.PreviewGrant, error) {
	if expiry <= 0 {
		expiry = f.uploadCfg.DefaultPreviewExpiry
	}

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
			if share.ExpiresAt != nil {
				// The floor only cushions the clamp: a request already
				// inside the window passes through unchanged.
				if remaining := time.Until(*share.ExpiresAt); remaining < expiry {
					expiry = remaining
					if expiry < f.uploadCfg.MinPreviewExpiry {
						expiry = f.uploadCfg.MinPreviewExpiry
					}
				}
			}
			if err := uow.ShareRepo().IncrementViewCount(ctx, share.ID); err != nil {
				return err
			}
		}

		record = found
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	url, err := f.storage.PresignedDownloadURL(ctx, record.StorageKey, expiry)
	if err != nil {
		return nil, err
	}

	f.logAccess(ctx, fileID, callerID, domain.AccessTypePreview, shareID, actx)

	return &domain.PreviewGrant{
		URL:       url,
		ExpiresIn: expiry,
		ExpiresAt: time.Now().Add(expiry),
	}, nil
}
