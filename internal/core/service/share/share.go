package share

import (
	"context"
	"errors"
	"time"

	"deep-vault/internal/core/domain"
	"deep-vault/internal/core/port"

	"github.com/google/uuid"
)

type shareService struct {
	uow port.UnitOfWork
}

// NewShareService creates a new share service
func NewShareService(uow port.UnitOfWork) port.ShareService {
	return &shareService{uow: uow}
}

func loadOwnedFile(ctx context.Context, uow port.UnitOfWork, ownerID, fileID uuid.UUID) (*domain.FileRecord, error) {
	record, err := uow.FileRepo().FindByID(ctx, fileID)
	if err != nil {
		return nil, err
	}
	if record.DeleteFlag {
		return nil, domain.ErrFileNotFound
	}
	if record.OwnerID != ownerID {
		return nil, domain.ErrPermissionDenied
	}
	return record, nil
}

// CheckAccess arbitrates whether the caller may read the file. The
// owner and public files pass with a nil share; anyone else needs an
// active grant whose expiry predicate still holds at call time.
func (s *shareService) CheckAccess(ctx context.Context, callerID, fileID uuid.UUID) (*domain.FileShare, error) {
	var grant *domain.FileShare
	txErr := s.uow.Execute(ctx, func(uow port.UnitOfWork) error {
		record, err := uow.FileRepo().FindByID(ctx, fileID)
		if err != nil {
			return err
		}
		if record.DeleteFlag {
			return domain.ErrFileNotFound
		}
		if record.OwnerID == callerID || record.Visibility == domain.VisibilityPublic {
			return nil
		}

		share, err := uow.ShareRepo().FindActiveByFileAndPrincipal(ctx, fileID, callerID)
		if err != nil {
			if errors.Is(err, domain.ErrShareNotFound) {
				return domain.ErrPermissionDenied
			}
			return err
		}
		if share.Expired(time.Now()) {
			return domain.ErrShareExpired
		}
		grant = share
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return grant, nil
}
