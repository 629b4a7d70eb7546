package share

import (
	"context"
	"time"

	"deep-vault/internal/core/domain"
	"deep-vault/internal/core/port"

	"github.com/google/uuid"
)

// Create grants another principal access to one of the owner's files.
// The first active share on a private file flips its visibility to
// shared. Temporary shares must carry a future expiry; permanent
// shares never carry one.
func (s *shareService) Create(ctx context.Context, ownerID uuid.UUID, params port.CreateShareParams) (*domain.FileShare, error) {
	if params.ToPrincipalID == ownerID {
		return nil, domain.ErrPermissionDenied
	}

	switch params.ShareType {
	case domain.ShareTypeTemporary:
		if params.ExpiresAt == nil || !params.ExpiresAt.After(time.Now()) {
			return nil, domain.ErrShareExpiryRequired
		}
	case domain.ShareTypePermanent:
		params.ExpiresAt = nil
	default:
		return nil, domain.ErrShareExpiryRequired
	}

	if params.PermissionLevel == "" {
		params.PermissionLevel = domain.PermissionView
	}

	share := domain.FileShare{
		ID:              uuid.New(),
		FileID:          params.FileID,
		FromOwnerID:     ownerID,
		ToPrincipalID:   params.ToPrincipalID,
		ShareType:       params.ShareType,
		ExpiresAt:       params.ExpiresAt,
		PermissionLevel: params.PermissionLevel,
		Message:         params.Message,
	}

	txErr := s.uow.Execute(ctx, func(uow port.UnitOfWork) error {
		record, err := loadOwnedFile(ctx, uow, ownerID, params.FileID)
		if err != nil {
			return err
		}

		known, err := uow.Principals().Exists(ctx, params.ToPrincipalID)
		if err != nil {
			return err
		}
		if !known {
			return domain.ErrPrincipalNotFound
		}

		if err := uow.ShareRepo().Create(ctx, share); err != nil {
			return err
		}

		if record.Visibility == domain.VisibilityPrivate {
			return uow.FileRepo().UpdateVisibility(ctx, record.ID, domain.VisibilityShared)
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return &share, nil
}
