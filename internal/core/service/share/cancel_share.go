package share

import (
	"context"

	"deep-vault/internal/core/domain"
	"deep-vault/internal/core/port"

	"github.com/google/uuid"
)

// Cancel revokes a grant. Only the sharer may cancel. Revoking the
// last active share on a shared file resets its visibility to private.
func (s *shareService) Cancel(ctx context.Context, callerID, shareID uuid.UUID) error {
	return s.uow.Execute(ctx, func(uow port.UnitOfWork) error {
		share, err := uow.ShareRepo().FindByID(ctx, shareID)
		if err != nil {
			return err
		}
		if share.Revoked {
			return domain.ErrShareNotFound
		}
		if share.FromOwnerID != callerID {
			return domain.ErrPermissionDenied
		}

		if err := uow.ShareRepo().Revoke(ctx, shareID); err != nil {
			return err
		}

		remaining, err := uow.ShareRepo().CountActiveByFile(ctx, share.FileID)
		if err != nil {
			return err
		}
		if remaining > 0 {
			return nil
		}

		record, err := uow.FileRepo().FindByID(ctx, share.FileID)
		if err != nil {
			return err
		}
		if record.Visibility == domain.VisibilityShared {
			return uow.FileRepo().UpdateVisibility(ctx, record.ID, domain.VisibilityPrivate)
		}
		return nil
	})
}
