package share

import (
	"context"
	"time"

	"deep-vault/internal/core/domain"
	"deep-vault/internal/core/port"

	"github.com/google/uuid"
)

// ListOutgoing pages through grants the owner has issued, revoked ones
// included so the history stays visible.
func (s *shareService) ListOutgoing(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]domain.FileShare, error) {
	var shares []domain.FileShare
	txErr := s.uow.Execute(ctx, func(uow port.UnitOfWork) error {
		var err error
		shares, err = uow.ShareRepo().ListOutgoing(ctx, ownerID, limit, offset)
		return err
	})
	if txErr != nil {
		return nil, txErr
	}
	return shares, nil
}

// ListIncoming pages through the grants the principal can still use.
func (s *shareService) ListIncoming(ctx context.Context, principalID uuid.UUID, limit, offset int) ([]domain.FileShare, error) {
	var shares []domain.FileShare
	txErr := s.uow.Execute(ctx, func(uow port.UnitOfWork) error {
		var err error
		shares, err = uow.ShareRepo().ListIncoming(ctx, principalID, time.Now(), limit, offset)
		return err
	})
	if txErr != nil {
		return nil, txErr
	}
	return shares, nil
}

// Detail returns one share; only the two principals party to it may look.
func (s *shareService) Detail(ctx context.Context, callerID, shareID uuid.UUID) (*domain.FileShare, error) {
	var share *domain.FileShare
	txErr := s.uow.Execute(ctx, func(uow port.UnitOfWork) error {
		found, err := uow.ShareRepo().FindByID(ctx, shareID)
		if err != nil {
			return err
		}
		if found.FromOwnerID != callerID && found.ToPrincipalID != callerID {
			return domain.ErrPermissionDenied
		}
		share = found
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return share, nil
}
