package port

import (
	"context"
	"time"

	"deep-vault/internal/core/domain"

	"github.com/google/uuid"
)

// ShareRepository represents a file share repository implementation
type ShareRepository interface {
	Create(ctx context.Context, share domain.FileShare) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.FileShare, error)
	FindActiveByFileAndPrincipal(ctx context.Context, fileID, principalID uuid.UUID) (*domain.FileShare, error)
	Revoke(ctx context.Context, id uuid.UUID) error
	CountActiveByFile(ctx context.Context, fileID uuid.UUID) (int, error)
	ListActiveByFile(ctx context.Context, fileID uuid.UUID) ([]domain.FileShare, error)
	CountActiveFrom(ctx context.Context, ownerID uuid.UUID) (int64, error)
	CountActiveTo(ctx context.Context, principalID uuid.UUID) (int64, error)
	ListOutgoing(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]domain.FileShare, error)
	ListIncoming(ctx context.Context, principalID uuid.UUID, now time.Time, limit, offset int) ([]domain.FileShare, error)
	IncrementViewCount(ctx context.Context, id uuid.UUID) error
	IncrementDownloadCount(ctx context.Context, id uuid.UUID) error
	DeleteByFileID(ctx context.Context, fileID uuid.UUID) error
}

// CreateShareParams carries the terms of a new share grant.
type CreateShareParams struct {
	FileID          uuid.UUID
	ToPrincipalID   uuid.UUID
	ShareType       domain.ShareType
	ExpiresAt       *time.Time
	PermissionLevel domain.PermissionLevel
	Message         string
}

// ShareService arbitrates owner-vs-shared access and share lifecycle
type ShareService interface {
	Create(ctx context.Context, ownerID uuid.UUID, params CreateShareParams) (*domain.FileShare, error)
	Cancel(ctx context.Context, callerID, shareID uuid.UUID) error
	CheckAccess(ctx context.Context, callerID, fileID uuid.UUID) (*domain.FileShare, error)
	ListOutgoing(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]domain.FileShare, error)
	ListIncoming(ctx context.Context, principalID uuid.UUID, limit, offset int) ([]domain.FileShare, error)
	Detail(ctx context.Context, callerID, shareID uuid.UUID) (*domain.FileShare, error)
}
