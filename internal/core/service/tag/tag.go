package tag

import (
	"context"
	"errors"
	"strings"
	"time"

	"deep-vault/internal/core/domain"
	"deep-vault/internal/core/port"

	"github.com/google/uuid"
)

type tagService struct {
	uow         port.UnitOfWork
	maxFileTags int
}

// NewTagService creates a new tag service
func NewTagService(uow port.UnitOfWork, maxFileTags int) port.TagService {
	return &tagService{uow: uow, maxFileTags: maxFileTags}
}

func normalizeTagName(name string) (string, error) {
	name = strings.TrimSpace(strings.ToLower(name))
	if name == "" || len(name) > 50 {
		return "", domain.ErrInvalidTagName
	}
	return name, nil
}

// loadOwnedFile fetches a non-trashed record and enforces ownership.
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

// canSeeFile mirrors the file service arbitration for read access:
// owner, public visibility, or an active unexpired share.
func canSeeFile(ctx context.Context, uow port.UnitOfWork, callerID uuid.UUID, record *domain.FileRecord) error {
	if record.OwnerID == callerID || record.Visibility == domain.VisibilityPublic {
		return nil
	}
	share, err := uow.ShareRepo().FindActiveByFileAndPrincipal(ctx, record.ID, callerID)
	if err != nil {
		if errors.Is(err, domain.ErrShareNotFound) {
			return domain.ErrPermissionDenied
		}
		return err
	}
	if share.Expired(time.Now()) {
		return domain.ErrShareExpired
	}
	return nil
}
