package file

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"deep-vault/internal/config"
	"deep-vault/internal/core/domain"
	"deep-vault/internal/core/port"

	"github.com/google/uuid"
)

type fileService struct {
	storage   port.ObjectStorage
	uow       port.UnitOfWork
	audit     port.AccessLogService
	uploadCfg config.FileUploadConfig
}

// NewFileService creates a new file service
func NewFileService(uow port.UnitOfWork, storage port.ObjectStorage, audit port.AccessLogService, cfg config.FileUploadConfig) port.FileService {
	return &fileService{uow: uow, storage: storage, audit: audit, uploadCfg: cfg}
}

var hashPattern = regexp.MustCompile(`^[0-9a-f]{64}$`)

// hashContent computes the lowercase hex sha256 digest used as the
// global dedup key.
func hashContent(content []byte) string {
	sum := sha256.Sum256(content)
	return hex.EncodeToString(sum[:])
}

func validateHash(h string) error {
	if !hashPattern.MatchString(h) {
		return domain.ErrInvalidHash
	}
	return nil
}

func validateFilename(name string) error {
	if name == "" || len(name) > 255 {
		return domain.ErrInvalidFilename
	}
	if strings.ContainsAny(name, "/\\\x00") {
		return domain.ErrInvalidFilename
	}
	return nil
}

func extractExtension(name string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	return ext
}

// buildStorageKey lays object keys out as owner/category/yyyymmdd/uuid.ext
// so orphan sweeps and per-owner tooling can prefix-scan them.
func buildStorageKey(ownerID uuid.UUID, category domain.Category, ext string, now time.Time) string {
	key := fmt.Sprintf("%s/%s/%s/%s", ownerID, category, now.Format("20060102"), uuid.NewString())
	if ext != "" {
		key = key + "." + ext
	}
	return key
}

// resolveAccess arbitrates caller access to a record: the owner and
// public files pass outright, anyone else needs an active, unexpired
// share. The share is returned so callers can bump its counters.
func resolveAccess(ctx context.Context, uow port.UnitOfWork, callerID uuid.UUID, record *domain.FileRecord) (*domain.FileShare, error) {
	if record.OwnerID == callerID {
		return nil, nil
	}
	if record.Visibility == domain.VisibilityPublic {
		return nil, nil
	}

	share, err := uow.ShareRepo().FindActiveByFileAndPrincipal(ctx, record.ID, callerID)
	if err != nil {
		if errors.Is(err, domain.ErrShareNotFound) {
			return nil, domain.ErrPermissionDenied
		}
		return nil, err
	}
	if share.Expired(time.Now()) {
		return nil, domain.ErrShareExpired
	}
	return share, nil
}

// logAccess appends an audit row after the operation's transaction has
// committed. Best effort: the audit service swallows write failures so
// a broken log never fails the access that triggered it.
func (f *fileService) logAccess(ctx context.Context, fileID, principalID uuid.UUID, accessType domain.AccessType, shareID *uuid.UUID, actx domain.AccessContext) {
	f.audit.Record(ctx, domain.AccessLogEntry{
		FileID:      fileID,
		PrincipalID: &principalID,
		AccessType:  accessType,
		ClientIP:    actx.ClientIP,
		UserAgent:   actx.UserAgent,
		ShareID:     shareID,
	})
}
