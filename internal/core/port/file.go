package port

import (
	"context"
	"io"
	"time"

	"deep-vault/internal/core/domain"

	"github.com/google/uuid"
)

// FileListFilter narrows and pages an owner's file listing.
type FileListFilter struct {
	Category     *domain.Category
	TagID        *uuid.UUID
	NameContains string
	Limit        int
	Offset       int
}

// FileRepository is an interface to define file record repository interactions
type FileRepository interface {
	Create(ctx context.Context, record domain.FileRecord) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.FileRecord, error)
	FindCanonicalByHash(ctx context.Context, contentHash string) (*domain.FileRecord, error)
	FindByOwnerAndHash(ctx context.Context, ownerID uuid.UUID, contentHash string) (*domain.FileRecord, error)
	List(ctx context.Context, ownerID uuid.UUID, filter FileListFilter) ([]domain.FileRecord, int64, error)
	UpdateName(ctx context.Context, id uuid.UUID, name string) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.FileStatus) error
	UpdateVisibility(ctx context.Context, id uuid.UUID, visibility domain.Visibility) error
	SetTrashed(ctx context.Context, id, ownerID uuid.UUID, trashed bool) error
	Delete(ctx context.Context, id uuid.UUID) error
	IncrementRefCount(ctx context.Context, id uuid.UUID) error
	DecrementRefCountByStorageKey(ctx context.Context, storageKey string, excludeID uuid.UUID) error
	CountByStorageKey(ctx context.Context, storageKey string, excludeID uuid.UUID) (int, error)
	ExistsByStorageKey(ctx context.Context, storageKey string) (bool, error)
	ListTrashed(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]domain.FileRecord, error)
	TrashStats(ctx context.Context, ownerID uuid.UUID) (*domain.TrashStats, error)
	ListActiveByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.FileRecord, error)
	FindStaleUploading(ctx context.Context, cutoff time.Time) ([]domain.FileRecord, error)
}

// ObjectStorage is an interface to define object store interactions
type ObjectStorage interface {
	Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) error
	Get(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	PresignedDownloadURL(ctx context.Context, key string, expiry time.Duration) (string, error)
	ListKeysOlderThan(ctx context.Context, prefix string, olderThan time.Time) ([]string, error)
}

// FileService is an interface to define the file metadata engine
type FileService interface {
	Upload(ctx context.Context, ownerID uuid.UUID, content []byte, name string, category domain.Category, tagIDs []uuid.UUID, actx domain.AccessContext) (*domain.FileRecord, error)
	CheckExists(ctx context.Context, ownerID uuid.UUID, contentHash string) (bool, *domain.FileRecord, error)
	Get(ctx context.Context, callerID, fileID uuid.UUID) (*domain.FileDetail, error)
	List(ctx context.Context, ownerID uuid.UUID, filter FileListFilter) ([]domain.FileRecord, int64, error)
	Rename(ctx context.Context, ownerID, fileID uuid.UUID, newName string) (*domain.FileRecord, error)
	Download(ctx context.Context, callerID, fileID uuid.UUID, actx domain.AccessContext) (io.ReadCloser, *domain.FileRecord, error)
	PreviewURL(ctx context.Context, callerID, fileID uuid.UUID, expiry time.Duration, actx domain.AccessContext) (*domain.PreviewGrant, error)
}
