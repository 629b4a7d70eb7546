package domain

import (
	"time"

	"github.com/google/uuid"
)

// FileStatus represents the lifecycle status of a file record
type FileStatus string

const (
	FileStatusUploading FileStatus = "uploading"
	FileStatusCompleted FileStatus = "completed"
	FileStatusFailed    FileStatus = "failed"
	FileStatusDeleted   FileStatus = "deleted"
)

// Visibility represents who may see a file
type Visibility string

const (
	VisibilityPrivate Visibility = "private"
	VisibilityPublic  Visibility = "public"
	VisibilityShared  Visibility = "shared"
)

// Category represents the business category of a file
type Category string

const (
	CategoryAvatar   Category = "avatar"
	CategoryDocument Category = "document"
	CategoryImage    Category = "image"
	CategoryVideo    Category = "video"
	CategoryTemp     Category = "temp"
)

// ValidCategory reports whether c belongs to the closed category vocabulary.
func ValidCategory(c Category) bool {
	switch c {
	case CategoryAvatar, CategoryDocument, CategoryImage, CategoryVideo, CategoryTemp:
		return true
	}
	return false
}

// FileRecord represents one stored content object instance.
// The content hash is the global dedup key; records of different owners
// may share a storage key, tracked through ReferenceCount on the
// canonical (oldest) record.
type FileRecord struct {
	ID             uuid.UUID
	OwnerID        uuid.UUID
	StorageKey     string
	ContentHash    string
	OriginalName   string
	SizeBytes      int64
	MimeType       string
	Extension      string
	Category       Category
	Status         FileStatus
	Visibility     Visibility
	DeleteFlag     bool
	ReferenceCount int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// BatchResult aggregates per-item outcomes of a batch operation.
type BatchResult struct {
	Total     int
	Succeeded int
	Failed    int
}
