package domain

import (
	"time"

	"github.com/google/uuid"
)

// ShareType represents the duration class of a share
type ShareType string

const (
	ShareTypePermanent ShareType = "permanent"
	ShareTypeTemporary ShareType = "temporary"
)

// PermissionLevel is recorded on a share. Access checks do not gate on
// it; any active, unexpired share grants preview and download.
type PermissionLevel string

const (
	PermissionView     PermissionLevel = "view"
	PermissionDownload PermissionLevel = "download"
	PermissionEdit     PermissionLevel = "edit"
)

// FileShare is a directed grant from the file owner to another
// principal. Expiry is a time predicate evaluated at access time; a
// past ExpiresAt does not flip Revoked.
type FileShare struct {
	ID              uuid.UUID
	FileID          uuid.UUID
	FromOwnerID     uuid.UUID
	ToPrincipalID   uuid.UUID
	ShareType       ShareType
	ExpiresAt       *time.Time
	PermissionLevel PermissionLevel
	Revoked         bool
	Message         string
	ViewCount       int
	DownloadCount   int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Expired reports whether the share's window has elapsed at now.
func (s *FileShare) Expired(now time.Time) bool {
	return s.ExpiresAt != nil && !s.ExpiresAt.After(now)
}
