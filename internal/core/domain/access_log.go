package domain

import (
	"time"

	"github.com/google/uuid"
)

// AccessType represents the kind of recorded file access
type AccessType string

const (
	AccessTypeUpload   AccessType = "upload"
	AccessTypeDownload AccessType = "download"
	AccessTypePreview  AccessType = "preview"
)

// AccessLogEntry is an append-only audit row. This core never mutates
// or deletes entries.
type AccessLogEntry struct {
	ID          uuid.UUID
	FileID      uuid.UUID
	PrincipalID *uuid.UUID
	AccessType  AccessType
	ClientIP    string
	UserAgent   string
	ShareID     *uuid.UUID
	CreatedAt   time.Time
}
