package domain

import "time"

// FileDetail is the full view of a file record with its tags, active
// shares and access counters derived from the audit log.
type FileDetail struct {
	FileRecord
	Tags           []Tag
	Shares         []FileShare
	ViewCount      int64
	DownloadCount  int64
	LastAccessedAt *time.Time
}

// PreviewGrant is a time-limited presigned link to a file's bytes.
type PreviewGrant struct {
	URL       string
	ExpiresIn time.Duration
	ExpiresAt time.Time
}

// AccessContext carries transport-level facts recorded in the audit log.
type AccessContext struct {
	ClientIP  string
	UserAgent string
}
