package domain

import (
	"time"

	"github.com/google/uuid"
)

// FileTag represents a file-to-tag association
type FileTag struct {
	FileID    uuid.UUID
	TagID     uuid.UUID
	CreatedAt time.Time
}
