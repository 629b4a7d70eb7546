package domain

import (
	"time"

	"github.com/google/uuid"
)

// Tag represents a per-owner label. UsageCount tracks the number of
// links to non-trashed files and is reconciled by set difference on
// every re-link.
type Tag struct {
	ID         uuid.UUID
	OwnerID    uuid.UUID
	Name       string
	Color      string
	UsageCount int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
