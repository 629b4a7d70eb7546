package domain

import "github.com/google/uuid"

// IngestAnnouncement is published by the ingestion pipeline after it
// has written fetched bytes into the object store. The consumer
// registers metadata for the already-stored object through the same
// upload primitives the HTTP layer uses.
type IngestAnnouncement struct {
	OwnerID      uuid.UUID `json:"owner_id"`
	ObjectKey    string    `json:"object_key"`
	OriginalName string    `json:"original_name"`
	Category     string    `json:"category"`
	ContentType  string    `json:"content_type"`
	SourceURL    string    `json:"source_url,omitempty"`
}
