package file

import (
	"time"

	"deep-vault/internal/core/domain"

	"github.com/google/uuid"
)

// V1FileRecordResponse is the wire form of a file record
type V1FileRecordResponse struct {
	FileID         uuid.UUID `json:"file_id"`
	Name           string    `json:"name"`
	ContentHash    string    `json:"content_hash"`
	SizeBytes      int64     `json:"size_bytes"`
	MimeType       string    `json:"mime_type"`
	Extension      string    `json:"extension,omitempty"`
	Category       string    `json:"category"`
	Status         string    `json:"status"`
	Visibility     string    `json:"visibility"`
	ReferenceCount int       `json:"reference_count"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func toFileRecordResponse(record domain.FileRecord) V1FileRecordResponse {
	return V1FileRecordResponse{
		FileID:         record.ID,
		Name:           record.OriginalName,
		ContentHash:    record.ContentHash,
		SizeBytes:      record.SizeBytes,
		MimeType:       record.MimeType,
		Extension:      record.Extension,
		Category:       string(record.Category),
		Status:         string(record.Status),
		Visibility:     string(record.Visibility),
		ReferenceCount: record.ReferenceCount,
		CreatedAt:      record.CreatedAt,
		UpdatedAt:      record.UpdatedAt,
	}
}
