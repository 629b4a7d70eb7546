package ingest

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"path/filepath"
	"strings"

	"deep-vault/internal/core/domain"
	"deep-vault/internal/core/port"

	"github.com/google/uuid"
)

// HandleMessage registers metadata for an object the ingestion pipeline
// already wrote into the bucket. The record starts out uploading, the
// object is read back to establish its size and content hash, then the
// record is finalized completed or failed. Content already known under
// another storage key is deduplicated against the canonical record; the
// announced object is left behind for the orphan sweep.
func (s *ingestService) HandleMessage(ctx context.Context, data []byte) error {
	var ann domain.IngestAnnouncement
	if err := json.Unmarshal(data, &ann); err != nil {
		return fmt.Errorf("could not unmarshal ingest announcement: %w", err)
	}
	if ann.OwnerID == uuid.Nil || ann.ObjectKey == "" || ann.OriginalName == "" {
		return fmt.Errorf("incomplete ingest announcement: key=%q", ann.ObjectKey)
	}
	category := domain.Category(ann.Category)
	if !domain.ValidCategory(category) {
		return fmt.Errorf("%w: %s", domain.ErrInvalidCategory, ann.Category)
	}

	s.logger.Info("handling ingest announcement", "owner_id", ann.OwnerID, "key", ann.ObjectKey, "name", ann.OriginalName)

	record := domain.FileRecord{
		ID:           uuid.New(),
		OwnerID:      ann.OwnerID,
		StorageKey:   ann.ObjectKey,
		OriginalName: ann.OriginalName,
		MimeType:     s.contentType(ann),
		Extension:    strings.ToLower(strings.TrimPrefix(filepath.Ext(ann.OriginalName), ".")),
		Category:     category,
		Status:       domain.FileStatusUploading,
		Visibility:   domain.VisibilityPrivate,
	}

	var alreadyRegistered bool
	txErr := s.uow.Execute(ctx, func(uow port.UnitOfWork) error {
		known, err := uow.Principals().Exists(ctx, ann.OwnerID)
		if err != nil {
			return err
		}
		if !known {
			return fmt.Errorf("%w: %s", domain.ErrPrincipalNotFound, ann.OwnerID)
		}

		alreadyRegistered, err = uow.FileRepo().ExistsByStorageKey(ctx, ann.ObjectKey)
		if err != nil {
			return err
		}
		if alreadyRegistered {
			return nil
		}
		return uow.FileRepo().Create(ctx, record)
	})
	if txErr != nil {
		return txErr
	}
	if alreadyRegistered {
		s.logger.Info("ingest announcement already handled", "key", ann.ObjectKey)
		return nil
	}

	contentHash, sizeBytes, err := s.hashObject(ctx, ann.ObjectKey)
	if err != nil {
		s.failRecord(ctx, record.ID, "object unreadable", err)
		return nil
	}
	if sizeBytes > s.uploadCfg.MaxFileSize {
		s.failRecord(ctx, record.ID, "object too large", nil)
		return nil
	}

	return s.finalize(ctx, record, contentHash, sizeBytes)
}

// finalize swaps the uploading row for its terminal form: dropped when
// the owner already holds the content, pointed at the canonical record
// otherwise, created fresh when the content is globally new.
func (s *ingestService) finalize(ctx context.Context, record domain.FileRecord, contentHash string, sizeBytes int64) error {
	return s.uow.Execute(ctx, func(uow port.UnitOfWork) error {
		if err := uow.FileRepo().Delete(ctx, record.ID); err != nil {
			return err
		}

		existing, err := uow.FileRepo().FindByOwnerAndHash(ctx, record.OwnerID, contentHash)
		if err != nil && !errors.Is(err, domain.ErrFileNotFound) {
			return err
		}
		if existing != nil {
			s.logger.Info("ingest deduplicated against owner's record", "file_id", existing.ID, "key", record.StorageKey)
			return nil
		}

		record.ContentHash = contentHash
		record.SizeBytes = sizeBytes
		record.Status = domain.FileStatusCompleted

		canonical, err := uow.FileRepo().FindCanonicalByHash(ctx, contentHash)
		if err != nil && !errors.Is(err, domain.ErrFileNotFound) {
			return err
		}
		if canonical != nil {
			record.StorageKey = canonical.StorageKey
			if err := uow.FileRepo().Create(ctx, record); err != nil {
				return err
			}
			if err := uow.FileRepo().IncrementRefCount(ctx, canonical.ID); err != nil {
				return err
			}
		} else if err := uow.FileRepo().Create(ctx, record); err != nil {
			return err
		}

		ownerID := record.OwnerID
		return uow.AccessLogRepo().Create(ctx, domain.AccessLogEntry{
			ID:          uuid.New(),
			FileID:      record.ID,
			PrincipalID: &ownerID,
			AccessType:  domain.AccessTypeUpload,
		})
	})
}

func (s *ingestService) hashObject(ctx context.Context, key string) (string, int64, error) {
	body, err := s.storage.Get(ctx, key)
	if err != nil {
		return "", 0, err
	}
	defer body.Close()

	hasher := sha256.New()
	sizeBytes, err := io.Copy(hasher, body)
	if err != nil {
		return "", 0, err
	}
	return hex.EncodeToString(hasher.Sum(nil)), sizeBytes, nil
}

// failRecord marks the registered row failed; the sweep reclaims the
// object later. Never propagates so the announcement is not redelivered.
func (s *ingestService) failRecord(ctx context.Context, fileID uuid.UUID, reason string, cause error) {
	s.logger.Error("ingest failed", "file_id", fileID, "reason", reason, "error", cause)
	txErr := s.uow.Execute(ctx, func(uow port.UnitOfWork) error {
		return uow.FileRepo().UpdateStatus(ctx, fileID, domain.FileStatusFailed)
	})
	if txErr != nil {
		s.logger.Error("failed to mark ingest record failed", "file_id", fileID, "error", txErr)
	}
}

func (s *ingestService) contentType(ann domain.IngestAnnouncement) string {
	if ann.ContentType != "" {
		return ann.ContentType
	}
	if ext := filepath.Ext(ann.OriginalName); ext != "" {
		if mt := mime.TypeByExtension(ext); mt != "" {
			return mt
		}
	}
	return "application/octet-stream"
}
