package file

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"mime"
	"time"

	"deep-vault/internal/core/domain"
	"deep-vault/internal/core/port"

	"github.com/google/uuid"
)

// Upload stores content once per hash and registers a metadata record
// for the owner. A same-owner re-upload returns the existing record
// untouched; a cross-owner match inserts a new record pointing at the
// canonical record's object and bumps its reference count. Bytes reach
// the object store before any metadata row is written.
func (f *fileService) Upload(ctx context.Context, ownerID uuid.UUID, content []byte, name string, category domain.Category, tagIDs []uuid.UUID, actx domain.AccessContext) (*domain.FileRecord, error) {
	if int64(len(content)) > f.uploadCfg.MaxFileSize {
		return nil, domain.ErrFileSizeTooBig
	}
	if err := validateFilename(name); err != nil {
		return nil, err
	}
	if !domain.ValidCategory(category) {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidCategory, category)
	}
	if len(tagIDs) > f.uploadCfg.MaxFileTags {
		return nil, fmt.Errorf("%w: at most %d tags per file", domain.ErrTagNotFound, f.uploadCfg.MaxFileTags)
	}

	contentHash := hashContent(content)

	var result *domain.FileRecord
	txErr := f.uow.Execute(ctx, func(uow port.UnitOfWork) error {
		existing, err := uow.FileRepo().FindByOwnerAndHash(ctx, ownerID, contentHash)
		if err != nil && !errors.Is(err, domain.ErrFileNotFound) {
			return err
		}
		if existing != nil {
			result = existing
			return nil
		}

		canonical, err := uow.FileRepo().FindCanonicalByHash(ctx, contentHash)
		if err != nil && !errors.Is(err, domain.ErrFileNotFound) {
			return err
		}

		record := domain.FileRecord{
			ID:           uuid.New(),
			OwnerID:      ownerID,
			ContentHash:  contentHash,
			OriginalName: name,
			SizeBytes:    int64(len(content)),
			MimeType:     detectMimeType(name),
			Extension:    extractExtension(name),
			Category:     category,
			Status:       domain.FileStatusCompleted,
			Visibility:   domain.VisibilityPrivate,
		}

		if canonical != nil {
			record.StorageKey = canonical.StorageKey
			if err := uow.FileRepo().Create(ctx, record); err != nil {
				return err
			}
			if err := uow.FileRepo().IncrementRefCount(ctx, canonical.ID); err != nil {
				return err
			}
		} else {
			record.StorageKey = buildStorageKey(ownerID, category, record.Extension, time.Now())
			if err := f.storage.Put(ctx, record.StorageKey, bytes.NewReader(content), record.SizeBytes, record.MimeType); err != nil {
				return fmt.Errorf("%w: %w", domain.ErrFileUploadFailed, err)
			}
			if err := uow.FileRepo().Create(ctx, record); err != nil {
				return err
			}
		}

		if err := f.applyTags(ctx, uow, ownerID, record.ID, tagIDs); err != nil {
			return err
		}

		result = &record
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	f.logAccess(ctx, result.ID, ownerID, domain.AccessTypeUpload, nil, actx)

	return result, nil
}

// applyTags links the owner's tags to a fresh record and bumps each
// tag's usage count once per inserted link. Ids that do not resolve or
// belong to someone else are silently dropped.
func (f *fileService) applyTags(ctx context.Context, uow port.UnitOfWork, ownerID, fileID uuid.UUID, tagIDs []uuid.UUID) error {
	if len(tagIDs) == 0 {
		return nil
	}

	owned, err := uow.TagRepo().FindOwnedByIDs(ctx, ownerID, dedupIDs(tagIDs))
	if err != nil {
		return err
	}
	if len(owned) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, 0, len(owned))
	for _, t := range owned {
		ids = append(ids, t.ID)
	}

	if _, err := uow.FileTagRepo().CreateMany(ctx, fileID, ids); err != nil {
		return err
	}
	return uow.TagRepo().IncrementUsage(ctx, ids)
}

func dedupIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func detectMimeType(name string) string {
	if ext := extractExtension(name); ext != "" {
		if mt := mime.TypeByExtension("." + ext); mt != "" {
			return mt
		}
	}
	return "application/octet-stream"
}
