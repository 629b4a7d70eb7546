package tag

import (
	"context"
	"fmt"

	"deep-vault/internal/core/domain"
	"deep-vault/internal/core/port"

	"github.com/google/uuid"
)

// SetFileTags replaces a file's tag set by difference: links present in
// the new set but not the old are added, links present in the old set
// but not the new are removed, and only those deltas touch the usage
// counters. Ids that do not resolve or belong to someone else are
// silently dropped; the applied set is returned. Passing an empty set
// clears every tag off the file.
func (t *tagService) SetFileTags(ctx context.Context, ownerID, fileID uuid.UUID, tagIDs []uuid.UUID) ([]uuid.UUID, error) {
	if len(tagIDs) > t.maxFileTags {
		return nil, fmt.Errorf("%w: at most %d tags per file", domain.ErrTagNotFound, t.maxFileTags)
	}

	var final []uuid.UUID
	txErr := t.uow.Execute(ctx, func(uow port.UnitOfWork) error {
		if _, err := loadOwnedFile(ctx, uow, ownerID, fileID); err != nil {
			return err
		}

		requested := make(map[uuid.UUID]struct{}, len(tagIDs))
		var requestedIDs []uuid.UUID
		for _, id := range tagIDs {
			if _, ok := requested[id]; ok {
				continue
			}
			requested[id] = struct{}{}
			requestedIDs = append(requestedIDs, id)
		}

		wanted := make(map[uuid.UUID]struct{}, len(requestedIDs))
		var wantedIDs []uuid.UUID
		if len(requestedIDs) > 0 {
			owned, err := uow.TagRepo().FindOwnedByIDs(ctx, ownerID, requestedIDs)
			if err != nil {
				return err
			}
			for _, ownedTag := range owned {
				wanted[ownedTag.ID] = struct{}{}
				wantedIDs = append(wantedIDs, ownedTag.ID)
			}
		}

		links, err := uow.FileTagRepo().FindByFileID(ctx, fileID)
		if err != nil {
			return err
		}
		current := make(map[uuid.UUID]struct{}, len(links))
		for _, link := range links {
			current[link.TagID] = struct{}{}
		}

		var added []uuid.UUID
		for _, id := range wantedIDs {
			if _, ok := current[id]; !ok {
				added = append(added, id)
			}
		}
		var removed []uuid.UUID
		for id := range current {
			if _, ok := wanted[id]; !ok {
				removed = append(removed, id)
			}
		}

		if len(added) > 0 {
			if _, err := uow.FileTagRepo().CreateMany(ctx, fileID, added); err != nil {
				return err
			}
			if err := uow.TagRepo().IncrementUsage(ctx, added); err != nil {
				return err
			}
		}
		for _, id := range removed {
			if err := uow.FileTagRepo().Delete(ctx, fileID, id); err != nil {
				return err
			}
		}
		if len(removed) > 0 {
			if err := uow.TagRepo().DecrementUsage(ctx, removed); err != nil {
				return err
			}
		}

		final = wantedIDs
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return final, nil
}
