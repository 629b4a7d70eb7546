package reconcile

import (
	"context"
	"time"

	"deep-vault/internal/core/port"
)

// SweepOrphanObjects removes stored objects that no record addresses.
// Orphans are a tolerated byproduct of metadata-first deletion; only
// objects older than the grace period are candidates so in-flight
// uploads are never raced.
func (r *reconcileService) SweepOrphanObjects(ctx context.Context, now time.Time) error {
	keys, err := r.storage.ListKeysOlderThan(ctx, "", now.Add(-r.cfg.OrphanGraceAge))
	if err != nil {
		return err
	}

	var orphans []string
	txErr := r.uow.Execute(ctx, func(uow port.UnitOfWork) error {
		for _, key := range keys {
			referenced, err := uow.FileRepo().ExistsByStorageKey(ctx, key)
			if err != nil {
				return err
			}
			if !referenced {
				orphans = append(orphans, key)
			}
		}
		return nil
	})
	if txErr != nil {
		return txErr
	}

	for _, key := range orphans {
		if err := r.storage.Delete(ctx, key); err != nil {
			r.logger.Warn("failed to remove orphan object", "storage_key", key, "error", err)
			continue
		}
		r.logger.Info("orphan object removed", "storage_key", key)
	}
	return nil
}
