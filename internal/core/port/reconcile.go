package port

import (
	"context"
	"time"
)

// ReconcileService sweeps the two tolerated orphan directions: stale
// uploading records without finalized bytes, and stored objects without
// a metadata referent.
type ReconcileService interface {
	SweepStaleUploads(ctx context.Context, now time.Time) error
	SweepOrphanObjects(ctx context.Context, now time.Time) error
}
