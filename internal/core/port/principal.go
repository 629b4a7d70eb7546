package port

import (
	"context"

	"github.com/google/uuid"
)

// PrincipalDirectory answers existence checks against the identity
// service's principal table. This core never writes to it.
type PrincipalDirectory interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}
