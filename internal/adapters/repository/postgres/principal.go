package postgres

import (
	"context"
	"fmt"

	"deep-vault/internal/core/port"

	"github.com/google/uuid"
)

// Identity lives outside this service; the principals table is a
// read-only projection used to validate share targets.
type sqlPrincipalDirectory struct {
	db SQLQuerier
}

// NewSqlPrincipalDirectory creates sqlPrincipalDirectory that implements port.PrincipalDirectory
func NewSqlPrincipalDirectory(db SQLQuerier) port.PrincipalDirectory {
	return &sqlPrincipalDirectory{db: db}
}

// Exists reports whether the principal is known
func (s *sqlPrincipalDirectory) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM principals WHERE id = $1)`

	var exists bool
	if err := s.db.QueryRowContext(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("error checking principal: %w", err)
	}
	return exists, nil
}
