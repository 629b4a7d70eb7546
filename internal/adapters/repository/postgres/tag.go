package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"deep-vault/internal/core/domain"
	"deep-vault/internal/core/port"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type sqlTagRepository struct {
	db SQLQuerier
}

// NewSqlTagRepository creates sqlTagRepository that implements port.TagRepository
func NewSqlTagRepository(db SQLQuerier) port.TagRepository {
	return &sqlTagRepository{db: db}
}

// Create inserts a new tag. A duplicate (owner_id, name) pair maps to
// domain.ErrTagAlreadyExists.
func (s *sqlTagRepository) Create(ctx context.Context, tag domain.Tag) error {
	query := `INSERT INTO tags (id, owner_id, name, color, usage_count)
              VALUES ($1, $2, $3, $4, $5)`

	_, err := s.db.ExecContext(ctx, query, tag.ID, tag.OwnerID, tag.Name, tag.Color, tag.UsageCount)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return domain.ErrTagAlreadyExists
		}
		return fmt.Errorf("error inserting tag: %w", err)
	}
	return nil
}

// Update renames or recolors a tag
func (s *sqlTagRepository) Update(ctx context.Context, id uuid.UUID, name, color string) error {
	query := `UPDATE tags SET name = $1, color = $2, updated_at = now() WHERE id = $3`

	result, err := s.db.ExecContext(ctx, query, name, color, id)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return domain.ErrTagAlreadyExists
		}
		return fmt.Errorf("error updating tag: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return domain.ErrTagNotFound
	}
	return nil
}

// Delete removes the tag row
func (s *sqlTagRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM tags WHERE id = $1`

	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("error deleting tag: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return domain.ErrTagNotFound
	}
	return nil
}

// FindByID finds a tag by id
func (s *sqlTagRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Tag, error) {
	query := `SELECT id, owner_id, name, color, usage_count, created_at, updated_at
              FROM tags WHERE id = $1`

	var dbTag dbTag
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&dbTag.ID, &dbTag.OwnerID, &dbTag.Name, &dbTag.Color,
		&dbTag.UsageCount, &dbTag.CreatedAt, &dbTag.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTagNotFound
		}
		return nil, err
	}
	return dbTag.ToDomain(), nil
}

// ListByOwner lists the owner's tags ordered by name
func (s *sqlTagRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Tag, error) {
	query := `SELECT id, owner_id, name, color, usage_count, created_at, updated_at
              FROM tags WHERE owner_id = $1 ORDER BY name ASC`

	rows, err := s.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("error querying tags: %w", err)
	}
	defer rows.Close()

	return scanTags(rows)
}

// FindOwnedByIDs returns the subset of ids that exist and belong to the
// owner. Callers compare lengths to detect foreign or missing tags.
func (s *sqlTagRepository) FindOwnedByIDs(ctx context.Context, ownerID uuid.UUID, ids []uuid.UUID) ([]domain.Tag, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := `SELECT id, owner_id, name, color, usage_count, created_at, updated_at
              FROM tags WHERE owner_id = $1 AND id = ANY($2)`

	rows, err := s.db.QueryContext(ctx, query, ownerID, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("error querying tags by ids: %w", err)
	}
	defer rows.Close()

	return scanTags(rows)
}

// IncrementUsage bumps usage_count for every id in one statement
func (s *sqlTagRepository) IncrementUsage(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	query := `UPDATE tags SET usage_count = usage_count + 1, updated_at = now()
              WHERE id = ANY($1)`

	_, err := s.db.ExecContext(ctx, query, pq.Array(ids))
	if err != nil {
		return fmt.Errorf("error incrementing tag usage: %w", err)
	}
	return nil
}

// DecrementUsage lowers usage_count with a floor of zero
func (s *sqlTagRepository) DecrementUsage(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	query := `UPDATE tags SET usage_count = usage_count - 1, updated_at = now()
              WHERE id = ANY($1) AND usage_count > 0`

	_, err := s.db.ExecContext(ctx, query, pq.Array(ids))
	if err != nil {
		return fmt.Errorf("error decrementing tag usage: %w", err)
	}
	return nil
}

func scanTags(rows *sql.Rows) ([]domain.Tag, error) {
	var tags []domain.Tag
	for rows.Next() {
		var dbTag dbTag
		err := rows.Scan(
			&dbTag.ID, &dbTag.OwnerID, &dbTag.Name, &dbTag.Color,
			&dbTag.UsageCount, &dbTag.CreatedAt, &dbTag.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning tag: %w", err)
		}
		tags = append(tags, *dbTag.ToDomain())
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tags: %w", err)
	}
	return tags, nil
}

// dbTag represents a tag row in DB
type dbTag struct {
	ID         uuid.UUID `db:"id"`
	OwnerID    uuid.UUID `db:"owner_id"`
	Name       string    `db:"name"`
	Color      string    `db:"color"`
	UsageCount int       `db:"usage_count"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

// ToDomain converts to domain.Tag
func (t *dbTag) ToDomain() *domain.Tag {
	return &domain.Tag{
		ID:         t.ID,
		OwnerID:    t.OwnerID,
		Name:       t.Name,
		Color:      t.Color,
		UsageCount: t.UsageCount,
		CreatedAt:  t.CreatedAt,
		UpdatedAt:  t.UpdatedAt,
	}
}
