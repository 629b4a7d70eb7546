package postgres

import (
	"context"
	"fmt"

	"deep-vault/internal/core/domain"
	"deep-vault/internal/core/port"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type sqlFileTagRepository struct {
	db SQLQuerier
}

// NewSqlFileTagRepository creates sqlFileTagRepository that implements port.FileTagRepository
func NewSqlFileTagRepository(db SQLQuerier) port.FileTagRepository {
	return &sqlFileTagRepository{db: db}
}

// FindByFileID lists the link rows for a file
func (s *sqlFileTagRepository) FindByFileID(ctx context.Context, fileID uuid.UUID) ([]domain.FileTag, error) {
	query := `SELECT file_id, tag_id, created_at FROM file_tags WHERE file_id = $1`

	rows, err := s.db.QueryContext(ctx, query, fileID)
	if err != nil {
		return nil, fmt.Errorf("error querying file tags: %w", err)
	}
	defer rows.Close()

	var links []domain.FileTag
	for rows.Next() {
		var link domain.FileTag
		if err := rows.Scan(&link.FileID, &link.TagID, &link.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning file tag: %w", err)
		}
		links = append(links, link)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating file tags: %w", err)
	}
	return links, nil
}

// CreateMany links the file to every tag id, skipping links that already
// exist, and reports how many rows were actually inserted.
func (s *sqlFileTagRepository) CreateMany(ctx context.Context, fileID uuid.UUID, tagIDs []uuid.UUID) (int, error) {
	if len(tagIDs) == 0 {
		return 0, nil
	}

	query := `INSERT INTO file_tags (file_id, tag_id)
              SELECT $1, unnest($2::uuid[])
              ON CONFLICT (file_id, tag_id) DO NOTHING`

	result, err := s.db.ExecContext(ctx, query, fileID, pq.Array(tagIDs))
	if err != nil {
		return 0, fmt.Errorf("error inserting file tags: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("error checking rows affected: %w", err)
	}
	return int(rowsAffected), nil
}

// Delete removes one link row
func (s *sqlFileTagRepository) Delete(ctx context.Context, fileID, tagID uuid.UUID) error {
	query := `DELETE FROM file_tags WHERE file_id = $1 AND tag_id = $2`

	result, err := s.db.ExecContext(ctx, query, fileID, tagID)
	if err != nil {
		return fmt.Errorf("error deleting file tag: %w", err)
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

// DeleteByFileID removes every link of the file
func (s *sqlFileTagRepository) DeleteByFileID(ctx context.Context, fileID uuid.UUID) error {
	query := `DELETE FROM file_tags WHERE file_id = $1`

	_, err := s.db.ExecContext(ctx, query, fileID)
	if err != nil {
		return fmt.Errorf("error deleting file tags: %w", err)
	}
	return nil
}

// DeleteByTagID removes every link of the tag
func (s *sqlFileTagRepository) DeleteByTagID(ctx context.Context, tagID uuid.UUID) error {
	query := `DELETE FROM file_tags WHERE tag_id = $1`

	_, err := s.db.ExecContext(ctx, query, tagID)
	if err != nil {
		return fmt.Errorf("error deleting tag links: %w", err)
	}
	return nil
}
