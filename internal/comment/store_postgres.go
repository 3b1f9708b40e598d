// Copyright (c) 2026 Clipstream. All rights reserved.

/*
Package comment (Postgres) implements the storage layer for comments.

# Schema Table Mapping
  - comments: Comment text and ownership references.
*/
package comment

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/clipstream/clipstream/internal/platform/database/schema"
)

// # Repository Implementation

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new Postgres implementation for comments.
func NewRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

/*
Create inserts a new comment record.

Parameters:
  - context: context.Context
  - comment: *Comment

Returns:
  - error: Execution failure
*/
func (repository *PostgresRepository) Create(context context.Context, comment *Comment) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5)`,
		schema.Comments.Table,
		schema.Comments.ID, schema.Comments.VideoID, schema.Comments.UserID,
		schema.Comments.Body, schema.Comments.CreatedAt,
	)

	_, err := repository.pool.Exec(context, query,
		comment.ID, comment.VideoID, comment.UserID,
		comment.Text, comment.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("postgres_comment_repo_create_failed: %w", err)
	}

	return nil
}

/*
ListByVideo lists all comments on a video, oldest first.

Parameters:
  - context: context.Context
  - videoID: string

Returns:
  - []Comment: Comments ordered by creation time
  - error: Execution failure
*/
func (repository *PostgresRepository) ListByVideo(context context.Context, videoID string) ([]Comment, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
		ORDER BY %s ASC`,
		schema.Comments.ID, schema.Comments.VideoID, schema.Comments.UserID,
		schema.Comments.Body, schema.Comments.CreatedAt,
		schema.Comments.Table, schema.Comments.VideoID, schema.Comments.CreatedAt,
	)

	rows, err := repository.pool.Query(context, query, videoID)
	if err != nil {
		return nil, fmt.Errorf("postgres_comment_repo_list_failed: %w", err)
	}
	defer rows.Close()

	comments := []Comment{}
	for rows.Next() {
		var item Comment
		if err := rows.Scan(&item.ID, &item.VideoID, &item.UserID, &item.Text, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("postgres_comment_repo_scan_failed: %w", err)
		}
		comments = append(comments, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres_comment_repo_rows_failed: %w", err)
	}

	return comments, nil
}
