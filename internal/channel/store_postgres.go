// Copyright (c) 2026 Clipstream. All rights reserved.

/*
Package channel (Postgres) implements the storage layer for channels.

# Schema Table Mapping
  - channels: Channel identity, banner, and counters.
  - videos: Source for the derived per-channel video list.
*/
package channel

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/clipstream/clipstream/internal/platform/apperr"
	"github.com/clipstream/clipstream/internal/platform/database/schema"
)

// # Repository Implementation

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new Postgres implementation for channels.
func NewRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

/*
Create inserts a new channel record.

Parameters:
  - context: context.Context
  - channel: *Channel

Returns:
  - error: Execution failure
*/
func (repository *PostgresRepository) Create(context context.Context, channel *Channel) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		schema.Channels.Table,
		schema.Channels.ID, schema.Channels.OwnerID, schema.Channels.Name,
		schema.Channels.Slug, schema.Channels.Description, schema.Channels.BannerURL,
		schema.Channels.Subscribers, schema.Channels.CreatedAt, schema.Channels.UpdatedAt,
	)

	_, err := repository.pool.Exec(context, query,
		channel.ID, channel.OwnerID, channel.Name,
		channel.Slug, channel.Description, channel.BannerURL,
		channel.Subscribers, channel.CreatedAt, channel.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("postgres_channel_repo_create_failed: %w", err)
	}

	return nil
}

/*
FindByID retrieves a channel record by id.

Parameters:
  - context: context.Context
  - id: string (UUID)

Returns:
  - *Channel: Hydrated channel entity
  - error: apperr.NotFound or execution failure
*/
func (repository *PostgresRepository) FindByID(context context.Context, id string) (*Channel, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1`,
		schema.Channels.ID, schema.Channels.OwnerID, schema.Channels.Name,
		schema.Channels.Slug, schema.Channels.Description, schema.Channels.BannerURL,
		schema.Channels.Subscribers, schema.Channels.CreatedAt, schema.Channels.UpdatedAt,
		schema.Channels.Table, schema.Channels.ID,
	)

	found := &Channel{Videos: []string{}}
	err := repository.pool.QueryRow(context, query, id).Scan(
		&found.ID,
		&found.OwnerID,
		&found.Name,
		&found.Slug,
		&found.Description,
		&found.BannerURL,
		&found.Subscribers,
		&found.CreatedAt,
		&found.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("channel")
		}
		return nil, fmt.Errorf("postgres_channel_repo_find_failed: %w", err)
	}

	return found, nil
}

/*
VideoIDs lists the ids of videos belonging to a channel, oldest first.

Parameters:
  - context: context.Context
  - channelID: string

Returns:
  - []string: Video ids ordered by creation time
  - error: Execution failure
*/
func (repository *PostgresRepository) VideoIDs(context context.Context, channelID string) ([]string, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM %s
		WHERE %s = $1
		ORDER BY %s ASC`,
		schema.Videos.ID, schema.Videos.Table,
		schema.Videos.ChannelID, schema.Videos.CreatedAt,
	)

	rows, err := repository.pool.Query(context, query, channelID)
	if err != nil {
		return nil, fmt.Errorf("postgres_channel_repo_video_ids_failed: %w", err)
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("postgres_channel_repo_video_ids_scan_failed: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres_channel_repo_video_ids_rows_failed: %w", err)
	}

	return ids, nil
}
