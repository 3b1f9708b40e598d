// Copyright (c) 2026 Clipstream. All rights reserved.

/*
Package video (Postgres) implements the storage layer for the catalog.

# Schema Table Mapping
  - videos: Media metadata and engagement counters.
  - channels: Joined for populated channel summaries and ownership checks.
  - users: Joined for populated uploader summaries.
  - comments: Deleted inside the cascade transaction.
*/
package video

import (
	"context"
	"errors"
	"fmt"
	"strings"

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

// NewRepository creates a new Postgres implementation for videos.
func NewRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// videoColumns renders the qualified video column list for SELECTs.
func videoColumns(alias string) string {
	v := schema.Videos
	return fmt.Sprintf("%[1]s.%s, %[1]s.%s, %[1]s.%s, %[1]s.%s, %[1]s.%s, %[1]s.%s, %[1]s.%s, %[1]s.%s, %[1]s.%s, %[1]s.%s, %[1]s.%s, %[1]s.%s, %[1]s.%s",
		alias,
		v.ID, v.ChannelID, v.UploaderID, v.Title, v.Description,
		v.Category, v.ThumbnailURL, v.VideoURL, v.Views, v.Likes, v.Dislikes,
		v.CreatedAt, v.UpdatedAt,
	)
}

// scanVideo maps one bare video row.
func scanVideo(row pgx.Row) (*Video, error) {
	item := &Video{}
	err := row.Scan(
		&item.ID, &item.ChannelID, &item.UploaderID, &item.Title, &item.Description,
		&item.Category, &item.ThumbnailURL, &item.VideoURL,
		&item.Views, &item.Likes, &item.Dislikes,
		&item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return item, nil
}

/*
Create inserts a new video record.

Parameters:
  - context: context.Context
  - video: *Video

Returns:
  - error: Execution failure
*/
func (repository *PostgresRepository) Create(context context.Context, video *Video) error {
	v := schema.Videos
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		v.Table,
		v.ID, v.ChannelID, v.UploaderID, v.Title, v.Description,
		v.Category, v.ThumbnailURL, v.VideoURL, v.CreatedAt, v.UpdatedAt,
	)

	_, err := repository.pool.Exec(context, query,
		video.ID, video.ChannelID, video.UploaderID, video.Title, video.Description,
		video.Category, video.ThumbnailURL, video.VideoURL, video.CreatedAt, video.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("postgres_video_repo_create_failed: %w", err)
	}

	return nil
}

/*
FindByID retrieves a bare video record by id.

Parameters:
  - context: context.Context
  - id: string (UUID)

Returns:
  - *Video: Hydrated video entity (no populated relations)
  - error: apperr.NotFound or execution failure
*/
func (repository *PostgresRepository) FindByID(context context.Context, id string) (*Video, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s v WHERE v.%s = $1`,
		videoColumns("v"), schema.Videos.Table, schema.Videos.ID,
	)

	item, err := scanVideo(repository.pool.QueryRow(context, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("video")
		}
		return nil, fmt.Errorf("postgres_video_repo_find_failed: %w", err)
	}

	return item, nil
}

/*
FindDetailByID retrieves a video with channel and uploader summaries.

Parameters:
  - context: context.Context
  - id: string

Returns:
  - *Video: Video with Channel and Uploader populated
  - error: apperr.NotFound or execution failure
*/
func (repository *PostgresRepository) FindDetailByID(context context.Context, id string) (*Video, error) {
	c, u := schema.Channels, schema.Users
	query := fmt.Sprintf(`
		SELECT %s,
		       c.%s, c.%s, c.%s,
		       u.%s, u.%s, u.%s
		FROM %s v
		JOIN %s c ON c.%s = v.%s
		JOIN %s u ON u.%s = v.%s
		WHERE v.%s = $1`,
		videoColumns("v"),
		c.ID, c.Name, c.BannerURL,
		u.ID, u.Username, u.AvatarURL,
		schema.Videos.Table,
		c.Table, c.ID, schema.Videos.ChannelID,
		u.Table, u.ID, schema.Videos.UploaderID,
		schema.Videos.ID,
	)

	item := &Video{Channel: &ChannelRef{}, Uploader: &UserRef{}}
	err := repository.pool.QueryRow(context, query, id).Scan(
		&item.ID, &item.ChannelID, &item.UploaderID, &item.Title, &item.Description,
		&item.Category, &item.ThumbnailURL, &item.VideoURL,
		&item.Views, &item.Likes, &item.Dislikes,
		&item.CreatedAt, &item.UpdatedAt,
		&item.Channel.ID, &item.Channel.Name, &item.Channel.BannerURL,
		&item.Uploader.ID, &item.Uploader.Username, &item.Uploader.AvatarURL,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("video")
		}
		return nil, fmt.Errorf("postgres_video_repo_detail_failed: %w", err)
	}

	return item, nil
}

/*
List returns videos with populated summaries, newest first.

Parameters:
  - context: context.Context
  - category: string (empty means all)
  - limit: int

Returns:
  - []Video: Up to limit videos
  - error: Execution failure
*/
func (repository *PostgresRepository) List(context context.Context, category string, limit int) ([]Video, error) {
	c, u := schema.Channels, schema.Users

	filter := ""
	args := []any{limit}
	if category != "" {
		filter = fmt.Sprintf("WHERE v.%s = $2", schema.Videos.Category)
		args = append(args, category)
	}

	query := fmt.Sprintf(`
		SELECT %s,
		       c.%s, c.%s, c.%s,
		       u.%s, u.%s, u.%s
		FROM %s v
		JOIN %s c ON c.%s = v.%s
		JOIN %s u ON u.%s = v.%s
		%s
		ORDER BY v.%s DESC
		LIMIT $1`,
		videoColumns("v"),
		c.ID, c.Name, c.BannerURL,
		u.ID, u.Username, u.AvatarURL,
		schema.Videos.Table,
		c.Table, c.ID, schema.Videos.ChannelID,
		u.Table, u.ID, schema.Videos.UploaderID,
		filter,
		schema.Videos.CreatedAt,
	)

	rows, err := repository.pool.Query(context, query, args...)
	if err != nil {
		return nil, fmt.Errorf("postgres_video_repo_list_failed: %w", err)
	}
	defer rows.Close()

	videos := []Video{}
	for rows.Next() {
		item := Video{Channel: &ChannelRef{}, Uploader: &UserRef{}}
		err := rows.Scan(
			&item.ID, &item.ChannelID, &item.UploaderID, &item.Title, &item.Description,
			&item.Category, &item.ThumbnailURL, &item.VideoURL,
			&item.Views, &item.Likes, &item.Dislikes,
			&item.CreatedAt, &item.UpdatedAt,
			&item.Channel.ID, &item.Channel.Name, &item.Channel.BannerURL,
			&item.Uploader.ID, &item.Uploader.Username, &item.Uploader.AvatarURL,
		)
		if err != nil {
			return nil, fmt.Errorf("postgres_video_repo_list_scan_failed: %w", err)
		}
		videos = append(videos, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres_video_repo_list_rows_failed: %w", err)
	}

	return videos, nil
}

/*
ListByChannel returns a channel's videos, oldest first.

Parameters:
  - context: context.Context
  - channelID: string

Returns:
  - []Video: All videos of the channel
  - error: Execution failure
*/
func (repository *PostgresRepository) ListByChannel(context context.Context, channelID string) ([]Video, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM %s v
		WHERE v.%s = $1
		ORDER BY v.%s ASC`,
		videoColumns("v"), schema.Videos.Table,
		schema.Videos.ChannelID, schema.Videos.CreatedAt,
	)

	rows, err := repository.pool.Query(context, query, channelID)
	if err != nil {
		return nil, fmt.Errorf("postgres_video_repo_channel_list_failed: %w", err)
	}
	defer rows.Close()

	videos := []Video{}
	for rows.Next() {
		item := Video{}
		err := rows.Scan(
			&item.ID, &item.ChannelID, &item.UploaderID, &item.Title, &item.Description,
			&item.Category, &item.ThumbnailURL, &item.VideoURL,
			&item.Views, &item.Likes, &item.Dislikes,
			&item.CreatedAt, &item.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("postgres_video_repo_channel_list_scan_failed: %w", err)
		}
		videos = append(videos, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres_video_repo_channel_list_rows_failed: %w", err)
	}

	return videos, nil
}

/*
SearchByTitle performs a case-insensitive substring match over titles.

Parameters:
  - context: context.Context
  - title: string (raw substring; LIKE wildcards are escaped)
  - limit: int

Returns:
  - []TitleMatch: id+title projections, newest first
  - error: Execution failure
*/
func (repository *PostgresRepository) SearchByTitle(context context.Context, title string, limit int) ([]TitleMatch, error) {
	v := schema.Videos
	query := fmt.Sprintf(`
		SELECT %s, %s FROM %s
		WHERE %s ILIKE '%%' || $1 || '%%'
		ORDER BY %s DESC
		LIMIT $2`,
		v.ID, v.Title, v.Table, v.Title, v.CreatedAt,
	)

	rows, err := repository.pool.Query(context, query, escapeLike(title), limit)
	if err != nil {
		return nil, fmt.Errorf("postgres_video_repo_search_failed: %w", err)
	}
	defer rows.Close()

	matches := []TitleMatch{}
	for rows.Next() {
		var item TitleMatch
		if err := rows.Scan(&item.ID, &item.Title); err != nil {
			return nil, fmt.Errorf("postgres_video_repo_search_scan_failed: %w", err)
		}
		matches = append(matches, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres_video_repo_search_rows_failed: %w", err)
	}

	return matches, nil
}

/*
UpdateMeta persists the mutable metadata fields.

Parameters:
  - context: context.Context
  - video: *Video

Returns:
  - error: Execution failure
*/
func (repository *PostgresRepository) UpdateMeta(context context.Context, video *Video) error {
	v := schema.Videos
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $1, %s = $2, %s = $3
		WHERE %s = $4`,
		v.Table, v.Title, v.Description, v.UpdatedAt, v.ID,
	)

	_, err := repository.pool.Exec(context, query,
		video.Title, video.Description, video.UpdatedAt, video.ID,
	)
	if err != nil {
		return fmt.Errorf("postgres_video_repo_update_failed: %w", err)
	}

	return nil
}

/*
IncrementLikes adds one to the like counter.

Parameters:
  - context: context.Context
  - id: string

Returns:
  - int: The new like count
  - error: apperr.NotFound or execution failure
*/
func (repository *PostgresRepository) IncrementLikes(context context.Context, id string) (int, error) {
	return repository.incrementCounter(context, schema.Videos.Likes, id)
}

/*
IncrementDislikes adds one to the dislike counter.

Parameters:
  - context: context.Context
  - id: string

Returns:
  - int: The new dislike count
  - error: apperr.NotFound or execution failure
*/
func (repository *PostgresRepository) IncrementDislikes(context context.Context, id string) (int, error) {
	return repository.incrementCounter(context, schema.Videos.Dislikes, id)
}

// incrementCounter bumps a single counter column and returns the new value.
func (repository *PostgresRepository) incrementCounter(context context.Context, column, id string) (int, error) {
	v := schema.Videos
	query := fmt.Sprintf(`
		UPDATE %s
		SET %[2]s = %[2]s + 1
		WHERE %s = $1
		RETURNING %[2]s`,
		v.Table, column, v.ID,
	)

	var count int
	if err := repository.pool.QueryRow(context, query, id).Scan(&count); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperr.NotFound("video")
		}
		return 0, fmt.Errorf("postgres_video_repo_increment_failed: %w", err)
	}

	return count, nil
}

/*
DeleteCascade removes a video and all of its comments in one transaction.

Parameters:
  - context: context.Context
  - id: string

Returns:
  - error: Transaction failures
*/
func (repository *PostgresRepository) DeleteCascade(context context.Context, id string) error {
	transaction, err := repository.pool.Begin(context)
	if err != nil {
		return fmt.Errorf("postgres_video_repo_tx_begin_failed: %w", err)
	}
	defer func() { _ = transaction.Rollback(context) }()

	deleteComments := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.Comments.Table, schema.Comments.VideoID,
	)
	if _, err := transaction.Exec(context, deleteComments, id); err != nil {
		return fmt.Errorf("postgres_video_repo_delete_comments_failed: %w", err)
	}

	deleteVideo := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.Videos.Table, schema.Videos.ID,
	)
	if _, err := transaction.Exec(context, deleteVideo, id); err != nil {
		return fmt.Errorf("postgres_video_repo_delete_failed: %w", err)
	}

	if err := transaction.Commit(context); err != nil {
		return fmt.Errorf("postgres_video_repo_tx_commit_failed: %w", err)
	}

	return nil
}

/*
FindChannelOwner returns the owner id of a channel.

Parameters:
  - context: context.Context
  - channelID: string

Returns:
  - string: Owner user id
  - error: apperr.NotFound or execution failure
*/
func (repository *PostgresRepository) FindChannelOwner(context context.Context, channelID string) (string, error) {
	c := schema.Channels
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		c.OwnerID, c.Table, c.ID,
	)

	var ownerID string
	if err := repository.pool.QueryRow(context, query, channelID).Scan(&ownerID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", apperr.NotFound("channel")
		}
		return "", fmt.Errorf("postgres_video_repo_channel_owner_failed: %w", err)
	}

	return ownerID, nil
}

/*
VideoExists reports whether a video exists.

Parameters:
  - context: context.Context
  - videoID: string

Returns:
  - bool: true when present
  - error: Execution failure
*/
func (repository *PostgresRepository) VideoExists(context context.Context, videoID string) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)`,
		schema.Videos.Table, schema.Videos.ID,
	)

	var exists bool
	if err := repository.pool.QueryRow(context, query, videoID).Scan(&exists); err != nil {
		return false, fmt.Errorf("postgres_video_repo_exists_failed: %w", err)
	}

	return exists, nil
}

// likeEscaper neutralizes LIKE wildcards in user-supplied substrings.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
