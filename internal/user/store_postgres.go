// Copyright (c) 2026 Clipstream. All rights reserved.

/*
Package user (Postgres) implements the storage layer for accounts.

# Schema Table Mapping
  - users: Master identity and credential data.
  - channels: Source for the derived per-user channel list.
*/
package user

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

// NewRepository creates a new Postgres implementation for accounts.
func NewRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

/*
Create inserts a new user record.

Parameters:
  - context: context.Context
  - user: *User

Returns:
  - error: Unique index violation or execution failure
*/
func (repository *PostgresRepository) Create(context context.Context, user *User) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		schema.Users.Table,
		schema.Users.ID, schema.Users.Username, schema.Users.Email,
		schema.Users.Password, schema.Users.AvatarURL,
		schema.Users.CreatedAt, schema.Users.UpdatedAt,
	)

	_, err := repository.pool.Exec(context, query,
		user.ID, user.Username, user.Email,
		user.PasswordHash, user.AvatarURL,
		user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("postgres_user_repo_create_failed: %w", err)
	}

	return nil
}

/*
FindByID retrieves a user record by id.

Parameters:
  - context: context.Context
  - id: string (UUID)

Returns:
  - *User: Hydrated account entity
  - error: apperr.NotFound or execution failure
*/
func (repository *PostgresRepository) FindByID(context context.Context, id string) (*User, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1`,
		schema.Users.ID, schema.Users.Username, schema.Users.Email,
		schema.Users.Password, schema.Users.AvatarURL,
		schema.Users.CreatedAt, schema.Users.UpdatedAt,
		schema.Users.Table, schema.Users.ID,
	)

	return repository.scanOne(context, query, id)
}

/*
FindByEmail retrieves a user record, including the password hash, by email.

Parameters:
  - context: context.Context
  - email: string (already lower-cased by the service)

Returns:
  - *User: Hydrated account entity
  - error: apperr.NotFound or execution failure
*/
func (repository *PostgresRepository) FindByEmail(context context.Context, email string) (*User, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1`,
		schema.Users.ID, schema.Users.Username, schema.Users.Email,
		schema.Users.Password, schema.Users.AvatarURL,
		schema.Users.CreatedAt, schema.Users.UpdatedAt,
		schema.Users.Table, schema.Users.Email,
	)

	return repository.scanOne(context, query, email)
}

/*
EmailExists reports whether an account with the given email exists.

Parameters:
  - context: context.Context
  - email: string

Returns:
  - bool: true when taken
  - error: Execution failure
*/
func (repository *PostgresRepository) EmailExists(context context.Context, email string) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)`,
		schema.Users.Table, schema.Users.Email,
	)

	var exists bool
	if err := repository.pool.QueryRow(context, query, email).Scan(&exists); err != nil {
		return false, fmt.Errorf("postgres_user_repo_email_exists_failed: %w", err)
	}

	return exists, nil
}

/*
ChannelIDs lists the ids of channels owned by a user, oldest first.

Parameters:
  - context: context.Context
  - userID: string

Returns:
  - []string: Channel ids ordered by creation time
  - error: Execution failure
*/
func (repository *PostgresRepository) ChannelIDs(context context.Context, userID string) ([]string, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM %s
		WHERE %s = $1
		ORDER BY %s ASC`,
		schema.Channels.ID, schema.Channels.Table,
		schema.Channels.OwnerID, schema.Channels.CreatedAt,
	)

	rows, err := repository.pool.Query(context, query, userID)
	if err != nil {
		return nil, fmt.Errorf("postgres_user_repo_channel_ids_failed: %w", err)
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("postgres_user_repo_channel_ids_scan_failed: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres_user_repo_channel_ids_rows_failed: %w", err)
	}

	return ids, nil
}

// scanOne executes a single-row account query and maps missing rows to 404.
func (repository *PostgresRepository) scanOne(context context.Context, query string, arg any) (*User, error) {
	account := &User{Channels: []string{}}
	err := repository.pool.QueryRow(context, query, arg).Scan(
		&account.ID,
		&account.Username,
		&account.Email,
		&account.PasswordHash,
		&account.AvatarURL,
		&account.CreatedAt,
		&account.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("user")
		}
		return nil, fmt.Errorf("postgres_user_repo_find_failed: %w", err)
	}

	return account, nil
}
