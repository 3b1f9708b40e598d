// Copyright (c) 2026 Clipstream. All rights reserved.

/*
Package user handles account registration, login, and public profile lookups.

It owns the User entity (identity plus credential record) and issues bearer
tokens on successful registration or login.

# Architecture

  - Entities: User.
  - Security: Password hashes never serialize to clients; tokens come from
    the platform sec.TokenService.
  - Derived data: the user's channel list is a query over the channels
    table ordered by creation time, not a stored array.
*/
package user

import (
	"context"
	"time"
)

// # Domain Entities

// User is the identity and credential record.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	AvatarURL    string    `json:"avatarUrl,omitempty"`
	Channels     []string  `json:"channels"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// # Repository Contracts

// Repository defines the persistence contract for user accounts.
type Repository interface {
	/*
		Create inserts a new user record.

		Parameters:
		  - context: context.Context
		  - user: *User (ID and timestamps already assigned)

		Returns:
		  - error: Unique constraint or storage failures
	*/
	Create(context context.Context, user *User) error

	/*
		FindByID retrieves a user record by its unique ID.

		Parameters:
		  - context: context.Context
		  - id: string (UUID)

		Returns:
		  - *User: Loaded account entity
		  - error: apperr.NotFound or storage failures
	*/
	FindByID(context context.Context, id string) (*User, error)

	/*
		FindByEmail retrieves a user record, including the password hash,
		by its unique email.

		Parameters:
		  - context: context.Context
		  - email: string

		Returns:
		  - *User: Loaded account entity
		  - error: apperr.NotFound or storage failures
	*/
	FindByEmail(context context.Context, email string) (*User, error)

	/*
		EmailExists reports whether an account with the given email exists.

		Parameters:
		  - context: context.Context
		  - email: string

		Returns:
		  - bool: true when the email is taken
		  - error: Storage failures
	*/
	EmailExists(context context.Context, email string) (bool, error)

	/*
		ChannelIDs lists the ids of channels owned by a user, ordered by
		creation time.

		Parameters:
		  - context: context.Context
		  - userID: string

		Returns:
		  - []string: Channel ids, oldest first
		  - error: Storage failures
	*/
	ChannelIDs(context context.Context, userID string) ([]string, error)
}
