// Copyright (c) 2026 Clipstream. All rights reserved.

package user

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/clipstream/clipstream/internal/platform/apperr"
	"github.com/clipstream/clipstream/internal/platform/dberr"
	"github.com/clipstream/clipstream/internal/platform/sec"
	"github.com/clipstream/clipstream/pkg/uuid"
)

// # Service Layer

// Service orchestrates business logic for accounts: registration, login,
// and profile retrieval.
type Service struct {
	repository Repository
	tokens     *sec.TokenService
	logger     *slog.Logger
}

// NewService constructs a new [Service] with its dependencies.
func NewService(repository Repository, tokens *sec.TokenService, logger *slog.Logger) *Service {
	return &Service{
		repository: repository,
		tokens:     tokens,
		logger:     logger,
	}
}

// # Registration

// RegisterInput carries the validated registration payload.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

/*
Register creates a new account and issues a bearer token for it.

Description: Rejects duplicate emails with a field-level validation error,
hashes the password before persistence, and never stores plaintext.

Parameters:
  - context: context.Context
  - input: RegisterInput

Returns:
  - *User: The created account
  - string: Signed bearer token
  - error: Validation, uniqueness, or storage failures
*/
func (service *Service) Register(context context.Context, input RegisterInput) (*User, string, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	// Uniqueness is a storage-touching rule; it runs here, not in the
	// request validator.
	taken, err := service.repository.EmailExists(context, email)
	if err != nil {
		return nil, "", fmt.Errorf("user_service_email_check_failed: %w", err)
	}
	if taken {
		return nil, "", apperr.ValidationFailed("Validation failed", apperr.FieldError{
			Field:   "email",
			Message: "Email already in use",
		})
	}

	hash, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, "", fmt.Errorf("user_service_hash_failed: %w", err)
	}

	now := time.Now()
	account := &User{
		ID:           uuid.New(),
		Username:     strings.TrimSpace(input.Username),
		Email:        email,
		PasswordHash: hash,
		Channels:     []string{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := service.repository.Create(context, account); err != nil {
		// Concurrent registration with the same email loses the race at
		// the unique index.
		if dberr.IsUniqueViolation(err) {
			return nil, "", apperr.ValidationFailed("Validation failed", apperr.FieldError{
				Field:   "email",
				Message: "Email already in use",
			})
		}
		return nil, "", fmt.Errorf("user_service_create_failed: %w", err)
	}

	token, err := service.tokens.Generate(account.ID, account.Email)
	if err != nil {
		return nil, "", fmt.Errorf("user_service_token_failed: %w", err)
	}

	service.logger.Info("user_registered", slog.String("user_id", account.ID))

	return account, token, nil
}

// # Login

// LoginInput carries the validated login payload.
type LoginInput struct {
	Email    string
	Password string
}

/*
Login authenticates an account by email and password.

Description: The user row fetched for the email check (with its hash) is
reused for the password check, keeping a single storage round trip. Both
failure modes return the same generic message so callers cannot probe
which field was wrong.

Parameters:
  - context: context.Context
  - input: LoginInput

Returns:
  - *User: The authenticated account
  - string: Signed bearer token
  - error: apperr.Unauthenticated on any credential mismatch
*/
func (service *Service) Login(context context.Context, input LoginInput) (*User, string, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	account, err := service.repository.FindByEmail(context, email)
	if err != nil {
		if dberr.IsNotFound(err) {
			return nil, "", apperr.Unauthenticated("Email or password is incorrect")
		}
		return nil, "", fmt.Errorf("user_service_login_lookup_failed: %w", err)
	}

	if !sec.CheckPasswordHash(input.Password, account.PasswordHash) {
		return nil, "", apperr.Unauthenticated("Email or password is incorrect")
	}

	token, err := service.tokens.Generate(account.ID, account.Email)
	if err != nil {
		return nil, "", fmt.Errorf("user_service_token_failed: %w", err)
	}

	service.logger.Info("user_logged_in", slog.String("user_id", account.ID))

	return account, token, nil
}

// # Profile Lookups

/*
GetByID retrieves a public profile, with its derived channel list.

Parameters:
  - context: context.Context
  - id: string

Returns:
  - *User: The hydrated profile
  - error: apperr.NotFound or storage failures
*/
func (service *Service) GetByID(context context.Context, id string) (*User, error) {
	account, err := service.repository.FindByID(context, id)
	if err != nil {
		return nil, err
	}

	channels, err := service.repository.ChannelIDs(context, account.ID)
	if err != nil {
		return nil, fmt.Errorf("user_service_channels_failed: %w", err)
	}
	account.Channels = channels

	return account, nil
}

/*
FindAuthUser resolves a verified token subject into the minimal account
record the authentication middleware attaches to the request context.

Parameters:
  - context: context.Context
  - userID: string (UUID from verified claims)

Returns:
  - *sec.AuthUser: Minimal account record
  - error: apperr.NotFound when the account no longer exists
*/
func (service *Service) FindAuthUser(context context.Context, userID string) (*sec.AuthUser, error) {
	account, err := service.repository.FindByID(context, userID)
	if err != nil {
		return nil, err
	}

	return &sec.AuthUser{
		ID:        account.ID,
		Username:  account.Username,
		Email:     account.Email,
		AvatarURL: account.AvatarURL,
	}, nil
}
