// Copyright (c) 2026 Clipstream. All rights reserved.

package user

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/clipstream/clipstream/internal/platform/constants"
	"github.com/clipstream/clipstream/internal/platform/middleware"
	requestutil "github.com/clipstream/clipstream/internal/platform/request"
	"github.com/clipstream/clipstream/internal/platform/respond"
	"github.com/clipstream/clipstream/internal/platform/validate"
)

// Handler implements the HTTP layer for accounts.
type Handler struct {
	userService *Service

	// cookieTTL and secureCookie shape the issued auth cookie.
	cookieTTL    time.Duration
	secureCookie bool
}

// NewHandler constructs a new account [Handler].
//
// secureCookie should be true everywhere except local development, where
// the SPA runs on plain http.
func NewHandler(service *Service, cookieTTL time.Duration, secureCookie bool) *Handler {
	return &Handler{
		userService:  service,
		cookieTTL:    cookieTTL,
		secureCookie: secureCookie,
	}
}

// Routes returns a [chi.Router] configured with the account endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// Public
	router.Post("/register", handler.register)
	router.Post("/login", handler.login)
	router.Get("/{id}", handler.getByID)

	// Authenticated
	router.With(middleware.RequireAuth).Get("/", handler.getCurrent)

	return router
}

// # Registration & Login

// registerRequest defines the expected JSON payload for registration.
type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

/*
POST /user/register.

Description: Creates a new account, sets the auth cookie, and returns the
account together with the bearer token.

Response:
  - 201: {user, token}
  - 400: Validation failures, including duplicate email
*/
func (handler *Handler) register(writer http.ResponseWriter, request *http.Request) {
	var input registerRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	v := &validate.Validator{}
	v.Required("username", input.Username)
	v.Required("email", input.Email)
	if input.Email != "" {
		v.Email("email", input.Email)
	}
	v.Required("password", input.Password)
	if input.Password != "" {
		v.MinLen("password", input.Password, 6)
	}
	if err := v.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	account, token, err := handler.userService.Register(request.Context(), RegisterInput{
		Username: input.Username,
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	handler.setAuthCookie(writer, token)
	respond.Created(writer, "user registered successfully", map[string]any{
		"user":  account,
		"token": token,
	})
}

// loginRequest defines the expected JSON payload for login.
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

/*
POST /user/login.

Description: Authenticates by email and password, sets the auth cookie,
and returns the account together with the bearer token.

Response:
  - 200: {user, token}
  - 400: Missing or malformed fields
  - 401: Generic "Email or password is incorrect"
*/
func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	var input loginRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	v := &validate.Validator{}
	v.Required("email", input.Email)
	if input.Email != "" {
		v.Email("email", input.Email)
	}
	v.Required("password", input.Password)
	if err := v.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	account, token, err := handler.userService.Login(request.Context(), LoginInput{
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	handler.setAuthCookie(writer, token)
	respond.OK(writer, "user logged in successfully", map[string]any{
		"user":  account,
		"token": token,
	})
}

// # Profile Endpoints

/*
GET /user/.

Description: Returns the authenticated caller's profile.

Response:
  - 200: {user}
  - 401: Authentication required
*/
func (handler *Handler) getCurrent(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	account, err := handler.userService.GetByID(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, "user data fetched successfully", map[string]any{
		"user": account,
	})
}

/*
GET /user/{id}.

Description: Returns a public profile by id.

Response:
  - 200: {user}
  - 400: Malformed identifier
  - 404: Unknown user
*/
func (handler *Handler) getByID(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request)

	v := &validate.Validator{}
	if err := v.ID("id", id).Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	account, err := handler.userService.GetByID(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, "user data fetched successfully", map[string]any{
		"user": account,
	})
}

// setAuthCookie issues the HttpOnly auth cookie alongside the body token.
func (handler *Handler) setAuthCookie(writer http.ResponseWriter, token string) {
	http.SetCookie(writer, &http.Cookie{
		Name:     constants.AuthCookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(handler.cookieTTL),
		HttpOnly: true,
		Secure:   handler.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
}
