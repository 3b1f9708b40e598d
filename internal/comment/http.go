// Copyright (c) 2026 Clipstream. All rights reserved.

package comment

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/clipstream/clipstream/internal/platform/middleware"
	requestutil "github.com/clipstream/clipstream/internal/platform/request"
	"github.com/clipstream/clipstream/internal/platform/respond"
	"github.com/clipstream/clipstream/internal/platform/validate"
)

// Handler implements the HTTP layer for comments.
type Handler struct {
	commentService *Service
}

// NewHandler constructs a new comment [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{commentService: service}
}

// Routes returns a [chi.Router] configured with the comment endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.With(middleware.RequireAuth).Post("/add", handler.add)

	return router
}

// addRequest defines the expected JSON payload for adding a comment.
type addRequest struct {
	Text    string `json:"text"`
	VideoID string `json:"videoId"`
}

/*
POST /comment/add.

Request:
  - body: {text, videoId}

Response:
  - 201: {comment}
  - 400: Missing text or malformed video id
  - 401: Authentication required
  - 404: Unknown video
*/
func (handler *Handler) add(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input addRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	v := &validate.Validator{}
	v.Required("text", input.Text)
	v.Required("videoId", input.VideoID)
	if input.VideoID != "" {
		v.ID("videoId", input.VideoID)
	}
	if err := v.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.commentService.Add(request.Context(), AddInput{
		VideoID: input.VideoID,
		UserID:  userID,
		Text:    input.Text,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, "comment added successfully", map[string]any{
		"comment": created,
	})
}
