// Copyright (c) 2026 Clipstream. All rights reserved.

package channel

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/clipstream/clipstream/internal/platform/apperr"
	"github.com/clipstream/clipstream/internal/platform/blob"
	"github.com/clipstream/clipstream/internal/platform/constants"
	"github.com/clipstream/clipstream/internal/platform/middleware"
	requestutil "github.com/clipstream/clipstream/internal/platform/request"
	"github.com/clipstream/clipstream/internal/platform/respond"
	"github.com/clipstream/clipstream/internal/platform/validate"
)

// Handler implements the HTTP layer for channels.
type Handler struct {
	channelService *Service
}

// NewHandler constructs a new channel [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{channelService: service}
}

// Routes returns a [chi.Router] configured with the channel endpoints.
//
// The /{id}/videos listing lives in the video domain; the composition
// root attaches it to this router.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.With(middleware.RequireAuth).Post("/create", handler.create)
	router.Get("/{id}", handler.getByID)

	return router
}

/*
POST /channel/create.

Description: Creates a channel from a multipart form: channelName,
optional description, and a channelBanner image.

Request:
  - multipart form: channelName, description?, channelBanner (jpeg/png, max 5MB)

Response:
  - 201: {channel}
  - 400: Validation failures, including a missing or oversized banner
  - 401: Authentication required
*/
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	// A parse failure means the body itself is broken; a missing banner is
	// reported per-field by the intake below.
	if err := request.ParseMultipartForm(constants.MaxMultipartMemory); err != nil {
		respond.Error(writer, request, apperr.ValidationFailed("Invalid multipart form data"))
		return
	}

	name := request.FormValue("channelName")
	description := request.FormValue("description")

	v := &validate.Validator{}
	v.Required("channelName", name)
	if err := v.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	banner, err := blob.Image(request, "channelBanner", "banners")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.channelService.Create(request.Context(), CreateInput{
		OwnerID:     userID,
		Name:        name,
		Description: description,
		Banner:      banner,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, "channel created successfully", map[string]any{
		"channel": created,
	})
}

/*
GET /channel/{id}.

Response:
  - 200: {channel}
  - 400: Malformed identifier
  - 404: Unknown channel
*/
func (handler *Handler) getByID(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request)

	v := &validate.Validator{}
	if err := v.ID("id", id).Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	found, err := handler.channelService.GetByID(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, "channel data fetched successfully", map[string]any{
		"channel": found,
	})
}
