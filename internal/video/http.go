// Copyright (c) 2026 Clipstream. All rights reserved.

package video

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/clipstream/clipstream/internal/platform/apperr"
	"github.com/clipstream/clipstream/internal/platform/blob"
	"github.com/clipstream/clipstream/internal/platform/constants"
	"github.com/clipstream/clipstream/internal/platform/middleware"
	requestutil "github.com/clipstream/clipstream/internal/platform/request"
	"github.com/clipstream/clipstream/internal/platform/respond"
	"github.com/clipstream/clipstream/internal/platform/validate"
	"github.com/clipstream/clipstream/pkg/convert"
)

// Handler implements the HTTP layer for the video catalog.
type Handler struct {
	videoService *Service
}

// NewHandler constructs a new video [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{videoService: service}
}

// Routes returns a [chi.Router] configured with the video endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// Public reads
	router.Get("/", handler.list)
	router.Get("/search", handler.search)
	router.Get("/{id}", handler.getByID)

	// Public engagement counters (no dedup, no auth)
	router.Put("/{id}/like", handler.like)
	router.Put("/{id}/dislike", handler.dislike)

	// Authenticated mutations
	router.Group(func(authenticated chi.Router) {
		authenticated.Use(middleware.RequireAuth)
		authenticated.Post("/upload", handler.upload)
		authenticated.Put("/{id}", handler.edit)
		authenticated.Delete("/{id}", handler.delete)
	})

	return router
}

// # Upload

/*
POST /video/upload.

Description: Creates a video from a multipart form. The caller must own
the referenced channel; both a thumbnail and a media file are required.

Request:
  - multipart form: title, channelId, description?, category?,
    thumbnailFile (jpeg/png, max 5MB), videoFile (mp4/webm/ogg, max 10MB)

Response:
  - 201: {video}
  - 400: Validation failures, including missing files
  - 401: Authentication required
  - 403: Caller does not own the channel
  - 404: Unknown channel
*/
func (handler *Handler) upload(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	// A parse failure means the body itself is broken; missing files are
	// reported per-field by the intake below.
	if err := request.ParseMultipartForm(constants.MaxMultipartMemory); err != nil {
		respond.Error(writer, request, apperr.ValidationFailed("Invalid multipart form data"))
		return
	}

	title := request.FormValue("title")
	channelID := request.FormValue("channelId")
	description := request.FormValue("description")
	category := request.FormValue("category")

	v := &validate.Validator{}
	v.Required("title", title)
	v.Required("channelId", channelID)
	if channelID != "" {
		v.ID("channelId", channelID)
	}
	if err := v.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	// Both files must pass intake before any handler logic runs. Failures
	// are collected so the client learns about both at once.
	fileErrs := &validate.Validator{}

	thumbnail, err := blob.Image(request, "thumbnailFile", "thumbnails")
	if err != nil {
		appendFieldErrors(fileErrs, err)
	}
	media, err := blob.Video(request, "videoFile", "videos")
	if err != nil {
		appendFieldErrors(fileErrs, err)
	}
	if fileErrs.HasErrors() {
		if thumbnail != nil {
			_ = thumbnail.Close()
		}
		if media != nil {
			_ = media.Close()
		}
		respond.Error(writer, request, fileErrs.Err())
		return
	}

	created, err := handler.videoService.Upload(request.Context(), UploadInput{
		UploaderID:  userID,
		ChannelID:   channelID,
		Title:       title,
		Description: description,
		Category:    category,
		Thumbnail:   thumbnail,
		Media:       media,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, "video uploaded successfully", map[string]any{
		"video": created,
	})
}

// # Catalog Reads

/*
GET /video/.

Request:
  - query: category? (free text), limit? (default 100, max 500)

Response:
  - 200: {videos} with populated channel/uploader summaries
*/
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	category := request.URL.Query().Get("category")
	limit := convert.ToIntClamped(request.URL.Query().Get("limit"),
		constants.DefaultListLimit, constants.MaxListLimit)

	videos, err := handler.videoService.List(request.Context(), category, limit)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, "videos fetched successfully", map[string]any{
		"videos": videos,
	})
}

/*
GET /video/search.

Request:
  - query: title (required substring), limit? (default 50, max 500)

Response:
  - 200: {videos} as id+title projections
  - 400: Missing title query
*/
func (handler *Handler) search(writer http.ResponseWriter, request *http.Request) {
	title := strings.TrimSpace(request.URL.Query().Get("title"))
	limit := convert.ToIntClamped(request.URL.Query().Get("limit"),
		constants.DefaultSearchLimit, constants.MaxListLimit)

	v := &validate.Validator{}
	if err := v.Required("title", title).Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	matches, err := handler.videoService.Search(request.Context(), title, limit)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, "search results fetched successfully", map[string]any{
		"videos": matches,
	})
}

/*
GET /video/{id}.

Response:
  - 200: {video} with uploader, channel, and comments populated
  - 400: Malformed identifier
  - 404: Unknown video
*/
func (handler *Handler) getByID(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request)

	v := &validate.Validator{}
	if err := v.ID("id", id).Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	found, err := handler.videoService.GetByID(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, "video fetched successfully", map[string]any{
		"video": found,
	})
}

/*
GET /channel/{id}/videos.

Mounted on the channel router by the composition root; lives here because
the listing is a catalog query.

Response:
  - 200: {videos}
  - 400: Malformed identifier
  - 404: Unknown channel
*/
func (handler *Handler) ChannelVideos(writer http.ResponseWriter, request *http.Request) {
	channelID := requestutil.ID(request)

	v := &validate.Validator{}
	if err := v.ID("id", channelID).Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	videos, err := handler.videoService.ListByChannel(request.Context(), channelID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, "videos fetched successfully", map[string]any{
		"videos": videos,
	})
}

// # Mutations

// editRequest defines the expected JSON payload for partial edits.
type editRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

/*
PUT /video/{id}.

Description: Applies a partial metadata update; absent fields stay
untouched.

Response:
  - 200: {video}
  - 400: Empty title when provided
  - 401: Authentication required
  - 403: Caller is not the uploader
  - 404: Unknown video
*/
func (handler *Handler) edit(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	id := requestutil.ID(request)

	var input editRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	v := &validate.Validator{}
	v.ID("id", id)
	if input.Title != nil {
		v.Custom("title", strings.TrimSpace(*input.Title) == "", "Video title cannot be empty if provided")
	}
	if err := v.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	updated, err := handler.videoService.Edit(request.Context(), id, userID, EditInput{
		Title:       input.Title,
		Description: input.Description,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, "video updated successfully", map[string]any{
		"video": updated,
	})
}

/*
PUT /video/{id}/like.

Response:
  - 200: {likes} the new counter value
  - 404: Unknown video
*/
func (handler *Handler) like(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request)

	v := &validate.Validator{}
	if err := v.ID("id", id).Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	likes, err := handler.videoService.Like(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, "video liked successfully", map[string]any{
		"likes": likes,
	})
}

/*
PUT /video/{id}/dislike.

Response:
  - 200: {dislikes} the new counter value
  - 404: Unknown video
*/
func (handler *Handler) dislike(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request)

	v := &validate.Validator{}
	if err := v.ID("id", id).Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	dislikes, err := handler.videoService.Dislike(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, "video disliked successfully", map[string]any{
		"dislikes": dislikes,
	})
}

/*
DELETE /video/{id}.

Response:
  - 200: Deletion confirmation, no data
  - 401: Authentication required
  - 403: Caller is not the uploader
  - 404: Unknown video
*/
func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	id := requestutil.ID(request)

	v := &validate.Validator{}
	if err := v.ID("id", id).Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.videoService.Delete(request.Context(), id, userID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, "video deleted successfully", nil)
}

// appendFieldErrors copies an intake failure's field details into the
// accumulating validator.
func appendFieldErrors(v *validate.Validator, err error) {
	if appError := apperr.As(err); appError != nil {
		for _, detail := range appError.Details {
			v.Custom(detail.Field, true, detail.Message)
		}
		return
	}
	v.Custom("file", true, err.Error())
}
