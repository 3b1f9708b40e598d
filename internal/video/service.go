// Copyright (c) 2026 Clipstream. All rights reserved.

package video

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/clipstream/clipstream/internal/platform/apperr"
	"github.com/clipstream/clipstream/internal/platform/blob"
	"github.com/clipstream/clipstream/pkg/uuid"
)

// # Service Layer

// Service orchestrates business logic for the video catalog.
type Service struct {
	repository Repository
	cache      ListCache
	blobs      blob.Store
	comments   CommentLister
	logger     *slog.Logger
}

// NewService constructs a new [Service] with its dependencies.
func NewService(
	repository Repository,
	cache ListCache,
	blobs blob.Store,
	comments CommentLister,
	logger *slog.Logger,
) *Service {
	return &Service{
		repository: repository,
		cache:      cache,
		blobs:      blobs,
		comments:   comments,
		logger:     logger,
	}
}

// # Upload

// UploadInput carries the validated upload payload.
type UploadInput struct {
	UploaderID  string
	ChannelID   string
	Title       string
	Description string
	Category    string
	Thumbnail   *blob.Upload
	Media       *blob.Upload
}

/*
Upload stores the media assets and creates the video record.

Description: The referenced channel must exist and be owned by the
uploader; the check runs before any byte reaches the media host. Category
is stored lower-cased for filtering. The channel's video list is derived,
so no second record needs updating.

Parameters:
  - context: context.Context
  - input: UploadInput (files already validated by the multipart intake)

Returns:
  - *Video: The created video
  - error: apperr.NotFound (channel), apperr.Forbidden (not the owner),
    upload or storage failures
*/
func (service *Service) Upload(context context.Context, input UploadInput) (*Video, error) {
	defer input.Thumbnail.Close()
	defer input.Media.Close()

	ownerID, err := service.repository.FindChannelOwner(context, input.ChannelID)
	if err != nil {
		return nil, err
	}
	if ownerID != input.UploaderID {
		return nil, apperr.Forbidden("unauthorized action")
	}

	thumbnailURL, err := service.blobs.Put(context,
		input.Thumbnail.Key, input.Thumbnail.ContentType, input.Thumbnail.File, input.Thumbnail.Size)
	if err != nil {
		return nil, fmt.Errorf("video_service_thumbnail_upload_failed: %w", err)
	}

	videoURL, err := service.blobs.Put(context,
		input.Media.Key, input.Media.ContentType, input.Media.File, input.Media.Size)
	if err != nil {
		return nil, fmt.Errorf("video_service_media_upload_failed: %w", err)
	}

	now := time.Now()
	newVideo := &Video{
		ID:           uuid.New(),
		ChannelID:    input.ChannelID,
		UploaderID:   input.UploaderID,
		Title:        strings.TrimSpace(input.Title),
		Description:  strings.TrimSpace(input.Description),
		Category:     strings.ToLower(strings.TrimSpace(input.Category)),
		ThumbnailURL: thumbnailURL,
		VideoURL:     videoURL,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := service.repository.Create(context, newVideo); err != nil {
		return nil, fmt.Errorf("video_service_create_failed: %w", err)
	}

	service.cache.Invalidate(context)

	service.logger.Info("video_uploaded",
		slog.String("video_id", newVideo.ID),
		slog.String("channel_id", newVideo.ChannelID),
	)

	return newVideo, nil
}

// # Catalog Reads

/*
GetByID retrieves a video with uploader, channel, and comments populated.

Parameters:
  - context: context.Context
  - id: string

Returns:
  - *Video: Fully hydrated detail view
  - error: apperr.NotFound or storage failures
*/
func (service *Service) GetByID(context context.Context, id string) (*Video, error) {
	found, err := service.repository.FindDetailByID(context, id)
	if err != nil {
		return nil, err
	}

	comments, err := service.comments.ListByVideo(context, found.ID)
	if err != nil {
		return nil, fmt.Errorf("video_service_comments_failed: %w", err)
	}
	found.Comments = comments

	return found, nil
}

/*
List returns the catalog listing, optionally filtered by category.

Description: Served from the cache when a fresh entry exists; on a miss
the storage result is cached for the next caller. Cache failures degrade
to direct storage reads.

Parameters:
  - context: context.Context
  - category: string (free text; matched lower-cased)
  - limit: int (clamped by the handler)

Returns:
  - []Video: Videos with populated channel/uploader summaries
  - error: Storage failures
*/
func (service *Service) List(context context.Context, category string, limit int) ([]Video, error) {
	normalized := strings.ToLower(strings.TrimSpace(category))

	if cached, ok := service.cache.Get(context, normalized, limit); ok {
		return cached, nil
	}

	videos, err := service.repository.List(context, normalized, limit)
	if err != nil {
		return nil, fmt.Errorf("video_service_list_failed: %w", err)
	}

	service.cache.Set(context, normalized, limit, videos)

	return videos, nil
}

/*
ListByChannel returns all videos of a channel.

Parameters:
  - context: context.Context
  - channelID: string

Returns:
  - []Video: The channel's videos, oldest first
  - error: apperr.NotFound when the channel does not exist
*/
func (service *Service) ListByChannel(context context.Context, channelID string) ([]Video, error) {
	// The 404 contract requires distinguishing "no videos" from
	// "no such channel".
	if _, err := service.repository.FindChannelOwner(context, channelID); err != nil {
		return nil, err
	}

	videos, err := service.repository.ListByChannel(context, channelID)
	if err != nil {
		return nil, fmt.Errorf("video_service_channel_list_failed: %w", err)
	}

	return videos, nil
}

/*
Search performs a case-insensitive substring title search.

Parameters:
  - context: context.Context
  - title: string (raw substring, non-empty)
  - limit: int

Returns:
  - []TitleMatch: id+title projections only
  - error: Storage failures
*/
func (service *Service) Search(context context.Context, title string, limit int) ([]TitleMatch, error) {
	matches, err := service.repository.SearchByTitle(context, title, limit)
	if err != nil {
		return nil, fmt.Errorf("video_service_search_failed: %w", err)
	}
	return matches, nil
}

// # Mutations

// EditInput carries the partial-update payload; nil fields stay untouched.
type EditInput struct {
	Title       *string
	Description *string
}

/*
Edit applies a partial metadata update as the video's uploader.

Parameters:
  - context: context.Context
  - id: string
  - userID: string (the acting user)
  - input: EditInput

Returns:
  - *Video: The updated video
  - error: apperr.NotFound, apperr.Forbidden, or storage failures
*/
func (service *Service) Edit(context context.Context, id, userID string, input EditInput) (*Video, error) {
	found, err := service.repository.FindByID(context, id)
	if err != nil {
		return nil, err
	}

	if found.UploaderID != userID {
		return nil, apperr.Forbidden("unauthorized action")
	}

	if input.Title != nil {
		found.Title = strings.TrimSpace(*input.Title)
	}
	if input.Description != nil {
		found.Description = strings.TrimSpace(*input.Description)
	}
	found.UpdatedAt = time.Now()

	if err := service.repository.UpdateMeta(context, found); err != nil {
		return nil, fmt.Errorf("video_service_update_failed: %w", err)
	}

	service.cache.Invalidate(context)

	service.logger.Info("video_updated", slog.String("video_id", found.ID))

	return found, nil
}

/*
Like adds one to the like counter. No dedup: repeated calls increment
repeatedly.

Parameters:
  - context: context.Context
  - id: string

Returns:
  - int: The new like count
  - error: apperr.NotFound or storage failures
*/
func (service *Service) Like(context context.Context, id string) (int, error) {
	return service.repository.IncrementLikes(context, id)
}

// Dislike adds one to the dislike counter. Same semantics as [Service.Like].
func (service *Service) Dislike(context context.Context, id string) (int, error) {
	return service.repository.IncrementDislikes(context, id)
}

/*
Delete removes a video and its comments as the video's uploader.

Description: The comment deletion and the video deletion run in one
storage transaction; a failure partway leaves nothing half-deleted. The
channel's video list is derived, so removal from it is implicit.

Parameters:
  - context: context.Context
  - id: string
  - userID: string (the acting user)

Returns:
  - error: apperr.NotFound, apperr.Forbidden, or transaction failures
*/
func (service *Service) Delete(context context.Context, id, userID string) error {
	found, err := service.repository.FindByID(context, id)
	if err != nil {
		return err
	}

	if found.UploaderID != userID {
		return apperr.Forbidden("unauthorized action")
	}

	if err := service.repository.DeleteCascade(context, id); err != nil {
		return fmt.Errorf("video_service_delete_failed: %w", err)
	}

	// The record is gone; asset removal is best effort.
	service.removeAsset(context, found.ThumbnailURL)
	service.removeAsset(context, found.VideoURL)

	service.cache.Invalidate(context)

	service.logger.Info("video_deleted",
		slog.String("video_id", id),
		slog.String("channel_id", found.ChannelID),
	)

	return nil
}

// removeAsset deletes the stored media object behind a public URL.
//
// Failures are logged and swallowed: the catalog record is already gone
// and an orphaned object is recoverable by a cleanup job.
func (service *Service) removeAsset(context context.Context, assetURL string) {
	parsed, err := url.Parse(assetURL)
	if err != nil || parsed.Path == "" {
		return
	}

	key := strings.TrimPrefix(parsed.Path, "/")
	if err := service.blobs.Delete(context, key); err != nil {
		service.logger.Warn("video_asset_delete_failed",
			slog.String("key", key),
			slog.Any("error", err),
		)
	}
}
