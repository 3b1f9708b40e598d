// Copyright (c) 2026 Clipstream. All rights reserved.

package channel

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/clipstream/clipstream/internal/platform/blob"
	"github.com/clipstream/clipstream/pkg/slug"
	"github.com/clipstream/clipstream/pkg/uuid"
)

// # Service Layer

// Service orchestrates business logic for channels.
type Service struct {
	repository Repository
	blobs      blob.Store
	logger     *slog.Logger
}

// NewService constructs a new [Service] with its dependencies.
func NewService(repository Repository, blobs blob.Store, logger *slog.Logger) *Service {
	return &Service{
		repository: repository,
		blobs:      blobs,
		logger:     logger,
	}
}

// CreateInput carries the validated channel creation payload.
type CreateInput struct {
	OwnerID     string
	Name        string
	Description string
	Banner      *blob.Upload
}

/*
Create persists a new channel after storing its banner asset.

Description: The banner streams to the media host first; its public URL is
what gets persisted. The owner's channel list is derived, so no second
record needs updating.

Parameters:
  - context: context.Context
  - input: CreateInput (Banner already validated by the multipart intake)

Returns:
  - *Channel: The created channel
  - error: Upload or storage failures
*/
func (service *Service) Create(context context.Context, input CreateInput) (*Channel, error) {
	defer input.Banner.Close()

	bannerURL, err := service.blobs.Put(context,
		input.Banner.Key, input.Banner.ContentType, input.Banner.File, input.Banner.Size)
	if err != nil {
		return nil, fmt.Errorf("channel_service_banner_upload_failed: %w", err)
	}

	now := time.Now()
	newChannel := &Channel{
		ID:          uuid.New(),
		OwnerID:     input.OwnerID,
		Name:        strings.TrimSpace(input.Name),
		Slug:        slug.From(input.Name),
		Description: strings.TrimSpace(input.Description),
		BannerURL:   bannerURL,
		Videos:      []string{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := service.repository.Create(context, newChannel); err != nil {
		return nil, fmt.Errorf("channel_service_create_failed: %w", err)
	}

	service.logger.Info("channel_created",
		slog.String("channel_id", newChannel.ID),
		slog.String("owner_id", newChannel.OwnerID),
	)

	return newChannel, nil
}

/*
GetByID retrieves a channel, with its derived video id list.

Parameters:
  - context: context.Context
  - id: string

Returns:
  - *Channel: The hydrated channel
  - error: apperr.NotFound or storage failures
*/
func (service *Service) GetByID(context context.Context, id string) (*Channel, error) {
	found, err := service.repository.FindByID(context, id)
	if err != nil {
		return nil, err
	}

	videos, err := service.repository.VideoIDs(context, found.ID)
	if err != nil {
		return nil, fmt.Errorf("channel_service_videos_failed: %w", err)
	}
	found.Videos = videos

	return found, nil
}
