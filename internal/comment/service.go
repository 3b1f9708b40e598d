// Copyright (c) 2026 Clipstream. All rights reserved.

package comment

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/clipstream/clipstream/internal/platform/apperr"
	"github.com/clipstream/clipstream/pkg/uuid"
)

// # Service Layer

// Service orchestrates business logic for comments.
type Service struct {
	repository Repository
	videos     VideoChecker
	logger     *slog.Logger
}

// NewService constructs a new [Service] with its dependencies.
func NewService(repository Repository, videos VideoChecker, logger *slog.Logger) *Service {
	return &Service{
		repository: repository,
		videos:     videos,
		logger:     logger,
	}
}

// AddInput carries the validated add-comment payload.
type AddInput struct {
	VideoID string
	UserID  string
	Text    string
}

/*
Add creates a comment on an existing video.

Parameters:
  - context: context.Context
  - input: AddInput

Returns:
  - *Comment: The created comment
  - error: apperr.NotFound when the video does not exist, or storage failures
*/
func (service *Service) Add(context context.Context, input AddInput) (*Comment, error) {
	exists, err := service.videos.VideoExists(context, input.VideoID)
	if err != nil {
		return nil, fmt.Errorf("comment_service_video_check_failed: %w", err)
	}
	if !exists {
		return nil, apperr.NotFound("video")
	}

	newComment := &Comment{
		ID:        uuid.New(),
		VideoID:   input.VideoID,
		UserID:    input.UserID,
		Text:      strings.TrimSpace(input.Text),
		CreatedAt: time.Now(),
	}

	if err := service.repository.Create(context, newComment); err != nil {
		return nil, fmt.Errorf("comment_service_create_failed: %w", err)
	}

	service.logger.Info("comment_added",
		slog.String("comment_id", newComment.ID),
		slog.String("video_id", newComment.VideoID),
	)

	return newComment, nil
}

/*
ListByVideo lists all comments on a video, oldest first.

Parameters:
  - context: context.Context
  - videoID: string

Returns:
  - []Comment: Comments ordered by creation time
  - error: Storage failures
*/
func (service *Service) ListByVideo(context context.Context, videoID string) ([]Comment, error) {
	comments, err := service.repository.ListByVideo(context, videoID)
	if err != nil {
		return nil, fmt.Errorf("comment_service_list_failed: %w", err)
	}
	return comments, nil
}
