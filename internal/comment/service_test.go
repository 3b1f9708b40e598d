// Copyright (c) 2026 Clipstream. All rights reserved.

package comment_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clipstream/clipstream/internal/comment"
	"github.com/clipstream/clipstream/internal/platform/apperr"
	"github.com/clipstream/clipstream/pkg/uuid"
)

// # Test Doubles

type mockRepository struct {
	comments []*comment.Comment
}

func (m *mockRepository) Create(_ context.Context, c *comment.Comment) error {
	m.comments = append(m.comments, c)
	return nil
}

func (m *mockRepository) ListByVideo(_ context.Context, videoID string) ([]comment.Comment, error) {
	var result []comment.Comment
	for _, c := range m.comments {
		if c.VideoID == videoID {
			result = append(result, *c)
		}
	}
	return result, nil
}

type stubVideoChecker struct {
	exists bool
}

func (s *stubVideoChecker) VideoExists(_ context.Context, _ string) (bool, error) {
	return s.exists, nil
}

func newTestService(repository comment.Repository, videos comment.VideoChecker) *comment.Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return comment.NewService(repository, videos, logger)
}

// # Tests

/*
TestAdd verifies a comment is persisted with trimmed text.
*/
func TestAdd(t *testing.T) {
	repository := &mockRepository{}
	service := newTestService(repository, &stubVideoChecker{exists: true})

	videoID := uuid.New()
	added, err := service.Add(context.Background(), comment.AddInput{
		VideoID: videoID,
		UserID:  "user-1",
		Text:    "  great video!  ",
	})
	require.NoError(t, err)

	assert.Equal(t, "great video!", added.Text)
	assert.Equal(t, videoID, added.VideoID)
	assert.Equal(t, "user-1", added.UserID)
	assert.NotEmpty(t, added.ID)
	assert.False(t, added.CreatedAt.IsZero())
	require.Len(t, repository.comments, 1)
}

/*
TestAdd_VideoNotFound verifies commenting on a missing video 404s and
persists nothing.
*/
func TestAdd_VideoNotFound(t *testing.T) {
	repository := &mockRepository{}
	service := newTestService(repository, &stubVideoChecker{exists: false})

	_, err := service.Add(context.Background(), comment.AddInput{
		VideoID: uuid.New(),
		UserID:  "user-1",
		Text:    "hello?",
	})
	require.Error(t, err)

	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "NOT_FOUND", appError.Code)
	assert.Equal(t, "video not found", appError.Message)
	assert.Empty(t, repository.comments)
}

/*
TestListByVideo verifies only the target video's comments come back.
*/
func TestListByVideo(t *testing.T) {
	repository := &mockRepository{}
	service := newTestService(repository, &stubVideoChecker{exists: true})

	videoID := uuid.New()
	otherID := uuid.New()
	for _, seed := range []struct {
		video string
		text  string
	}{
		{videoID, "first"},
		{otherID, "elsewhere"},
		{videoID, "second"},
	} {
		_, err := service.Add(context.Background(), comment.AddInput{
			VideoID: seed.video,
			UserID:  "user-1",
			Text:    seed.text,
		})
		require.NoError(t, err)
	}

	comments, err := service.ListByVideo(context.Background(), videoID)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "first", comments[0].Text)
	assert.Equal(t, "second", comments[1].Text)
}
