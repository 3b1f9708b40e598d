// Copyright (c) 2026 Clipstream. All rights reserved.

package channel_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clipstream/clipstream/internal/channel"
	"github.com/clipstream/clipstream/internal/platform/apperr"
	"github.com/clipstream/clipstream/internal/platform/blob"
	"github.com/clipstream/clipstream/pkg/uuid"
)

// # Test Doubles

type mockRepository struct {
	channels map[string]*channel.Channel
	videoIDs map[string][]string
}

func newMockRepository() *mockRepository {
	return &mockRepository{
		channels: map[string]*channel.Channel{},
		videoIDs: map[string][]string{},
	}
}

func (m *mockRepository) Create(_ context.Context, c *channel.Channel) error {
	m.channels[c.ID] = c
	return nil
}

func (m *mockRepository) FindByID(_ context.Context, id string) (*channel.Channel, error) {
	c, ok := m.channels[id]
	if !ok {
		return nil, apperr.NotFound("channel")
	}
	clone := *c
	return &clone, nil
}

func (m *mockRepository) VideoIDs(_ context.Context, channelID string) ([]string, error) {
	return m.videoIDs[channelID], nil
}

type fakeBlobStore struct {
	puts []string
}

func (f *fakeBlobStore) Put(_ context.Context, key, _ string, _ io.Reader, _ int64) (string, error) {
	f.puts = append(f.puts, key)
	return "https://cdn.clipstream.app/" + key, nil
}

func (f *fakeBlobStore) Delete(_ context.Context, _ string) error {
	return nil
}

type fakeFile struct {
	*bytes.Reader
}

func (fakeFile) Close() error { return nil }

func testBanner() *blob.Upload {
	content := []byte("banner-bytes")
	return &blob.Upload{
		Key:         "banners/" + uuid.New() + ".png",
		ContentType: "image/png",
		Size:        int64(len(content)),
		File:        fakeFile{bytes.NewReader(content)},
	}
}

func newTestService(repository channel.Repository, blobs blob.Store) *channel.Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return channel.NewService(repository, blobs, logger)
}

// # Tests

/*
TestCreate verifies the banner is uploaded and the channel persisted with a
derived slug.
*/
func TestCreate(t *testing.T) {
	repository := newMockRepository()
	blobs := &fakeBlobStore{}
	service := newTestService(repository, blobs)

	created, err := service.Create(context.Background(), channel.CreateInput{
		OwnerID:     "user-1",
		Name:        "  Tech Reviews  ",
		Description: " honest reviews ",
		Banner:      testBanner(),
	})
	require.NoError(t, err)

	assert.Equal(t, "Tech Reviews", created.Name)
	assert.Equal(t, "tech-reviews", created.Slug)
	assert.Equal(t, "honest reviews", created.Description)
	assert.Equal(t, "user-1", created.OwnerID)
	assert.Contains(t, created.BannerURL, "banners/")
	assert.NotNil(t, created.Videos)
	assert.Empty(t, created.Videos)

	require.Len(t, blobs.puts, 1)
	assert.Contains(t, repository.channels, created.ID)
}

/*
TestGetByID verifies the channel is hydrated with its video id list.
*/
func TestGetByID(t *testing.T) {
	repository := newMockRepository()
	service := newTestService(repository, &fakeBlobStore{})

	seeded := &channel.Channel{ID: uuid.New(), OwnerID: "user-1", Name: "Tech Reviews"}
	repository.channels[seeded.ID] = seeded
	repository.videoIDs[seeded.ID] = []string{"v-1", "v-2"}

	loaded, err := service.GetByID(context.Background(), seeded.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"v-1", "v-2"}, loaded.Videos)
}

/*
TestGetByID_NotFound verifies unknown channels 404.
*/
func TestGetByID_NotFound(t *testing.T) {
	service := newTestService(newMockRepository(), &fakeBlobStore{})

	_, err := service.GetByID(context.Background(), uuid.New())
	require.Error(t, err)

	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "NOT_FOUND", appError.Code)
	assert.Equal(t, "channel not found", appError.Message)
}
