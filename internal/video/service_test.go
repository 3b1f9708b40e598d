// Copyright (c) 2026 Clipstream. All rights reserved.

package video_test

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clipstream/clipstream/internal/comment"
	"github.com/clipstream/clipstream/internal/platform/apperr"
	"github.com/clipstream/clipstream/internal/platform/blob"
	"github.com/clipstream/clipstream/internal/video"
	"github.com/clipstream/clipstream/pkg/pointer"
	"github.com/clipstream/clipstream/pkg/uuid"
)

// # Test Doubles

type mockRepository struct {
	videos        map[string]*video.Video
	channelOwners map[string]string
	listings      []video.Video
	listCalls     int
	deleted       []string
	updated       []*video.Video
}

func newMockRepository() *mockRepository {
	return &mockRepository{
		videos:        map[string]*video.Video{},
		channelOwners: map[string]string{},
	}
}

func (m *mockRepository) Create(_ context.Context, v *video.Video) error {
	m.videos[v.ID] = v
	return nil
}

func (m *mockRepository) FindByID(_ context.Context, id string) (*video.Video, error) {
	v, ok := m.videos[id]
	if !ok {
		return nil, apperr.NotFound("video")
	}
	clone := *v
	return &clone, nil
}

func (m *mockRepository) FindDetailByID(ctx context.Context, id string) (*video.Video, error) {
	v, err := m.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	v.Channel = &video.ChannelRef{ID: v.ChannelID, Name: "Test Channel"}
	v.Uploader = &video.UserRef{ID: v.UploaderID, Username: "alex"}
	return v, nil
}

func (m *mockRepository) List(_ context.Context, _ string, _ int) ([]video.Video, error) {
	m.listCalls++
	return m.listings, nil
}

func (m *mockRepository) ListByChannel(_ context.Context, channelID string) ([]video.Video, error) {
	var result []video.Video
	for _, v := range m.videos {
		if v.ChannelID == channelID {
			result = append(result, *v)
		}
	}
	return result, nil
}

func (m *mockRepository) SearchByTitle(_ context.Context, title string, _ int) ([]video.TitleMatch, error) {
	// Case-insensitive substring match, like the ILIKE query.
	needle := strings.ToLower(title)
	var matches []video.TitleMatch
	for _, v := range m.videos {
		if strings.Contains(strings.ToLower(v.Title), needle) {
			matches = append(matches, video.TitleMatch{ID: v.ID, Title: v.Title})
		}
	}
	return matches, nil
}

func (m *mockRepository) UpdateMeta(_ context.Context, v *video.Video) error {
	m.updated = append(m.updated, v)
	m.videos[v.ID] = v
	return nil
}

func (m *mockRepository) IncrementLikes(_ context.Context, id string) (int, error) {
	v, ok := m.videos[id]
	if !ok {
		return 0, apperr.NotFound("video")
	}
	v.Likes++
	return v.Likes, nil
}

func (m *mockRepository) IncrementDislikes(_ context.Context, id string) (int, error) {
	v, ok := m.videos[id]
	if !ok {
		return 0, apperr.NotFound("video")
	}
	v.Dislikes++
	return v.Dislikes, nil
}

func (m *mockRepository) DeleteCascade(_ context.Context, id string) error {
	m.deleted = append(m.deleted, id)
	delete(m.videos, id)
	return nil
}

func (m *mockRepository) FindChannelOwner(_ context.Context, channelID string) (string, error) {
	owner, ok := m.channelOwners[channelID]
	if !ok {
		return "", apperr.NotFound("channel")
	}
	return owner, nil
}

func (m *mockRepository) VideoExists(_ context.Context, videoID string) (bool, error) {
	_, ok := m.videos[videoID]
	return ok, nil
}

type fakeCache struct {
	entries     map[string][]video.Video
	invalidated int
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[string][]video.Video{}}
}

func (f *fakeCache) cacheKey(category string, limit int) string {
	return fmt.Sprintf("%s:%d", category, limit)
}

func (f *fakeCache) Get(_ context.Context, category string, limit int) ([]video.Video, bool) {
	videos, ok := f.entries[f.cacheKey(category, limit)]
	return videos, ok
}

func (f *fakeCache) Set(_ context.Context, category string, limit int, videos []video.Video) {
	f.entries[f.cacheKey(category, limit)] = videos
}

func (f *fakeCache) Invalidate(_ context.Context) {
	f.entries = map[string][]video.Video{}
	f.invalidated++
}

type fakeBlobStore struct {
	puts    []string
	deletes []string
}

func (f *fakeBlobStore) Put(_ context.Context, key, _ string, _ io.Reader, _ int64) (string, error) {
	f.puts = append(f.puts, key)
	return "https://cdn.clipstream.app/" + key, nil
}

func (f *fakeBlobStore) Delete(_ context.Context, key string) error {
	f.deletes = append(f.deletes, key)
	return nil
}

type fakeCommentLister struct {
	comments []comment.Comment
}

func (f *fakeCommentLister) ListByVideo(_ context.Context, _ string) ([]comment.Comment, error) {
	return f.comments, nil
}

// fakeFile adapts a byte slice to the multipart.File contract.
type fakeFile struct {
	*bytes.Reader
}

func (fakeFile) Close() error { return nil }

func testUpload(prefix string) *blob.Upload {
	content := []byte("binary-content")
	return &blob.Upload{
		Key:         prefix + "/" + uuid.New() + ".bin",
		ContentType: "application/test",
		Size:        int64(len(content)),
		File:        fakeFile{bytes.NewReader(content)},
	}
}

type fixture struct {
	repository *mockRepository
	cache      *fakeCache
	blobs      *fakeBlobStore
	service    *video.Service
}

func newFixture() *fixture {
	repository := newMockRepository()
	cache := newFakeCache()
	blobs := &fakeBlobStore{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := video.NewService(repository, cache, blobs, &fakeCommentLister{}, logger)
	return &fixture{repository: repository, cache: cache, blobs: blobs, service: service}
}

func (f *fixture) seedVideo(uploaderID, channelID string) *video.Video {
	v := &video.Video{
		ID:           uuid.New(),
		ChannelID:    channelID,
		UploaderID:   uploaderID,
		Title:        "Original Title",
		Category:     "tech",
		ThumbnailURL: "https://cdn.clipstream.app/thumbnails/thumb.jpg",
		VideoURL:     "https://cdn.clipstream.app/videos/clip.mp4",
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	f.repository.videos[v.ID] = v
	return v
}

// # Upload

/*
TestUpload verifies both assets are stored and the record is created with
normalized metadata.
*/
func TestUpload(t *testing.T) {
	f := newFixture()
	f.repository.channelOwners["ch-1"] = "user-1"

	uploaded, err := f.service.Upload(context.Background(), video.UploadInput{
		UploaderID:  "user-1",
		ChannelID:   "ch-1",
		Title:       "  My First Video  ",
		Description: "desc",
		Category:    "  TECH  ",
		Thumbnail:   testUpload("thumbnails"),
		Media:       testUpload("videos"),
	})
	require.NoError(t, err)

	assert.Equal(t, "My First Video", uploaded.Title)
	assert.Equal(t, "tech", uploaded.Category)
	assert.Contains(t, uploaded.ThumbnailURL, "thumbnails/")
	assert.Contains(t, uploaded.VideoURL, "videos/")

	// Both assets went to storage, record persisted, cache flushed.
	assert.Len(t, f.blobs.puts, 2)
	assert.Contains(t, f.repository.videos, uploaded.ID)
	assert.Equal(t, 1, f.cache.invalidated)
}

/*
TestUpload_ChannelNotFound verifies unknown channels 404 before any byte is
uploaded.
*/
func TestUpload_ChannelNotFound(t *testing.T) {
	f := newFixture()

	_, err := f.service.Upload(context.Background(), video.UploadInput{
		UploaderID: "user-1",
		ChannelID:  uuid.New(),
		Title:      "t",
		Thumbnail:  testUpload("thumbnails"),
		Media:      testUpload("videos"),
	})
	require.Error(t, err)

	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "NOT_FOUND", appError.Code)
	assert.Empty(t, f.blobs.puts)
}

/*
TestUpload_NotChannelOwner verifies uploading to someone else's channel is
forbidden and nothing reaches storage.
*/
func TestUpload_NotChannelOwner(t *testing.T) {
	f := newFixture()
	f.repository.channelOwners["ch-1"] = "owner-user"

	_, err := f.service.Upload(context.Background(), video.UploadInput{
		UploaderID: "intruder",
		ChannelID:  "ch-1",
		Title:      "t",
		Thumbnail:  testUpload("thumbnails"),
		Media:      testUpload("videos"),
	})
	require.Error(t, err)

	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "FORBIDDEN", appError.Code)
	assert.Equal(t, "unauthorized action", appError.Message)
	assert.Empty(t, f.blobs.puts)
	assert.Empty(t, f.repository.videos)
}

// # Catalog Reads

/*
TestGetByID verifies the detail view populates relations and comments.
*/
func TestGetByID(t *testing.T) {
	f := newFixture()
	lister := &fakeCommentLister{comments: []comment.Comment{{ID: "c1", Text: "nice"}}}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := video.NewService(f.repository, f.cache, f.blobs, lister, logger)

	seeded := f.seedVideo("user-1", "ch-1")

	loaded, err := service.GetByID(context.Background(), seeded.ID)
	require.NoError(t, err)
	assert.NotNil(t, loaded.Channel)
	assert.NotNil(t, loaded.Uploader)
	require.Len(t, loaded.Comments, 1)
	assert.Equal(t, "nice", loaded.Comments[0].Text)
}

/*
TestList_CacheMissThenHit verifies a miss populates the cache and the second
call never touches storage.
*/
func TestList_CacheMissThenHit(t *testing.T) {
	f := newFixture()
	f.repository.listings = []video.Video{{ID: "v1", Title: "cached"}}

	// 1. Miss: goes to storage and fills the cache
	first, err := f.service.List(context.Background(), "Tech", 100)
	require.NoError(t, err)
	require.Len(t, first, 1)
	assert.Equal(t, 1, f.repository.listCalls)

	// 2. Hit: same normalized key, storage untouched
	second, err := f.service.List(context.Background(), "  tech ", 100)
	require.NoError(t, err)
	require.Len(t, second, 1)
	assert.Equal(t, 1, f.repository.listCalls)

	// 3. Different limit is a different cache entry
	_, err = f.service.List(context.Background(), "tech", 50)
	require.NoError(t, err)
	assert.Equal(t, 2, f.repository.listCalls)
}

/*
TestSearch verifies matching is case-insensitive on the title substring.
*/
func TestSearch(t *testing.T) {
	f := newFixture()
	seeded := f.seedVideo("user-1", "ch-1")
	seeded.Title = "Golang Tutorial"

	matches, err := f.service.Search(context.Background(), "golang", 50)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, seeded.ID, matches[0].ID)
	assert.Equal(t, "Golang Tutorial", matches[0].Title)

	matches, err = f.service.Search(context.Background(), "rust", 50)
	require.NoError(t, err)
	assert.Empty(t, matches)
}

/*
TestListByChannel_ChannelNotFound verifies the listing distinguishes a
missing channel from an empty one.
*/
func TestListByChannel_ChannelNotFound(t *testing.T) {
	f := newFixture()

	_, err := f.service.ListByChannel(context.Background(), uuid.New())
	require.Error(t, err)

	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "NOT_FOUND", appError.Code)
	assert.Equal(t, "channel not found", appError.Message)
}

/*
TestListByChannel_Empty verifies an existing channel with no videos returns
an empty listing, not an error.
*/
func TestListByChannel_Empty(t *testing.T) {
	f := newFixture()
	f.repository.channelOwners["ch-1"] = "user-1"

	videos, err := f.service.ListByChannel(context.Background(), "ch-1")
	require.NoError(t, err)
	assert.Empty(t, videos)
}

// # Mutations

/*
TestEdit_Partial verifies only provided fields change.
*/
func TestEdit_Partial(t *testing.T) {
	f := newFixture()
	seeded := f.seedVideo("user-1", "ch-1")
	seeded.Description = "keep me"

	updated, err := f.service.Edit(context.Background(), seeded.ID, "user-1", video.EditInput{
		Title: pointer.To("  New Title  "),
	})
	require.NoError(t, err)

	assert.Equal(t, "New Title", updated.Title)
	assert.Equal(t, "keep me", updated.Description)
	require.Len(t, f.repository.updated, 1)
	assert.Equal(t, 1, f.cache.invalidated)
}

/*
TestEdit_NotOwner verifies only the uploader may edit.
*/
func TestEdit_NotOwner(t *testing.T) {
	f := newFixture()
	seeded := f.seedVideo("user-1", "ch-1")

	_, err := f.service.Edit(context.Background(), seeded.ID, "intruder", video.EditInput{
		Title: pointer.To("hijacked"),
	})
	require.Error(t, err)

	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "FORBIDDEN", appError.Code)
	assert.Empty(t, f.repository.updated)
}

/*
TestLikeDislike verifies raw counter semantics: repeated calls keep
incrementing, no per-user dedup.
*/
func TestLikeDislike(t *testing.T) {
	f := newFixture()
	seeded := f.seedVideo("user-1", "ch-1")

	count, err := f.service.Like(context.Background(), seeded.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	count, err = f.service.Like(context.Background(), seeded.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	count, err = f.service.Dislike(context.Background(), seeded.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

/*
TestLike_NotFound verifies liking a missing video 404s.
*/
func TestLike_NotFound(t *testing.T) {
	f := newFixture()

	_, err := f.service.Like(context.Background(), uuid.New())
	require.Error(t, err)

	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "NOT_FOUND", appError.Code)
}

/*
TestDelete verifies the owner can delete, both stored assets are removed,
and the cache is flushed.
*/
func TestDelete(t *testing.T) {
	f := newFixture()
	seeded := f.seedVideo("user-1", "ch-1")

	err := f.service.Delete(context.Background(), seeded.ID, "user-1")
	require.NoError(t, err)

	assert.Equal(t, []string{seeded.ID}, f.repository.deleted)
	assert.NotContains(t, f.repository.videos, seeded.ID)
	assert.Equal(t, []string{"thumbnails/thumb.jpg", "videos/clip.mp4"}, f.blobs.deletes)
	assert.Equal(t, 1, f.cache.invalidated)
}

/*
TestDelete_NotOwner verifies deletion by anyone but the uploader is
forbidden.
*/
func TestDelete_NotOwner(t *testing.T) {
	f := newFixture()
	seeded := f.seedVideo("user-1", "ch-1")

	err := f.service.Delete(context.Background(), seeded.ID, "intruder")
	require.Error(t, err)

	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "FORBIDDEN", appError.Code)
	assert.Equal(t, "unauthorized action", appError.Message)
	assert.Empty(t, f.repository.deleted)
	assert.Empty(t, f.blobs.deletes)
}
