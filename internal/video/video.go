// Copyright (c) 2026 Clipstream. All rights reserved.

/*
Package video handles the media catalog: upload, listing, search, partial
edits, engagement counters, and cascading deletion.

# Architecture

  - Entities: Video, plus lightweight ChannelRef/UserRef summaries used
    when listings populate their related records.
  - Ownership: a video belongs to exactly one channel and is attributed
    to exactly one uploading user; at upload time the channel's owner
    must be the uploader.
  - Deletion is a storage transaction: comments and the video row go
    together or not at all.
  - Hot list queries sit behind the [ListCache] contract (Redis in
    production, a fake in tests).
*/
package video

import (
	"context"
	"time"

	"github.com/clipstream/clipstream/internal/comment"
)

// # Domain Entities

// Video is a media asset plus metadata.
type Video struct {
	ID           string    `json:"id"`
	ChannelID    string    `json:"channelId"`
	UploaderID   string    `json:"uploader"`
	Title        string    `json:"title"`
	Description  string    `json:"description,omitempty"`
	Category     string    `json:"category,omitempty"`
	ThumbnailURL string    `json:"thumbnailUrl"`
	VideoURL     string    `json:"videoUrl"`
	Views        int       `json:"views"`
	Likes        int       `json:"likes"`
	Dislikes     int       `json:"dislikes"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`

	// Populated relations. Nil/empty unless the query joins them in.
	Channel  *ChannelRef       `json:"channel,omitempty"`
	Uploader *UserRef          `json:"uploaderInfo,omitempty"`
	Comments []comment.Comment `json:"comments,omitempty"`
}

// ChannelRef is the channel summary embedded in populated listings.
type ChannelRef struct {
	ID        string `json:"id"`
	Name      string `json:"channelName"`
	BannerURL string `json:"channelBanner"`
}

// UserRef is the uploader summary embedded in populated listings.
type UserRef struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	AvatarURL string `json:"avatarUrl,omitempty"`
}

// TitleMatch is the minimal search projection: identifier and title only.
type TitleMatch struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// # Repository Contracts

// Repository defines the persistence contract for videos.
type Repository interface {
	/*
		Create inserts a new video record.

		Parameters:
		  - context: context.Context
		  - video: *Video (ID and timestamps already assigned)

		Returns:
		  - error: Storage failures
	*/
	Create(context context.Context, video *Video) error

	/*
		FindByID retrieves a bare video record by id (no populated relations).

		Parameters:
		  - context: context.Context
		  - id: string (UUID)

		Returns:
		  - *Video: Loaded video entity
		  - error: apperr.NotFound or storage failures
	*/
	FindByID(context context.Context, id string) (*Video, error)

	/*
		FindDetailByID retrieves a video with its channel and uploader
		summaries populated.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - *Video: Video with Channel and Uploader set
		  - error: apperr.NotFound or storage failures
	*/
	FindDetailByID(context context.Context, id string) (*Video, error)

	/*
		List returns videos with populated summaries, newest first.

		Parameters:
		  - context: context.Context
		  - category: string (empty means all; already lower-cased)
		  - limit: int

		Returns:
		  - []Video: Up to limit videos
		  - error: Storage failures
	*/
	List(context context.Context, category string, limit int) ([]Video, error)

	/*
		ListByChannel returns a channel's videos, oldest first.

		Parameters:
		  - context: context.Context
		  - channelID: string

		Returns:
		  - []Video: All videos of the channel
		  - error: Storage failures
	*/
	ListByChannel(context context.Context, channelID string) ([]Video, error)

	/*
		SearchByTitle performs a case-insensitive substring match over titles.

		Parameters:
		  - context: context.Context
		  - title: string (raw substring)
		  - limit: int

		Returns:
		  - []TitleMatch: id+title projections
		  - error: Storage failures
	*/
	SearchByTitle(context context.Context, title string, limit int) ([]TitleMatch, error)

	/*
		UpdateMeta persists the mutable metadata fields (title, description).

		Parameters:
		  - context: context.Context
		  - video: *Video (hydrated entity with changes)

		Returns:
		  - error: Storage failures
	*/
	UpdateMeta(context context.Context, video *Video) error

	/*
		IncrementLikes adds one to the like counter.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - int: The new like count
		  - error: apperr.NotFound or storage failures
	*/
	IncrementLikes(context context.Context, id string) (int, error)

	/*
		IncrementDislikes adds one to the dislike counter.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - int: The new dislike count
		  - error: apperr.NotFound or storage failures
	*/
	IncrementDislikes(context context.Context, id string) (int, error)

	/*
		DeleteCascade removes a video and all of its comments in a single
		transaction.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - error: Transaction failures
	*/
	DeleteCascade(context context.Context, id string) error

	/*
		FindChannelOwner returns the owner id of a channel.

		Parameters:
		  - context: context.Context
		  - channelID: string

		Returns:
		  - string: Owner user id
		  - error: apperr.NotFound when the channel does not exist
	*/
	FindChannelOwner(context context.Context, channelID string) (string, error)

	/*
		VideoExists reports whether a video exists. Satisfies the comment
		domain's VideoChecker contract.

		Parameters:
		  - context: context.Context
		  - videoID: string

		Returns:
		  - bool: true when present
		  - error: Storage failures
	*/
	VideoExists(context context.Context, videoID string) (bool, error)
}

// # Collaborator Contracts

// ListCache caches catalog listings per (category, limit).
type ListCache interface {
	// Get returns the cached listing and whether it was present. Cache
	// failures are treated as misses, never surfaced to callers.
	Get(context context.Context, category string, limit int) ([]Video, bool)

	// Set stores a listing with the cache's TTL. Best effort.
	Set(context context.Context, category string, limit int, videos []Video)

	// Invalidate drops all cached listings. Called after any catalog
	// mutation (upload, edit, delete).
	Invalidate(context context.Context)
}

// CommentLister supplies the full comment list for the detail view.
// Satisfied by the comment domain's service.
type CommentLister interface {
	ListByVideo(context context.Context, videoID string) ([]comment.Comment, error)
}
