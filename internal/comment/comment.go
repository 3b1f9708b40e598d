// Copyright (c) 2026 Clipstream. All rights reserved.

/*
Package comment handles text annotations on videos.

Comments are created through the add-comment flow and removed only as a
cascade effect of their parent video's deletion.

# Architecture

  - Entities: Comment.
  - The referenced video must exist at creation time; the check goes
    through the narrow [VideoChecker] contract so this package stays
    independent of the video domain.
*/
package comment

import (
	"context"
	"time"
)

// # Domain Entities

// Comment is a text annotation on exactly one video by exactly one user.
type Comment struct {
	ID        string    `json:"id"`
	VideoID   string    `json:"videoId"`
	UserID    string    `json:"userId"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

// # Repository Contracts

// Repository defines the persistence contract for comments.
type Repository interface {
	/*
		Create inserts a new comment record.

		Parameters:
		  - context: context.Context
		  - comment: *Comment (ID and timestamp already assigned)

		Returns:
		  - error: Storage failures
	*/
	Create(context context.Context, comment *Comment) error

	/*
		ListByVideo lists all comments on a video, oldest first.

		Parameters:
		  - context: context.Context
		  - videoID: string

		Returns:
		  - []Comment: Comments ordered by creation time
		  - error: Storage failures
	*/
	ListByVideo(context context.Context, videoID string) ([]Comment, error)
}

// VideoChecker reports whether a video exists. Satisfied by the video
// domain's repository; wired at the composition root.
type VideoChecker interface {
	VideoExists(context context.Context, videoID string) (bool, error)
}
