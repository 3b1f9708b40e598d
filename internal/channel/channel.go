// Copyright (c) 2026 Clipstream. All rights reserved.

/*
Package channel handles publishing identities: creation with a banner
upload, public lookup, and the derived per-channel video list.

# Architecture

  - Entities: Channel.
  - Ownership: exactly one owning user per channel; nothing enforces one
    channel per user.
  - Derived data: the channel's video id list is a query over the videos
    table ordered by creation time.
*/
package channel

import (
	"context"
	"time"
)

// # Domain Entities

// Channel is a named publishing identity owned by exactly one user.
type Channel struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"owner"`
	Name        string    `json:"channelName"`
	Slug        string    `json:"slug"`
	Description string    `json:"description,omitempty"`
	BannerURL   string    `json:"channelBanner"`
	Subscribers int       `json:"subscribers"`
	Videos      []string  `json:"videos"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// # Repository Contracts

// Repository defines the persistence contract for channels.
type Repository interface {
	/*
		Create inserts a new channel record.

		Parameters:
		  - context: context.Context
		  - channel: *Channel (ID and timestamps already assigned)

		Returns:
		  - error: Storage failures
	*/
	Create(context context.Context, channel *Channel) error

	/*
		FindByID retrieves a channel record by its unique ID.

		Parameters:
		  - context: context.Context
		  - id: string (UUID)

		Returns:
		  - *Channel: Loaded channel entity
		  - error: apperr.NotFound or storage failures
	*/
	FindByID(context context.Context, id string) (*Channel, error)

	/*
		VideoIDs lists the ids of videos belonging to a channel, ordered
		by creation time.

		Parameters:
		  - context: context.Context
		  - channelID: string

		Returns:
		  - []string: Video ids, oldest first
		  - error: Storage failures
	*/
	VideoIDs(context context.Context, channelID string) ([]string, error)
}
