// Copyright (c) 2026 Clipstream. All rights reserved.

package schema

// ChannelsTable represents the 'channels' table
type ChannelsTable struct {
	Table       string
	ID          string
	OwnerID     string
	Name        string
	Slug        string
	Description string
	BannerURL   string
	Subscribers string
	CreatedAt   string
	UpdatedAt   string
}

// Channels is the schema definition for channels
var Channels = ChannelsTable{
	Table:       "channels",
	ID:          "id",
	OwnerID:     "ownerid",
	Name:        "name",
	Slug:        "slug",
	Description: "description",
	BannerURL:   "bannerurl",
	Subscribers: "subscribers",
	CreatedAt:   "createdat",
	UpdatedAt:   "updatedat",
}

func (t ChannelsTable) Columns() []string {
	return []string{t.ID, t.OwnerID, t.Name, t.Slug, t.Description, t.BannerURL, t.Subscribers, t.CreatedAt, t.UpdatedAt}
}
