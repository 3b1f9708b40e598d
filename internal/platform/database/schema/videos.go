// Copyright (c) 2026 Clipstream. All rights reserved.

package schema

// VideosTable represents the 'videos' table
type VideosTable struct {
	Table        string
	ID           string
	ChannelID    string
	UploaderID   string
	Title        string
	Description  string
	VideoURL     string
	ThumbnailURL string
	Category     string
	Views        string
	Likes        string
	Dislikes     string
	CreatedAt    string
	UpdatedAt    string
}

// Videos is the schema definition for videos
var Videos = VideosTable{
	Table:        "videos",
	ID:           "id",
	ChannelID:    "channelid",
	UploaderID:   "uploaderid",
	Title:        "title",
	Description:  "description",
	VideoURL:     "videourl",
	ThumbnailURL: "thumbnailurl",
	Category:     "category",
	Views:        "views",
	Likes:        "likes",
	Dislikes:     "dislikes",
	CreatedAt:    "createdat",
	UpdatedAt:    "updatedat",
}

func (t VideosTable) Columns() []string {
	return []string{
		t.ID, t.ChannelID, t.UploaderID, t.Title, t.Description,
		t.VideoURL, t.ThumbnailURL, t.Category, t.Views, t.Likes, t.Dislikes,
		t.CreatedAt, t.UpdatedAt,
	}
}
