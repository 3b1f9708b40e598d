// Copyright (c) 2026 Clipstream. All rights reserved.

package schema

// CommentsTable represents the 'comments' table
type CommentsTable struct {
	Table     string
	ID        string
	VideoID   string
	UserID    string
	Body      string
	CreatedAt string
	UpdatedAt string
}

// Comments is the schema definition for comments
var Comments = CommentsTable{
	Table:     "comments",
	ID:        "id",
	VideoID:   "videoid",
	UserID:    "userid",
	Body:      "body",
	CreatedAt: "createdat",
	UpdatedAt: "updatedat",
}

func (t CommentsTable) Columns() []string {
	return []string{t.ID, t.VideoID, t.UserID, t.Body, t.CreatedAt, t.UpdatedAt}
}
