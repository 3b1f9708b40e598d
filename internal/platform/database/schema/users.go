// Copyright (c) 2026 Clipstream. All rights reserved.

// Package schema centralizes table and column names used by the Postgres
// repositories, keeping identifiers out of inline SQL strings.
package schema

// UsersTable represents the 'users' table
type UsersTable struct {
	Table     string
	ID        string
	Username  string
	Email     string
	Password  string
	AvatarURL string
	CreatedAt string
	UpdatedAt string
}

// Users is the schema definition for users
var Users = UsersTable{
	Table:     "users",
	ID:        "id",
	Username:  "username",
	Email:     "email",
	Password:  "password",
	AvatarURL: "avatarurl",
	CreatedAt: "createdat",
	UpdatedAt: "updatedat",
}

func (t UsersTable) Columns() []string {
	return []string{t.ID, t.Username, t.Email, t.Password, t.AvatarURL, t.CreatedAt, t.UpdatedAt}
}
