package models

import "time"

// Post is a content entity addressed by its slug, a URL-safe unique key
// chosen by the author. Markdown holds the raw body text; rendering is
// not this server's concern.
type Post struct {
	ID        string
	Slug      string
	Title     string
	Markdown  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
