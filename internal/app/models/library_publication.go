package models

import (
	"time"
)

// LibraryPublication defines the publication model based on the
// 'library_publications' table. The slug is derived from the title the same
// way article slugs are; authors is a comma-joined text column.
type LibraryPublication struct {
	ID         int64     `json:"id" db:"id"`
	Title      string    `json:"title" db:"title"`
	Slug       string    `json:"slug" db:"slug"`
	PosterURL  *string   `json:"posterUrl,omitempty" db:"poster_url"`
	Publicator string    `json:"publicator" db:"publicator"`
	Authors    []string  `json:"authors"` // Comma-joined in storage
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
}
