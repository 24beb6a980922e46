package models

import (
	"time"
)

// Article defines the article model based on the 'articles' table.
// The slug is derived from the title at creation time; uniqueness is not
// enforced, so transliteration-equal titles share a slug.
type Article struct {
	ID        int64     `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	Slug      string    `json:"slug" db:"slug"`
	Content   string    `json:"content" db:"content"` // Markdown source
	PosterURL *string   `json:"posterUrl,omitempty" db:"poster_url"`
	AuthorID  int64     `json:"authorId" db:"author_id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	Author    *User     `json:"author,omitempty"` // Relation, no db tag
	Tags      []Tag     `json:"tags,omitempty"`   // Relation, no db tag
}

// ArticleTagSet pairs an article with its current tag id set. Used by the
// tag-removal cleanup to rebuild each affected article's relation set.
type ArticleTagSet struct {
	ArticleID int64
	TagIDs    []int64
}
