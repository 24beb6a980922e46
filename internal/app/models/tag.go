package models

// Tag defines the tag model based on the 'tags' table
type Tag struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}
