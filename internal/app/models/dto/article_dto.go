package dto

import (
	"github.com/mykola-kolomoyets/itvs-v2-sub000/internal/app/models"
)

// CreateArticleRequest is the payload for creating an article
type CreateArticleRequest struct {
	Title     string  `json:"title" binding:"required" example:"Привіт Світ"`
	Content   string  `json:"content" binding:"required"`
	PosterURL *string `json:"posterUrl,omitempty"`
	TagIDs    []int64 `json:"tagIds,omitempty"`
}

// UpdateArticleRequest is the payload for a partial article update.
// Nil fields are left untouched; a non-nil TagIDs fully replaces the tag set.
type UpdateArticleRequest struct {
	Title     *string  `json:"title,omitempty"`
	Content   *string  `json:"content,omitempty"`
	PosterURL *string  `json:"posterUrl,omitempty"`
	TagIDs    *[]int64 `json:"tagIds,omitempty"`
}

// ArticleListResponse is the cursor-paginated article list payload
type ArticleListResponse struct {
	Total      int64            `json:"total"`
	Items      []models.Article `json:"items"`
	NextCursor *int64           `json:"nextCursor,omitempty"`
}
