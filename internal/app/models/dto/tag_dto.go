package dto

// CreateTagRequest is the payload for creating a tag
type CreateTagRequest struct {
	Name string `json:"name" binding:"required" example:"golang"`
}

// UpdateTagRequest is the payload for renaming a tag
type UpdateTagRequest struct {
	Name string `json:"name" binding:"required"`
}

// BatchRemoveRequest carries the ids for a batch removal
type BatchRemoveRequest struct {
	IDs []int64 `json:"ids" binding:"required,min=1"`
}
