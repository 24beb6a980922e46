package dto

import (
	"github.com/mykola-kolomoyets/itvs-v2-sub000/internal/app/models"
)

// UpdateUserRoleRequest is the payload for changing a user's role
type UpdateUserRoleRequest struct {
	Role models.Role `json:"role" binding:"required" example:"AUTHOR"`
}

// UserListResponse is the cursor-paginated user list payload
type UserListResponse struct {
	Total      int64         `json:"total"`
	Items      []models.User `json:"items"`
	NextCursor *int64        `json:"nextCursor,omitempty"`
}
