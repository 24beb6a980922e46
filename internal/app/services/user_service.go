package services

import (
	"context"
	"fmt"

	"github.com/mykola-kolomoyets/itvs-v2-sub000/internal/app/models"
	"github.com/mykola-kolomoyets/itvs-v2-sub000/internal/app/models/dto"
	"github.com/mykola-kolomoyets/itvs-v2-sub000/internal/app/repositories"
	"github.com/mykola-kolomoyets/itvs-v2-sub000/internal/pkg/apperrors"
	"github.com/mykola-kolomoyets/itvs-v2-sub000/internal/pkg/helpers"
)

// UserService handles user account operations
type UserService struct {
	userRepo repositories.UserRepository
}

// NewUserService creates a new user service instance
func NewUserService(userRepo repositories.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// List returns a cursor-paginated user page, admin only. Pagination works the
// same way as the article list: one extra row is fetched and trimmed into the
// next cursor.
func (s *UserService) List(ctx context.Context, session models.Session, params helpers.ListParams) (*dto.UserListResponse, error) {
	if !session.IsAdmin() {
		return nil, apperrors.ErrPermissionDenied
	}

	limit := helpers.ClampLimit(params.Limit)

	total, err := s.userRepo.Count(ctx, params.Search)
	if err != nil {
		return nil, fmt.Errorf("error counting users: %w", err)
	}

	items, err := s.userRepo.List(ctx, params.Search, limit+1, params.Skip, params.Cursor)
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}

	resp := &dto.UserListResponse{Total: total, Items: items}
	if len(items) > limit {
		cursor := items[limit].ID
		resp.Items = items[:limit]
		resp.NextCursor = &cursor
	}
	return resp, nil
}

// GetByID retrieves a user by id
func (s *UserService) GetByID(ctx context.Context, id int64) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}
	return user, nil
}

// UpdateRole changes a user's role, admin only
func (s *UserService) UpdateRole(ctx context.Context, session models.Session, id int64, role models.Role) (*models.User, error) {
	if !session.IsAdmin() {
		return nil, apperrors.ErrPermissionDenied
	}
	if !role.IsValid() {
		return nil, apperrors.NewBadRequestError(fmt.Sprintf("unknown role: %s", role))
	}

	if err := s.userRepo.UpdateRole(ctx, id, role); err != nil {
		return nil, fmt.Errorf("error updating user role: %w", err)
	}
	return s.GetByID(ctx, id)
}
