package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mykola-kolomoyets/itvs-v2-sub000/internal/app/models"
	"github.com/mykola-kolomoyets/itvs-v2-sub000/internal/pkg/apperrors"
	"github.com/mykola-kolomoyets/itvs-v2-sub000/internal/pkg/dberrors"
)

// UserRepository handles database operations for users
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context, search string, limit, skip int, cursor int64) ([]models.User, error)
	Count(ctx context.Context, search string) (int64, error)
	Create(ctx context.Context, user *models.User) error
	UpdateRole(ctx context.Context, id int64, role models.Role) error
}

type userRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *pgxpool.Pool) UserRepository {
	return &userRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const userColumns = "id, name, email, password, image, role, created_at"

func scanUser(row pgx.Row) (*models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Password,
		&user.Image,
		&user.Role,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error scanning user: %w", err)
	}
	return &user, nil
}

// GetByID retrieves a user by ID
func (r *userRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE id = $1`, userColumns)
	return scanUser(r.db.QueryRow(ctx, query, id))
}

// GetByEmail retrieves a user by email
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE email = $1`, userColumns)
	return scanUser(r.db.QueryRow(ctx, query, email))
}

// userSearchCondition matches the search term against name and email
func userSearchCondition(search string) squirrel.Sqlizer {
	return squirrel.Or{
		squirrel.ILike{"name": "%" + search + "%"},
		squirrel.ILike{"email": "%" + search + "%"},
	}
}

// List retrieves users ordered by id with cursor pagination. The caller asks
// for one row beyond its page size to detect whether a next page exists.
func (r *userRepository) List(ctx context.Context, search string, limit, skip int, cursor int64) ([]models.User, error) {
	sel := r.sb.Select("id", "name", "email", "password", "image", "role", "created_at").
		From("users").
		OrderBy("id ASC").
		Limit(uint64(limit)).
		Offset(uint64(skip))

	if search != "" {
		sel = sel.Where(userSearchCondition(search))
	}
	if cursor > 0 {
		sel = sel.Where(squirrel.GtOrEq{"id": cursor})
	}

	sqlStr, args, err := sel.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list users query: %w", err)
	}

	rows, err := r.db.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var user models.User
		if err := rows.Scan(
			&user.ID,
			&user.Name,
			&user.Email,
			&user.Password,
			&user.Image,
			&user.Role,
			&user.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning user row: %w", err)
		}
		users = append(users, user)
	}

	return users, rows.Err()
}

// Count returns the number of users matching the search term
func (r *userRepository) Count(ctx context.Context, search string) (int64, error) {
	sel := r.sb.Select("COUNT(*)").From("users")
	if search != "" {
		sel = sel.Where(userSearchCondition(search))
	}

	sqlStr, args, err := sel.ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count users query: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, sqlStr, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return total, nil
}

// Create creates a new user
func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (name, email, password, image, role)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		user.Name, user.Email, user.Password, user.Image, user.Role,
	).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "users_email_key") {
			return apperrors.ErrEmailAlreadyExists
		}
		return fmt.Errorf("error creating user: %w", err)
	}
	return nil
}

// UpdateRole changes a user's role
func (r *userRepository) UpdateRole(ctx context.Context, id int64, role models.Role) error {
	cmdTag, err := r.db.Exec(ctx, `UPDATE users SET role = $1 WHERE id = $2`, role, id)
	if err != nil {
		return fmt.Errorf("error updating user role: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}
