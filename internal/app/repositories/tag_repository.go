package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mykola-kolomoyets/itvs-v2-sub000/internal/app/models"
	"github.com/mykola-kolomoyets/itvs-v2-sub000/internal/pkg/apperrors"
	"github.com/mykola-kolomoyets/itvs-v2-sub000/internal/pkg/dberrors"
)

// TagRepository handles database operations for tags
type TagRepository interface {
	GetAll(ctx context.Context) ([]models.Tag, error)
	GetByID(ctx context.Context, id int64) (*models.Tag, error)
	GetByIDs(ctx context.Context, ids []int64) ([]models.Tag, error)
	Create(ctx context.Context, tag *models.Tag) error
	Update(ctx context.Context, tag *models.Tag) error
	Delete(ctx context.Context, ids []int64) error
	ExistsByName(ctx context.Context, name string) (bool, error)
}

type tagRepository struct {
	db *pgxpool.Pool
}

// NewTagRepository creates a new tag repository
func NewTagRepository(db *pgxpool.Pool) TagRepository {
	return &tagRepository{db: db}
}

// GetAll retrieves all tags ordered by name
func (r *tagRepository) GetAll(ctx context.Context) ([]models.Tag, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM tags ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	defer rows.Close()

	var tags []models.Tag
	for rows.Next() {
		var tag models.Tag
		if err := rows.Scan(&tag.ID, &tag.Name); err != nil {
			return nil, fmt.Errorf("error scanning tag: %w", err)
		}
		tags = append(tags, tag)
	}
	return tags, rows.Err()
}

// GetByID retrieves a tag by ID
func (r *tagRepository) GetByID(ctx context.Context, id int64) (*models.Tag, error) {
	var tag models.Tag
	err := r.db.QueryRow(ctx, `SELECT id, name FROM tags WHERE id = $1`, id).
		Scan(&tag.ID, &tag.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTagNotFound
		}
		return nil, fmt.Errorf("error retrieving tag: %w", err)
	}
	return &tag, nil
}

// GetByIDs retrieves the tags matching the given ids
func (r *tagRepository) GetByIDs(ctx context.Context, ids []int64) ([]models.Tag, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM tags WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to query tags by ids: %w", err)
	}
	defer rows.Close()

	var tags []models.Tag
	for rows.Next() {
		var tag models.Tag
		if err := rows.Scan(&tag.ID, &tag.Name); err != nil {
			return nil, fmt.Errorf("error scanning tag: %w", err)
		}
		tags = append(tags, tag)
	}
	return tags, rows.Err()
}

// Create creates a new tag
func (r *tagRepository) Create(ctx context.Context, tag *models.Tag) error {
	err := r.db.QueryRow(ctx, `INSERT INTO tags (name) VALUES ($1) RETURNING id`, tag.Name).
		Scan(&tag.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "tags_name_key") {
			return apperrors.ErrTagAlreadyExists
		}
		return fmt.Errorf("error creating tag: %w", err)
	}
	return nil
}

// Update renames a tag
func (r *tagRepository) Update(ctx context.Context, tag *models.Tag) error {
	cmdTag, err := r.db.Exec(ctx, `UPDATE tags SET name = $1 WHERE id = $2`, tag.Name, tag.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "tags_name_key") {
			return apperrors.ErrTagAlreadyExists
		}
		return fmt.Errorf("error updating tag: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrTagNotFound
	}
	return nil
}

// Delete removes the given tags. Relation cleanup (pruning the ids from
// article tag sets) happens in the service layer before this call.
func (r *tagRepository) Delete(ctx context.Context, ids []int64) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM article_tags WHERE tag_id = ANY($1)`, ids); err != nil {
		return fmt.Errorf("error deleting tag links: %w", err)
	}
	if _, err := r.db.Exec(ctx, `DELETE FROM tags WHERE id = ANY($1)`, ids); err != nil {
		return fmt.Errorf("error deleting tags: %w", err)
	}
	return nil
}

// ExistsByName checks whether a tag with the given name exists
func (r *tagRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM tags WHERE name = $1)`, name).
		Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking tag existence: %w", err)
	}
	return exists, nil
}
