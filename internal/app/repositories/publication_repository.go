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
	"github.com/mykola-kolomoyets/itvs-v2-sub000/internal/pkg/helpers"
)

// PublicationRepository handles database operations for library publications
type PublicationRepository interface {
	List(ctx context.Context, search string) ([]models.LibraryPublication, error)
	GetByID(ctx context.Context, id int64) (*models.LibraryPublication, error)
	GetBySlug(ctx context.Context, slug string) (*models.LibraryPublication, error)
	Create(ctx context.Context, publication *models.LibraryPublication) error
	Update(ctx context.Context, publication *models.LibraryPublication) error
	Delete(ctx context.Context, ids []int64) error
}

type publicationRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewPublicationRepository creates a new library publication repository
func NewPublicationRepository(db *pgxpool.Pool) PublicationRepository {
	return &publicationRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanPublication(row pgx.Row) (*models.LibraryPublication, error) {
	var publication models.LibraryPublication
	var authors string
	err := row.Scan(
		&publication.ID,
		&publication.Title,
		&publication.Slug,
		&publication.PosterURL,
		&publication.Publicator,
		&authors,
		&publication.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	publication.Authors = helpers.SplitComma(authors)
	return &publication, nil
}

// List retrieves library publications, newest first, optionally filtered by
// title or publicator
func (r *publicationRepository) List(ctx context.Context, search string) ([]models.LibraryPublication, error) {
	qb := r.sb.Select("id", "title", "slug", "poster_url", "publicator", "authors", "created_at").
		From("library_publications").
		OrderBy("created_at DESC", "id DESC")

	if search != "" {
		pattern := "%" + search + "%"
		qb = qb.Where(squirrel.Or{
			squirrel.ILike{"title": pattern},
			squirrel.ILike{"publicator": pattern},
		})
	}

	sqlStr, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list publications query: %w", err)
	}

	rows, err := r.db.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list publications: %w", err)
	}
	defer rows.Close()

	var publications []models.LibraryPublication
	for rows.Next() {
		publication, err := scanPublication(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning publication: %w", err)
		}
		publications = append(publications, *publication)
	}
	return publications, rows.Err()
}

// GetByID retrieves a library publication by id
func (r *publicationRepository) GetByID(ctx context.Context, id int64) (*models.LibraryPublication, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

// GetBySlug retrieves a library publication by slug. Slugs are not unique;
// when several rows share one, the lowest id wins.
func (r *publicationRepository) GetBySlug(ctx context.Context, slug string) (*models.LibraryPublication, error) {
	return r.getOne(ctx, squirrel.Eq{"slug": slug})
}

func (r *publicationRepository) getOne(ctx context.Context, where squirrel.Eq) (*models.LibraryPublication, error) {
	sqlStr, args, err := r.sb.Select("id", "title", "slug", "poster_url", "publicator", "authors", "created_at").
		From("library_publications").
		Where(where).
		OrderBy("id ASC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get publication query: %w", err)
	}

	publication, err := scanPublication(r.db.QueryRow(ctx, sqlStr, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrPublicationNotFound
		}
		return nil, fmt.Errorf("error retrieving publication: %w", err)
	}
	return publication, nil
}

// Create inserts a new library publication
func (r *publicationRepository) Create(ctx context.Context, publication *models.LibraryPublication) error {
	query := `
		INSERT INTO library_publications (title, slug, poster_url, publicator, authors)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		publication.Title, publication.Slug, publication.PosterURL,
		publication.Publicator, helpers.JoinComma(publication.Authors),
	).Scan(&publication.ID, &publication.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating publication: %w", err)
	}
	return nil
}

// Update writes the mutable publication columns
func (r *publicationRepository) Update(ctx context.Context, publication *models.LibraryPublication) error {
	query := `
		UPDATE library_publications
		SET title = $1, slug = $2, poster_url = $3, publicator = $4, authors = $5
		WHERE id = $6
	`

	cmdTag, err := r.db.Exec(ctx, query,
		publication.Title, publication.Slug, publication.PosterURL,
		publication.Publicator, helpers.JoinComma(publication.Authors),
		publication.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating publication: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrPublicationNotFound
	}
	return nil
}

// Delete removes the given library publications
func (r *publicationRepository) Delete(ctx context.Context, ids []int64) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM library_publications WHERE id = ANY($1)`, ids); err != nil {
		return fmt.Errorf("error deleting publications: %w", err)
	}
	return nil
}
