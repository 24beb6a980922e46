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
)

// ArticleRepository handles database operations for articles and their tag relation
type ArticleRepository interface {
	List(ctx context.Context, search string, limit, skip int, cursor int64) ([]models.Article, error)
	Count(ctx context.Context, search string) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Article, error)
	GetBySlug(ctx context.Context, slug string) (*models.Article, error)
	Create(ctx context.Context, article *models.Article, tagIDs []int64) error
	Update(ctx context.Context, article *models.Article) error
	Delete(ctx context.Context, id int64) error
	SetTags(ctx context.Context, articleID int64, tagIDs []int64) error
	GetTagSetsByTagIDs(ctx context.Context, tagIDs []int64) ([]models.ArticleTagSet, error)
}

type articleRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewArticleRepository creates a new article repository
func NewArticleRepository(db *pgxpool.Pool) ArticleRepository {
	return &articleRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var articleSelectColumns = []string{
	"a.id", "a.title", "a.slug", "a.content", "a.poster_url", "a.author_id", "a.created_at",
	"u.id", "u.name", "u.email", "u.image", "u.role",
}

func scanArticleRow(row pgx.Row) (*models.Article, error) {
	var article models.Article
	var author models.User
	err := row.Scan(
		&article.ID,
		&article.Title,
		&article.Slug,
		&article.Content,
		&article.PosterURL,
		&article.AuthorID,
		&article.CreatedAt,
		&author.ID,
		&author.Name,
		&author.Email,
		&author.Image,
		&author.Role,
	)
	if err != nil {
		return nil, err
	}
	article.Author = &author
	return &article, nil
}

// List retrieves articles ordered by id with cursor pagination. The service
// layer requests one extra row to detect a next page; rows carry their author
// and full tag set.
func (r *articleRepository) List(ctx context.Context, search string, limit, skip int, cursor int64) ([]models.Article, error) {
	sel := r.sb.Select(articleSelectColumns...).
		From("articles a").
		Join("users u ON a.author_id = u.id").
		OrderBy("a.id ASC").
		Limit(uint64(limit)).
		Offset(uint64(skip))

	if search != "" {
		sel = sel.Where(squirrel.ILike{"a.title": "%" + search + "%"})
	}
	if cursor > 0 {
		sel = sel.Where(squirrel.GtOrEq{"a.id": cursor})
	}

	sqlStr, args, err := sel.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list articles query: %w", err)
	}

	rows, err := r.db.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list articles: %w", err)
	}
	defer rows.Close()

	var articles []models.Article
	for rows.Next() {
		article, err := scanArticleRow(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning article row: %w", err)
		}
		articles = append(articles, *article)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.attachTags(ctx, articles); err != nil {
		return nil, err
	}
	return articles, nil
}

// Count returns the number of articles matching the search term
func (r *articleRepository) Count(ctx context.Context, search string) (int64, error) {
	sel := r.sb.Select("COUNT(*)").From("articles a")
	if search != "" {
		sel = sel.Where(squirrel.ILike{"a.title": "%" + search + "%"})
	}

	sqlStr, args, err := sel.ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count articles query: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, sqlStr, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count articles: %w", err)
	}
	return total, nil
}

func (r *articleRepository) getOne(ctx context.Context, condition string, arg any) (*models.Article, error) {
	query := fmt.Sprintf(`
		SELECT a.id, a.title, a.slug, a.content, a.poster_url, a.author_id, a.created_at,
		       u.id, u.name, u.email, u.image, u.role
		FROM articles a
		JOIN users u ON a.author_id = u.id
		WHERE %s
		ORDER BY a.id ASC
		LIMIT 1
	`, condition)

	article, err := scanArticleRow(r.db.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrArticleNotFound
		}
		return nil, fmt.Errorf("error retrieving article: %w", err)
	}

	articles := []models.Article{*article}
	if err := r.attachTags(ctx, articles); err != nil {
		return nil, err
	}
	return &articles[0], nil
}

// GetByID retrieves a single article with author and tags
func (r *articleRepository) GetByID(ctx context.Context, id int64) (*models.Article, error) {
	return r.getOne(ctx, "a.id = $1", id)
}

// GetBySlug retrieves a single article by slug. Slugs are not unique; the
// lowest-id match wins, which mirrors the ambiguity of slug lookups upstream.
func (r *articleRepository) GetBySlug(ctx context.Context, slug string) (*models.Article, error) {
	return r.getOne(ctx, "a.slug = $1", slug)
}

// Create inserts an article and links the given tags
func (r *articleRepository) Create(ctx context.Context, article *models.Article, tagIDs []int64) error {
	query := `
		INSERT INTO articles (title, slug, content, poster_url, author_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		article.Title, article.Slug, article.Content, article.PosterURL, article.AuthorID,
	).Scan(&article.ID, &article.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating article: %w", err)
	}

	if len(tagIDs) > 0 {
		if err := r.insertTagLinks(ctx, article.ID, tagIDs); err != nil {
			return err
		}
	}
	return nil
}

// Update writes the mutable article columns
func (r *articleRepository) Update(ctx context.Context, article *models.Article) error {
	query := `
		UPDATE articles
		SET title = $1, slug = $2, content = $3, poster_url = $4
		WHERE id = $5
	`

	cmdTag, err := r.db.Exec(ctx, query,
		article.Title, article.Slug, article.Content, article.PosterURL, article.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating article: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrArticleNotFound
	}
	return nil
}

// Delete removes an article and its tag links
func (r *articleRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM article_tags WHERE article_id = $1`, id); err != nil {
		return fmt.Errorf("error deleting article tag links: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, `DELETE FROM articles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting article: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrArticleNotFound
	}
	return nil
}

// SetTags replaces an article's tag set. The delete and re-insert are issued
// as separate statements, so a failure between them can leave the set empty;
// callers treat the operation as best-effort (see the tag cleanup routine).
func (r *articleRepository) SetTags(ctx context.Context, articleID int64, tagIDs []int64) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM article_tags WHERE article_id = $1`, articleID); err != nil {
		return fmt.Errorf("error clearing article tags: %w", err)
	}
	return r.insertTagLinks(ctx, articleID, tagIDs)
}

func (r *articleRepository) insertTagLinks(ctx context.Context, articleID int64, tagIDs []int64) error {
	if len(tagIDs) == 0 {
		return nil
	}

	ins := r.sb.Insert("article_tags").Columns("article_id", "tag_id")
	for _, tagID := range tagIDs {
		ins = ins.Values(articleID, tagID)
	}

	sqlStr, args, err := ins.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert tag links query: %w", err)
	}
	if _, err := r.db.Exec(ctx, sqlStr, args...); err != nil {
		return fmt.Errorf("error inserting article tag links: %w", err)
	}
	return nil
}

// GetTagSetsByTagIDs returns, for every article referencing any of the given
// tags, the article's complete current tag id set.
func (r *articleRepository) GetTagSetsByTagIDs(ctx context.Context, tagIDs []int64) ([]models.ArticleTagSet, error) {
	query := `
		SELECT at.article_id, array_agg(at.tag_id ORDER BY at.tag_id)
		FROM article_tags at
		WHERE at.article_id IN (
			SELECT article_id FROM article_tags WHERE tag_id = ANY($1)
		)
		GROUP BY at.article_id
	`

	rows, err := r.db.Query(ctx, query, tagIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query article tag sets: %w", err)
	}
	defer rows.Close()

	var sets []models.ArticleTagSet
	for rows.Next() {
		var set models.ArticleTagSet
		if err := rows.Scan(&set.ArticleID, &set.TagIDs); err != nil {
			return nil, fmt.Errorf("error scanning article tag set: %w", err)
		}
		sets = append(sets, set)
	}
	return sets, rows.Err()
}

// attachTags loads the tag sets for the given articles in one query
func (r *articleRepository) attachTags(ctx context.Context, articles []models.Article) error {
	if len(articles) == 0 {
		return nil
	}

	ids := make([]int64, len(articles))
	index := make(map[int64]int, len(articles))
	for i, article := range articles {
		ids[i] = article.ID
		index[article.ID] = i
	}

	query := `
		SELECT at.article_id, t.id, t.name
		FROM article_tags at
		JOIN tags t ON at.tag_id = t.id
		WHERE at.article_id = ANY($1)
		ORDER BY t.name ASC
	`

	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		return fmt.Errorf("failed to load article tags: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var articleID int64
		var tag models.Tag
		if err := rows.Scan(&articleID, &tag.ID, &tag.Name); err != nil {
			return fmt.Errorf("error scanning article tag: %w", err)
		}
		if i, ok := index[articleID]; ok {
			articles[i].Tags = append(articles[i].Tags, tag)
		}
	}
	return rows.Err()
}
