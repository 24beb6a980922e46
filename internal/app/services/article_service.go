package services

import (
	"context"
	"fmt"

	"github.com/mykola-kolomoyets/itvs-v2-sub000/internal/app/models"
	"github.com/mykola-kolomoyets/itvs-v2-sub000/internal/app/models/dto"
	"github.com/mykola-kolomoyets/itvs-v2-sub000/internal/app/repositories"
	"github.com/mykola-kolomoyets/itvs-v2-sub000/internal/pkg/apperrors"
	"github.com/mykola-kolomoyets/itvs-v2-sub000/internal/pkg/helpers"
	"github.com/mykola-kolomoyets/itvs-v2-sub000/internal/pkg/slug"
)

// ArticleService handles article-related operations
type ArticleService struct {
	articleRepo repositories.ArticleRepository
	tagRepo     repositories.TagRepository
}

// NewArticleService creates a new article service instance
func NewArticleService(articleRepo repositories.ArticleRepository, tagRepo repositories.TagRepository) *ArticleService {
	return &ArticleService{
		articleRepo: articleRepo,
		tagRepo:     tagRepo,
	}
}

// List returns a cursor-paginated article page. One extra row beyond the
// requested limit is fetched; when present its id becomes the next cursor and
// the row itself is trimmed from the page.
func (s *ArticleService) List(ctx context.Context, params helpers.ListParams) (*dto.ArticleListResponse, error) {
	limit := helpers.ClampLimit(params.Limit)

	total, err := s.articleRepo.Count(ctx, params.Search)
	if err != nil {
		return nil, fmt.Errorf("error counting articles: %w", err)
	}

	items, err := s.articleRepo.List(ctx, params.Search, limit+1, params.Skip, params.Cursor)
	if err != nil {
		return nil, fmt.Errorf("error listing articles: %w", err)
	}

	resp := &dto.ArticleListResponse{Total: total, Items: items}
	if len(items) > limit {
		cursor := items[limit].ID
		resp.Items = items[:limit]
		resp.NextCursor = &cursor
	}
	return resp, nil
}

// GetByID retrieves a single article with its author and tags
func (s *ArticleService) GetByID(ctx context.Context, id int64) (*models.Article, error) {
	article, err := s.articleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving article: %w", err)
	}
	return article, nil
}

// GetBySlug retrieves an article by slug. Slugs are not unique, collisions
// resolve to the oldest row.
func (s *ArticleService) GetBySlug(ctx context.Context, slugValue string) (*models.Article, error) {
	article, err := s.articleRepo.GetBySlug(ctx, slugValue)
	if err != nil {
		return nil, fmt.Errorf("error retrieving article by slug: %w", err)
	}
	return article, nil
}

// Create inserts a new article for the session user. All referenced tags must
// exist before anything is written.
func (s *ArticleService) Create(ctx context.Context, session models.Session, req dto.CreateArticleRequest) (*models.Article, error) {
	if err := s.checkTagsExist(ctx, req.TagIDs); err != nil {
		return nil, err
	}

	article := &models.Article{
		Title:     req.Title,
		Slug:      slug.From(req.Title),
		Content:   req.Content,
		PosterURL: req.PosterURL,
		AuthorID:  session.UserID,
	}

	if err := s.articleRepo.Create(ctx, article, req.TagIDs); err != nil {
		return nil, fmt.Errorf("error creating article: %w", err)
	}
	return s.GetByID(ctx, article.ID)
}

// Update applies a partial article update. A changed title regenerates the
// slug; a non-nil tag id list fully replaces the tag set.
func (s *ArticleService) Update(ctx context.Context, session models.Session, id int64, req dto.UpdateArticleRequest) (*models.Article, error) {
	article, err := s.articleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving article: %w", err)
	}

	if !session.IsAdmin() && article.AuthorID != session.UserID {
		return nil, apperrors.ErrPermissionDenied
	}

	// Referenced tags must exist before any part of the update is written
	if req.TagIDs != nil {
		if err := s.checkTagsExist(ctx, *req.TagIDs); err != nil {
			return nil, err
		}
	}

	if req.Title != nil {
		article.Title = *req.Title
		article.Slug = slug.From(*req.Title)
	}
	if req.Content != nil {
		article.Content = *req.Content
	}
	if req.PosterURL != nil {
		article.PosterURL = req.PosterURL
	}

	if err := s.articleRepo.Update(ctx, article); err != nil {
		return nil, fmt.Errorf("error updating article: %w", err)
	}

	if req.TagIDs != nil {
		if err := s.articleRepo.SetTags(ctx, id, *req.TagIDs); err != nil {
			return nil, fmt.Errorf("error replacing article tags: %w", err)
		}
	}
	return s.GetByID(ctx, id)
}

// Remove deletes an article. Only the owner or an administrator may remove it;
// everyone else gets a permission error and the row stays.
func (s *ArticleService) Remove(ctx context.Context, session models.Session, id int64) error {
	article, err := s.articleRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("error retrieving article: %w", err)
	}

	if !session.IsAdmin() && article.AuthorID != session.UserID {
		return apperrors.ErrPermissionDenied
	}

	if err := s.articleRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("error deleting article: %w", err)
	}
	return nil
}

func (s *ArticleService) checkTagsExist(ctx context.Context, tagIDs []int64) error {
	if len(tagIDs) == 0 {
		return nil
	}
	tags, err := s.tagRepo.GetByIDs(ctx, tagIDs)
	if err != nil {
		return fmt.Errorf("error checking tags: %w", err)
	}
	if len(tags) != len(tagIDs) {
		return apperrors.ErrTagNotFound
	}
	return nil
}
