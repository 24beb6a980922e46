package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/mykola-kolomoyets/itvs-v2-sub000/internal/app/models"
	"github.com/mykola-kolomoyets/itvs-v2-sub000/internal/app/models/dto"
	"github.com/mykola-kolomoyets/itvs-v2-sub000/internal/app/repositories"
	"github.com/mykola-kolomoyets/itvs-v2-sub000/internal/pkg/apperrors"
	"github.com/mykola-kolomoyets/itvs-v2-sub000/internal/pkg/logger"
	"github.com/mykola-kolomoyets/itvs-v2-sub000/internal/pkg/validation"
)

// TagService handles tag-related operations. All writes are admin-only.
type TagService struct {
	tagRepo     repositories.TagRepository
	articleRepo repositories.ArticleRepository
}

// NewTagService creates a new tag service instance
func NewTagService(tagRepo repositories.TagRepository, articleRepo repositories.ArticleRepository) *TagService {
	return &TagService{
		tagRepo:     tagRepo,
		articleRepo: articleRepo,
	}
}

// GetAll retrieves all tags
func (s *TagService) GetAll(ctx context.Context) ([]models.Tag, error) {
	tags, err := s.tagRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing tags: %w", err)
	}
	return tags, nil
}

// GetByID retrieves a tag by id
func (s *TagService) GetByID(ctx context.Context, id int64) (*models.Tag, error) {
	tag, err := s.tagRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving tag: %w", err)
	}
	return tag, nil
}

// Create inserts a new tag. Names are unique.
func (s *TagService) Create(ctx context.Context, session models.Session, req dto.CreateTagRequest) (*models.Tag, error) {
	if !session.IsAdmin() {
		return nil, apperrors.ErrPermissionDenied
	}
	if !validation.ValidName(req.Name) {
		return nil, apperrors.NewBadRequestError("tag name must be between 2 and 255 characters")
	}

	exists, err := s.tagRepo.ExistsByName(ctx, req.Name)
	if err != nil {
		return nil, fmt.Errorf("error checking tag name: %w", err)
	}
	if exists {
		return nil, apperrors.ErrTagAlreadyExists
	}

	tag := &models.Tag{Name: req.Name}
	if err := s.tagRepo.Create(ctx, tag); err != nil {
		return nil, fmt.Errorf("error creating tag: %w", err)
	}
	return tag, nil
}

// Update renames a tag
func (s *TagService) Update(ctx context.Context, session models.Session, id int64, req dto.UpdateTagRequest) (*models.Tag, error) {
	if !session.IsAdmin() {
		return nil, apperrors.ErrPermissionDenied
	}
	if !validation.ValidName(req.Name) {
		return nil, apperrors.NewBadRequestError("tag name must be between 2 and 255 characters")
	}

	tag, err := s.tagRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving tag: %w", err)
	}

	if req.Name != tag.Name {
		exists, err := s.tagRepo.ExistsByName(ctx, req.Name)
		if err != nil {
			return nil, fmt.Errorf("error checking tag name: %w", err)
		}
		if exists {
			return nil, apperrors.ErrTagAlreadyExists
		}
	}

	tag.Name = req.Name
	if err := s.tagRepo.Update(ctx, tag); err != nil {
		return nil, fmt.Errorf("error updating tag: %w", err)
	}
	return tag, nil
}

// Remove deletes a single tag after pruning it from every referencing article
func (s *TagService) Remove(ctx context.Context, session models.Session, id int64) error {
	return s.BatchRemove(ctx, session, []int64{id})
}

// BatchRemove deletes the given tags. Before the rows go, every article
// referencing any of them gets its tag set rewritten without the removed ids.
// The per-article rewrites run concurrently and all of them are awaited;
// individual failures are logged and swallowed, there is no rollback.
func (s *TagService) BatchRemove(ctx context.Context, session models.Session, ids []int64) error {
	if !session.IsAdmin() {
		return apperrors.ErrPermissionDenied
	}
	if len(ids) == 0 {
		return apperrors.NewBadRequestError("no tag ids given")
	}

	affected, err := s.articleRepo.GetTagSetsByTagIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("error loading affected articles: %w", err)
	}

	var wg sync.WaitGroup
	for _, set := range affected {
		wg.Add(1)
		go func(set models.ArticleTagSet) {
			defer wg.Done()
			remaining := subtractIDs(set.TagIDs, ids)
			if err := s.articleRepo.SetTags(ctx, set.ArticleID, remaining); err != nil {
				logger.Error().Err(err).
					Int64("article_id", set.ArticleID).
					Msg("Failed to prune removed tags from article")
			}
		}(set)
	}
	wg.Wait()

	if err := s.tagRepo.Delete(ctx, ids); err != nil {
		return fmt.Errorf("error deleting tags: %w", err)
	}
	return nil
}

// subtractIDs returns ids from set that are not in removed, preserving order
func subtractIDs(set []int64, removed []int64) []int64 {
	drop := make(map[int64]struct{}, len(removed))
	for _, id := range removed {
		drop[id] = struct{}{}
	}

	remaining := make([]int64, 0, len(set))
	for _, id := range set {
		if _, ok := drop[id]; !ok {
			remaining = append(remaining, id)
		}
	}
	return remaining
}
