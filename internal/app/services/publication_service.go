package services

import (
	"context"
	"fmt"

	"github.com/mykola-kolomoyets/itvs-v2-sub000/internal/app/models"
	"github.com/mykola-kolomoyets/itvs-v2-sub000/internal/app/models/dto"
	"github.com/mykola-kolomoyets/itvs-v2-sub000/internal/app/repositories"
	"github.com/mykola-kolomoyets/itvs-v2-sub000/internal/pkg/apperrors"
	"github.com/mykola-kolomoyets/itvs-v2-sub000/internal/pkg/slug"
)

// PublicationService handles library publication operations
type PublicationService struct {
	publicationRepo repositories.PublicationRepository
}

// NewPublicationService creates a new publication service instance
func NewPublicationService(publicationRepo repositories.PublicationRepository) *PublicationService {
	return &PublicationService{publicationRepo: publicationRepo}
}

// List retrieves library publications, optionally filtered by search term
func (s *PublicationService) List(ctx context.Context, search string) ([]models.LibraryPublication, error) {
	publications, err := s.publicationRepo.List(ctx, search)
	if err != nil {
		return nil, fmt.Errorf("error listing publications: %w", err)
	}
	return publications, nil
}

// GetByID retrieves a publication by id
func (s *PublicationService) GetByID(ctx context.Context, id int64) (*models.LibraryPublication, error) {
	publication, err := s.publicationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving publication: %w", err)
	}
	return publication, nil
}

// GetBySlug retrieves a publication by slug, oldest row wins on collision
func (s *PublicationService) GetBySlug(ctx context.Context, slugValue string) (*models.LibraryPublication, error) {
	publication, err := s.publicationRepo.GetBySlug(ctx, slugValue)
	if err != nil {
		return nil, fmt.Errorf("error retrieving publication by slug: %w", err)
	}
	return publication, nil
}

// Create inserts a new library publication, deriving the slug from the title
func (s *PublicationService) Create(ctx context.Context, req dto.CreatePublicationRequest) (*models.LibraryPublication, error) {
	publication := &models.LibraryPublication{
		Title:      req.Title,
		Slug:       slug.From(req.Title),
		PosterURL:  req.PosterURL,
		Publicator: req.Publicator,
		Authors:    req.Authors,
	}

	if err := s.publicationRepo.Create(ctx, publication); err != nil {
		return nil, fmt.Errorf("error creating publication: %w", err)
	}
	return publication, nil
}

// Update applies a partial publication update. A changed title regenerates
// the slug.
func (s *PublicationService) Update(ctx context.Context, id int64, req dto.UpdatePublicationRequest) (*models.LibraryPublication, error) {
	publication, err := s.publicationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving publication: %w", err)
	}

	if req.Title != nil {
		publication.Title = *req.Title
		publication.Slug = slug.From(*req.Title)
	}
	if req.PosterURL != nil {
		publication.PosterURL = req.PosterURL
	}
	if req.Publicator != nil {
		publication.Publicator = *req.Publicator
	}
	if req.Authors != nil {
		publication.Authors = *req.Authors
	}

	if err := s.publicationRepo.Update(ctx, publication); err != nil {
		return nil, fmt.Errorf("error updating publication: %w", err)
	}
	return publication, nil
}

// Remove deletes a single publication
func (s *PublicationService) Remove(ctx context.Context, id int64) error {
	return s.BatchRemove(ctx, []int64{id})
}

// BatchRemove deletes the given publications
func (s *PublicationService) BatchRemove(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return apperrors.NewBadRequestError("no publication ids given")
	}
	if err := s.publicationRepo.Delete(ctx, ids); err != nil {
		return fmt.Errorf("error deleting publications: %w", err)
	}
	return nil
}
