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
)

// SubjectService handles discipline-related operations
type SubjectService struct {
	subjectRepo  repositories.SubjectRepository
	employeeRepo repositories.EmployeeRepository
}

// NewSubjectService creates a new subject service instance
func NewSubjectService(subjectRepo repositories.SubjectRepository, employeeRepo repositories.EmployeeRepository) *SubjectService {
	return &SubjectService{
		subjectRepo:  subjectRepo,
		employeeRepo: employeeRepo,
	}
}

// GetAll retrieves all subjects with their department lecturers
func (s *SubjectService) GetAll(ctx context.Context) ([]models.Subject, error) {
	subjects, err := s.subjectRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing subjects: %w", err)
	}
	return subjects, nil
}

// GetByID retrieves a subject by id
func (s *SubjectService) GetByID(ctx context.Context, id int64) (*models.Subject, error) {
	subject, err := s.subjectRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving subject: %w", err)
	}
	return subject, nil
}

// GetGroupedBySemester buckets all subjects by semester identifier. A subject
// listing several semesters appears in every matching bucket.
func (s *SubjectService) GetGroupedBySemester(ctx context.Context) (*dto.SubjectsBySemesterResponse, error) {
	subjects, err := s.subjectRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing subjects: %w", err)
	}

	grouped := make(map[string][]models.Subject)
	for _, subject := range subjects {
		for _, semester := range subject.Semesters {
			grouped[semester] = append(grouped[semester], subject)
		}
	}
	return &dto.SubjectsBySemesterResponse{Semesters: grouped}, nil
}

// Create inserts a new subject and links its department lecturers. All
// referenced employees must exist before anything is written.
func (s *SubjectService) Create(ctx context.Context, req dto.CreateSubjectRequest) (*models.Subject, error) {
	if err := s.checkLecturersExist(ctx, req.LecturerIDs); err != nil {
		return nil, err
	}

	subject := &models.Subject{
		Name:           req.Name,
		Abbreviation:   req.Abbreviation,
		Code:           req.Code,
		Description:    req.Description,
		Credits:        req.Credits,
		Semesters:      req.Semesters,
		OtherLecturers: req.OtherLecturers,
	}

	if err := s.subjectRepo.Create(ctx, subject, req.LecturerIDs); err != nil {
		return nil, fmt.Errorf("error creating subject: %w", err)
	}
	return s.GetByID(ctx, subject.ID)
}

// Update applies a partial subject update. A non-nil LecturerIDs fully
// replaces the department-lecturer relation set.
func (s *SubjectService) Update(ctx context.Context, id int64, req dto.UpdateSubjectRequest) (*models.Subject, error) {
	subject, err := s.subjectRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving subject: %w", err)
	}

	// Referenced employees must exist before any part of the update is written
	if req.LecturerIDs != nil {
		if err := s.checkLecturersExist(ctx, *req.LecturerIDs); err != nil {
			return nil, err
		}
	}

	if req.Name != nil {
		subject.Name = *req.Name
	}
	if req.Abbreviation != nil {
		subject.Abbreviation = *req.Abbreviation
	}
	if req.Code != nil {
		subject.Code = *req.Code
	}
	if req.Description != nil {
		subject.Description = *req.Description
	}
	if req.Credits != nil {
		subject.Credits = *req.Credits
	}
	if req.Semesters != nil {
		subject.Semesters = *req.Semesters
	}
	if req.OtherLecturers != nil {
		subject.OtherLecturers = *req.OtherLecturers
	}

	if err := s.subjectRepo.Update(ctx, subject); err != nil {
		return nil, fmt.Errorf("error updating subject: %w", err)
	}

	if req.LecturerIDs != nil {
		if err := s.subjectRepo.SetLecturers(ctx, id, *req.LecturerIDs); err != nil {
			return nil, fmt.Errorf("error replacing subject lecturers: %w", err)
		}
	}
	return s.GetByID(ctx, id)
}

// Remove deletes a single subject after pruning it from every referencing
// employee's subject set
func (s *SubjectService) Remove(ctx context.Context, id int64) error {
	return s.BatchRemove(ctx, []int64{id})
}

// BatchRemove deletes the given subjects. Before the rows go, every employee
// referencing any of them gets its subject set rewritten without the removed
// ids. The per-employee rewrites run concurrently and all of them are
// awaited; individual failures are logged and swallowed, there is no
// rollback.
func (s *SubjectService) BatchRemove(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return apperrors.NewBadRequestError("no subject ids given")
	}

	affected, err := s.subjectRepo.GetEmployeeSetsBySubjectIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("error loading affected employees: %w", err)
	}

	var wg sync.WaitGroup
	for _, set := range affected {
		wg.Add(1)
		go func(set models.EmployeeSubjectSet) {
			defer wg.Done()
			remaining := subtractIDs(set.SubjectIDs, ids)
			if err := s.subjectRepo.SetEmployeeSubjects(ctx, set.EmployeeID, remaining); err != nil {
				logger.Error().Err(err).
					Int64("employee_id", set.EmployeeID).
					Msg("Failed to prune removed subjects from employee")
			}
		}(set)
	}
	wg.Wait()

	if err := s.subjectRepo.Delete(ctx, ids); err != nil {
		return fmt.Errorf("error deleting subjects: %w", err)
	}
	return nil
}

func (s *SubjectService) checkLecturersExist(ctx context.Context, employeeIDs []int64) error {
	if len(employeeIDs) == 0 {
		return nil
	}
	employees, err := s.employeeRepo.GetByIDs(ctx, employeeIDs)
	if err != nil {
		return fmt.Errorf("error checking lecturers: %w", err)
	}
	if len(employees) != len(employeeIDs) {
		return apperrors.ErrEmployeeNotFound
	}
	return nil
}
