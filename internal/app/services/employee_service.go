package services

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/mykola-kolomoyets/itvs-v2-sub000/internal/app/models"
	"github.com/mykola-kolomoyets/itvs-v2-sub000/internal/app/models/dto"
	"github.com/mykola-kolomoyets/itvs-v2-sub000/internal/app/repositories"
	"github.com/mykola-kolomoyets/itvs-v2-sub000/internal/pkg/apperrors"
	"github.com/mykola-kolomoyets/itvs-v2-sub000/internal/pkg/logger"
	"github.com/mykola-kolomoyets/itvs-v2-sub000/internal/pkg/validation"
)

// EmployeeService handles department-employee operations
type EmployeeService struct {
	employeeRepo repositories.EmployeeRepository
	subjectRepo  repositories.SubjectRepository
}

// NewEmployeeService creates a new employee service instance
func NewEmployeeService(employeeRepo repositories.EmployeeRepository, subjectRepo repositories.SubjectRepository) *EmployeeService {
	return &EmployeeService{
		employeeRepo: employeeRepo,
		subjectRepo:  subjectRepo,
	}
}

// GetAll retrieves all employees ordered by academic status priority, highest
// first. Employees without a status weigh 0 and keep their relative order.
func (s *EmployeeService) GetAll(ctx context.Context) ([]models.Employee, error) {
	employees, err := s.employeeRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing employees: %w", err)
	}

	sort.SliceStable(employees, func(i, j int) bool {
		return employees[i].StatusPriority() > employees[j].StatusPriority()
	})
	return employees, nil
}

// GetByID retrieves an employee by id
func (s *EmployeeService) GetByID(ctx context.Context, id int64) (*models.Employee, error) {
	employee, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving employee: %w", err)
	}
	return employee, nil
}

// Create inserts a new employee
func (s *EmployeeService) Create(ctx context.Context, req dto.CreateEmployeeRequest) (*models.Employee, error) {
	if !validation.ValidName(req.Name) {
		return nil, apperrors.NewBadRequestError("employee name must be between 2 and 255 characters")
	}
	if req.Email != nil && *req.Email != "" && !validation.ValidEmail(*req.Email) {
		return nil, apperrors.NewBadRequestError("invalid employee email")
	}

	status, err := parseAcademicStatus(req.AcademicStatus)
	if err != nil {
		return nil, err
	}

	employee := &models.Employee{
		Name:           req.Name,
		Email:          req.Email,
		Image:          req.Image,
		URL:            req.URL,
		AcademicStatus: status,
	}

	if err := s.employeeRepo.Create(ctx, employee); err != nil {
		return nil, fmt.Errorf("error creating employee: %w", err)
	}
	return employee, nil
}

// Update applies a partial employee update
func (s *EmployeeService) Update(ctx context.Context, id int64, req dto.UpdateEmployeeRequest) (*models.Employee, error) {
	employee, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving employee: %w", err)
	}

	if req.Name != nil {
		if !validation.ValidName(*req.Name) {
			return nil, apperrors.NewBadRequestError("employee name must be between 2 and 255 characters")
		}
		employee.Name = *req.Name
	}
	if req.Email != nil {
		if *req.Email != "" && !validation.ValidEmail(*req.Email) {
			return nil, apperrors.NewBadRequestError("invalid employee email")
		}
		employee.Email = req.Email
	}
	if req.Image != nil {
		employee.Image = req.Image
	}
	if req.URL != nil {
		employee.URL = req.URL
	}
	if req.AcademicStatus != nil {
		status, err := parseAcademicStatus(req.AcademicStatus)
		if err != nil {
			return nil, err
		}
		employee.AcademicStatus = status
	}

	if err := s.employeeRepo.Update(ctx, employee); err != nil {
		return nil, fmt.Errorf("error updating employee: %w", err)
	}
	return employee, nil
}

// Remove deletes an employee. Before the row goes, every subject referencing
// the employee gets its lecturer set rewritten without the removed id. The
// per-subject rewrites run concurrently and all of them are awaited;
// individual failures are logged and swallowed, there is no rollback.
func (s *EmployeeService) Remove(ctx context.Context, id int64) error {
	ids := []int64{id}

	affected, err := s.subjectRepo.GetSubjectSetsByEmployeeIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("error loading affected subjects: %w", err)
	}

	var wg sync.WaitGroup
	for _, set := range affected {
		wg.Add(1)
		go func(set models.SubjectEmployeeSet) {
			defer wg.Done()
			remaining := subtractIDs(set.EmployeeIDs, ids)
			if err := s.subjectRepo.SetLecturers(ctx, set.SubjectID, remaining); err != nil {
				logger.Error().Err(err).
					Int64("subject_id", set.SubjectID).
					Msg("Failed to prune removed employee from subject")
			}
		}(set)
	}
	wg.Wait()

	if err := s.employeeRepo.Delete(ctx, ids); err != nil {
		return fmt.Errorf("error deleting employee: %w", err)
	}
	return nil
}

func parseAcademicStatus(value *string) (*models.AcademicStatus, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	status := models.AcademicStatus(*value)
	if !status.IsValid() {
		return nil, apperrors.NewBadRequestError(fmt.Sprintf("unknown academic status: %s", *value))
	}
	return &status, nil
}
