package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mykola-kolomoyets/itvs-v2-sub000/internal/app/models"
	"github.com/mykola-kolomoyets/itvs-v2-sub000/internal/pkg/apperrors"
)

// EmployeeRepository handles database operations for department employees
type EmployeeRepository interface {
	GetAll(ctx context.Context) ([]models.Employee, error)
	GetByID(ctx context.Context, id int64) (*models.Employee, error)
	GetByIDs(ctx context.Context, ids []int64) ([]models.Employee, error)
	Create(ctx context.Context, employee *models.Employee) error
	Update(ctx context.Context, employee *models.Employee) error
	Delete(ctx context.Context, ids []int64) error
}

type employeeRepository struct {
	db *pgxpool.Pool
}

// NewEmployeeRepository creates a new employee repository
func NewEmployeeRepository(db *pgxpool.Pool) EmployeeRepository {
	return &employeeRepository{db: db}
}

func scanEmployee(row pgx.Row) (*models.Employee, error) {
	var employee models.Employee
	err := row.Scan(
		&employee.ID,
		&employee.Name,
		&employee.Email,
		&employee.Image,
		&employee.URL,
		&employee.AcademicStatus,
	)
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

// GetAll retrieves all employees. Ordering by academic status priority is a
// service-layer concern; rows come back in name order.
func (r *employeeRepository) GetAll(ctx context.Context) ([]models.Employee, error) {
	query := `
		SELECT id, name, email, image, url, academic_status
		FROM employees
		ORDER BY name ASC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []models.Employee
	for rows.Next() {
		employee, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning employee: %w", err)
		}
		employees = append(employees, *employee)
	}
	return employees, rows.Err()
}

// GetByID retrieves an employee by id
func (r *employeeRepository) GetByID(ctx context.Context, id int64) (*models.Employee, error) {
	query := `
		SELECT id, name, email, image, url, academic_status
		FROM employees
		WHERE id = $1
	`

	employee, err := scanEmployee(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("error retrieving employee: %w", err)
	}
	return employee, nil
}

// GetByIDs retrieves the employees matching the given ids
func (r *employeeRepository) GetByIDs(ctx context.Context, ids []int64) ([]models.Employee, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := `
		SELECT id, name, email, image, url, academic_status
		FROM employees
		WHERE id = ANY($1)
	`

	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees by ids: %w", err)
	}
	defer rows.Close()

	var employees []models.Employee
	for rows.Next() {
		employee, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning employee: %w", err)
		}
		employees = append(employees, *employee)
	}
	return employees, rows.Err()
}

// Create inserts a new employee
func (r *employeeRepository) Create(ctx context.Context, employee *models.Employee) error {
	query := `
		INSERT INTO employees (name, email, image, url, academic_status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		employee.Name, employee.Email, employee.Image, employee.URL, employee.AcademicStatus,
	).Scan(&employee.ID)
	if err != nil {
		return fmt.Errorf("error creating employee: %w", err)
	}
	return nil
}

// Update writes the mutable employee columns
func (r *employeeRepository) Update(ctx context.Context, employee *models.Employee) error {
	query := `
		UPDATE employees
		SET name = $1, email = $2, image = $3, url = $4, academic_status = $5
		WHERE id = $6
	`

	cmdTag, err := r.db.Exec(ctx, query,
		employee.Name, employee.Email, employee.Image, employee.URL, employee.AcademicStatus,
		employee.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating employee: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrEmployeeNotFound
	}
	return nil
}

// Delete removes the given employees. Pruning the ids from subject lecturer
// sets happens in the service layer before this call.
func (r *employeeRepository) Delete(ctx context.Context, ids []int64) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM subject_employees WHERE employee_id = ANY($1)`, ids); err != nil {
		return fmt.Errorf("error deleting employee subject links: %w", err)
	}
	if _, err := r.db.Exec(ctx, `DELETE FROM employees WHERE id = ANY($1)`, ids); err != nil {
		return fmt.Errorf("error deleting employees: %w", err)
	}
	return nil
}
