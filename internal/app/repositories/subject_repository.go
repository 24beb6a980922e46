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

// SubjectRepository handles database operations for subjects and the
// subject-employee lecturer relation
type SubjectRepository interface {
	GetAll(ctx context.Context) ([]models.Subject, error)
	GetByID(ctx context.Context, id int64) (*models.Subject, error)
	Create(ctx context.Context, subject *models.Subject, lecturerIDs []int64) error
	Update(ctx context.Context, subject *models.Subject) error
	Delete(ctx context.Context, ids []int64) error
	SetLecturers(ctx context.Context, subjectID int64, employeeIDs []int64) error
	SetEmployeeSubjects(ctx context.Context, employeeID int64, subjectIDs []int64) error
	GetEmployeeSetsBySubjectIDs(ctx context.Context, subjectIDs []int64) ([]models.EmployeeSubjectSet, error)
	GetSubjectSetsByEmployeeIDs(ctx context.Context, employeeIDs []int64) ([]models.SubjectEmployeeSet, error)
}

type subjectRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewSubjectRepository creates a new subject repository
func NewSubjectRepository(db *pgxpool.Pool) SubjectRepository {
	return &subjectRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanSubject(row pgx.Row) (*models.Subject, error) {
	var subject models.Subject
	var semesters, otherLecturers string
	err := row.Scan(
		&subject.ID,
		&subject.Name,
		&subject.Abbreviation,
		&subject.Code,
		&subject.Description,
		&subject.Credits,
		&semesters,
		&otherLecturers,
	)
	if err != nil {
		return nil, err
	}
	subject.Semesters = helpers.SplitComma(semesters)
	subject.OtherLecturers = helpers.SplitComma(otherLecturers)
	return &subject, nil
}

// GetAll retrieves all subjects with their department lecturers attached
func (r *subjectRepository) GetAll(ctx context.Context) ([]models.Subject, error) {
	query := `
		SELECT id, name, abbreviation, code, description, credits, semesters, other_lecturers
		FROM subjects
		ORDER BY name ASC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list subjects: %w", err)
	}
	defer rows.Close()

	var subjects []models.Subject
	for rows.Next() {
		subject, err := scanSubject(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning subject: %w", err)
		}
		subjects = append(subjects, *subject)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.attachLecturers(ctx, subjects); err != nil {
		return nil, err
	}
	return subjects, nil
}

// GetByID retrieves a subject with its department lecturers
func (r *subjectRepository) GetByID(ctx context.Context, id int64) (*models.Subject, error) {
	query := `
		SELECT id, name, abbreviation, code, description, credits, semesters, other_lecturers
		FROM subjects
		WHERE id = $1
	`

	subject, err := scanSubject(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSubjectNotFound
		}
		return nil, fmt.Errorf("error retrieving subject: %w", err)
	}

	subjects := []models.Subject{*subject}
	if err := r.attachLecturers(ctx, subjects); err != nil {
		return nil, err
	}
	return &subjects[0], nil
}

// Create inserts a subject and links its department lecturers
func (r *subjectRepository) Create(ctx context.Context, subject *models.Subject, lecturerIDs []int64) error {
	query := `
		INSERT INTO subjects (name, abbreviation, code, description, credits, semesters, other_lecturers)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		subject.Name, subject.Abbreviation, subject.Code, subject.Description,
		subject.Credits,
		helpers.JoinComma(subject.Semesters),
		helpers.JoinComma(subject.OtherLecturers),
	).Scan(&subject.ID)
	if err != nil {
		return fmt.Errorf("error creating subject: %w", err)
	}

	if len(lecturerIDs) > 0 {
		return r.insertLecturerLinks(ctx, subject.ID, lecturerIDs)
	}
	return nil
}

// Update writes the mutable subject columns
func (r *subjectRepository) Update(ctx context.Context, subject *models.Subject) error {
	query := `
		UPDATE subjects
		SET name = $1, abbreviation = $2, code = $3, description = $4,
		    credits = $5, semesters = $6, other_lecturers = $7
		WHERE id = $8
	`

	cmdTag, err := r.db.Exec(ctx, query,
		subject.Name, subject.Abbreviation, subject.Code, subject.Description,
		subject.Credits,
		helpers.JoinComma(subject.Semesters),
		helpers.JoinComma(subject.OtherLecturers),
		subject.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating subject: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrSubjectNotFound
	}
	return nil
}

// Delete removes the given subjects. Relation cleanup (pruning the ids from
// employee subject sets) happens in the service layer before this call.
func (r *subjectRepository) Delete(ctx context.Context, ids []int64) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM subject_employees WHERE subject_id = ANY($1)`, ids); err != nil {
		return fmt.Errorf("error deleting subject lecturer links: %w", err)
	}
	if _, err := r.db.Exec(ctx, `DELETE FROM subjects WHERE id = ANY($1)`, ids); err != nil {
		return fmt.Errorf("error deleting subjects: %w", err)
	}
	return nil
}

// SetLecturers replaces a subject's department-lecturer set. Delete and
// re-insert run as separate statements, not a transaction.
func (r *subjectRepository) SetLecturers(ctx context.Context, subjectID int64, employeeIDs []int64) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM subject_employees WHERE subject_id = $1`, subjectID); err != nil {
		return fmt.Errorf("error clearing subject lecturers: %w", err)
	}
	return r.insertLecturerLinks(ctx, subjectID, employeeIDs)
}

// SetEmployeeSubjects replaces the subject set of a single employee,
// the mirror-image write used by the subject-removal cleanup.
func (r *subjectRepository) SetEmployeeSubjects(ctx context.Context, employeeID int64, subjectIDs []int64) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM subject_employees WHERE employee_id = $1`, employeeID); err != nil {
		return fmt.Errorf("error clearing employee subjects: %w", err)
	}
	if len(subjectIDs) == 0 {
		return nil
	}

	ins := r.sb.Insert("subject_employees").Columns("subject_id", "employee_id")
	for _, subjectID := range subjectIDs {
		ins = ins.Values(subjectID, employeeID)
	}

	sqlStr, args, err := ins.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert employee subjects query: %w", err)
	}
	if _, err := r.db.Exec(ctx, sqlStr, args...); err != nil {
		return fmt.Errorf("error inserting employee subjects: %w", err)
	}
	return nil
}

func (r *subjectRepository) insertLecturerLinks(ctx context.Context, subjectID int64, employeeIDs []int64) error {
	if len(employeeIDs) == 0 {
		return nil
	}

	ins := r.sb.Insert("subject_employees").Columns("subject_id", "employee_id")
	for _, employeeID := range employeeIDs {
		ins = ins.Values(subjectID, employeeID)
	}

	sqlStr, args, err := ins.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert lecturer links query: %w", err)
	}
	if _, err := r.db.Exec(ctx, sqlStr, args...); err != nil {
		return fmt.Errorf("error inserting subject lecturer links: %w", err)
	}
	return nil
}

// GetEmployeeSetsBySubjectIDs returns, for every employee referencing any of
// the given subjects, the employee's complete current subject id set.
func (r *subjectRepository) GetEmployeeSetsBySubjectIDs(ctx context.Context, subjectIDs []int64) ([]models.EmployeeSubjectSet, error) {
	query := `
		SELECT se.employee_id, array_agg(se.subject_id ORDER BY se.subject_id)
		FROM subject_employees se
		WHERE se.employee_id IN (
			SELECT employee_id FROM subject_employees WHERE subject_id = ANY($1)
		)
		GROUP BY se.employee_id
	`

	rows, err := r.db.Query(ctx, query, subjectIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query employee subject sets: %w", err)
	}
	defer rows.Close()

	var sets []models.EmployeeSubjectSet
	for rows.Next() {
		var set models.EmployeeSubjectSet
		if err := rows.Scan(&set.EmployeeID, &set.SubjectIDs); err != nil {
			return nil, fmt.Errorf("error scanning employee subject set: %w", err)
		}
		sets = append(sets, set)
	}
	return sets, rows.Err()
}

// GetSubjectSetsByEmployeeIDs returns, for every subject referencing any of
// the given employees, the subject's complete current lecturer id set.
func (r *subjectRepository) GetSubjectSetsByEmployeeIDs(ctx context.Context, employeeIDs []int64) ([]models.SubjectEmployeeSet, error) {
	query := `
		SELECT se.subject_id, array_agg(se.employee_id ORDER BY se.employee_id)
		FROM subject_employees se
		WHERE se.subject_id IN (
			SELECT subject_id FROM subject_employees WHERE employee_id = ANY($1)
		)
		GROUP BY se.subject_id
	`

	rows, err := r.db.Query(ctx, query, employeeIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query subject lecturer sets: %w", err)
	}
	defer rows.Close()

	var sets []models.SubjectEmployeeSet
	for rows.Next() {
		var set models.SubjectEmployeeSet
		if err := rows.Scan(&set.SubjectID, &set.EmployeeIDs); err != nil {
			return nil, fmt.Errorf("error scanning subject lecturer set: %w", err)
		}
		sets = append(sets, set)
	}
	return sets, rows.Err()
}

// attachLecturers loads the department-lecturer sets for the given subjects
func (r *subjectRepository) attachLecturers(ctx context.Context, subjects []models.Subject) error {
	if len(subjects) == 0 {
		return nil
	}

	ids := make([]int64, len(subjects))
	index := make(map[int64]int, len(subjects))
	for i, subject := range subjects {
		ids[i] = subject.ID
		index[subject.ID] = i
	}

	query := `
		SELECT se.subject_id, e.id, e.name, e.email, e.image, e.url, e.academic_status
		FROM subject_employees se
		JOIN employees e ON se.employee_id = e.id
		WHERE se.subject_id = ANY($1)
		ORDER BY e.name ASC
	`

	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		return fmt.Errorf("failed to load subject lecturers: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var subjectID int64
		var employee models.Employee
		if err := rows.Scan(
			&subjectID,
			&employee.ID,
			&employee.Name,
			&employee.Email,
			&employee.Image,
			&employee.URL,
			&employee.AcademicStatus,
		); err != nil {
			return fmt.Errorf("error scanning subject lecturer: %w", err)
		}
		if i, ok := index[subjectID]; ok {
			subjects[i].Lecturers = append(subjects[i].Lecturers, employee)
		}
	}
	return rows.Err()
}
