package models

// AcademicStatus is the academic rank of a department employee.
// Each status carries a display label and a sort priority; employee lists are
// ordered by priority descending.
type AcademicStatus string

const (
	AcademicStatusAssistant       AcademicStatus = "ASSISTANT"
	AcademicStatusLecturer        AcademicStatus = "LECTURER"
	AcademicStatusSeniorLecturer  AcademicStatus = "SENIOR_LECTURER"
	AcademicStatusAssociateProf   AcademicStatus = "ASSOCIATE_PROFESSOR"
	AcademicStatusProfessor       AcademicStatus = "PROFESSOR"
	AcademicStatusDepartmentChief AcademicStatus = "DEPARTMENT_CHIEF"
)

// Label returns the human-readable form of the status
func (s AcademicStatus) Label() string {
	switch s {
	case AcademicStatusAssistant:
		return "Assistant"
	case AcademicStatusLecturer:
		return "Lecturer"
	case AcademicStatusSeniorLecturer:
		return "Senior Lecturer"
	case AcademicStatusAssociateProf:
		return "Associate Professor"
	case AcademicStatusProfessor:
		return "Professor"
	case AcademicStatusDepartmentChief:
		return "Head of Department"
	}
	return string(s)
}

// Priority returns the sort weight of the status; higher sorts first
func (s AcademicStatus) Priority() int {
	switch s {
	case AcademicStatusAssistant:
		return 1
	case AcademicStatusLecturer:
		return 2
	case AcademicStatusSeniorLecturer:
		return 3
	case AcademicStatusAssociateProf:
		return 4
	case AcademicStatusProfessor:
		return 5
	case AcademicStatusDepartmentChief:
		return 6
	}
	return 0
}

// IsValid reports whether s is one of the known statuses
func (s AcademicStatus) IsValid() bool {
	return s.Priority() > 0
}

// Employee defines the employee model based on the 'employees' table
type Employee struct {
	ID             int64           `json:"id" db:"id"`
	Name           string          `json:"name" db:"name"`
	Email          *string         `json:"email,omitempty" db:"email"`
	Image          *string         `json:"image,omitempty" db:"image"`
	URL            *string         `json:"url,omitempty" db:"url"`
	AcademicStatus *AcademicStatus `json:"academicStatus,omitempty" db:"academic_status"`
	Subjects       []Subject       `json:"subjects,omitempty"` // Relation, no db tag
}

// StatusPriority returns the employee's sort weight, 0 when no status is set.
// Two employees with equal weight keep their relative order (stable sort).
func (e Employee) StatusPriority() int {
	if e.AcademicStatus == nil {
		return 0
	}
	return e.AcademicStatus.Priority()
}

// EmployeeSubjectSet pairs an employee with its current subject id set. Used
// by the subject-removal cleanup to rebuild each affected employee's relation
// set.
type EmployeeSubjectSet struct {
	EmployeeID int64
	SubjectIDs []int64
}
