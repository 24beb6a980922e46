package models

// Subject defines the discipline model based on the 'subjects' table.
// Semesters and other-lecturer names are stored as comma-joined text columns
// and exposed as ordered string lists; department lecturers are a proper
// many-to-many relation with employees.
type Subject struct {
	ID             int64      `json:"id" db:"id"`
	Name           string     `json:"name" db:"name"`
	Abbreviation   string     `json:"abbreviation" db:"abbreviation"`
	Code           string     `json:"code" db:"code"`
	Description    string     `json:"description" db:"description"`
	Credits        float64    `json:"credits" db:"credits"`
	Semesters      []string   `json:"semesters"`      // Comma-joined in storage
	OtherLecturers []string   `json:"otherLecturers"` // Comma-joined in storage
	Lecturers      []Employee `json:"departmentLecturers,omitempty"` // Relation, no db tag
}

// SubjectEmployeeSet pairs a subject with its current lecturer id set. Used
// by the employee-removal cleanup to rebuild each affected subject's relation
// set.
type SubjectEmployeeSet struct {
	SubjectID   int64
	EmployeeIDs []int64
}
