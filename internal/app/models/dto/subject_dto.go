package dto

import (
	"github.com/mykola-kolomoyets/itvs-v2-sub000/internal/app/models"
)

// CreateSubjectRequest is the payload for creating a subject
type CreateSubjectRequest struct {
	Name           string   `json:"name" binding:"required"`
	Abbreviation   string   `json:"abbreviation"`
	Code           string   `json:"code"`
	Description    string   `json:"description"`
	Credits        float64  `json:"credits"`
	Semesters      []string `json:"semesters"`
	OtherLecturers []string `json:"otherLecturers"`
	LecturerIDs    []int64  `json:"lecturerIds"`
}

// UpdateSubjectRequest is the payload for a partial subject update.
// Nil fields are left untouched; a non-nil LecturerIDs fully replaces the
// department-lecturer relation set.
type UpdateSubjectRequest struct {
	Name           *string   `json:"name,omitempty"`
	Abbreviation   *string   `json:"abbreviation,omitempty"`
	Code           *string   `json:"code,omitempty"`
	Description    *string   `json:"description,omitempty"`
	Credits        *float64  `json:"credits,omitempty"`
	Semesters      *[]string `json:"semesters,omitempty"`
	OtherLecturers *[]string `json:"otherLecturers,omitempty"`
	LecturerIDs    *[]int64  `json:"lecturerIds,omitempty"`
}

// SubjectsBySemesterResponse groups subjects by semester identifier. A subject
// listing several semesters appears in every matching bucket.
type SubjectsBySemesterResponse struct {
	Semesters map[string][]models.Subject `json:"semesters"`
}
