package dto

// CreateEmployeeRequest is the payload for creating an employee
type CreateEmployeeRequest struct {
	Name           string  `json:"name" binding:"required"`
	Email          *string `json:"email,omitempty"`
	Image          *string `json:"image,omitempty"`
	URL            *string `json:"url,omitempty"`
	AcademicStatus *string `json:"academicStatus,omitempty"`
}

// UpdateEmployeeRequest is the payload for a partial employee update
type UpdateEmployeeRequest struct {
	Name           *string `json:"name,omitempty"`
	Email          *string `json:"email,omitempty"`
	Image          *string `json:"image,omitempty"`
	URL            *string `json:"url,omitempty"`
	AcademicStatus *string `json:"academicStatus,omitempty"`
}
