package dto

// CreatePublicationRequest is the payload for creating a library publication
type CreatePublicationRequest struct {
	Title      string   `json:"title" binding:"required"`
	PosterURL  *string  `json:"posterUrl,omitempty"`
	Publicator string   `json:"publicator"`
	Authors    []string `json:"authors"`
}

// UpdatePublicationRequest is the payload for a partial publication update
type UpdatePublicationRequest struct {
	Title      *string   `json:"title,omitempty"`
	PosterURL  *string   `json:"posterUrl,omitempty"`
	Publicator *string   `json:"publicator,omitempty"`
	Authors    *[]string `json:"authors,omitempty"`
}
