package handlers

import (
	"net/http"

	"mazadie/internal/response"
)

// endpointDoc describes one endpoint in the index catalog.
type endpointDoc struct {
	URL         string            `json:"url"`
	Methods     []string          `json:"methods"`
	Description string            `json:"description"`
	Parameters  map[string]string `json:"parameters"`
}

// Index serves the API description document at the root path.
type Index struct{}

// NewIndex creates the index handler.
func NewIndex() *Index {
	return &Index{}
}

// Get handles GET / with the endpoint catalog.
func (h *Index) Get(w http.ResponseWriter, r *http.Request) {
	doc := struct {
		Success   bool                   `json:"success"`
		Message   string                 `json:"message"`
		Endpoints map[string]endpointDoc `json:"endpoints"`
	}{
		Success: true,
		Message: "Mazadie News API v1.0",
		Endpoints: map[string]endpointDoc{
			"posts": {
				URL:         "/posts",
				Methods:     []string{"GET"},
				Description: "Get all posts or single post",
				Parameters: map[string]string{
					"id":       "Post ID (optional)",
					"page":     "Page number for pagination (default: 1)",
					"limit":    "Items per page (default: 10)",
					"category": "Filter by category ID (optional)",
					"search":   "Search in post titles (optional)",
				},
			},
			"categories": {
				URL:         "/categories",
				Methods:     []string{"GET"},
				Description: "Get all categories or single category",
				Parameters: map[string]string{
					"id": "Category ID (optional)",
				},
			},
			"pages": {
				URL:         "/pages",
				Methods:     []string{"GET"},
				Description: "Get all pages or single page",
				Parameters: map[string]string{
					"id": "Page ID (optional)",
				},
			},
			"contact": {
				URL:         "/contact",
				Methods:     []string{"GET", "POST"},
				Description: "Submit contact form",
				Parameters: map[string]string{
					"name":    "Contact name (required for POST)",
					"email":   "Contact email (required for POST)",
					"subject": "Message subject (required for POST)",
					"message": "Message content (required for POST)",
				},
			},
		},
	}

	response.JSON(w, http.StatusOK, doc)
}
