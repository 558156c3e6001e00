// Package response implements the uniform JSON envelope every endpoint
// returns: a top-level success flag plus optional data, message, pagination
// metadata, and validation errors.
package response

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// Pagination is the metadata block attached to paginated listings.
type Pagination struct {
	CurrentPage  int `json:"current_page"`
	TotalPages   int `json:"total_pages"`
	TotalItems   int `json:"total_items"`
	ItemsPerPage int `json:"items_per_page"`
}

// NewPagination computes pagination metadata. TotalPages is
// ceil(totalItems / itemsPerPage); both inputs are validated upstream so
// itemsPerPage is always positive here.
func NewPagination(currentPage, itemsPerPage, totalItems int) Pagination {
	return Pagination{
		CurrentPage:  currentPage,
		TotalPages:   (totalItems + itemsPerPage - 1) / itemsPerPage,
		TotalItems:   totalItems,
		ItemsPerPage: itemsPerPage,
	}
}

// Envelope is the fixed response shape.
type Envelope struct {
	Success    bool        `json:"success"`
	Data       any         `json:"data,omitempty"`
	Message    string      `json:"message,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
	Errors     []string    `json:"errors,omitempty"`
}

// JSON writes any value as a UTF-8 JSON body with the given status code.
// Used directly by the index endpoint, which extends the envelope with an
// endpoint catalog.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", "error", err)
	}
}

// OK sends a success envelope carrying data.
func OK(w http.ResponseWriter, data any) {
	JSON(w, http.StatusOK, Envelope{Success: true, Data: data})
}

// OKMessage sends a success envelope carrying only a message.
func OKMessage(w http.ResponseWriter, message string) {
	JSON(w, http.StatusOK, Envelope{Success: true, Message: message})
}

// Paged sends a success envelope with listing data and pagination metadata.
func Paged(w http.ResponseWriter, data any, p Pagination) {
	JSON(w, http.StatusOK, Envelope{Success: true, Data: data, Pagination: &p})
}

// NotFound reports a missing or inactive singular resource with a
// resource-specific message ("Post not found", ...).
func NotFound(w http.ResponseWriter, message string) {
	JSON(w, http.StatusNotFound, Envelope{Success: false, Message: message})
}

// ValidationFailed reports every violated rule at once; validation never
// short-circuits at the first failure.
func ValidationFailed(w http.ResponseWriter, errs []string) {
	JSON(w, http.StatusBadRequest, Envelope{Success: false, Message: "Validation failed", Errors: errs})
}

// ServerError reports an unexpected failure with a fixed message. The cause
// is logged by the handler, never echoed to the client.
func ServerError(w http.ResponseWriter) {
	JSON(w, http.StatusInternalServerError, Envelope{Success: false, Message: "Server error"})
}

// FailedMessage reports a non-validation failure with a specific message,
// e.g. a contact insert that did not complete.
func FailedMessage(w http.ResponseWriter, message string) {
	JSON(w, http.StatusInternalServerError, Envelope{Success: false, Message: message})
}

// MethodNotAllowed reports an unsupported HTTP verb.
func MethodNotAllowed(w http.ResponseWriter) {
	JSON(w, http.StatusMethodNotAllowed, Envelope{Success: false, Message: "Method not allowed"})
}
