package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"mazadie/internal/models"
	"mazadie/internal/response"
	"mazadie/internal/store"
)

// Contact serves the contact-form resource.
type Contact struct {
	store *store.ContactStore
}

// NewContact creates the contact handler group.
func NewContact(s *store.ContactStore) *Contact {
	return &Contact{store: s}
}

// contactInput is the submission body, accepted as JSON or form fields.
type contactInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Get handles GET /contact with a static informational payload.
func (h *Contact) Get(w http.ResponseWriter, r *http.Request) {
	response.OK(w, map[string]string{
		"message": "Contact API is working. Use POST method to submit contact form.",
	})
}

// Submit handles POST /contact: trim all fields, report every validation
// failure together, and on success persist one unread message. Insert
// failures get their own message, distinct from validation failures.
func (h *Contact) Submit(w http.ResponseWriter, r *http.Request) {
	in := readContactInput(r)

	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	subject := strings.TrimSpace(in.Subject)
	message := strings.TrimSpace(in.Message)

	if errs := validateContact(name, email, subject, message); len(errs) > 0 {
		response.ValidationFailed(w, errs)
		return
	}

	err := h.store.Create(r.Context(), &models.ContactMessage{
		Name:    name,
		Email:   email,
		Subject: subject,
		Message: message,
	})
	if err != nil {
		slog.Error("contact insert failed", "error", err)
		response.FailedMessage(w, "Failed to send contact message")
		return
	}

	response.OKMessage(w, "Contact message sent successfully")
}

// readContactInput decodes the body as JSON, falling back to form fields
// when the body is empty or not valid JSON.
func readContactInput(r *http.Request) contactInput {
	body, _ := io.ReadAll(r.Body)

	var in contactInput
	if len(body) > 0 && json.Unmarshal(body, &in) == nil {
		return in
	}

	// Restore the body so form parsing can read it.
	r.Body = io.NopCloser(bytes.NewReader(body))
	if err := r.ParseForm(); err != nil {
		return contactInput{}
	}
	return contactInput{
		Name:    r.PostFormValue("name"),
		Email:   r.PostFormValue("email"),
		Subject: r.PostFormValue("subject"),
		Message: r.PostFormValue("message"),
	}
}
