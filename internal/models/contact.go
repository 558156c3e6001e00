package models

// ContactStatusUnread marks a freshly submitted message. The schema uses
// Y/N flags throughout; N means the message has not been read yet.
const ContactStatusUnread = "N"

// ContactMessage is a contact-form submission. Messages are written by the
// API and read only by external tooling; there is no read endpoint.
type ContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
	Status  string `json:"status"`
}
