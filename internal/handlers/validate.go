package handlers

import "net/mail"

// validateContact checks a trimmed contact submission and returns every
// violated rule. Validation accumulates — a submission with an empty name
// and a malformed email reports both problems at once.
func validateContact(name, email, subject, message string) []string {
	var errs []string

	if name == "" {
		errs = append(errs, "Name is required")
	}

	if email == "" {
		errs = append(errs, "Email is required")
	} else if !validEmail(email) {
		errs = append(errs, "Invalid email format")
	}

	if subject == "" {
		errs = append(errs, "Subject is required")
	}

	if message == "" {
		errs = append(errs, "Message is required")
	}

	return errs
}

// validEmail reports whether s is a bare RFC 5322 address. ParseAddress
// also accepts display-name forms ("Name <a@b>"), which the form must not,
// so the parsed address has to round-trip to the input.
func validEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}
