// Package handlers implements the HTTP request handlers for the content
// API. Each resource gets a handler group holding its store; handlers
// validate input, invoke the stores, and map results onto the response
// envelope. Store failures are logged and surfaced as sanitized server
// errors — driver detail never reaches the client.
package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"mazadie/internal/response"
)

// intParam parses a query parameter the way the API has always coerced
// integers: missing means the fallback, anything non-numeric means zero.
func intParam(r *http.Request, key string, fallback int) int {
	v := r.URL.Query().Get(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return n
}

// serverError logs the failure with its cause and replies with the fixed
// server-error envelope.
func serverError(w http.ResponseWriter, r *http.Request, err error) {
	slog.Error("request failed",
		"method", r.Method,
		"path", r.URL.Path,
		"error", err,
	)
	response.ServerError(w)
}
