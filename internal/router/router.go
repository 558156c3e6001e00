// Package router sets up all HTTP routes and middleware for the content
// API. Every endpoint answers JSON; unknown paths and unsupported verbs get
// envelope responses rather than bare errors.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"mazadie/internal/handlers"
	"mazadie/internal/middleware"
	"mazadie/internal/response"
)

// New creates and returns the configured Chi router with all middleware
// and routes wired up.
func New(index *handlers.Index, posts *handlers.Posts, categories *handlers.Categories, pages *handlers.Pages, contact *handlers.Contact) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request. CORS sits before
	// routing so OPTIONS preflight succeeds for any path.
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.CORS)

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		response.NotFound(w, "Not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		response.MethodNotAllowed(w)
	})

	// Health check for deployment probes.
	r.Get("/health", healthHandler)

	r.Get("/", index.Get)
	r.Get("/posts", posts.Get)
	r.Get("/categories", categories.Get)
	r.Get("/pages", pages.Get)
	r.Get("/contact", contact.Get)
	r.Post("/contact", contact.Submit)

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
