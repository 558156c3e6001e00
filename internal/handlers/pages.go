package handlers

import (
	"net/http"

	"mazadie/internal/response"
	"mazadie/internal/store"
)

// Pages serves the static page resource.
type Pages struct {
	store *store.PageStore
}

// NewPages creates the page handler group.
func NewPages(s *store.PageStore) *Pages {
	return &Pages{store: s}
}

// Get handles GET /pages: single page with ?id, full listing without.
func (h *Pages) Get(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("id") != "" {
		h.getOne(w, r)
		return
	}
	h.list(w, r)
}

func (h *Pages) getOne(w http.ResponseWriter, r *http.Request) {
	id := intParam(r, "id", 0)

	page, err := h.store.Find(r.Context(), id)
	if err != nil {
		serverError(w, r, err)
		return
	}
	if page == nil {
		response.NotFound(w, "Page not found")
		return
	}

	response.OK(w, page)
}

func (h *Pages) list(w http.ResponseWriter, r *http.Request) {
	items, err := h.store.List(r.Context())
	if err != nil {
		serverError(w, r, err)
		return
	}

	response.OK(w, items)
}
