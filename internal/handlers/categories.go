package handlers

import (
	"net/http"

	"mazadie/internal/response"
	"mazadie/internal/store"
)

// Categories serves the category resource.
type Categories struct {
	store *store.CategoryStore
}

// NewCategories creates the category handler group.
func NewCategories(s *store.CategoryStore) *Categories {
	return &Categories{store: s}
}

// Get handles GET /categories. With ?id it resolves a single category
// (404 when missing or inactive); without it, the full active listing.
func (h *Categories) Get(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("id") != "" {
		h.getOne(w, r)
		return
	}
	h.list(w, r)
}

func (h *Categories) getOne(w http.ResponseWriter, r *http.Request) {
	id := intParam(r, "id", 0)

	category, err := h.store.Find(r.Context(), id)
	if err != nil {
		serverError(w, r, err)
		return
	}
	if category == nil {
		response.NotFound(w, "Category not found")
		return
	}

	response.OK(w, category)
}

func (h *Categories) list(w http.ResponseWriter, r *http.Request) {
	items, err := h.store.List(r.Context())
	if err != nil {
		serverError(w, r, err)
		return
	}

	response.OK(w, items)
}
