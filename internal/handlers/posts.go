package handlers

import (
	"net/http"

	"mazadie/internal/response"
	"mazadie/internal/store"
)

// Default pagination for the posts listing.
const (
	defaultPage  = 1
	defaultLimit = 10
)

// Posts serves the post resource: single views (which count a hit) and the
// filtered, paginated listing.
type Posts struct {
	store *store.PostStore
}

// NewPosts creates the post handler group.
func NewPosts(s *store.PostStore) *Posts {
	return &Posts{store: s}
}

// Get handles GET /posts. With ?id it resolves a single post and bumps its
// hit counter; without it, the paginated listing with optional category and
// title-search filters.
func (h *Posts) Get(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("id") != "" {
		h.getOne(w, r)
		return
	}
	h.list(w, r)
}

func (h *Posts) getOne(w http.ResponseWriter, r *http.Request) {
	id := intParam(r, "id", 0)

	post, err := h.store.Find(r.Context(), id)
	if err != nil {
		serverError(w, r, err)
		return
	}
	if post == nil {
		response.NotFound(w, "Post not found")
		return
	}

	response.OK(w, post)
}

func (h *Posts) list(w http.ResponseWriter, r *http.Request) {
	page := intParam(r, "page", defaultPage)
	limit := intParam(r, "limit", defaultLimit)

	// Non-positive values would turn into a negative offset downstream;
	// reject them up front instead of passing them to the store.
	var errs []string
	if page < 1 {
		errs = append(errs, "page must be a positive integer")
	}
	if limit < 1 {
		errs = append(errs, "limit must be a positive integer")
	}
	if len(errs) > 0 {
		response.ValidationFailed(w, errs)
		return
	}

	filter := store.ListFilter{
		Page:       page,
		Limit:      limit,
		CategoryID: intParam(r, "category", 0),
		Search:     r.URL.Query().Get("search"),
	}

	items, total, err := h.store.List(r.Context(), filter)
	if err != nil {
		serverError(w, r, err)
		return
	}

	response.Paged(w, items, response.NewPagination(page, limit, total))
}
