package models

// Category is the API view of a category. PostsCount is always recomputed
// from the live post_category join, never read from a stored column.
type Category struct {
	ID         int    `json:"id"`
	Title      string `json:"title"`
	Seotitle   string `json:"seotitle"`
	Picture    string `json:"picture"`
	PostsCount int    `json:"posts_count"`
}
