package models

// Page is the single-page view with fully decoded title and content.
type Page struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	Seotitle string `json:"seotitle"`
	Picture  string `json:"picture"`
	Date     string `json:"date"`
	Time     string `json:"time"`
}

// PageListItem is one entry of the pages listing. ContentPreview is the
// stripped content truncated to 150 characters plus the ellipsis marker.
type PageListItem struct {
	ID             int    `json:"id"`
	Title          string `json:"title"`
	ContentPreview string `json:"content_preview"`
	Seotitle       string `json:"seotitle"`
	Picture        string `json:"picture"`
}
