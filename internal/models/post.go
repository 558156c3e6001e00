// Package models defines the API-shaped records returned by the content
// endpoints. Fields mirror the JSON contract exactly; stores are responsible
// for decoding and coercing raw rows into these shapes.
package models

// Post is the single-post view. Hits carries the counter value after the
// view's increment. Category is nil for uncategorized posts.
type Post struct {
	ID                 int     `json:"id"`
	Title              string  `json:"title"`
	Content            string  `json:"content"`
	Seotitle           string  `json:"seotitle"`
	Picture            string  `json:"picture"`
	PictureDescription string  `json:"picture_description"`
	Date               string  `json:"date"`
	Time               string  `json:"time"`
	Hits               int     `json:"hits"`
	Category           *string `json:"category"`
	Tag                string  `json:"tag"`
}

// PostListItem is one entry of the paginated posts listing. ContentPreview
// is the decoded, markup-stripped content; Headline keeps the schema's Y/N
// flag form. The listing carries Headline where the single view carries Tag.
type PostListItem struct {
	ID                 int     `json:"id"`
	Title              string  `json:"title"`
	ContentPreview     string  `json:"content_preview"`
	Seotitle           string  `json:"seotitle"`
	Picture            string  `json:"picture"`
	PictureDescription string  `json:"picture_description"`
	Date               string  `json:"date"`
	Time               string  `json:"time"`
	Hits               int     `json:"hits"`
	Headline           string  `json:"headline"`
	Category           *string `json:"category"`
}
