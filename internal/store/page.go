package store

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"mazadie/internal/models"
	"mazadie/internal/query"
	"mazadie/internal/textutil"
)

// pagePreviewLen is the rune count of a page listing preview before the
// ellipsis marker.
const pagePreviewLen = 150

// PageStore resolves static pages joined to their localized descriptions.
type PageStore struct {
	runner *query.Runner
	lang   int
}

// NewPageStore returns a PageStore bound to the given pool and fixed
// language id.
func NewPageStore(db *sqlx.DB, languageID int) *PageStore {
	return &PageStore{runner: query.NewRunner(db), lang: languageID}
}

// Find retrieves one active page with decoded title and content. Returns
// nil when the page is missing, inactive, or untranslated.
func (s *PageStore) Find(ctx context.Context, id int) (*models.Page, error) {
	plan := query.From("pages p").
		LeftJoin("pages_description pd ON p.id_pages = pd.id_pages").
		Columns("p.id_pages", "p.seotitle", "p.picture", "p.date", "p.time", "pd.title", "pd.content").
		Where("p.id_pages", id).
		Where("p.active", "Y").
		Where("pd.id_language", s.lang)

	row, err := s.runner.One(ctx, plan)
	if err != nil {
		return nil, fmt.Errorf("find page: %w", err)
	}
	if row == nil {
		return nil, nil
	}

	return &models.Page{
		ID:       asInt(row["id_pages"]),
		Title:    textutil.DecodeEntities(asString(row["title"])),
		Content:  textutil.DecodeEntities(asString(row["content"])),
		Seotitle: asString(row["seotitle"]),
		Picture:  asString(row["picture"]),
		Date:     asString(row["date"]),
		Time:     asString(row["time"]),
	}, nil
}

// List returns all active pages ordered by localized title ascending. Each
// item carries a 150-character stripped-content preview; the ellipsis is
// appended whether or not the content was actually truncated.
func (s *PageStore) List(ctx context.Context) ([]models.PageListItem, error) {
	plan := query.From("pages p").
		LeftJoin("pages_description pd ON p.id_pages = pd.id_pages").
		Columns("p.id_pages", "p.seotitle", "p.picture", "pd.title", "pd.content").
		Where("p.active", "Y").
		Where("pd.id_language", s.lang).
		OrderBy("pd.title ASC")

	rows, err := s.runner.All(ctx, plan)
	if err != nil {
		return nil, fmt.Errorf("list pages: %w", err)
	}

	items := make([]models.PageListItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, models.PageListItem{
			ID:             asInt(row["id_pages"]),
			Title:          textutil.DecodeEntities(asString(row["title"])),
			ContentPreview: textutil.Preview(asString(row["content"]), pagePreviewLen),
			Seotitle:       asString(row["seotitle"]),
			Picture:        asString(row["picture"]),
		})
	}
	return items, nil
}
