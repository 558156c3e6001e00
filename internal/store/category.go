package store

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"mazadie/internal/models"
	"mazadie/internal/query"
	"mazadie/internal/textutil"
)

// CategoryStore resolves categories joined to their localized titles.
type CategoryStore struct {
	runner *query.Runner
	lang   int
}

// NewCategoryStore returns a CategoryStore bound to the given pool and
// fixed language id.
func NewCategoryStore(db *sqlx.DB, languageID int) *CategoryStore {
	return &CategoryStore{runner: query.NewRunner(db), lang: languageID}
}

// Find retrieves one active category with its localized title. Returns nil
// when the category is missing, inactive, or has no row for the configured
// language. PostsCount is recomputed from the live join on every call.
func (s *CategoryStore) Find(ctx context.Context, id int) (*models.Category, error) {
	plan := query.From("category c").
		LeftJoin("category_description cd ON c.id_category = cd.id_category").
		Columns("c.id_category", "c.seotitle", "c.picture", "cd.title").
		Where("c.id_category", id).
		Where("c.active", "Y").
		Where("cd.id_language", s.lang)

	row, err := s.runner.One(ctx, plan)
	if err != nil {
		return nil, fmt.Errorf("find category: %w", err)
	}
	if row == nil {
		return nil, nil
	}

	count, err := s.postsCount(ctx, id)
	if err != nil {
		return nil, err
	}

	c := categoryFromRow(row)
	c.PostsCount = count
	return c, nil
}

// List returns all active categories ordered by localized title ascending,
// each with a freshly computed posts count. An empty active set yields an
// empty slice, never an error.
//
// This issues one count query per category. Category sets are small and the
// endpoint is hit rarely; switch to a grouped aggregate join if that changes.
func (s *CategoryStore) List(ctx context.Context) ([]models.Category, error) {
	plan := query.From("category c").
		LeftJoin("category_description cd ON c.id_category = cd.id_category").
		Columns("c.id_category", "c.seotitle", "c.picture", "cd.title").
		Where("c.active", "Y").
		Where("cd.id_language", s.lang).
		OrderBy("cd.title ASC")

	rows, err := s.runner.All(ctx, plan)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	items := make([]models.Category, 0, len(rows))
	for _, row := range rows {
		c := categoryFromRow(row)
		count, err := s.postsCount(ctx, c.ID)
		if err != nil {
			return nil, err
		}
		c.PostsCount = count
		items = append(items, *c)
	}
	return items, nil
}

// postsCount counts active posts linked to the category through the
// post_category join table.
func (s *CategoryStore) postsCount(ctx context.Context, id int) (int, error) {
	plan := query.From("post_category pc").
		LeftJoin("post p ON pc.id_post = p.id_post").
		Columns("COUNT(*) AS total").
		Where("pc.id_category", id).
		Where("p.active", "Y")

	row, err := s.runner.One(ctx, plan)
	if err != nil {
		return 0, fmt.Errorf("count category posts: %w", err)
	}
	if row == nil {
		return 0, nil
	}
	return asInt(row["total"]), nil
}

func categoryFromRow(row map[string]any) *models.Category {
	return &models.Category{
		ID:       asInt(row["id_category"]),
		Title:    textutil.DecodeEntities(asString(row["title"])),
		Seotitle: asString(row["seotitle"]),
		Picture:  asString(row["picture"]),
	}
}
