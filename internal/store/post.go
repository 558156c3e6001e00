package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"mazadie/internal/models"
	"mazadie/internal/query"
	"mazadie/internal/textutil"
)

// PostStore resolves posts joined to their localized descriptions and
// category names, and owns the view hit counter.
type PostStore struct {
	db     *sqlx.DB
	runner *query.Runner
	lang   int
}

// NewPostStore returns a PostStore bound to the given pool and fixed
// language id.
func NewPostStore(db *sqlx.DB, languageID int) *PostStore {
	return &PostStore{db: db, runner: query.NewRunner(db), lang: languageID}
}

// ListFilter selects and paginates the posts listing. Page and Limit must
// both be positive — handlers validate before calling. CategoryID zero
// means no category filter; Search empty means no title filter.
type ListFilter struct {
	Page       int
	Limit      int
	CategoryID int
	Search     string
}

// Find retrieves one active post with its localized title/content and the
// name of its first category (lowest category id; nil when uncategorized).
// A successful view durably increments the stored hit counter by one and
// the returned Post carries the post-increment value. The increment is a
// single atomic statement, so concurrent views never under-count.
//
// Returns nil when the post is missing, inactive, or untranslated.
func (s *PostStore) Find(ctx context.Context, id int) (*models.Post, error) {
	// The category description language filter lives in the join condition:
	// in the WHERE clause it would silently drop uncategorized posts.
	plan := query.From("post p").
		LeftJoin("post_description pd ON p.id_post = pd.id_post").
		LeftJoin("post_category pc ON p.id_post = pc.id_post").
		LeftJoin("category_description cd ON pc.id_category = cd.id_category AND cd.id_language = ?", s.lang).
		Columns(
			"p.id_post", "p.seotitle", "p.picture", "p.picture_description",
			"p.date", "p.time", "p.tag",
			"pd.title", "pd.content", "cd.title AS category_name",
		).
		Where("p.id_post", id).
		Where("p.active", "Y").
		Where("pd.id_language", s.lang).
		OrderBy("pc.id_category ASC")

	row, err := s.runner.One(ctx, plan)
	if err != nil {
		return nil, fmt.Errorf("find post: %w", err)
	}
	if row == nil {
		return nil, nil
	}

	hits, err := s.incrementHits(ctx, id)
	if err != nil {
		return nil, err
	}

	return &models.Post{
		ID:                 asInt(row["id_post"]),
		Title:              textutil.DecodeEntities(asString(row["title"])),
		Content:            textutil.DecodeEntities(asString(row["content"])),
		Seotitle:           asString(row["seotitle"]),
		Picture:            asString(row["picture"]),
		PictureDescription: asString(row["picture_description"]),
		Date:               asString(row["date"]),
		Time:               asString(row["time"]),
		Hits:               hits,
		Category:           nullDecoded(row["category_name"]),
		Tag:                asString(row["tag"]),
	}, nil
}

// incrementHits bumps the counter in one statement and returns the new
// value, so concurrent views of the same post each count exactly once.
func (s *PostStore) incrementHits(ctx context.Context, id int) (int, error) {
	stmt, args, err := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Update("post").
		Set("hits", sq.Expr("hits + 1")).
		Where(sq.Eq{"id_post": id}).
		Suffix("RETURNING hits").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("render hits update: %w", err)
	}

	var hits int
	if err := s.db.QueryRowxContext(ctx, stmt, args...).Scan(&hits); err != nil {
		return 0, fmt.Errorf("increment hits: %w", err)
	}
	return hits, nil
}

// List returns one page of the posts listing plus the total match count for
// pagination. Ordering is always newest publish date first. Search matches
// the localized title only, never content. An empty result is an empty
// slice with total zero, not an error.
func (s *PostStore) List(ctx context.Context, f ListFilter) ([]models.PostListItem, int, error) {
	// Untranslated posts are absent from the listing entirely, so the
	// language filter belongs in WHERE here, unlike the category join.
	base := query.From("post p").
		LeftJoin("post_description pd ON p.id_post = pd.id_post").
		LeftJoin("post_category pc ON p.id_post = pc.id_post").
		Where("p.active", "Y").
		Where("pd.id_language", s.lang)

	if f.CategoryID != 0 {
		base = base.Where("pc.id_category", f.CategoryID)
	}
	if f.Search != "" {
		base = base.WhereLike("pd.title", "%"+f.Search+"%")
	}

	// A multi-category post joins to one row per category, so the count
	// collapses to distinct post ids.
	countPlan := base.Columns("COUNT(DISTINCT p.id_post) AS total")

	listPlan := base.
		LeftJoin("category_description cd ON pc.id_category = cd.id_category AND cd.id_language = ?", s.lang).
		Columns(
			"p.id_post", "p.seotitle", "p.picture", "p.picture_description",
			"p.date", "p.time", "p.hits", "p.headline",
			"pd.title", "pd.content", "cd.title AS category_name",
		).
		OrderBy("p.publishdate DESC").
		Limit(f.Limit).
		Offset((f.Page - 1) * f.Limit)

	countRow, err := s.runner.One(ctx, countPlan)
	if err != nil {
		return nil, 0, fmt.Errorf("count posts: %w", err)
	}
	total := 0
	if countRow != nil {
		total = asInt(countRow["total"])
	}

	rows, err := s.runner.All(ctx, listPlan)
	if err != nil {
		return nil, 0, fmt.Errorf("list posts: %w", err)
	}

	items := make([]models.PostListItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, models.PostListItem{
			ID:                 asInt(row["id_post"]),
			Title:              textutil.DecodeEntities(asString(row["title"])),
			ContentPreview:     textutil.Preview(asString(row["content"]), 0),
			Seotitle:           asString(row["seotitle"]),
			Picture:            asString(row["picture"]),
			PictureDescription: asString(row["picture_description"]),
			Date:               asString(row["date"]),
			Time:               asString(row["time"]),
			Hits:               asInt(row["hits"]),
			Headline:           asString(row["headline"]),
			Category:           nullDecoded(row["category_name"]),
		})
	}
	return items, total, nil
}

// nullDecoded entity-decodes a nullable text column.
func nullDecoded(v any) *string {
	s := asNullString(v)
	if s == nil {
		return nil
	}
	decoded := textutil.DecodeEntities(*s)
	return &decoded
}
