package database

import (
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
)

// Seed populates the database with a small development dataset: two
// categories, three published posts with descriptions and category links,
// and two static pages. It is a no-op when posts already exist.
func Seed(db *sqlx.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM post").Scan(&count); err != nil {
		return fmt.Errorf("seed check posts: %w", err)
	}

	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	_, err := db.Exec(`
		INSERT INTO category (id_category, seotitle, picture, active) VALUES
			(1, 'news', 'news.jpg', 'Y'),
			(2, 'travel', 'travel.jpg', 'Y');

		INSERT INTO category_description (id_category, id_language, title) VALUES
			(1, 1, 'News'),
			(2, 1, 'Travel');

		INSERT INTO post (id_post, seotitle, picture, picture_description, date, time, publishdate, hits, headline, tag, active) VALUES
			(1, 'welcome-post', 'welcome.jpg', 'Welcome banner', '2024-01-10', '09:00:00', '2024-01-10 09:00:00+00', 0, 'Y', 'welcome', 'Y'),
			(2, 'city-guide', 'city.jpg', 'City skyline', '2024-01-12', '11:30:00', '2024-01-12 11:30:00+00', 0, 'N', 'guide', 'Y'),
			(3, 'island-trip', 'island.jpg', 'Island beach', '2024-01-15', '14:00:00', '2024-01-15 14:00:00+00', 0, 'N', 'travel', 'Y');

		INSERT INTO post_description (id_post, id_language, title, content) VALUES
			(1, 1, 'Welcome to Mazadie', '<p>This is the first post on the new site.</p>'),
			(2, 1, 'A Guide to the City', '<p>Everything worth seeing downtown.</p>'),
			(3, 1, 'A Trip to the Islands', '<p>Ferries, beaches and where to stay.</p>');

		INSERT INTO post_category (id_post, id_category) VALUES
			(1, 1), (2, 2), (3, 2);

		INSERT INTO pages (id_pages, seotitle, picture, date, time, active) VALUES
			(1, 'about-us', 'about.jpg', '2024-01-01', '08:00:00', 'Y'),
			(2, 'privacy-policy', '', '2024-01-01', '08:00:00', 'Y');

		INSERT INTO pages_description (id_pages, id_language, title, content) VALUES
			(1, 1, 'About Us', '<p>Who we are and what we publish.</p>'),
			(2, 1, 'Privacy Policy', '<p>How reader data is handled.</p>');

		SELECT setval('post_id_post_seq', 10);
		SELECT setval('category_id_category_seq', 10);
		SELECT setval('pages_id_pages_seq', 10);
	`)
	if err != nil {
		return fmt.Errorf("seed insert: %w", err)
	}

	slog.Info("database seeded with development content")
	return nil
}
