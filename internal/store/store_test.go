// store_test.go provides a shared test database helper and fixture builders
// for all store integration tests. Tests are skipped if PostgreSQL is not
// available.
package store

import (
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"

	"mazadie/internal/database"
)

const testLang = 1

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func testDSN() string {
	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "mazadie")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_DB", "mazadie")
	return "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=disable"
}

// testDB opens a connection to the test database and runs migrations.
// If the database is unavailable, the test is skipped. A cleanup
// function is registered to close the connection when the test finishes.
func testDB(t *testing.T) *sqlx.DB {
	t.Helper()

	db, err := sqlx.Open("pgx", testDSN())
	if err != nil {
		t.Skipf("skipping integration test: cannot open DB: %v", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("skipping integration test: DB not reachable: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		db.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}

	// Downgrade goose global state.
	goose.SetBaseFS(nil)

	t.Cleanup(func() { db.Close() })
	return db
}

// seedCategory inserts a category with its localized title and registers
// cleanup. Descriptions cascade on delete.
func seedCategory(t *testing.T, db *sqlx.DB, id int, title, active string) {
	t.Helper()

	mustExec(t, db, `INSERT INTO category (id_category, seotitle, picture, active) VALUES ($1, $2, '', $3)`,
		id, fmt.Sprintf("cat-%d", id), active)
	mustExec(t, db, `INSERT INTO category_description (id_category, id_language, title) VALUES ($1, $2, $3)`,
		id, testLang, title)

	t.Cleanup(func() {
		db.Exec(`DELETE FROM category WHERE id_category = $1`, id)
	})
}

// seedPost inserts a post with its localized description and registers
// cleanup. publishedAt controls listing order.
func seedPost(t *testing.T, db *sqlx.DB, id int, title, content, active string, publishedAt time.Time) {
	t.Helper()

	mustExec(t, db, `
		INSERT INTO post (id_post, seotitle, picture, picture_description, date, time, publishdate, hits, headline, tag, active)
		VALUES ($1, $2, '', '', '2024-01-01', '10:00:00', $3, 0, 'N', '', $4)`,
		id, fmt.Sprintf("post-%d", id), publishedAt, active)
	mustExec(t, db, `INSERT INTO post_description (id_post, id_language, title, content) VALUES ($1, $2, $3, $4)`,
		id, testLang, title, content)

	t.Cleanup(func() {
		db.Exec(`DELETE FROM post WHERE id_post = $1`, id)
	})
}

// linkPostCategory associates a post with a category.
func linkPostCategory(t *testing.T, db *sqlx.DB, postID, categoryID int) {
	t.Helper()
	mustExec(t, db, `INSERT INTO post_category (id_post, id_category) VALUES ($1, $2)`, postID, categoryID)
}

// seedPage inserts a page with its localized description and registers cleanup.
func seedPage(t *testing.T, db *sqlx.DB, id int, title, content, active string) {
	t.Helper()

	mustExec(t, db, `INSERT INTO pages (id_pages, seotitle, picture, date, time, active) VALUES ($1, $2, '', '2024-01-01', '10:00:00', $3)`,
		id, fmt.Sprintf("page-%d", id), active)
	mustExec(t, db, `INSERT INTO pages_description (id_pages, id_language, title, content) VALUES ($1, $2, $3, $4)`,
		id, testLang, title, content)

	t.Cleanup(func() {
		db.Exec(`DELETE FROM pages WHERE id_pages = $1`, id)
	})
}

func mustExec(t *testing.T, db *sqlx.DB, stmt string, args ...any) {
	t.Helper()
	if _, err := db.Exec(stmt, args...); err != nil {
		t.Fatalf("fixture exec failed: %v\n%s", err, stmt)
	}
}
