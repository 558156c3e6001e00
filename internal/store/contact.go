package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"mazadie/internal/models"
)

// ContactStore persists contact-form submissions. Write-only: messages are
// read back by external tooling, never through this API.
type ContactStore struct {
	db *sqlx.DB
}

// NewContactStore returns a ContactStore bound to the given pool.
func NewContactStore(db *sqlx.DB) *ContactStore {
	return &ContactStore{db: db}
}

// Create inserts one message with unread status. The generated id stays
// internal; callers only learn whether the insert succeeded.
func (s *ContactStore) Create(ctx context.Context, m *models.ContactMessage) error {
	stmt, args, err := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Insert("contact").
		Columns("name", "email", "subject", "message", "status").
		Values(m.Name, m.Email, m.Subject, m.Message, models.ContactStatusUnread).
		ToSql()
	if err != nil {
		return fmt.Errorf("render contact insert: %w", err)
	}

	if _, err := s.db.ExecContext(ctx, stmt, args...); err != nil {
		return fmt.Errorf("create contact message: %w", err)
	}
	return nil
}
