// Package journal records bookmark and share presses. Navigation never reads
// it back; it only feeds the admin /stats report.
package journal

import (
	"context"
	"embed"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/m3rciful/cryptonews/core/database"
	"github.com/m3rciful/cryptonews/core/logger"
	"github.com/m3rciful/cryptonews/news/action"
)

const component = "journal"

//go:embed migrations/*.sql
var migrationFS embed.FS

// Migrations returns the embedded schema for database.RunMigrations.
func Migrations() database.Migrations {
	return database.Migrations{FS: migrationFS, Dir: "migrations"}
}

// Kinds recorded by the journal.
const (
	KindBookmark = "bookmark"
	KindShare    = "share"
)

// KindOf maps an action to a journal kind. Only bookmark and share presses
// are recorded.
func KindOf(a action.Action) (string, bool) {
	switch a.Kind {
	case action.Bookmark:
		return KindBookmark, true
	case action.Share:
		return KindShare, true
	}
	return "", false
}

// Entry is one recorded interaction.
type Entry struct {
	ID        string    `db:"id"`
	Kind      string    `db:"kind"`
	ArticleID int       `db:"article_id"`
	UserID    int64     `db:"user_id"`
	ChatID    int64     `db:"chat_id"`
	CreatedAt time.Time `db:"created_at"`
}

// KindCount is the number of entries of a kind.
type KindCount struct {
	Kind  string `db:"kind"`
	Total int    `db:"total"`
}

// ArticleCount is the number of entries for one article.
type ArticleCount struct {
	ArticleID int `db:"article_id"`
	Total     int `db:"total"`
}

// Store writes and summarises interactions. A Store without a database is
// disabled: writes are dropped and reports are empty.
type Store struct {
	db  *sqlx.DB
	now func() time.Time
}

// New wraps db. Passing nil yields a disabled store.
func New(db *sqlx.DB) *Store {
	return &Store{db: db, now: func() time.Time { return time.Now().UTC() }}
}

// Enabled reports whether the store is backed by a database.
func (s *Store) Enabled() bool { return s != nil && s.db != nil }

// Record stores one interaction derived from a. Actions other than bookmark
// and share are ignored and return ok=false.
func (s *Store) Record(ctx context.Context, a action.Action, userID, chatID int64) (Entry, bool, error) {
	kind, ok := KindOf(a)
	if !ok || !s.Enabled() {
		return Entry{}, false, nil
	}
	e := Entry{
		ID:        uuid.NewString(),
		Kind:      kind,
		ArticleID: a.ArticleID,
		UserID:    userID,
		ChatID:    chatID,
		CreatedAt: s.now().Truncate(time.Second),
	}
	q := s.db.Rebind(`INSERT INTO interactions (id, kind, article_id, user_id, chat_id, created_at) VALUES (?, ?, ?, ?, ?, ?)`)
	if _, err := s.db.ExecContext(ctx, q, e.ID, e.Kind, e.ArticleID, e.UserID, e.ChatID, e.CreatedAt); err != nil {
		logger.Warn(ctx, component, "record",
			slog.String("status", "fail"),
			slog.String("kind", kind),
			slog.Int("article_id", a.ArticleID),
			slog.String("err", err.Error()),
		)
		return Entry{}, false, fmt.Errorf("journal record: %w", err)
	}
	logger.Debug(ctx, component, "record",
		slog.String("status", "ok"),
		slog.String("kind", kind),
		slog.Int("article_id", a.ArticleID),
	)
	return e, true, nil
}

// Counts returns totals per kind, ordered by kind.
func (s *Store) Counts(ctx context.Context) ([]KindCount, error) {
	if !s.Enabled() {
		return nil, nil
	}
	var out []KindCount
	err := s.db.SelectContext(ctx, &out,
		`SELECT kind, COUNT(*) AS total FROM interactions GROUP BY kind ORDER BY kind`)
	if err != nil {
		return nil, fmt.Errorf("journal counts: %w", err)
	}
	return out, nil
}

// TopArticles returns the most recorded articles for kind, busiest first.
func (s *Store) TopArticles(ctx context.Context, kind string, limit int) ([]ArticleCount, error) {
	if !s.Enabled() || limit <= 0 {
		return nil, nil
	}
	var out []ArticleCount
	q := s.db.Rebind(`SELECT article_id, COUNT(*) AS total FROM interactions
		WHERE kind = ? GROUP BY article_id ORDER BY total DESC, article_id ASC LIMIT ?`)
	if err := s.db.SelectContext(ctx, &out, q, kind, limit); err != nil {
		return nil, fmt.Errorf("journal top articles: %w", err)
	}
	return out, nil
}

// Recent returns the latest entries, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if !s.Enabled() || limit <= 0 {
		return nil, nil
	}
	var out []Entry
	q := s.db.Rebind(`SELECT id, kind, article_id, user_id, chat_id, created_at FROM interactions
		ORDER BY created_at DESC, id ASC LIMIT ?`)
	if err := s.db.SelectContext(ctx, &out, q, limit); err != nil {
		return nil, fmt.Errorf("journal recent: %w", err)
	}
	return out, nil
}
