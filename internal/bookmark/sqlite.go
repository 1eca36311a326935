package bookmark

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS bookmarks (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		url TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS tags (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		tag TEXT NOT NULL UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS bookmarks_tags (
		bookmark_id INTEGER NOT NULL REFERENCES bookmarks(id) ON DELETE CASCADE,
		tag_id INTEGER NOT NULL REFERENCES tags(id),
		PRIMARY KEY (bookmark_id, tag_id)
	)`,
}

// SQLiteStore keeps bookmarks in a SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the database at path and applies the
// schema. The parent directory is created when missing.
func OpenSQLite(ctx context.Context, path string) (*SQLiteStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("database path is empty")
	}
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	// :memory: databases and pragmas are per connection
	db.SetMaxOpenConns(1)
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("migrate %s: %w", path, err)
		}
	}
	return &SQLiteStore{db: db}, nil
}

// Close releases the database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Bookmarks returns every bookmark ordered by id, tags sorted by name.
func (s *SQLiteStore) Bookmarks(ctx context.Context) ([]Bookmark, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT b.id, b.url, b.description, t.tag
		FROM bookmarks b
		LEFT JOIN bookmarks_tags bt ON bt.bookmark_id = b.id
		LEFT JOIN tags t ON t.id = bt.tag_id
		ORDER BY b.id, t.tag`)
	if err != nil {
		return nil, fmt.Errorf("list bookmarks: %w", err)
	}
	defer rows.Close()
	var out []Bookmark
	for rows.Next() {
		var (
			b   Bookmark
			tag sql.NullString
		)
		if err := rows.Scan(&b.ID, &b.URL, &b.Description, &tag); err != nil {
			return nil, fmt.Errorf("scan bookmark: %w", err)
		}
		if n := len(out); n == 0 || out[n-1].ID != b.ID {
			out = append(out, b)
		}
		if tag.Valid {
			last := &out[len(out)-1]
			last.Tags = append(last.Tags, tag.String)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list bookmarks: %w", err)
	}
	return out, nil
}

// Add stores a bookmark and links its tags, creating missing tags. It
// returns the new bookmark id.
func (s *SQLiteStore) Add(ctx context.Context, url, description string, tags []string) (int64, error) {
	if strings.TrimSpace(url) == "" {
		return 0, errors.New("bookmark url is empty")
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin add: %w", err)
	}
	defer tx.Rollback()
	res, err := tx.ExecContext(ctx, "INSERT INTO bookmarks (url, description) VALUES (?, ?)", url, description)
	if err != nil {
		return 0, fmt.Errorf("insert bookmark: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("insert bookmark: %w", err)
	}
	for _, tag := range tags {
		if _, err := tx.ExecContext(ctx, "INSERT OR IGNORE INTO tags (tag) VALUES (?)", tag); err != nil {
			return 0, fmt.Errorf("insert tag %q: %w", tag, err)
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT OR IGNORE INTO bookmarks_tags (bookmark_id, tag_id)
			SELECT ?, id FROM tags WHERE tag = ?`, id, tag); err != nil {
			return 0, fmt.Errorf("link tag %q: %w", tag, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit add: %w", err)
	}
	return id, nil
}

// Delete removes the bookmark and its tag links. Tags stay for reuse.
func (s *SQLiteStore) Delete(ctx context.Context, id int64) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin delete: %w", err)
	}
	defer tx.Rollback()
	if _, err := tx.ExecContext(ctx, "DELETE FROM bookmarks_tags WHERE bookmark_id = ?", id); err != nil {
		return fmt.Errorf("unlink tags of %d: %w", id, err)
	}
	res, err := tx.ExecContext(ctx, "DELETE FROM bookmarks WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete bookmark %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete bookmark %d: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("delete bookmark %d: %w", id, ErrNotFound)
	}
	return tx.Commit()
}
