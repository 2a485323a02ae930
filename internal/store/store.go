// Package store handles SQLite persistence.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/avosk/flit/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// Store wraps SQLite access for book and session data.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS books (
			id INTEGER PRIMARY KEY,
			path TEXT NOT NULL UNIQUE,
			title TEXT NOT NULL,
			word_count INTEGER NOT NULL,
			position INTEGER NOT NULL DEFAULT 0,
			added_at TEXT NOT NULL,
			last_read_at TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY,
			book_id INTEGER NOT NULL,
			started_at TEXT NOT NULL,
			ended_at TEXT NOT NULL,
			words_read INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL,
			mode TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_sessions_ended_at ON sessions(ended_at);`,
		`CREATE INDEX IF NOT EXISTS idx_sessions_book_id ON sessions(book_id);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// OpenBook returns the book row for a path, inserting it on first open. The
// word count is refreshed on every open; the saved position is clamped into
// the new count in case the file shrank.
func (s *Store) OpenBook(ctx context.Context, path, title string, wordCount int) (model.Book, error) {
	now := time.Now()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO books (path, title, word_count, position, added_at, last_read_at)
		 VALUES (?, ?, ?, 0, ?, ?)
		 ON CONFLICT(path) DO UPDATE SET
			title = excluded.title,
			word_count = excluded.word_count,
			position = MIN(position, MAX(excluded.word_count - 1, 0)),
			last_read_at = excluded.last_read_at`,
		path, title, wordCount, now.Format(time.RFC3339Nano), now.Format(time.RFC3339Nano))
	if err != nil {
		return model.Book{}, err
	}
	return s.bookByPath(ctx, path)
}

func (s *Store) bookByPath(ctx context.Context, path string) (model.Book, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, path, title, word_count, position, added_at, last_read_at
		 FROM books WHERE path = ?`, path)
	return scanBook(row)
}

// SavePosition persists the current reading position for a book.
func (s *Store) SavePosition(ctx context.Context, bookID int64, position int) error {
	if position < 0 {
		position = 0
	}
	_, err := s.db.ExecContext(ctx,
		`UPDATE books SET position = ?, last_read_at = ? WHERE id = ?`,
		position, time.Now().Format(time.RFC3339Nano), bookID)
	return err
}

// ListBooks returns all books ordered by most recently read.
func (s *Store) ListBooks(ctx context.Context) ([]model.Book, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, path, title, word_count, position, added_at, last_read_at
		 FROM books ORDER BY last_read_at DESC`)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var books []model.Book
	for rows.Next() {
		book, err := scanBook(rows)
		if err != nil {
			return nil, err
		}
		books = append(books, book)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return books, nil
}

// InsertSession stores a completed reading session.
func (s *Store) InsertSession(ctx context.Context, sess model.Session) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO sessions (book_id, started_at, ended_at, words_read, duration_ms, mode)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		sess.BookID,
		sess.StartedAt.Format(time.RFC3339Nano),
		sess.EndedAt.Format(time.RFC3339Nano),
		sess.WordsRead,
		sess.DurationMs,
		sess.Mode,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// ListSessions returns sessions filtered by stats config, oldest first.
func (s *Store) ListSessions(ctx context.Context, cfg model.StatsConfig) ([]model.Session, error) {
	clauses := []string{"1=1"}
	args := []any{}
	if cfg.Book != "" {
		clauses = append(clauses, "book_id IN (SELECT id FROM books WHERE title = ? OR path = ?)")
		args = append(args, cfg.Book, cfg.Book)
	}
	if cfg.Since != nil {
		clauses = append(clauses, "ended_at >= ?")
		args = append(args, cfg.Since.Format(time.RFC3339Nano))
	}
	query := fmt.Sprintf(`SELECT id, book_id, started_at, ended_at, words_read, duration_ms, mode
		FROM sessions
		WHERE %s
		ORDER BY ended_at ASC`, strings.Join(clauses, " AND "))
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var sessions []model.Session
	for rows.Next() {
		var sess model.Session
		var startedAt, endedAt string
		if err := rows.Scan(&sess.ID, &sess.BookID, &startedAt, &endedAt, &sess.WordsRead, &sess.DurationMs, &sess.Mode); err != nil {
			return nil, err
		}
		if sess.StartedAt, err = time.Parse(time.RFC3339Nano, startedAt); err != nil {
			return nil, err
		}
		if sess.EndedAt, err = time.Parse(time.RFC3339Nano, endedAt); err != nil {
			return nil, err
		}
		sessions = append(sessions, sess)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if cfg.Last > 0 && len(sessions) > cfg.Last {
		sessions = sessions[len(sessions)-cfg.Last:]
	}
	return sessions, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBook(row rowScanner) (model.Book, error) {
	var book model.Book
	var addedAt, lastReadAt string
	if err := row.Scan(&book.ID, &book.Path, &book.Title, &book.WordCount, &book.Position, &addedAt, &lastReadAt); err != nil {
		return model.Book{}, err
	}
	parsed, err := time.Parse(time.RFC3339Nano, addedAt)
	if err != nil {
		return model.Book{}, err
	}
	book.AddedAt = parsed
	if parsed, err = time.Parse(time.RFC3339Nano, lastReadAt); err != nil {
		return model.Book{}, err
	}
	book.LastReadAt = parsed
	return book, nil
}
