// Package journal records messages delivered through the message center
// so the demo can show a history of what the behaviors triggered.
package journal

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS messages (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	topic       TEXT NOT NULL,
	sender      TEXT NOT NULL,
	payload     TEXT NOT NULL DEFAULT '',
	received_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

// Message is one recorded bus delivery.
type Message struct {
	ID         int64
	Topic      string
	Sender     string
	Payload    string
	ReceivedAt time.Time
}

// Store persists delivered messages in a SQLite database. The mutex
// serializes access to the handle; sqlite needs writes serialized even
// though the application itself is single-threaded.
type Store struct {
	mu sync.Mutex
	db *sql.DB
}

// DefaultPath returns the journal location under the user's home
// directory, creating the parent directory if needed.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	dir := filepath.Join(home, ".eventtocommand")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}
	return filepath.Join(dir, "journal.db"), nil
}

// Open opens (and if necessary creates) the journal database at path.
// Use ":memory:" for an ephemeral store.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open journal database: %w", err)
	}

	if _, err := db.ExecContext(ctx, "PRAGMA busy_timeout = 5000"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to set busy timeout: %w", err)
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create journal schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Record appends one delivered message to the journal.
func (s *Store) Record(ctx context.Context, topic, sender, payload string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO messages (topic, sender, payload, received_at) VALUES (?, ?, ?, ?)`,
		topic, sender, payload, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to record message: %w", err)
	}
	return nil
}

// Recent returns up to limit messages, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, topic, sender, payload, received_at
		 FROM messages ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query messages: %w", err)
	}
	defer rows.Close()

	var messages []Message
	for rows.Next() {
		var m Message
		if err := rows.Scan(&m.ID, &m.Topic, &m.Sender, &m.Payload, &m.ReceivedAt); err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read messages: %w", err)
	}
	return messages, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Close()
}
