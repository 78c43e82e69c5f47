// Package sqlite loads the snippet catalog from a SQLite database,
// for installations that maintain their catalog in a single file
// rather than a CSV directory.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/stencil-labs/stencil-cli/internal/core/domain"
	"github.com/stencil-labs/stencil-cli/internal/core/ports/driven"
	"github.com/stencil-labs/stencil-cli/internal/logger"
)

// Ensure Source implements the interface.
var _ driven.SnippetSource = (*Source)(nil)

const schema = `
CREATE TABLE IF NOT EXISTS snippets (
	id     INTEGER PRIMARY KEY AUTOINCREMENT,
	domain TEXT NOT NULL,
	fields TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_snippets_domain ON snippets(domain);
`

// Source is a SQLite-backed implementation of driven.SnippetSource.
// Each row stores one record's fields as a JSON object.
type Source struct {
	db   *sql.DB
	path string
}

// NewSource opens (or creates) the catalog database at the given path.
func NewSource(path string) (*Source, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Source{db: db, path: path}, nil
}

// Close closes the database connection.
func (s *Source) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Source) Path() string {
	return s.path
}

// Load reads every catalog row in insertion order. Rows with an
// unknown domain or unparseable fields are skipped with a warning
// rather than failing the whole load.
func (s *Source) Load(ctx context.Context) ([]domain.Snippet, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT domain, fields FROM snippets ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("querying snippets: %w", err)
	}
	defer rows.Close()

	var snippets []domain.Snippet
	for rows.Next() {
		var name, blob string
		if err := rows.Scan(&name, &blob); err != nil {
			return nil, fmt.Errorf("scanning snippet row: %w", err)
		}

		d, err := domain.ParseDomain(name)
		if err != nil {
			logger.Warn("Skipping snippet row with unknown domain %q", name)
			continue
		}

		var fields map[string]string
		if err := json.Unmarshal([]byte(blob), &fields); err != nil {
			logger.Warn("Skipping snippet row with malformed fields in domain %q: %v", name, err)
			continue
		}

		snippets = append(snippets, domain.Snippet{Domain: d, Fields: fields})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating snippet rows: %w", err)
	}

	return snippets, nil
}

// ImportFrom replaces the database contents with the records of
// another source, inside one transaction.
func (s *Source) ImportFrom(ctx context.Context, src driven.SnippetSource) (int, error) {
	snippets, err := src.Load(ctx)
	if err != nil {
		return 0, fmt.Errorf("loading source records: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning import transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.ExecContext(ctx, "DELETE FROM snippets"); err != nil {
		return 0, fmt.Errorf("clearing snippets: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, "INSERT INTO snippets (domain, fields) VALUES (?, ?)")
	if err != nil {
		return 0, fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, snippet := range snippets {
		blob, err := json.Marshal(snippet.Fields)
		if err != nil {
			return 0, fmt.Errorf("encoding fields for %q: %w", snippet.Fields["Name"], err)
		}
		if _, err := stmt.ExecContext(ctx, string(snippet.Domain), string(blob)); err != nil {
			return 0, fmt.Errorf("inserting snippet: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing import: %w", err)
	}

	return len(snippets), nil
}
