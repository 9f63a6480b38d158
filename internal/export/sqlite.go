package export

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"

	_ "modernc.org/sqlite"

	"github.com/jeanpaul/clv/internal/vocab"
)

const sqliteSchema = `
CREATE TABLE entries (
	id   INTEGER PRIMARY KEY,
	word TEXT NOT NULL,
	lang TEXT NOT NULL
);
CREATE TABLE definitions (
	entry_id INTEGER NOT NULL REFERENCES entries(id),
	slot     INTEGER NOT NULL,
	text     TEXT NOT NULL,
	PRIMARY KEY (entry_id, slot)
);
CREATE TABLE tags (
	entry_id INTEGER NOT NULL REFERENCES entries(id),
	tag      TEXT NOT NULL
);
CREATE TABLE examples (
	entry_id INTEGER NOT NULL REFERENCES entries(id),
	position INTEGER NOT NULL,
	sentence TEXT NOT NULL
);
CREATE INDEX idx_entries_word ON entries(word, lang);
`

// writeSQLite replaces path with a fresh snapshot database. Entry ids follow
// store order, starting at 1.
func writeSQLite(ctx context.Context, path string, entries []vocab.Entry) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("sqlite: remove old snapshot: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("sqlite: open %s: %w", path, err)
	}
	defer db.Close()

	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		return fmt.Errorf("sqlite: create schema: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("sqlite: begin: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	for i, e := range entries {
		id := i + 1
		if _, err := tx.ExecContext(ctx, `INSERT INTO entries (id, word, lang) VALUES (?, ?, ?)`, id, e.Word, e.Lang); err != nil {
			return fmt.Errorf("sqlite: insert %q: %w", e.Word, err)
		}
		for slot, d := range e.Definitions {
			if d == "" {
				continue
			}
			if _, err := tx.ExecContext(ctx, `INSERT INTO definitions (entry_id, slot, text) VALUES (?, ?, ?)`, id, slot+1, d); err != nil {
				return fmt.Errorf("sqlite: insert definition: %w", err)
			}
		}
		for _, t := range e.Tags {
			if _, err := tx.ExecContext(ctx, `INSERT INTO tags (entry_id, tag) VALUES (?, ?)`, id, t); err != nil {
				return fmt.Errorf("sqlite: insert tag: %w", err)
			}
		}
		for pos, ex := range e.Examples {
			if _, err := tx.ExecContext(ctx, `INSERT INTO examples (entry_id, position, sentence) VALUES (?, ?, ?)`, id, pos+1, ex); err != nil {
				return fmt.Errorf("sqlite: insert example: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("sqlite: commit: %w", err)
	}
	return nil
}
