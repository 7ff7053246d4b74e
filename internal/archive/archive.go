// Package archive exports a snapshot of the current task forest to a
// SQLite file for ad hoc SQL reporting — a one-shot CLI convenience,
// not part of the core fold (the core holds no persistence story of its
// own).
package archive

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
	"github.com/xeruf/mostr-go/internal/store"
	"github.com/xeruf/mostr-go/internal/task"
)

const schema = `
CREATE TABLE IF NOT EXISTS tasks (
	id TEXT PRIMARY KEY,
	parent_id TEXT,
	name TEXT,
	state TEXT,
	created_at INTEGER,
	has_definition INTEGER
);
CREATE TABLE IF NOT EXISTS hashtags (
	task_id TEXT,
	label TEXT
);
CREATE TABLE IF NOT EXISTS descriptions (
	task_id TEXT,
	position INTEGER,
	content TEXT
);
`

// Export writes every task in s to a fresh SQLite database at path,
// overwriting whatever schema was already there.
func Export(ctx context.Context, s *store.Store, path string) error {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return fmt.Errorf("archive: opening %s: %w", path, err)
	}
	defer db.Close()

	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("archive: creating schema: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("archive: starting transaction: %w", err)
	}
	defer tx.Rollback()

	for _, t := range s.AllTasks() {
		if err := insertTask(ctx, tx, t); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func insertTask(ctx context.Context, tx *sql.Tx, t *task.Task) error {
	name, hasName := t.Name()
	var parentID interface{}
	if p, ok := t.ParentID(); ok {
		parentID = p.String()
	}
	var createdAt interface{}
	if def, ok := t.Definition(); ok {
		createdAt = def.CreatedAt
	}

	_, err := tx.ExecContext(ctx,
		`INSERT OR REPLACE INTO tasks (id, parent_id, name, state, created_at, has_definition) VALUES (?, ?, ?, ?, ?, ?)`,
		t.ID().String(), parentID, name, t.CurrentState().Label(), createdAt, boolToInt(hasName),
	)
	if err != nil {
		return fmt.Errorf("archive: inserting task %s: %w", t.ID(), err)
	}

	for _, h := range t.Hashtags() {
		if _, err := tx.ExecContext(ctx, `INSERT INTO hashtags (task_id, label) VALUES (?, ?)`, t.ID().String(), h); err != nil {
			return fmt.Errorf("archive: inserting hashtag for %s: %w", t.ID(), err)
		}
	}
	for i, d := range t.Descriptions() {
		if _, err := tx.ExecContext(ctx, `INSERT INTO descriptions (task_id, position, content) VALUES (?, ?, ?)`, t.ID().String(), i, d); err != nil {
			return fmt.Errorf("archive: inserting description for %s: %w", t.ID(), err)
		}
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
