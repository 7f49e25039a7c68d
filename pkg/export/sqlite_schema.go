package export

import (
	"database/sql"
	"fmt"
)

// schemaSQL creates every table in dependency order.
var schemaSQL = []string{
	`CREATE TABLE IF NOT EXISTS meta (
		key TEXT PRIMARY KEY,
		value TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS sections (
		id TEXT PRIMARY KEY,
		position INTEGER NOT NULL,
		label TEXT NOT NULL,
		aria_label TEXT NOT NULL,
		icon TEXT,
		title TEXT NOT NULL,
		subtitle TEXT,
		markdown TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS blocks (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		section_id TEXT NOT NULL REFERENCES sections(id),
		parent_id INTEGER REFERENCES blocks(id),
		position INTEGER NOT NULL,
		depth INTEGER NOT NULL,
		kind TEXT NOT NULL,
		title TEXT,
		data TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS knowledge_tables (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		section_id TEXT NOT NULL REFERENCES sections(id),
		block_id INTEGER NOT NULL REFERENCES blocks(id),
		position INTEGER NOT NULL,
		title TEXT NOT NULL,
		columns TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS knowledge_rows (
		table_id INTEGER NOT NULL REFERENCES knowledge_tables(id),
		position INTEGER NOT NULL,
		label TEXT NOT NULL,
		cells TEXT NOT NULL,
		PRIMARY KEY (table_id, position)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_blocks_section ON blocks(section_id, position)`,
	`CREATE INDEX IF NOT EXISTS idx_blocks_kind ON blocks(kind)`,
	`CREATE INDEX IF NOT EXISTS idx_rows_label ON knowledge_rows(label)`,
}

// createSchema creates all tables and indexes.
func createSchema(tx *sql.Tx) error {
	for _, stmt := range schemaSQL {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("exec %.40q: %w", stmt, err)
		}
	}
	return nil
}

// createFTSIndex creates and fills the full-text index over section
// markdown. It must run after sections are inserted.
func createFTSIndex(tx *sql.Tx) error {
	ftsSQL := `
		CREATE VIRTUAL TABLE IF NOT EXISTS sections_fts USING fts5(
			id,
			title,
			subtitle,
			markdown,
			content='sections',
			tokenize='porter unicode61'
		)
	`
	if _, err := tx.Exec(ftsSQL); err != nil {
		return fmt.Errorf("create FTS5 table: %w", err)
	}
	if _, err := tx.Exec(`INSERT INTO sections_fts(sections_fts) VALUES('rebuild')`); err != nil {
		return fmt.Errorf("populate FTS index: %w", err)
	}
	return nil
}

// optimizeDatabase compacts the file. VACUUM must run outside a transaction.
func optimizeDatabase(db *sql.DB) error {
	for _, stmt := range []string{`PRAGMA journal_mode=DELETE`, `ANALYZE`, `PRAGMA optimize`} {
		// Some pragmas may fail depending on state, continue
		_, _ = db.Exec(stmt)
	}
	if _, err := db.Exec(`VACUUM`); err != nil {
		return fmt.Errorf("vacuum: %w", err)
	}
	return nil
}
