package export

import (
	"database/sql"
	"fmt"
	"os"
	"strconv"

	json "github.com/goccy/go-json"

	"github.com/vanderheijden86/adpf/pkg/content"
	"github.com/vanderheijden86/adpf/pkg/debug"
	"github.com/vanderheijden86/adpf/pkg/version"

	_ "modernc.org/sqlite"
)

// SQLite writes the registry to a fresh database at path. All rows are
// inserted in one transaction.
func SQLite(path string, site content.Site, reg *content.Registry) error {
	defer debug.LogEnterExit("export.SQLite")()

	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove existing database: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	dbClosed := false
	defer func() {
		if !dbClosed {
			db.Close()
		}
	}()

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if err := createSchema(tx); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	if err := insertMeta(tx, site); err != nil {
		return fmt.Errorf("insert meta: %w", err)
	}
	w, err := newSQLiteWriter(tx)
	if err != nil {
		return err
	}
	defer w.close()

	for pos, e := range reg.Entries() {
		if err := w.insertEntry(pos, e); err != nil {
			return fmt.Errorf("insert section %s: %w", e.ID, err)
		}
	}
	if err := createFTSIndex(tx); err != nil {
		// Core tables stay usable without the index.
		debug.Log("FTS5 not available: %v", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	if err := optimizeDatabase(db); err != nil {
		return fmt.Errorf("optimize database: %w", err)
	}
	if err := db.Close(); err != nil {
		return fmt.Errorf("close database: %w", err)
	}
	dbClosed = true
	return nil
}

func insertMeta(tx *sql.Tx, site content.Site) error {
	footer, err := json.Marshal(site.Footer)
	if err != nil {
		return err
	}
	meta := [][2]string{
		{"schema_version", strconv.Itoa(SchemaVersion)},
		{"version", version.Version},
		{"site_name", site.Name},
		{"site_title", site.Title},
		{"tagline", site.Tagline},
		{"footer", string(footer)},
	}
	for _, kv := range meta {
		if _, err := tx.Exec(`INSERT OR REPLACE INTO meta (key, value) VALUES (?, ?)`, kv[0], kv[1]); err != nil {
			return fmt.Errorf("meta %s: %w", kv[0], err)
		}
	}
	return nil
}

// sqliteWriter holds the prepared statements of one export.
type sqliteWriter struct {
	section *sql.Stmt
	block   *sql.Stmt
	table   *sql.Stmt
	row     *sql.Stmt
	tables  int
}

func newSQLiteWriter(tx *sql.Tx) (*sqliteWriter, error) {
	w := &sqliteWriter{}
	var err error
	prepare := func(dst **sql.Stmt, query string) {
		if err != nil {
			return
		}
		*dst, err = tx.Prepare(query)
	}
	prepare(&w.section, `
		INSERT INTO sections (id, position, label, aria_label, icon, title, subtitle, markdown)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	prepare(&w.block, `
		INSERT INTO blocks (section_id, parent_id, position, depth, kind, title, data)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	prepare(&w.table, `
		INSERT INTO knowledge_tables (section_id, block_id, position, title, columns)
		VALUES (?, ?, ?, ?, ?)
	`)
	prepare(&w.row, `
		INSERT INTO knowledge_rows (table_id, position, label, cells)
		VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		w.close()
		return nil, fmt.Errorf("prepare statements: %w", err)
	}
	return w, nil
}

func (w *sqliteWriter) close() {
	for _, s := range []*sql.Stmt{w.section, w.block, w.table, w.row} {
		if s != nil {
			s.Close()
		}
	}
}

func (w *sqliteWriter) insertEntry(pos int, e content.Entry) error {
	_, err := w.section.Exec(
		e.ID.String(),
		pos,
		e.ID.Label(),
		e.ID.AriaLabel(),
		e.ID.Icon(),
		e.Title,
		e.Subtitle,
		SectionMarkdown(e),
	)
	if err != nil {
		return err
	}
	return w.insertBlocks(e.ID.String(), nil, 0, e.Blocks)
}

func (w *sqliteWriter) insertBlocks(sectionID string, parent *int64, depth int, blocks []content.Block) error {
	for pos, b := range blocks {
		// The JSON form carries the block's fields; nested blocks get their
		// own rows, so drop them from the parent's data.
		bj := blocksJSON([]content.Block{b})[0]
		bj.Blocks = nil
		data, err := json.Marshal(bj)
		if err != nil {
			return err
		}

		res, err := w.block.Exec(sectionID, parent, pos, depth, string(b.Kind()), blockTitle(b), string(data))
		if err != nil {
			return fmt.Errorf("block %d: %w", pos, err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return err
		}

		switch v := b.(type) {
		case content.Subsection:
			if err := w.insertBlocks(sectionID, &id, depth+1, v.Blocks); err != nil {
				return err
			}
		case content.Table:
			if err := w.insertTable(sectionID, id, v); err != nil {
				return fmt.Errorf("table %q: %w", v.Title, err)
			}
		}
	}
	return nil
}

func (w *sqliteWriter) insertTable(sectionID string, blockID int64, t content.Table) error {
	cols, err := json.Marshal(t.Columns)
	if err != nil {
		return err
	}
	res, err := w.table.Exec(sectionID, blockID, w.tables, t.Title, string(cols))
	if err != nil {
		return err
	}
	w.tables++
	tableID, err := res.LastInsertId()
	if err != nil {
		return err
	}
	for i, row := range t.Rows {
		cells, err := json.Marshal(row)
		if err != nil {
			return err
		}
		label := ""
		if len(row) > 0 {
			label = row[0]
		}
		if _, err := w.row.Exec(tableID, i, label, string(cells)); err != nil {
			return fmt.Errorf("row %d: %w", i, err)
		}
	}
	return nil
}

func blockTitle(b content.Block) string {
	switch v := b.(type) {
	case content.FeatureList:
		return v.Title
	case content.CardGroup:
		return v.Title
	case content.Subsection:
		return v.Title
	case content.Table:
		return v.Title
	case content.Placeholder:
		return v.Label
	}
	return ""
}
