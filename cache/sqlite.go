package cache

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"shiritori/dictionary"
	"shiritori/model"
)

const sqliteVersion = 1

const sqliteSchema = `
	CREATE TABLE IF NOT EXISTS words (
		seq INTEGER PRIMARY KEY,
		first_index INTEGER NOT NULL,
		last_index INTEGER NOT NULL,
		bits INTEGER NOT NULL,
		surface TEXT NOT NULL,
		reading TEXT NOT NULL,
		normalized TEXT NOT NULL,
		size INTEGER NOT NULL
	);
	CREATE UNIQUE INDEX IF NOT EXISTS idx_words_cell ON words(first_index, last_index, bits);
	CREATE TABLE IF NOT EXISTS meta (
		version INTEGER NOT NULL,
		words INTEGER NOT NULL
	);
`

// SQLiteStore keeps the graph as one row per word in a SQLite database.
type SQLiteStore struct{}

// Path returns "<dict>.graph.db".
func (SQLiteStore) Path(dictPath string) string {
	return dictPath + ".graph.db"
}

// Read loads the graph at path. A database without its meta row, or whose
// row count disagrees with it, is reported as ErrCorrupt.
func (SQLiteStore) Read(path string) (*dictionary.Graph, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open graph database: %w", err)
	}
	defer conn.Close()

	var version, count int
	err = conn.QueryRow(`SELECT version, words FROM meta`).Scan(&version, &count)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: incomplete graph database", ErrCorrupt)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if version != sqliteVersion {
		return nil, fmt.Errorf("%w: version %d, want %d", ErrCorrupt, version, sqliteVersion)
	}

	rows, err := conn.Query(`SELECT first_index, last_index, bits, surface, reading, normalized, size FROM words ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	defer rows.Close()

	words := make([]model.Word, 0, count)
	for rows.Next() {
		var w model.Word
		var bits int64
		if err := rows.Scan(&w.First, &w.Last, &bits, &w.Surface, &w.Reading, &w.Normalized, &w.Size); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
		}
		w.Bits = uint64(bits)
		words = append(words, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if len(words) != count {
		return nil, fmt.Errorf("%w: %d words, want %d", ErrCorrupt, len(words), count)
	}
	return restore(words)
}

// Write builds the database in a temporary file and renames it over path, so
// path holds either the previous graph or the complete new one.
func (SQLiteStore) Write(path string, g *dictionary.Graph) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.Remove(tmp); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	if err := writeDB(tmp, g); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}

func writeDB(path string, g *dictionary.Graph) (err error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("open graph database: %w", err)
	}
	defer func() {
		if cerr := conn.Close(); err == nil && cerr != nil {
			err = cerr
		}
	}()

	for _, pragma := range []string{
		"PRAGMA journal_mode=DELETE",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := conn.Exec(pragma); err != nil {
			return fmt.Errorf("failed to set pragma: %w", err)
		}
	}
	if _, err := conn.Exec(sqliteSchema); err != nil {
		return fmt.Errorf("failed to initialize graph schema: %w", err)
	}

	tx, err := conn.Begin()
	if err != nil {
		return err
	}
	if err := insertWords(tx, snapshot(g)); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

func insertWords(tx *sql.Tx, words []model.Word) error {
	stmt, err := tx.Prepare(`INSERT INTO words (seq, first_index, last_index, bits, surface, reading, normalized, size) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, w := range words {
		if _, err := stmt.Exec(i, w.First, w.Last, int64(w.Bits), w.Surface, w.Reading, w.Normalized, w.Size); err != nil {
			return fmt.Errorf("insert %q: %w", w.Surface, err)
		}
	}
	if _, err := tx.Exec(`INSERT INTO meta (version, words) VALUES (?, ?)`, sqliteVersion, len(words)); err != nil {
		return fmt.Errorf("insert meta: %w", err)
	}
	return nil
}
