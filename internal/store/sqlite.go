package store

import (
	"database/sql"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/rmtable/pkg/types"
)

//go:embed schema.sql
var schemaSQL string

const insertCharacterSQL = `INSERT INTO characters
	(id, name, status, species, type, gender, origin_name, location_name, image, url, created, episode)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

// WriteCharactersSQLite writes records to a fresh SQLite database at path.
// An existing file at path is replaced.
func WriteCharactersSQLite(path string, records []types.Character) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove %s: %w", path, err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("open sqlite: %w", err)
	}
	defer db.Close()

	if _, err := db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	stmt, err := tx.Prepare(insertCharacterSQL)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, ch := range records {
		episodes, err := json.Marshal(ch.Episode)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("marshal episodes of %d: %w", ch.ID, err)
		}
		if _, err := stmt.Exec(
			ch.ID, ch.Name, ch.Status, ch.Species, ch.Type, ch.Gender,
			ch.Origin.Name, ch.Location.Name, ch.Image, ch.URL, ch.Created,
			string(episodes),
		); err != nil {
			tx.Rollback()
			return fmt.Errorf("insert character %d: %w", ch.ID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
