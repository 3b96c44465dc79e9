package store

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteCharactersSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "characters.db")

	require.NoError(t, WriteCharactersSQLite(path, sampleCharacters()))

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM characters").Scan(&count))
	assert.Equal(t, 3, count)

	var name, origin, episode string
	require.NoError(t, db.QueryRow(
		"SELECT name, origin_name, episode FROM characters WHERE id = ?", 1,
	).Scan(&name, &origin, &episode))
	assert.Equal(t, "Rick Sanchez", name)
	assert.Equal(t, "Earth (C-137)", origin)
	assert.JSONEq(t, `["https://rickandmortyapi.com/api/episode/1"]`, episode)

	require.NoError(t, db.QueryRow(
		"SELECT episode FROM characters WHERE id = ?", 2,
	).Scan(&episode))
	assert.Equal(t, "null", episode)
}

func TestWriteCharactersSQLiteReplacesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "characters.db")

	require.NoError(t, WriteCharactersSQLite(path, sampleCharacters()))
	require.NoError(t, WriteCharactersSQLite(path, sampleCharacters()[:1]))

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM characters").Scan(&count))
	assert.Equal(t, 1, count)
}

func TestWriteCharactersSQLiteEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.db")

	require.NoError(t, WriteCharactersSQLite(path, nil))

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM characters").Scan(&count))
	assert.Zero(t, count)
}
