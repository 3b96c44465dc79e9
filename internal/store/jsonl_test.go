package store

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/rmtable/pkg/types"
)

func sampleCharacters() []types.Character {
	return []types.Character{
		{
			ID: 1, Name: "Rick Sanchez", Status: "Alive", Species: "Human", Gender: "Male",
			Origin:  types.Location{Name: "Earth (C-137)"},
			Episode: []string{"https://rickandmortyapi.com/api/episode/1"},
		},
		{ID: 2, Name: "Morty Smith", Status: "Alive", Species: "Human"},
		{ID: 3, Name: "Summer Smith", Status: "Alive", Species: "Human"},
	}
}

func TestWriteThenReadCharactersJSONL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "characters.jsonl")

	require.NoError(t, WriteCharactersJSONL(path, sampleCharacters()))

	got, err := ReadCharactersJSONL(path)
	require.NoError(t, err)
	assert.Equal(t, sampleCharacters(), got)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(string(data), "\n"))
}

func TestWriteCharactersJSONLLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "characters.jsonl")

	require.NoError(t, WriteCharactersJSONL(path, sampleCharacters()))
	require.NoError(t, WriteCharactersJSONL(path, sampleCharacters()[:1]))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "characters.jsonl", entries[0].Name())

	got, err := ReadCharactersJSONL(path)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestWriteCharactersJSONLEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.jsonl")

	require.NoError(t, WriteCharactersJSONL(path, nil))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Zero(t, info.Size())
}

func TestReadCharactersJSONLSkipsMalformedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mixed.jsonl")
	content := `{"id": 1, "name": "Rick Sanchez", "status": "Alive", "species": "Human"}

not json at all
{"id": "two", "name": "Morty Smith"}
{"id": 3, "name": "Summer Smith", "status": "Alive", "species": "Human"}
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	got, err := ReadCharactersJSONL(path)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].ID)
	assert.Equal(t, 3, got[1].ID)
}

func TestReadCharactersJSONLMissingFile(t *testing.T) {
	_, err := ReadCharactersJSONL(filepath.Join(t.TempDir(), "missing.jsonl"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestJSONLSourceFetch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "characters.jsonl")
	require.NoError(t, WriteCharactersJSONL(path, sampleCharacters()))

	got, err := JSONLSource{Path: path}.Fetch(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestJSONLSourceFetchFailureWrapsErrFetch(t *testing.T) {
	_, err := JSONLSource{Path: filepath.Join(t.TempDir(), "missing.jsonl")}.Fetch(context.Background())
	assert.ErrorIs(t, err, types.ErrFetch)
	assert.ErrorIs(t, err, os.ErrNotExist)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = JSONLSource{Path: "unused"}.Fetch(ctx)
	assert.ErrorIs(t, err, types.ErrFetch)
}
