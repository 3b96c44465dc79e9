package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/rmtable/internal/table"
	"github.com/mesh-intelligence/rmtable/pkg/types"
)

func characters(n int) []types.Character {
	out := make([]types.Character, n)
	for i := range out {
		out[i] = types.Character{ID: i + 1, Name: fmt.Sprintf("Character %d", i+1), Status: "Alive", Species: "Human"}
	}
	out[0].Name = "Rick Sanchez"
	if n > 7 {
		out[7].Name = "Adjudicator Rick"
	}
	return out
}

func TestTableFirstPage(t *testing.T) {
	s := table.New(characters(20))

	var buf bytes.Buffer
	require.NoError(t, Table(&buf, s))
	out := buf.String()
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")

	assert.Equal(t, Title, lines[0])
	assert.Equal(t, "", lines[1])
	assert.Equal(t, "ID  NAME              STATUS  SPECIES", lines[2])
	assert.Equal(t, "--  ----              ------  -------", lines[3])
	assert.Equal(t, "1   Rick Sanchez      Alive   Human", lines[4])
	assert.Len(t, lines, 2+2+10+2)
	assert.Equal(t, "Page 1 of 2 · Show 10 entries · 20 of 20 rows", lines[14])
	assert.Equal(t, "(<<) (<) [>] [>>]", lines[15])
	assert.NotContains(t, out, "Character 11")
	assert.NotContains(t, out, "Filters:")
}

func TestTableFilteredSinglePage(t *testing.T) {
	s := table.New(characters(20))
	require.NoError(t, s.SetFilter(types.ColumnName, "Rick"))

	var buf bytes.Buffer
	require.NoError(t, Table(&buf, s))
	out := buf.String()

	assert.Contains(t, out, "Rick Sanchez")
	assert.Contains(t, out, "Adjudicator Rick")
	assert.Contains(t, out, `Filters: name="Rick"`)
	assert.Contains(t, out, "Page 1 of 1 · Show 10 entries · 2 of 20 rows")
	assert.Contains(t, out, "(<<) (<) (>) (>>)")
}

func TestTableNoResults(t *testing.T) {
	s := table.New(nil)

	var buf bytes.Buffer
	require.NoError(t, Table(&buf, s))
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")

	assert.Equal(t, Title, lines[0])
	assert.Equal(t, "ID  NAME  STATUS  SPECIES", lines[2])
	assert.Equal(t, NoResults, lines[4])
	assert.Equal(t, "Page 0 of 0 · Show 10 entries · 0 of 0 rows", lines[5])
}

func TestTableTruncatesLongCells(t *testing.T) {
	long := strings.Repeat("x", 60)
	s := table.New([]types.Character{{ID: 1, Name: long, Status: "Alive", Species: "Human"}})

	var buf bytes.Buffer
	require.NoError(t, Table(&buf, s))

	assert.NotContains(t, buf.String(), long)
	assert.Contains(t, buf.String(), strings.Repeat("x", 37)+"...")
}

func TestButtonsMiddlePage(t *testing.T) {
	s := table.New(characters(35))
	s.GotoPage(1)

	assert.Equal(t, "[<<] [<] [>] [>>]", Buttons(s))
	assert.Equal(t, "Page 2 of 4", PageLabel(s))
}

func TestFilterSummaryOrder(t *testing.T) {
	s := table.New(characters(5))
	require.NoError(t, s.SetFilter(types.ColumnSpecies, "Hum"))
	require.NoError(t, s.SetFilter(types.ColumnName, "Rick"))

	assert.Equal(t, `name="Rick" species="Hum"`, FilterSummary(s))
}

func TestJSON(t *testing.T) {
	s := table.New(characters(12))
	s.NextPage()

	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, s))

	var got []types.Character
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, 11, got[0].ID)
}

func TestJSONEmptyPage(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, table.New(nil)))
	assert.Equal(t, "[]\n", buf.String())
}
