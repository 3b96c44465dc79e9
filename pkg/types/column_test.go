package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColumnValue(t *testing.T) {
	ch := Character{ID: 42, Name: "Rick Sanchez", Status: "Alive", Species: "Human"}

	assert.Equal(t, "42", ColumnID.Value(ch))
	assert.Equal(t, "Rick Sanchez", ColumnName.Value(ch))
	assert.Equal(t, "Alive", ColumnStatus.Value(ch))
	assert.Equal(t, "Human", ColumnSpecies.Value(ch))
	assert.Equal(t, "", Column("gender").Value(ch))
}

func TestColumnFilterable(t *testing.T) {
	assert.False(t, ColumnID.Filterable())
	for _, c := range FilterColumns {
		assert.True(t, c.Filterable(), c)
	}
	assert.False(t, Column("gender").Filterable())
}

func TestParseColumn(t *testing.T) {
	c, err := ParseColumn("species")
	require.NoError(t, err)
	assert.Equal(t, ColumnSpecies, c)
	assert.Equal(t, "Species", c.Header())

	_, err = ParseColumn("Species")
	assert.ErrorIs(t, err, ErrUnknownColumn)
}

func TestValidPageSize(t *testing.T) {
	for _, n := range []int{10, 20, 30, 50} {
		assert.True(t, ValidPageSize(n), n)
	}
	for _, n := range []int{0, -10, 15, 40, 100} {
		assert.False(t, ValidPageSize(n), n)
	}
}
