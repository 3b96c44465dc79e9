package types

import "strconv"

// Column identifies a displayed table column by its accessor key.
type Column string

// Displayed columns, in display order.
const (
	ColumnID      Column = "id"
	ColumnName    Column = "name"
	ColumnStatus  Column = "status"
	ColumnSpecies Column = "species"
)

// Columns lists the displayed columns in display order.
var Columns = []Column{ColumnID, ColumnName, ColumnStatus, ColumnSpecies}

// FilterColumns lists the columns that accept a text filter.
var FilterColumns = []Column{ColumnName, ColumnStatus, ColumnSpecies}

var columnHeaders = map[Column]string{
	ColumnID:      "ID",
	ColumnName:    "Name",
	ColumnStatus:  "Status",
	ColumnSpecies: "Species",
}

// Header returns the display header for the column, or the raw key when the
// column is unknown.
func (c Column) Header() string {
	if h, ok := columnHeaders[c]; ok {
		return h
	}
	return string(c)
}

// Filterable reports whether the column accepts a text filter.
func (c Column) Filterable() bool {
	switch c {
	case ColumnName, ColumnStatus, ColumnSpecies:
		return true
	}
	return false
}

// Value returns the cell text of ch for the column. Unknown columns yield "".
func (c Column) Value(ch Character) string {
	switch c {
	case ColumnID:
		return strconv.Itoa(ch.ID)
	case ColumnName:
		return ch.Name
	case ColumnStatus:
		return ch.Status
	case ColumnSpecies:
		return ch.Species
	}
	return ""
}

// ParseColumn converts a column key to a Column.
// Returns ErrUnknownColumn if the key names no displayed column.
func ParseColumn(key string) (Column, error) {
	c := Column(key)
	if _, ok := columnHeaders[c]; !ok {
		return "", ErrUnknownColumn
	}
	return c, nil
}

// FilterSet maps a column to its filter text. An absent key or an empty
// string places no constraint on that column.
type FilterSet map[Column]string
