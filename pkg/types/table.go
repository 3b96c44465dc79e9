package types

import "errors"

// Allowed page sizes, in selector order.
var PageSizes = []int{10, 20, 30, 50}

// DefaultPageSize is the page size of a freshly created table.
const DefaultPageSize = 10

// ValidPageSize reports whether n is one of PageSizes.
func ValidPageSize(n int) bool {
	for _, s := range PageSizes {
		if s == n {
			return true
		}
	}
	return false
}

// Table state errors.
var (
	ErrInvalidPageSize     = errors.New("invalid page size")
	ErrUnknownColumn       = errors.New("unknown column")
	ErrColumnNotFilterable = errors.New("column is not filterable")
)
