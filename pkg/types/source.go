package types

import (
	"context"
	"errors"
)

// Source provides the character record set. A table is built from a single
// Fetch; there is no incremental loading.
type Source interface {
	// Fetch returns every record the source offers.
	// Any failure is reported wrapping ErrFetch.
	Fetch(ctx context.Context) ([]Character, error)
}

// ErrFetch is the single runtime failure kind: the record set could not be
// obtained, whether through transport, status or decode problems.
var ErrFetch = errors.New("error fetching data")
