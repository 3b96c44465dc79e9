// Shared helpers for rmtable commands.
package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/rmtable/internal/client"
	"github.com/mesh-intelligence/rmtable/internal/store"
	"github.com/mesh-intelligence/rmtable/internal/table"
	"github.com/mesh-intelligence/rmtable/pkg/types"
)

// filterFlags holds the per-column filter flag values.
type filterFlags struct {
	name    string
	status  string
	species string
}

func (f *filterFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "show rows whose Name contains this text (case-sensitive)")
	cmd.Flags().StringVar(&f.status, "status", "", "show rows whose Status contains this text (case-sensitive)")
	cmd.Flags().StringVar(&f.species, "species", "", "show rows whose Species contains this text (case-sensitive)")
}

// apply sets every non-empty filter on s.
func (f *filterFlags) apply(s *table.State) error {
	for col, v := range map[types.Column]string{
		types.ColumnName:    f.name,
		types.ColumnStatus:  f.status,
		types.ColumnSpecies: f.species,
	} {
		if err := s.SetFilter(col, v); err != nil {
			return fmt.Errorf("filter %s: %w", col, err)
		}
	}
	return nil
}

// newSource selects the JSONL file source when configured, otherwise the API.
func (a *app) newSource() types.Source {
	if a.cfg.Source != "" {
		return store.JSONLSource{Path: a.cfg.Source}
	}
	return client.New(a.cfg.Endpoint, client.WithLogger(a.log))
}

// loadTable fetches the record set once and builds a table state with the
// configured page size and the given filters.
func (a *app) loadTable(ctx context.Context, filters *filterFlags) (*table.State, error) {
	records, err := a.newSource().Fetch(ctx)
	if err != nil {
		return nil, err
	}

	s := table.New(records)
	if err := s.SetPageSize(a.cfg.PageSize); err != nil {
		return nil, userError(fmt.Errorf("page size %d: %w", a.cfg.PageSize, err))
	}
	if filters != nil {
		if err := filters.apply(s); err != nil {
			return nil, userError(err)
		}
	}
	return s, nil
}
