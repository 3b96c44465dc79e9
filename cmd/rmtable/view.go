// View command runs the interactive table.
package main

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/rmtable/internal/tui"
)

func newViewCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "view",
		Short: "Browse characters interactively",
		Long: `View opens a full-screen table. The characters are fetched once when
the view starts; "Loading..." is shown until the fetch completes.

Keys:
  / or tab   edit the Name, Status and Species filters (tab cycles, enter/esc leaves)
  g, ←/h     first page, previous page
  →/l, G     next page, last page
  s, S       next, previous page size (10, 20, 30, 50)
  q          quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run(cmd.Context(), a.newSource(), tui.Options{
				PageSize: a.cfg.PageSize,
				Logger:   a.log,
			})
		},
	}
}
