// List command prints one page of the character table.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/rmtable/internal/render"
)

func newListCmd(a *app) *cobra.Command {
	var (
		filters filterFlags
		page    int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print one page of characters",
		Long: `List fetches the characters once, applies the filters and prints the
requested page with pagination controls. Filters are case-sensitive
substring matches and are ANDed together.

Example:
  rmtable list
  rmtable list --name Rick
  rmtable list --status Alive --species Human --page-size 20 --page 2
  rmtable list --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if page < 1 {
				return userError(fmt.Errorf("page must be at least 1, got %d", page))
			}

			s, err := a.loadTable(cmd.Context(), &filters)
			if err != nil {
				return err
			}
			s.GotoPage(page - 1)

			if a.flags.jsonMode {
				return render.JSON(cmd.OutOrStdout(), s)
			}
			return render.Table(cmd.OutOrStdout(), s)
		},
	}

	filters.register(cmd)
	cmd.Flags().IntVar(&page, "page", 1, "page to show, starting at 1 (clamped to the last page)")
	return cmd
}
