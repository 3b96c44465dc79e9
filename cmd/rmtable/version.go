// Version command for the rmtable CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is the rmtable release.
const version = "0.1.0"

const modulePath = "github.com/mesh-intelligence/rmtable"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the rmtable version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "rmtable v%s\nmodule: %s\n", version, modulePath)
			return nil
		},
	}
}
