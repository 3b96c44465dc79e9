// Export command writes the filtered characters to a JSONL or SQLite file.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/rmtable/internal/paths"
	"github.com/mesh-intelligence/rmtable/internal/store"
)

// Export formats.
const (
	formatJSONL  = "jsonl"
	formatSQLite = "sqlite"
)

var defaultExportNames = map[string]string{
	formatJSONL:  "characters.jsonl",
	formatSQLite: "characters.db",
}

func newExportCmd(a *app) *cobra.Command {
	var (
		filters filterFlags
		format  string
		out     string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the filtered characters to a file",
		Long: `Export fetches the characters once, applies the filters and writes every
matching row (all pages) to a JSONL or SQLite file. Relative paths are
placed in the export directory.

Example:
  rmtable export
  rmtable export --species Alien --out aliens.jsonl
  rmtable export --format sqlite --out /tmp/characters.db`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			name, ok := defaultExportNames[format]
			if !ok {
				return userError(fmt.Errorf("unknown format %q (valid: %s, %s)", format, formatJSONL, formatSQLite))
			}
			if out != "" {
				name = out
			}

			dir, err := paths.ResolveExportDir(a.flags.exportDir, a.cfg.ExportDir)
			if err != nil {
				return fmt.Errorf("resolve export dir: %w", err)
			}
			path := paths.ExportPath(dir, name)

			s, err := a.loadTable(cmd.Context(), &filters)
			if err != nil {
				return err
			}
			rows := s.Filtered()

			if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				return sysError(fmt.Errorf("create export dir: %w", err))
			}
			switch format {
			case formatSQLite:
				err = store.WriteCharactersSQLite(path, rows)
			default:
				err = store.WriteCharactersJSONL(path, rows)
			}
			if err != nil {
				return sysError(fmt.Errorf("export %s: %w", format, err))
			}

			a.log.WithField("path", path).WithField("count", len(rows)).Info("exported characters")
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d character(s) to %s\n", len(rows), path)
			return nil
		},
	}

	filters.register(cmd)
	cmd.Flags().StringVar(&format, "format", formatJSONL, "output format: jsonl or sqlite")
	cmd.Flags().StringVar(&out, "out", "", "output file (default characters.jsonl or characters.db)")
	return cmd
}
