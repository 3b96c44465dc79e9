// Root command for the rmtable CLI.
package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/rmtable/internal/logging"
	"github.com/mesh-intelligence/rmtable/internal/paths"
	"github.com/mesh-intelligence/rmtable/internal/render"
	"github.com/mesh-intelligence/rmtable/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	exportDir string
	source    string
	endpoint  string
	logLevel  string
	logFile   string
	pageSize  int
	jsonMode  bool
}

// app carries what PersistentPreRunE resolves for the subcommands.
type app struct {
	flags    rootFlags
	cfg      types.Config
	log      *logrus.Logger
	closeLog func()
}

// newLogger builds the command logger; tests replace it.
var newLogger = logging.New

// newRootCmd creates the top-level "rmtable" command with global flags and
// all subcommands registered, along with the app state the commands share.
func newRootCmd() (*cobra.Command, *app) {
	a := &app{closeLog: func() {}}

	root := &cobra.Command{
		Use:   "rmtable",
		Short: "Browse Rick and Morty characters as a filterable table",
		Long: `rmtable fetches the Rick and Morty character listing once and shows it
as a paginated table. Name, Status and Species can be filtered by
case-sensitive substring; pages hold 10, 20, 30 or 50 rows.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.flags.configDir, "config-dir", "", "configuration directory (default: platform config dir/rmtable)")
	pf.StringVar(&a.flags.exportDir, "export-dir", "", "directory for relative export paths (default: $(CWD)/rmtable-export)")
	pf.StringVar(&a.flags.source, "source", "", "read characters from a JSONL file instead of the API")
	pf.StringVar(&a.flags.endpoint, "endpoint", "", "character listing URL (default: "+types.DefaultEndpoint+")")
	pf.StringVar(&a.flags.logLevel, "log-level", "", "log level: panic, fatal, error, warn, info, debug, trace")
	pf.StringVar(&a.flags.logFile, "log-file", "", "write logs to this file")
	pf.IntVar(&a.flags.pageSize, "page-size", 0, "rows per page: 10, 20, 30 or 50 (default 10)")
	pf.BoolVar(&a.flags.jsonMode, "json", false, "output as JSON")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newListCmd(a))
	root.AddCommand(newViewCmd(a))
	root.AddCommand(newExportCmd(a))

	return root, a
}

// execute runs root and closes the log file afterwards. Cobra skips
// post-run hooks when a command fails, so the close happens here.
func execute(root *cobra.Command, a *app) error {
	defer a.closeLog()
	return root.Execute()
}

// setup loads and validates configuration and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	if cmd.Name() == "version" {
		return nil
	}

	configDir, err := paths.ResolveConfigDir(a.flags.configDir)
	if err != nil {
		return userError(fmt.Errorf("resolve config dir: %w", err))
	}

	v, err := loadConfig(configDir, cmd.Root().PersistentFlags())
	if err != nil {
		return userError(err)
	}

	cfg, err := decodeConfig(v)
	if err != nil {
		return userError(err)
	}
	if err := cfg.Validate(); err != nil {
		return userError(fmt.Errorf("invalid config: %w", err))
	}
	a.cfg = cfg

	// The interactive view owns the terminal; it logs to a file or nowhere.
	var fallback io.Writer = cmd.ErrOrStderr()
	if cmd.Name() == "view" {
		fallback = nil
	}
	log, closeLog, err := newLogger(logging.Options{
		Level:    cfg.LogLevel,
		File:     cfg.LogFile,
		Fallback: fallback,
	})
	if err != nil {
		return userError(err)
	}
	a.log = log
	a.closeLog = closeLog

	log.WithFields(logrus.Fields{
		"config_dir": configDir,
		"endpoint":   cfg.Endpoint,
		"source":     cfg.Source,
		"page_size":  cfg.PageSize,
	}).Debug("configuration loaded")
	return nil
}

// exitErr tags an error with the exit code it maps to.
type exitErr struct {
	code int
	err  error
}

func (e *exitErr) Error() string { return e.err.Error() }
func (e *exitErr) Unwrap() error { return e.err }

func userError(err error) error { return &exitErr{code: exitUserError, err: err} }

func sysError(err error) error { return &exitErr{code: exitSysError, err: err} }

// reportError prints err to w and returns the exit code. Fetch failures are
// shown as the generic fetch error message; the cause is in the log.
func reportError(w io.Writer, err error) int {
	if err == nil {
		return exitSuccess
	}
	if errors.Is(err, types.ErrFetch) {
		fmt.Fprintln(w, render.FetchError)
		return exitSysError
	}
	fmt.Fprintln(w, "Error:", err)
	var ee *exitErr
	if errors.As(err, &ee) {
		return ee.code
	}
	return exitUserError
}
