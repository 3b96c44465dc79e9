// Package main provides the rmtable CLI: a paginated, filterable table of
// Rick and Morty characters fetched once from the public API.
package main

import (
	"os"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run executes the command tree with args and returns the process exit code.
func run(args []string) int {
	root, a := newRootCmd()
	root.SetArgs(args)
	err := execute(root, a)
	return reportError(root.ErrOrStderr(), err)
}
