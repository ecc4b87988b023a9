// Command chunkfmt is the thin CLI driver spec.md's non-goals describe as
// "no CLI driver beyond stdin/a file argument" — a demonstration harness
// around the format package, not a specified component in its own right.
// Grounded in vippsas-sqlcode's cli/main.go split between a main package
// that only calls cmd.Execute() and a cmd package holding the command
// tree.
package main

import (
	"os"

	"github.com/chunkfmt/chunkfmt/cmd/chunkfmt/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
