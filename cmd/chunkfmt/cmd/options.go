package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chunkfmt/chunkfmt/options"
)

var optionsCmd = &cobra.Command{
	Use:   "options",
	Short: "Inspect the option registry",
}

var optionsDumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print every option name and its effective value",
	RunE:  runOptionsDump,
}

func init() {
	optionsCmd.AddCommand(optionsDumpCmd)
}

// runOptionsDump prints options in options.OrderedMapProvider's
// deterministic Keys() order (the reason that provider is backed by
// go-properties-orderedmap rather than a plain map) so the dump is
// reproducible run to run, e.g. for diffing two config files.
func runOptionsDump(cmd *cobra.Command, args []string) error {
	if err := loadConfig(); err != nil {
		return err
	}
	opts := buildOptions(nil).(*options.OrderedMapProvider)
	for _, name := range opts.Keys() {
		fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", name, opts.String(name))
	}
	return nil
}
