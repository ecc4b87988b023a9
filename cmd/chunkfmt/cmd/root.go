package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/chunkfmt/chunkfmt/logging"
	"github.com/chunkfmt/chunkfmt/token"
)

// rootCmd mirrors vippsas-sqlcode/cli/cmd/root.go's package-level
// *cobra.Command plus PersistentFlags idiom.
var rootCmd = &cobra.Command{
	Use:          "chunkfmt",
	Short:        "chunkfmt",
	SilenceUsage: true,
	Long:         `A C-family source-code beautifier core, driven from the command line.`,
}

var (
	configFile string
	logFormat  string
	verbose    bool
	v          = viper.New()
)

// Execute runs the root command. Called once from main.
func Execute() error {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", ".chunkfmt.yaml", "beautifier config file (YAML, one option per top-level key)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "color", `diagnostics sink: "color" (ANSI, stderr) or "logrus" (structured, stderr)`)
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log every stage's trace messages, not just notes/warnings/errors")
	rootCmd.AddCommand(formatCmd)
	rootCmd.AddCommand(optionsCmd)
	rootCmd.AddCommand(versionCmd)
	return rootCmd.Execute()
}

// buildLogger constructs the Logger Run's diagnostics flow through, per
// --log-format/--verbose. logging.Nop is deliberately not the default here:
// a CLI driver is the one caller that actually wants a human to see
// warnings/errors as they happen, unlike a library embedder who supplies
// its own Logger.
func buildLogger() logging.Logger {
	min := token.LNote
	if verbose {
		min = token.LIndent
	}
	switch logFormat {
	case "logrus":
		l := logrus.New()
		if verbose {
			l.SetLevel(logrus.TraceLevel)
		}
		return logging.NewLogrusLogger(l)
	default:
		return logging.NewColorLogger(os.Stderr, min)
	}
}

// loadConfig reads configFile into v if it exists; a missing file is not
// an error (every option still has its options.Defaults() value), but a
// malformed one is spec.md section 7's MalformedConfig, which is fatal.
func loadConfig() error {
	v.SetConfigFile(configFile)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("chunkfmt: malformed config %s: %w", configFile, err)
	}
	return nil
}
