package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/arduino/go-paths-helper"
	"github.com/spf13/cobra"

	"github.com/chunkfmt/chunkfmt/format"
	"github.com/chunkfmt/chunkfmt/langflags"
)

var (
	writeInPlace bool
	codeWidth    string
)

var formatCmd = &cobra.Command{
	Use:   "format [file]",
	Short: "Run the beautifier core over a file (or stdin) and print the result",
	RunE:  runFormat,
}

func init() {
	formatCmd.Flags().BoolVarP(&writeInPlace, "write", "w", false, "overwrite the input file instead of printing to stdout (requires a file argument)")
	formatCmd.Flags().StringVar(&codeWidth, "code-width", "", "override the code_width option")
}

func runFormat(cmd *cobra.Command, args []string) error {
	if err := loadConfig(); err != nil {
		return err
	}

	var src []byte
	var inputPath *paths.Path
	if len(args) == 1 {
		inputPath = paths.New(args[0])
		b, err := inputPath.ReadFile()
		if err != nil {
			return fmt.Errorf("chunkfmt: reading %s: %w", args[0], err)
		}
		src = b
	} else {
		if writeInPlace {
			return fmt.Errorf("chunkfmt: --write requires a file argument")
		}
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("chunkfmt: reading stdin: %w", err)
		}
		src = b
	}

	overrides := map[string]string{}
	if codeWidth != "" {
		overrides["code_width"] = codeWidth
	}
	opts := buildOptions(overrides)

	filename := "stdin"
	if inputPath != nil {
		filename = inputPath.String()
	}
	res, err := format.Run(langflags.LangCPP, filename, src, opts, buildLogger())
	if err != nil {
		return fmt.Errorf("chunkfmt: %w", err)
	}

	out := render(res.Store)

	if !writeInPlace {
		_, err := cmd.OutOrStdout().Write(out)
		return err
	}

	// Per spec.md section 7: if error_count > 0 the driver should leave
	// backups in place rather than trust the formatted output.
	if res.Ctx.ErrorCount > 0 {
		backup := paths.New(inputPath.String() + ".orig")
		if err := backup.WriteFile(src); err != nil {
			return fmt.Errorf("chunkfmt: writing backup %s: %w", backup, err)
		}
	}
	return inputPath.WriteFile(out)
}
