package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	langerrors "github.com/cwbudde/go-lox/internal/errors"

	"github.com/cwbudde/go-lox/internal/ast"
	"github.com/spf13/cobra"
)

var fmtCmd = &cobra.Command{
	Use:   "fmt [file]",
	Short: "Pretty-print a source file's parsed AST",
	Long: `Parse a file (or standard input) and print it back out via the
AST printer, one line per top-level statement.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFmt,
}

func init() {
	rootCmd.AddCommand(fmtCmd)
}

func runFmt(_ *cobra.Command, args []string) error {
	var source, filename string

	if len(args) == 1 {
		filename = args[0]
		content, err := os.ReadFile(filename)
		if err != nil {
			return newExitError(exitNoInput, fmt.Errorf("failed to read file %s: %w", filename, err))
		}
		source = string(content)
	} else {
		filename = "<stdin>"
		content, err := io.ReadAll(os.Stdin)
		if err != nil {
			return newExitError(exitUsage, fmt.Errorf("failed to read stdin: %w", err))
		}
		source = string(content)
	}

	reporter := langerrors.NewReporter(source, filename)
	stmts, _, err := compile(source, reporter)
	if err != nil {
		return err
	}

	var sb strings.Builder
	for _, s := range stmts {
		sb.WriteString(ast.Print(s))
		sb.WriteString("\n")
	}
	fmt.Print(sb.String())
	return nil
}
