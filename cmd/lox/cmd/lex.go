package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/cwbudde/go-lox/internal/lexer"
	"github.com/spf13/cobra"
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a file or expression and print the resulting tokens",
	Long: `Tokenize (lex) a program and print the resulting token stream, one
token per line. Useful for debugging the scanner.`,
	Args: cobra.MaximumNArgs(1),
	RunE: lexScript,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "tokenize inline code instead of reading from file")
}

func lexScript(_ *cobra.Command, args []string) error {
	var source, filename string

	switch {
	case evalExpr != "":
		source, filename = evalExpr, "<eval>"
	case len(args) == 1:
		filename = args[0]
		content, err := os.ReadFile(filename)
		if err != nil {
			return newExitError(exitNoInput, fmt.Errorf("failed to read file %s: %w", filename, err))
		}
		source = string(content)
	default:
		filename = "<stdin>"
		content, err := io.ReadAll(os.Stdin)
		if err != nil {
			return newExitError(exitUsage, fmt.Errorf("failed to read stdin: %w", err))
		}
		source = string(content)
	}

	var hadError bool
	l := lexer.New(source, reporterFunc(func(line int, message string) {
		hadError = true
		fmt.Fprintf(os.Stderr, "[line %d] Error: %s\n", line, message)
	}))

	for _, tok := range l.ScanTokens() {
		fmt.Println(tok.String())
	}

	if hadError {
		return newExitError(exitStatic, fmt.Errorf("lexing %s failed", filename))
	}
	return nil
}

type reporterFunc func(line int, message string)

func (f reporterFunc) Error(line int, message string) { f(line, message) }
