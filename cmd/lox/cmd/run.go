package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/cwbudde/go-lox/internal/ast"
	langerrors "github.com/cwbudde/go-lox/internal/errors"
	"github.com/cwbudde/go-lox/internal/interp"
	"github.com/cwbudde/go-lox/internal/lexer"
	"github.com/cwbudde/go-lox/internal/parser"
	"github.com/cwbudde/go-lox/internal/resolver"
	"github.com/spf13/cobra"
)

var (
	evalExpr string
	dumpAST  bool
	trace    bool
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a program from a file, inline expression, or the REPL",
	Long: `Execute a program from a file or inline expression. With no file and
no -e flag, starts an interactive REPL.

Examples:
  # Run a script file
  lox run hello.lox

  # Evaluate an inline expression
  lox run -e "print 1 + 2;"

  # Run with AST dump (for debugging)
  lox run --ast hello.lox`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate inline code instead of reading from file")
	runCmd.Flags().BoolVar(&dumpAST, "ast", false, "emit a textual AST per top-level statement before running")
	runCmd.Flags().BoolVar(&trace, "trace", false, "trace execution (for debugging)")
}

func runScript(_ *cobra.Command, args []string) error {
	if evalExpr == "" && len(args) == 0 {
		return startREPL()
	}

	var source, filename string
	if evalExpr != "" {
		source, filename = evalExpr, "<eval>"
	} else {
		filename = args[0]
		content, err := os.ReadFile(filename)
		if err != nil {
			return newExitError(exitNoInput, fmt.Errorf("failed to read file %s: %w", filename, err))
		}
		source = string(content)
	}

	reporter := langerrors.NewReporter(source, filename)

	stmts, depths, err := compile(source, reporter)
	if err != nil {
		return err
	}

	if dumpAST {
		for _, s := range stmts {
			fmt.Println(ast.Print(s))
		}
	}

	if trace {
		fmt.Fprintf(os.Stderr, "[trace] executing %s\n", filename)
	}

	in := interp.New(os.Stdout)
	if rerr := in.Interpret(stmts, depths); rerr != nil {
		return newExitError(exitRuntime, errors.New(rerr.Error()))
	}

	return nil
}

// compile runs the scan/parse/resolve pipeline shared by run, fmt, and the
// REPL, returning an ExitError with the static-error code after the first
// phase that records any error.
func compile(source string, reporter *langerrors.Reporter) ([]ast.Stmt, map[int]int, error) {
	l := lexer.New(source, reporter)
	tokens := l.ScanTokens()

	if reporter.HadError() {
		fmt.Fprint(os.Stderr, langerrors.FormatErrors(reporter.StaticErrors()))
		return nil, nil, newExitError(exitStatic, fmt.Errorf("compilation failed with %d error(s)", len(reporter.StaticErrors())))
	}

	p := parser.New(tokens, reporter)
	stmts := p.Parse()

	if reporter.HadError() {
		fmt.Fprint(os.Stderr, langerrors.FormatErrors(reporter.StaticErrors()))
		return nil, nil, newExitError(exitStatic, fmt.Errorf("compilation failed with %d error(s)", len(reporter.StaticErrors())))
	}

	res := resolver.New(reporter)
	res.Resolve(stmts)

	if reporter.HadError() {
		fmt.Fprint(os.Stderr, langerrors.FormatErrors(reporter.StaticErrors()))
		return nil, nil, newExitError(exitStatic, fmt.Errorf("compilation failed with %d error(s)", len(reporter.StaticErrors())))
	}

	return stmts, res.Depths, nil
}
