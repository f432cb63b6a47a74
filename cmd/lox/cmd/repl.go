package cmd

import (
	"bufio"
	"fmt"
	"os"

	langerrors "github.com/cwbudde/go-lox/internal/errors"
	"github.com/cwbudde/go-lox/internal/interp"
	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
)

// startREPL runs an interactive read-eval-print loop. Input accumulates
// across lines until every brace and parenthesis outside a string literal
// balances, so a multi-line function or class body can be typed without
// submitting each line separately.
func startREPL() error {
	sessionID := uuid.New()
	interactive := isatty.IsTerminal(os.Stdin.Fd())

	if interactive {
		fmt.Printf("lox repl  session %s\n", sessionID)
	}

	in := interp.New(os.Stdout)
	scanner := bufio.NewScanner(os.Stdin)

	var pending string
	for {
		if interactive {
			if pending == "" {
				fmt.Print("> ")
			} else {
				fmt.Print("... ")
			}
		}

		if !scanner.Scan() {
			break
		}

		pending += scanner.Text() + "\n"
		if !balanced(pending) {
			continue
		}

		source := pending
		pending = ""

		reporter := langerrors.NewReporter(source, "<repl>")
		stmts, depths, err := compile(source, reporter)
		if err != nil {
			if ee, ok := err.(*ExitError); ok {
				fmt.Fprintln(os.Stderr, ee.Err)
				continue
			}
			fmt.Fprintln(os.Stderr, err)
			continue
		}

		if rerr := in.Interpret(stmts, depths); rerr != nil {
			fmt.Fprintln(os.Stderr, rerr.Error())
		}
	}

	return nil
}

// balanced reports whether source leaves no brace or parenthesis open,
// ignoring characters inside string literals (which in this dialect have no
// escape sequences, so a bare `"` always toggles state). Braces and
// parentheses share one counter, and surplus closers also count as
// balanced.
func balanced(source string) bool {
	depth := 0
	inString := false
	for _, r := range source {
		if inString {
			if r == '"' {
				inString = false
			}
			continue
		}
		switch r {
		case '"':
			inString = true
		case '{', '(':
			depth++
		case '}', ')':
			depth--
		}
	}
	return depth <= 0
}
