// Command lox is the command-line driver for the Language's interpreter:
// run a script file or inline expression, start a REPL, tokenize, or
// pretty-print via the AST printer.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/cwbudde/go-lox/cmd/lox/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		var ee *cmd.ExitError
		if errors.As(err, &ee) {
			fmt.Fprintln(os.Stderr, ee.Err)
			os.Exit(ee.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(64)
	}
}
