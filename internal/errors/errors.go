// Package errors implements the two error axes from the Language's error
// handling design: static errors accumulated across the scan/parse/resolve
// phases (non-fatal individually, but suppress subsequent phases once any
// is recorded) and a single fatal RuntimeError that aborts one interpret()
// call. Internal control-flow signals (return, break) are a third,
// unrelated mechanism and never reach this package.
package errors

import (
	"fmt"
	"strings"

	"github.com/cwbudde/go-lox/internal/lexer"
)

// CompilerError is one static diagnostic, formatted `[line N] Error: ...`,
// with an optional source line appended when available.
type CompilerError struct {
	Line    int
	Message string
	Source  string
	File    string
}

func NewCompilerError(line int, message, source, file string) *CompilerError {
	return &CompilerError{Line: line, Message: message, Source: source, File: file}
}

func (e *CompilerError) Error() string { return e.Format() }

// Format renders the error as `[line N] Error: message`, with the source
// line appended when source text is available.
func (e *CompilerError) Format() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "[line %d] Error: %s", e.Line, e.Message)

	if line := e.sourceLine(); line != "" {
		sb.WriteString("\n")
		fmt.Fprintf(&sb, "%4d | %s", e.Line, line)
	}
	return sb.String()
}

func (e *CompilerError) sourceLine() string {
	if e.Source == "" {
		return ""
	}
	lines := strings.Split(e.Source, "\n")
	if e.Line < 1 || e.Line > len(lines) {
		return ""
	}
	return lines[e.Line-1]
}

// RuntimeError carries the offending token so the driver can report its
// source line; it aborts the current interpret() call but is otherwise
// unrelated to CompilerError — the two distinct error axes.
type RuntimeError struct {
	Token   lexer.Token
	Message string
}

func NewRuntimeError(token lexer.Token, format string, args ...any) *RuntimeError {
	return &RuntimeError{Token: token, Message: fmt.Sprintf(format, args...)}
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%s\n[line %d]", e.Message, e.Token.Line)
}

// Reporter accumulates static errors produced by the scanner, parser, and
// resolver, and tracks whether a runtime error has occurred. A single
// Reporter is shared across all three static phases of one compilation.
type Reporter struct {
	Source string
	File   string

	staticErrors []*CompilerError
	runtimeErr   *RuntimeError
}

func NewReporter(source, file string) *Reporter {
	return &Reporter{Source: source, File: file}
}

// Error implements the lexer.Reporter / parser.Reporter / resolver.Reporter
// interfaces shared by all three static phases.
func (r *Reporter) Error(line int, message string) {
	r.staticErrors = append(r.staticErrors, NewCompilerError(line, message, r.Source, r.File))
}

func (r *Reporter) RuntimeError(err *RuntimeError) {
	r.runtimeErr = err
}

func (r *Reporter) HadError() bool { return len(r.staticErrors) > 0 }

func (r *Reporter) HadRuntimeError() bool { return r.runtimeErr != nil }

func (r *Reporter) StaticErrors() []*CompilerError { return r.staticErrors }

func (r *Reporter) RuntimeErr() *RuntimeError { return r.runtimeErr }

// Reset clears all recorded errors, allowing a Reporter to be reused across
// successive REPL inputs.
func (r *Reporter) Reset() {
	r.staticErrors = nil
	r.runtimeErr = nil
}

// FormatErrors renders every accumulated static error, one per line-group.
func FormatErrors(errs []*CompilerError) string {
	var sb strings.Builder
	for i, e := range errs {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(e.Format())
		sb.WriteString("\n")
	}
	return sb.String()
}
