package cmd

import (
	"bytes"
	"io"
	"os"
	"testing"
)

// captureStdout redirects os.Stdout for the duration of fn and returns
// everything written to it.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	original := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = original }()

	fn()

	w.Close()
	var buf bytes.Buffer
	io.Copy(&buf, r)
	return buf.String()
}

func TestRunScriptEvalsInlineExpression(t *testing.T) {
	evalExpr = `print 1 + 2 * 3;`
	defer func() { evalExpr = "" }()

	out := captureStdout(t, func() {
		if err := runScript(nil, nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	if out != "7\n" {
		t.Fatalf("got %q, want %q", out, "7\n")
	}
}

func TestRunScriptReportsRuntimeErrorWithExitCode70(t *testing.T) {
	evalExpr = `print 1 / 0;`
	defer func() { evalExpr = "" }()

	err := runScript(nil, nil)
	if err == nil {
		t.Fatalf("expected a runtime error")
	}
	ee, ok := err.(*ExitError)
	if !ok {
		t.Fatalf("expected *ExitError, got %T", err)
	}
	if ee.Code != exitRuntime {
		t.Fatalf("got exit code %d, want %d", ee.Code, exitRuntime)
	}
}

func TestRunScriptMissingFileReportsExitCode66(t *testing.T) {
	evalExpr = ""
	err := runScript(nil, []string{"/nonexistent/path/to/script.lox"})
	if err == nil {
		t.Fatalf("expected an error")
	}
	ee, ok := err.(*ExitError)
	if !ok {
		t.Fatalf("expected *ExitError, got %T", err)
	}
	if ee.Code != exitNoInput {
		t.Fatalf("got exit code %d, want %d", ee.Code, exitNoInput)
	}
}
