package interp_test

import (
	"strings"
	"testing"

	"github.com/cwbudde/go-lox/internal/interp"
	"github.com/cwbudde/go-lox/internal/lexer"
	"github.com/cwbudde/go-lox/internal/parser"
	"github.com/cwbudde/go-lox/internal/resolver"
)

type collectingReporter struct {
	lines []string
}

func (c *collectingReporter) Error(line int, message string) {
	c.lines = append(c.lines, message)
}

// run scans, parses, resolves, and interprets source, returning everything
// printed to standard output and any runtime error message.
func run(t *testing.T, source string) (string, string) {
	t.Helper()

	reporter := &collectingReporter{}

	l := lexer.New(source, reporter)
	tokens := l.ScanTokens()

	p := parser.New(tokens, reporter)
	stmts := p.Parse()
	if len(reporter.lines) > 0 {
		t.Fatalf("unexpected parse errors: %v", reporter.lines)
	}

	res := resolver.New(reporter)
	res.Resolve(stmts)
	if len(reporter.lines) > 0 {
		t.Fatalf("unexpected resolve errors: %v", reporter.lines)
	}

	var out strings.Builder
	in := interp.New(&out)
	if rerr := in.Interpret(stmts, res.Depths); rerr != nil {
		return out.String(), rerr.Message
	}
	return out.String(), ""
}

// runExpectRuntimeError is like run but asserts a runtime error occurred
// and returns its message.
func runExpectRuntimeError(t *testing.T, source string) string {
	t.Helper()
	_, msg := run(t, source)
	if msg == "" {
		t.Fatalf("expected a runtime error, got none")
	}
	return msg
}

func TestArithmeticAndPrint(t *testing.T) {
	out, errMsg := run(t, `print 1 + 2 * 3; print (1 + 2) * 3;`)
	if errMsg != "" {
		t.Fatalf("unexpected runtime error: %s", errMsg)
	}
	want := "7\n9\n"
	if out != want {
		t.Fatalf("got %q, want %q", out, want)
	}
}

func TestClosureCapturesBindingAtDefinitionTime(t *testing.T) {
	out, errMsg := run(t, `var a = "g"; { fun f(){ print a; } var a = "l"; f(); }`)
	if errMsg != "" {
		t.Fatalf("unexpected runtime error: %s", errMsg)
	}
	if out != "g\n" {
		t.Fatalf("got %q, want %q", out, "g\n")
	}
}

func TestClassInheritanceAndSuper(t *testing.T) {
	out, errMsg := run(t, `
		class A { greet(){ print "A"; } }
		class B < A { greet(){ super.greet(); print "B"; } }
		B().greet();
	`)
	if errMsg != "" {
		t.Fatalf("unexpected runtime error: %s", errMsg)
	}
	if out != "A\nB\n" {
		t.Fatalf("got %q, want %q", out, "A\nB\n")
	}
}

func TestInitializerSetsFields(t *testing.T) {
	out, errMsg := run(t, `class P { init(x){ this.x = x; } } var p = P(42); print p.x;`)
	if errMsg != "" {
		t.Fatalf("unexpected runtime error: %s", errMsg)
	}
	if out != "42\n" {
		t.Fatalf("got %q, want %q", out, "42\n")
	}
}

func TestTraitConflictIsRuntimeError(t *testing.T) {
	msg := runExpectRuntimeError(t, `
		trait T1 { m(){ print 1; } }
		trait T2 { m(){ print 2; } }
		class C with T1, T2 {}
	`)
	if !strings.Contains(msg, "Duplicate method 'm'") {
		t.Fatalf("got message %q, want it to mention Duplicate method 'm'", msg)
	}
}

func TestStaticMethodViaMetaclass(t *testing.T) {
	out, errMsg := run(t, `class M { class ping(){ print "pong"; } } M.ping();`)
	if errMsg != "" {
		t.Fatalf("unexpected runtime error: %s", errMsg)
	}
	if out != "pong\n" {
		t.Fatalf("got %q, want %q", out, "pong\n")
	}
}

func TestBreakOutOfForLoop(t *testing.T) {
	out, errMsg := run(t, `for (var i=0; i<5; i=i+1) { if (i==2) break; print i; }`)
	if errMsg != "" {
		t.Fatalf("unexpected runtime error: %s", errMsg)
	}
	if out != "0\n1\n" {
		t.Fatalf("got %q, want %q", out, "0\n1\n")
	}
}

func TestGetterMethodInvokedOnAccess(t *testing.T) {
	out, errMsg := run(t, `class C { area { return 42; } } print C().area;`)
	if errMsg != "" {
		t.Fatalf("unexpected runtime error: %s", errMsg)
	}
	if out != "42\n" {
		t.Fatalf("got %q, want %q", out, "42\n")
	}
}

func TestStringNumberConcatAndIntegerPrint(t *testing.T) {
	out, errMsg := run(t, `print "n=" + 3;`)
	if errMsg != "" {
		t.Fatalf("unexpected runtime error: %s", errMsg)
	}
	if out != "n=3\n" {
		t.Fatalf("got %q, want %q", out, "n=3\n")
	}
}

func TestConcatWithNonStringNonNumberIsRuntimeError(t *testing.T) {
	msg := runExpectRuntimeError(t, `print "x" + true;`)
	if msg != "Operands must be two numbers or two strings." {
		t.Fatalf("got message %q", msg)
	}

	msg = runExpectRuntimeError(t, `print "x" + nil;`)
	if msg != "Operands must be two numbers or two strings." {
		t.Fatalf("got message %q", msg)
	}
}

func TestArityMismatchReportsExpectedAndActual(t *testing.T) {
	msg := runExpectRuntimeError(t, `fun f(a,b){} f(1);`)
	if msg != "Expected 2 arguments but got 1." {
		t.Fatalf("got message %q", msg)
	}
}

func TestArrayGetSetAndLength(t *testing.T) {
	out, errMsg := run(t, `
		var a = Array(3);
		a.set(0, 10);
		a.set(1, 20);
		print a.get(0) + a.get(1);
		print a.length;
	`)
	if errMsg != "" {
		t.Fatalf("unexpected runtime error: %s", errMsg)
	}
	if out != "30\n3\n" {
		t.Fatalf("got %q, want %q", out, "30\n3\n")
	}
}

func TestArrayForbidsArbitraryFieldAssignment(t *testing.T) {
	msg := runExpectRuntimeError(t, `var a = Array(1); a.extra = 1;`)
	if msg != "Can't add properties to arrays." {
		t.Fatalf("got message %q", msg)
	}
}

func TestDivisionByZeroIsRuntimeError(t *testing.T) {
	msg := runExpectRuntimeError(t, `print 1 / 0;`)
	if msg != "Division by zero." {
		t.Fatalf("got message %q", msg)
	}
}

func TestUndefinedPropertyIsRuntimeError(t *testing.T) {
	msg := runExpectRuntimeError(t, `class C {} print C().missing;`)
	if !strings.Contains(msg, "Undefined property") {
		t.Fatalf("got message %q", msg)
	}
}

func TestCallingNonCallableIsRuntimeError(t *testing.T) {
	msg := runExpectRuntimeError(t, `var x = 1; x();`)
	if msg != "Can only call functions and classes." {
		t.Fatalf("got message %q", msg)
	}
}

func TestLogicalOperatorsReturnDecidingOperand(t *testing.T) {
	out, errMsg := run(t, `print nil or "fallback"; print 0 and "kept";`)
	if errMsg != "" {
		t.Fatalf("unexpected runtime error: %s", errMsg)
	}
	if out != "fallback\nkept\n" {
		t.Fatalf("got %q, want %q", out, "fallback\nkept\n")
	}
}

func TestTernaryEvaluatesOnlyChosenBranch(t *testing.T) {
	out, errMsg := run(t, `print true ? "yes" : undefinedName;`)
	if errMsg != "" {
		t.Fatalf("unexpected runtime error: %s", errMsg)
	}
	if out != "yes\n" {
		t.Fatalf("got %q, want %q", out, "yes\n")
	}
}
