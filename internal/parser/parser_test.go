package parser

import (
	"testing"

	"github.com/cwbudde/go-lox/internal/ast"
	"github.com/cwbudde/go-lox/internal/lexer"
)

type collectingReporter struct {
	errors []string
}

func (r *collectingReporter) Error(line int, message string) {
	r.errors = append(r.errors, message)
}

func parse(t *testing.T, source string) ([]ast.Stmt, *collectingReporter) {
	t.Helper()
	rep := &collectingReporter{}
	tokens := lexer.New(source, rep).ScanTokens()
	stmts := New(tokens, rep).Parse()
	return stmts, rep
}

func TestParseArithmeticPrecedence(t *testing.T) {
	stmts, rep := parse(t, "print 1 + 2 * 3;")
	if len(rep.errors) != 0 {
		t.Fatalf("unexpected errors: %v", rep.errors)
	}
	if len(stmts) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(stmts))
	}
	printStmt, ok := stmts[0].(*ast.Print)
	if !ok {
		t.Fatalf("expected *ast.Print, got %T", stmts[0])
	}
	got := ast.PrintExpr(printStmt.Expr)
	want := "(+ 1 (* 2 3))"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestForLoopDesugaring(t *testing.T) {
	stmts, rep := parse(t, "for (var i = 0; i < 5; i = i + 1) print i;")
	if len(rep.errors) != 0 {
		t.Fatalf("unexpected errors: %v", rep.errors)
	}
	block, ok := stmts[0].(*ast.Block)
	if !ok || len(block.Statements) != 2 {
		t.Fatalf("expected outer block with init+while, got %#v", stmts[0])
	}
	if _, ok := block.Statements[0].(*ast.Var); !ok {
		t.Errorf("expected first stmt to be the initializer Var, got %T", block.Statements[0])
	}
	whileStmt, ok := block.Statements[1].(*ast.While)
	if !ok {
		t.Fatalf("expected While, got %T", block.Statements[1])
	}
	innerBlock, ok := whileStmt.Body.(*ast.Block)
	if !ok || len(innerBlock.Statements) != 2 {
		t.Fatalf("expected while body to be {print i; i = i + 1;}, got %#v", whileStmt.Body)
	}
}

func TestClassWithSuperclassAndTraits(t *testing.T) {
	stmts, rep := parse(t, `class B < A with T1, T2 {
		init(x) { this.x = x; }
		greet() { print "hi"; }
		class ping() { print "pong"; }
	}`)
	if len(rep.errors) != 0 {
		t.Fatalf("unexpected errors: %v", rep.errors)
	}
	class, ok := stmts[0].(*ast.Class)
	if !ok {
		t.Fatalf("expected *ast.Class, got %T", stmts[0])
	}
	if class.Superclass == nil || class.Superclass.Name.Lexeme != "A" {
		t.Errorf("expected superclass A, got %v", class.Superclass)
	}
	if len(class.Traits) != 2 {
		t.Fatalf("expected 2 traits, got %d", len(class.Traits))
	}
	if len(class.Methods) != 2 {
		t.Fatalf("expected 2 instance methods, got %d", len(class.Methods))
	}
	if len(class.ClassMethods) != 1 || class.ClassMethods[0].Name.Lexeme != "ping" {
		t.Fatalf("expected 1 class method named ping, got %#v", class.ClassMethods)
	}
}

func TestGetterMethodHasNoParams(t *testing.T) {
	stmts, rep := parse(t, `class C { area { return 42; } }`)
	if len(rep.errors) != 0 {
		t.Fatalf("unexpected errors: %v", rep.errors)
	}
	class := stmts[0].(*ast.Class)
	method := class.Methods[0]
	if !method.IsGetter {
		t.Errorf("expected getter method")
	}
	if method.Params != nil {
		t.Errorf("expected nil params on a getter, got %v", method.Params)
	}
}

func TestInvalidAssignmentTargetReportsButContinues(t *testing.T) {
	stmts, rep := parse(t, "1 + 2 = 3; print 1;")
	if len(rep.errors) != 1 {
		t.Fatalf("expected exactly 1 error, got %v", rep.errors)
	}
	// parsing continues past the bad statement to the next one
	found := false
	for _, s := range stmts {
		if _, ok := s.(*ast.Print); ok {
			found = true
		}
	}
	if !found {
		t.Errorf("expected parser to recover and still parse the print statement")
	}
}

func TestTooManyArgumentsReportsNonFatalError(t *testing.T) {
	src := "fun f() {} f("
	for i := 0; i < 256; i++ {
		if i > 0 {
			src += ", "
		}
		src += "1"
	}
	src += ");"

	_, rep := parse(t, src)
	found := false
	for _, e := range rep.errors {
		if e == "at '1': Can't have more than 255 arguments." {
			found = true
		}
	}
	if !found {
		t.Errorf("expected arity-cap error, got %v", rep.errors)
	}
}

func TestTernaryShortCircuitsSyntactically(t *testing.T) {
	stmts, rep := parse(t, "print true ? 1 : 2;")
	if len(rep.errors) != 0 {
		t.Fatalf("unexpected errors: %v", rep.errors)
	}
	printStmt := stmts[0].(*ast.Print)
	if _, ok := printStmt.Expr.(*ast.Conditional); !ok {
		t.Fatalf("expected *ast.Conditional, got %T", printStmt.Expr)
	}
}
