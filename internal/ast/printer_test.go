package ast

import (
	"testing"

	"github.com/cwbudde/go-lox/internal/lexer"
)

func TestPrintExprBinary(t *testing.T) {
	expr := NewBinary(
		NewLiteral(1.0),
		lexer.Token{Type: lexer.PLUS, Lexeme: "+", Line: 1},
		NewLiteral(2.0),
	)
	got := PrintExpr(expr)
	want := "(+ 1 2)"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestPrintStmtVar(t *testing.T) {
	stmt := &Var{Name: lexer.Token{Lexeme: "a"}, Initializer: NewLiteral("g")}
	got := Print(stmt)
	want := `(var a "g")`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEveryExpressionHasStableID(t *testing.T) {
	a := NewVariable(lexer.Token{Lexeme: "x"})
	b := NewVariable(lexer.Token{Lexeme: "y"})
	if a.ID() == b.ID() {
		t.Fatalf("expected distinct node identities, both got %d", a.ID())
	}
	if a.ID() != a.ID() {
		t.Fatalf("expected stable identity across calls")
	}
}
