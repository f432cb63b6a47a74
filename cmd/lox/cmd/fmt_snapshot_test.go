package cmd

import (
	"strings"
	"testing"

	langerrors "github.com/cwbudde/go-lox/internal/errors"

	"github.com/cwbudde/go-lox/internal/ast"
	"github.com/gkampitakis/go-snaps/snaps"
)

// TestFmtSnapshotClassWithTraitsAndSuper locks down the AST printer's
// output for a representative program exercising inheritance, traits, and
// control flow, so accidental changes to printer formatting are caught.
func TestFmtSnapshotClassWithTraitsAndSuper(t *testing.T) {
	source := `
trait Greeter {
	greet() { print "hi"; }
}

class Animal {
	init(name) { this.name = name; }
	speak() { print this.name; }
}

class Dog < Animal with Greeter {
	speak() {
		super.speak();
		print "woof";
	}
}

var d = Dog("Rex");
for (var i = 0; i < 3; i = i + 1) {
	if (i == 1) { d.speak(); } else { print i; }
}
`
	reporter := langerrors.NewReporter(source, "<snapshot>")
	stmts, _, err := compile(source, reporter)
	if err != nil {
		t.Fatalf("unexpected compile error: %v", err)
	}

	var sb strings.Builder
	for _, s := range stmts {
		sb.WriteString(ast.Print(s))
		sb.WriteString("\n")
	}

	snaps.MatchSnapshot(t, sb.String())
}
