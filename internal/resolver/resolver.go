// Package resolver performs the single static-analysis pass between parsing
// and interpretation: a preorder walk of the AST that annotates every local
// variable reference with its lexical scope depth, and flags the handful of
// static errors that can only be detected by looking at enclosing scopes
// (illegal `return`/`this`/`super`, self-inheritance, double-declaration,
// reading a name inside its own initializer).
//
// The resolver never evaluates anything; it only tracks which names are in
// scope and at what depth. Its output, the Depths side-table, is consumed
// by the interpreter's variable lookup instead of a runtime
// scope search.
package resolver

import (
	"github.com/cwbudde/go-lox/internal/ast"
)

// Reporter receives static resolution errors.
type Reporter interface {
	Error(line int, message string)
}

type functionType int

const (
	functionTypeNone functionType = iota
	functionTypeFunction
	functionTypeMethod
	functionTypeInitializer
)

type classType int

const (
	classTypeNone classType = iota
	classTypeClass
	classTypeSubclass
	classTypeTrait
)

// scope maps a name to whether it has finished being defined (false while
// only declared, during evaluation of its own initializer).
type scope map[string]bool

// Resolver walks a parsed program and produces a side-table from
// expression identity to lexical depth, consumed by the Interpreter.
type Resolver struct {
	reporter Reporter

	scopes     []scope
	Depths     map[int]int
	currentFn  functionType
	currentCls classType
}

// New creates a Resolver reporting to reporter (which may be nil).
func New(reporter Reporter) *Resolver {
	return &Resolver{
		reporter: reporter,
		Depths:   make(map[int]int),
	}
}

// Resolve runs the pass over a full program.
func (r *Resolver) Resolve(stmts []ast.Stmt) {
	r.resolveStmts(stmts)
}

func (r *Resolver) error(line int, message string) {
	if r.reporter != nil {
		r.reporter.Error(line, message)
	}
}

// --- scope stack -------------------------------------------------------------

func (r *Resolver) beginScope() {
	r.scopes = append(r.scopes, scope{})
}

func (r *Resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

func (r *Resolver) declare(name string, line int) {
	if len(r.scopes) == 0 {
		return
	}
	sc := r.scopes[len(r.scopes)-1]
	if _, exists := sc[name]; exists {
		r.error(line, "Already a variable with this name in this scope.")
	}
	sc[name] = false
}

func (r *Resolver) define(name string) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name] = true
}

// resolveLocal walks outward from the innermost scope looking for name,
// recording the found depth keyed by the expression's stable identity.
// If name is not found in any local scope, no entry is recorded and the
// interpreter will fall back to the global environment.
func (r *Resolver) resolveLocal(exprID int, name string) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name]; ok {
			r.Depths[exprID] = len(r.scopes) - 1 - i
			return
		}
	}
}
