package interp

import (
	"github.com/cwbudde/go-lox/internal/errors"
	"github.com/cwbudde/go-lox/internal/lexer"
)

// Environment is one lexical scope: a mapping of names to values plus an
// optional link to the enclosing scope. Environments form a tree rooted at
// globals; a closure or call frame keeps its environment alive by holding a
// reference to it, so lifetimes are managed by ordinary Go garbage
// collection rather than manual scoping.
type Environment struct {
	enclosing *Environment
	values    map[string]any
}

// NewEnvironment creates a new scope. enclosing is nil for the global
// environment.
func NewEnvironment(enclosing *Environment) *Environment {
	return &Environment{enclosing: enclosing, values: make(map[string]any)}
}

// Define binds name to value in this environment, declaring it if new or
// overwriting it if already present (re-declaring `var x` at the same
// scope is legal; the resolver only forbids it statically in blocks).
func (e *Environment) Define(name string, value any) {
	e.values[name] = value
}

// Get looks up name in this environment or any enclosing one.
func (e *Environment) Get(name lexer.Token) (any, error) {
	if v, ok := e.values[name.Lexeme]; ok {
		return v, nil
	}
	if e.enclosing != nil {
		return e.enclosing.Get(name)
	}
	return nil, errors.NewRuntimeError(name, "Undefined variable '%s'.", name.Lexeme)
}

// Assign updates an existing binding for name, searching outward. Assigning
// to an undeclared name is a runtime error (the Language has no implicit
// globals on assignment).
func (e *Environment) Assign(name lexer.Token, value any) error {
	if _, ok := e.values[name.Lexeme]; ok {
		e.values[name.Lexeme] = value
		return nil
	}
	if e.enclosing != nil {
		return e.enclosing.Assign(name, value)
	}
	return errors.NewRuntimeError(name, "Undefined variable '%s'.", name.Lexeme)
}

// ancestor walks exactly depth enclosing links.
func (e *Environment) ancestor(depth int) *Environment {
	env := e
	for i := 0; i < depth; i++ {
		env = env.enclosing
	}
	return env
}

// GetAt and AssignAt are used by the interpreter for variable references
// the resolver has annotated with a known depth ('s Environment
// invariants).
func (e *Environment) GetAt(depth int, name string) any {
	return e.ancestor(depth).values[name]
}

func (e *Environment) AssignAt(depth int, name lexer.Token, value any) {
	e.ancestor(depth).values[name.Lexeme] = value
}
