package interp

import (
	"fmt"
	"strings"

	"github.com/cwbudde/go-lox/internal/errors"
	"github.com/cwbudde/go-lox/internal/lexer"
)

// Array is a fixed-size indexable sequence of Values, created by the
// native Array(n) built-in. It exposes exactly three properties — get, set,
// length — and forbids any other field assignment.
type Array struct {
	elements []Value
}

// NewArray creates an Array of size elements, all initialized to Nil.
func NewArray(size int) *Array {
	return &Array{elements: make([]Value, size)}
}

func (a *Array) Get(name lexer.Token) (Value, error) {
	switch name.Lexeme {
	case "get":
		return &arrayGetCallable{array: a}, nil
	case "set":
		return &arraySetCallable{array: a}, nil
	case "length":
		return float64(len(a.elements)), nil
	}
	return nil, errors.NewRuntimeError(name, "Undefined property '%s'.", name.Lexeme)
}

func (a *Array) Set(name lexer.Token, _ Value) error {
	return errors.NewRuntimeError(name, "Can't add properties to arrays.")
}

func (a *Array) String() string {
	parts := make([]string, len(a.elements))
	for i, e := range a.elements {
		parts[i] = stringify(e)
	}
	return fmt.Sprintf("[%s]", strings.Join(parts, ", "))
}

func (a *Array) index(tok lexer.Token, raw Value) (int, error) {
	n, ok := raw.(float64)
	if !ok {
		return 0, errors.NewRuntimeError(tok, "Array index must be a number.")
	}
	i := int(n)
	if i < 0 || i >= len(a.elements) {
		return 0, errors.NewRuntimeError(tok, "Array index out of bounds.")
	}
	return i, nil
}

type arrayGetCallable struct{ array *Array }

func (c *arrayGetCallable) Arity() int { return 1 }

func (c *arrayGetCallable) Call(_ *Interpreter, args []Value) (Value, error) {
	i, err := c.array.index(lexer.Token{Lexeme: "get"}, args[0])
	if err != nil {
		return nil, err
	}
	return c.array.elements[i], nil
}

func (c *arrayGetCallable) String() string { return "<native fn>" }

type arraySetCallable struct{ array *Array }

func (c *arraySetCallable) Arity() int { return 2 }

func (c *arraySetCallable) Call(_ *Interpreter, args []Value) (Value, error) {
	i, err := c.array.index(lexer.Token{Lexeme: "set"}, args[0])
	if err != nil {
		return nil, err
	}
	c.array.elements[i] = args[1]
	return args[1], nil
}

func (c *arraySetCallable) String() string { return "<native fn>" }
