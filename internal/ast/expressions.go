package ast

import "github.com/cwbudde/go-lox/internal/lexer"

// Binary is a binary arithmetic/comparison/equality expression.
type Binary struct {
	exprBase
	Left     Expr
	Operator lexer.Token
	Right    Expr
}

// NewBinary builds a Binary expression with a fresh node identity.
func NewBinary(left Expr, op lexer.Token, right Expr) *Binary {
	return &Binary{exprBase: newExprBase(), Left: left, Operator: op, Right: right}
}

// Logical is `and`/`or`, which short-circuit and never coerce to bool.
type Logical struct {
	exprBase
	Left     Expr
	Operator lexer.Token
	Right    Expr
}

func NewLogical(left Expr, op lexer.Token, right Expr) *Logical {
	return &Logical{exprBase: newExprBase(), Left: left, Operator: op, Right: right}
}

// Unary is `-x` or `!x`.
type Unary struct {
	exprBase
	Operator lexer.Token
	Right    Expr
}

func NewUnary(op lexer.Token, right Expr) *Unary {
	return &Unary{exprBase: newExprBase(), Operator: op, Right: right}
}

// Grouping is a parenthesized expression, kept distinct so the printer can
// round-trip it.
type Grouping struct {
	exprBase
	Expression Expr
}

func NewGrouping(inner Expr) *Grouping {
	return &Grouping{exprBase: newExprBase(), Expression: inner}
}

// Literal is a constant nil / bool / number / string value.
type Literal struct {
	exprBase
	Value any
}

func NewLiteral(value any) *Literal {
	return &Literal{exprBase: newExprBase(), Value: value}
}

// Variable is a bare identifier reference.
type Variable struct {
	exprBase
	Name lexer.Token
}

func NewVariable(name lexer.Token) *Variable {
	return &Variable{exprBase: newExprBase(), Name: name}
}

// Assign is `name = value`.
type Assign struct {
	exprBase
	Name  lexer.Token
	Value Expr
}

func NewAssign(name lexer.Token, value Expr) *Assign {
	return &Assign{exprBase: newExprBase(), Name: name, Value: value}
}

// Call is `callee(args...)`.
type Call struct {
	exprBase
	Callee    Expr
	Paren     lexer.Token
	Arguments []Expr
}

func NewCall(callee Expr, paren lexer.Token, args []Expr) *Call {
	return &Call{exprBase: newExprBase(), Callee: callee, Paren: paren, Arguments: args}
}

// Get is `object.name` (property read).
type Get struct {
	exprBase
	Object Expr
	Name   lexer.Token
}

func NewGet(object Expr, name lexer.Token) *Get {
	return &Get{exprBase: newExprBase(), Object: object, Name: name}
}

// Set is `object.name = value` (property write).
type Set struct {
	exprBase
	Object Expr
	Name   lexer.Token
	Value  Expr
}

func NewSet(object Expr, name lexer.Token, value Expr) *Set {
	return &Set{exprBase: newExprBase(), Object: object, Name: name, Value: value}
}

// This is the `this` keyword inside a method body.
type This struct {
	exprBase
	Keyword lexer.Token
}

func NewThis(keyword lexer.Token) *This {
	return &This{exprBase: newExprBase(), Keyword: keyword}
}

// Super is `super.method`.
type Super struct {
	exprBase
	Keyword lexer.Token
	Method  lexer.Token
}

func NewSuper(keyword, method lexer.Token) *Super {
	return &Super{exprBase: newExprBase(), Keyword: keyword, Method: method}
}

// Conditional is the ternary `cond ? then : else`.
type Conditional struct {
	exprBase
	Condition Expr
	Then      Expr
	Else      Expr
}

func NewConditional(cond, then, els Expr) *Conditional {
	return &Conditional{exprBase: newExprBase(), Condition: cond, Then: then, Else: els}
}
