package interp

import (
	"math"
	"strings"

	"github.com/cwbudde/go-lox/internal/ast"
	"github.com/cwbudde/go-lox/internal/errors"
	"github.com/cwbudde/go-lox/internal/lexer"
)

func (in *Interpreter) evalUnary(e *ast.Unary) (Value, error) {
	right, err := in.evaluate(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Operator.Type {
	case lexer.MINUS:
		n, ok := right.(float64)
		if !ok {
			return nil, errors.NewRuntimeError(e.Operator, "Operand must be a number.")
		}
		return -n, nil
	case lexer.BANG:
		return !isTruthy(right), nil
	}

	return nil, errors.NewRuntimeError(e.Operator, "Unknown unary operator.")
}

func (in *Interpreter) evalBinary(e *ast.Binary) (Value, error) {
	left, err := in.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := in.evaluate(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Operator.Type {
	case lexer.PLUS:
		return evalAdd(e.Operator, left, right)
	case lexer.MINUS:
		a, b, err := bothNumbers(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return a - b, nil
	case lexer.STAR:
		return evalMultiply(e.Operator, left, right)
	case lexer.SLASH:
		a, b, err := bothNumbers(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		if b == 0 {
			return nil, errors.NewRuntimeError(e.Operator, "Division by zero.")
		}
		return a / b, nil
	case lexer.PERCENT:
		a, b, err := bothNumbers(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		if b == 0 {
			return nil, errors.NewRuntimeError(e.Operator, "Division by zero.")
		}
		return math.Mod(a, b), nil
	case lexer.GREATER:
		a, b, err := bothNumbers(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return a > b, nil
	case lexer.GREATER_EQUAL:
		a, b, err := bothNumbers(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return a >= b, nil
	case lexer.LESS:
		a, b, err := bothNumbers(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return a < b, nil
	case lexer.LESS_EQUAL:
		a, b, err := bothNumbers(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return a <= b, nil
	case lexer.BANG_EQUAL:
		return !isEqual(left, right), nil
	case lexer.EQUAL_EQUAL:
		return isEqual(left, right), nil
	}

	return nil, errors.NewRuntimeError(e.Operator, "Unknown binary operator.")
}

func bothNumbers(tok lexer.Token, left, right Value) (float64, float64, error) {
	a, aok := left.(float64)
	b, bok := right.(float64)
	if !aok || !bok {
		return 0, 0, errors.NewRuntimeError(tok, "Operands must be numbers.")
	}
	return a, b, nil
}

// evalAdd implements the three `+` overloads: number+number, string+string,
// and string+number/number+string concatenation.
func evalAdd(tok lexer.Token, left, right Value) (Value, error) {
	if a, ok := left.(float64); ok {
		if b, ok := right.(float64); ok {
			return a + b, nil
		}
	}
	if _, ok := left.(string); ok {
		switch right.(type) {
		case string, float64:
			return stringify(left) + stringify(right), nil
		}
	}
	if _, ok := right.(string); ok {
		switch left.(type) {
		case string, float64:
			return stringify(left) + stringify(right), nil
		}
	}
	return nil, errors.NewRuntimeError(tok, "Operands must be two numbers or two strings.")
}

// evalMultiply implements number*number and the string*number repetition
// overload (count truncated toward zero).
func evalMultiply(tok lexer.Token, left, right Value) (Value, error) {
	if a, ok := left.(float64); ok {
		if b, ok := right.(float64); ok {
			return a * b, nil
		}
	}
	if s, ok := left.(string); ok {
		if n, ok := right.(float64); ok {
			return strings.Repeat(s, int(n)), nil
		}
	}
	if s, ok := right.(string); ok {
		if n, ok := left.(float64); ok {
			return strings.Repeat(s, int(n)), nil
		}
	}
	return nil, errors.NewRuntimeError(tok, "Operands must be numbers, or a string and a number.")
}
