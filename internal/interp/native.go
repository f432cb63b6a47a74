package interp

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/cwbudde/go-lox/internal/errors"
	"github.com/cwbudde/go-lox/internal/lexer"
)

// nativeFunc adapts a plain Go function to the Callable interface for the
// built-ins registered into the global environment.
type nativeFunc struct {
	name  string
	arity int
	fn    func(tok lexer.Token, args []Value) (Value, error)
}

func (n *nativeFunc) Arity() int { return n.arity }

func (n *nativeFunc) Call(_ *Interpreter, args []Value) (Value, error) {
	return n.fn(lexer.Token{Lexeme: n.name}, args)
}

func (n *nativeFunc) String() string {
	return fmt.Sprintf("<native fn %s>", n.name)
}

func argNumber(tok lexer.Token, name string, v Value) (float64, error) {
	n, ok := v.(float64)
	if !ok {
		return 0, errors.NewRuntimeError(tok, "Argument to '%s' must be a number.", name)
	}
	return n, nil
}

func defineNatives(env *Environment) {
	define := func(name string, arity int, fn func(tok lexer.Token, args []Value) (Value, error)) {
		env.Define(name, &nativeFunc{name: name, arity: arity, fn: fn})
	}

	define("clock", 0, func(_ lexer.Token, _ []Value) (Value, error) {
		return float64(time.Now().UnixNano()) / 1e9, nil
	})

	define("Array", 1, func(tok lexer.Token, args []Value) (Value, error) {
		n, err := argNumber(tok, "Array", args[0])
		if err != nil {
			return nil, err
		}
		if n < 0 {
			return nil, errors.NewRuntimeError(tok, "Array size must not be negative.")
		}
		return NewArray(int(n)), nil
	})

	define("max", 2, func(tok lexer.Token, args []Value) (Value, error) {
		a, err := argNumber(tok, "max", args[0])
		if err != nil {
			return nil, err
		}
		b, err := argNumber(tok, "max", args[1])
		if err != nil {
			return nil, err
		}
		return math.Max(a, b), nil
	})

	define("min", 2, func(tok lexer.Token, args []Value) (Value, error) {
		a, err := argNumber(tok, "min", args[0])
		if err != nil {
			return nil, err
		}
		b, err := argNumber(tok, "min", args[1])
		if err != nil {
			return nil, err
		}
		return math.Min(a, b), nil
	})

	define("sum", 1, func(tok lexer.Token, args []Value) (Value, error) {
		arr, ok := args[0].(*Array)
		if !ok {
			return nil, errors.NewRuntimeError(tok, "Argument to 'sum' must be an array.")
		}
		total := 0.0
		for _, e := range arr.elements {
			n, err := argNumber(tok, "sum", e)
			if err != nil {
				return nil, err
			}
			total += n
		}
		return total, nil
	})

	unary := func(name string, f func(float64) float64) {
		define(name, 1, func(tok lexer.Token, args []Value) (Value, error) {
			n, err := argNumber(tok, name, args[0])
			if err != nil {
				return nil, err
			}
			return f(n), nil
		})
	}

	unary("abs", math.Abs)
	unary("exp", math.Exp)
	unary("log", math.Log)
	unary("sqrt", math.Sqrt)
	unary("floor", math.Floor)
	unary("ceil", math.Ceil)
	unary("sin", math.Sin)
	unary("cos", math.Cos)
	unary("tanh", math.Tanh)

	define("random", 0, func(_ lexer.Token, _ []Value) (Value, error) {
		return rand.Float64(), nil
	})

	define("randomrange", 2, func(tok lexer.Token, args []Value) (Value, error) {
		lo, err := argNumber(tok, "randomrange", args[0])
		if err != nil {
			return nil, err
		}
		hi, err := argNumber(tok, "randomrange", args[1])
		if err != nil {
			return nil, err
		}
		if hi < lo {
			return nil, errors.NewRuntimeError(tok, "randomrange upper bound must not be less than lower bound.")
		}
		return lo + rand.Float64()*(hi-lo), nil
	})
}
