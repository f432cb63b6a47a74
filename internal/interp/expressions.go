package interp

import (
	"github.com/cwbudde/go-lox/internal/ast"
	"github.com/cwbudde/go-lox/internal/errors"
	"github.com/cwbudde/go-lox/internal/lexer"
)

func (in *Interpreter) evaluate(expr ast.Expr) (Value, error) {
	switch e := expr.(type) {
	case *ast.Literal:
		return e.Value, nil

	case *ast.Grouping:
		return in.evaluate(e.Expression)

	case *ast.Variable:
		return in.lookUpVariable(e.Name, e.ID())

	case *ast.Assign:
		value, err := in.evaluate(e.Value)
		if err != nil {
			return nil, err
		}
		if depth, ok := in.depths[e.ID()]; ok {
			in.env.AssignAt(depth, e.Name, value)
		} else if err := in.globals.Assign(e.Name, value); err != nil {
			return nil, err
		}
		return value, nil

	case *ast.Unary:
		return in.evalUnary(e)

	case *ast.Binary:
		return in.evalBinary(e)

	case *ast.Logical:
		left, err := in.evaluate(e.Left)
		if err != nil {
			return nil, err
		}
		if e.Operator.Type == lexer.OR {
			if isTruthy(left) {
				return left, nil
			}
		} else {
			if !isTruthy(left) {
				return left, nil
			}
		}
		return in.evaluate(e.Right)

	case *ast.Conditional:
		cond, err := in.evaluate(e.Condition)
		if err != nil {
			return nil, err
		}
		if isTruthy(cond) {
			return in.evaluate(e.Then)
		}
		return in.evaluate(e.Else)

	case *ast.Call:
		return in.evalCall(e)

	case *ast.Get:
		obj, err := in.evaluate(e.Object)
		if err != nil {
			return nil, err
		}
		return in.getProperty(obj, e.Name)

	case *ast.Set:
		obj, err := in.evaluate(e.Object)
		if err != nil {
			return nil, err
		}
		value, err := in.evaluate(e.Value)
		if err != nil {
			return nil, err
		}
		if err := in.setProperty(obj, e.Name, value); err != nil {
			return nil, err
		}
		return value, nil

	case *ast.This:
		return in.lookUpVariable(e.Keyword, e.ID())

	case *ast.Super:
		return in.evalSuper(e)
	}

	return nil, errors.NewRuntimeError(lexer.Token{}, "internal error: unhandled expression")
}

func (in *Interpreter) getProperty(obj Value, name lexer.Token) (Value, error) {
	switch v := obj.(type) {
	case *Instance:
		return v.Get(in, name)
	case *Class:
		return v.Get(name)
	case *Array:
		return v.Get(name)
	}
	return nil, errors.NewRuntimeError(name, "Only instances have properties.")
}

func (in *Interpreter) setProperty(obj Value, name lexer.Token, value Value) error {
	switch v := obj.(type) {
	case *Instance:
		v.Set(name, value)
		return nil
	case *Array:
		return v.Set(name, value)
	}
	return errors.NewRuntimeError(name, "Only instances have fields.")
}

func (in *Interpreter) evalCall(e *ast.Call) (Value, error) {
	callee, err := in.evaluate(e.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]Value, len(e.Arguments))
	for i, a := range e.Arguments {
		v, err := in.evaluate(a)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	callable, ok := callee.(Callable)
	if !ok {
		return nil, errors.NewRuntimeError(e.Paren, "Can only call functions and classes.")
	}

	if len(args) != callable.Arity() {
		return nil, errors.NewRuntimeError(e.Paren, "Expected %d arguments but got %d.", callable.Arity(), len(args))
	}

	return callable.Call(in, args)
}

func (in *Interpreter) evalSuper(e *ast.Super) (Value, error) {
	depth := in.depths[e.ID()]
	superVal := in.env.GetAt(depth, "super")
	super, _ := superVal.(*Class)

	instVal := in.env.GetAt(depth-1, "this")
	instance, _ := instVal.(*Instance)

	method := super.findMethod(e.Method.Lexeme)
	if method == nil {
		return nil, errors.NewRuntimeError(e.Method, "Undefined property '%s'.", e.Method.Lexeme)
	}
	return method.Bind(instance), nil
}
