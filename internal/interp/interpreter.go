// Package interp evaluates a resolved program tree: the runtime value
// model (Function, Class, Instance, Trait, Array, native callables) and
// the tree-walking Interpreter that executes statements and evaluates
// expressions directly against the AST, using the resolver's depth
// side-table for variable lookup.
package interp

import (
	"fmt"
	"io"

	"github.com/cwbudde/go-lox/internal/ast"
	"github.com/cwbudde/go-lox/internal/errors"
	"github.com/cwbudde/go-lox/internal/lexer"
)

// Interpreter walks a program's statements, executing each against a chain
// of Environments rooted at globals. A single Interpreter may run several
// top-level programs in sequence (REPL use), sharing globals across them.
type Interpreter struct {
	globals *Environment
	env     *Environment
	depths  map[int]int
	out     io.Writer
}

// New creates an Interpreter that writes `print` output to out, with the
// native built-ins already defined in the global environment.
func New(out io.Writer) *Interpreter {
	globals := NewEnvironment(nil)
	defineNatives(globals)
	return &Interpreter{globals: globals, env: globals, out: out}
}

// Interpret runs one program's statements, using depths produced by the
// resolver pass over the same tree. Depths accumulate across calls, so
// functions defined by an earlier program keep resolving their locals. It
// returns the single fatal RuntimeError if one occurred, or nil on a clean
// run.
func (in *Interpreter) Interpret(stmts []ast.Stmt, depths map[int]int) *errors.RuntimeError {
	if in.depths == nil {
		in.depths = make(map[int]int, len(depths))
	}
	for id, d := range depths {
		in.depths[id] = d
	}
	for _, stmt := range stmts {
		if err := in.execute(stmt); err != nil {
			if re, ok := err.(*errors.RuntimeError); ok {
				return re
			}
			// A return/break signal escaping every enclosing construct is a
			// resolver gap, not a user-facing diagnostic; surface it as an
			// internal error rather than silently dropping it.
			return errors.NewRuntimeError(lexer.Token{Line: 0}, "internal error: %v", err)
		}
	}
	return nil
}

func (in *Interpreter) execute(stmt ast.Stmt) error {
	switch s := stmt.(type) {
	case *ast.Expression:
		_, err := in.evaluate(s.Expr)
		return err

	case *ast.Print:
		v, err := in.evaluate(s.Expr)
		if err != nil {
			return err
		}
		fmt.Fprintln(in.out, stringify(v))
		return nil

	case *ast.Var:
		var value Value
		if s.Initializer != nil {
			v, err := in.evaluate(s.Initializer)
			if err != nil {
				return err
			}
			value = v
		}
		in.env.Define(s.Name.Lexeme, value)
		return nil

	case *ast.Block:
		return in.executeBlock(s.Statements, NewEnvironment(in.env))

	case *ast.If:
		cond, err := in.evaluate(s.Condition)
		if err != nil {
			return err
		}
		if isTruthy(cond) {
			return in.execute(s.ThenBranch)
		}
		if s.ElseBranch != nil {
			return in.execute(s.ElseBranch)
		}
		return nil

	case *ast.While:
		for {
			cond, err := in.evaluate(s.Condition)
			if err != nil {
				return err
			}
			if !isTruthy(cond) {
				return nil
			}
			if err := in.execute(s.Body); err != nil {
				if _, ok := err.(breakSignal); ok {
					return nil
				}
				return err
			}
		}

	case *ast.Break:
		return breakSignal{}

	case *ast.Function:
		fn := NewFunction(s, in.env, false)
		in.env.Define(s.Name.Lexeme, fn)
		return nil

	case *ast.Return:
		var value Value
		if s.Value != nil {
			v, err := in.evaluate(s.Value)
			if err != nil {
				return err
			}
			value = v
		}
		return returnSignal{value: value}

	case *ast.Class:
		return in.executeClass(s)

	case *ast.Trait:
		return in.executeTrait(s)
	}

	return fmt.Errorf("interp: unhandled statement type %T", stmt)
}

// executeBlock runs stmts against env, restoring the interpreter's previous
// environment before returning (including on error/signal propagation).
func (in *Interpreter) executeBlock(stmts []ast.Stmt, env *Environment) error {
	previous := in.env
	in.env = env
	defer func() { in.env = previous }()

	for _, stmt := range stmts {
		if err := in.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

// lookUpVariable resolves name either through the depth side-table (local,
// ) or, absent an entry, the global environment directly.
func (in *Interpreter) lookUpVariable(name lexer.Token, exprID int) (Value, error) {
	if depth, ok := in.depths[exprID]; ok {
		return in.env.GetAt(depth, name.Lexeme), nil
	}
	return in.globals.Get(name)
}
