package interp

import (
	"fmt"

	"github.com/cwbudde/go-lox/internal/ast"
)

// Function is a user-defined function or method value: an AST declaration
// paired with the environment it closed over at definition time. Binding a
// method to a receiver (see Instance.Get) produces a fresh Function whose
// closure is a new environment layered on top of the original one, with
// `this` defined in it.
type Function struct {
	declaration   *ast.Function
	closure       *Environment
	isInitializer bool
}

func NewFunction(declaration *ast.Function, closure *Environment, isInitializer bool) *Function {
	return &Function{declaration: declaration, closure: closure, isInitializer: isInitializer}
}

// Bind returns a copy of f whose closure additionally defines `this` as
// receiver, so the method body can refer to it. receiver is an *Instance
// for instance methods or a *Class for static (class) methods — both are
// valid values to store in an environment.
func (f *Function) Bind(receiver Value) *Function {
	env := NewEnvironment(f.closure)
	env.Define("this", receiver)
	return NewFunction(f.declaration, env, f.isInitializer)
}

func (f *Function) Arity() int {
	return len(f.declaration.Params)
}

// IsGetter reports whether the declaration has no parameter list, meaning
// property access invokes it immediately instead of returning it.
func (f *Function) IsGetter() bool {
	return f.declaration.IsGetter
}

func (f *Function) Call(interp *Interpreter, args []Value) (Value, error) {
	env := NewEnvironment(f.closure)
	for i, param := range f.declaration.Params {
		env.Define(param.Lexeme, args[i])
	}

	err := interp.executeBlock(f.declaration.Body, env)

	if ret, ok := err.(returnSignal); ok {
		if f.isInitializer {
			return f.closure.GetAt(0, "this"), nil
		}
		return ret.value, nil
	}
	if err != nil {
		return nil, err
	}

	if f.isInitializer {
		return f.closure.GetAt(0, "this"), nil
	}
	return nil, nil
}

func (f *Function) String() string {
	return fmt.Sprintf("<fn %s>", f.declaration.Name.Lexeme)
}
