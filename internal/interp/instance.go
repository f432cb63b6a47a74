package interp

import (
	"fmt"

	"github.com/cwbudde/go-lox/internal/errors"
	"github.com/cwbudde/go-lox/internal/lexer"
)

// Instance is a value produced by calling a Class: an own-fields map plus a
// reference to its class for method delegation.
type Instance struct {
	class  *Class
	fields map[string]Value
}

func NewInstance(class *Class) *Instance {
	return &Instance{class: class, fields: make(map[string]Value)}
}

// Get implements property read: own fields first, then a bound
// method from the class/superclass chain. A getter method (no parameter
// list) is invoked immediately with zero arguments instead of being
// returned as a callable.
func (i *Instance) Get(interp *Interpreter, name lexer.Token) (Value, error) {
	if v, ok := i.fields[name.Lexeme]; ok {
		return v, nil
	}

	if method := i.class.findMethod(name.Lexeme); method != nil {
		bound := method.Bind(i)
		if bound.IsGetter() {
			return bound.Call(interp, nil)
		}
		return bound, nil
	}

	return nil, errors.NewRuntimeError(name, "Undefined property '%s'.", name.Lexeme)
}

// Set assigns (creating if absent) a field on the instance.
func (i *Instance) Set(name lexer.Token, value Value) {
	i.fields[name.Lexeme] = value
}

func (i *Instance) String() string {
	return fmt.Sprintf("%s instance", i.class.name)
}
