package interp

import "github.com/cwbudde/go-lox/internal/errors"
import "github.com/cwbudde/go-lox/internal/lexer"

// Class is a runtime class value: a name, an optional superclass, its
// instance methods, and a pointer to a synthesized metaclass whose own
// methods are this class's static (class) methods. A class is callable;
// calling it constructs an Instance and runs `init` on it if present.
type Class struct {
	name       string
	superclass *Class
	methods    map[string]*Function
	metaclass  *Class // nil only for a metaclass itself
}

// NewClass builds a class value. metaclass is nil when this Class is
// itself a metaclass (metaclasses have no class-level methods of their
// own).
func NewClass(name string, superclass *Class, methods map[string]*Function, metaclass *Class) *Class {
	return &Class{name: name, superclass: superclass, methods: methods, metaclass: metaclass}
}

// findMethod searches this class's own methods, then recursively the
// superclass chain (Instance property lookup order, step 2).
func (c *Class) findMethod(name string) *Function {
	if m, ok := c.methods[name]; ok {
		return m
	}
	if c.superclass != nil {
		return c.superclass.findMethod(name)
	}
	return nil
}

// findClassMethod looks up a static method through the metaclass, with no
// further inheritance beyond the metaclass's own method set (
// step 5: the metaclass is constructed fresh per class, from that class's
// own class-method declarations only).
func (c *Class) findClassMethod(name string) *Function {
	if c.metaclass == nil {
		return nil
	}
	return c.metaclass.methods[name]
}

// Get implements class-level (static) property access: M.staticName
// dispatches to the metaclass's methods, bound to the class itself as
// receiver, via the same lookup machinery as instance property access.
func (c *Class) Get(name lexer.Token) (Value, error) {
	if method := c.findClassMethod(name.Lexeme); method != nil {
		return method.Bind(c), nil
	}
	return nil, errors.NewRuntimeError(name, "Undefined property '%s'.", name.Lexeme)
}

func (c *Class) Arity() int {
	if init := c.findMethod("init"); init != nil {
		return init.Arity()
	}
	return 0
}

func (c *Class) Call(interp *Interpreter, args []Value) (Value, error) {
	instance := NewInstance(c)
	if init := c.findMethod("init"); init != nil {
		if _, err := init.Bind(instance).Call(interp, args); err != nil {
			return nil, err
		}
	}
	return instance, nil
}

func (c *Class) String() string {
	return c.name
}
