package interp

import (
	"github.com/cwbudde/go-lox/internal/ast"
	"github.com/cwbudde/go-lox/internal/errors"
)

// executeClass evaluates the optional superclass, builds the metaclass from
// class (static) methods, flattens traits, overlays instance methods on top
// (instance methods shadow trait methods), and assigns the finished Class to
// its name.
func (in *Interpreter) executeClass(s *ast.Class) error {
	var superclass *Class
	if s.Superclass != nil {
		v, err := in.evaluate(s.Superclass)
		if err != nil {
			return err
		}
		sc, ok := v.(*Class)
		if !ok {
			return errors.NewRuntimeError(s.Superclass.Name, "Superclass must be a class.")
		}
		superclass = sc
	}

	in.env.Define(s.Name.Lexeme, nil)

	methodEnv := in.env
	if superclass != nil {
		methodEnv = NewEnvironment(in.env)
		methodEnv.Define("super", superclass)
	}

	// Static methods are resolved inside an extra, otherwise-empty `this`
	// scope (they get their own fresh `this` bound at call time via Bind),
	// so their closure needs one more layer than instance methods do.
	classMethodClosure := NewEnvironment(methodEnv)
	classMethods := make(map[string]*Function, len(s.ClassMethods))
	for _, m := range s.ClassMethods {
		classMethods[m.Name.Lexeme] = NewFunction(m, classMethodClosure, false)
	}
	metaclass := NewClass(s.Name.Lexeme+" metaclass", nil, classMethods, nil)

	methods, err := in.applyTraits(s.Traits, methodEnv)
	if err != nil {
		return err
	}

	for _, m := range s.Methods {
		methods[m.Name.Lexeme] = NewFunction(m, methodEnv, m.Name.Lexeme == "init")
	}

	class := NewClass(s.Name.Lexeme, superclass, methods, metaclass)
	in.env.Define(s.Name.Lexeme, class)
	return nil
}

// executeTrait flattens super-traits, overlays own methods erroring on any
// collision with a trait-supplied name, and builds the Trait value.
func (in *Interpreter) executeTrait(s *ast.Trait) error {
	in.env.Define(s.Name.Lexeme, nil)

	methods, err := in.applyTraits(s.Traits, in.env)
	if err != nil {
		return err
	}

	for _, m := range s.Methods {
		if _, exists := methods[m.Name.Lexeme]; exists {
			return errors.NewRuntimeError(m.Name, "Duplicate method '%s'.", m.Name.Lexeme)
		}
		methods[m.Name.Lexeme] = NewFunction(m, in.env, false)
	}

	in.env.Define(s.Name.Lexeme, NewTrait(s.Name.Lexeme, methods))
	return nil
}

// applyTraits evaluates each trait expression (must yield a Trait value),
// merging their methods into one map with a runtime error on any name
// collision across composed traits.
func (in *Interpreter) applyTraits(traits []*ast.Variable, env *Environment) (map[string]*Function, error) {
	combined := make(map[string]*Function)

	previous := in.env
	in.env = env
	defer func() { in.env = previous }()

	for _, t := range traits {
		v, err := in.evaluate(t)
		if err != nil {
			return nil, err
		}
		trait, ok := v.(*Trait)
		if !ok {
			return nil, errors.NewRuntimeError(t.Name, "Traits can only be composed from traits.")
		}
		for name, method := range trait.methods {
			if _, exists := combined[name]; exists {
				return nil, errors.NewRuntimeError(t.Name, "Duplicate method '%s'.", name)
			}
			combined[name] = method
		}
	}

	return combined, nil
}
