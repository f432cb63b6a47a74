package resolver

import "github.com/cwbudde/go-lox/internal/ast"

func (r *Resolver) resolveStmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		r.resolveStmt(s)
	}
}

func (r *Resolver) resolveStmt(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.Expression:
		r.resolveExpr(s.Expr)
	case *ast.Print:
		r.resolveExpr(s.Expr)
	case *ast.Var:
		r.declare(s.Name.Lexeme, s.Name.Line)
		if s.Initializer != nil {
			r.resolveExpr(s.Initializer)
		}
		r.define(s.Name.Lexeme)
	case *ast.Block:
		r.beginScope()
		r.resolveStmts(s.Statements)
		r.endScope()
	case *ast.If:
		r.resolveExpr(s.Condition)
		r.resolveStmt(s.ThenBranch)
		if s.ElseBranch != nil {
			r.resolveStmt(s.ElseBranch)
		}
	case *ast.While:
		r.resolveExpr(s.Condition)
		r.resolveStmt(s.Body)
	case *ast.Break:
		// Break legality (escaping to an enclosing loop) is a purely
		// syntactic property of the desugared AST and is enforced by the
		// interpreter's unwinding, not by this pass.
	case *ast.Function:
		r.declare(s.Name.Lexeme, s.Name.Line)
		r.define(s.Name.Lexeme)
		r.resolveFunction(s, functionTypeFunction)
	case *ast.Return:
		r.resolveReturn(s)
	case *ast.Class:
		r.resolveClass(s)
	case *ast.Trait:
		r.resolveTrait(s)
	}
}

func (r *Resolver) resolveReturn(s *ast.Return) {
	if r.currentFn == functionTypeNone {
		r.error(s.Keyword.Line, "Can't return from top-level code.")
	}
	if s.Value != nil {
		if r.currentFn == functionTypeInitializer {
			r.error(s.Keyword.Line, "Can't return a value from an initializer.")
		}
		r.resolveExpr(s.Value)
	}
}

// resolveFunction resolves a function/method body in its own scope, with
// parameters declared and defined up front. A getter (no Params) opens a
// scope with no parameter bindings beyond whatever the caller already
// pushed (e.g. `this`).
func (r *Resolver) resolveFunction(fn *ast.Function, kind functionType) {
	enclosingFn := r.currentFn
	r.currentFn = kind

	r.beginScope()
	for _, param := range fn.Params {
		r.declare(param.Lexeme, param.Line)
		r.define(param.Lexeme)
	}
	r.resolveStmts(fn.Body)
	r.endScope()

	r.currentFn = enclosingFn
}

// resolveClass implements the scope discipline for class declarations:
//  1. declare+define the class name in the enclosing scope
//  2. if there's a superclass, open a scope defining `super`
//  3. open a scope defining `this`
//  4. resolve instance methods (init is an INITIALIZER, others are METHOD)
//  5. resolve each class (static) method in its own fresh `this` scope
//  6. close the `this` scope, then the `super` scope if one was opened
func (r *Resolver) resolveClass(s *ast.Class) {
	enclosingCls := r.currentCls
	r.currentCls = classTypeClass

	r.declare(s.Name.Lexeme, s.Name.Line)
	r.define(s.Name.Lexeme)

	if s.Superclass != nil {
		if s.Superclass.Name.Lexeme == s.Name.Lexeme {
			r.error(s.Superclass.Name.Line, "A class can't inherit from itself.")
		}
		r.currentCls = classTypeSubclass
		r.resolveExpr(s.Superclass)

		r.beginScope()
		r.scopes[len(r.scopes)-1]["super"] = true
	}

	for _, trait := range s.Traits {
		r.resolveExpr(trait)
	}

	r.beginScope()
	r.scopes[len(r.scopes)-1]["this"] = true

	for _, method := range s.Methods {
		kind := functionTypeMethod
		if method.Name.Lexeme == "init" {
			kind = functionTypeInitializer
		}
		r.resolveFunction(method, kind)
	}

	for _, method := range s.ClassMethods {
		r.beginScope()
		r.scopes[len(r.scopes)-1]["this"] = true
		r.resolveFunction(method, functionTypeMethod)
		r.endScope()
	}

	r.endScope()

	if s.Superclass != nil {
		r.endScope()
	}

	r.currentCls = enclosingCls
}

func (r *Resolver) resolveTrait(s *ast.Trait) {
	enclosingCls := r.currentCls
	r.currentCls = classTypeTrait

	r.declare(s.Name.Lexeme, s.Name.Line)
	r.define(s.Name.Lexeme)

	for _, trait := range s.Traits {
		r.resolveExpr(trait)
	}

	r.beginScope()
	r.scopes[len(r.scopes)-1]["this"] = true
	for _, method := range s.Methods {
		r.resolveFunction(method, functionTypeMethod)
	}
	r.endScope()

	r.currentCls = enclosingCls
}
