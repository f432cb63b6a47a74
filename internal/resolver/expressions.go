package resolver

import "github.com/cwbudde/go-lox/internal/ast"

func (r *Resolver) resolveExpr(expr ast.Expr) {
	switch e := expr.(type) {
	case *ast.Variable:
		if len(r.scopes) > 0 {
			if defined, declared := r.scopes[len(r.scopes)-1][e.Name.Lexeme]; declared && !defined {
				r.error(e.Name.Line, "Can't read local variable in its own initializer.")
			}
		}
		r.resolveLocal(e.ID(), e.Name.Lexeme)
	case *ast.Assign:
		r.resolveExpr(e.Value)
		r.resolveLocal(e.ID(), e.Name.Lexeme)
	case *ast.Binary:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)
	case *ast.Logical:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)
	case *ast.Unary:
		r.resolveExpr(e.Right)
	case *ast.Grouping:
		r.resolveExpr(e.Expression)
	case *ast.Literal:
		// no sub-expressions, no scope interaction
	case *ast.Call:
		r.resolveExpr(e.Callee)
		for _, arg := range e.Arguments {
			r.resolveExpr(arg)
		}
	case *ast.Get:
		r.resolveExpr(e.Object)
	case *ast.Set:
		r.resolveExpr(e.Value)
		r.resolveExpr(e.Object)
	case *ast.This:
		if r.currentCls == classTypeNone {
			r.error(e.Keyword.Line, "Can't use 'this' outside of a class.")
			return
		}
		r.resolveLocal(e.ID(), "this")
	case *ast.Super:
		switch r.currentCls {
		case classTypeNone:
			r.error(e.Keyword.Line, "Can't use 'super' outside of a class.")
		case classTypeTrait:
			r.error(e.Keyword.Line, "Can't use 'super' inside a trait.")
		case classTypeClass:
			r.error(e.Keyword.Line, "Can't use 'super' in a class with no superclass.")
		case classTypeSubclass:
			r.resolveLocal(e.ID(), "super")
		}
	case *ast.Conditional:
		r.resolveExpr(e.Condition)
		r.resolveExpr(e.Then)
		r.resolveExpr(e.Else)
	}
}
