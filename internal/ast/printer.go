package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Print renders a single statement as a parenthesized, Lisp-like textual
// form. It is used by `lox run --ast` and by `lox fmt`.
func Print(s Stmt) string {
	var sb strings.Builder
	printStmt(&sb, s)
	return sb.String()
}

// PrintExpr renders a single expression the same way.
func PrintExpr(e Expr) string {
	var sb strings.Builder
	printExpr(&sb, e)
	return sb.String()
}

func printStmt(sb *strings.Builder, s Stmt) {
	switch n := s.(type) {
	case *Expression:
		parenthesize(sb, "expr", n.Expr)
	case *Print:
		parenthesize(sb, "print", n.Expr)
	case *Var:
		if n.Initializer != nil {
			parenthesize(sb, "var "+n.Name.Lexeme, n.Initializer)
		} else {
			fmt.Fprintf(sb, "(var %s)", n.Name.Lexeme)
		}
	case *Block:
		sb.WriteString("(block")
		for _, st := range n.Statements {
			sb.WriteString(" ")
			printStmt(sb, st)
		}
		sb.WriteString(")")
	case *If:
		sb.WriteString("(if ")
		printExpr(sb, n.Condition)
		sb.WriteString(" ")
		printStmt(sb, n.ThenBranch)
		if n.ElseBranch != nil {
			sb.WriteString(" ")
			printStmt(sb, n.ElseBranch)
		}
		sb.WriteString(")")
	case *While:
		sb.WriteString("(while ")
		printExpr(sb, n.Condition)
		sb.WriteString(" ")
		printStmt(sb, n.Body)
		sb.WriteString(")")
	case *Break:
		sb.WriteString("(break)")
	case *Function:
		kind := "fun"
		if n.IsGetter {
			kind = "getter"
		}
		fmt.Fprintf(sb, "(%s %s (", kind, n.Name.Lexeme)
		for i, p := range n.Params {
			if i > 0 {
				sb.WriteString(" ")
			}
			sb.WriteString(p.Lexeme)
		}
		sb.WriteString(") ")
		for i, st := range n.Body {
			if i > 0 {
				sb.WriteString(" ")
			}
			printStmt(sb, st)
		}
		sb.WriteString(")")
	case *Return:
		if n.Value != nil {
			parenthesize(sb, "return", n.Value)
		} else {
			sb.WriteString("(return)")
		}
	case *Class:
		fmt.Fprintf(sb, "(class %s", n.Name.Lexeme)
		if n.Superclass != nil {
			fmt.Fprintf(sb, " < %s", n.Superclass.Name.Lexeme)
		}
		for _, tr := range n.Traits {
			fmt.Fprintf(sb, " with %s", tr.Name.Lexeme)
		}
		for _, m := range n.Methods {
			sb.WriteString(" ")
			printStmt(sb, m)
		}
		for _, m := range n.ClassMethods {
			sb.WriteString(" class ")
			printStmt(sb, m)
		}
		sb.WriteString(")")
	case *Trait:
		fmt.Fprintf(sb, "(trait %s", n.Name.Lexeme)
		for _, m := range n.Methods {
			sb.WriteString(" ")
			printStmt(sb, m)
		}
		sb.WriteString(")")
	default:
		fmt.Fprintf(sb, "(unknown-stmt %T)", s)
	}
}

func printExpr(sb *strings.Builder, e Expr) {
	switch n := e.(type) {
	case *Binary:
		parenthesize(sb, n.Operator.Lexeme, n.Left, n.Right)
	case *Logical:
		parenthesize(sb, n.Operator.Lexeme, n.Left, n.Right)
	case *Unary:
		parenthesize(sb, n.Operator.Lexeme, n.Right)
	case *Grouping:
		parenthesize(sb, "group", n.Expression)
	case *Literal:
		sb.WriteString(stringifyLiteral(n.Value))
	case *Variable:
		sb.WriteString(n.Name.Lexeme)
	case *Assign:
		parenthesize(sb, "= "+n.Name.Lexeme, n.Value)
	case *Call:
		sb.WriteString("(call ")
		printExpr(sb, n.Callee)
		for _, a := range n.Arguments {
			sb.WriteString(" ")
			printExpr(sb, a)
		}
		sb.WriteString(")")
	case *Get:
		fmt.Fprintf(sb, "(get %s ", n.Name.Lexeme)
		printExpr(sb, n.Object)
		sb.WriteString(")")
	case *Set:
		fmt.Fprintf(sb, "(set %s ", n.Name.Lexeme)
		printExpr(sb, n.Object)
		sb.WriteString(" ")
		printExpr(sb, n.Value)
		sb.WriteString(")")
	case *This:
		sb.WriteString("this")
	case *Super:
		fmt.Fprintf(sb, "(super %s)", n.Method.Lexeme)
	case *Conditional:
		sb.WriteString("(?: ")
		printExpr(sb, n.Condition)
		sb.WriteString(" ")
		printExpr(sb, n.Then)
		sb.WriteString(" ")
		printExpr(sb, n.Else)
		sb.WriteString(")")
	default:
		fmt.Fprintf(sb, "(unknown-expr %T)", e)
	}
}

func parenthesize(sb *strings.Builder, name string, exprs ...Expr) {
	sb.WriteString("(")
	sb.WriteString(name)
	for _, e := range exprs {
		sb.WriteString(" ")
		printExpr(sb, e)
	}
	sb.WriteString(")")
}

func stringifyLiteral(v any) string {
	switch val := v.(type) {
	case nil:
		return "nil"
	case bool:
		return strconv.FormatBool(val)
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64)
	case string:
		return strconv.Quote(val)
	default:
		return fmt.Sprintf("%v", val)
	}
}
