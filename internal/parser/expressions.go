package parser

import (
	"github.com/cwbudde/go-lox/internal/ast"
	"github.com/cwbudde/go-lox/internal/lexer"
)

func (p *Parser) expression() (ast.Expr, *parseError) {
	return p.conditional()
}

func (p *Parser) conditional() (ast.Expr, *parseError) {
	expr, err := p.assignment()
	if err != nil {
		return nil, err
	}

	if p.match(lexer.QUESTION) {
		then, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(lexer.COLON, "Expect ':' after then branch of conditional expression."); err != nil {
			return nil, err
		}
		els, err := p.conditional()
		if err != nil {
			return nil, err
		}
		return ast.NewConditional(expr, then, els), nil
	}

	return expr, nil
}

// assignment handles `target = value`, where target must resolve to a
// Variable or Get expression (checked after the fact so a malformed target
// is reported without aborting the rest of the parse).
func (p *Parser) assignment() (ast.Expr, *parseError) {
	expr, err := p.or()
	if err != nil {
		return nil, err
	}

	if p.match(lexer.EQUAL) {
		equals := p.previous()
		value, err := p.assignment()
		if err != nil {
			return nil, err
		}

		switch target := expr.(type) {
		case *ast.Variable:
			return ast.NewAssign(target.Name, value), nil
		case *ast.Get:
			return ast.NewSet(target.Object, target.Name, value), nil
		default:
			p.errorAt(equals, "Invalid assignment target.")
			return expr, nil
		}
	}

	return expr, nil
}

func (p *Parser) or() (ast.Expr, *parseError) {
	expr, err := p.and()
	if err != nil {
		return nil, err
	}
	for p.match(lexer.OR) {
		op := p.previous()
		right, err := p.and()
		if err != nil {
			return nil, err
		}
		expr = ast.NewLogical(expr, op, right)
	}
	return expr, nil
}

func (p *Parser) and() (ast.Expr, *parseError) {
	expr, err := p.equality()
	if err != nil {
		return nil, err
	}
	for p.match(lexer.AND) {
		op := p.previous()
		right, err := p.equality()
		if err != nil {
			return nil, err
		}
		expr = ast.NewLogical(expr, op, right)
	}
	return expr, nil
}

func (p *Parser) equality() (ast.Expr, *parseError) {
	expr, err := p.comparison()
	if err != nil {
		return nil, err
	}
	for p.match(lexer.BANG_EQUAL, lexer.EQUAL_EQUAL) {
		op := p.previous()
		right, err := p.comparison()
		if err != nil {
			return nil, err
		}
		expr = ast.NewBinary(expr, op, right)
	}
	return expr, nil
}

func (p *Parser) comparison() (ast.Expr, *parseError) {
	expr, err := p.term()
	if err != nil {
		return nil, err
	}
	for p.match(lexer.GREATER, lexer.GREATER_EQUAL, lexer.LESS, lexer.LESS_EQUAL) {
		op := p.previous()
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		expr = ast.NewBinary(expr, op, right)
	}
	return expr, nil
}

func (p *Parser) term() (ast.Expr, *parseError) {
	expr, err := p.factor()
	if err != nil {
		return nil, err
	}
	for p.match(lexer.PLUS, lexer.MINUS) {
		op := p.previous()
		right, err := p.factor()
		if err != nil {
			return nil, err
		}
		expr = ast.NewBinary(expr, op, right)
	}
	return expr, nil
}

func (p *Parser) factor() (ast.Expr, *parseError) {
	expr, err := p.unary()
	if err != nil {
		return nil, err
	}
	for p.match(lexer.STAR, lexer.SLASH, lexer.PERCENT) {
		op := p.previous()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		expr = ast.NewBinary(expr, op, right)
	}
	return expr, nil
}

func (p *Parser) unary() (ast.Expr, *parseError) {
	if p.match(lexer.BANG, lexer.MINUS) {
		op := p.previous()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		return ast.NewUnary(op, right), nil
	}
	return p.call()
}

func (p *Parser) call() (ast.Expr, *parseError) {
	expr, err := p.primary()
	if err != nil {
		return nil, err
	}

	for {
		switch {
		case p.match(lexer.LEFT_PAREN):
			expr, err = p.finishCall(expr)
			if err != nil {
				return nil, err
			}
		case p.match(lexer.DOT):
			name, err := p.consume(lexer.IDENTIFIER, "Expect property name after '.'.")
			if err != nil {
				return nil, err
			}
			expr = ast.NewGet(expr, name)
		default:
			return expr, nil
		}
	}
}

func (p *Parser) finishCall(callee ast.Expr) (ast.Expr, *parseError) {
	var args []ast.Expr
	if !p.check(lexer.RIGHT_PAREN) {
		for {
			if len(args) >= maxArgs {
				p.errorAt(p.peek(), "Can't have more than 255 arguments.")
			}
			arg, err := p.expression()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if !p.match(lexer.COMMA) {
				break
			}
		}
	}

	paren, err := p.consume(lexer.RIGHT_PAREN, "Expect ')' after arguments.")
	if err != nil {
		return nil, err
	}
	return ast.NewCall(callee, paren, args), nil
}

func (p *Parser) primary() (ast.Expr, *parseError) {
	switch {
	case p.match(lexer.FALSE):
		return ast.NewLiteral(false), nil
	case p.match(lexer.TRUE):
		return ast.NewLiteral(true), nil
	case p.match(lexer.NIL):
		return ast.NewLiteral(nil), nil
	case p.match(lexer.NUMBER, lexer.STRING):
		return ast.NewLiteral(p.previous().Literal), nil
	case p.match(lexer.SUPER):
		keyword := p.previous()
		if _, err := p.consume(lexer.DOT, "Expect '.' after 'super'."); err != nil {
			return nil, err
		}
		method, err := p.consume(lexer.IDENTIFIER, "Expect superclass method name.")
		if err != nil {
			return nil, err
		}
		return ast.NewSuper(keyword, method), nil
	case p.match(lexer.THIS):
		return ast.NewThis(p.previous()), nil
	case p.match(lexer.IDENTIFIER):
		return ast.NewVariable(p.previous()), nil
	case p.match(lexer.LEFT_PAREN):
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(lexer.RIGHT_PAREN, "Expect ')' after expression."); err != nil {
			return nil, err
		}
		return ast.NewGrouping(expr), nil
	}

	return nil, p.errorAt(p.peek(), "Expect expression.")
}
