package parser

import (
	"github.com/cwbudde/go-lox/internal/ast"
	"github.com/cwbudde/go-lox/internal/lexer"
)

// declaration is the entry point for each item inside a program or block.
// On a parseError it synchronizes and returns nil, so Parse/block can keep
// going and collect further errors.
func (p *Parser) declaration() ast.Stmt {
	stmt, err := p.declarationOrError()
	if err != nil {
		p.synchronize()
		return nil
	}
	return stmt
}

func (p *Parser) declarationOrError() (ast.Stmt, *parseError) {
	switch {
	case p.match(lexer.CLASS):
		return p.classDeclaration()
	case p.match(lexer.TRAIT):
		return p.traitDeclaration()
	case p.match(lexer.FUN):
		return p.function("function")
	case p.match(lexer.VAR):
		return p.varDeclaration()
	default:
		return p.statement()
	}
}

func (p *Parser) varDeclaration() (ast.Stmt, *parseError) {
	name, err := p.consume(lexer.IDENTIFIER, "Expect variable name.")
	if err != nil {
		return nil, err
	}

	var initializer ast.Expr
	if p.match(lexer.EQUAL) {
		initializer, err = p.expression()
		if err != nil {
			return nil, err
		}
	}

	if _, err := p.consume(lexer.SEMICOLON, "Expect ';' after variable declaration."); err != nil {
		return nil, err
	}
	return &ast.Var{Name: name, Initializer: initializer}, nil
}

// function parses a named function/method body. kind is "function" or
// "method". A method without a following '(' is a getter: it has no
// parameter list and is invoked automatically on property access.
func (p *Parser) function(kind string) (*ast.Function, *parseError) {
	name, err := p.consume(lexer.IDENTIFIER, "Expect "+kind+" name.")
	if err != nil {
		return nil, err
	}

	isGetter := kind == "method" && !p.check(lexer.LEFT_PAREN)

	var params []lexer.Token
	if !isGetter {
		if _, err := p.consume(lexer.LEFT_PAREN, "Expect '(' after "+kind+" name."); err != nil {
			return nil, err
		}
		if !p.check(lexer.RIGHT_PAREN) {
			for {
				if len(params) >= maxArgs {
					p.errorAt(p.peek(), "Can't have more than 255 parameters.")
				}
				param, err := p.consume(lexer.IDENTIFIER, "Expect parameter name.")
				if err != nil {
					return nil, err
				}
				params = append(params, param)
				if !p.match(lexer.COMMA) {
					break
				}
			}
		}
		if _, err := p.consume(lexer.RIGHT_PAREN, "Expect ')' after parameters."); err != nil {
			return nil, err
		}
	}

	if _, err := p.consume(lexer.LEFT_BRACE, "Expect '{' before "+kind+" body."); err != nil {
		return nil, err
	}
	body, err := p.blockBody()
	if err != nil {
		return nil, err
	}

	return &ast.Function{Name: name, Params: params, Body: body, IsGetter: isGetter}, nil
}

func (p *Parser) withClause() ([]*ast.Variable, *parseError) {
	if !p.match(lexer.WITH) {
		return nil, nil
	}
	var traits []*ast.Variable
	for {
		name, err := p.consume(lexer.IDENTIFIER, "Expect trait name.")
		if err != nil {
			return nil, err
		}
		traits = append(traits, ast.NewVariable(name))
		if !p.match(lexer.COMMA) {
			break
		}
	}
	return traits, nil
}

func (p *Parser) classDeclaration() (ast.Stmt, *parseError) {
	name, err := p.consume(lexer.IDENTIFIER, "Expect class name.")
	if err != nil {
		return nil, err
	}

	var superclass *ast.Variable
	if p.match(lexer.LESS) {
		superName, err := p.consume(lexer.IDENTIFIER, "Expect superclass name.")
		if err != nil {
			return nil, err
		}
		superclass = ast.NewVariable(superName)
	}

	traits, err := p.withClause()
	if err != nil {
		return nil, err
	}

	if _, err := p.consume(lexer.LEFT_BRACE, "Expect '{' before class body."); err != nil {
		return nil, err
	}

	var methods, classMethods []*ast.Function
	for !p.check(lexer.RIGHT_BRACE) && !p.isAtEnd() {
		isClassMethod := p.match(lexer.CLASS)
		method, err := p.function("method")
		if err != nil {
			return nil, err
		}
		if isClassMethod {
			classMethods = append(classMethods, method)
		} else {
			methods = append(methods, method)
		}
	}

	if _, err := p.consume(lexer.RIGHT_BRACE, "Expect '}' after class body."); err != nil {
		return nil, err
	}

	return &ast.Class{
		Name:         name,
		Superclass:   superclass,
		Methods:      methods,
		ClassMethods: classMethods,
		Traits:       traits,
	}, nil
}

func (p *Parser) traitDeclaration() (ast.Stmt, *parseError) {
	name, err := p.consume(lexer.IDENTIFIER, "Expect trait name.")
	if err != nil {
		return nil, err
	}

	traits, err := p.withClause()
	if err != nil {
		return nil, err
	}

	if _, err := p.consume(lexer.LEFT_BRACE, "Expect '{' before trait body."); err != nil {
		return nil, err
	}

	var methods []*ast.Function
	for !p.check(lexer.RIGHT_BRACE) && !p.isAtEnd() {
		method, err := p.function("method")
		if err != nil {
			return nil, err
		}
		methods = append(methods, method)
	}

	if _, err := p.consume(lexer.RIGHT_BRACE, "Expect '}' after trait body."); err != nil {
		return nil, err
	}

	return &ast.Trait{Name: name, Traits: traits, Methods: methods}, nil
}
