package parser

import (
	"github.com/sergev/uvl/lang"
	"github.com/sergev/uvl/token"
)

// Options control how a token stream is parsed.
type Options struct {
	// SourceName is stamped into every node's context.
	SourceName string
	// Prompt enables interactive mode: statement terminators become
	// optional and parsing stops after the first statement.
	Prompt bool
}

// Parse translates a token stream into statements. It stops at the first
// syntax error.
func Parse(tokens []token.Token, opts Options) ([]Stmt, error) {
	if opts.SourceName == "" {
		opts.SourceName = DefaultSourceName
	}
	if len(tokens) == 0 || tokens[len(tokens)-1].Type != token.EOF {
		line := 1
		if len(tokens) > 0 {
			line = tokens[len(tokens)-1].Line
		}
		tokens = append(tokens[:len(tokens):len(tokens)], token.New(token.EOF, "", line))
	}
	p := &parser{
		tokens: tokens,
		opts:   opts,
	}
	return p.parseProgram()
}

type parser struct {
	tokens []token.Token
	curr   int
	opts   Options
}

func (p *parser) peek() token.Token {
	return p.tokens[p.curr]
}

func (p *parser) previous() token.Token {
	return p.tokens[p.curr-1]
}

func (p *parser) atEnd() bool {
	return p.peek().Type == token.EOF
}

func (p *parser) advance() token.Token {
	if !p.atEnd() {
		p.curr++
	}
	return p.previous()
}

func (p *parser) check(tt token.Type) bool {
	return !p.atEnd() && p.peek().Type == tt
}

func (p *parser) match(types ...token.Type) bool {
	for _, tt := range types {
		if p.check(tt) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *parser) expect(tt token.Type, message string) (token.Token, error) {
	if p.check(tt) {
		return p.advance(), nil
	}
	return token.Token{}, p.errorAt(p.peek(), message)
}

func (p *parser) ctx(tok token.Token) lang.Context {
	return lang.NewContext(p.opts.SourceName, tok.Line)
}

func (p *parser) parseProgram() ([]Stmt, error) {
	var stmts []Stmt
	for !p.atEnd() {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
		if p.opts.Prompt {
			break
		}
	}
	return stmts, nil
}

func (p *parser) parseStatement() (Stmt, error) {
	switch {
	case p.match(token.Let):
		return p.parseLetStmt()
	case p.match(token.Println):
		return p.parsePrintStmt()
	case p.match(token.LeftBrace):
		return p.parseBlock()
	default:
		return p.parseExprStmt()
	}
}

// terminate consumes the statement terminator. In prompt mode it is
// optional.
func (p *parser) terminate(message string) error {
	if p.match(token.Semicolon) || p.opts.Prompt {
		return nil
	}
	return p.errorAt(p.peek(), message)
}

func (p *parser) parseLetStmt() (Stmt, error) {
	mutable := p.match(token.Mut)
	nameTok, err := p.expect(token.Identifier, "Expect identifier after let")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Equal, "Expect initialization"); err != nil {
		return nil, err
	}
	init, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.terminate("Expect ';' after expression"); err != nil {
		return nil, err
	}
	return &LetStmt{
		Ctx:     p.ctx(nameTok),
		Name:    nameTok,
		Mutable: mutable,
		Init:    init,
	}, nil
}

func (p *parser) parsePrintStmt() (Stmt, error) {
	printTok := p.previous()
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.terminate("Expect ';' after statement"); err != nil {
		return nil, err
	}
	return &PrintStmt{
		Ctx:  p.ctx(printTok),
		Expr: expr,
	}, nil
}

func (p *parser) parseBlock() (Stmt, error) {
	braceTok := p.previous()
	var stmts []Stmt
	for !p.check(token.RightBrace) && !p.atEnd() {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	if _, err := p.expect(token.RightBrace, "Expect '}' after block"); err != nil {
		return nil, err
	}
	return &BlockStmt{
		Ctx:   p.ctx(braceTok),
		Stmts: stmts,
	}, nil
}

func (p *parser) parseExprStmt() (Stmt, error) {
	startTok := p.peek()
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.terminate("Expect ';' after expression"); err != nil {
		return nil, err
	}
	return &ExprStmt{
		Ctx:  p.ctx(startTok),
		Expr: expr,
	}, nil
}

func (p *parser) parseExpression() (Expr, error) {
	return p.parseAssignment()
}

func (p *parser) parseAssignment() (Expr, error) {
	expr, err := p.parseEquality()
	if err != nil {
		return nil, err
	}
	if !p.match(token.Equal) {
		return expr, nil
	}
	eqTok := p.previous()
	value, err := p.parseAssignment()
	if err != nil {
		return nil, err
	}
	variable, ok := expr.(*VariableExpr)
	if !ok {
		return nil, p.errorAt(eqTok, "Invalid assignment value")
	}
	return &AssignExpr{
		Ctx:   variable.Ctx,
		Name:  variable.Name,
		Value: value,
	}, nil
}

// parseBinaryLevel parses one left-associative precedence layer.
func (p *parser) parseBinaryLevel(next func() (Expr, error), ops ...token.Type) (Expr, error) {
	left, err := next()
	if err != nil {
		return nil, err
	}
	for p.match(ops...) {
		opTok := p.previous()
		right, err := next()
		if err != nil {
			return nil, err
		}
		left = &BinaryExpr{
			Ctx:   p.ctx(opTok),
			Left:  left,
			Op:    opTok,
			Right: right,
		}
	}
	return left, nil
}

func (p *parser) parseEquality() (Expr, error) {
	return p.parseBinaryLevel(p.parseComparison, token.BangEqual, token.EqualEqual)
}

func (p *parser) parseComparison() (Expr, error) {
	return p.parseBinaryLevel(p.parseTerm,
		token.Greater, token.GreaterEqual, token.Less, token.LessEqual)
}

func (p *parser) parseTerm() (Expr, error) {
	return p.parseBinaryLevel(p.parseFactor, token.Minus, token.Plus)
}

func (p *parser) parseFactor() (Expr, error) {
	return p.parseBinaryLevel(p.parseUnary, token.Slash, token.Star)
}

func (p *parser) parseUnary() (Expr, error) {
	if p.match(token.Bang, token.Minus) {
		opTok := p.previous()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &UnaryExpr{
			Ctx:     p.ctx(opTok),
			Op:      opTok,
			Operand: operand,
		}, nil
	}
	return p.parsePrimary()
}

func (p *parser) parsePrimary() (Expr, error) {
	tok := p.peek()
	switch tok.Type {
	case token.False, token.True, token.Nil, token.Number, token.String:
		p.advance()
		return &LiteralExpr{
			Ctx:   p.ctx(tok),
			Token: tok,
		}, nil
	case token.Identifier:
		p.advance()
		return &VariableExpr{
			Ctx:  p.ctx(tok),
			Name: tok,
		}, nil
	case token.LeftParen:
		p.advance()
		inner, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RightParen, "Expect ')' after expression"); err != nil {
			return nil, err
		}
		return &GroupingExpr{
			Ctx:   p.ctx(tok),
			Inner: inner,
		}, nil
	default:
		return nil, p.errorAt(tok, "Expect expression")
	}
}
