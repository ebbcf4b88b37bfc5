package parser

import (
	"github.com/sergev/uvl/lang"
	"github.com/sergev/uvl/token"
)

// Node represents any AST node. Each node owns a copy of its context.
type Node interface {
	Context() lang.Context
}

// Stmt represents a statement.
type Stmt interface {
	Node
	stmtNode()
}

// Expr represents an expression.
type Expr interface {
	Node
	exprNode()
}

// BinaryExpr represents infix operator application.
type BinaryExpr struct {
	Ctx         lang.Context
	Left, Right Expr
	Op          token.Token
}

func (e *BinaryExpr) Context() lang.Context { return e.Ctx }
func (*BinaryExpr) exprNode()               {}

// GroupingExpr is a parenthesised expression.
type GroupingExpr struct {
	Ctx   lang.Context
	Inner Expr
}

func (e *GroupingExpr) Context() lang.Context { return e.Ctx }
func (*GroupingExpr) exprNode()               {}

// LiteralExpr wraps a number, string, boolean or nil token.
type LiteralExpr struct {
	Ctx   lang.Context
	Token token.Token
}

func (e *LiteralExpr) Context() lang.Context { return e.Ctx }
func (*LiteralExpr) exprNode()               {}

// UnaryExpr represents prefix operator application.
type UnaryExpr struct {
	Ctx     lang.Context
	Op      token.Token
	Operand Expr
}

func (e *UnaryExpr) Context() lang.Context { return e.Ctx }
func (*UnaryExpr) exprNode()               {}

// VariableExpr refers to a binding by name.
type VariableExpr struct {
	Ctx  lang.Context
	Name token.Token
}

func (e *VariableExpr) Context() lang.Context { return e.Ctx }
func (*VariableExpr) exprNode()               {}

// AssignExpr replaces the value of an existing mutable binding.
type AssignExpr struct {
	Ctx   lang.Context
	Name  token.Token
	Value Expr
}

func (e *AssignExpr) Context() lang.Context { return e.Ctx }
func (*AssignExpr) exprNode()               {}

// ExprStmt evaluates an expression for its value or side-effects.
type ExprStmt struct {
	Ctx  lang.Context
	Expr Expr
}

func (s *ExprStmt) Context() lang.Context { return s.Ctx }
func (*ExprStmt) stmtNode()               {}

// PrintStmt writes the display form of an expression followed by a newline.
type PrintStmt struct {
	Ctx  lang.Context
	Expr Expr
}

func (s *PrintStmt) Context() lang.Context { return s.Ctx }
func (*PrintStmt) stmtNode()               {}

// LetStmt declares a binding in the current scope.
type LetStmt struct {
	Ctx     lang.Context
	Name    token.Token
	Mutable bool
	Init    Expr
}

func (s *LetStmt) Context() lang.Context { return s.Ctx }
func (*LetStmt) stmtNode()               {}

// BlockStmt is a braced sequence executed in a fresh child scope.
type BlockStmt struct {
	Ctx   lang.Context
	Stmts []Stmt
}

func (s *BlockStmt) Context() lang.Context { return s.Ctx }
func (*BlockStmt) stmtNode()               {}
