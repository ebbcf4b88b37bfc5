package parser

import (
	"strings"

	"github.com/sergev/uvl/lang"
	"github.com/sergev/uvl/token"
)

// Sexpr renders a node in parenthesised prefix form, e.g. (+ 1 (* 2 3)).
func Sexpr(node Node) string {
	var b strings.Builder
	writeSexpr(&b, node)
	return b.String()
}

// SexprProgram renders statements one per line.
func SexprProgram(stmts []Stmt) string {
	lines := make([]string, len(stmts))
	for i, stmt := range stmts {
		lines[i] = Sexpr(stmt)
	}
	return strings.Join(lines, "\n")
}

func writeSexpr(b *strings.Builder, node Node) {
	switch n := node.(type) {
	case *BinaryExpr:
		writeList(b, n.Op.Lexeme, n.Left, n.Right)
	case *GroupingExpr:
		writeList(b, "group", n.Inner)
	case *LiteralExpr:
		b.WriteString(literalText(n.Token))
	case *UnaryExpr:
		writeList(b, n.Op.Lexeme, n.Operand)
	case *VariableExpr:
		b.WriteString(n.Name.Lexeme)
	case *AssignExpr:
		writeList(b, "= "+n.Name.Lexeme, n.Value)
	case *ExprStmt:
		writeList(b, "expr", n.Expr)
	case *PrintStmt:
		writeList(b, "println", n.Expr)
	case *LetStmt:
		head := "let "
		if n.Mutable {
			head += "mut "
		}
		writeList(b, head+n.Name.Lexeme, n.Init)
	case *BlockStmt:
		children := make([]Node, len(n.Stmts))
		for i, stmt := range n.Stmts {
			children[i] = stmt
		}
		writeList(b, "block", children...)
	case nil:
		b.WriteString("<nil>")
	default:
		b.WriteString("<unknown>")
	}
}

func writeList(b *strings.Builder, head string, children ...Node) {
	b.WriteByte('(')
	b.WriteString(head)
	for _, child := range children {
		b.WriteByte(' ')
		writeSexpr(b, child)
	}
	b.WriteByte(')')
}

func literalText(tok token.Token) string {
	switch tok.Type {
	case token.Number:
		return lang.FormatNumber(tok.Num())
	case token.String:
		return `"` + tok.Str() + `"`
	default:
		return tok.Lexeme
	}
}
