package runtime

import (
	"fmt"
	"io"
	"os"

	"github.com/sergev/uvl/lang"
	"github.com/sergev/uvl/parser"
	"github.com/sergev/uvl/token"
)

// Evaluator executes parsed uvl statements.
type Evaluator struct {
	Global *lang.Env

	env *lang.Env
	out io.Writer
}

// NewEvaluator constructs an evaluator rooted at a new global environment.
// A nil out writes println output to os.Stdout.
func NewEvaluator(out io.Writer) *Evaluator {
	if out == nil {
		out = os.Stdout
	}
	global := lang.NewEnv(nil)
	return &Evaluator{
		Global: global,
		env:    global,
		out:    out,
	}
}

// Env returns the current scope frame.
func (ev *Evaluator) Env() *lang.Env {
	return ev.env
}

// Execute runs statements in order and stops at the first error. It
// returns the result of the last statement.
func (ev *Evaluator) Execute(stmts []parser.Stmt) (lang.Value, error) {
	result := lang.Nil
	for _, stmt := range stmts {
		val, err := ev.Exec(stmt)
		if err != nil {
			return lang.Nil, err
		}
		result = val
	}
	return result, nil
}

// Exec runs a single statement. Expression statements yield their value,
// every other statement yields Nil.
func (ev *Evaluator) Exec(stmt parser.Stmt) (lang.Value, error) {
	switch s := stmt.(type) {
	case *parser.ExprStmt:
		return ev.Eval(s.Expr)
	case *parser.PrintStmt:
		return ev.execPrint(s)
	case *parser.LetStmt:
		return ev.execLet(s)
	case *parser.BlockStmt:
		return ev.execBlock(s)
	default:
		return lang.Nil, lang.Errorf(lang.RuntimeError, stmt.Context(), "Unsupported statement %T", stmt)
	}
}

func (ev *Evaluator) execPrint(s *parser.PrintStmt) (lang.Value, error) {
	val, err := ev.Eval(s.Expr)
	if err != nil {
		return lang.Nil, err
	}
	if _, err := fmt.Fprintln(ev.out, val.String()); err != nil {
		return lang.Nil, lang.Errorf(lang.RuntimeError, s.Ctx, "Failed to write output: %v", err)
	}
	return lang.Nil, nil
}

func (ev *Evaluator) execLet(s *parser.LetStmt) (lang.Value, error) {
	name := s.Name.Lexeme
	if ev.env.Contains(name) {
		return lang.Nil, lang.Errorf(lang.NameError, s.Ctx, "Name '%s' has already been declared", name)
	}
	val, err := ev.Eval(s.Init)
	if err != nil {
		return lang.Nil, err
	}
	ev.env.Define(name, s.Mutable, val)
	return lang.Nil, nil
}

func (ev *Evaluator) execBlock(s *parser.BlockStmt) (lang.Value, error) {
	prev := ev.env
	ev.env = prev.Child()
	defer func() { ev.env = prev }()

	for _, stmt := range s.Stmts {
		if _, err := ev.Exec(stmt); err != nil {
			return lang.Nil, err
		}
	}
	return lang.Nil, nil
}

// Eval computes the value of an expression in the current scope.
func (ev *Evaluator) Eval(expr parser.Expr) (lang.Value, error) {
	switch e := expr.(type) {
	case *parser.LiteralExpr:
		return literalValue(e.Token), nil
	case *parser.GroupingExpr:
		return ev.Eval(e.Inner)
	case *parser.UnaryExpr:
		operand, err := ev.Eval(e.Operand)
		if err != nil {
			return lang.Nil, err
		}
		return lang.Unary(e.Ctx, e.Op.Type, operand)
	case *parser.BinaryExpr:
		// Both operands are evaluated before either error is reported.
		left, lerr := ev.Eval(e.Left)
		right, rerr := ev.Eval(e.Right)
		if lerr != nil {
			return lang.Nil, lerr
		}
		if rerr != nil {
			return lang.Nil, rerr
		}
		return lang.Binary(e.Ctx, e.Op.Type, left, right)
	case *parser.VariableExpr:
		b, ok := ev.env.Get(e.Name.Lexeme)
		if !ok {
			return lang.Nil, lang.Errorf(lang.NameError, e.Ctx, "Name '%s' is not defined", e.Name.Lexeme)
		}
		return b.Value, nil
	case *parser.AssignExpr:
		return ev.evalAssign(e)
	default:
		return lang.Nil, lang.Errorf(lang.RuntimeError, expr.Context(), "Unsupported expression %T", expr)
	}
}

// evalAssign returns the value the binding held before the assignment.
func (ev *Evaluator) evalAssign(e *parser.AssignExpr) (lang.Value, error) {
	name := e.Name.Lexeme
	b, ok := ev.env.Get(name)
	if !ok {
		return lang.Nil, lang.Errorf(lang.NameError, e.Ctx, "Name '%s' is not defined", name)
	}
	if !b.Mutable {
		return lang.Nil, lang.Errorf(lang.NameError, e.Ctx, "Name '%s' is immutable", name)
	}
	val, err := ev.Eval(e.Value)
	if err != nil {
		return lang.Nil, err
	}
	ev.env.Assign(name, val)
	return b.Value, nil
}

func literalValue(tok token.Token) lang.Value {
	switch tok.Type {
	case token.String:
		return lang.StringValue(tok.Str())
	case token.Number:
		return lang.NumberValue(tok.Num())
	case token.True:
		return lang.BoolValue(true)
	case token.False:
		return lang.BoolValue(false)
	default:
		return lang.Nil
	}
}
