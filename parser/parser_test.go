package parser

import (
	"strings"
	"testing"

	"github.com/sergev/uvl/lang"
	"github.com/sergev/uvl/token"
)

func mustParse(t *testing.T, src string, opts Options) []Stmt {
	t.Helper()
	stmts, err := ParseString(src, opts)
	if err != nil {
		t.Fatalf("ParseString(%q) returned error: %v", src, err)
	}
	return stmts
}

func TestParseStatements(t *testing.T) {
	src := `
let x = 1;
let mut y = "s";
println x;
{
	y = "t";
}
x + 1;
`
	stmts := mustParse(t, src, Options{SourceName: "main.uvl"})
	if len(stmts) != 5 {
		t.Fatalf("expected 5 statements, got %d", len(stmts))
	}

	let, ok := stmts[0].(*LetStmt)
	if !ok {
		t.Fatalf("expected LetStmt, got %T", stmts[0])
	}
	if let.Name.Lexeme != "x" || let.Mutable {
		t.Fatalf("expected immutable x, got %s mutable=%v", let.Name.Lexeme, let.Mutable)
	}
	if let.Ctx != (lang.Context{SourceName: "main.uvl", Line: 2, Unit: "root"}) {
		t.Fatalf("unexpected context %+v", let.Ctx)
	}

	mutLet, ok := stmts[1].(*LetStmt)
	if !ok || !mutLet.Mutable {
		t.Fatalf("expected mutable let, got %#v", stmts[1])
	}

	if _, ok := stmts[2].(*PrintStmt); !ok {
		t.Fatalf("expected PrintStmt, got %T", stmts[2])
	}

	block, ok := stmts[3].(*BlockStmt)
	if !ok {
		t.Fatalf("expected BlockStmt, got %T", stmts[3])
	}
	if len(block.Stmts) != 1 || block.Ctx.Line != 5 {
		t.Fatalf("unexpected block %+v", block)
	}
	assign, ok := block.Stmts[0].(*ExprStmt).Expr.(*AssignExpr)
	if !ok || assign.Name.Lexeme != "y" {
		t.Fatalf("expected assignment to y inside block, got %s", Sexpr(block.Stmts[0]))
	}

	if _, ok := stmts[4].(*ExprStmt).Expr.(*BinaryExpr); !ok {
		t.Fatalf("expected binary expression statement, got %s", Sexpr(stmts[4]))
	}
}

func TestParsePrecedenceAndAssociativity(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"1 + 2 * 3;", "(expr (+ 1 (* 2 3)))"},
		{"(1 + 2) * 3;", "(expr (* (group (+ 1 2)) 3))"},
		{"1 - 2 - 3;", "(expr (- (- 1 2) 3))"},
		{"8 / 4 / 2;", "(expr (/ (/ 8 4) 2))"},
		{"1 < 2 == 3 >= 4;", "(expr (== (< 1 2) (>= 3 4)))"},
		{"a == b != c;", "(expr (!= (== a b) c))"},
		{"-a * !b;", "(expr (* (- a) (! b)))"},
		{"--1;", "(expr (- (- 1)))"},
		{"a = b = 3;", "(expr (= a (= b 3)))"},
		{"a = 1 + 2;", "(expr (= a (+ 1 2)))"},
		{"true; false; nil; \"s\";", "(expr true)\n(expr false)\n(expr nil)\n(expr \"s\")"},
		{"let mut x = 2.5;", "(let mut x 2.5)"},
		{"println 1;", "(println 1)"},
		{"{ let a = 1; { a; } }", "(block (let a 1) (block (expr a)))"},
		{"{}", "(block)"},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.src, func(t *testing.T) {
			stmts := mustParse(t, tc.src, Options{})
			if got := SexprProgram(stmts); got != tc.want {
				t.Fatalf("Sexpr(%q) = %q, want %q", tc.src, got, tc.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name       string
		src        string
		reason     string
		incomplete bool
	}{
		{"missing-semicolon", "1 + 2", "Expect ';' after expression at end", true},
		{"missing-semicolon-before-token", "1 2;", "Error at '2': Expect ';' after expression", false},
		{"print-missing-semicolon", "println 1 }", "Error at '}': Expect ';' after statement", false},
		{"let-without-identifier", "let = 1;", "Error at '=': Expect identifier after let", false},
		{"let-without-initializer", "let x;", "Error at ';': Expect initialization", false},
		{"let-mut-keyword-name", "let mut let = 1;", "Error at 'let': Expect identifier after let", false},
		{"unclosed-group", "(1 + 2;", "Error at ';': Expect ')' after expression", false},
		{"missing-operand", "1 + ;", "Error at ';': Expect expression", false},
		{"dangling-operator", "1 +", "Expect expression at end", true},
		{"unclosed-block", "{ let x = 1;", "Expect '}' after block at end", true},
		{"invalid-assignment", "1 = 2;", "Error at '=': Invalid assignment value", false},
		{"invalid-grouped-assignment", "(a) = 2;", "Error at '=': Invalid assignment value", false},
		{"stray-brace", "}", "Error at '}': Expect expression", false},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseString(tc.src, Options{SourceName: "bad.uvl"})
			if err == nil {
				t.Fatalf("expected parse error for %q", tc.src)
			}
			if !lang.IsKind(err, lang.ParseError) {
				t.Fatalf("expected ParseError, got %v", err)
			}
			want := "File \"<bad.uvl>\", line 1, in <root>\n    " + tc.reason
			if err.Error() != want {
				t.Fatalf("error = %q, want %q", err.Error(), want)
			}
			if IsIncomplete(err) != tc.incomplete {
				t.Fatalf("IsIncomplete = %v, want %v", IsIncomplete(err), tc.incomplete)
			}
		})
	}
}

func TestParseErrorLine(t *testing.T) {
	_, err := ParseString("let a = 1;\nlet b = ;\n", Options{SourceName: "m"})
	if err == nil || !strings.HasPrefix(err.Error(), `File "<m>", line 2, in <root>`) {
		t.Fatalf("expected error on line 2, got %v", err)
	}
}

func TestParsePromptMode(t *testing.T) {
	stmts := mustParse(t, "let x = 1", Options{Prompt: true})
	if len(stmts) != 1 {
		t.Fatalf("expected one statement, got %d", len(stmts))
	}

	stmts = mustParse(t, "1 + 1; 2 + 2; 3 +", Options{Prompt: true})
	if len(stmts) != 1 || Sexpr(stmts[0]) != "(expr (+ 1 1))" {
		t.Fatalf("expected only the first statement, got %s", SexprProgram(stmts))
	}

	stmts = mustParse(t, "{ let a = 1 a }", Options{Prompt: true})
	if got := SexprProgram(stmts); got != "(block (let a 1) (expr a))" {
		t.Fatalf("expected optional terminators inside block, got %s", got)
	}

	if stmts := mustParse(t, "  \n", Options{Prompt: true}); len(stmts) != 0 {
		t.Fatalf("expected no statements for blank input, got %d", len(stmts))
	}

	_, err := ParseString("{ let a = 1", Options{Prompt: true})
	if err == nil || !IsIncomplete(err) {
		t.Fatalf("expected incomplete error for open block, got %v", err)
	}
}

func TestParseDefaultsAndMissingEOF(t *testing.T) {
	tokens := []token.Token{
		{Type: token.Number, Lexeme: "1", Literal: 1.0, Line: 4},
		token.New(token.Semicolon, ";", 4),
	}
	stmts, err := Parse(tokens, Options{})
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if len(stmts) != 1 {
		t.Fatalf("expected single statement, got %d", len(stmts))
	}
	if ctx := stmts[0].Context(); ctx.SourceName != DefaultSourceName || ctx.Line != 4 {
		t.Fatalf("unexpected default context %+v", ctx)
	}
	if len(tokens) != 2 {
		t.Fatalf("Parse must not modify the caller's slice")
	}

	if stmts, err := Parse(nil, Options{}); err != nil || len(stmts) != 0 {
		t.Fatalf("expected empty program for nil tokens, got %v err=%v", stmts, err)
	}
}
