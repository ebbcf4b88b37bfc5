package token

import "fmt"

// Type enumerates lexical categories recognised by the uvl lexer.
type Type int

const (
	EOF Type = iota

	// Single-character tokens
	LeftParen  // (
	RightParen // )
	LeftBrace  // {
	RightBrace // }
	Comma      // ,
	Dot        // .
	Minus      // -
	Plus       // +
	Semicolon  // ;
	Slash      // /
	Star       // *

	// One or two character tokens
	Bang         // !
	BangEqual    // !=
	Equal        // =
	EqualEqual   // ==
	Greater      // >
	GreaterEqual // >=
	Less         // <
	LessEqual    // <=

	// Literals
	Identifier
	String
	Number

	// Keywords
	And
	Class
	Else
	False
	For
	Fun
	If
	Nil
	Mut
	Or
	Println
	Return
	Super
	This
	True
	Let
	Const
	While
)

var names = [...]string{
	EOF:          "EOF",
	LeftParen:    "(",
	RightParen:   ")",
	LeftBrace:    "{",
	RightBrace:   "}",
	Comma:        ",",
	Dot:          ".",
	Minus:        "-",
	Plus:         "+",
	Semicolon:    ";",
	Slash:        "/",
	Star:         "*",
	Bang:         "!",
	BangEqual:    "!=",
	Equal:        "=",
	EqualEqual:   "==",
	Greater:      ">",
	GreaterEqual: ">=",
	Less:         "<",
	LessEqual:    "<=",
	Identifier:   "identifier",
	String:       "string",
	Number:       "number",
	And:          "and",
	Class:        "class",
	Else:         "else",
	False:        "false",
	For:          "for",
	Fun:          "fun",
	If:           "if",
	Nil:          "nil",
	Mut:          "mut",
	Or:           "or",
	Println:      "println",
	Return:       "return",
	Super:        "super",
	This:         "this",
	True:         "true",
	Let:          "let",
	Const:        "const",
	While:        "while",
}

func (t Type) String() string {
	if t >= 0 && int(t) < len(names) && names[t] != "" {
		return names[t]
	}
	return "unknown"
}

var keywords = map[string]Type{
	"and":     And,
	"class":   Class,
	"else":    Else,
	"false":   False,
	"for":     For,
	"fun":     Fun,
	"if":      If,
	"nil":     Nil,
	"mut":     Mut,
	"or":      Or,
	"println": Println,
	"return":  Return,
	"super":   Super,
	"this":    This,
	"true":    True,
	"let":     Let,
	"const":   Const,
	"while":   While,
}

// Lookup maps an identifier-shaped lexeme to its keyword type, or
// Identifier when the lexeme is not reserved.
func Lookup(lexeme string) Type {
	if tt, ok := keywords[lexeme]; ok {
		return tt
	}
	return Identifier
}

// IsKeyword reports whether t is a reserved word.
func (t Type) IsKeyword() bool {
	return t >= And && t <= While
}

// Token is a single lexical unit produced by the lexer.
type Token struct {
	Type    Type
	Lexeme  string      // exact source text, quotes included for strings
	Literal interface{} // string for String, float64 for Number, nil otherwise
	Line    int
}

// New constructs a token without a literal payload.
func New(tt Type, lexeme string, line int) Token {
	return Token{Type: tt, Lexeme: lexeme, Line: line}
}

// Str returns the decoded payload of a String token.
func (t Token) Str() string {
	if s, ok := t.Literal.(string); ok {
		return s
	}
	return ""
}

// Num returns the decoded payload of a Number token.
func (t Token) Num() float64 {
	if f, ok := t.Literal.(float64); ok {
		return f
	}
	return 0
}

func (t Token) String() string {
	if t.Type == EOF {
		return fmt.Sprintf("EOF@%d", t.Line)
	}
	return fmt.Sprintf("%s %q@%d", t.Type, t.Lexeme, t.Line)
}
