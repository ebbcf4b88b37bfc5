package parser

import (
	"fmt"

	"github.com/sergev/uvl/lang"
	"github.com/sergev/uvl/token"
)

// errorAt reports a syntax error at tok. Errors at EOF are marked
// incomplete so interactive callers can ask for more input.
func (p *parser) errorAt(tok token.Token, message string) error {
	var reason string
	if tok.Type == token.EOF {
		reason = fmt.Sprintf("%s at end", message)
	} else {
		reason = fmt.Sprintf("Error at '%s': %s", tok.Lexeme, message)
	}
	err := lang.Errorf(lang.ParseError, p.ctx(tok), "%s", reason)
	err.Incomplete = tok.Type == token.EOF
	return err
}

// IsIncomplete reports whether err was caused only by input ending early,
// such as an unterminated string or an unclosed block.
func IsIncomplete(err error) bool {
	return lang.IsIncomplete(err)
}
