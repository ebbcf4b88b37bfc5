package lang

import (
	"errors"
	"fmt"
)

// RootUnit names the single logical unit every node belongs to.
const RootUnit = "root"

// Context locates an AST node for diagnostics.
type Context struct {
	SourceName string
	Line       int
	Unit       string
}

// NewContext returns a context in the root unit.
func NewContext(sourceName string, line int) Context {
	return Context{
		SourceName: sourceName,
		Line:       line,
		Unit:       RootUnit,
	}
}

// Diagnostic formats a reason against ctx in the shared two-line layout.
func Diagnostic(ctx Context, reason string) string {
	unit := ctx.Unit
	if unit == "" {
		unit = RootUnit
	}
	return fmt.Sprintf("File \"<%s>\", line %d, in <%s>\n    %s", ctx.SourceName, ctx.Line, unit, reason)
}

// Kind classifies an Error.
type Kind int

const (
	RuntimeError Kind = iota
	UnsupportedOperator
	ParseError
	NameError
	LexError
)

func (k Kind) String() string {
	switch k {
	case RuntimeError:
		return "RuntimeError"
	case UnsupportedOperator:
		return "UnsupportedOperator"
	case ParseError:
		return "ParseError"
	case NameError:
		return "NameError"
	case LexError:
		return "LexError"
	default:
		return "UnknownError"
	}
}

// Error is the single error type produced by every stage of the pipeline.
// Msg holds the fully formatted diagnostic.
type Error struct {
	Kind       Kind
	Msg        string
	Incomplete bool // input ended before the construct was closed
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	return e.Msg
}

// Errorf builds an Error whose message is the diagnostic for ctx.
func Errorf(kind Kind, ctx Context, format string, args ...interface{}) *Error {
	return &Error{
		Kind: kind,
		Msg:  Diagnostic(ctx, fmt.Sprintf(format, args...)),
	}
}

// KindOf extracts the Kind of err. The second result is false when err is
// not an *Error.
func KindOf(err error) (Kind, bool) {
	var lerr *Error
	if errors.As(err, &lerr) {
		return lerr.Kind, true
	}
	return 0, false
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}

// IsIncomplete reports whether err was caused only by input ending early.
func IsIncomplete(err error) bool {
	var lerr *Error
	if errors.As(err, &lerr) {
		return lerr.Incomplete
	}
	return false
}
