package lang

import (
	"strconv"
)

// ValueType enumerates the runtime value categories.
type ValueType int

const (
	TypeNil ValueType = iota
	TypeBool
	TypeNumber
	TypeString
)

func (t ValueType) String() string {
	switch t {
	case TypeNil:
		return "Nil"
	case TypeBool:
		return "Bool"
	case TypeNumber:
		return "Number"
	case TypeString:
		return "String"
	default:
		return "Unknown"
	}
}

// Value represents any runtime object in the interpreter. Values carry no
// references and are safe to copy.
type Value struct {
	Type    ValueType
	payload interface{}
}

// Nil is the unit value.
var Nil = Value{Type: TypeNil}

// BoolValue returns the boolean Value equivalent.
func BoolValue(b bool) Value {
	return Value{Type: TypeBool, payload: b}
}

// NumberValue constructs a numeric Value.
func NumberValue(f float64) Value {
	return Value{Type: TypeNumber, payload: f}
}

// StringValue constructs a string Value.
func StringValue(s string) Value {
	return Value{Type: TypeString, payload: s}
}

func (v Value) Bool() bool {
	if b, ok := v.payload.(bool); ok {
		return b
	}
	return false
}

func (v Value) Num() float64 {
	if f, ok := v.payload.(float64); ok {
		return f
	}
	return 0
}

func (v Value) Str() string {
	if s, ok := v.payload.(string); ok {
		return s
	}
	return ""
}

// IsNil reports whether v is the unit value.
func (v Value) IsNil() bool {
	return v.Type == TypeNil
}

// TypeName returns the user-facing name of the value's type.
func (v Value) TypeName() string {
	return v.Type.String()
}

// Equal reports structural equality. Values of different types are never
// equal.
func (v Value) Equal(other Value) bool {
	if v.Type != other.Type {
		return false
	}
	switch v.Type {
	case TypeNil:
		return true
	case TypeBool:
		return v.Bool() == other.Bool()
	case TypeNumber:
		return v.Num() == other.Num()
	case TypeString:
		return v.Str() == other.Str()
	default:
		return false
	}
}

// String returns the display representation used by println and the REPL.
func (v Value) String() string {
	switch v.Type {
	case TypeNil:
		return "()"
	case TypeBool:
		return strconv.FormatBool(v.Bool())
	case TypeNumber:
		return FormatNumber(v.Num())
	case TypeString:
		return `"` + v.Str() + `"`
	default:
		return "<unknown>"
	}
}

// FormatNumber renders f in the shortest decimal form that round-trips,
// never using exponent notation.
func FormatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
