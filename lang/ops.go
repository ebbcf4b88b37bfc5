package lang

import (
	"github.com/sergev/uvl/token"
)

// Binary applies a binary operator to a pair of values. The result depends
// only on the operator and the operand types.
func Binary(ctx Context, op token.Type, lhs, rhs Value) (Value, error) {
	switch op {
	case token.EqualEqual:
		return BoolValue(lhs.Equal(rhs)), nil
	case token.BangEqual:
		return BoolValue(!lhs.Equal(rhs)), nil
	}

	if lhs.Type == TypeNumber && rhs.Type == TypeNumber {
		a, b := lhs.Num(), rhs.Num()
		switch op {
		case token.Plus:
			return NumberValue(a + b), nil
		case token.Minus:
			return NumberValue(a - b), nil
		case token.Star:
			return NumberValue(a * b), nil
		case token.Slash:
			if b == 0 {
				return Value{}, Errorf(RuntimeError, ctx, "Division by zero: %s/%s", FormatNumber(a), FormatNumber(b))
			}
			return NumberValue(a / b), nil
		case token.Greater:
			return BoolValue(a > b), nil
		case token.GreaterEqual:
			return BoolValue(a >= b), nil
		case token.Less:
			return BoolValue(a < b), nil
		case token.LessEqual:
			return BoolValue(a <= b), nil
		}
	}

	if op == token.Plus && lhs.Type == TypeString && rhs.Type == TypeString {
		return StringValue(lhs.Str() + rhs.Str()), nil
	}

	if !isBinaryOperator(op) {
		return Value{}, Errorf(UnsupportedOperator, ctx, "Unsupported operator '%s'", op)
	}
	return Value{}, Errorf(UnsupportedOperator, ctx,
		"Operator '%s' is not supported for %s of type %s and %s of type %s",
		op, lhs, lhs.TypeName(), rhs, rhs.TypeName())
}

// Unary applies a prefix operator. Only numeric negation is defined.
func Unary(ctx Context, op token.Type, operand Value) (Value, error) {
	if op == token.Minus && operand.Type == TypeNumber {
		return NumberValue(-operand.Num()), nil
	}
	if op != token.Minus && op != token.Bang {
		return Value{}, Errorf(UnsupportedOperator, ctx, "Unsupported operator '%s'", op)
	}
	return Value{}, Errorf(UnsupportedOperator, ctx,
		"Operator '%s' is not supported for %s of type %s", op, operand, operand.TypeName())
}

func isBinaryOperator(op token.Type) bool {
	switch op {
	case token.Plus, token.Minus, token.Star, token.Slash,
		token.Greater, token.GreaterEqual, token.Less, token.LessEqual,
		token.EqualEqual, token.BangEqual:
		return true
	}
	return false
}
