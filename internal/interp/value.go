package interp

import (
	"fmt"
	"strconv"
)

// Value is any runtime value: nil, bool, float64, string, or one of the
// pointer types of this package (*Function, *Class, *Instance, *Array,
// *Trait, and the native callables such as *nativeFunc). Go's untyped nil, bool and float64/string double as the
// Language's Nil/Boolean/Number/String without a wrapper.
type Value = any

// Callable is implemented by every value that can appear on the left of a
// call expression: user functions, classes (construction), and natives.
type Callable interface {
	Arity() int
	Call(interp *Interpreter, args []Value) (Value, error)
	String() string
}

// isTruthy reports Lox-style truthiness: Nil and false are false, everything
// else (including 0 and "") is truthy.
func isTruthy(v Value) bool {
	if v == nil {
		return false
	}
	if b, ok := v.(bool); ok {
		return b
	}
	return true
}

// isEqual is structural for primitives and reference equality for
// everything else (Go's == already does this correctly for the pointer
// types used here).
func isEqual(a, b Value) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	switch av := a.(type) {
	case float64:
		bv, ok := b.(float64)
		return ok && av == bv
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	default:
		return a == b
	}
}

// stringify renders a value the way `print` and string concatenation do.
// Whole numbers print without a decimal point; non-whole numbers print
// their full precision.
func stringify(v Value) string {
	switch val := v.(type) {
	case nil:
		return "nil"
	case bool:
		return strconv.FormatBool(val)
	case float64:
		return formatNumber(val)
	case string:
		return val
	case fmt.Stringer:
		return val.String()
	default:
		return "nil"
	}
}

func formatNumber(f float64) string {
	if f == float64(int64(f)) {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
