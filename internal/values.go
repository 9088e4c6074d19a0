package internal

import "fmt"

// truthy: only false and nil are falsy
func truthy(value interface{}) bool {
	if value == nil {
		return false
	}
	if b, isBool := value.(loxBool); isBool {
		return bool(b)
	}
	return true
}

// isEqual never coerces, values of different types are never equal.
// Callables compare by identity.
func isEqual(left, right interface{}) bool {
	return left == right
}

func stringify(value interface{}) string {
	if value == nil {
		return "nil"
	}
	if s, ok := value.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%v", value)
}

func repr(value interface{}) string {
	if r, ok := value.(Representable); ok {
		return r.Repr()
	}
	return stringify(value)
}
