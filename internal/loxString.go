package internal

type loxString string

// Representable object that has a source-like representation
type Representable interface {
	Repr() string
}

var stringBinaryOperations = map[operator]func(x, y loxString) interface{}{
	opAdd: func(x, y loxString) interface{} {
		return x + y
	},
}

func (s loxString) getOperator(op operator) (operatorApply, error) {
	if apply, ok := stringBinaryOperations[op]; ok {
		return func(arguments ...interface{}) (interface{}, error) {
			y, ok := arguments[0].(loxString)
			if !ok {
				return nil, errExpectedString
			}
			return apply(s, y), nil
		}, nil
	}
	return nil, errUndefinedOp
}

func (s loxString) String() string {
	return string(s)
}

func (s loxString) Repr() string {
	return "\"" + string(s) + "\""
}
