package internal

type operator string

const (
	opAdd operator = "add"
	opSub operator = "sub"
	opDiv operator = "div"
	opMul operator = "mul"
	opLt  operator = "lt"
	opLte operator = "lte"
	opGt  operator = "gt"
	opGte operator = "gte"
)

var binaryOperators = map[tokenType]operator{
	tkPlus:         opAdd,
	tkMinus:        opSub,
	tkSlash:        opDiv,
	tkStar:         opMul,
	tkLess:         opLt,
	tkLessEqual:    opLte,
	tkGreater:      opGt,
	tkGreaterEqual: opGte,
}

type operatorApply func(arguments ...interface{}) (interface{}, error)

// operable values expose the binary operators they support, bound to
// themselves as the left operand
type operable interface {
	getOperator(op operator) (operatorApply, error)
}

func applyOperator(op operator, left, right interface{}) (interface{}, error) {
	operand, ok := left.(operable)
	if !ok {
		return nil, errUndefinedOp
	}
	apply, err := operand.getOperator(op)
	if err != nil {
		return nil, err
	}
	return apply(right)
}
