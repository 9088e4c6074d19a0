package internal

import (
	"math"
	"strconv"
)

type loxNumber float64

var numberBinaryOperations = map[operator]func(x, y loxNumber) interface{}{
	opAdd: func(x, y loxNumber) interface{} {
		return x + y
	},
	opSub: func(x, y loxNumber) interface{} {
		return x - y
	},
	opDiv: func(x, y loxNumber) interface{} {
		return x / y
	},
	opMul: func(x, y loxNumber) interface{} {
		return x * y
	},
	opLt: func(x, y loxNumber) interface{} {
		return loxBool(x < y)
	},
	opLte: func(x, y loxNumber) interface{} {
		return loxBool(x <= y)
	},
	opGt: func(x, y loxNumber) interface{} {
		return loxBool(x > y)
	},
	opGte: func(x, y loxNumber) interface{} {
		return loxBool(x >= y)
	},
}

func (n loxNumber) getOperator(op operator) (operatorApply, error) {
	if apply, ok := numberBinaryOperations[op]; ok {
		return func(arguments ...interface{}) (interface{}, error) {
			y, ok := arguments[0].(loxNumber)
			if !ok {
				return nil, errExpectedNumber
			}
			return apply(n, y), nil
		}, nil
	}
	return nil, errUndefinedOp
}

func (n loxNumber) String() string {
	f := float64(n)
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
