package internal

import "time"

func defineGlobals(e *env, now func() time.Time) {
	defineClock(e, now)
}

// clock returns seconds since the Unix epoch
func defineClock(e *env, now func() time.Time) {
	clock := nativeFn{
		name:       "clock",
		arityValue: 0,
		callFn: func(exec *exec, arguments []interface{}) (interface{}, error) {
			return loxNumber(float64(now().UnixNano()) / float64(time.Second)), nil
		},
	}

	e.define("clock", &clock)
}
