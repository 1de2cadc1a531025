package internal

import (
	"errors"
	"fmt"
	"runtime"
	"runtime/debug"
)

// CheckRange panics unless 0 <= low <= high <= length. Malformed
// ranges are programming errors and fail fast rather than being
// silently clamped.
func CheckRange(low, high, length int) {
	if low < 0 || high < low || high > length {
		panic(fmt.Sprintf("invalid range: %v:%v", low, high))
	}
}

// CheckNumTasks panics unless n >= 1.
func CheckNumTasks(n int) {
	if n < 1 {
		panic(fmt.Sprintf("invalid number of tasks: %v", n))
	}
}

type runtimeError struct{ error }

func (runtimeError) RuntimeError() {}

// WrapPanic adds stack trace information to a recovered panic.
func WrapPanic(p interface{}) interface{} {
	if p != nil {
		s := fmt.Sprintf("%v\n%s\nrethrown at", p, debug.Stack())
		if _, isError := p.(error); isError {
			r := errors.New(s)
			if _, isRuntimeError := p.(runtime.Error); isRuntimeError {
				return runtimeError{r}
			}
			return r
		}
		return s
	}
	return nil
}
