package future

import (
	"fmt"
	"runtime"
)

// PanicError is the error a future fails with if its task, or a function given to a combinator, panics.
type PanicError struct {
	// Value is the original value passed to panic().
	Value any

	// Stack is the goroutine stack trace at the point of panic.
	Stack string
}

// Error implements error.
func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v\n\n%s", e.Value, e.Stack)
}

func newPanicError(v any) *PanicError {
	buf := make([]byte, 8192)
	n := runtime.Stack(buf, false)

	return &PanicError{
		Value: v,
		Stack: string(buf[:n]),
	}
}

// protect calls fn, converting a panic into a *PanicError.
func protect[T any](fn func() (T, error)) (value T, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = newPanicError(r)
		}
	}()

	return fn()
}
