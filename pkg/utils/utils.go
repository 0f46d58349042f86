package utils

import (
	"fmt"
)

// Fatal aborts the current link with an internal error. It is reserved for
// broken invariants; user-facing problems are returned as errors.
func Fatal(v any) {
	panic(fmt.Sprintf("tinyld: fatal: %v", v))
}

func Assert(condition bool) {
	if !condition {
		Fatal("Assert Failed")
	}
}

func Assertf(condition bool, format string, args ...any) {
	if !condition {
		Fatal(fmt.Sprintf(format, args...))
	}
}

func RemoveIf[T any](elems []T, condition func(T) bool) []T {
	if len(elems) == 0 {
		return elems
	}

	i := 0
	for _, elem := range elems {
		if condition(elem) {
			continue
		}
		elems[i] = elem
		i++
	}

	return elems[:i]
}
