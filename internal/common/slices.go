package common

import "fmt"

// UnknownStr is returned by String methods for out-of-range enum values.
const UnknownStr = "unknown"

// IsEmpty returns true if the slice is empty.
func IsEmpty[S ~[]E, E any](s S) bool {
	return len(s) == 0
}

// IsSingle returns true if the slice has exactly one element.
func IsSingle[S ~[]E, E any](s S) bool {
	return len(s) == 1
}

// EqualFunc reports whether two slices have the same length and eq holds
// element-wise. Nil and empty slices are equal.
func EqualFunc[S ~[]E, E any](a, b S, eq func(E, E) bool) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if !eq(a[i], b[i]) {
			return false
		}
	}

	return true
}

// MapErr applies fn to every element and stops at the first error.
func MapErr[S ~[]E, E, R any](s S, fn func(E) (R, error)) ([]R, error) {
	out := make([]R, 0, len(s))

	for _, e := range s {
		r, err := fn(e)
		if err != nil {
			return nil, err
		}

		out = append(out, r)
	}

	return out, nil
}

// ParseEnum finds the value in all whose String() equals name.
func ParseEnum[T fmt.Stringer](name string, all []T) (T, bool) {
	for _, v := range all {
		if v.String() == name {
			return v, true
		}
	}

	var zero T

	return zero, false
}
