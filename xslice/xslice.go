// Package xslice provides small generic slice utilities: empty
// singletons for APIs that must never hand out nil, and the matching
// guards.
package xslice

// Empty returns a non-nil slice of length zero. Use it where callers
// (JSON encoders, range-checking consumers) distinguish nil from empty.
func Empty[T any]() []T {
	return []T{}
}

// NilToEmpty returns s unchanged unless it is nil, in which case a
// non-nil empty slice is returned.
func NilToEmpty[T any](s []T) []T {
	if s == nil {
		return Empty[T]()
	}
	return s
}

// IsEmpty reports whether s is nil or has no elements.
func IsEmpty[T any](s []T) bool {
	return len(s) == 0
}

// Clone returns a copy of s that shares no backing storage with it.
// A nil input yields a nil output.
func Clone[T any](s []T) []T {
	if s == nil {
		return nil
	}
	out := make([]T, len(s))
	copy(out, s)
	return out
}
