// Package mathx holds the small generic numeric helpers shared by the
// hextiles packages.
package mathx

import "golang.org/x/exp/constraints"

// SignedNumber is any type whose values may be negated.
type SignedNumber interface {
	constraints.Signed | constraints.Float
}

// Abs returns the absolute value of v.
func Abs[T SignedNumber](v T) T {
	if v >= T(0) {
		return v
	}
	return -v
}

// Clamp limits v to the closed range [lo, hi].
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if v <= lo {
		return lo
	}
	if v >= hi {
		return hi
	}
	return v
}
