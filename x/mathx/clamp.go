// Package mathx holds small integer helpers for register arithmetic.
package mathx

import "golang.org/x/exp/constraints"

// SatSub returns a-b, or 0 when b > a.
func SatSub[T constraints.Unsigned](a, b T) T {
	if b > a {
		return 0
	}
	return a - b
}

// FitU8 clamps v into the range of a uint8 register field.
func FitU8[T constraints.Unsigned](v T) uint8 {
	if v > T(^uint8(0)) {
		return ^uint8(0)
	}
	return uint8(v)
}
