package mathx

import "golang.org/x/exp/constraints"

// CeilDiv returns ceil(a/b). A zero divisor yields 0; callers guard it.
func CeilDiv[T constraints.Unsigned](a, b T) T {
	if b == 0 {
		return 0
	}
	q := a / b
	if a%b != 0 {
		q++
	}
	return q
}
