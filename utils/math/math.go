package math

import "golang.org/x/exp/constraints"

// Mod returns a mod b in [0, b), also for negative a. b must be positive.
func Mod[T constraints.Signed](a, b T) T {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}

func DivCeil[T constraints.Integer](dividend, divisor T) T {
	base := dividend / divisor
	if dividend%divisor == 0 {
		return base
	} else {
		return base + 1
	}
}
