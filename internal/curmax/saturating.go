package curmax

import "golang.org/x/exp/constraints"

// bounds returns the representable range of T.
func bounds[T constraints.Integer]() (lo, hi T) {
	var zero T
	if zero-1 > zero {
		return 0, ^zero
	}
	hi = 1
	for hi<<1 > hi {
		hi <<= 1
	}
	hi |= hi - 1
	return -hi - 1, hi
}

func SaturatingAdd[T constraints.Integer](a, b T) T {
	lo, hi := bounds[T]()
	switch {
	case b > 0 && a > hi-b:
		return hi
	case b < 0 && a < lo-b:
		return lo
	}
	return a + b
}

func SaturatingSub[T constraints.Integer](a, b T) T {
	lo, hi := bounds[T]()
	switch {
	case b > 0 && a < lo+b:
		return lo
	case b < 0 && a > hi+b:
		return hi
	}
	return a - b
}

func SaturatingMul[T constraints.Integer](a, b T) T {
	if a == 0 || b == 0 {
		return 0
	}
	lo, hi := bounds[T]()
	if lo < 0 {
		// -1 is not a constant of T when T may be unsigned.
		neg := lo - lo - 1
		if (a == neg && b == lo) || (b == neg && a == lo) {
			return hi
		}
	}
	p := a * b
	if p/b == a {
		return p
	}
	if (a < 0) != (b < 0) {
		return lo
	}
	return hi
}
