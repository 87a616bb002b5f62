package fraction

import "golang.org/x/exp/constraints"

func cmpZ[Z constraints.Integer](a, b Z) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Cmp compares f and rhs and returns -1, 0, or 1. The comparison is exact.
//
// When the denominators already match the numerators are compared directly.
// Otherwise each side is reduced against the other's denominator before the
// cross products are formed, which keeps the intermediate magnitudes small.
//
// Comparing against the indeterminate (0, 0) value is undefined.
func (f Fraction[Z]) Cmp(rhs Fraction[Z]) int {
	if f.den == rhs.den {
		return cmpZ(f.num, rhs.num)
	}
	// f and rhs are local copies; trading fields between them reuses a single
	// GCD per side.
	f.den, rhs.num = rhs.num, f.den
	f.normalize2()
	rhs.normalize2()
	return cmpZ(f.num*rhs.den, f.den*rhs.num)
}

// CmpInt compares f against the integer rhs without constructing a second
// fraction. A denominator of 1 or a zero rhs short-circuits to a direct
// numerator comparison.
func (f Fraction[Z]) CmpInt(rhs Z) int {
	if f.den == 1 || rhs == 0 {
		return cmpZ(f.num, rhs)
	}
	f.den, rhs = rhs, f.den
	f.normalize2()
	return cmpZ(f.num, f.den*rhs)
}

// Equal reports whether f and rhs represent the same rational.
func (f Fraction[Z]) Equal(rhs Fraction[Z]) bool { return f.Cmp(rhs) == 0 }

// LessThan reports whether f < rhs.
func (f Fraction[Z]) LessThan(rhs Fraction[Z]) bool { return f.Cmp(rhs) < 0 }

// GreaterThan reports whether f > rhs.
func (f Fraction[Z]) GreaterThan(rhs Fraction[Z]) bool { return f.Cmp(rhs) > 0 }

// LessOrEqualTo reports whether f <= rhs.
func (f Fraction[Z]) LessOrEqualTo(rhs Fraction[Z]) bool { return f.Cmp(rhs) <= 0 }

// GreaterOrEqualTo reports whether f >= rhs.
func (f Fraction[Z]) GreaterOrEqualTo(rhs Fraction[Z]) bool { return f.Cmp(rhs) >= 0 }

// EqualInt reports whether f equals the integer rhs.
func (f Fraction[Z]) EqualInt(rhs Z) bool { return f.CmpInt(rhs) == 0 }

// LessThanInt reports whether f < rhs. The reversed operand order is
// CmpInt with the result inverted, or GreaterThanInt.
func (f Fraction[Z]) LessThanInt(rhs Z) bool { return f.CmpInt(rhs) < 0 }

// GreaterThanInt reports whether f > rhs.
func (f Fraction[Z]) GreaterThanInt(rhs Z) bool { return f.CmpInt(rhs) > 0 }

// LessOrEqualToInt reports whether f <= rhs.
func (f Fraction[Z]) LessOrEqualToInt(rhs Z) bool { return f.CmpInt(rhs) <= 0 }

// GreaterOrEqualToInt reports whether f >= rhs.
func (f Fraction[Z]) GreaterOrEqualToInt(rhs Z) bool { return f.CmpInt(rhs) >= 0 }
