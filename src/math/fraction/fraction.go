package fraction

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// Fraction is an exact rational number over an integer type Z.
//
// A Fraction is kept in canonical form: the denominator is non-negative and
// coprime with the numerator. Note that the zero value of the type is the
// indeterminate (0, 0) pair, not the rational zero; construct zero with
// [Zero] or FromInt(0).
//
// Two special encodings fall out of the canonicalization rules:
//
//   - (±1, 0) is a signed infinity. Any n/0 with n != 0 normalizes to it, and
//     it is what division by zero produces.
//   - (0, 0) is indeterminate. It arises from combining opposite infinities
//     and is not a valid rational: feeding it back into comparisons or
//     further arithmetic is undefined. Use IsNaN to detect it.
//
// The type has plain value semantics; operands passed by value are copied, so
// operating on independently owned values from multiple goroutines is safe.
type Fraction[Z constraints.Integer] struct {
	num Z
	den Z
}

// New returns the fraction num/den reduced to canonical form.
func New[Z constraints.Integer](num, den Z) Fraction[Z] {
	f := Fraction[Z]{num: num, den: den}
	f.normalize()
	return f
}

// FromInt returns the fraction num/1. No reduction is needed.
func FromInt[Z constraints.Integer](num Z) Fraction[Z] {
	return Fraction[Z]{num: num, den: 1}
}

// Zero returns the canonical zero fraction 0/1.
func Zero[Z constraints.Integer]() Fraction[Z] {
	return Fraction[Z]{num: 0, den: 1}
}

// Num returns the numerator.
func (f Fraction[Z]) Num() Z { return f.num }

// Den returns the denominator.
func (f Fraction[Z]) Den() Z { return f.den }

// normalize restores the full canonical form and returns the common factor
// removed by the reduction step.
func (f *Fraction[Z]) normalize() Z {
	f.normalize1()
	return f.normalize2()
}

// normalize1 makes the denominator non-negative; the sign migrates to the
// numerator.
func (f *Fraction[Z]) normalize1() {
	if f.den < 0 {
		f.num = -f.num
		f.den = -f.den
	}
}

// normalize2 divides numerator and denominator by their GCD and returns it,
// so callers can reuse the common factor. A return of 0 or 1 means the pair
// was left untouched.
func (f *Fraction[Z]) normalize2() Z {
	common := GCD(f.num, f.den)
	if common == 1 || common == 0 {
		return common
	}
	f.num /= common
	f.den /= common
	return common
}

// Sign returns -1, 0, or 1 depending on the sign of the numerator. For
// canonical values this is the sign of the fraction itself.
func (f Fraction[Z]) Sign() int {
	switch {
	case f.num > 0:
		return 1
	case f.num < 0:
		return -1
	}
	return 0
}

// IsZero reports whether f is zero.
func (f Fraction[Z]) IsZero() bool {
	return f.num == 0 && f.den != 0
}

// IsInf reports whether f is an infinity. If sign > 0 only positive infinity
// matches, if sign < 0 only negative infinity, and if sign == 0 either does.
func (f Fraction[Z]) IsInf(sign int) bool {
	if f.den != 0 || f.num == 0 {
		return false
	}
	return sign == 0 || (sign > 0) == (f.num > 0)
}

// IsNaN reports whether f is the indeterminate (0, 0) value.
func (f Fraction[Z]) IsNaN() bool {
	return f.num == 0 && f.den == 0
}

// Cross returns the cross product f.num*rhs.den - f.den*rhs.num. Its sign
// orders f against rhs without a common-denominator expansion.
func (f Fraction[Z]) Cross(rhs Fraction[Z]) Z {
	return f.num*rhs.den - f.den*rhs.num
}

// Float64 returns the nearest floating-point approximation of f. Infinities
// map to ±math.Inf and the indeterminate value to NaN.
func (f Fraction[Z]) Float64() float64 {
	if f.den == 0 {
		switch {
		case f.num > 0:
			return math.Inf(1)
		case f.num < 0:
			return math.Inf(-1)
		}
		return math.NaN()
	}
	return float64(f.num) / float64(f.den)
}

// String renders f as "(numerator/denominator)".
func (f Fraction[Z]) String() string {
	return fmt.Sprintf("(%d/%d)", f.num, f.den)
}
