package fraction

import (
	"fmt"
	"math"
	"math/big"
)

// BigFraction is the arbitrary-precision rendition of Fraction. Go generics
// cannot range over method-based integers like big.Int, so the big case is a
// parallel type with the same canonical form and the same operator contracts,
// including the (±1, 0) infinity and (0, 0) indeterminate encodings.
//
// A BigFraction exclusively owns its numerator and denominator; constructors
// and accessors copy, so callers can keep mutating their own big.Ints.
type BigFraction struct {
	num big.Int
	den big.Int
}

// NewBig returns the fraction num/den reduced to canonical form.
func NewBig(num, den *big.Int) BigFraction {
	var f BigFraction
	f.num.Set(num)
	f.den.Set(den)
	f.normalize()
	return f
}

// BigFromInt returns the fraction num/1.
func BigFromInt(num *big.Int) BigFraction {
	var f BigFraction
	f.num.Set(num)
	f.den.SetInt64(1)
	return f
}

// BigFromInt64 returns the fraction num/1.
func BigFromInt64(num int64) BigFraction {
	var f BigFraction
	f.num.SetInt64(num)
	f.den.SetInt64(1)
	return f
}

// Num returns a copy of the numerator.
func (f BigFraction) Num() *big.Int { return new(big.Int).Set(&f.num) }

// Den returns a copy of the denominator.
func (f BigFraction) Den() *big.Int { return new(big.Int).Set(&f.den) }

// bigGCD returns the non-negative GCD of a and b with the same contract as
// the generic GCD: bigGCD(0, n) = |n| and bigGCD(0, 0) = 0. big.Int.GCD
// zeroes its result for non-positive inputs, so the degenerate cases are
// handled before delegating.
func bigGCD(a, b *big.Int) *big.Int {
	aa := new(big.Int).Abs(a)
	bb := new(big.Int).Abs(b)
	if aa.Sign() == 0 {
		return bb
	}
	if bb.Sign() == 0 {
		return aa
	}
	return aa.GCD(nil, nil, aa, bb)
}

func (f *BigFraction) normalize() {
	f.normalize1()
	f.normalize2()
}

func (f *BigFraction) normalize1() {
	if f.den.Sign() < 0 {
		f.num.Neg(&f.num)
		f.den.Neg(&f.den)
	}
}

func (f *BigFraction) normalize2() {
	common := bigGCD(&f.num, &f.den)
	if common.Sign() == 0 || common.Cmp(bigOne) == 0 {
		return
	}
	f.num.Quo(&f.num, common)
	f.den.Quo(&f.den, common)
}

var bigOne = big.NewInt(1)

// Sign returns -1, 0, or 1 depending on the sign of the numerator.
func (f BigFraction) Sign() int { return f.num.Sign() }

// IsZero reports whether f is zero.
func (f BigFraction) IsZero() bool { return f.num.Sign() == 0 && f.den.Sign() != 0 }

// IsInf reports whether f is an infinity, with the same sign filter as
// Fraction.IsInf.
func (f BigFraction) IsInf(sign int) bool {
	if f.den.Sign() != 0 || f.num.Sign() == 0 {
		return false
	}
	return sign == 0 || (sign > 0) == (f.num.Sign() > 0)
}

// IsNaN reports whether f is the indeterminate (0, 0) value.
func (f BigFraction) IsNaN() bool { return f.num.Sign() == 0 && f.den.Sign() == 0 }

// Neg returns -f.
func (f BigFraction) Neg() BigFraction {
	var r BigFraction
	r.num.Neg(&f.num)
	r.den.Set(&f.den)
	return r
}

// Recip returns 1/f.
func (f BigFraction) Recip() BigFraction {
	var r BigFraction
	r.num.Set(&f.den)
	r.den.Set(&f.num)
	r.normalize1()
	return r
}

// Add returns f + rhs, extracting the common factor of the denominators
// before the cross multiply exactly like Fraction.Add. Adding opposite
// infinities yields the indeterminate value.
func (f BigFraction) Add(rhs BigFraction) BigFraction {
	var num, t big.Int
	if f.den.Cmp(&rhs.den) == 0 {
		num.Add(&f.num, &rhs.num)
		return NewBig(&num, &f.den)
	}
	common := bigGCD(&f.den, &rhs.den)
	if common.Sign() == 0 {
		num.Mul(&rhs.den, &f.num)
		t.Mul(&f.den, &rhs.num)
		num.Add(&num, &t)
		return NewBig(&num, new(big.Int))
	}
	l := new(big.Int).Quo(&f.den, common)
	r := new(big.Int).Quo(&rhs.den, common)
	num.Mul(r, &f.num)
	t.Mul(l, &rhs.num)
	num.Add(&num, &t)
	var den big.Int
	den.Mul(&f.den, r)
	return NewBig(&num, &den)
}

// Sub returns f - rhs.
func (f BigFraction) Sub(rhs BigFraction) BigFraction {
	return f.Add(rhs.Neg())
}

// Mul returns f * rhs. Each numerator is reduced against the opposite
// denominator first, so the multiplies operate on the smallest possible
// magnitudes.
func (f BigFraction) Mul(rhs BigFraction) BigFraction {
	ln, ld := new(big.Int).Set(&f.num), new(big.Int).Set(&f.den)
	rn, rd := new(big.Int).Set(&rhs.num), new(big.Int).Set(&rhs.den)
	reduceBigPair(ln, rd)
	reduceBigPair(rn, ld)
	var r BigFraction
	r.num.Mul(ln, rn)
	r.den.Mul(ld, rd)
	return r
}

// Div returns f / rhs. Division by zero yields a signed infinity.
func (f BigFraction) Div(rhs BigFraction) BigFraction {
	return f.Mul(rhs.Recip())
}

// reduceBigPair divides a and b in place by their common factor, leaving
// degenerate pairs untouched.
func reduceBigPair(a, b *big.Int) {
	common := bigGCD(a, b)
	if common.Sign() == 0 || common.Cmp(bigOne) == 0 {
		return
	}
	a.Quo(a, common)
	b.Quo(b, common)
}

// Cmp compares f and rhs and returns -1, 0, or 1. As with Fraction.Cmp, the
// numerator pair and denominator pair are each reduced by their common factor
// before the cross products are formed.
func (f BigFraction) Cmp(rhs BigFraction) int {
	if f.den.Cmp(&rhs.den) == 0 {
		return f.num.Cmp(&rhs.num)
	}
	ln, rn := new(big.Int).Set(&f.num), new(big.Int).Set(&rhs.num)
	ld, rd := new(big.Int).Set(&f.den), new(big.Int).Set(&rhs.den)
	reduceBigPair(ln, rn)
	reduceBigPair(ld, rd)
	ln.Mul(ln, rd)
	rn.Mul(rn, ld)
	return ln.Cmp(rn)
}

// Equal reports whether f and rhs represent the same rational.
func (f BigFraction) Equal(rhs BigFraction) bool { return f.Cmp(rhs) == 0 }

// LessThan reports whether f < rhs.
func (f BigFraction) LessThan(rhs BigFraction) bool { return f.Cmp(rhs) < 0 }

// Rat returns f as a big.Rat, or nil if the denominator is zero (big.Rat has
// no pole encodings).
func (f BigFraction) Rat() *big.Rat {
	if f.den.Sign() == 0 {
		return nil
	}
	return new(big.Rat).SetFrac(&f.num, &f.den)
}

// Float64 returns the nearest floating-point approximation of f.
func (f BigFraction) Float64() float64 {
	if f.den.Sign() == 0 {
		switch {
		case f.num.Sign() > 0:
			return math.Inf(1)
		case f.num.Sign() < 0:
			return math.Inf(-1)
		}
		return math.NaN()
	}
	v, _ := f.Rat().Float64()
	return v
}

// String renders f as "(numerator/denominator)".
func (f BigFraction) String() string {
	return fmt.Sprintf("(%s/%s)", f.num.String(), f.den.String())
}
