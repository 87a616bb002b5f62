package fraction

// The mutating operators below all follow the same discipline: trade a field
// with the (by-value) operand, reduce the shared pair once with normalize2,
// then recombine. Each binary operation performs at most two GCDs and two
// multiplications and never expands to the unreduced cross product first,
// which is what keeps them cheap when Z is a wide integer.

// Neg returns -f. Only the numerator changes sign, so the denominator
// invariant is preserved without renormalizing.
func (f Fraction[Z]) Neg() Fraction[Z] {
	f.num = -f.num
	return f
}

// Reciprocal replaces f with 1/f in place. The reciprocal of zero is positive
// infinity and the reciprocal of an infinity is zero.
func (f *Fraction[Z]) Reciprocal() {
	f.num, f.den = f.den, f.num
	f.normalize1()
}

// Recip returns 1/f.
func (f Fraction[Z]) Recip() Fraction[Z] {
	f.Reciprocal()
	return f
}

// MulAssign sets f to f * rhs.
//
// The numerators are exchanged first so that each pair can be reduced
// independently before the final multiply.
func (f *Fraction[Z]) MulAssign(rhs Fraction[Z]) {
	f.num, rhs.num = rhs.num, f.num
	f.normalize2()
	rhs.normalize2()
	f.num *= rhs.num
	f.den *= rhs.den
}

// Mul returns f * rhs.
func (f Fraction[Z]) Mul(rhs Fraction[Z]) Fraction[Z] {
	f.MulAssign(rhs)
	return f
}

// MulAssignInt sets f to f * rhs.
func (f *Fraction[Z]) MulAssignInt(rhs Z) {
	f.num, rhs = rhs, f.num
	f.normalize2()
	f.num *= rhs
}

// MulInt returns f * rhs.
func (f Fraction[Z]) MulInt(rhs Z) Fraction[Z] {
	f.MulAssignInt(rhs)
	return f
}

// DivAssign sets f to f / rhs. Dividing by zero yields a signed infinity, not
// an error.
func (f *Fraction[Z]) DivAssign(rhs Fraction[Z]) {
	f.den, rhs.num = rhs.num, f.den
	f.normalize()
	rhs.normalize2()
	f.num *= rhs.den
	f.den *= rhs.num
}

// Div returns f / rhs.
func (f Fraction[Z]) Div(rhs Fraction[Z]) Fraction[Z] {
	f.DivAssign(rhs)
	return f
}

// DivAssignInt sets f to f / rhs.
func (f *Fraction[Z]) DivAssignInt(rhs Z) {
	f.den, rhs = rhs, f.den
	f.normalize()
	f.den *= rhs
}

// DivInt returns f / rhs. For the reversed order rhs / f, lift the integer
// with FromInt, or take Recip and multiply.
func (f Fraction[Z]) DivInt(rhs Z) Fraction[Z] {
	f.DivAssignInt(rhs)
	return f
}

// Add returns f + rhs.
//
// Equal denominators combine numerators directly. Otherwise the denominators
// are reduced by their common factor before the cross multiply. When that
// factor is zero both operands are infinities (or degenerate); the result
// then has denominator zero, and adding opposite infinities produces the
// indeterminate (0, 0).
func (f Fraction[Z]) Add(rhs Fraction[Z]) Fraction[Z] {
	if f.den == rhs.den {
		return New(f.num+rhs.num, f.den)
	}
	common := GCD(f.den, rhs.den)
	if common == 0 {
		return New(rhs.den*f.num+f.den*rhs.num, 0)
	}
	l := f.den / common
	r := rhs.den / common
	return New(r*f.num+l*rhs.num, f.den*r)
}

// Sub returns f - rhs.
func (f Fraction[Z]) Sub(rhs Fraction[Z]) Fraction[Z] {
	return f.Add(rhs.Neg())
}

// AddAssign sets f to f + rhs.
func (f *Fraction[Z]) AddAssign(rhs Fraction[Z]) {
	f.SubAssign(rhs.Neg())
}

// SubAssign sets f to f - rhs.
//
// The common factors of both denominators and of the intermediate result are
// extracted before the cross product so that the numerator never grows past
// the reduced magnitudes.
func (f *Fraction[Z]) SubAssign(rhs Fraction[Z]) {
	if f.den == rhs.den {
		f.num -= rhs.num
		f.normalize2()
		return
	}

	f.den, rhs.num = rhs.num, f.den
	commonN := f.normalize2()
	commonD := rhs.normalize2()
	f.den, rhs.num = rhs.num, f.den
	f.num = f.Cross(rhs)
	f.den *= rhs.den
	f.den, commonD = commonD, f.den
	f.normalize2()
	f.num *= commonN
	f.den *= commonD
	f.normalize2()
}

// AddAssignInt sets f to f + rhs.
func (f *Fraction[Z]) AddAssignInt(rhs Z) {
	f.SubAssignInt(-rhs)
}

// SubAssignInt sets f to f - rhs. A denominator of 1 subtracts directly;
// otherwise the integer temporarily stands in for the denominator so the
// shared factor with the numerator is removed before the multiply.
func (f *Fraction[Z]) SubAssignInt(rhs Z) {
	if f.den == 1 {
		f.num -= rhs
		return
	}

	f.den, rhs = rhs, f.den
	commonN := f.normalize2()
	f.den, rhs = rhs, f.den
	f.num -= rhs * f.den
	f.num *= commonN
	f.normalize2()
}

// AddInt returns f + rhs.
func (f Fraction[Z]) AddInt(rhs Z) Fraction[Z] {
	f.AddAssignInt(rhs)
	return f
}

// SubInt returns f - rhs. For the reversed order rhs - f, use
// f.Neg().AddInt(rhs).
func (f Fraction[Z]) SubInt(rhs Z) Fraction[Z] {
	f.SubAssignInt(rhs)
	return f
}
