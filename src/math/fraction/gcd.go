package fraction

import "golang.org/x/exp/constraints"

// Abs returns the non-negative magnitude of a. For unsigned types this is the
// identity; the negation branch is never taken.
func Abs[Z constraints.Integer](a Z) Z {
	if a < 0 {
		return -a
	}
	return a
}

// GCD returns the non-negative greatest common divisor of m and n.
//
// GCD(0, n) is |n| and GCD(0, 0) is 0, so a zero result only occurs in the
// degenerate all-zero case.
func GCD[Z constraints.Integer](m, n Z) Z {
	if m == 0 {
		return Abs(n)
	}
	return gcdRecur(m, n)
}

func gcdRecur[Z constraints.Integer](m, n Z) Z {
	if n == 0 {
		return Abs(m)
	}
	return gcdRecur(n, m%n)
}

// LCM returns the least common multiple of m and n.
//
// LCM is 0 if either argument is 0. That is not the usual mathematical
// convention, but it avoids dividing by a zero GCD.
func LCM[Z constraints.Integer](m, n Z) Z {
	if m == 0 || n == 0 {
		return 0
	}
	return (Abs(m) / GCD(m, n)) * Abs(n)
}
