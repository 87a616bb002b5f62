package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"ratio/src/math/fraction"
)

var errFormat = errors.New("invalid fraction literal")

// parseFraction parses an integer literal "m" or a fraction literal "m/n"
// in base 10. The result is reduced to canonical form, so the input does not
// have to be in lowest terms and the denominator may be negative or zero.
func parseFraction(s string) (fraction.Fraction[int64], error) {
	numStr, denStr, found := strings.Cut(s, "/")
	num, err := strconv.ParseInt(numStr, 10, 64)
	if err != nil {
		return fraction.Zero[int64](), fmt.Errorf("%w %q: parsing numerator: %v", errFormat, s, err)
	}
	if !found {
		return fraction.FromInt(num), nil
	}
	den, err := strconv.ParseInt(denStr, 10, 64)
	if err != nil {
		return fraction.Zero[int64](), fmt.Errorf("%w %q: parsing denominator: %v", errFormat, s, err)
	}
	return fraction.New(num, den), nil
}

var errOperator = errors.New("unknown operator")

// evaluate applies a binary operator to two fractions. Arithmetic operators
// return the exact result in result; comparison operators set isCmp and
// return their verdict in cmpResult.
func evaluate(lhs fraction.Fraction[int64], op string, rhs fraction.Fraction[int64]) (result fraction.Fraction[int64], cmpResult bool, isCmp bool, err error) {
	switch op {
	case "+":
		return lhs.Add(rhs), false, false, nil
	case "-":
		return lhs.Sub(rhs), false, false, nil
	case "*", "x":
		return lhs.Mul(rhs), false, false, nil
	case "/":
		return lhs.Div(rhs), false, false, nil
	case "==":
		return result, lhs.Equal(rhs), true, nil
	case "!=":
		return result, !lhs.Equal(rhs), true, nil
	case "<":
		return result, lhs.LessThan(rhs), true, nil
	case "<=":
		return result, lhs.LessOrEqualTo(rhs), true, nil
	case ">":
		return result, lhs.GreaterThan(rhs), true, nil
	case ">=":
		return result, lhs.GreaterOrEqualTo(rhs), true, nil
	}
	return result, false, false, fmt.Errorf("%w %q", errOperator, op)
}
