package fraction

import (
	"math/big"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// oracleIterations should keep the randomized comparison against the
// math/big oracle under a second per operation.
const oracleIterations = 20000

func newOracleRand() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixMilli())) // Classic rando!
}

// randFinite returns a finite fraction with operands small enough that no
// intermediate product in any operator can overflow int64.
func randFinite(rng *rand.Rand) Fraction[int64] {
	num := rng.Int63n(2001) - 1000
	den := rng.Int63n(1000) + 1
	if rng.Intn(2) == 1 {
		den = -den
	}
	return New(num, den)
}

func ratOf(f Fraction[int64]) *big.Rat {
	return big.NewRat(f.Num(), f.Den())
}

func requireCanonical(t *testing.T, f Fraction[int64]) {
	t.Helper()
	require.GreaterOrEqual(t, f.Den(), int64(0), "%s", f)
	require.LessOrEqual(t, GCD(f.Num(), f.Den()), int64(1), "%s", f)
}

func requireMatchesRat(t *testing.T, got Fraction[int64], want *big.Rat) {
	t.Helper()
	requireCanonical(t, got)
	require.True(t, ratOf(got).Cmp(want) == 0, "got %s, oracle %s", got, want.RatString())
}

func TestOracleAdd(t *testing.T) {
	rng := newOracleRand()
	for i := 0; i < oracleIterations; i++ {
		a, b := randFinite(rng), randFinite(rng)
		want := new(big.Rat).Add(ratOf(a), ratOf(b))
		requireMatchesRat(t, a.Add(b), want)

		assign := a
		assign.AddAssign(b)
		requireMatchesRat(t, assign, want)
	}
}

func TestOracleSub(t *testing.T) {
	rng := newOracleRand()
	for i := 0; i < oracleIterations; i++ {
		a, b := randFinite(rng), randFinite(rng)
		want := new(big.Rat).Sub(ratOf(a), ratOf(b))
		requireMatchesRat(t, a.Sub(b), want)

		assign := a
		assign.SubAssign(b)
		requireMatchesRat(t, assign, want)
	}
}

func TestOracleMul(t *testing.T) {
	rng := newOracleRand()
	for i := 0; i < oracleIterations; i++ {
		a, b := randFinite(rng), randFinite(rng)
		want := new(big.Rat).Mul(ratOf(a), ratOf(b))
		requireMatchesRat(t, a.Mul(b), want)

		assign := a
		assign.MulAssign(b)
		requireMatchesRat(t, assign, want)
	}
}

func TestOracleDiv(t *testing.T) {
	rng := newOracleRand()
	for i := 0; i < oracleIterations; i++ {
		a, b := randFinite(rng), randFinite(rng)
		if b.IsZero() {
			// big.Rat has no pole encodings; zero divisors are covered by
			// the unit tests.
			continue
		}
		want := new(big.Rat).Quo(ratOf(a), ratOf(b))
		requireMatchesRat(t, a.Div(b), want)

		assign := a
		assign.DivAssign(b)
		requireMatchesRat(t, assign, want)
	}
}

func TestOracleCmp(t *testing.T) {
	rng := newOracleRand()
	for i := 0; i < oracleIterations; i++ {
		a, b := randFinite(rng), randFinite(rng)
		require.Equal(t, ratOf(a).Cmp(ratOf(b)), a.Cmp(b), "%s <=> %s", a, b)
	}
}

func TestOracleIntVariants(t *testing.T) {
	rng := newOracleRand()
	for i := 0; i < oracleIterations; i++ {
		a := randFinite(rng)
		n := rng.Int63n(201) - 100
		lifted := new(big.Rat).SetInt64(n)

		requireMatchesRat(t, a.AddInt(n), new(big.Rat).Add(ratOf(a), lifted))
		requireMatchesRat(t, a.SubInt(n), new(big.Rat).Sub(ratOf(a), lifted))
		requireMatchesRat(t, a.MulInt(n), new(big.Rat).Mul(ratOf(a), lifted))
		if n != 0 {
			requireMatchesRat(t, a.DivInt(n), new(big.Rat).Quo(ratOf(a), lifted))
		}
		require.Equal(t, ratOf(a).Cmp(lifted), a.CmpInt(n), "%s <=> %d", a, n)
	}
}

func TestOracleRecipNeg(t *testing.T) {
	rng := newOracleRand()
	for i := 0; i < oracleIterations; i++ {
		a := randFinite(rng)
		requireMatchesRat(t, a.Neg(), new(big.Rat).Neg(ratOf(a)))
		if !a.IsZero() {
			requireMatchesRat(t, a.Recip(), new(big.Rat).Inv(ratOf(a)))
		}
	}
}
