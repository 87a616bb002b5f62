package fraction

import (
	"fmt"
	"testing"
)

var (
	benchFracResult    Fraction[int64]
	benchBigFracResult BigFraction
	benchIntResult     int
	benchBool          bool
)

func benchPairs() []struct {
	name string
	a, b Fraction[int64]
} {
	return []struct {
		name string
		a, b Fraction[int64]
	}{
		{"same-den", New[int64](3, 8), New[int64](5, 8)},
		{"coprime-den", New[int64](3, 7), New[int64](5, 11)},
		{"shared-factor", New[int64](35, 36), New[int64](11, 24)},
		{"large", New[int64](1<<30+1, 1<<31-1), New[int64](1<<29-1, 1<<30-1)},
	}
}

func BenchmarkFractionAdd(b *testing.B) {
	for idx, tc := range benchPairs() {
		b.Run(fmt.Sprintf("%d/%s", idx, tc.name), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				benchFracResult = tc.a.Add(tc.b)
			}
		})
	}
}

func BenchmarkFractionSubAssign(b *testing.B) {
	for idx, tc := range benchPairs() {
		b.Run(fmt.Sprintf("%d/%s", idx, tc.name), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				f := tc.a
				f.SubAssign(tc.b)
				benchFracResult = f
			}
		})
	}
}

func BenchmarkFractionMul(b *testing.B) {
	for idx, tc := range benchPairs() {
		b.Run(fmt.Sprintf("%d/%s", idx, tc.name), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				benchFracResult = tc.a.Mul(tc.b)
			}
		})
	}
}

func BenchmarkFractionDiv(b *testing.B) {
	for idx, tc := range benchPairs() {
		b.Run(fmt.Sprintf("%d/%s", idx, tc.name), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				benchFracResult = tc.a.Div(tc.b)
			}
		})
	}
}

func BenchmarkFractionCmp(b *testing.B) {
	for idx, tc := range benchPairs() {
		b.Run(fmt.Sprintf("%d/%s", idx, tc.name), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				benchIntResult = tc.a.Cmp(tc.b)
			}
		})
	}
}

func BenchmarkFractionEqualInt(b *testing.B) {
	f := New[int64](10, 3)
	for i := 0; i < b.N; i++ {
		benchBool = f.EqualInt(3)
	}
}

func BenchmarkGCD(b *testing.B) {
	var r int64
	for i := 0; i < b.N; i++ {
		r = GCD[int64](270*12345, 192*12345)
	}
	_ = r
}

func BenchmarkBigFractionAdd(b *testing.B) {
	x := BigFromInt64(35).Div(BigFromInt64(36))
	y := BigFromInt64(11).Div(BigFromInt64(24))
	for i := 0; i < b.N; i++ {
		benchBigFracResult = x.Add(y)
	}
}

func BenchmarkBigFractionMul(b *testing.B) {
	x := BigFromInt64(35).Div(BigFromInt64(36))
	y := BigFromInt64(11).Div(BigFromInt64(24))
	for i := 0; i < b.N; i++ {
		benchBigFracResult = x.Mul(y)
	}
}
