package hypernum

import (
	"math"
	"testing"
)

var (
	BenchBoolResult   bool
	BenchFloatResult  float64
	BenchIntResult    int
	BenchNumberResult Number
	BenchStringResult string

	BenchFloat1, BenchFloat2 float64 = 12093749018, 18927348917
)

var benchOperands = []struct {
	name string
	a, b Number
}{
	{"float", FromFloat64(12093749018), FromFloat64(18927348917)},
	{"googol", Googol, FromFloat64(1e98)},
	{"googolplex", Googolplex, Googol},
	{"tetrate", Tet(FromFloat64(10), 100), Googolplexplex},
}

func BenchmarkFloat64Mul(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchFloatResult = BenchFloat1 * BenchFloat2
	}
}

func BenchmarkFloat64Pow(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchFloatResult = math.Pow(BenchFloat1, 1.5)
	}
}

func BenchmarkFromFloat64(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchNumberResult = FromFloat64(BenchFloat1)
	}
}

func BenchmarkAdd(b *testing.B) {
	for _, bc := range benchOperands {
		b.Run(bc.name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				BenchNumberResult = bc.a.Add(bc.b)
			}
		})
	}
}

func BenchmarkMul(b *testing.B) {
	for _, bc := range benchOperands {
		b.Run(bc.name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				BenchNumberResult = bc.a.Mul(bc.b)
			}
		})
	}
}

func BenchmarkPow(b *testing.B) {
	for _, bc := range benchOperands {
		b.Run(bc.name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				BenchNumberResult = bc.a.Pow(bc.b)
			}
		})
	}
}

func BenchmarkCmp(b *testing.B) {
	for _, bc := range benchOperands {
		b.Run(bc.name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				BenchIntResult = bc.a.Cmp(bc.b)
			}
		})
	}
}

func BenchmarkEqual(b *testing.B) {
	n := Googolplex
	for i := 0; i < b.N; i++ {
		BenchBoolResult = n.Equal(Googolplex)
	}
}

func BenchmarkTet(b *testing.B) {
	for _, bc := range []struct {
		name   string
		base   Number
		height float64
	}{
		{"2^^4", FromFloat64(2), 4},
		{"2^^5.5", FromFloat64(2), 5.5},
		{"10^^100", FromFloat64(10), 100},
		{"sqrt2^^1e9", FromFloat64(math.Sqrt2), 1e9},
	} {
		b.Run(bc.name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				BenchNumberResult = Tet(bc.base, bc.height)
			}
		})
	}
}

func BenchmarkSlog(b *testing.B) {
	x := Tet(FromFloat64(10), 25.5)
	for i := 0; i < b.N; i++ {
		BenchNumberResult = Slog(x, 2.0)
	}
}

func BenchmarkLambertW(b *testing.B) {
	x := FromFloat64(12345)
	for i := 0; i < b.N; i++ {
		BenchNumberResult = x.LambertW()
	}
}

func BenchmarkFormat(b *testing.B) {
	for _, bc := range benchOperands {
		b.Run(bc.name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				BenchStringResult = bc.a.String()
			}
		})
	}
}

func BenchmarkSuffixName(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchStringResult, _ = SuffixName(1001001)
	}
}
