package hypernum

import (
	"math"
	"strconv"
	"strings"
)

// log10 is math.Log10 with exact results for exact powers of ten;
// math.Log10(1000) is not 3.
func log10(x float64) float64 {
	l := math.Log10(x)
	if r := math.Round(l); r != l && math.Abs(r) < 308 && math.Pow10(int(r)) == x {
		return r
	}
	return l
}

// pow10 is 10^x, exact for integer x.
func pow10(x float64) float64 {
	if x == math.Trunc(x) && math.Abs(x) < 309 {
		return math.Pow10(int(x))
	}
	return math.Pow(10, x)
}

// unlog10 is pow10 for a value being rebuilt from its stored log10. The
// log10 of an integer is rarely exact, so a result within the rounding
// error that pow10 amplifies from x is snapped to that integer.
func unlog10(x float64) float64 {
	v := pow10(x)
	if v >= maxExactInt || v < 1 {
		return v
	}
	r := math.Round(v)
	tol := 2 * math.Ln10 * math.Max(1, math.Abs(x)) * epsilon * v
	if math.Abs(v-r) <= tol {
		return r
	}
	return v
}

// pow is math.Pow, routed through pow10 for base 10.
func pow(x, y float64) float64 {
	if x == 10 {
		return pow10(y)
	}
	return math.Pow(x, y)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// nearInt reports the integer closest to f and whether f is within float
// noise of it.
func nearInt(f float64) (float64, bool) {
	r := math.Round(f)
	if r == f {
		return r, true
	}
	tol := 1e-9 * math.Max(1, math.Abs(r))
	return r, math.Abs(f-r) <= tol
}

// closeEnough reports whether a and b agree within SolverTolerance,
// relative to their size.
func closeEnough(a, b float64) bool {
	return math.Abs(a-b) <= SolverTolerance*math.Max(1, math.Abs(b))
}

// formatDigits is the number of significant digits formatDecimal keeps
// before truncating. Mantissas rebuilt from a log10 carry noise below it.
const formatDigits = 10

// formatDecimal truncates f to dp decimal places and trims trailing zeros.
func formatDecimal(f float64, dp int) string {
	neg := f < 0
	if neg {
		f = -f
	}
	g, _ := strconv.ParseFloat(strconv.FormatFloat(f, 'e', formatDigits-1, 64), 64)
	s := strconv.FormatFloat(g, 'f', -1, 64)
	if i := strings.IndexByte(s, '.'); i >= 0 {
		if len(s)-i-1 > dp {
			s = s[:i+1+dp]
		}
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if neg && s != "0" {
		s = "-" + s
	}
	return s
}
