package hypernum

import (
	"math"

	"go.uber.org/zap"
)

// LambertW returns the principal branch W0(n), the w >= -1 with w·e^w = n.
// It is Absent below -1/e. Beyond float64 range it solves w + ln w = ln n,
// and once ln n itself is out of range it returns ln n.
func (n Number) LambertW() Number {
	if n.absent {
		return Absent
	}
	if n.fits() {
		x := n.Float64()
		if x < invE {
			if !closeEnough(x, invE) {
				return Absent
			}
			x = invE
		}
		return FromFloat64(lambertW(x))
	}
	if n.sign < 0 {
		return Absent
	}
	l := n.Ln()
	if !l.fits() {
		return l
	}
	return FromFloat64(lambertWLog(l.Float64()))
}

// lambertW solves w·e^w = x with Halley's method. x must be at least -1/e.
func lambertW(x float64) float64 {
	switch {
	case x == 0:
		return 0
	case x == invE:
		return -1
	}

	var w float64
	switch {
	case x < -0.25:
		// Series about the branch point.
		p := math.Sqrt(2 * (math.E*x + 1))
		w = -1 + p - p*p/3 + 11.0/72*p*p*p
	case x < 3:
		w = math.Log1p(x)
	default:
		lx := math.Log(x)
		w = lx - math.Log(lx)
	}

	for i := 0; i < TowerIterCap; i++ {
		ew := math.Exp(w)
		f := w*ew - x
		wp1 := w + 1
		denom := ew*wp1 - (w+2)*f/(2*wp1)
		if denom == 0 || !isFinite(denom) {
			break
		}
		next := w - f/denom
		if closeEnough(next, w) {
			return next
		}
		w = next
	}
	Logger().Debug("hypernum: lambertw did not converge",
		zap.Float64("x", x), zap.Float64("w", w))
	return w
}

// lambertWLog solves w + ln w = l by Newton's method, for l too large for
// e^l to fit a float64.
func lambertWLog(l float64) float64 {
	w := l - math.Log(l)
	for i := 0; i < TowerIterCap; i++ {
		next := w - (w+math.Log(w)-l)/(1+1/w)
		if closeEnough(next, w) {
			return next
		}
		w = next
	}
	Logger().Debug("hypernum: lambertw did not converge", zap.Float64("ln_x", l))
	return w
}
