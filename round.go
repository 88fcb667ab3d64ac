package hypernum

import "math"

// Floor, Round and Ceil only act on values small enough to hold a fractional
// part in a float64; anything at or beyond 2^53 in magnitude is already an
// integer and is returned unchanged. Results within float noise of an
// integer snap to it.

func (n Number) Floor() Number { return n.roundWith(math.Floor) }
func (n Number) Ceil() Number  { return n.roundWith(math.Ceil) }

// Round rounds half up, so Round(-2.5) is -2.
func (n Number) Round() Number {
	return n.roundWith(func(f float64) float64 { return math.Floor(f + 0.5) })
}

func (n Number) roundWith(fn func(float64) float64) Number {
	if n.absent || n.sign == 0 || !n.fits() {
		return n
	}
	f := n.Float64()
	if math.Abs(f) >= maxExactInt {
		return n
	}
	if r, ok := nearInt(f); ok {
		return FromFloat64(r)
	}
	return FromFloat64(fn(f))
}

// IsInteger reports whether n is an integer. Every value at or beyond 2^53
// in magnitude counts as one; Absent does not.
func (n Number) IsInteger() bool {
	if n.absent {
		return false
	}
	if !n.fits() {
		return true
	}
	f := n.Float64()
	if math.Abs(f) >= maxExactInt {
		return true
	}
	_, ok := nearInt(f)
	return ok
}
