package hypernum

import "math"

// Neg flips the sign of n.
func (n Number) Neg() Number {
	if n.absent || n.sign == 0 {
		return n
	}
	n.sign = -n.sign
	return n
}

// Unary is Neg under its original name.
func (n Number) Unary() Number { return n.Neg() }

func (n Number) Abs() Number {
	if n.sign < 0 {
		n.sign = 1
	}
	return n
}

// Add returns n + b. When the log10-magnitudes of the operands differ by
// more than DominanceDigits, or the larger magnitude no longer fits a
// float64 in log form, the larger operand is returned unchanged. So is an
// operand that b does not move in float64 addition: 1e20 + 1 is 1e20.
func (n Number) Add(b Number) Number {
	if n.absent || b.absent {
		return Absent
	}
	if b.sign == 0 {
		return n
	}
	if n.sign == 0 {
		return b
	}

	a := n
	ma, mb := a.Abs(), b.Abs()
	if ma.Cmp(mb) < 0 {
		a, b = b, a
		ma, mb = mb, ma
	}
	same := a.sign == b.sign
	if !same && ma == mb {
		return Zero
	}

	if a.fits() && b.fits() {
		af := a.Float64()
		if r := af + b.Float64(); r == af {
			return a
		} else if isFinite(r) {
			return FromFloat64(r)
		}
	}

	la := ma.log10()
	if !la.fits() {
		return a
	}
	lb := mb.log10()
	laf := la.Float64()
	d := laf - lb.Float64()
	if d > DominanceDigits {
		return a
	}

	var l float64
	if same {
		l = laf + math.Log10(1+pow10(-d))
	} else {
		x := 1 - pow10(-d)
		if x <= 0 {
			return Zero
		}
		l = laf + math.Log10(x)
	}
	r := FromFloat64(l).exp10()
	if a.sign < 0 {
		r = r.Neg()
	}
	return r
}

// Sub returns n - b, subject to the same dominance rule as Add.
func (n Number) Sub(b Number) Number {
	return n.Add(b.Neg())
}

// Mul returns n * b. Outside float64 range the product is formed by adding
// log10-magnitudes, so a negligible operand still folds into the exponent
// layer of the dominant one rather than being discarded.
func (n Number) Mul(b Number) Number {
	if n.absent || b.absent {
		return Absent
	}
	if n.sign == 0 || b.sign == 0 {
		return Zero
	}
	if b == One {
		return n
	}
	if n == One {
		return b
	}
	if n.fits() && b.fits() {
		if r := n.Float64() * b.Float64(); isFinite(r) && r != 0 {
			return FromFloat64(r)
		}
	}
	r := n.Abs().log10().Add(b.Abs().log10()).exp10()
	if n.sign != b.sign {
		r = r.Neg()
	}
	return r
}

// Div returns n / b. Division by zero returns Absent.
func (n Number) Div(b Number) Number {
	if n.absent || b.absent || b.sign == 0 {
		return Absent
	}
	if n.sign == 0 {
		return Zero
	}
	if b == One {
		return n
	}
	if n.fits() && b.fits() {
		if r := n.Float64() / b.Float64(); isFinite(r) && r != 0 {
			return FromFloat64(r)
		}
	}
	r := n.Abs().log10().Sub(b.Abs().log10()).exp10()
	if n.sign != b.sign {
		r = r.Neg()
	}
	return r
}

// Reciprocal returns 1/n, or Absent for zero.
func (n Number) Reciprocal() Number {
	return One.Div(n)
}

// Pow returns n^e. A negative base requires an integer exponent and zero
// to a negative power is Absent. When both operands fit a float64 the
// result is computed directly; otherwise the exponent-layer height of n is
// scaled by e and raised back through exp10.
func (n Number) Pow(e Number) Number {
	if n.absent || e.absent {
		return Absent
	}
	if e.sign == 0 {
		return One
	}
	if n.sign == 0 {
		if e.sign > 0 {
			return Zero
		}
		return Absent
	}
	if n.sign < 0 {
		if !e.IsInteger() {
			return Absent
		}
		r := n.Abs().Pow(e)
		if e.isOdd() {
			r = r.Neg()
		}
		return r
	}
	if n == One {
		return One
	}
	if e == One {
		return n
	}
	if n.fits() && e.fits() {
		if r := pow(n.Float64(), e.Float64()); isFinite(r) && r != 0 {
			return FromFloat64(r)
		}
	}
	return n.log10().Mul(e).exp10()
}

// Root returns the k-th root of n. Roots of negative numbers are only
// defined for odd integer k; anything else is Absent, as is k == 0.
func (n Number) Root(k Number) Number {
	if n.absent || k.absent || k.sign == 0 {
		return Absent
	}
	if n.sign == 0 {
		if k.sign > 0 {
			return Zero
		}
		return Absent
	}
	if n.sign < 0 {
		if !k.IsInteger() || !k.isOdd() {
			return Absent
		}
		return n.Abs().Root(k).Neg()
	}
	if n.fits() && k.fits() {
		if r := math.Pow(n.Float64(), 1/k.Float64()); isFinite(r) && r != 0 {
			return FromFloat64(r)
		}
	}
	return n.log10().Div(k).exp10()
}

// Mod returns n - floor(n/b)*b, which takes the sign of b. A zero divisor is
// Absent. When the quotient is too large to hold an exact integer the
// remainder is unknowable and Mod returns Zero.
func (n Number) Mod(b Number) Number {
	if n.absent || b.absent || b.sign == 0 {
		return Absent
	}
	if n.sign == 0 {
		return Zero
	}
	if n.fits() && b.fits() {
		fa, fb := n.Float64(), b.Float64()
		return FromFloat64(fa - math.Floor(fa/fb)*fb)
	}
	if n.Abs().Cmp(b.Abs()) < 0 {
		if n.sign == b.sign {
			return n
		}
		return n.Add(b)
	}
	q := n.Div(b)
	if !q.fits() || math.Abs(q.Float64()) >= maxExactInt {
		return Zero
	}
	return n.Sub(q.Floor().Mul(b))
}

// Log10 returns the base-10 logarithm of n, or Absent if n <= 0.
func (n Number) Log10() Number {
	if n.absent || n.sign <= 0 {
		return Absent
	}
	return n.log10()
}

// Ln returns the natural logarithm of n, or Absent if n <= 0.
func (n Number) Ln() Number {
	if n.absent || n.sign <= 0 {
		return Absent
	}
	if n.fits() {
		return FromFloat64(math.Log(n.Float64()))
	}
	return n.log10().Mul(FromFloat64(ln10))
}

// Log returns the logarithm of n in the given base. Non-positive operands,
// non-positive bases and base 1 are Absent.
func (n Number) Log(base Number) Number {
	if n.absent || base.absent || n.sign <= 0 || base.sign <= 0 || base == One {
		return Absent
	}
	if n.fits() && base.fits() {
		return FromFloat64(log10(n.Float64()) / log10(base.Float64()))
	}
	return n.log10().Div(base.log10())
}

// log10 is Log10 without the domain check; n must be positive.
func (n Number) log10() Number {
	return superlog10(1, n)
}

// exp10 returns 10^n.
func (n Number) exp10() Number {
	return hyper10(1, n)
}

// isOdd reports whether n is an odd integer small enough to tell.
func (n Number) isOdd() bool {
	if !n.fits() {
		return false
	}
	f := n.Float64()
	if math.Abs(f) >= maxExactInt {
		return false
	}
	r, ok := nearInt(f)
	return ok && math.Mod(r, 2) != 0
}
