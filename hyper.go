package hypernum

import (
	"math"

	"go.uber.org/zap"
)

// Height is any type accepted as a hyperoperation height.
type Height interface {
	float64 | int | Number
}

func resolveHeight[H Height](h H) Number {
	switch v := any(h).(type) {
	case Number:
		return v
	case float64:
		return FromFloat64(v)
	case int:
		return FromInt(v)
	}
	panic("unreachable")
}

// Tet returns base↑↑height, a tower of height copies of base.
func Tet[H Height](base Number, height H) Number {
	return hyper(2, base, resolveHeight(height))
}

// Pent returns base↑↑↑height.
func Pent[H Height](base Number, height H) Number {
	return hyper(3, base, resolveHeight(height))
}

// Hext returns base↑↑↑↑height.
func Hext[H Height](base Number, height H) Number {
	return hyper(4, base, resolveHeight(height))
}

// Slog returns the super-logarithm of x in the given base: the height h for
// which Tet(base, h) is x.
func Slog[H Height](x Number, base H) Number {
	return slog(x, resolveHeight(base))
}

func (n Number) Tet(height Number) Number  { return hyper(2, n, height) }
func (n Number) Pent(height Number) Number { return hyper(3, n, height) }
func (n Number) Hext(height Number) Number { return hyper(4, n, height) }
func (n Number) Slog(base Number) Number   { return slog(n, base) }

// hyper10 returns H_level(h) for base 10: 10^h at level 1, 10^^h at level 2
// and so on. Positive heights are applied structurally, so the result is
// exact in the layer counts. A height that already sits two or more levels
// above level is absorbed.
func hyper10(level int, h Number) Number {
	if h.absent {
		return Absent
	}
	hf := h.Float64()
	if level == 1 {
		if h.sign <= 0 || hf < 1 {
			return FromFloat64(pow10(hf))
		}
	} else if h.sign <= 0 {
		switch {
		case hf <= -2:
			return Absent
		case hf >= -1:
			return FromFloat64(hf + 1)
		case level == 2:
			return FromFloat64(log10(hf + 2))
		default:
			return FromFloat64(hf + 1)
		}
	}

	k := h.topLevel()
	c := h.layers
	switch {
	case k < level:
		c[level-1] = 1
		return normalize(1, h.mult, c)

	case k == level:
		c[level-1]++
		return normalize(1, h.mult, c)

	case k == level+1 && c[k-1] == 1:
		// H_L(H_{L+1}(x)) = H_{L+1}(x+1)
		c[k-1] = 0
		inner := Number{sign: 1, mult: h.mult, layers: c}.Add(One)
		ic := inner.layers
		ic[k-1]++
		return normalize(1, inner.mult, ic)
	}
	return h
}

// superlog10 inverts hyper10: it returns the h for which H_level(h) is v.
// v must not be negative.
func superlog10(level int, v Number) Number {
	if v.absent || v.sign < 0 {
		return Absent
	}
	if v.sign == 0 {
		if level == 1 {
			return Absent
		}
		return FromFloat64(-1)
	}
	if level == 1 && v.plain() {
		return FromFloat64(log10(v.mult))
	}

	k := v.topLevel()
	c := v.layers
	switch {
	case k < level:
		l := v.layered()
		return FromFloat64(l.height(level, levels))

	case k == level:
		c[level-1]--
		return normalize(1, v.mult, c)

	case k == level+1 && c[k-1] == 1:
		c[k-1] = 0
		inner := Number{sign: 1, mult: v.mult, layers: c}.Sub(One)
		ic := inner.layers
		ic[k-1]++
		return normalize(1, inner.mult, ic)
	}
	return v
}

// hyper computes b[level]h for level 2 (tetration) and up. Integer heights
// iterate the level below from a seed at the fractional part of h; once the
// running value grows past float64 range the remaining height is added in
// base-10 height space and raised back with hyper10.
func hyper(level int, b, h Number) Number {
	if b.absent || h.absent || b.sign <= 0 {
		return Absent
	}
	if b == One {
		return One
	}

	hf := h.Float64()
	if h.sign < 0 {
		if !h.fits() {
			return Absent
		}
		return hyperBelowZero(level, b, hf)
	}

	huge := !h.fits() || hf >= maxExactInt
	var whole, frac float64
	if !huge {
		whole = math.Floor(hf)
		frac = hf - whole
	}

	r := seed(b, frac)
	for i := 0; ; i++ {
		if !huge && float64(i) >= whole {
			return r
		}
		if i >= HyperIterLimit && !r.fits() {
			rem := h.Sub(FromFloat64(frac + float64(i)))
			return hyper10(level, superlog10(level, r).Add(rem))
		}
		if i >= TowerIterCap {
			Logger().Debug("hypernum: hyperoperation iteration cap reached",
				zap.Int("level", level),
				zap.Float64("base", b.Float64()))
			return r
		}
		next := hyperStep(level-1, b, r)
		if next.absent {
			return next
		}
		if next == r || (next.fits() && r.fits() && closeEnough(next.Float64(), r.Float64())) {
			// Fixed point of a convergent tower.
			return next
		}
		r = next
	}
}

func hyperStep(level int, b, h Number) Number {
	if level == 1 {
		return b.Pow(h)
	}
	return hyper(level, b, h)
}

// hyperBelowZero extends b[level]h to h in (-2, 0) by running the recurrence
// b[L](h+1) = b[L-1](b[L]h) backwards.
func hyperBelowZero(level int, b Number, hf float64) Number {
	switch {
	case hf <= -2:
		return Absent
	case hf == -1:
		return Zero
	case hf > -1:
		if level == 2 {
			return seed(b, hf+1).Log(b)
		}
		return FromFloat64(hf + 1)
	}
	if level == 2 {
		return seed(b, hf+2).Log(b).Log(b)
	}
	return slog(FromFloat64(hf+2), b)
}

// seed is the fractional-height approximation b↑↑f for f in [0,1):
// 1 + (b-1)·f·b^(f-1). It meets b↑↑0 = 1 and b↑↑1 = b.
func seed(b Number, f float64) Number {
	if f == 0 {
		return One
	}
	fn := FromFloat64(f)
	t := b.Sub(One).Mul(fn).Mul(b.Pow(FromFloat64(f - 1)))
	return One.Add(t)
}

// seedInverse returns the f in [0,1] with seed(b, f) = y, for y between 1
// and b:
//
//	f = W(ln b · b · (y-1)/(b-1)) / ln b
func seedInverse(b, y Number) float64 {
	if y == One {
		return 0
	}
	lnb := b.Ln()
	arg := lnb.Mul(b).Mul(y.Sub(One)).Div(b.Sub(One))
	f := arg.LambertW().Div(lnb).Float64()
	if !isFinite(f) {
		return 0
	}
	return math.Max(0, math.Min(1, f))
}

// slogDirectHeight is the base-10 height above which slog stops iterating
// logarithms and offsets the structural base-10 height instead.
const slogDirectHeight = 50

// slogReferenceHeight is the base-10 height of the tower used to measure the
// offset between base-b and base-10 super-logarithms.
const slogReferenceHeight = 12

func slog(x, base Number) Number {
	if x.absent || base.absent || base.Cmp(One) <= 0 {
		return Absent
	}
	if !x.fits() && x.sign > 0 {
		h := superlog10(2, x)
		if !h.fits() || h.Float64() > slogDirectHeight {
			// Tall towers in different bases differ in height by a constant.
			return h.Add(FromFloat64(slogOffset(base)))
		}
	}
	return FromFloat64(slogIterate(x, base))
}

func slogOffset(base Number) float64 {
	ref := hyper10(2, FromFloat64(slogReferenceHeight))
	return slogIterate(ref, base) - slogReferenceHeight
}

// slogIterate counts logarithms down into [1, base), or exponentials up into
// it, then adds the fractional part from seedInverse.
func slogIterate(x, base Number) float64 {
	var count float64
	r := x
	for i := 0; r.Cmp(base) >= 0; i++ {
		if i >= TowerIterCap {
			Logger().Debug("hypernum: slog iteration cap reached",
				zap.Float64("base", base.Float64()))
			return count
		}
		r = r.Log(base)
		count++
	}
	for i := 0; r.Cmp(One) < 0 && i < 3; i++ {
		r = base.Pow(r)
		count--
	}
	return count + seedInverse(base, r)
}
