package hypernum

import "math"

// layered is the unsigned working form of a Number used while rewriting
// toward canonical form. c[0] is the exponent count, c[4] the heptate count.
type layered struct {
	m float64
	c [levels]uint64
}

// normalize builds the canonical Number for sign * m under the given layer
// counts. The sign of m is folded into sign; a zero sign or multiplicand
// yields Zero and a non-finite multiplicand yields Absent.
func normalize(sign int, m float64, c [levels]uint64) Number {
	if !isFinite(m) {
		return Absent
	}
	if m < 0 {
		sign, m = -sign, -m
	}
	if sign == 0 || m == 0 {
		return Zero
	}
	l := layered{m: m, c: c}
	l.canon()

	var s int8 = 1
	if sign < 0 {
		s = -1
	}
	return Number{sign: s, mult: l.m, layers: l.c}
}

func (l *layered) canon() {
	for i := 0; i < maxNormalizeSteps; i++ {
		if !l.step() {
			return
		}
	}
	Logger().Debug("hypernum: normalize step limit reached")
}

// top returns the highest level (1-based) within 1..upto with a nonzero
// count, or 0 if the composite of those levels is a plain multiplicand.
func (l *layered) top(upto int) int {
	for k := upto; k > 0; k-- {
		if l.c[k-1] > 0 {
			return k
		}
	}
	return 0
}

// step applies the first rewrite rule that matches and reports whether it
// changed anything. Rules run innermost layer first.
func (l *layered) step() bool {
	// Fold the multiplicand into the exponent layer until it is in [1,10).
	if l.m >= 10 {
		l.m = log10(l.m)
		l.c[0]++
		return true
	}
	if l.c[0] > 0 && l.m < 1 {
		l.m = pow10(l.m)
		l.c[0]--
		return true
	}

	// A level above exponentiation applied to a plain argument x < 10 is
	// rewritten one level down: H_L(n+f) = H_{L-1}^n(10^f).
	for i := 1; i < levels; i++ {
		if l.c[i] == 0 || l.top(i) != 0 {
			continue
		}
		l.c[i]--
		if l.m >= 1 {
			n := math.Floor(l.m)
			l.c[i-1] = uint64(n)
			l.m = pow10(l.m - n)
		} else {
			l.m = pow10(l.m)
		}
		return true
	}

	// Promote when the composite of levels 1..L is at least H_{L+1}(10).
	for i := 0; i < levels-1; i++ {
		if l.c[i] == 0 {
			continue
		}
		h := l.height(i+2, i+1)
		if h < PromoteHeight {
			continue
		}
		for j := 0; j <= i; j++ {
			l.c[j] = 0
		}
		l.c[i+1]++
		l.m = h
		return true
	}
	return false
}

// height returns the real h for which H_target(h) equals the composite of
// levels 1..upto, using the linear extension. The composite must be
// canonical and every level in it must be below target.
func (l *layered) height(target, upto int) float64 {
	k := l.top(upto)
	if k == 0 {
		if l.m >= 1 {
			return log10(l.m)
		}
		return l.m - 1
	}
	if target == k+1 {
		return float64(l.c[k-1]) + l.height(k+1, k-1)
	}
	return 1 + math.Log10(l.height(target-1, upto))
}

func (n Number) layered() layered {
	return layered{m: n.mult, c: n.layers}
}

// topLevel returns the highest nonzero layer of n (1-based), 0 if none.
func (n Number) topLevel() int {
	l := n.layered()
	return l.top(levels)
}

// plain reports whether n carries no height at all.
func (n Number) plain() bool {
	return n.layers == [levels]uint64{}
}
