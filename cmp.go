package hypernum

// Cmp compares n and b and returns:
//
//	-1 if n <  b
//	 0 if n == b
//	+1 if n >  b
//
// Absent sorts below every other value and equal to itself.
func (n Number) Cmp(b Number) int {
	if n.absent || b.absent {
		switch {
		case n.absent && b.absent:
			return 0
		case n.absent:
			return -1
		}
		return 1
	}
	if n.sign != b.sign {
		if n.sign < b.sign {
			return -1
		}
		return 1
	}
	if n.sign == 0 {
		return 0
	}
	return cmpMagnitude(n, b) * int(n.sign)
}

// cmpMagnitude orders canonical positive values lexicographically from the
// heptate count down to the multiplicand.
func cmpMagnitude(a, b Number) int {
	for i := levels - 1; i >= 0; i-- {
		if a.layers[i] != b.layers[i] {
			if a.layers[i] > b.layers[i] {
				return 1
			}
			return -1
		}
	}
	switch {
	case a.mult > b.mult:
		return 1
	case a.mult < b.mult:
		return -1
	}
	return 0
}

func (n Number) Equal(b Number) bool {
	return n == b
}

func (n Number) GreaterThan(b Number) bool {
	return n.Cmp(b) > 0
}

func (n Number) GreaterOrEqualTo(b Number) bool {
	return n.Cmp(b) >= 0
}

func (n Number) LessThan(b Number) bool {
	return n.Cmp(b) < 0
}

func (n Number) LessOrEqualTo(b Number) bool {
	return n.Cmp(b) <= 0
}
