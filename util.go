package hypernum

// Max returns the larger of a and b, preferring a when they are equal.
func Max(a, b Number) Number {
	if b.Cmp(a) > 0 {
		return b
	}
	return a
}

// Min returns the smaller of a and b, preferring a when they are equal.
func Min(a, b Number) Number {
	if b.Cmp(a) < 0 {
		return b
	}
	return a
}

// MinMax returns the smallest and largest of vs. Both are Absent if vs is
// empty.
func MinMax(vs ...Number) (min, max Number) {
	if len(vs) == 0 {
		return Absent, Absent
	}
	min, max = vs[0], vs[0]
	for _, v := range vs[1:] {
		min, max = Min(min, v), Max(max, v)
	}
	return min, max
}
