package hypernum

import (
	"fmt"
	"strconv"
	"strings"
)

// FromScientific parses "[-]mantissa[e[+-]exponent]", for example "2.4e5200"
// or "-1.5E-30". The exponent may be far outside float64 range; only its
// digits need to fit. A zero mantissa yields Zero.
func FromScientific(s string) (Number, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Absent, fmt.Errorf("hypernum: empty number")
	}

	mant, exp := s, ""
	if i := strings.IndexAny(s, "eE"); i >= 0 {
		mant, exp = s[:i], s[i+1:]
		if exp == "" {
			return Absent, fmt.Errorf("hypernum: missing exponent in %q", s)
		}
	}
	if mant == "" {
		return Absent, fmt.Errorf("hypernum: missing mantissa in %q", s)
	}

	m, err := strconv.ParseFloat(mant, 64)
	if err != nil || !isFinite(m) {
		return Absent, fmt.Errorf("hypernum: invalid mantissa in %q", s)
	}
	if exp == "" {
		return FromFloat64(m), nil
	}

	digits := strings.TrimLeft(exp, "+-")
	if len(exp)-len(digits) > 1 || digits == "" || strings.Trim(digits, "0123456789") != "" {
		return Absent, fmt.Errorf("hypernum: invalid exponent in %q", s)
	}
	e, err := strconv.ParseFloat(exp, 64)
	if err != nil || !isFinite(e) {
		return Absent, fmt.Errorf("hypernum: exponent out of range in %q", s)
	}
	return FromMantissaExponent(m, e), nil
}

// MustFromScientific is FromScientific for literals known to be valid. It
// panics on error.
func MustFromScientific(s string) Number {
	n, err := FromScientific(s)
	if err != nil {
		panic(err)
	}
	return n
}

// UnmarshalText accepts the FromScientific syntax.
func (n *Number) UnmarshalText(bts []byte) error {
	v, err := FromScientific(string(bts))
	if err != nil {
		return err
	}
	*n = v
	return nil
}
