package hypernum

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"math"
)

// Number is a sign, a multiplicand and five hyperoperation heights:
//
//	sign * H5^heptate(H4^hexate(H3^pentate(H2^tetrate(H1^exponent(multiplicand)))))
//
// where H1(x) = 10^x, H2(x) = 10^^x and so on. Numbers are values; all
// operations return new Numbers. The zero value is zero.
type Number struct {
	sign   int8
	absent bool
	mult   float64
	layers [levels]uint64
}

// Fields is the plain structural form of a Number, used for storage and
// transport. FromFields turns it back into a canonical Number.
type Fields struct {
	Sign         int     `json:"sign"`
	Multiplicand float64 `json:"multiplicand"`
	Exponent     uint64  `json:"exponent"`
	Tetrate      uint64  `json:"tetrate"`
	Pentate      uint64  `json:"pentate"`
	Hexate       uint64  `json:"hexate"`
	Heptate      uint64  `json:"heptate"`
}

// FromFloat64 creates a Number from a float64. NaN and the infinities have
// no layered representation and produce Absent.
func FromFloat64(f float64) Number {
	if !isFinite(f) {
		return Absent
	}
	return normalize(1, f, [levels]uint64{})
}

func From64(v int64) Number { return FromFloat64(float64(v)) }
func FromInt(v int) Number  { return FromFloat64(float64(v)) }

// FromFields validates and re-normalizes a structural Number. A sign of 0
// yields Zero regardless of the other fields.
func FromFields(f Fields) Number {
	if f.Sign < -1 || f.Sign > 1 {
		return Absent
	}
	return normalize(f.Sign, f.Multiplicand, [levels]uint64{
		f.Exponent, f.Tetrate, f.Pentate, f.Hexate, f.Heptate,
	})
}

// FromMantissaExponent converts the legacy two-field form
// mantissa * 10^exponent.
func FromMantissaExponent(mantissa, exponent float64) Number {
	if !isFinite(mantissa) || !isFinite(exponent) {
		return Absent
	}
	if mantissa == 0 {
		return Zero
	}
	sign := 1
	if mantissa < 0 {
		sign, mantissa = -1, -mantissa
	}
	v := FromFloat64(log10(mantissa) + exponent).exp10()
	if sign < 0 {
		v = v.Neg()
	}
	return v
}

// FromOmega converts the legacy sign-plus-array form, where array[0] is the
// base value and array[i] counts applications of the i-th hyperoperation.
// Arrays reaching past heptation produce Absent.
func FromOmega(sign int, array []float64) Number {
	if len(array) == 0 {
		return Zero
	}
	if len(array) > levels+1 {
		for _, v := range array[levels+1:] {
			if v != 0 {
				return Absent
			}
		}
	}
	var c [levels]uint64
	for i := 1; i < len(array) && i <= levels; i++ {
		v := array[i]
		if !isFinite(v) || v < 0 || v != math.Trunc(v) {
			return Absent
		}
		c[i-1] = uint64(v)
	}
	return normalize(sign, array[0], c)
}

func (n Number) IsZero() bool   { return n == Zero }
func (n Number) IsAbsent() bool { return n.absent }

// Sign returns -1, 0 or 1. Absent reports 0.
func (n Number) Sign() int { return int(n.sign) }

func (n Number) Multiplicand() float64 { return n.mult }
func (n Number) Exponent() uint64      { return n.layers[0] }
func (n Number) Tetrate() uint64       { return n.layers[1] }
func (n Number) Pentate() uint64       { return n.layers[2] }
func (n Number) Hexate() uint64        { return n.layers[3] }
func (n Number) Heptate() uint64       { return n.layers[4] }

// Fields returns the structural form of n. See FromFields for the
// counterpart.
func (n Number) Fields() Fields {
	return Fields{
		Sign:         int(n.sign),
		Multiplicand: n.mult,
		Exponent:     n.layers[0],
		Tetrate:      n.layers[1],
		Pentate:      n.layers[2],
		Hexate:       n.layers[3],
		Heptate:      n.layers[4],
	}
}

// Float64 converts n to a float64. Values beyond float64 range become
// +Inf or -Inf; Absent becomes NaN. Small integers round-trip:
// FromFloat64(90).Float64() is 90, not 89.99999999999999.
func (n Number) Float64() float64 {
	if n.absent {
		return math.NaN()
	}
	if n.sign == 0 {
		return 0
	}
	if n.topLevel() > 1 {
		return math.Inf(int(n.sign))
	}
	v := n.mult
	for i := uint64(0); i < n.layers[0]; i++ {
		v = unlog10(v)
		if math.IsInf(v, 0) {
			break
		}
	}
	return float64(n.sign) * v
}

// fits reports whether n converts to a finite float64.
func (n Number) fits() bool {
	return !n.absent && isFinite(n.Float64())
}

// String formats n using DefaultFormatter.
func (n Number) String() string {
	return DefaultFormatter.String(n)
}

func (n Number) MarshalJSON() ([]byte, error) {
	if n.absent {
		return []byte("null"), nil
	}
	return json.Marshal(n.Fields())
}

// UnmarshalJSON accepts a Fields object, a bare JSON number or null, which
// decodes to Absent.
func (n *Number) UnmarshalJSON(bts []byte) error {
	if string(bts) == "null" {
		*n = Absent
		return nil
	}
	if len(bts) > 0 && bts[0] != '{' {
		var f float64
		if err := json.Unmarshal(bts, &f); err != nil {
			return fmt.Errorf("hypernum: invalid JSON %q: %w", string(bts), err)
		}
		*n = FromFloat64(f)
		return nil
	}
	var f Fields
	if err := json.Unmarshal(bts, &f); err != nil {
		return fmt.Errorf("hypernum: invalid JSON %q: %w", string(bts), err)
	}
	v := FromFields(f)
	if v.absent {
		return fmt.Errorf("hypernum: invalid fields %+v", f)
	}
	*n = v
	return nil
}

// binarySize is the encoded size of MarshalBinary: a flag byte, the
// multiplicand and five heights.
const binarySize = 1 + 8 + 8*levels

const (
	binaryNegative = 1 << iota
	binaryZero
	binaryAbsent
)

func (n Number) MarshalBinary() ([]byte, error) {
	out := make([]byte, binarySize)
	switch {
	case n.absent:
		out[0] = binaryAbsent
	case n.sign == 0:
		out[0] = binaryZero
	case n.sign < 0:
		out[0] = binaryNegative
	}
	binary.BigEndian.PutUint64(out[1:], math.Float64bits(n.mult))
	for i, c := range n.layers {
		binary.BigEndian.PutUint64(out[9+8*i:], c)
	}
	return out, nil
}

func (n *Number) UnmarshalBinary(bts []byte) error {
	if len(bts) != binarySize {
		return fmt.Errorf("hypernum: binary length %d, expected %d", len(bts), binarySize)
	}
	flag := bts[0]
	switch {
	case flag&binaryAbsent != 0:
		*n = Absent
		return nil
	case flag&binaryZero != 0:
		*n = Zero
		return nil
	}
	sign := 1
	if flag&binaryNegative != 0 {
		sign = -1
	}
	var c [levels]uint64
	for i := range c {
		c[i] = binary.BigEndian.Uint64(bts[9+8*i:])
	}
	v := normalize(sign, math.Float64frombits(binary.BigEndian.Uint64(bts[1:])), c)
	if v.absent || v.sign == 0 {
		return fmt.Errorf("hypernum: invalid binary multiplicand")
	}
	*n = v
	return nil
}
