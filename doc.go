/*
Package hypernum provides Number, a layered representation of values far
beyond float64 range, implementing arithmetic, logarithms and the
hyperoperations up to hexation.

A Number is a sign, a float64 multiplicand and five counts, one per
hyperoperation level:

	sign * H5^heptate(H4^hexate(H3^pentate(H2^tetrate(H1^exponent(multiplicand)))))

where H1(x) = 10^x, H2(x) = 10^^x and so on. Every Number is kept in a single
canonical form, so Numbers can be compared with ==.

Numbers are values; all operations return new values.

Simple example:

	n := hypernum.FromFloat64(10).Pow(hypernum.FromFloat64(100))
	fmt.Println(n.Equal(hypernum.Googol))
	// Output: true

Numbers can be created from a variety of sources:

	FromFloat64(f float64) Number
	From64(v int64) Number
	FromInt(v int) Number
	FromFields(f Fields) Number
	FromScientific(s string) (Number, error)
	FromMantissaExponent(mantissa, exponent float64) Number
	FromOmega(sign int, array []float64) Number

Precision is that of a float64 multiplicand. Once two operands differ by
more than DominanceDigits orders of magnitude, adding the smaller one has no
effect.

Undefined results, such as division by zero or the logarithm of a negative
number, are the Absent value, which propagates through every operation.

Numbers render through a Formatter in suffix ("1.5K"), scientific
("2.4e5.2K"), E-chain ("ee1M"), Ent ("E(2)3.5#1") and Hyper-E notations.
DefaultFormatter backs Number.String.

Number supports the following formatting and marshalling interfaces:

	- fmt.Stringer
	- json.Marshaler
	- json.Unmarshaler
	- encoding.BinaryMarshaler
	- encoding.BinaryUnmarshaler
	- encoding.TextUnmarshaler

*/
package hypernum
