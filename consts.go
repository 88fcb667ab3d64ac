package hypernum

import "math"

const (
	// levels is the number of height fields: exponent, tetrate, pentate,
	// hexate and heptate.
	levels = 5

	// PromoteHeight is the height, measured at the next level up, at which
	// a layer is promoted. A composite of layers 1..L whose (L+1)-height
	// reaches PromoteHeight is re-expressed as one application of level L+1.
	PromoteHeight = 10

	// DominanceDigits is the log10-magnitude gap beyond which Add and Sub
	// return the larger operand unchanged.
	DominanceDigits = 17

	// HyperIterLimit is the number of lower-level applications Tet, Pent and
	// Hext perform before switching to the closed form.
	HyperIterLimit = 10

	// TowerIterCap bounds iteration for convergent towers and for the
	// Lambert W and super-logarithm solvers.
	TowerIterCap = 100

	// SolverTolerance is the relative convergence tolerance of the numeric
	// solvers.
	SolverTolerance = 1e-10

	// maxNormalizeSteps bounds the rewrite loop in normalize. Canonical
	// values from any finite input settle in far fewer steps.
	maxNormalizeSteps = 4096

	// maxExactInt is the largest float64 below which every integer is exact.
	maxExactInt = 1 << 53

	// epsilon is the gap between 1 and the next float64.
	epsilon = 0x1p-52

	// mantissaDropExponent is the exponent above which ToScientific stops
	// printing a mantissa.
	mantissaDropExponent = 1e15
)

var (
	ln10 = math.Ln10

	// invE is -1/e, the branch point of the Lambert W function.
	invE = -1 / math.E

	// eToInvE is e^(1/e), the largest base whose infinite tower converges.
	eToInvE = math.Exp(1 / math.E)
)

var (
	// Zero is the canonical zero value.
	Zero = Number{}

	// One is the canonical one.
	One = Number{sign: 1, mult: 1}

	// Absent is the result of an undefined operation such as division by
	// zero or the logarithm of a non-positive number. It propagates through
	// every operation.
	Absent = Number{absent: true}

	// Googol is 10^100.
	Googol = FromFloat64(1e100)

	// Googolplex is 10^(10^100).
	Googolplex = Googol.exp10()

	// Googolplexplex is 10^(10^(10^100)).
	Googolplexplex = Googolplex.exp10()

	// Graham1 is 3↑↑↑↑3, the first step towards Graham's number.
	Graham1 = Hext(FromFloat64(3), 3)
)
