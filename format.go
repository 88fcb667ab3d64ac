package hypernum

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
)

// Abbreviation selects the notation used by Formatter.String.
type Abbreviation string

const (
	AbbreviateSuffix     Abbreviation = "suffix"
	AbbreviateScientific Abbreviation = "scientific"
)

func (a Abbreviation) Validate() error {
	switch a {
	case AbbreviateSuffix, AbbreviateScientific:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrAbbreviation, string(a))
}

// MaxDecimalPoints bounds FormatConfig.DecimalPoints. Rendered digits stop
// at the tenth significant one, so more places only pad small fractions.
const MaxDecimalPoints = 20

// maxEChain is the most leading "e" ToEChain will print before switching to
// ToEnt.
const maxEChain = 10

type FormatConfig struct {
	Suffixes            Suffixes
	DecimalPoints       int
	DefaultAbbreviation Abbreviation
}

func DefaultFormatConfig() FormatConfig {
	return FormatConfig{
		Suffixes:            DefaultSuffixes(),
		DecimalPoints:       2,
		DefaultAbbreviation: AbbreviateSuffix,
	}
}

func (c FormatConfig) Validate() error {
	if err := c.Suffixes.Validate(); err != nil {
		return err
	}
	if c.DecimalPoints < 0 || c.DecimalPoints > MaxDecimalPoints {
		return fmt.Errorf("%w: %d", ErrDecimalPoints, c.DecimalPoints)
	}
	return c.DefaultAbbreviation.Validate()
}

// Formatter renders Numbers as text. Its configuration is replaced as a
// whole on every change, so a render always sees one consistent snapshot.
// A Formatter is safe for concurrent use.
type Formatter struct {
	mu  sync.Mutex
	cfg atomic.Pointer[FormatConfig]
}

// DefaultFormatter backs Number.String and the Change* functions.
var DefaultFormatter = MustNewFormatter(DefaultFormatConfig())

func NewFormatter(cfg FormatConfig) (*Formatter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.Suffixes = cfg.Suffixes.clone()
	f := &Formatter{}
	f.cfg.Store(&cfg)
	return f, nil
}

func MustNewFormatter(cfg FormatConfig) *Formatter {
	f, err := NewFormatter(cfg)
	if err != nil {
		panic(err)
	}
	return f
}

// Config returns a copy of the current configuration.
func (f *Formatter) Config() FormatConfig {
	c := *f.cfg.Load()
	c.Suffixes = c.Suffixes.clone()
	return c
}

func (f *Formatter) update(fn func(c *FormatConfig)) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	next := f.Config()
	fn(&next)
	if err := next.Validate(); err != nil {
		return err
	}
	f.cfg.Store(&next)
	return nil
}

// SetConfig replaces the whole configuration. An invalid configuration is
// rejected and the current one kept.
func (f *Formatter) SetConfig(cfg FormatConfig) error {
	cfg.Suffixes = cfg.Suffixes.clone()
	return f.update(func(c *FormatConfig) { *c = cfg })
}

func (f *Formatter) SetSuffixes(s Suffixes) error {
	s = s.clone()
	return f.update(func(c *FormatConfig) { c.Suffixes = s })
}

func (f *Formatter) SetDecimalPoints(dp int) error {
	return f.update(func(c *FormatConfig) { c.DecimalPoints = dp })
}

func (f *Formatter) SetDefaultAbbreviation(a Abbreviation) error {
	return f.update(func(c *FormatConfig) { c.DefaultAbbreviation = a })
}

// ChangeSuffixes replaces the suffix tables of DefaultFormatter.
func ChangeSuffixes(s Suffixes) error {
	return DefaultFormatter.SetSuffixes(s)
}

func ChangeDecimalPoints(dp int) error {
	return DefaultFormatter.SetDecimalPoints(dp)
}

func ChangeDefaultAbbreviation(a Abbreviation) error {
	return DefaultFormatter.SetDefaultAbbreviation(a)
}

// String renders n in the configured default notation.
func (f *Formatter) String(n Number) string {
	c := f.cfg.Load()
	if c.DefaultAbbreviation == AbbreviateScientific {
		return c.scientific(n)
	}
	return c.suffix(n)
}

// Suffix renders n with a magnitude suffix, such as "1.5K" or "12.3UDe".
// Values beyond what the tables can name fall back to Scientific.
func (f *Formatter) Suffix(n Number) string { return f.cfg.Load().suffix(n) }

// Scientific renders n as "<mantissa>e<exponent>", with the exponent itself
// in suffix notation when large: 2.4e5200 renders as "2.4e5.2K".
func (f *Formatter) Scientific(n Number) string { return f.cfg.Load().scientific(n) }

// EChain renders n with one leading "e" per power of ten taken, such as
// "ee1M" for 10^(10^(10^6)).
func (f *Formatter) EChain(n Number) string { return f.cfg.Load().eChain(n) }

// Ent renders n as "E(exponent)multiplicand", followed by "#"-separated
// tetrate to heptate counts when any are nonzero.
func (f *Formatter) Ent(n Number) string { return f.cfg.Load().ent(n) }

// HyperE renders every field of n: "E<multiplicand>#<exponent>#...#<heptate>".
func (f *Formatter) HyperE(n Number) string { return f.cfg.Load().hyperE(n) }

func (n Number) ToSuffix() string     { return DefaultFormatter.Suffix(n) }
func (n Number) ToScientific() string { return DefaultFormatter.Scientific(n) }
func (n Number) ToEChain() string     { return DefaultFormatter.EChain(n) }
func (n Number) ToEnt() string        { return DefaultFormatter.Ent(n) }
func (n Number) ToHyperE() string     { return DefaultFormatter.HyperE(n) }

// special renders the values every notation shares. It returns the prefix
// for n's sign and whether the caller should render n's magnitude.
func special(n Number) (out string, ok bool) {
	switch {
	case n.absent:
		return "NaN", false
	case n.sign == 0:
		return "0", false
	case n.sign < 0:
		return "-", true
	}
	return "", true
}

// magnitude returns log10|n| when it fits a float64. Results within float
// noise of an integer are snapped to it, so 1e3003 names its own suffix.
func magnitude(n Number) (float64, bool) {
	l := n.Abs().log10()
	if !l.fits() {
		return 0, false
	}
	f := l.Float64()
	if r, ok := nearInt(f); ok {
		f = r
	}
	return f, true
}

func (c *FormatConfig) suffix(n Number) string {
	prefix, ok := special(n)
	if !ok {
		return prefix
	}
	l, ok := magnitude(n)
	if !ok || l >= mantissaDropExponent {
		return c.scientific(n)
	}
	if l < 3 {
		if l < -float64(c.DecimalPoints) {
			return c.scientific(n)
		}
		return prefix + formatDecimal(n.Abs().Float64(), c.DecimalPoints)
	}
	t := math.Floor(l / 3)
	name, ok := c.Suffixes.Name(uint64(t) - 1)
	if !ok {
		return c.scientific(n)
	}
	return prefix + formatDecimal(pow10(l-3*t), c.DecimalPoints) + name
}

func (c *FormatConfig) scientific(n Number) string {
	prefix, ok := special(n)
	if !ok {
		return prefix
	}
	if n.topLevel() >= 2 {
		return c.hyperE(n)
	}
	l, ok := magnitude(n)
	if !ok {
		return prefix + "e" + c.suffix(n.Abs().log10())
	}
	if l >= 0 && l < 3 {
		return prefix + formatDecimal(n.Abs().Float64(), c.DecimalPoints)
	}
	e := math.Floor(l)
	if e >= mantissaDropExponent {
		return prefix + "e" + c.suffix(FromFloat64(l))
	}
	mant := formatDecimal(pow10(l-e), c.DecimalPoints)
	return prefix + mant + "e" + c.suffix(FromFloat64(e))
}

func (c *FormatConfig) eChain(n Number) string {
	prefix, ok := special(n)
	if !ok {
		return prefix
	}
	if n.topLevel() >= 2 {
		return c.ent(n)
	}
	v, k := n.Abs(), 0
	for !v.fits() {
		if k == maxEChain {
			return c.ent(n)
		}
		v = v.log10()
		k++
	}
	return prefix + strings.Repeat("e", k) + c.suffix(v)
}

func (c *FormatConfig) ent(n Number) string {
	prefix, ok := special(n)
	if !ok {
		return prefix
	}
	var sb strings.Builder
	sb.WriteString(prefix)
	sb.WriteString("E(")
	sb.WriteString(strconv.FormatUint(n.layers[0], 10))
	sb.WriteString(")")
	sb.WriteString(formatDecimal(n.mult, c.DecimalPoints))

	top := n.topLevel()
	for i := 1; i < top; i++ {
		sb.WriteByte('#')
		sb.WriteString(strconv.FormatUint(n.layers[i], 10))
	}
	return sb.String()
}

func (c *FormatConfig) hyperE(n Number) string {
	prefix, ok := special(n)
	if !ok {
		return prefix
	}
	var sb strings.Builder
	sb.WriteString(prefix)
	sb.WriteString("E")
	sb.WriteString(formatDecimal(n.mult, c.DecimalPoints))
	for _, v := range n.layers {
		sb.WriteByte('#')
		sb.WriteString(strconv.FormatUint(v, 10))
	}
	return sb.String()
}
