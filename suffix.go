package hypernum

import (
	"errors"
	"fmt"
)

var (
	ErrSuffixCardinality = errors.New("hypernum: wrong number of suffixes")
	ErrDecimalPoints     = errors.New("hypernum: decimal points out of range")
	ErrAbbreviation      = errors.New("hypernum: unknown abbreviation")
)

// Suffixes are the name tables used by suffix notation.
//
// Beginning names 1000^1 to 1000^3. Above that, the value 1000^(i+1) is
// named by its illion index i, written in base 1000. Each base-1000 digit
// g is spelled units, tens then hundreds from First, Second and Third, and
// digit j >= 1 is followed by Mult[j-1]. A digit of 1 in front of a Mult
// name is not spelled, so 1000^1001 is "Mi" rather than "UMi".
type Suffixes struct {
	Beginning []string `json:"beginning" mapstructure:"beginning"`
	First     []string `json:"first" mapstructure:"first"`
	Second    []string `json:"second" mapstructure:"second"`
	Third     []string `json:"third" mapstructure:"third"`
	Mult      []string `json:"mult" mapstructure:"mult"`
}

func DefaultSuffixes() Suffixes {
	return Suffixes{
		Beginning: []string{"K", "M", "B"},
		First:     []string{"U", "D", "T", "Qd", "Qn", "Sx", "Sp", "Oc", "No"},
		Second:    []string{"De", "Vt", "Tg", "Qdg", "Qng", "Sxg", "Spg", "Ocg", "Nog"},
		Third:     []string{"Ce", "Dce", "Tce", "Qdce", "Qnce", "Sxce", "Spce", "Occe", "Noce"},
		Mult:      []string{"Mi", "Mc", "Na", "Pi", "Fm", "At", "Zp", "Yc", "Xo", "Ve", "Me"},
	}
}

// Validate checks the cardinality of each table.
func (s Suffixes) Validate() error {
	check := func(name string, tier []string, want int) error {
		if len(tier) != want {
			return fmt.Errorf("%w: %s has %d, expected %d", ErrSuffixCardinality, name, len(tier), want)
		}
		return nil
	}
	if err := check("beginning", s.Beginning, 3); err != nil {
		return err
	}
	if err := check("first", s.First, 9); err != nil {
		return err
	}
	if err := check("second", s.Second, 9); err != nil {
		return err
	}
	if err := check("third", s.Third, 9); err != nil {
		return err
	}
	if len(s.Mult) == 0 {
		return fmt.Errorf("%w: mult is empty", ErrSuffixCardinality)
	}
	return nil
}

func (s Suffixes) clone() Suffixes {
	return Suffixes{
		Beginning: append([]string(nil), s.Beginning...),
		First:     append([]string(nil), s.First...),
		Second:    append([]string(nil), s.Second...),
		Third:     append([]string(nil), s.Third...),
		Mult:      append([]string(nil), s.Mult...),
	}
}

// MaxIndex returns the largest index Name can spell.
func (s Suffixes) MaxIndex() uint64 {
	max := uint64(999)
	for range s.Mult {
		if max > (maxExactInt-999)/1000 {
			return maxExactInt - 1
		}
		max = max*1000 + 999
	}
	return max
}

// Name returns the suffix for 1000^(i+1). It reports false when i is beyond
// what the Mult table can spell.
func (s Suffixes) Name(i uint64) (string, bool) {
	if i < uint64(len(s.Beginning)) {
		return s.Beginning[i], true
	}
	if i > s.MaxIndex() {
		return "", false
	}

	var groups []uint64
	for v := i; v > 0; v /= 1000 {
		groups = append(groups, v%1000)
	}

	var out string
	for j := len(groups) - 1; j >= 1; j-- {
		g := groups[j]
		if g == 0 {
			continue
		}
		if g != 1 {
			out += s.small(g)
		}
		out += s.Mult[j-1]
	}
	return out + s.small(groups[0]), true
}

// small spells g in [0, 999] from the First, Second and Third tables.
func (s Suffixes) small(g uint64) string {
	var out string
	if u := g % 10; u > 0 {
		out += s.First[u-1]
	}
	if t := g / 10 % 10; t > 0 {
		out += s.Second[t-1]
	}
	if h := g / 100; h > 0 {
		out += s.Third[h-1]
	}
	return out
}

// SuffixName is Name on the DefaultFormatter's suffix tables.
func SuffixName(i uint64) (string, bool) {
	return DefaultFormatter.Config().Suffixes.Name(i)
}
