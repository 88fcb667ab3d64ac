package hypernum

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

func TestFormatSuffix(t *testing.T) {
	for idx, tc := range []struct {
		in  Number
		out string
	}{
		{Zero, "0"},
		{Absent, "NaN"},
		{f64(5), "5"},
		{f64(0.5), "0.5"},
		{f64(123.456), "123.45"},
		{f64(1000), "1K"},
		{f64(1500), "1.5K"},
		{f64(-1500), "-1.5K"},
		{f64(999999), "999.99K"},
		{f64(1234567), "1.23M"},
		{f64(1e12), "1T"},
		{f64(1e33), "1De"},
		{f64(1e36), "1UDe"},
		{sci("1e3003"), "1Mi"},
		{sci("2.4e5200"), "24MiDTgSpce"},
		{f64(0.001), "1e-3"},
		{Googolplex, "e10DTg"},
	} {
		t.Run(fmt.Sprintf("%d/%s", idx, tc.out), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.out, tc.in.ToSuffix())
		})
	}
}

func TestFormatScientific(t *testing.T) {
	for idx, tc := range []struct {
		in  Number
		out string
	}{
		{Zero, "0"},
		{Absent, "NaN"},
		{f64(5), "5"},
		{f64(0.5), "5e-1"},
		{f64(1500), "1.5e3"},
		{f64(-1500), "-1.5e3"},
		{Googol, "1e100"},
		{sci("2.4e5200"), "2.4e5.2K"},
		{Googolplex, "e10DTg"},
		{Googolplexplex, "ee10DTg"},
		{fields(2, 1, 1), "E2#1#1#0#0#0"},
	} {
		t.Run(fmt.Sprintf("%d/%s", idx, tc.out), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.out, tc.in.ToScientific())
		})
	}
}

func TestFormatEChain(t *testing.T) {
	for idx, tc := range []struct {
		in  Number
		out string
	}{
		{Zero, "0"},
		{f64(1500), "1.5K"},
		{Googol, "10DTg"},
		{Googolplexplex, "ee10DTg"},
		{f64(1e6).exp10().exp10(), "ee1M"},
		{f64(1e6).exp10().exp10().Neg(), "-ee1M"},
		{fields(2, 1, 1), "E(1)2#1"},
	} {
		t.Run(fmt.Sprintf("%d/%s", idx, tc.out), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.out, tc.in.ToEChain())
		})
	}
}

func TestFormatEnt(t *testing.T) {
	for idx, tc := range []struct {
		in  Number
		out string
	}{
		{Zero, "0"},
		{Absent, "NaN"},
		{f64(5), "E(0)5"},
		{f64(1e10), "E(2)1"},
		{Tet(f64(10), 100), "E(1)2#1"},
		{Pent(f64(10), 10), "E(1)1#0#1"},
	} {
		t.Run(fmt.Sprintf("%d/%s", idx, tc.out), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.out, tc.in.ToEnt())
		})
	}
}

func TestFormatHyperE(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustEqual("E2#1#1#0#0#0", Tet(f64(10), 100).ToHyperE())
	tt.MustEqual("-E2#1#1#0#0#0", Tet(f64(10), 100).Neg().ToHyperE())
	tt.MustEqual("E5#0#0#0#0#0", f64(5).ToHyperE())
	tt.MustEqual("0", Zero.ToHyperE())
	tt.MustEqual("NaN", Absent.ToHyperE())
}

func TestFormatterModes(t *testing.T) {
	tt := assert.WrapTB(t)
	cfg := DefaultFormatConfig()
	cfg.DefaultAbbreviation = AbbreviateScientific
	f := MustNewFormatter(cfg)
	tt.MustEqual("1.5e3", f.String(f64(1500)))

	tt.MustOK(f.SetDefaultAbbreviation(AbbreviateSuffix))
	tt.MustEqual("1.5K", f.String(f64(1500)))

	tt.MustOK(f.SetDecimalPoints(0))
	tt.MustEqual("1K", f.String(f64(1500)))
	tt.MustEqual("1M", f.String(f64(1234567)))

	tt.MustOK(f.SetDecimalPoints(4))
	tt.MustEqual("1.2345M", f.String(f64(1234567)))
}

func TestFormatterInvalid(t *testing.T) {
	tt := assert.WrapTB(t)

	cfg := DefaultFormatConfig()
	cfg.DecimalPoints = -1
	_, err := NewFormatter(cfg)
	tt.MustAssert(errors.Is(err, ErrDecimalPoints))

	cfg.DecimalPoints = MaxDecimalPoints + 1
	_, err = NewFormatter(cfg)
	tt.MustAssert(errors.Is(err, ErrDecimalPoints))

	cfg = DefaultFormatConfig()
	cfg.DefaultAbbreviation = "roman"
	_, err = NewFormatter(cfg)
	tt.MustAssert(errors.Is(err, ErrAbbreviation))

	cfg = DefaultFormatConfig()
	cfg.Suffixes.First = nil
	_, err = NewFormatter(cfg)
	tt.MustAssert(errors.Is(err, ErrSuffixCardinality))

	// A rejected change leaves the previous configuration in place.
	f := MustNewFormatter(DefaultFormatConfig())
	tt.MustAssert(errors.Is(f.SetDecimalPoints(-3), ErrDecimalPoints))
	tt.MustAssert(errors.Is(f.SetDecimalPoints(309), ErrDecimalPoints))
	tt.MustAssert(errors.Is(f.SetDefaultAbbreviation("x"), ErrAbbreviation))
	tt.MustAssert(errors.Is(f.SetSuffixes(Suffixes{}), ErrSuffixCardinality))
	tt.MustEqual(DefaultFormatConfig(), f.Config())
	tt.MustEqual("1.5K", f.String(f64(1500)))
}

func TestFormatterMaxDecimalPoints(t *testing.T) {
	tt := assert.WrapTB(t)
	f := MustNewFormatter(DefaultFormatConfig())
	tt.MustOK(f.SetDecimalPoints(MaxDecimalPoints))
	tt.MustEqual("1.5K", f.String(f64(1500)))
	tt.MustEqual("0.125", f.String(f64(0.125)))
	tt.MustEqual("E2#1#1#0#0#0", f.HyperE(Tet(f64(10), 100)))
}

func TestFormatterConfigCopy(t *testing.T) {
	tt := assert.WrapTB(t)
	f := MustNewFormatter(DefaultFormatConfig())
	c := f.Config()
	c.Suffixes.Beginning[0] = "x"
	tt.MustEqual("1K", f.String(f64(1000)))

	cfg := DefaultFormatConfig()
	cfg.DecimalPoints = 1
	tt.MustOK(f.SetConfig(cfg))
	tt.MustEqual("1.2M", f.String(f64(1234567)))
}

func TestFormatterConcurrent(t *testing.T) {
	tt := assert.WrapTB(t)
	f := MustNewFormatter(DefaultFormatConfig())
	valid := map[string]bool{"1M": true, "1.2M": true, "1.23M": true, "1.234M": true}

	var wg sync.WaitGroup
	results := make(chan string, 400)
	for i := 0; i < 4; i++ {
		wg.Add(2)
		go func(dp int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = f.SetDecimalPoints((dp + j) % 4)
			}
		}(i)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				results <- f.String(f64(1234567))
			}
		}()
	}
	wg.Wait()
	close(results)

	for s := range results {
		tt.MustAssert(valid[s], "unexpected render %q", s)
	}
}

func TestChangeDefaults(t *testing.T) {
	tt := assert.WrapTB(t)
	defer func() {
		tt.MustOK(DefaultFormatter.SetConfig(DefaultFormatConfig()))
	}()

	tt.MustOK(ChangeDecimalPoints(0))
	tt.MustEqual("1K", f64(1500).String())

	tt.MustOK(ChangeDefaultAbbreviation(AbbreviateScientific))
	tt.MustEqual("1e3", f64(1500).String())

	s := DefaultSuffixes()
	s.Beginning = []string{"k", "m", "b"}
	tt.MustOK(ChangeSuffixes(s))
	tt.MustEqual("1k", f64(1500).ToSuffix())
	name, _ := SuffixName(1)
	tt.MustEqual("m", name)

	tt.MustAssert(ChangeDecimalPoints(-1) != nil)
	tt.MustEqual("1k", f64(1500).ToSuffix())
}
