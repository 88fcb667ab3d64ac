package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/shabbyrobe/hypernum"
)

const usage = `Calculator and formatter for numbers far beyond float64 range.

Numbers are written in scientific notation, for example 2.4e5200. The eval
command reads its arguments as a reverse Polish expression:

	hypernum eval 10 100 ^
	hypernum eval 10 3 tet 2 slog

Put negative numbers after -- so they are not read as flags:

	hypernum eval -- -8 3 root`

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

type options struct {
	config   string
	mode     string
	decimals int
	notation string
	dump     bool
	verbose  bool

	formatter *hypernum.Formatter
	log       *zap.Logger
}

func (o *options) addFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.config, "config", "", "Config file (yaml, json or toml) with decimals, mode and suffixes")
	fs.StringVar(&o.mode, "mode", string(hypernum.AbbreviateSuffix), "Default abbreviation (suffix, scientific)")
	fs.IntVar(&o.decimals, "decimals", 2, "Decimal points to print")
	fs.StringVar(&o.notation, "notation", "string", "Output notation (string, suffix, scientific, echain, ent, hypere)")
	fs.BoolVar(&o.dump, "dump", false, "Dump the raw layered structure of each result")
	fs.BoolVar(&o.verbose, "verbose", false, "Log solver diagnostics to stderr")
}

func newRootCommand() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:          "hypernum",
		Short:        "Calculator and formatter for numbers far beyond float64 range",
		Long:         usage,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd.Flags())
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.log != nil {
				_ = opts.log.Sync()
			}
		},
	}
	opts.addFlags(root.PersistentFlags())
	root.AddCommand(newFormatCommand(opts), newEvalCommand(opts))
	return root
}

// setup resolves flags, environment and the config file into a Formatter.
// Flags take precedence over HYPERNUM_* variables, which take precedence
// over the config file.
func (o *options) setup(fs *pflag.FlagSet) error {
	o.log = zap.NewNop()
	if o.verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			return err
		}
		o.log = l
		hypernum.SetLogger(l)
	}

	v := viper.New()
	v.SetEnvPrefix("hypernum")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	for _, name := range []string{"mode", "decimals"} {
		if err := v.BindPFlag(name, fs.Lookup(name)); err != nil {
			return err
		}
	}
	if o.config != "" {
		v.SetConfigFile(o.config)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("hypernum: read config: %w", err)
		}
		o.log.Debug("loaded config", zap.String("file", v.ConfigFileUsed()))
	}

	cfg := hypernum.DefaultFormatConfig()
	cfg.DecimalPoints = v.GetInt("decimals")
	cfg.DefaultAbbreviation = hypernum.Abbreviation(v.GetString("mode"))
	if v.IsSet("suffixes") {
		var s hypernum.Suffixes
		if err := v.UnmarshalKey("suffixes", &s); err != nil {
			return fmt.Errorf("hypernum: config suffixes: %w", err)
		}
		cfg.Suffixes = withDefaultTiers(s)
	}

	f, err := hypernum.NewFormatter(cfg)
	if err != nil {
		return err
	}
	o.formatter = f
	return nil
}

func (o *options) render(n hypernum.Number) (string, error) {
	f := o.formatter
	switch o.notation {
	case "string":
		return f.String(n), nil
	case "suffix":
		return f.Suffix(n), nil
	case "scientific":
		return f.Scientific(n), nil
	case "echain":
		return f.EChain(n), nil
	case "ent":
		return f.Ent(n), nil
	case "hypere":
		return f.HyperE(n), nil
	}
	return "", fmt.Errorf("hypernum: unknown notation %q", o.notation)
}

func (o *options) print(cmd *cobra.Command, n hypernum.Number) error {
	s, err := o.render(n)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), s)
	if o.dump {
		spew.Fdump(cmd.OutOrStdout(), n.Fields())
	}
	return nil
}

func newFormatCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "format <number>...",
		Short: "Parse numbers in scientific notation and print them",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				n, err := hypernum.FromScientific(arg)
				if err != nil {
					return err
				}
				if err := opts.print(cmd, n); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newEvalCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "eval <token>...",
		Short: "Evaluate a reverse Polish expression",
		Long: "Evaluate a reverse Polish expression. Operators:\n\n" +
			"  binary: " + strings.Join(binaryOpNames(), " ") + "\n" +
			"  unary:  " + strings.Join(unaryOpNames(), " "),
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := eval(args, opts.log)
			if err != nil {
				return err
			}
			return opts.print(cmd, n)
		},
	}
}

// withDefaultTiers fills tiers missing from a config file with the defaults.
func withDefaultTiers(s hypernum.Suffixes) hypernum.Suffixes {
	d := hypernum.DefaultSuffixes()
	if s.Beginning == nil {
		s.Beginning = d.Beginning
	}
	if s.First == nil {
		s.First = d.First
	}
	if s.Second == nil {
		s.Second = d.Second
	}
	if s.Third == nil {
		s.Third = d.Third
	}
	if s.Mult == nil {
		s.Mult = d.Mult
	}
	return s
}
