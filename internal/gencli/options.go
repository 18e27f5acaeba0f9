// internal/gencli/options.go
package gencli

import (
	"errors"
	"flag"
	"fmt"
)

// Options holds all CLI flags for cpgscan-gen.
type Options struct {
	Length    int
	Count     int
	Seed      int64
	GCBias    float64
	IDPrefix  string
	LineWidth int

	Quiet   bool
	Version bool
}

// NewFlagSet returns a clean FlagSet with ContinueOnError and the
// grouped usage text installed.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	InstallUsage(fs)
	return fs
}

// Register wires all flags onto fs.
func Register(fs *flag.FlagSet, o *Options) {
	fs.IntVar(&o.Length, "length", 1024, "bases per generated record")
	fs.IntVar(&o.Length, "n", 1024, "alias of --length")
	fs.IntVar(&o.Count, "count", 1, "number of records to generate")
	fs.IntVar(&o.Count, "c", 1, "alias of --count")
	fs.Int64Var(&o.Seed, "seed", 0, "RNG seed (0=time-based) [0]")
	fs.Float64Var(&o.GCBias, "gc", 0.5, "GC fraction of generated bases [0.5]")
	fs.StringVar(&o.IDPrefix, "id", "random", "record id prefix")
	fs.IntVar(&o.LineWidth, "line-width", 60, "wrap sequence lines at N columns (0=no wrap)")
	fs.IntVar(&o.LineWidth, "w", 60, "alias of --line-width")
	fs.BoolVar(&o.Quiet, "quiet", false, "suppress the generation summary on stderr [false]")
	fs.BoolVar(&o.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&o.Version, "v", false, "print version and exit [false]")
	fs.BoolVar(&o.Version, "version", false, "print version and exit [false]")
}

// ParseArgs registers and parses all flags, returns a validated Options.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	Register(fs, &opt)
	fs.BoolVar(&help, "h", false, "show this help message [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	if len(fs.Args()) > 0 {
		return opt, fmt.Errorf("unexpected argument %q", fs.Args()[0])
	}
	return opt, Validate(&opt)
}

// Validate applies the CLI invariants.
func Validate(o *Options) error {
	if o.Length <= 0 {
		return errors.New("--length must be > 0")
	}
	if o.Count <= 0 {
		return errors.New("--count must be > 0")
	}
	if o.GCBias < 0 || o.GCBias > 1 {
		return errors.New("--gc must be within [0,1]")
	}
	if o.LineWidth < 0 {
		return errors.New("--line-width must be ≥ 0")
	}
	if o.IDPrefix == "" {
		return errors.New("--id must not be empty")
	}
	return nil
}
