// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"

	"cpgscan/internal/cliutil"
	"cpgscan/internal/config"
)

// Options holds all CLI flags and arguments for cpgscan.
type Options struct {
	// Input
	SeqFiles  []string // --sequences/-s plus positionals, glob-expanded
	Seq       string   // raw sequence given inline
	RandomLen int      // length of a generated sequence (0 = none)
	Seed      int64    // RNG seed for generation (0 = time-based)
	GCBias    float64  // GC fraction for generated sequences

	// Scan
	ChunkSize int
	Threshold float64
	MinLength int

	// Performance
	Threads int

	// Output
	Output          string // text|json|jsonl|fasta
	Products        bool
	Header          bool // true unless --no-header
	NoMatchExitCode int

	// Misc
	Quiet   bool
	Version bool
}

// sliceValue appends each value to a *[]string (for --sequences/-s)
type sliceValue struct{ dst *[]string }

func (s *sliceValue) String() string {
	if s.dst == nil {
		return ""
	}
	return fmt.Sprint(*s.dst)
}
func (s *sliceValue) Set(v string) error {
	*s.dst = append(*s.dst, v)
	return nil
}

// Register wires all flags onto fs, seeding defaults from the
// environment layer. It returns a pointer to the “no-header” bool that
// the caller uses to set Options.Header = !noHeader after parsing.
func Register(fs *flag.FlagSet, o *Options) *bool {
	def := config.FromEnv()

	// Input
	seqVal := &sliceValue{dst: &o.SeqFiles}
	fs.Var(seqVal, "sequences", "FASTA file(s) (repeatable) or '-'")
	fs.Var(seqVal, "s", "alias of --sequences")
	fs.StringVar(&o.Seq, "seq", "", "scan a raw sequence given inline")
	fs.IntVar(&o.RandomLen, "random-length", 0, "generate and scan a random sequence of N bases [0]")
	fs.IntVar(&o.RandomLen, "n", 0, "alias of --random-length")
	fs.Int64Var(&o.Seed, "seed", 0, "seed for --random-length (0=time-based) [0]")
	fs.Float64Var(&o.GCBias, "gc", 0.5, "GC fraction for generated sequences [0.5]")

	// Scan
	fs.IntVar(&o.ChunkSize, "chunk-size", def.ChunkSize, "max piece length for the parallel partition")
	fs.IntVar(&o.ChunkSize, "c", def.ChunkSize, "alias of --chunk-size")
	fs.Float64Var(&o.Threshold, "threshold", def.Threshold, "min GC density for a piece to extend an island")
	fs.IntVar(&o.MinLength, "min-length", def.MinLength, "min island length to report")
	fs.IntVar(&o.MinLength, "m", def.MinLength, "alias of --min-length")

	// Performance
	fs.IntVar(&o.Threads, "threads", def.Threads, "worker threads (0=all CPUs)")
	fs.IntVar(&o.Threads, "t", def.Threads, "alias of --threads")

	// Output
	fs.StringVar(&o.Output, "output", def.Output, "output: text | json | jsonl | fasta")
	fs.StringVar(&o.Output, "o", def.Output, "alias of --output")
	fs.BoolVar(&o.Products, "products", false, "emit island sequences [false]")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line [false]")
	fs.IntVar(&o.NoMatchExitCode, "no-match-exit-code", 1, "exit code when no islands found [1]")

	// Misc
	fs.BoolVar(&o.Quiet, "quiet", false, "suppress the run summary on stderr [false]")
	fs.BoolVar(&o.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&o.Version, "v", false, "print version and exit [false]")
	fs.BoolVar(&o.Version, "version", false, "print version and exit [false]")

	return &noHeader
}

// ParseArgs registers and parses all flags plus positional FASTA paths,
// and returns a validated Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help, examples bool

	noHeader := Register(fs, &opt)
	fs.BoolVar(&examples, "examples", false, "print usage examples and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message [false]")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	if help {
		return opt, flag.ErrHelp
	}
	if examples {
		PrintExamples(fs.Output(), fs.Name())
		return opt, ErrPrintedAndExitOK
	}
	if opt.Version {
		return opt, nil
	}
	if err := AfterParse(fs, &opt, noHeader, posArgs); err != nil {
		return opt, err
	}
	return opt, nil
}

// AfterParse finalizes header state and folds positionals into
// SeqFiles, then validates.
func AfterParse(fs *flag.FlagSet, o *Options, noHeader *bool, posArgs []string) error {
	o.Header = !*noHeader

	if len(posArgs) > 0 {
		exp, err := cliutil.ExpandPositionals(posArgs)
		if err != nil {
			return err
		}
		o.SeqFiles = append(o.SeqFiles, exp...)
	}
	return Validate(o)
}

// Validate applies the CLI invariants.
func Validate(o *Options) error {
	if len(o.SeqFiles) == 0 && o.Seq == "" && o.RandomLen == 0 {
		return errors.New("provide --sequences, --seq or --random-length")
	}
	if o.RandomLen < 0 {
		return errors.New("--random-length must be ≥ 0")
	}
	if o.GCBias < 0 || o.GCBias > 1 {
		return errors.New("--gc must be within [0,1]")
	}
	if o.ChunkSize <= 0 {
		return errors.New("--chunk-size must be > 0")
	}
	if !(o.Threshold >= 0 && o.Threshold <= 1) {
		return errors.New("--threshold must be within [0,1]")
	}
	if o.MinLength <= 0 {
		return errors.New("--min-length must be > 0")
	}
	if o.Threads < 0 {
		return errors.New("--threads must be ≥ 0")
	}
	switch o.Output {
	case "text", "json", "jsonl", "fasta":
	default:
		return fmt.Errorf("invalid --output %q", o.Output)
	}
	if o.NoMatchExitCode < 0 || o.NoMatchExitCode > 255 {
		return errors.New("--no-match-exit-code must be between 0 and 255")
	}
	return nil
}
