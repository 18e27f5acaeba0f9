// internal/cli/usage.go
package cli

import (
	"flag"
	"fmt"

	"cpgscan/internal/version"
)

// InstallUsage installs the grouped Usage() handler on fs.
func InstallUsage(fs *flag.FlagSet) {
	fs.Usage = func() {
		out := fs.Output()
		def := func(flagName string) string {
			if f := fs.Lookup(flagName); f != nil {
				return f.DefValue
			}
			return ""
		}

		// Header
		fmt.Fprintf(out, "%s – CpG island scanner\n\n", fs.Name())
		fmt.Fprintln(out, "License: MIT")
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)

		fmt.Fprintln(out, "Usage:")
		fmt.Fprintf(out, "  %s [flags] [genome.fa ...]\n", fs.Name())

		fmt.Fprintln(out, "\nInput:")
		fmt.Fprintln(out, "  -s, --sequences file        FASTA file(s) (repeatable) or '-' for STDIN")
		fmt.Fprintln(out, "      --seq string            Scan a raw ACGTN sequence given inline")
		fmt.Fprintf(out, "  -n, --random-length int     Generate and scan a random sequence of N bases [%s]\n", def("random-length"))
		fmt.Fprintf(out, "      --seed int              Seed for --random-length (0=time-based) [%s]\n", def("seed"))
		fmt.Fprintf(out, "      --gc float              GC fraction for generated sequences [%s]\n", def("gc"))

		fmt.Fprintln(out, "\nScan:")
		fmt.Fprintf(out, "  -c, --chunk-size int        Max piece length for the parallel partition [%s]\n", def("chunk-size"))
		fmt.Fprintf(out, "      --threshold float       Min GC density for a piece to extend an island [%s]\n", def("threshold"))
		fmt.Fprintf(out, "  -m, --min-length int        Min island length to report [%s]\n", def("min-length"))

		fmt.Fprintln(out, "\nPerformance:")
		fmt.Fprintf(out, "  -t, --threads int           Worker threads (0=all CPUs) [%s]\n", def("threads"))

		fmt.Fprintln(out, "\nOutput:")
		fmt.Fprintf(out, "  -o, --output string         Output: text | json | jsonl | fasta [%s]\n", def("output"))
		fmt.Fprintf(out, "      --products              Emit island sequences [%s]\n", def("products"))
		fmt.Fprintf(out, "      --no-header             Suppress header line [%s]\n", def("no-header"))
		fmt.Fprintf(out, "      --no-match-exit-code int  Exit code when no islands found [%s]\n", def("no-match-exit-code"))

		fmt.Fprintln(out, "\nMiscellaneous:")
		fmt.Fprintf(out, "  -q, --quiet                 Suppress the run summary on stderr [%s]\n", def("quiet"))
		fmt.Fprintln(out, "      --examples              Print usage examples and exit")
		fmt.Fprintln(out, "  -v, --version               Print version and exit")
		fmt.Fprintln(out, "  -h, --help                  Show this help and exit")
	}
}
