// internal/gencli/usage.go
package gencli

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
		fmt.Fprintf(out, "%s – random FASTA generator\n\n", fs.Name())
		fmt.Fprintln(out, "License: MIT")
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)

		fmt.Fprintln(out, "Usage:")
		fmt.Fprintf(out, "  %s [flags] > out.fa\n", fs.Name())

		fmt.Fprintln(out, "\nGeneration:")
		fmt.Fprintf(out, "  -n, --length int            Bases per generated record [%s]\n", def("length"))
		fmt.Fprintf(out, "  -c, --count int             Number of records to generate [%s]\n", def("count"))
		fmt.Fprintf(out, "      --seed int              RNG seed (0=time-based) [%s]\n", def("seed"))
		fmt.Fprintf(out, "      --gc float              GC fraction of generated bases [%s]\n", def("gc"))

		fmt.Fprintln(out, "\nOutput:")
		fmt.Fprintf(out, "      --id string             Record id prefix [%s]\n", def("id"))
		fmt.Fprintf(out, "  -w, --line-width int        Wrap sequence lines at N columns (0=no wrap) [%s]\n", def("line-width"))

		fmt.Fprintln(out, "\nMiscellaneous:")
		fmt.Fprintf(out, "  -q, --quiet                 Suppress the generation summary on stderr [%s]\n", def("quiet"))
		fmt.Fprintln(out, "  -v, --version               Print version and exit")
		fmt.Fprintln(out, "  -h, --help                  Show this help and exit")
	}
}
