package cli

import "flag"

// NewFlagSet returns a clean FlagSet with ContinueOnError and the
// grouped usage text installed.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	InstallUsage(fs)
	return fs
}
