package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/degulab/exalge"
	"github.com/google/subcommands"
)

type matchCmd struct {
	patterns string
	invert   bool
}

func (*matchCmd) Name() string     { return "match" }
func (*matchCmd) Synopsis() string { return "select the bases matched by a pattern set" }
func (*matchCmd) Usage() string {
	return `exalge match -p <patterns> [-n] <base>...

  Prints the bases matched by at least one pattern of the pattern set file, one
  per line, in canonical form. A base is given as up to five keys joined by '-':
  name, hat, unit, time and subject. Omitted keys are '#', an omitted hat is NO_HAT.

Usage Examples:
$ exalge match -p patterns.csv Sales-HAT-JPY Cash-^-USD-2020-HQ
`
}

func (c *matchCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.patterns, "p", "patterns.csv", "Pattern set file (CSV, or XML with the .xml extension)")
	f.BoolVar(&c.invert, "n", false, "Print the bases that are not matched instead")
}

func (c *matchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: missing base")
		return subcommands.ExitUsageError
	}
	rules, set, err := loadPatternSet(c.patterns)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	bases, err := parseBases(rules, f.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	for _, b := range bases {
		ok, err := set.Matches(b)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		if ok != c.invert {
			fmt.Fprintln(stdout, b.Key())
		}
	}
	return subcommands.ExitSuccess
}

// loadPatternSet loads a pattern set file with the application rules.
func loadPatternSet(path string) (exalge.KeyRules, *exalge.PatternSet, error) {
	rules, err := Rules()
	if err != nil {
		return rules, nil, err
	}
	set, err := exalge.LoadPatternSet(path, rules)
	return rules, set, err
}

// parseBases parses base arguments.
func parseBases(rules exalge.KeyRules, args []string) ([]exalge.Base, error) {
	bases := make([]exalge.Base, 0, len(args))
	for _, arg := range args {
		b, err := rules.ParseBase(arg)
		if err != nil {
			return nil, err
		}
		bases = append(bases, b)
	}
	return bases, nil
}
