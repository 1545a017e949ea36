package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type translateCmd struct {
	patterns string
}

func (*translateCmd) Name() string     { return "translate" }
func (*translateCmd) Synopsis() string { return "retarget bases with a pattern set" }
func (*translateCmd) Usage() string {
	return `exalge translate -p <patterns> <base>...

  Prints the translations of each base by every pattern of the pattern set file:
  literal keys of the pattern replace the keys of the base, wildcards keep them.
  Equal translations of a base are printed once.

Usage Examples:
$ exalge translate -p retarget.csv Sales-HAT-JPY-2020-Dept1
`
}

func (c *translateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.patterns, "p", "patterns.csv", "Pattern set file (CSV, or XML with the .xml extension)")
}

func (c *translateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
		translated, err := set.Translate(b)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		for _, t := range translated {
			fmt.Fprintln(stdout, t.Key())
		}
	}
	return subcommands.ExitSuccess
}
