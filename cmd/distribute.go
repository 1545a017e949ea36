package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/degulab/exalge"
	"github.com/degulab/exalge/renderer"
	"github.com/google/subcommands"
)

type distributeCmd struct {
	ratios string
	raw    bool
	md     bool
	output string
}

func (*distributeCmd) Name() string     { return "distribute" }
func (*distributeCmd) Synopsis() string { return "distribute a value with a ratio table" }
func (*distributeCmd) Usage() string {
	return `exalge distribute -r <ratios> [-raw] [-md] [-o <algebra>] <base> <value>

  Splits the value of the base across the destinations of the ratio table.
  Each destination is the translation of the base by a pattern of the table.

  By default the value is split proportionally to the ratios: each destination
  receives value / total ratio * ratio. With -raw each destination receives
  value * ratio.

  The result is printed as a report. Values whose unit is a currency code are
  printed as money. Use -o to save the result in an algebra file.

Usage Examples:
$ exalge distribute -r shares.csv Cost-NO_HAT-JPY-2020-HQ 1000
`
}

func (c *distributeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ratios, "r", "ratios.csv", "Ratio table file")
	f.BoolVar(&c.raw, "raw", false, "Multiply the value by each ratio instead of normalizing by the total ratio")
	f.BoolVar(&c.md, "md", false, "Print the report as markdown source")
	f.StringVar(&c.output, "o", "", "Algebra file to save the result to")
}

func (c *distributeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Error: want a base and a value")
		return subcommands.ExitUsageError
	}
	rules, err := Rules()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	src, err := rules.ParseBase(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	value, err := exalge.ParseDecimal(f.Arg(1))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	table, err := exalge.LoadRatioTable(c.ratios, rules)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	dst, err := table.Distribute(src, value, !c.raw)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.output != "" {
		if err := exalge.SaveAlgebra(c.output, dst); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
	}
	printMarkdown(renderer.RenderDistribution(renderer.NewDistribution(table, src, value, !c.raw, dst)), c.md)
	return subcommands.ExitSuccess
}
