package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/degulab/exalge"
	"github.com/google/subcommands"
)

type convertCmd struct {
	in  string
	out string
}

func (*convertCmd) Name() string     { return "convert" }
func (*convertCmd) Synopsis() string { return "convert a pattern set between CSV and XML" }
func (*convertCmd) Usage() string {
	return `exalge convert -in <file> -out <file>

  Converts a pattern set file. The format of each file is given by its
  extension: .xml for XML, CSV otherwise.

Usage Examples:
$ exalge convert -in patterns.csv -out patterns.xml
`
}

func (c *convertCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.in, "in", "", "Pattern set file to read")
	f.StringVar(&c.out, "out", "", "Pattern set file to write")
}

func (c *convertCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.in == "" || c.out == "" {
		fmt.Fprintln(os.Stderr, "Error: -in and -out are required")
		return subcommands.ExitUsageError
	}
	_, set, err := loadPatternSet(c.in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := exalge.SavePatternSet(c.out, set); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(os.Stderr, "Converted %d patterns from %s to %s.\n", set.Len(), exalge.FormatOf(c.in), exalge.FormatOf(c.out))
	return subcommands.ExitSuccess
}
