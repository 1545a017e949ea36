package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/degulab/exalge"
	"github.com/degulab/exalge/renderer"
	"github.com/google/subcommands"
)

type showCmd struct {
	patterns string
	md       bool
}

func (*showCmd) Name() string     { return "show" }
func (*showCmd) Synopsis() string { return "display an algebra file" }
func (*showCmd) Usage() string {
	return `exalge show [-p <patterns>] [-md] <algebra>

  Displays the values of an algebra file, like the one saved by
  'exalge distribute -o'. With -p only the bases matched by the pattern set are
  displayed.
`
}

func (c *showCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.patterns, "p", "", "Pattern set file selecting the bases to display")
	f.BoolVar(&c.md, "md", false, "Print the report as markdown source")
}

func (c *showCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: want one algebra file")
		return subcommands.ExitUsageError
	}
	rules, err := Rules()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	path := f.Arg(0)
	a, err := exalge.LoadAlgebra(path, rules)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.patterns != "" {
		set, err := exalge.LoadPatternSet(c.patterns, rules)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		a = a.Project(set)
	}

	title := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	printMarkdown(renderer.RenderAlgebra(renderer.NewAlgebra(title, a)), c.md)
	return subcommands.ExitSuccess
}
