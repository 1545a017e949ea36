package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/degulab/exalge"
	"github.com/google/subcommands"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and formats files into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `exalge fmt <file>...

  Validates and formats pattern set, ratio table and algebra files in-place.
  The kind of a CSV file is given by its identifier line, an XML file is a
  pattern set. Comments and blank lines are removed, hat spellings are
  normalized, blank keys are written explicitly and duplicate patterns are
  dropped. Files are rewritten only if they are valid.

Usage Examples:
$ exalge fmt patterns.csv shares.csv
`
}

func (c *fmtCmd) SetFlags(f *flag.FlagSet) {}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: missing file")
		return subcommands.ExitUsageError
	}
	rules, err := Rules()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	status := subcommands.ExitSuccess
	for _, path := range f.Args() {
		if err := formatFile(path, rules); err != nil {
			fmt.Fprintf(os.Stderr, "Error formatting %q: %v\n", path, err)
			status = subcommands.ExitFailure
			continue
		}
		fmt.Fprintf(os.Stderr, "Formatted %s\n", path)
	}
	return status
}

// formatFile rewrites a file in its canonical form.
func formatFile(path string, rules exalge.KeyRules) error {
	if exalge.FormatOf(path) == exalge.XML {
		s, err := exalge.LoadPatternSet(path, rules)
		if err != nil {
			return err
		}
		return exalge.SavePatternSet(path, s)
	}

	id, err := readIdentifier(path)
	if err != nil {
		return err
	}
	switch {
	case strings.EqualFold(id, exalge.PatternSetIdentifier):
		s, err := exalge.LoadPatternSet(path, rules)
		if err != nil {
			return err
		}
		return exalge.SavePatternSet(path, s)
	case strings.EqualFold(id, exalge.RatioTableIdentifier):
		t, err := exalge.LoadRatioTable(path, rules)
		if err != nil {
			return err
		}
		return exalge.SaveRatioTable(path, t)
	case strings.EqualFold(id, exalge.AlgebraIdentifier):
		a, err := exalge.LoadAlgebra(path, rules)
		if err != nil {
			return err
		}
		return exalge.SaveAlgebra(path, a)
	}
	return fmt.Errorf("unknown identifier %q", id)
}

// readIdentifier returns the first field of the first line of a CSV file.
func readIdentifier(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	line, err := bufio.NewReader(f).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("could not read identifier: %w", err)
	}
	id, _, _ := strings.Cut(line, ",")
	return strings.TrimSpace(id), nil
}
