// Package cmd implements the exalge command line application.
package cmd

import (
	"flag"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/degulab/exalge"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&matchCmd{}, "patterns")
	c.Register(&translateCmd{}, "patterns")
	c.Register(&convertCmd{}, "patterns")

	c.Register(&distributeCmd{}, "ratios")
	c.Register(&showCmd{}, "ratios")

	c.Register(&fmtCmd{}, "files")
	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var rulesFile = flag.String("rules", os.Getenv(EnvRulesFile), "Path to a YAML file with the key rules (defaults to $"+EnvRulesFile+")")

// Verbose enables the logs of the application.
var Verbose = flag.Bool("v", envBool(EnvVerbose), "Verbose logs (defaults to $"+EnvVerbose+")")

// stdout receives the output of the commands.
var stdout io.Writer = os.Stdout

// Init configures the application once the flags are parsed.
func Init() {
	log.SetFlags(0)
	log.SetPrefix("exalge: ")
	if !*Verbose {
		log.SetOutput(io.Discard)
	}
}

// Rules returns the key rules of the application: the rules file when one is set,
// exalge.DefaultRules otherwise.
func Rules() (exalge.KeyRules, error) {
	if *rulesFile == "" {
		return exalge.DefaultRules(), nil
	}
	return LoadRules(*rulesFile)
}

func envBool(name string) bool {
	v, _ := strconv.ParseBool(os.Getenv(name))
	return v
}
