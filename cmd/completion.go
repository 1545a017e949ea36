package cmd

import (
	"flag"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion returns the shell completion of the commands registered in c.
//
// Flags ending with a file name are completed with files, other flags with nothing.
func Completion(c *subcommands.Commander) *complete.Command {
	root := &complete.Command{
		Sub:   make(map[string]*complete.Command),
		Flags: flagPredictors(flag.CommandLine),
	}
	c.VisitCommands(func(_ *subcommands.CommandGroup, sub subcommands.Command) {
		fs := flag.NewFlagSet(sub.Name(), flag.ContinueOnError)
		sub.SetFlags(fs)
		root.Sub[sub.Name()] = &complete.Command{
			Flags: flagPredictors(fs),
			Args:  predict.Files("*"),
		}
	})
	return root
}

// fileFlags are the flags whose value is a file name.
var fileFlags = map[string]bool{"rules": true, "p": true, "r": true, "o": true, "in": true, "out": true}

func flagPredictors(fs *flag.FlagSet) map[string]complete.Predictor {
	flags := make(map[string]complete.Predictor)
	fs.VisitAll(func(f *flag.Flag) {
		switch {
		case fileFlags[f.Name]:
			flags[f.Name] = predict.Files("*")
		default:
			flags[f.Name] = predict.Nothing
		}
	})
	return flags
}
