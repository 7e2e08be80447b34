package main

import (
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/pivotal-cf/chunk-finder/commands"
)

func main() {
	parser := flags.NewParser(&commands.Find, flags.Default)
	parser.Name = "chunk-finder"
	parser.Usage = "[OPTIONS] SOURCE... TARGET"

	args, err := parser.Parse()
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if err := commands.Find.Execute(args); err != nil {
		fmt.Fprintln(os.Stderr, commands.Failed(err))

		if err == commands.ErrMissingPaths {
			parser.WriteHelp(os.Stderr)
		}

		os.Exit(1)
	}
}
