package main

import (
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/guychait/minigrep/commands"
)

func main() {
	var command commands.SearchCommand
	command.Version = func() {
		fmt.Printf("minigrep %s\n", commands.Version)
		os.Exit(0)
	}

	parser := flags.NewParser(&command, flags.HelpFlag|flags.PassDoubleDash)
	parser.Usage = "[OPTIONS] pattern [file...]"

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			fmt.Println(err)
			os.Exit(0)
		}

		fmt.Fprintf(os.Stderr, "minigrep: %s\n", err)
		os.Exit(commands.ExitError)
	}

	os.Exit(command.Execute())
}
