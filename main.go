package main

import (
	"fmt"
	"io"
	"os"

	"github.com/feliixx/goprotein/protein"
	"github.com/jessevdk/go-flags"
)

const (
	version  = "0.1.0"
	toolName = "goprotein"
)

// GlobalOptions struct to store command line args
type GlobalOptions struct {
	protein.Options `group:"analysis"`
	General         `group:"general"`
}

// General struct to store general command line args
type General struct {
	Help    bool `short:"h" long:"help" description:"Show this help message"`
	Version bool `short:"v" long:"version" description:"Print the tool version and exit"`
}

func run(options GlobalOptions, sequences []string, out, errOut io.Writer) error {

	if options.Procedure == "" {
		return fmt.Errorf("missing required parameter -p | --procedure, try %s --help for details", toolName)
	}
	if len(sequences) == 0 {
		return fmt.Errorf("missing protein sequence(s), try %s --help for details", toolName)
	}

	result, err := protein.Analyze(options.Options, sequences...)
	if err != nil {
		return err
	}
	for _, w := range result.Warnings {
		fmt.Fprintf(errOut, "WARNING: %s\n", w)
	}
	return protein.Write(out, result, options.Options)
}

func main() {

	var options GlobalOptions
	p := flags.NewParser(&options, flags.Default&^flags.HelpFlag)
	p.Usage = "[OPTIONS] SEQUENCE..."
	sequences, err := p.Parse()
	if err != nil {
		fmt.Printf("wrong arguments: %v, try %s --help for more informations\n", err, toolName)
		os.Exit(1)
	}
	if options.Help {
		fmt.Printf("%s version %s\n\n", toolName, version)
		p.WriteHelp(os.Stdout)
		os.Exit(0)
	}
	if options.Version {
		fmt.Printf("%s version %s\n", toolName, version)
		os.Exit(0)
	}

	err = run(options, sequences, os.Stdout, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fail to analyze sequences:\n%v\n", err)
		os.Exit(1)
	}
}
