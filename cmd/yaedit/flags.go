package main

import (
	flag "github.com/spf13/pflag"
)

// cliFlags holds parsed command-line flags. Zero values mean "not set" and
// defer to the config file or built-in defaults.
type cliFlags struct {
	action      string
	config      string
	input       string
	output      string
	maxRetries  int
	chunkLength int
	verbose     bool
	version     bool
}

func parseFlags(args []string) (*cliFlags, error) {
	fs := flag.NewFlagSet("yaedit", flag.ContinueOnError)
	f := &cliFlags{}

	fs.StringVarP(&f.action, "action", "a", "",
		"operation: correct, improve, rephrase, simple, complex, formal, casual, translate")
	fs.StringVarP(&f.config, "config", "c", "", "path to a YAML config file")
	fs.StringVarP(&f.input, "in", "i", "", "input file (default: stdin)")
	fs.StringVarP(&f.output, "out", "o", "", "output file (default: stdout)")
	fs.IntVar(&f.maxRetries, "max-retries", 0, "per-chunk attempt limit (default: 3)")
	fs.IntVar(&f.chunkLength, "chunk-length", 0, "split ceiling in characters (default: 10000)")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "debug logging")
	fs.BoolVar(&f.version, "version", false, "print version and exit")

	if err := fs.Parse(args[1:]); err != nil {
		return nil, err
	}
	return f, nil
}
