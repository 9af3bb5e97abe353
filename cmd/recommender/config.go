package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// cliOptions holds the per-invocation flags. Everything else comes from the environment.
type cliOptions struct {
	description string
	review      string
	explain     bool
	rebuild     bool
}

func parseFlags(args []string) (cliOptions, error) {
	var opts cliOptions
	fs := flag.NewFlagSet(filepath.Base(os.Args[0]), flag.ContinueOnError)
	fs.StringVar(&opts.description, "description", "", "Description of a movie you liked")
	fs.StringVar(&opts.review, "review", "", "What you liked about it")
	fs.BoolVar(&opts.explain, "explain", false, "Print the genre scores of the query and of the recommended movie")
	fs.BoolVar(&opts.rebuild, "rebuild", false, "Drop the cached model and catalog fingerprints before recommending")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: %s --description TEXT [--review TEXT] [options]\n\n", fs.Name())
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	opts.description = strings.TrimSpace(opts.description)
	opts.review = strings.TrimSpace(opts.review)
	if opts.description == "" {
		fs.Usage()
		return opts, errors.New("missing required --description")
	}
	return opts, nil
}
