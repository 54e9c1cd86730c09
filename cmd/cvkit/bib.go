package main

import (
	"context"
	"fmt"

	cvkit "github.com/alisajid/go-cvkit"
)

// runBibCmd splits a bibliography into tagged subset files.
func runBibCmd(args []string, env *Environment) int {
	f := &bibFlags{}
	fs := newBibFlagSet(f)
	fs.SetOutput(env.Stderr)
	if err := fs.Parse(args); err != nil {
		return ExitUsage
	}
	if fs.NArg() < 1 {
		fmt.Fprintln(env.Stderr, "Error: missing input .bib file")
		fmt.Fprintln(env.Stderr)
		printBibUsage(env.Stderr)
		return ExitUsage
	}

	cfg, _, err := resolveConfig(f.common.config, env)
	if err != nil {
		fmt.Fprintln(env.Stderr, err)
		return exitCodeFor(err)
	}

	outputDir := cfg.Bibliography.OutputDir
	if fs.NArg() > 1 {
		outputDir = fs.Arg(1)
	}

	validPrefixes := cfg.Bibliography.ValidPrefixes
	if len(f.validPrefixes) > 0 {
		validPrefixes = f.validPrefixes
	}

	input := cvkit.BibInput{
		SourcePath:     fs.Arg(0),
		OutputDir:      outputDir,
		Prefix:         firstNonEmpty(f.prefix, cfg.Bibliography.Prefix),
		ValidPrefixes:  validPrefixes,
		KeywordMapPath: firstNonEmpty(f.keywordMap, cfg.Bibliography.KeywordMap),
	}

	svc, err := newService(cfg, env)
	if err != nil {
		fmt.Fprintln(env.Stderr, err)
		return exitCodeFor(err)
	}

	res, err := svc.SplitBibliography(context.Background(), input)
	if err != nil {
		fmt.Fprintln(env.Stderr, err)
		return exitCodeFor(err)
	}

	if !f.common.quiet {
		for _, name := range res.SubsetNames() {
			fmt.Fprintf(env.Stdout, "Created %s.bib (%d entries)\n", name, res.Subsets[name])
		}
		if res.AllWritten {
			fmt.Fprintf(env.Stdout, "Created all.bib (%d entries)\n", res.Total)
		} else if f.common.verbose {
			fmt.Fprintln(env.Stderr, "all.bib already exists, left untouched")
		}
	}

	return ExitSuccess
}
