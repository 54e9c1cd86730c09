package main

import (
	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// sectionFlags holds flags for the section command.
type sectionFlags struct {
	common        commonFlags
	tags          []string
	excludeTags   []string
	maxItems      int
	includeHeader bool
	output        string
}

// buildFlags holds flags for the build command.
type buildFlags struct {
	common  commonFlags
	workers int
	pdf     bool
}

// letterFlags holds flags for the letter command.
type letterFlags struct {
	common       commonFlags
	recipient    string
	organization string
	location     string
	opening      string
	closing      string
	date         string
	template     string
	body         string
}

// bibFlags holds flags for the bib command.
type bibFlags struct {
	common        commonFlags
	prefix        string
	keywordMap    string
	validPrefixes []string
}

// statusFlags holds flags for the status command.
type statusFlags struct {
	common commonFlags
	json   bool
}

// addCommonFlags registers flags shared by all commands.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "suppress non-error output")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "verbose output")
}

// newSectionFlagSet creates the FlagSet for the section command.
// Shared with completion generation so hints stay in sync with parsing.
func newSectionFlagSet(f *sectionFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("section", flag.ContinueOnError)
	addCommonFlags(fs, &f.common)
	fs.StringSliceVarP(&f.tags, "tags", "t", nil, "include units with any of these tags")
	fs.StringSliceVarP(&f.excludeTags, "exclude-tags", "x", nil, "exclude units with any of these tags")
	fs.IntVarP(&f.maxItems, "max-items", "m", 0, "maximum number of units (0 = all)")
	fs.BoolVar(&f.includeHeader, "include-header", false, "prepend the LaTeX section header")
	fs.StringVarP(&f.output, "output", "o", "", "output file (default: stdout)")
	return fs
}

// newBuildFlagSet creates the FlagSet for the build command.
func newBuildFlagSet(f *buildFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("build", flag.ContinueOnError)
	addCommonFlags(fs, &f.common)
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.BoolVar(&f.pdf, "pdf", false, "compile targets with latexmk after assembly")
	return fs
}

// newLetterFlagSet creates the FlagSet for the letter command.
func newLetterFlagSet(f *letterFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("letter", flag.ContinueOnError)
	addCommonFlags(fs, &f.common)
	fs.StringVar(&f.recipient, "recipient", "", "recipient title")
	fs.StringVar(&f.organization, "organization", "", "organization name")
	fs.StringVar(&f.location, "location", "", "organization location")
	fs.StringVar(&f.opening, "opening", "", "letter opening line")
	fs.StringVar(&f.closing, "closing", "", "letter closing line")
	fs.StringVar(&f.date, "date", "", `letter date: literal, "auto", or "auto:FORMAT"`)
	fs.StringVar(&f.template, "template", "", "letter template name")
	fs.StringVar(&f.body, "body", "", "letter body file (.tex or .md)")
	return fs
}

// newBibFlagSet creates the FlagSet for the bib command.
func newBibFlagSet(f *bibFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("bib", flag.ContinueOnError)
	addCommonFlags(fs, &f.common)
	fs.StringVar(&f.prefix, "prefix", "", "subset tag prefix")
	fs.StringVar(&f.keywordMap, "keyword-map", "", "keyword remapping file")
	fs.StringSliceVar(&f.validPrefixes, "valid-prefixes", nil, "keyword prefixes to keep")
	return fs
}

// newStatusFlagSet creates the FlagSet for the status command.
func newStatusFlagSet(f *statusFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("status", flag.ContinueOnError)
	addCommonFlags(fs, &f.common)
	fs.BoolVar(&f.json, "json", false, "machine-readable JSON output")
	return fs
}
