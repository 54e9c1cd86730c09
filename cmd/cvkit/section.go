package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	cvkit "github.com/alisajid/go-cvkit"
	"github.com/alisajid/go-cvkit/internal/hints"
	"github.com/alisajid/go-cvkit/internal/metadata"
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// ErrWriteOutput is returned when an assembled fragment cannot be written.
var ErrWriteOutput = errors.New("failed to write output file")

// runSectionCmd assembles one section and prints or writes it.
func runSectionCmd(args []string, env *Environment) int {
	f := &sectionFlags{}
	fs := newSectionFlagSet(f)
	fs.SetOutput(env.Stderr)
	if err := fs.Parse(args); err != nil {
		return ExitUsage
	}
	if fs.NArg() < 1 {
		fmt.Fprintln(env.Stderr, "Error: missing section name")
		fmt.Fprintln(env.Stderr)
		printSectionUsage(env.Stderr)
		return ExitUsage
	}
	name := fs.Arg(0)

	cfg, _, err := resolveConfig(f.common.config, env)
	if err != nil {
		fmt.Fprintln(env.Stderr, err)
		return exitCodeFor(err)
	}

	svc, err := newService(cfg, env)
	if err != nil {
		fmt.Fprintln(env.Stderr, err)
		return exitCodeFor(err)
	}

	res, err := svc.AssembleSection(context.Background(), cvkit.AssembleInput{
		Section:       name,
		Tags:          f.tags,
		ExcludeTags:   f.excludeTags,
		MaxItems:      f.maxItems,
		IncludeHeader: f.includeHeader,
	})
	if err != nil {
		fmt.Fprintln(env.Stderr, decorateSectionErr(err, svc, cfg.Workspace.Metadata))
		return exitCodeFor(err)
	}

	if !f.common.quiet {
		for _, unit := range res.Missing {
			fmt.Fprintf(env.Stderr, "Warning: unit file not found: %s\n",
				filepath.Join(cfg.Workspace.UnitsDir, name, unit+".tex"))
		}
	}

	if f.output == "" {
		fmt.Fprintln(env.Stdout, res.Content)
		return ExitSuccess
	}

	if err := writeFragment(f.output, res.Content); err != nil {
		fmt.Fprintln(env.Stderr, err)
		return exitCodeFor(err)
	}
	if f.common.verbose {
		fmt.Fprintf(env.Stderr, "Section written to: %s\n", f.output)
	}
	return ExitSuccess
}

// writeFragment writes an assembled fragment, creating parent
// directories as needed.
func writeFragment(path, content string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, dirPermissions); err != nil {
			return fmt.Errorf("%w: %s: %v%s", ErrWriteOutput, path, err, hints.ForOutputDirectory())
		}
	}
	if err := os.WriteFile(path, []byte(content+"\n"), filePermissions); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWriteOutput, path, err)
	}
	return nil
}

// decorateSectionErr attaches actionable hints to assembly errors.
func decorateSectionErr(err error, svc *cvkit.Service, metadataPath string) error {
	switch {
	case errors.Is(err, metadata.ErrMetadataNotFound):
		return fmt.Errorf("%w%s", err, hints.ForMetadataNotFound(metadataPath))
	case errors.Is(err, cvkit.ErrSectionNotFound):
		if available, serr := svc.Sections(); serr == nil {
			return fmt.Errorf("%w%s", err, hints.ForSectionNotFound(available))
		}
	}
	return err
}
