package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	cvkit "github.com/alisajid/go-cvkit"
	"github.com/alisajid/go-cvkit/internal/config"
	"github.com/alisajid/go-cvkit/internal/dateutil"
	"github.com/alisajid/go-cvkit/internal/fileutil"
	"github.com/alisajid/go-cvkit/internal/latex"
)

// letterFileName is the file written into the target directory.
const letterFileName = "cover_letter.tex"

// Sentinel errors for the letter command.
var (
	ErrDirectoryNotFound = errors.New("target directory does not exist")
	ErrReadBody          = errors.New("failed to read body file")
)

// runLetterCmd renders a cover letter into an existing directory.
func runLetterCmd(args []string, env *Environment) int {
	f := &letterFlags{}
	fs := newLetterFlagSet(f)
	fs.SetOutput(env.Stderr)
	if err := fs.Parse(args); err != nil {
		return ExitUsage
	}
	if fs.NArg() < 1 {
		fmt.Fprintln(env.Stderr, "Error: missing target directory")
		fmt.Fprintln(env.Stderr)
		printLetterUsage(env.Stderr)
		return ExitUsage
	}
	dir := fs.Arg(0)

	if !fileutil.DirExists(dir) {
		fmt.Fprintf(env.Stderr, "Error: %v: %s\n", ErrDirectoryNotFound, dir)
		return ExitIO
	}

	cfg, _, err := resolveConfig(f.common.config, env)
	if err != nil {
		fmt.Fprintln(env.Stderr, err)
		return exitCodeFor(err)
	}

	input, err := buildLetterInput(f, cfg, env)
	if err != nil {
		fmt.Fprintln(env.Stderr, err)
		return exitCodeFor(err)
	}

	svc, err := newService(cfg, env)
	if err != nil {
		fmt.Fprintln(env.Stderr, err)
		return exitCodeFor(err)
	}

	rendered, err := svc.RenderLetter(context.Background(), input)
	if err != nil {
		fmt.Fprintln(env.Stderr, err)
		return exitCodeFor(err)
	}

	path := filepath.Join(dir, letterFileName)
	if err := os.WriteFile(path, []byte(rendered), filePermissions); err != nil {
		fmt.Fprintf(env.Stderr, "Error: %v: %s: %v\n", ErrWriteOutput, path, err)
		return ExitIO
	}

	if !f.common.quiet {
		fmt.Fprintf(env.Stdout, "Cover letter created: %s\n", path)
	}
	return ExitSuccess
}

// buildLetterInput merges flag, config, and default values into one
// rendering request. Flags win over config values.
func buildLetterInput(f *letterFlags, cfg *config.Config, env *Environment) (cvkit.LetterInput, error) {
	input := cvkit.LetterInput{
		Template:     firstNonEmpty(f.template, cfg.Letter.Template),
		Recipient:    firstNonEmpty(f.recipient, cfg.Letter.Recipient),
		Organization: f.organization,
		Location:     f.location,
		Opening:      firstNonEmpty(f.opening, cfg.Letter.Opening),
		Closing:      firstNonEmpty(f.closing, cfg.Letter.Closing),
		Author: cvkit.AuthorInfo{
			FirstName: cfg.Author.FirstName,
			LastName:  cfg.Author.LastName,
			Street:    cfg.Author.Street,
			City:      cfg.Author.City,
			Country:   cfg.Author.Country,
			Phone:     cfg.Author.Phone,
			Emails:    cfg.Author.Emails,
			Homepage:  cfg.Author.Homepage,
			Linkedin:  cfg.Author.Linkedin,
			Github:    cfg.Author.Github,
			Orcid:     cfg.Author.Orcid,
		},
	}

	if date := firstNonEmpty(f.date, cfg.Letter.Date); date != "" {
		resolved, err := dateutil.ResolveDate(date, env.Now())
		if err != nil {
			return cvkit.LetterInput{}, err
		}
		input.Date = resolved
	}

	if f.body != "" {
		body, err := readLetterBody(f.body)
		if err != nil {
			return cvkit.LetterInput{}, err
		}
		input.Body = body
	}

	return input, nil
}

// readLetterBody reads a letter body file. Markdown files are
// converted to LaTeX; anything else is used verbatim.
func readLetterBody(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrReadBody, path, err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".md" || ext == ".markdown" {
		return latex.FromMarkdown(raw)
	}
	return string(raw), nil
}

// firstNonEmpty returns the first non-empty string.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
