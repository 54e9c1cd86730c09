package cvkit

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// CommandRunner abstracts command execution to enable testing without
// real subprocesses.
type CommandRunner interface {
	Run(ctx context.Context, dir, name string, args ...string) (stdout string, stderr string, err error)
	LookPath(name string) (string, error)
}

// ExecRunner implements CommandRunner using os/exec.
type ExecRunner struct{}

func (r *ExecRunner) Run(ctx context.Context, dir, name string, args ...string) (string, string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func (r *ExecRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

// LatexmkRunner compiles LaTeX documents by invoking the latexmk CLI.
type LatexmkRunner struct {
	Runner CommandRunner

	// Bin is the latexmk executable name. Defaults to "latexmk".
	Bin string
}

// NewLatexmkRunner creates a LatexmkRunner with a real command runner.
func NewLatexmkRunner() *LatexmkRunner {
	return &LatexmkRunner{Runner: &ExecRunner{}, Bin: "latexmk"}
}

// Available reports whether the latexmk executable can be found.
func (l *LatexmkRunner) Available() error {
	if _, err := l.Runner.LookPath(l.bin()); err != nil {
		return fmt.Errorf("%w: %v", ErrLatexmkNotFound, err)
	}
	return nil
}

// Build compiles mainFile inside dir with latexmk. The main file must
// exist; latexmk output is summarized in the returned error on failure.
func (l *LatexmkRunner) Build(ctx context.Context, dir, mainFile string) error {
	if err := l.Available(); err != nil {
		return err
	}

	if _, err := os.Stat(filepath.Join(dir, mainFile)); err != nil {
		return fmt.Errorf("%w: %s", ErrMainFileMissing, filepath.Join(dir, mainFile))
	}

	stdout, stderr, err := l.Runner.Run(ctx, dir, l.bin(),
		"-pdf", "-silent", "-interaction=nonstopmode", mainFile)
	if err != nil {
		return fmt.Errorf("%w: %s: %s", ErrLatexmkFailed, mainFile, buildFailureDetail(stdout, stderr, err))
	}

	return nil
}

func (l *LatexmkRunner) bin() string {
	if l.Bin != "" {
		return l.Bin
	}
	return "latexmk"
}

// buildFailureDetail extracts a short diagnostic from latexmk output.
// LaTeX errors land on stdout as lines starting with "!", so those are
// preferred over the raw exit error.
func buildFailureDetail(stdout, stderr string, err error) string {
	for _, line := range strings.Split(stdout, "\n") {
		if strings.HasPrefix(line, "!") {
			return strings.TrimSpace(line)
		}
	}
	if s := strings.TrimSpace(stderr); s != "" {
		if len(s) > 200 {
			s = s[len(s)-200:]
		}
		return s
	}
	return err.Error()
}
