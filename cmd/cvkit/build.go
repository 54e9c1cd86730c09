package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	cvkit "github.com/alisajid/go-cvkit"
	"github.com/alisajid/go-cvkit/internal/config"
	"github.com/alisajid/go-cvkit/internal/hints"
)

// maxWorkers caps the build pool. Document targets are few and each
// latexmk run is already multi-process.
const maxWorkers = 8

// Sentinel errors for the build command.
var (
	ErrNoTargets     = errors.New("no document targets configured")
	ErrUnknownTarget = errors.New("unknown document target")
)

// buildResult holds the outcome of building one document target.
type buildResult struct {
	Target    string
	Fragments []string
	Err       error
	Duration  time.Duration
}

// runBuildCmd assembles configured document targets, optionally
// compiling them with latexmk.
func runBuildCmd(args []string, env *Environment) int {
	f := &buildFlags{}
	fs := newBuildFlagSet(f)
	fs.SetOutput(env.Stderr)
	if err := fs.Parse(args); err != nil {
		return ExitUsage
	}

	cfg, envCfg, err := resolveConfig(f.common.config, env)
	if err != nil {
		fmt.Fprintln(env.Stderr, err)
		return exitCodeFor(err)
	}

	targets, err := selectTargets(cfg, fs.Args())
	if err != nil {
		fmt.Fprintln(env.Stderr, err)
		return exitCodeFor(err)
	}

	svc, err := newService(cfg, env)
	if err != nil {
		fmt.Fprintln(env.Stderr, err)
		return exitCodeFor(err)
	}

	var runner *cvkit.LatexmkRunner
	if f.pdf {
		runner = cvkit.NewLatexmkRunner()
		if err := runner.Available(); err != nil {
			fmt.Fprintf(env.Stderr, "%v%s\n", err, hints.ForLatexmkNotFound())
			return exitCodeFor(err)
		}
	}

	workers := f.workers
	if workers == 0 {
		workers = envCfg.Workers
	}
	poolSize := resolvePoolSize(workers, len(targets))
	if f.common.verbose {
		fmt.Fprintf(env.Stderr, "Building %d target(s) with %d worker(s)\n", len(targets), poolSize)
	}

	results := buildTargets(context.Background(), svc, cfg, targets, runner, poolSize)

	exit := ExitSuccess
	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
			fmt.Fprintf(env.Stderr, "[FAIL] %s: %v\n", res.Target, res.Err)
			if exit == ExitSuccess {
				exit = exitCodeFor(res.Err)
			}
			continue
		}
		if !f.common.quiet {
			fmt.Fprintf(env.Stdout, "[OK] %s (%d fragments, %s)\n",
				res.Target, len(res.Fragments), res.Duration.Round(time.Millisecond))
		}
	}
	if failed > 0 {
		fmt.Fprintf(env.Stderr, "Error: %d target(s) failed\n", failed)
	}
	return exit
}

// selectTargets resolves the targets to build from positional args,
// defaulting to every configured target.
func selectTargets(cfg *config.Config, names []string) ([]config.DocumentTarget, error) {
	if len(cfg.Documents) == 0 {
		return nil, ErrNoTargets
	}
	if len(names) == 0 {
		return cfg.Documents, nil
	}

	targets := make([]config.DocumentTarget, 0, len(names))
	for _, name := range names {
		t := cfg.Target(name)
		if t == nil {
			return nil, fmt.Errorf("%w: %q", ErrUnknownTarget, name)
		}
		targets = append(targets, *t)
	}
	return targets, nil
}

// resolvePoolSize clamps the worker count to [1, maxWorkers] and never
// exceeds the number of targets.
func resolvePoolSize(requested, targets int) int {
	n := requested
	if n < 1 {
		n = runtime.GOMAXPROCS(0) / 2
	}
	if n > maxWorkers {
		n = maxWorkers
	}
	if n > targets {
		n = targets
	}
	if n < 1 {
		n = 1
	}
	return n
}

// buildTargets processes targets concurrently using a worker pool.
func buildTargets(ctx context.Context, svc *cvkit.Service, cfg *config.Config, targets []config.DocumentTarget, runner *cvkit.LatexmkRunner, workers int) []buildResult {
	results := make([]buildResult, len(targets))
	jobs := make(chan int, len(targets))

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = buildResult{Target: targets[idx].Name, Err: ctx.Err()}
					continue
				}
				results[idx] = buildTarget(ctx, svc, cfg, targets[idx], runner)
			}
		}()
	}

	for idx := range targets {
		jobs <- idx
	}
	close(jobs)
	wg.Wait()

	return results
}

// buildTarget assembles every section fragment of one target and
// optionally compiles the main document.
func buildTarget(ctx context.Context, svc *cvkit.Service, cfg *config.Config, target config.DocumentTarget, runner *cvkit.LatexmkRunner) buildResult {
	start := time.Now()
	res := buildResult{Target: target.Name}

	for _, job := range target.Sections {
		assembled, err := svc.AssembleSection(ctx, cvkit.AssembleInput{
			Section:       job.Section,
			Tags:          job.Tags,
			ExcludeTags:   job.ExcludeTags,
			MaxItems:      job.MaxItems,
			IncludeHeader: job.IncludeHeader,
		})
		if err != nil {
			res.Err = fmt.Errorf("section %s: %w", job.Section, err)
			res.Duration = time.Since(start)
			return res
		}

		out := fragmentPath(cfg, target, job)
		if err := writeFragment(out, assembled.Content); err != nil {
			res.Err = err
			res.Duration = time.Since(start)
			return res
		}
		res.Fragments = append(res.Fragments, out)
	}

	if runner != nil {
		dir := target.Dir
		if dir == "" {
			dir = target.Name
		}
		main := target.Main
		if main == "" {
			main = target.Name + ".tex"
		}
		if err := runner.Build(ctx, dir, main); err != nil {
			res.Err = err
		}
	}

	res.Duration = time.Since(start)
	return res
}

// fragmentPath resolves where one assembled section fragment lands.
func fragmentPath(cfg *config.Config, target config.DocumentTarget, job config.SectionJob) string {
	if job.Output != "" {
		return job.Output
	}
	name := fmt.Sprintf("%s_%s.tex", job.Section, target.Name)
	return filepath.Join(cfg.Workspace.SectionsDir, name)
}
