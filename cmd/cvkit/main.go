package main

import (
	"fmt"
	"os"

	"go.uber.org/automaxprocs/maxprocs"

	cvkit "github.com/alisajid/go-cvkit"
	"github.com/alisajid/go-cvkit/internal/config"
	"github.com/alisajid/go-cvkit/internal/fileutil"
	"github.com/alisajid/go-cvkit/internal/hints"
)

// Version is set at build time via ldflags.
var Version = "dev"

// defaultConfigName is searched when no --config flag or CVKIT_CONFIG
// variable is set.
const defaultConfigName = "cvkit"

func main() {
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))

	os.Exit(run(os.Args[1:], DefaultEnv()))
}

// run dispatches to a subcommand and returns its exit code.
func run(args []string, env *Environment) int {
	warnUnknownEnvVars(env.Stderr, env.Environ())

	if len(args) == 0 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "section":
		return runSectionCmd(rest, env)
	case "build":
		return runBuildCmd(rest, env)
	case "letter":
		return runLetterCmd(rest, env)
	case "bib":
		return runBibCmd(rest, env)
	case "status":
		return runStatusCmd(rest, env)
	case "completion":
		return runCompletionCmd(rest, env)
	case "version", "--version":
		fmt.Fprintf(env.Stdout, "cvkit %s\n", Version)
		return ExitSuccess
	case "help", "--help", "-h":
		return runHelpCmd(rest, env)
	default:
		fmt.Fprintf(env.Stderr, "Error: unknown command %q\n\n", cmd)
		printUsage(env.Stderr)
		return ExitUsage
	}
}

// resolveConfig loads configuration with flags > env > file > defaults
// precedence. An explicitly named config that cannot be loaded is an
// error; the implicit default config is optional.
func resolveConfig(flagPath string, env *Environment) (*config.Config, *envConfig, error) {
	envCfg := loadEnvConfig(env.Getenv)

	path := flagPath
	if path == "" {
		path = envCfg.ConfigPath
	}

	var cfg *config.Config
	if path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			if !fileutil.IsFilePath(path) {
				err = fmt.Errorf("%w%s", err, hints.ForConfigNotFound(config.SearchedConfigPaths(path)))
			}
			return nil, nil, err
		}
		cfg = loaded
	} else if found := findDefaultConfig(); found != "" {
		loaded, err := config.LoadConfig(found)
		if err != nil {
			return nil, nil, err
		}
		cfg = loaded
	} else {
		cfg = config.DefaultConfig()
	}

	applyEnvConfig(cfg, envCfg)
	return cfg, envCfg, nil
}

// findDefaultConfig returns the first existing default config path, or
// empty when none exists.
func findDefaultConfig() string {
	for _, p := range config.SearchedConfigPaths(defaultConfigName) {
		if fileutil.FileExists(p) {
			return p
		}
	}
	return ""
}

// newService wires a Service from loaded configuration.
func newService(cfg *config.Config, env *Environment) (*cvkit.Service, error) {
	loader, err := env.assetLoaderFor(cfg)
	if err != nil {
		return nil, err
	}
	return cvkit.New(
		cvkit.WithMetadataPath(cfg.Workspace.Metadata),
		cvkit.WithUnitsDir(cfg.Workspace.UnitsDir),
		cvkit.WithAssetLoader(loader),
	), nil
}
