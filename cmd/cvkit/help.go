package main

import (
	"fmt"
	"io"
)

// runHelpCmd prints help for a command, or general usage.
func runHelpCmd(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case "section":
		printSectionUsage(env.Stdout)
	case "build":
		printBuildUsage(env.Stdout)
	case "letter":
		printLetterUsage(env.Stdout)
	case "bib":
		printBibUsage(env.Stdout)
	case "status":
		printStatusUsage(env.Stdout)
	case "completion":
		printCompletionUsage(env.Stdout)
	default:
		fmt.Fprintf(env.Stderr, "Error: unknown command %q\n\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: cvkit <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  section     Assemble a CV section from tagged units")
	fmt.Fprintln(w, "  build       Build configured document targets")
	fmt.Fprintln(w, "  letter      Generate a cover letter in a target directory")
	fmt.Fprintln(w, "  bib         Split a bibliography into tagged subsets")
	fmt.Fprintln(w, "  status      Report workspace health")
	fmt.Fprintln(w, "  completion  Generate shell completion scripts")
	fmt.Fprintln(w, "  version     Show version information")
	fmt.Fprintln(w, "  help        Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'cvkit help <command>' for details on a specific command.")
}

// printSectionUsage prints usage for the section command.
func printSectionUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: cvkit section <name> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Assemble a CV section from tagged units, ordered by priority.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  name    Section name from the metadata file (education, experience, ...)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -t, --tags <list>          Include units with any of these tags")
	fmt.Fprintln(w, "  -x, --exclude-tags <list>  Exclude units with any of these tags")
	fmt.Fprintln(w, "  -m, --max-items <n>        Maximum number of units (0 = all)")
	fmt.Fprintln(w, "      --include-header       Prepend the LaTeX section header")
	fmt.Fprintln(w, "  -o, --output <path>        Output file (default: stdout)")
	fmt.Fprintln(w, "  -c, --config <name>        Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet                Suppress non-error output")
	fmt.Fprintln(w, "  -v, --verbose              Verbose output")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "  cvkit section education --tags full_cv --include-header -o sections/education_full.tex")
	fmt.Fprintln(w, "  cvkit section experience --tags short_cv --max-items 3")
}

// printBuildUsage prints usage for the build command.
func printBuildUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: cvkit build [targets...] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Build document targets defined in the config file. With no")
	fmt.Fprintln(w, "arguments every configured target is built.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -w, --workers <n>     Parallel workers (0 = auto)")
	fmt.Fprintln(w, "      --pdf             Compile targets with latexmk after assembly")
	fmt.Fprintln(w, "  -c, --config <name>   Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet           Suppress non-error output")
	fmt.Fprintln(w, "  -v, --verbose         Verbose output")
}

// printLetterUsage prints usage for the letter command.
func printLetterUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: cvkit letter <directory> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate a moderncv cover letter as cover_letter.tex inside an")
	fmt.Fprintln(w, "existing directory.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "      --organization <s>   Organization name (required)")
	fmt.Fprintln(w, "      --location <s>       Organization location (required)")
	fmt.Fprintln(w, "      --recipient <s>      Recipient title (default: Hiring Manager)")
	fmt.Fprintln(w, "      --opening <s>        Letter opening line")
	fmt.Fprintln(w, "      --closing <s>        Letter closing line")
	fmt.Fprintln(w, "      --date <s>           Date: literal, \"auto\", or \"auto:FORMAT\"")
	fmt.Fprintln(w, "      --template <s>       Letter template name (default: classic)")
	fmt.Fprintln(w, "      --body <path>        Letter body file (.tex or .md)")
	fmt.Fprintln(w, "  -c, --config <name>      Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet              Suppress non-error output")
}

// printBibUsage prints usage for the bib command.
func printBibUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: cvkit bib <input.bib> [output-dir] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Remap and filter entry keywords, then write one .bib per tagged")
	fmt.Fprintln(w, "subset plus all.bib (only created when absent).")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "      --prefix <s>           Subset tag prefix (default: pub:)")
	fmt.Fprintln(w, "      --keyword-map <path>   Keyword remapping file")
	fmt.Fprintln(w, "      --valid-prefixes <l>   Keyword prefixes to keep")
	fmt.Fprintln(w, "  -c, --config <name>        Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet                Suppress non-error output")
}

// printStatusUsage prints usage for the status command.
func printStatusUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: cvkit status [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Report workspace health: metadata, unit files, generated")
	fmt.Fprintln(w, "sections, and bibliographies.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "      --json            Machine-readable JSON output")
	fmt.Fprintln(w, "  -c, --config <name>   Config file name or path")
}

// printCompletionUsage prints usage for the completion command.
func printCompletionUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: cvkit completion <shell>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate a completion script for bash, zsh, fish, or powershell.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "  cvkit completion bash > /etc/bash_completion.d/cvkit")
	fmt.Fprintln(w, "  cvkit completion zsh > \"${fpath[1]}/_cvkit\"")
}
