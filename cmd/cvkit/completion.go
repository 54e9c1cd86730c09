package main

import (
	"fmt"
	"io"
	"strings"

	flag "github.com/spf13/pflag"
)

// Shell represents a supported shell for completion generation.
type Shell string

// Supported shells for completion.
const (
	ShellBash       Shell = "bash"
	ShellZsh        Shell = "zsh"
	ShellFish       Shell = "fish"
	ShellPowerShell Shell = "powershell"
)

// ErrUnsupportedShell is returned when an unknown shell is requested.
var ErrUnsupportedShell = fmt.Errorf("unsupported shell")

// flagType represents the completion type for a flag.
type flagType int

const (
	flagString flagType = iota // default
	flagBool
	flagInt
	flagFile // file with glob pattern
	flagDir  // directory
)

// flagDef describes a flag for completion purposes.
type flagDef struct {
	Long     string   // --output
	Short    string   // -o (empty if none)
	Type     flagType // completion type
	Desc     string   // help text
	FileGlob string   // for file flags
}

// commandDef describes a command for completion.
type commandDef struct {
	Name        string
	Desc        string
	Flags       []flagDef
	TakesFiles  bool   // accepts file arguments
	FilePattern string // glob for file arguments (e.g., "*.bib")
}

// flagCompletionMeta maps flag names to completion hints. Flag names,
// types, and descriptions come from the FlagSets themselves.
var flagCompletionMeta = map[string]struct {
	FileGlob string
	IsDir    bool
}{
	"config":      {FileGlob: "*.yaml,*.yml"},
	"body":        {FileGlob: "*.tex,*.md"},
	"keyword-map": {FileGlob: "*.txt"},
	"output":      {FileGlob: "*.tex"},
}

// extractFlagsFromFlagSet extracts flag definitions from a pflag.FlagSet.
func extractFlagsFromFlagSet(fs *flag.FlagSet) []flagDef {
	var flags []flagDef

	fs.VisitAll(func(f *flag.Flag) {
		fd := flagDef{
			Long:  f.Name,
			Short: f.Shorthand,
			Desc:  f.Usage,
		}

		switch f.Value.Type() {
		case "bool":
			fd.Type = flagBool
		case "int", "int8", "int16", "int32", "int64":
			fd.Type = flagInt
		default:
			fd.Type = flagString
		}

		if meta, ok := flagCompletionMeta[f.Name]; ok {
			if meta.FileGlob != "" {
				fd.Type = flagFile
				fd.FileGlob = meta.FileGlob
			} else if meta.IsDir {
				fd.Type = flagDir
			}
		}

		flags = append(flags, fd)
	})

	return flags
}

// getCommands returns the command registry for completion.
// Flags are extracted from the actual FlagSets - single source of truth.
func getCommands() []commandDef {
	return []commandDef{
		{
			Name:  "section",
			Desc:  "Assemble a CV section from tagged units",
			Flags: extractFlagsFromFlagSet(newSectionFlagSet(&sectionFlags{})),
		},
		{
			Name:  "build",
			Desc:  "Build configured document targets",
			Flags: extractFlagsFromFlagSet(newBuildFlagSet(&buildFlags{})),
		},
		{
			Name:       "letter",
			Desc:       "Generate a cover letter in a target directory",
			Flags:      extractFlagsFromFlagSet(newLetterFlagSet(&letterFlags{})),
			TakesFiles: true,
		},
		{
			Name:        "bib",
			Desc:        "Split a bibliography into tagged subsets",
			Flags:       extractFlagsFromFlagSet(newBibFlagSet(&bibFlags{})),
			TakesFiles:  true,
			FilePattern: "*.bib",
		},
		{
			Name:  "status",
			Desc:  "Report workspace health",
			Flags: extractFlagsFromFlagSet(newStatusFlagSet(&statusFlags{})),
		},
		{Name: "version", Desc: "Show version information"},
		{Name: "help", Desc: "Show help for a command"},
		{Name: "completion", Desc: "Generate shell completion script"},
	}
}

// runCompletionCmd handles the completion command.
func runCompletionCmd(args []string, env *Environment) int {
	if len(args) == 0 {
		printCompletionUsage(env.Stdout)
		return ExitSuccess
	}

	if err := GenerateCompletion(env.Stdout, Shell(args[0])); err != nil {
		fmt.Fprintln(env.Stderr, err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// GenerateCompletion writes a shell completion script to w.
// Returns an error if the shell is unsupported or the write fails.
func GenerateCompletion(w io.Writer, shell Shell) error {
	switch shell {
	case ShellBash:
		return generateBash(w)
	case ShellZsh:
		return generateZsh(w)
	case ShellFish:
		return generateFish(w)
	case ShellPowerShell:
		return generatePowerShell(w)
	default:
		return fmt.Errorf("%w: %q (supported: bash, zsh, fish, powershell)", ErrUnsupportedShell, shell)
	}
}

// flagSpellings returns the long (and short, if any) spellings of a flag.
func flagSpellings(f flagDef) []string {
	spellings := []string{"--" + f.Long}
	if f.Short != "" {
		spellings = append(spellings, "-"+f.Short)
	}
	return spellings
}

func generateBash(w io.Writer) error {
	var b strings.Builder
	b.WriteString("# bash completion for cvkit\n")
	b.WriteString("_cvkit() {\n")
	b.WriteString("    local cur prev words cword\n")
	b.WriteString("    cur=\"${COMP_WORDS[COMP_CWORD]}\"\n")
	b.WriteString("    prev=\"${COMP_WORDS[COMP_CWORD-1]}\"\n")
	b.WriteString("    local commands=\"")
	for i, cmd := range getCommands() {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(cmd.Name)
	}
	b.WriteString("\"\n\n")
	b.WriteString("    if [[ $COMP_CWORD -eq 1 ]]; then\n")
	b.WriteString("        COMPREPLY=( $(compgen -W \"$commands\" -- \"$cur\") )\n")
	b.WriteString("        return\n")
	b.WriteString("    fi\n\n")
	b.WriteString("    case \"${COMP_WORDS[1]}\" in\n")
	for _, cmd := range getCommands() {
		if len(cmd.Flags) == 0 {
			continue
		}
		var spellings []string
		for _, f := range cmd.Flags {
			spellings = append(spellings, flagSpellings(f)...)
		}
		fmt.Fprintf(&b, "        %s)\n", cmd.Name)
		fmt.Fprintf(&b, "            COMPREPLY=( $(compgen -W %q -- \"$cur\") )\n", strings.Join(spellings, " "))
		b.WriteString("            ;;\n")
	}
	b.WriteString("    esac\n")
	b.WriteString("}\n")
	b.WriteString("complete -o default -F _cvkit cvkit\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func generateZsh(w io.Writer) error {
	var b strings.Builder
	b.WriteString("#compdef cvkit\n")
	b.WriteString("# zsh completion for cvkit\n\n")
	b.WriteString("_cvkit() {\n")
	b.WriteString("    local -a commands\n")
	b.WriteString("    commands=(\n")
	for _, cmd := range getCommands() {
		fmt.Fprintf(&b, "        '%s:%s'\n", cmd.Name, strings.ReplaceAll(cmd.Desc, "'", ""))
	}
	b.WriteString("    )\n\n")
	b.WriteString("    if (( CURRENT == 2 )); then\n")
	b.WriteString("        _describe 'command' commands\n")
	b.WriteString("        return\n")
	b.WriteString("    fi\n\n")
	b.WriteString("    case $words[2] in\n")
	for _, cmd := range getCommands() {
		if len(cmd.Flags) == 0 {
			continue
		}
		fmt.Fprintf(&b, "        %s)\n", cmd.Name)
		b.WriteString("            _arguments \\\n")
		for _, f := range cmd.Flags {
			desc := strings.ReplaceAll(f.Desc, "'", "")
			desc = strings.ReplaceAll(desc, "[", "(")
			desc = strings.ReplaceAll(desc, "]", ")")
			fmt.Fprintf(&b, "                '--%s[%s]' \\\n", f.Long, desc)
		}
		b.WriteString("                '*:file:_files'\n")
		b.WriteString("            ;;\n")
	}
	b.WriteString("    esac\n")
	b.WriteString("}\n\n")
	b.WriteString("_cvkit \"$@\"\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func generateFish(w io.Writer) error {
	var b strings.Builder
	b.WriteString("# fish completion for cvkit\n")
	b.WriteString("complete -c cvkit -f\n\n")
	for _, cmd := range getCommands() {
		fmt.Fprintf(&b, "complete -c cvkit -n '__fish_use_subcommand' -a %s -d %q\n",
			cmd.Name, cmd.Desc)
		for _, f := range cmd.Flags {
			fmt.Fprintf(&b, "complete -c cvkit -n '__fish_seen_subcommand_from %s' -l %s",
				cmd.Name, f.Long)
			if f.Short != "" {
				fmt.Fprintf(&b, " -s %s", f.Short)
			}
			if f.Type != flagBool {
				b.WriteString(" -r")
			}
			fmt.Fprintf(&b, " -d %q\n", f.Desc)
		}
		if cmd.TakesFiles {
			fmt.Fprintf(&b, "complete -c cvkit -n '__fish_seen_subcommand_from %s' -F\n", cmd.Name)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func generatePowerShell(w io.Writer) error {
	var b strings.Builder
	b.WriteString("# powershell completion for cvkit\n")
	b.WriteString("Register-ArgumentCompleter -Native -CommandName cvkit -ScriptBlock {\n")
	b.WriteString("    param($wordToComplete, $commandAst, $cursorPosition)\n")
	b.WriteString("    $commands = @(\n")
	for _, cmd := range getCommands() {
		fmt.Fprintf(&b, "        @{ Name = '%s'; Desc = '%s' }\n",
			cmd.Name, strings.ReplaceAll(cmd.Desc, "'", "''"))
	}
	b.WriteString("    )\n")
	b.WriteString("    $commands | Where-Object { $_.Name -like \"$wordToComplete*\" } | ForEach-Object {\n")
	b.WriteString("        [System.Management.Automation.CompletionResult]::new($_.Name, $_.Name, 'ParameterValue', $_.Desc)\n")
	b.WriteString("    }\n")
	b.WriteString("}\n")

	_, err := io.WriteString(w, b.String())
	return err
}
