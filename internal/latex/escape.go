// Package latex converts Markdown letter bodies to LaTeX and provides
// escaping helpers for text interpolated into LaTeX documents.
package latex

import "strings"

// escaper rewrites characters that are special in LaTeX text mode.
// Backslash must map to \textbackslash{} rather than \\ (a line break).
var escaper = strings.NewReplacer(
	`\`, `\textbackslash{}`,
	`&`, `\&`,
	`%`, `\%`,
	`$`, `\$`,
	`#`, `\#`,
	`_`, `\_`,
	`{`, `\{`,
	`}`, `\}`,
	`~`, `\textasciitilde{}`,
	`^`, `\textasciicircum{}`,
)

// Escape rewrites LaTeX special characters in s so it can appear in text mode.
func Escape(s string) string {
	return escaper.Replace(s)
}
