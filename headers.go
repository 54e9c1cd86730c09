package cvkit

import (
	"fmt"
	"strings"
	"unicode"
)

// sectionHeaders maps known section names to their LaTeX headers.
var sectionHeaders = map[string]string{
	"education":    `\section{Education, Scholarships \& Distinctions}`,
	"experience":   `\section{Professional Experience}`,
	"projects":     `\section{Open–Source Tools \& Projects}`,
	"teaching":     `\section{Teaching Experience}`,
	"skills":       `\section{Technical Skills}`,
	"publications": `\section{Publications}`,
	"activism":     `\section{Community Service \& Activism}`,
}

// SectionHeader returns the LaTeX header for a section. Unknown
// sections get a title-cased fallback.
func SectionHeader(section string) string {
	if header, ok := sectionHeaders[section]; ok {
		return header
	}
	return fmt.Sprintf(`\section{%s}`, titleCase(section))
}

// titleCase uppercases the first letter of every word, treating any
// non-letter rune as a word boundary.
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) && !prevLetter {
			r = unicode.ToUpper(r)
		}
		prevLetter = unicode.IsLetter(r)
		b.WriteRune(r)
	}
	return b.String()
}
