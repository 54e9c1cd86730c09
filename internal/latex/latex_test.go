package latex

import (
	"strings"
	"testing"
)

func TestEscape(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain text untouched", "hello world", "hello world"},
		{"ampersand", "R&D", `R\&D`},
		{"percent", "50%", `50\%`},
		{"dollar", "$100", `\$100`},
		{"hash", "#1", `\#1`},
		{"underscore", "unit_name", `unit\_name`},
		{"braces", "{x}", `\{x\}`},
		{"backslash", `a\b`, `a\textbackslash{}b`},
		{"tilde", "~user", `\textasciitilde{}user`},
		{"caret", "x^2", `x\textasciicircum{}2`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Escape(tt.input); got != tt.want {
				t.Errorf("Escape(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFromMarkdown(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		contains []string
	}{
		{
			name:     "paragraph with emphasis",
			input:    "I am *excited* to apply my **strong** skills.",
			contains: []string{`\textit{excited}`, `\textbf{strong}`},
		},
		{
			name:  "unordered list",
			input: "- alpha\n- beta\n",
			contains: []string{
				`\begin{itemize}`,
				`\item alpha`,
				`\item beta`,
				`\end{itemize}`,
			},
		},
		{
			name:     "ordered list",
			input:    "1. first\n2. second\n",
			contains: []string{`\begin{enumerate}`, `\item first`, `\end{enumerate}`},
		},
		{
			name:     "headings",
			input:    "# Top\n\n## Middle\n\n### Inner\n",
			contains: []string{`\section*{Top}`, `\subsection*{Middle}`, `\subsubsection*{Inner}`},
		},
		{
			name:     "link",
			input:    "see [my site](https://example.com/a%20b)",
			contains: []string{`\href{https://example.com/a\%20b}{my site}`},
		},
		{
			name:     "autolink",
			input:    "visit https://example.com now",
			contains: []string{`\url{https://example.com}`},
		},
		{
			name:     "inline code",
			input:    "run `cvkit build` first",
			contains: []string{`\texttt{cvkit build}`},
		},
		{
			name:     "fenced code block",
			input:    "```\nx := 1\n```\n",
			contains: []string{"\\begin{verbatim}\nx := 1\n", `\end{verbatim}`},
		},
		{
			name:     "special characters escaped",
			input:    "R&D costs 50% of $budget_total",
			contains: []string{`R\&D`, `50\%`, `\$budget\_total`},
		},
		{
			name:     "blockquote",
			input:    "> quoted text\n",
			contains: []string{`\begin{quote}`, "quoted text", `\end{quote}`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromMarkdown([]byte(tt.input))
			if err != nil {
				t.Fatalf("FromMarkdown() error = %v", err)
			}
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("output missing %q\ngot:\n%s", want, got)
				}
			}
		})
	}
}

func TestFromMarkdown_BlocksSeparatedByBlankLines(t *testing.T) {
	got, err := FromMarkdown([]byte("first paragraph\n\nsecond paragraph\n"))
	if err != nil {
		t.Fatalf("FromMarkdown() error = %v", err)
	}
	if !strings.Contains(got, "first paragraph\n\nsecond paragraph") {
		t.Errorf("paragraphs not separated by blank line:\n%s", got)
	}
}

func TestFromMarkdown_NestedList(t *testing.T) {
	got, err := FromMarkdown([]byte("- outer\n  - inner\n"))
	if err != nil {
		t.Fatalf("FromMarkdown() error = %v", err)
	}
	if strings.Count(got, `\begin{itemize}`) != 2 {
		t.Errorf("want two itemize environments, got:\n%s", got)
	}
	if !strings.Contains(got, `\item inner`) {
		t.Errorf("nested item missing:\n%s", got)
	}
}

func TestFromMarkdown_DropsRawHTML(t *testing.T) {
	got, err := FromMarkdown([]byte("before\n\n<div>ignored</div>\n\nafter\n"))
	if err != nil {
		t.Fatalf("FromMarkdown() error = %v", err)
	}
	if strings.Contains(got, "<div>") {
		t.Errorf("raw HTML leaked into output:\n%s", got)
	}
}
