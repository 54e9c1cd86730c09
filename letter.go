package cvkit

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"text/template"

	"github.com/alisajid/go-cvkit/internal/assets"
)

// letterData is the template execution context for letter templates.
type letterData struct {
	FirstName    string
	LastName     string
	ContactBlock string
	Recipient    string
	Organization string
	Location     string
	Date         string
	Opening      string
	Closing      string
	Body         string
}

// RenderLetter renders a moderncv cover letter document.
// Defaults are applied via input validation; an empty body falls back
// to the embedded default letter body.
func (s *Service) RenderLetter(ctx context.Context, input LetterInput) (string, error) {
	if err := input.Validate(); err != nil {
		return "", err
	}

	name := input.Template
	if name == "" {
		name = assets.DefaultTemplateName
	}

	raw, err := s.assets.LoadTemplate(name)
	if err != nil {
		return "", err
	}
	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	body := strings.TrimSpace(input.Body)
	if body == "" {
		body, err = s.assets.LoadBody(assets.DefaultBodyName)
		if err != nil {
			return "", err
		}
		body = strings.TrimSpace(body)
	}

	// LaTeX braces clash with the default {{ }} delimiters.
	tmpl, err := template.New(name).Delims("<<", ">>").Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrLetterRender, err)
	}

	data := letterData{
		FirstName:    input.Author.FirstName,
		LastName:     input.Author.LastName,
		ContactBlock: buildContactBlock(input.Author),
		Recipient:    input.Recipient,
		Organization: input.Organization,
		Location:     input.Location,
		Date:         input.Date,
		Opening:      input.Opening,
		Closing:      input.Closing,
		Body:         body,
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrLetterRender, err)
	}

	return buf.String(), nil
}

// buildContactBlock renders the moderncv preamble lines for the
// author's contact details, omitting empty fields.
func buildContactBlock(a AuthorInfo) string {
	var lines []string

	if a.Street != "" || a.City != "" || a.Country != "" {
		lines = append(lines, fmt.Sprintf(`\address{%s}{%s}{%s}`, a.Street, a.City, a.Country))
	}
	if a.Phone != "" {
		lines = append(lines, fmt.Sprintf(`\phone[mobile]{%s}`, a.Phone))
	}
	for _, email := range a.Emails {
		if email == "" {
			continue
		}
		lines = append(lines, fmt.Sprintf(`\email{%s}`, email))
	}
	if a.Homepage != "" {
		lines = append(lines, fmt.Sprintf(`\homepage{%s}`, a.Homepage))
	}
	if a.Linkedin != "" {
		lines = append(lines, fmt.Sprintf(`\social[linkedin]{%s}`, a.Linkedin))
	}
	if a.Github != "" {
		lines = append(lines, fmt.Sprintf(`\social[github]{%s}`, a.Github))
	}
	if a.Orcid != "" {
		lines = append(lines, fmt.Sprintf(`\social[orcid]{%s}`, a.Orcid))
	}

	return strings.Join(lines, "\n")
}
