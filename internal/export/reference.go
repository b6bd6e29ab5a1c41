package export

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/yuin/goldmark"

	"github.com/abhisek/secplus/internal/content"
)

var pageTmpl = template.Must(template.New("reference").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: system-ui, sans-serif; max-width: 60rem; margin: 2rem auto; padding: 0 1rem; line-height: 1.5; }
h1 { border-bottom: 2px solid #2563eb; }
h2 { color: #374151; border-bottom: 1px solid #e5e7eb; }
h3 { margin-bottom: 0.25rem; }
</style>
</head>
<body>
{{.Body}}
</body>
</html>
`))

// Reference is the content of a reference export.
type Reference struct {
	Title   string
	Domains []content.Domain
	Groups  []content.DomainGroup
}

// WriteReference renders grouped cards as a standalone HTML page. Card text
// is treated as Markdown; raw HTML in it is not passed through.
func WriteReference(w io.Writer, ref Reference) error {
	md := ReferenceMarkdown(ref)

	var body bytes.Buffer
	if err := goldmark.Convert([]byte(md), &body); err != nil {
		return fmt.Errorf("render markdown: %w", err)
	}

	data := struct {
		Title string
		Body  template.HTML
	}{
		Title: ref.Title,
		Body:  template.HTML(body.String()),
	}
	if err := pageTmpl.Execute(w, data); err != nil {
		return fmt.Errorf("write page: %w", err)
	}
	return nil
}

// ReferenceMarkdown builds the Markdown source of a reference export.
func ReferenceMarkdown(ref Reference) string {
	names := make(map[int]string, len(ref.Domains))
	for _, d := range ref.Domains {
		names[d.ID] = d.Name
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", ref.Title)
	if len(ref.Groups) == 0 {
		b.WriteString("No flashcards found.\n")
		return b.String()
	}

	for _, g := range ref.Groups {
		if name, ok := names[g.DomainID]; ok {
			fmt.Fprintf(&b, "## Domain %d: %s\n\n", g.DomainID, name)
		} else {
			fmt.Fprintf(&b, "## Domain %d\n\n", g.DomainID)
		}
		for _, s := range g.Sections {
			fmt.Fprintf(&b, "### %s\n\n", s.Name)
			for _, c := range s.Cards {
				fmt.Fprintf(&b, "#### %s\n\n", c.Front)
				fmt.Fprintf(&b, "**%s**\n\n", c.Back.Level1)
				fmt.Fprintf(&b, "%s\n\n", c.Back.Level2)
				fmt.Fprintf(&b, "%s\n\n", c.Back.Level3)
				if len(c.Metadata.RelatedTerms) > 0 {
					fmt.Fprintf(&b, "*Related: %s*\n\n", strings.Join(c.Metadata.RelatedTerms, ", "))
				}
			}
		}
	}
	return b.String()
}
