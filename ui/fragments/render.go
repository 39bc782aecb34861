package fragments

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

//go:embed templates/*.html
var templateFiles embed.FS

var templates = template.Must(
	template.New("").Funcs(funcMap()).ParseFS(templateFiles, "templates/*.html"),
)

func funcMap() template.FuncMap {
	return template.FuncMap{
		"mul": func(a, b float64) float64 { return a * b },
		"add": func(a, b int) int { return a + b },
		"pct": func(v float64) string { return fmt.Sprintf("%.0f%%", v*100) },
		"compact": func(n int64) string {
			switch {
			case n >= 1_000_000:
				return fmt.Sprintf("%.1fM", float64(n)/1_000_000)
			case n >= 1_000:
				return fmt.Sprintf("%.1fK", float64(n)/1_000)
			}
			return fmt.Sprintf("%d", n)
		},
	}
}

// renderTemplate executes a fragment template into a buffer first so a
// template error surfaces as a fragment error instead of partial markup.
func renderTemplate(name string, data interface{}) (template.HTML, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("template %s: %w", name, err)
	}
	return template.HTML(buf.String()), nil
}

// renderMarkdown converts analysis free text (summaries, outreach copy) to
// HTML. Analyst-authored markdown is trusted content here; it never carries
// end-user input.
func renderMarkdown(src string) template.HTML {
	p := parser.NewWithExtensions(parser.CommonExtensions)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	return template.HTML(markdown.ToHTML([]byte(src), p, renderer))
}
