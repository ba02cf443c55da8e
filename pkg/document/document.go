// Package document wraps an SVG viewport in a minimal HTML page.
//
// The SVG is embedded as opaque text: it is neither parsed nor validated.
package document

import (
	"bytes"
	"fmt"
	"html"
	"strings"
)

// Option configures the generated page.
type Option func(*page)

type page struct {
	comments []string
}

// WithComment adds an HTML comment at the top of the body, e.g. a card id.
func WithComment(text string) Option {
	return func(p *page) { p.comments = append(p.comments, text) }
}

// Wrap returns a complete HTML document with the given title whose body holds
// svg verbatim.
func Wrap(title, svg string, opts ...Option) string {
	var p page
	for _, opt := range opts {
		opt(&p)
	}

	var buf bytes.Buffer
	buf.WriteString("<!DOCTYPE html>\n")
	buf.WriteString("<html>\n")
	buf.WriteString("<head>\n")
	buf.WriteString("   <meta charset=\"utf-8\">\n")
	fmt.Fprintf(&buf, "   <title>%s</title>\n", html.EscapeString(title))
	buf.WriteString("</head>\n")
	buf.WriteString("<body>\n")
	for _, c := range p.comments {
		// "--" cannot appear inside a comment.
		fmt.Fprintf(&buf, "   <!-- %s -->\n", strings.ReplaceAll(c, "--", "- -"))
	}
	buf.WriteString(svg)
	if !strings.HasSuffix(svg, "\n") {
		buf.WriteByte('\n')
	}
	buf.WriteString("</body>\n")
	buf.WriteString("</html>\n")
	return buf.String()
}
