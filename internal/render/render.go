// Package render turns generated posts into HTML.
package render

import (
	"bytes"
	"fmt"
	"html"

	"github.com/yuin/goldmark"

	"github.com/BerylCAtieno/persona-writer-agent/internal/models"
)

var md = goldmark.New()

// Markdown converts source to HTML. Raw HTML in the source is not passed
// through.
func Markdown(source string) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(source), &buf); err != nil {
		return "", fmt.Errorf("markdown convert: %w", err)
	}
	return buf.String(), nil
}

// PostHTML renders a blog post as an HTML fragment. The stored title is
// escaped and shown as-is.
func PostHTML(post *models.BlogPost) (string, error) {
	body, err := Markdown(post.Content)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	buf.WriteString("<article>\n")
	if post.Title != nil && *post.Title != "" {
		fmt.Fprintf(&buf, "<h1>%s</h1>\n", html.EscapeString(*post.Title))
	}
	buf.WriteString(body)
	buf.WriteString("</article>\n")
	return buf.String(), nil
}
