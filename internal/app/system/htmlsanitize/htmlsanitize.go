// internal/app/system/htmlsanitize/htmlsanitize.go
//
// Package htmlsanitize cleans HTML that reaches the dashboard from outside:
// the operator-configured footer and text fields returned by the platform API.
package htmlsanitize

import (
	"html"
	"html/template"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var tableElements = []string{"table", "thead", "tbody", "tfoot", "tr", "th", "td", "caption"}

var (
	richPolicy   = newRichPolicy()
	strictPolicy = bluemonday.StrictPolicy()
)

func newRichPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowAttrs("class").OnElements(tableElements...)
	p.AllowStyles("width", "text-align", "vertical-align", "color", "background-color").
		OnElements(tableElements...)
	p.AllowElements("u", "s", "sub", "sup", "mark")
	return p
}

// Sanitize strips anything unsafe from s and keeps ordinary formatting,
// links, images, lists and tables.
func Sanitize(s string) string {
	if s == "" {
		return ""
	}
	return richPolicy.Sanitize(s)
}

// SanitizeToHTML is Sanitize for direct use in templates.
func SanitizeToHTML(s string) template.HTML {
	return template.HTML(Sanitize(s))
}

// PlainText removes every tag from s, keeping only the text. The result is
// unescaped and meant for auto-escaping templates.
func PlainText(s string) string {
	if s == "" {
		return ""
	}
	return strings.TrimSpace(html.UnescapeString(strictPolicy.Sanitize(s)))
}

// IsPlainText reports whether s looks like it has no markup.
func IsPlainText(s string) bool {
	return !(strings.Contains(s, "<") && strings.Contains(s, ">"))
}

// PlainTextToHTML escapes s and turns line breaks into <br> inside a paragraph.
func PlainTextToHTML(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	escaped := html.EscapeString(s)
	return "<p>" + strings.ReplaceAll(escaped, "\n", "<br>") + "</p>"
}

// PrepareForDisplay renders s as HTML whether it was written as plain text
// or markup.
func PrepareForDisplay(s string) template.HTML {
	if s == "" {
		return ""
	}
	if IsPlainText(s) {
		return template.HTML(PlainTextToHTML(s))
	}
	return SanitizeToHTML(s)
}
