package search

import (
	"html"
	"html/template"
	"regexp"
	"strings"
)

const (
	highlightOpen  = `<span class="highlight">`
	highlightClose = `</span>`
)

// Highlighter wraps every occurrence of one term in highlight markup.
// The term is matched literally and case-insensitively.
type Highlighter struct {
	re *regexp.Regexp
}

// NewHighlighter compiles a highlighter for term.
// An empty term yields a highlighter that marks nothing.
func NewHighlighter(term string) *Highlighter {
	if term == "" {
		return &Highlighter{}
	}
	term = strings.ToValidUTF8(term, "\uFFFD")
	re, err := regexp.Compile("(?i)" + regexp.QuoteMeta(term))
	if err != nil {
		return &Highlighter{}
	}
	return &Highlighter{re: re}
}

// String returns text with matches wrapped. text is not escaped.
func (h *Highlighter) String(text string) string {
	return h.mark(text, func(s string) string { return s })
}

// HTML returns text escaped for HTML with matches wrapped.
func (h *Highlighter) HTML(text string) template.HTML {
	return template.HTML(h.mark(text, html.EscapeString))
}

func (h *Highlighter) mark(text string, escape func(string) string) string {
	if h == nil || h.re == nil {
		return escape(text)
	}

	locs := h.re.FindAllStringIndex(text, -1)
	if len(locs) == 0 {
		return escape(text)
	}

	var b strings.Builder
	last := 0
	for _, loc := range locs {
		b.WriteString(escape(text[last:loc[0]]))
		b.WriteString(highlightOpen)
		b.WriteString(escape(text[loc[0]:loc[1]]))
		b.WriteString(highlightClose)
		last = loc[1]
	}
	b.WriteString(escape(text[last:]))
	return b.String()
}

// Highlight wraps every case-insensitive occurrence of term in text.
// An empty term returns text unchanged.
func Highlight(text, term string) string {
	return NewHighlighter(term).String(text)
}

// HighlightHTML is Highlight for untrusted text rendered into HTML.
func HighlightHTML(text, term string) template.HTML {
	return NewHighlighter(term).HTML(text)
}
