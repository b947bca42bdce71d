package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHighlight(t *testing.T) {
	tests := []struct {
		text     string
		term     string
		expected string
	}{
		{"Budi & Sari", "", "Budi & Sari"},
		{"Budi & Sari", "budi", `<span class="highlight">Budi</span> & Sari`},
		{"Ana ana ANA", "ana", `<span class="highlight">Ana</span> <span class="highlight">ana</span> <span class="highlight">ANA</span>`},
		{"Budi", "x", "Budi"},
		{"a.b", ".", `a<span class="highlight">.</span>b`},
		{"axb", ".", "axb"},
		{"Cucu (1)", "(1", `Cucu <span class="highlight">(1</span>)`},
		{"price $5", "$5", `price <span class="highlight">$5</span>`},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Highlight(tt.text, tt.term), "Highlight(%q, %q)", tt.text, tt.term)
	}
}

func TestHighlightMetacharactersNeverPanic(t *testing.T) {
	for _, term := range []string{"(", ")", "[", "*", "+", "?", `\`, "^$", "{2,}", "|", "(?P<x>", "\xff"} {
		assert.NotPanics(t, func() {
			Highlight("Budi (II) [*] + ? \\ ^$ {2,} |", term)
			HighlightHTML("Budi", term)
		}, "term %q", term)
	}
}

func TestHighlightHTML(t *testing.T) {
	got := HighlightHTML("<Budi> & Sari", "budi")
	assert.Equal(t, `&lt;<span class="highlight">Budi</span>&gt; &amp; Sari`, string(got))

	got = HighlightHTML("<b>", "")
	assert.Equal(t, "&lt;b&gt;", string(got))
}

func TestHighlighterReuse(t *testing.T) {
	h := NewHighlighter("an")
	assert.Equal(t, `<span class="highlight">An</span>i`, h.String("Ani"))
	assert.Equal(t, `B<span class="highlight">an</span>yu`, h.String("Banyu"))

	var nilHighlighter *Highlighter
	assert.Equal(t, "Ani", nilHighlighter.String("Ani"))
}
