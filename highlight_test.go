package quizdown

import (
	"bufio"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderMarkdown(t *testing.T, h *Highlighter, src string) string {
	t.Helper()
	events, err := Tokenize([]byte(src))
	require.NoError(t, err)
	out, err := h.RenderString([]byte(src), events)
	require.NoError(t, err)
	return out
}

func newTestHighlighter(t *testing.T, opts SyntaxOptions) *Highlighter {
	t.Helper()
	h, err := NewHighlighter(opts)
	require.NoError(t, err)
	return h
}

func TestHighlighterDefaults(t *testing.T) {
	h := newTestHighlighter(t, SyntaxOptions{})
	assert.Equal(t, DefaultTheme, h.Theme())
	assert.Equal(t, DefaultLang, h.defaultLang)
}

func TestHighlighterRejectsUnknownDefaultLang(t *testing.T) {
	_, err := NewHighlighter(SyntaxOptions{Theme: DefaultTheme, DefaultLang: "no-such-lang"})
	require.ErrorIs(t, err, ErrMissingSyntaxLang)
}

func TestHighlighterFencedBlock(t *testing.T) {
	h := newTestHighlighter(t, SyntaxOptions{Theme: "monokai"})
	out := renderMarkdown(t, h, "```go\nfunc main() { a := 1 < 2 }\n```\n")
	assert.True(t, strings.HasPrefix(out, "<pre"), out)
	assert.Contains(t, out, ">func</span>")
	assert.Contains(t, out, "&lt;")
	assert.Contains(t, out, "style=")
	assert.NotContains(t, out, "language-go")
}

func TestHighlighterUnknownFenceLanguageFallsBack(t *testing.T) {
	h := newTestHighlighter(t, SyntaxOptions{})
	out := renderMarkdown(t, h, "```klingon\nqaStaH nuq?\n```\n")
	assert.True(t, strings.HasPrefix(out, "<pre"), out)
	assert.Contains(t, out, "qaStaH nuq?")
}

func TestHighlighterIndentedBlockUsesDefaultLang(t *testing.T) {
	h := newTestHighlighter(t, SyntaxOptions{DefaultLang: "python"})
	out := renderMarkdown(t, h, "Intro.\n\n    def f():\n        return 1\n")
	assert.Contains(t, out, "<p>Intro.</p>")
	assert.Contains(t, out, ">def</span>")
}

func TestHighlighterInlineCode(t *testing.T) {
	h := newTestHighlighter(t, SyntaxOptions{})
	out := renderMarkdown(t, h, "Use `x <- y` here.\n")
	assert.True(t, strings.HasPrefix(out, "<p>Use <code"), out)
	assert.True(t, strings.HasSuffix(out, " here.</p>\n"), out)
	assert.Contains(t, out, "x &lt;- y")
	assert.NotContains(t, out, "<pre")
	assert.NotContains(t, out, "\n</code>")
}

func TestHighlighterPassesMarkdownThrough(t *testing.T) {
	h := newTestHighlighter(t, SyntaxOptions{})
	out := renderMarkdown(t, h, "Some *emphasis*, ~~gone~~ and a [link](https://example.com).\n")
	assert.Equal(t, "<p>Some <em>emphasis</em>, <del>gone</del> and a <a href=\"https://example.com\">link</a>.</p>\n", out)
}

func TestHighlighterPassesRawHTML(t *testing.T) {
	h := newTestHighlighter(t, SyntaxOptions{})
	out := renderMarkdown(t, h, "Press <kbd>Ctrl</kbd>.\n")
	assert.Equal(t, "<p>Press <kbd>Ctrl</kbd>.</p>\n", out)
}

func TestHighlighterTable(t *testing.T) {
	h := newTestHighlighter(t, SyntaxOptions{})
	out := renderMarkdown(t, h, "| a | b |\n|---|---|\n| 1 | 2 |\n")
	assert.Contains(t, out, "<table>")
	assert.Contains(t, out, "<th>a</th>")
	assert.Contains(t, out, "<td>2</td>")
}

func TestSerializerRequiresHighlightedCode(t *testing.T) {
	for _, src := range []string{"Use `x` here.\n", "```go\nx := 1\n```\n"} {
		events, err := Tokenize([]byte(src))
		require.NoError(t, err)
		var b strings.Builder
		err = newHTMLSerializer().write(bufio.NewWriter(&b), []byte(src), events)
		require.ErrorIs(t, err, ErrInternal, src)
	}
}
