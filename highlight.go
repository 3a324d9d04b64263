package quizdown

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
)

// Highlighter renders event sequences to HTML, replacing code blocks and
// inline code with syntax-highlighted markup. A Highlighter is immutable
// once created and may be shared between goroutines.
type Highlighter struct {
	theme       string
	style       *chroma.Style
	defaultLang string

	block  *chromahtml.Formatter
	inline *chromahtml.Formatter
	html   *htmlSerializer
}

// NewHighlighter resolves the theme and the default language eagerly.
// An unknown theme fails with ErrMissingSyntaxTheme and an unknown default
// language with ErrMissingSyntaxLang.
func NewHighlighter(opts SyntaxOptions) (*Highlighter, error) {
	style, ok := ThemeByName(opts.Theme)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMissingSyntaxTheme, opts.Theme)
	}
	lang := strings.TrimSpace(opts.DefaultLang)
	if lang == "" {
		lang = DefaultLang
	}
	if lexers.Get(lang) == nil {
		return nil, fmt.Errorf("%w: %q", ErrMissingSyntaxLang, lang)
	}
	return &Highlighter{
		theme:       style.Name,
		style:       style,
		defaultLang: lang,
		block:       chromahtml.New(chromahtml.TabWidth(4)),
		inline:      chromahtml.New(chromahtml.InlineCode(true)),
		html:        newHTMLSerializer(),
	}, nil
}

// Theme returns the name of the resolved theme.
func (h *Highlighter) Theme() string { return h.theme }

// Render writes events as HTML to w. Code block bodies are highlighted as
// one unit in the fence language, or the default language for indented and
// unlabeled blocks; inline code uses the default language. A language
// chroma does not know is highlighted as plain text.
func (h *Highlighter) Render(w io.Writer, source []byte, events []Event) error {
	out := make([]Event, 0, len(events))
	for i := 0; i < len(events); i++ {
		ev := events[i]
		switch {
		case ev.isStart(TagCodeBlock):
			lang := ev.Lang
			if lang == "" {
				lang = h.defaultLang
			}
			var code strings.Builder
			for i++; i < len(events) && !events[i].isEnd(TagCodeBlock); i++ {
				if events[i].Kind != eventText {
					return fmt.Errorf("%w: %s event inside code block", ErrInternal, events[i].Kind)
				}
				code.WriteString(events[i].Text)
			}
			markup, err := h.highlightBlock(lang, code.String())
			if err != nil {
				return err
			}
			out = append(out, Event{Kind: eventHTML, Text: markup})
		case ev.Kind == eventCode:
			markup, err := h.highlightInline(ev.Text)
			if err != nil {
				return err
			}
			out = append(out, Event{Kind: eventHTML, Text: markup})
		default:
			out = append(out, ev)
		}
	}
	bw := bufio.NewWriter(w)
	if err := h.html.write(bw, source, out); err != nil {
		return err
	}
	return bw.Flush()
}

// RenderString is Render into a string.
func (h *Highlighter) RenderString(source []byte, events []Event) (string, error) {
	var b strings.Builder
	if err := h.Render(&b, source, events); err != nil {
		return "", err
	}
	return b.String(), nil
}

func (h *Highlighter) lexer(lang string) chroma.Lexer {
	lexer := lexers.Get(lang)
	if lexer == nil {
		tracer().Debugf("no lexer for %q, highlighting as plain text", lang)
		lexer = lexers.Fallback
	}
	return chroma.Coalesce(lexer)
}

func (h *Highlighter) highlightBlock(lang, code string) (string, error) {
	it, err := h.lexer(lang).Tokenise(nil, code)
	if err != nil {
		return "", fmt.Errorf("highlight %s block: %w", lang, err)
	}
	var b strings.Builder
	if err := h.block.Format(&b, h.style, it); err != nil {
		return "", fmt.Errorf("highlight %s block: %w", lang, err)
	}
	return b.String(), nil
}

func (h *Highlighter) highlightInline(code string) (string, error) {
	it, err := h.lexer(h.defaultLang).Tokenise(nil, code)
	if err != nil {
		return "", fmt.Errorf("highlight inline code: %w", err)
	}
	// Lexers terminate their input with a newline; a span must not.
	tokens := it.Tokens()
	for len(tokens) > 0 {
		last := &tokens[len(tokens)-1]
		last.Value = strings.TrimSuffix(last.Value, "\n")
		if last.Value != "" {
			break
		}
		tokens = tokens[:len(tokens)-1]
	}
	var b strings.Builder
	if err := h.inline.Format(&b, h.style, chroma.Literator(tokens...)); err != nil {
		return "", fmt.Errorf("highlight inline code: %w", err)
	}
	return b.String(), nil
}
