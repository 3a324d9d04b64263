package quizdown

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// markdown is the tokenizer grammar: CommonMark plus strikethrough, tables
// and task lists. Autolinks and the rest of GFM stay disabled.
var markdown = goldmark.New(
	goldmark.WithExtensions(
		extension.Strikethrough,
		extension.Table,
		extension.TaskList,
	),
)

// Tokenize parses source and flattens the syntax tree into events. The
// returned events reference source; callers must keep it unchanged.
func Tokenize(source []byte) ([]Event, error) {
	doc := markdown.Parser().Parse(text.NewReader(source))
	t := tokenizer{source: source}
	if err := ast.Walk(doc, t.walk); err != nil {
		return nil, err
	}
	tracer().Debugf("tokenized %d bytes into %d events", len(source), len(t.events))
	return t.events, nil
}

type tokenizer struct {
	source []byte
	events []Event
}

func (t *tokenizer) emit(ev Event) {
	t.events = append(t.events, ev)
}

func (t *tokenizer) tag(entering bool, ev Event) {
	if entering {
		ev.Kind = eventStart
	} else {
		ev.Kind = eventEnd
	}
	t.emit(ev)
}

func (t *tokenizer) walk(n ast.Node, entering bool) (ast.WalkStatus, error) {
	switch node := n.(type) {
	case *ast.Document:
	case *ast.Heading:
		t.tag(entering, Event{Tag: TagHeading, Level: node.Level, Node: n})
	case *ast.List:
		t.tag(entering, Event{Tag: TagList, Ordered: node.IsOrdered(), Node: n})
	case *ast.ListItem:
		t.tag(entering, Event{Tag: TagItem, Node: n})
		// The marker follows the item start directly, whether the item
		// is tight (text block) or loose (paragraph).
		if box := taskCheckBox(node); entering && box != nil {
			t.emit(Event{Kind: eventTaskListMarker, Checked: box.IsChecked, Node: box})
		}
	case *east.TaskCheckBox:
		// emitted with its list item
	case *ast.FencedCodeBlock:
		if entering {
			lang := string(node.Language(t.source))
			t.codeBlock(Event{Tag: TagCodeBlock, Fenced: true, Lang: lang, Node: n}, node.Lines())
		}
		return ast.WalkSkipChildren, nil
	case *ast.CodeBlock:
		if entering {
			t.codeBlock(Event{Tag: TagCodeBlock, Node: n}, node.Lines())
		}
		return ast.WalkSkipChildren, nil
	case *ast.CodeSpan:
		if entering {
			t.emit(Event{Kind: eventCode, Text: codeSpanText(node, t.source), Node: n})
		}
		return ast.WalkSkipChildren, nil
	case *ast.Text:
		if entering {
			t.emit(Event{Kind: eventText, Text: string(node.Segment.Value(t.source)), Node: n})
		}
	case *ast.String:
		if entering {
			t.emit(Event{Kind: eventText, Text: string(node.Value), Node: n})
		}
	case *ast.RawHTML:
		if entering {
			t.emit(Event{Kind: eventHTML, Text: segmentsText(node.Segments, t.source)})
		}
		return ast.WalkSkipChildren, nil
	case *ast.HTMLBlock:
		if entering {
			raw := segmentsText(node.Lines(), t.source)
			if node.HasClosure() {
				raw += string(node.ClosureLine.Value(t.source))
			}
			t.emit(Event{Kind: eventHTML, Text: raw})
		}
		return ast.WalkSkipChildren, nil
	default:
		t.tag(entering, Event{Tag: TagOther, Node: n})
	}
	return ast.WalkContinue, nil
}

// codeBlock emits a code block as start, one text event per line, end.
func (t *tokenizer) codeBlock(start Event, lines *text.Segments) {
	start.Kind = eventStart
	t.emit(start)
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		t.emit(Event{Kind: eventText, Text: string(seg.Value(t.source))})
	}
	end := start
	end.Kind = eventEnd
	t.emit(end)
}

func taskCheckBox(item *ast.ListItem) *east.TaskCheckBox {
	block := item.FirstChild()
	if block == nil {
		return nil
	}
	box, _ := block.FirstChild().(*east.TaskCheckBox)
	return box
}

func codeSpanText(n *ast.CodeSpan, source []byte) string {
	var b strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch c := c.(type) {
		case *ast.Text:
			v := c.Segment.Value(source)
			if len(v) > 0 && v[len(v)-1] == '\n' {
				b.Write(v[:len(v)-1])
				b.WriteByte(' ')
				continue
			}
			b.Write(v)
		case *ast.String:
			b.Write(c.Value)
		}
	}
	return b.String()
}

func segmentsText(segs *text.Segments, source []byte) string {
	var b strings.Builder
	for i := 0; i < segs.Len(); i++ {
		seg := segs.At(i)
		b.Write(seg.Value(source))
	}
	return b.String()
}
