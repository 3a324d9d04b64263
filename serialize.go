package quizdown

import (
	"fmt"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"
)

// htmlSerializer writes a flat event sequence as HTML. Events that carry a
// goldmark node are rendered by goldmark's own node renderers, entered on
// the start event and exited on the matching end event.
type htmlSerializer struct {
	funcs map[ast.NodeKind]renderer.NodeRendererFunc
}

func newHTMLSerializer() *htmlSerializer {
	s := &htmlSerializer{funcs: make(map[ast.NodeKind]renderer.NodeRendererFunc)}
	for _, r := range []renderer.NodeRenderer{
		html.NewRenderer(html.WithUnsafe()),
		extension.NewStrikethroughHTMLRenderer(),
		extension.NewTableHTMLRenderer(),
		extension.NewTaskCheckBoxHTMLRenderer(),
	} {
		r.RegisterFuncs(s)
	}
	return s
}

// Register implements renderer.NodeRendererFuncRegisterer.
func (s *htmlSerializer) Register(kind ast.NodeKind, fn renderer.NodeRendererFunc) {
	s.funcs[kind] = fn
}

func (s *htmlSerializer) call(w util.BufWriter, source []byte, n ast.Node, entering bool) (ast.WalkStatus, error) {
	fn := s.funcs[n.Kind()]
	if fn == nil {
		return ast.WalkContinue, nil
	}
	return fn(w, source, n, entering)
}

// write expects highlighted events: code spans and code blocks have already
// been replaced by HTML events.
func (s *htmlSerializer) write(w util.BufWriter, source []byte, events []Event) error {
	for i := 0; i < len(events); i++ {
		ev := events[i]
		switch ev.Kind {
		case eventHTML:
			_, _ = w.WriteString(ev.Text)
		case eventCode:
			return fmt.Errorf("%w: unhighlighted code span", ErrInternal)
		case eventText, eventTaskListMarker, eventEnd:
			if ev.Node == nil {
				_, _ = w.Write(util.EscapeHTML([]byte(ev.Text)))
				continue
			}
			if _, err := s.call(w, source, ev.Node, ev.Kind != eventEnd); err != nil {
				return err
			}
		case eventStart:
			if ev.Tag == TagCodeBlock {
				return fmt.Errorf("%w: unhighlighted code block", ErrInternal)
			}
			if ev.Node == nil {
				continue
			}
			status, err := s.call(w, source, ev.Node, true)
			if err != nil {
				return err
			}
			if status != ast.WalkSkipChildren {
				continue
			}
			// The node rendered its own children; resume at its end.
			end := matchingEnd(events, i)
			if end < 0 {
				return fmt.Errorf("%w: unterminated %s", ErrInternal, ev.Node.Kind())
			}
			i = end
			if _, err := s.call(w, source, ev.Node, false); err != nil {
				return err
			}
		}
	}
	return nil
}

func matchingEnd(events []Event, start int) int {
	for j := start + 1; j < len(events); j++ {
		if events[j].Kind == eventEnd && events[j].Node == events[start].Node {
			return j
		}
	}
	return -1
}
