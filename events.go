package quizdown

import "github.com/yuin/goldmark/ast"

// Event is one markdown token in document order.
type Event struct {
	Kind eventKind
	Tag  Tag

	// Level is the heading level of a TagHeading start or end.
	Level int
	// Ordered reports a numbered list on TagList events.
	Ordered bool
	// Checked is the state of an EventTaskListMarker.
	Checked bool
	// Fenced and Lang describe a TagCodeBlock; Lang is empty for
	// indented blocks and unlabeled fences.
	Fenced bool
	Lang   string

	// Text holds the literal of text, code and html events.
	Text string

	// Node is the goldmark node the event was produced from. Events
	// synthesized by the highlighter have no node.
	Node ast.Node
}

type eventKind uint8

// EventKind is the exported alias of eventKind.
type EventKind = eventKind

const (
	eventStart eventKind = iota
	eventEnd
	eventText
	eventCode
	eventHTML
	eventTaskListMarker
)

const (
	// EventStart opens a tagged construct.
	EventStart eventKind = eventStart
	// EventEnd closes the construct opened by the matching EventStart.
	EventEnd eventKind = eventEnd
	// EventText is a run of text.
	EventText eventKind = eventText
	// EventCode is an inline code span.
	EventCode eventKind = eventCode
	// EventHTML is raw markup written through unchanged.
	EventHTML eventKind = eventHTML
	// EventTaskListMarker is the checkbox of a task list item.
	EventTaskListMarker eventKind = eventTaskListMarker
)

// Tag identifies the construct of a start or end event.
type Tag uint8

const (
	// TagOther covers every construct the parser does not inspect.
	TagOther Tag = iota
	TagHeading
	TagList
	TagItem
	TagCodeBlock
)

func (e Event) isStart(tag Tag) bool { return e.Kind == eventStart && e.Tag == tag }
func (e Event) isEnd(tag Tag) bool   { return e.Kind == eventEnd && e.Tag == tag }

func (k eventKind) String() string {
	switch k {
	case eventStart:
		return "start"
	case eventEnd:
		return "end"
	case eventText:
		return "text"
	case eventCode:
		return "code"
	case eventHTML:
		return "html"
	case eventTaskListMarker:
		return "task-marker"
	}
	return "unknown"
}

func (t Tag) String() string {
	switch t {
	case TagHeading:
		return "heading"
	case TagList:
		return "list"
	case TagItem:
		return "item"
	case TagCodeBlock:
		return "code-block"
	}
	return "other"
}
