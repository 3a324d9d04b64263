package quizdown

import (
	"fmt"
	"io"
	"strings"

	"github.com/emirpasic/gods/stacks/arraystack"
)

// HeadingChunk is one question's worth of events: an optional heading,
// the body before the options and the options task list.
type HeadingChunk struct {
	// Level is the heading level, 0 for a headless chunk.
	Level    int
	Header   []Event
	Contents []Event
	Options  TaskList

	source []byte
}

// Headless reports whether the chunk has no heading.
func (c *HeadingChunk) Headless() bool { return c.Level == 0 }

// TaskList is the list of answer options of a chunk.
type TaskList struct {
	Ordered bool
	Options []TaskListOption
}

// TaskListOption is one answer option.
type TaskListOption struct {
	Correct  bool
	Contents []Event
}

// chunkParser scans the event buffer with a forward cursor that may be
// rewound by exactly one event.
type chunkParser struct {
	source []byte
	events []Event
	pos    int
	// lists holds the buffer positions of the currently open list starts.
	lists *arraystack.Stack
	chunk int
}

func newChunkParser(source []byte, events []Event) *chunkParser {
	return &chunkParser{
		source: source,
		events: events,
		lists:  arraystack.New(),
	}
}

func (p *chunkParser) next() (Event, bool) {
	if p.pos >= len(p.events) {
		return Event{}, false
	}
	ev := p.events[p.pos]
	p.pos++
	return ev, true
}

func (p *chunkParser) peek() (Event, bool) {
	if p.pos >= len(p.events) {
		return Event{}, false
	}
	return p.events[p.pos], true
}

func (p *chunkParser) unread() {
	p.pos--
}

// Next returns the next chunk, or io.EOF once the input is exhausted.
func (p *chunkParser) Next() (*HeadingChunk, error) {
	first, ok := p.next()
	if !ok {
		return nil, io.EOF
	}
	p.chunk++
	chunk := &HeadingChunk{source: p.source}

	if first.isStart(TagHeading) {
		chunk.Level = first.Level
		for {
			ev, ok := p.next()
			if !ok {
				return nil, p.fail(chunk, fmt.Errorf("%w while looking for end of heading h%d", ErrUnexpectedEOF, chunk.Level))
			}
			if ev.isEnd(TagHeading) {
				break
			}
			chunk.Header = append(chunk.Header, ev)
		}
	} else {
		p.unread()
	}

	// Body scan: stop before the next heading or at the end of input.
	start := p.pos
	taskStart, taskEnd := -1, -1
	for {
		ev, ok := p.next()
		if !ok {
			break
		}
		if ev.isStart(TagHeading) {
			p.unread()
			break
		}
		switch {
		case ev.isStart(TagList):
			p.lists.Push(p.pos - 1)
		case ev.isEnd(TagList):
			closed, ok := p.lists.Pop()
			if !ok {
				return nil, p.fail(chunk, fmt.Errorf("%w: list end without start", ErrInternal))
			}
			if closed.(int) == taskStart {
				taskEnd = p.pos
			}
		case ev.Kind == eventTaskListMarker:
			switch p.lists.Size() {
			case 0:
				return nil, p.fail(chunk, ErrTaskListWithoutList)
			case 1:
			default:
				return nil, p.fail(chunk, ErrNestedTaskList)
			}
			open, _ := p.lists.Peek()
			if taskStart >= 0 && taskStart != open.(int) {
				return nil, p.fail(chunk, ErrTooManyTaskLists)
			}
			taskStart = open.(int)
		}
	}
	end := p.pos

	if taskStart < 0 || taskEnd < 0 {
		return nil, p.fail(chunk, ErrNoOptionsFound)
	}
	if taskEnd != end {
		return nil, p.fail(chunk, ErrContentIgnored)
	}
	chunk.Contents = append([]Event(nil), p.events[start:taskStart]...)

	p.pos = taskStart
	options, err := p.parseTaskList()
	if err != nil {
		return nil, p.fail(chunk, err)
	}
	if p.pos != end {
		return nil, p.fail(chunk, fmt.Errorf("%w: options list ended at %d, chunk at %d", ErrInternal, p.pos, end))
	}
	chunk.Options = options
	tracer().Debugf("chunk %d: h%d, %d body events, %d options", p.chunk, chunk.Level, len(chunk.Contents), len(options.Options))
	return chunk, nil
}

func (p *chunkParser) parseTaskList() (TaskList, error) {
	first, ok := p.next()
	if !ok || !first.isStart(TagList) {
		return TaskList{}, fmt.Errorf("%w: options do not start with a list", ErrInternal)
	}
	list := TaskList{Ordered: first.Ordered}
	for {
		ev, ok := p.peek()
		switch {
		case !ok:
			return list, nil
		case ev.isEnd(TagList):
			p.next()
			return list, nil
		case ev.isStart(TagItem):
			opt, err := p.parseTaskListOption()
			if err != nil {
				return TaskList{}, err
			}
			list.Options = append(list.Options, opt)
		default:
			return TaskList{}, fmt.Errorf("%w: %s %s event in options list", ErrInternal, ev.Kind, ev.Tag)
		}
	}
}

func (p *chunkParser) parseTaskListOption() (TaskListOption, error) {
	if ev, ok := p.next(); !ok || !ev.isStart(TagItem) {
		return TaskListOption{}, fmt.Errorf("%w: expected list item", ErrInternal)
	}
	marker, ok := p.next()
	if !ok || marker.Kind != eventTaskListMarker {
		return TaskListOption{}, ErrOptionWithoutMarker
	}
	opt := TaskListOption{Correct: marker.Checked}
	depth := 0
	for {
		ev, ok := p.next()
		if !ok {
			return TaskListOption{}, fmt.Errorf("%w: unterminated option", ErrInternal)
		}
		switch {
		case ev.isStart(TagItem):
			depth++
		case ev.isEnd(TagItem):
			if depth == 0 {
				return opt, nil
			}
			depth--
		}
		opt.Contents = append(opt.Contents, ev)
	}
}

func (p *chunkParser) fail(chunk *HeadingChunk, err error) error {
	return &ParseError{
		Err:     err,
		Chunk:   p.chunk,
		Level:   chunk.Level,
		Heading: plainText(chunk.Header),
	}
}

// plainText concatenates the text and code literals of events.
func plainText(events []Event) string {
	var b strings.Builder
	for _, ev := range events {
		if ev.Kind == eventText || ev.Kind == eventCode {
			b.WriteString(ev.Text)
		}
	}
	return strings.TrimSpace(b.String())
}
