package quizdown

import (
	"errors"
	"fmt"

	"github.com/dustin/go-humanize"
)

// Document format errors.
var (
	// ErrUnexpectedEOF reports a heading that never closes.
	ErrUnexpectedEOF = errors.New("unexpected end of input")
	// ErrNestedTaskList reports a task marker inside a nested list.
	ErrNestedTaskList = errors.New("nested list options are not supported")
	// ErrTaskListWithoutList reports a task marker outside any list. The
	// tokenizer never produces one; seeing it is a defect.
	ErrTaskListWithoutList = errors.New("internal: task list marker without a list")
	// ErrTooManyTaskLists reports a second list with task markers.
	ErrTooManyTaskLists = errors.New("found multiple lists with options; not supported")
	// ErrNoOptionsFound reports a question without a task list.
	ErrNoOptionsFound = errors.New("found no options in question")
	// ErrContentIgnored reports content between the options and the next heading.
	ErrContentIgnored = errors.New("content ignored after options")
	// ErrOptionWithoutMarker reports an item of the options list that has
	// no checkbox.
	ErrOptionWithoutMarker = errors.New("option without a task list marker")
	// ErrInternal reports a violated parser invariant.
	ErrInternal = errors.New("internal assertion error")
)

// Configuration errors, raised before any parsing starts.
var (
	ErrMissingSyntaxTheme = errors.New("unknown syntax highlighting theme")
	ErrMissingSyntaxLang  = errors.New("unknown syntax highlighting language")
)

// Rendering errors.
var (
	// ErrMoodleNoCorrectAnswer reports a question Moodle cannot grade.
	ErrMoodleNoCorrectAnswer = errors.New("moodle requires at least one correct answer")
	// ErrUnknownFormat reports an output format outside the known set.
	ErrUnknownFormat = errors.New("unknown output format")
)

// ParseError locates a document format error.
type ParseError struct {
	Err error
	// Chunk is the 1-based position of the question in the document.
	Chunk int
	// Level is the heading level, 0 for a headless question.
	Level int
	// Heading is the plain text of the heading, if any.
	Heading string
	// Source names the document, when the caller knows it.
	Source string
}

func (e *ParseError) Error() string {
	where := humanize.Ordinal(e.Chunk) + " question"
	switch {
	case e.Level > 0 && e.Heading != "":
		where += fmt.Sprintf(" (h%d %q)", e.Level, e.Heading)
	case e.Level > 0:
		where += fmt.Sprintf(" (h%d)", e.Level)
	default:
		where += " (no heading)"
	}
	if e.Source != "" {
		where = e.Source + ": " + where
	}
	return where + ": " + e.Err.Error()
}

func (e *ParseError) Unwrap() error { return e.Err }

// RenderError locates an error raised while rendering one question.
type RenderError struct {
	Err    error
	Format OutputFormat
	// Question is the 0-based index of the offending question.
	Question int
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("%s: %s question: %v", e.Format, humanize.Ordinal(e.Question+1), e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }
