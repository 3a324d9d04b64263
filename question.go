package quizdown

import (
	"strconv"
	"strings"
)

// NoneOfTheAbove is the content of the option appended when
// Config.InsertNoneOfTheAbove is set.
const NoneOfTheAbove = "None of the above."

// Question is a finished question with rendered HTML.
type Question struct {
	Prompt  string    `json:"prompt"`
	Options []QOption `json:"options"`
	// Ordered reports a numbered options list; its order is meaningful.
	Ordered bool `json:"ordered"`
}

// QOption is a finished answer option.
type QOption struct {
	Correct bool   `json:"correct"`
	Content string `json:"content"`
}

// CorrectCount returns the number of correct options.
func (q Question) CorrectCount() int {
	n := 0
	for _, opt := range q.Options {
		if opt.Correct {
			n++
		}
	}
	return n
}

// finish renders the chunk. The prompt is the heading, wrapped in its
// heading tag or in bold italics when headless, followed by the body.
func (c *HeadingChunk) finish(h *Highlighter) (Question, error) {
	var prompt strings.Builder
	openTag, closeTag := "<b><i>", "</i></b>"
	if !c.Headless() {
		level := strconv.Itoa(c.Level)
		openTag, closeTag = "<h"+level+">", "</h"+level+">"
	}
	prompt.WriteString(openTag)
	if err := h.Render(&prompt, c.source, c.Header); err != nil {
		return Question{}, err
	}
	prompt.WriteString(closeTag)
	if err := h.Render(&prompt, c.source, c.Contents); err != nil {
		return Question{}, err
	}

	options := make([]QOption, 0, len(c.Options.Options))
	for _, opt := range c.Options.Options {
		content, err := h.RenderString(c.source, opt.Contents)
		if err != nil {
			return Question{}, err
		}
		options = append(options, QOption{Correct: opt.Correct, Content: content})
	}
	return Question{
		Prompt:  prompt.String(),
		Options: options,
		Ordered: c.Options.Ordered,
	}, nil
}

// withNoneOfTheAbove appends the catch-all option, correct exactly when no
// other option is.
func (q Question) withNoneOfTheAbove() Question {
	options := make([]QOption, len(q.Options), len(q.Options)+1)
	copy(options, q.Options)
	q.Options = append(options, QOption{
		Correct: q.CorrectCount() == 0,
		Content: NoneOfTheAbove,
	})
	return q
}
