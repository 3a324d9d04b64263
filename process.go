package quizdown

import (
	"errors"
	"io"

	"golang.org/x/text/unicode/norm"
)

// Process parses a quizdown document into questions.
//
// The highlighting configuration is resolved before the document is looked
// at, so a bad theme or default language is reported even for empty input.
// A leading front matter block is stripped; its settings are not applied
// here, see SplitFrontMatter and FrontMatter.Apply.
func Process(text string, cfg Config) ([]Question, error) {
	h, err := NewHighlighter(cfg.Syntax)
	if err != nil {
		return nil, err
	}
	if err := ValidateInput([]byte(text)); err != nil {
		return nil, err
	}
	_, body, err := SplitFrontMatter([]byte(text))
	if err != nil {
		return nil, err
	}
	source := norm.NFC.Bytes(body)

	events, err := Tokenize(source)
	if err != nil {
		return nil, err
	}
	parser := newChunkParser(source, events)
	var questions []Question
	for {
		chunk, err := parser.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		q, err := chunk.finish(h)
		if err != nil {
			return nil, err
		}
		if cfg.InsertNoneOfTheAbove {
			q = q.withNoneOfTheAbove()
		}
		questions = append(questions, q)
	}
	tracer().Infof("processed %d questions (theme %s)", len(questions), h.Theme())
	return questions, nil
}
