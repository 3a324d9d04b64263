package quizdown

import (
	"encoding/xml"
	"fmt"
	"strconv"
)

const (
	moodleCorrectFeedback   = "Correct!"
	moodleIncorrectFeedback = "Sorry, that's not correct!"
	moodleIncorrectFraction = "-100"
)

type moodleQuiz struct {
	XMLName   xml.Name         `xml:"quiz"`
	Questions []moodleQuestion `xml:"question"`
}

type moodleText struct {
	Text string `xml:"text"`
}

type moodleHTMLText struct {
	Format string `xml:"format,attr"`
	Text   string `xml:"text"`
}

// moodleQuestion covers both the category pseudo-question and multichoice
// questions; the element order is the one Moodle's importer expects.
type moodleQuestion struct {
	Type            string          `xml:"type,attr"`
	Category        *moodleText     `xml:"category,omitempty"`
	Name            *moodleText     `xml:"name,omitempty"`
	QuestionText    *moodleHTMLText `xml:"questiontext,omitempty"`
	DefaultGrade    string          `xml:"defaultgrade,omitempty"`
	Answers         []moodleAnswer  `xml:"answer"`
	ShuffleAnswers  string          `xml:"shuffleanswers,omitempty"`
	Single          string          `xml:"single,omitempty"`
	AnswerNumbering string          `xml:"answernumbering,omitempty"`
}

type moodleAnswer struct {
	Fraction string     `xml:"fraction,attr"`
	Format   string     `xml:"format,attr"`
	Text     string     `xml:"text"`
	Feedback moodleText `xml:"feedback"`
}

func renderMoodle(name string, questions []Question) (string, error) {
	quiz := moodleQuiz{
		Questions: make([]moodleQuestion, 0, len(questions)+1),
	}
	quiz.Questions = append(quiz.Questions, moodleQuestion{
		Type:     "category",
		Category: &moodleText{Text: name},
	})
	for i, q := range questions {
		mq, err := moodleMultichoice(fmt.Sprintf("%s/%d", name, i), q)
		if err != nil {
			return "", &RenderError{Err: err, Format: FormatMoodleXML, Question: i}
		}
		quiz.Questions = append(quiz.Questions, mq)
	}
	out, err := xml.Marshal(quiz)
	if err != nil {
		return "", fmt.Errorf("%s: %w", FormatMoodleXML, err)
	}
	return xml.Header + string(out), nil
}

func moodleMultichoice(name string, q Question) (moodleQuestion, error) {
	if len(q.Options) == 0 {
		return moodleQuestion{}, ErrNoOptionsFound
	}
	correct := q.CorrectCount()
	if correct == 0 {
		return moodleQuestion{}, ErrMoodleNoCorrectAnswer
	}
	weight := strconv.FormatFloat(100/float64(correct), 'f', 5, 64)

	answers := make([]moodleAnswer, 0, len(q.Options))
	for _, opt := range q.Options {
		a := moodleAnswer{
			Fraction: moodleIncorrectFraction,
			Format:   "html",
			Text:     opt.Content,
			Feedback: moodleText{Text: moodleIncorrectFeedback},
		}
		if opt.Correct {
			a.Fraction = weight
			a.Feedback.Text = moodleCorrectFeedback
		}
		answers = append(answers, a)
	}
	shuffle := "1"
	if q.Ordered {
		shuffle = "0"
	}
	return moodleQuestion{
		Type:            "multichoice",
		Name:            &moodleText{Text: name},
		QuestionText:    &moodleHTMLText{Format: "html", Text: q.Prompt},
		DefaultGrade:    "1.0",
		Answers:         answers,
		ShuffleAnswers:  shuffle,
		Single:          "false",
		AnswerNumbering: "abc",
	}, nil
}
