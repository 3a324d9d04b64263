package quizdown

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dogsQuiz = "## Who let the dogs out?\n\n- [ ] I did it.\n- [x] Who, who, who?\n"

func TestProcessSingleQuestion(t *testing.T) {
	questions, err := Process(dogsQuiz, DefaultConfig())
	require.NoError(t, err)
	require.Len(t, questions, 1)
	q := questions[0]
	assert.Equal(t, "<h2>Who let the dogs out?</h2>", q.Prompt)
	assert.False(t, q.Ordered)
	assert.Equal(t, []QOption{
		{Correct: false, Content: "I did it."},
		{Correct: true, Content: "Who, who, who?"},
	}, q.Options)
}

func TestProcessOrderedList(t *testing.T) {
	src := "## Who let the dogs out?\n\n1. [ ] I did it.\n2. [x] Who, who, who?\n"
	questions, err := Process(src, DefaultConfig())
	require.NoError(t, err)
	require.Len(t, questions, 1)
	assert.True(t, questions[0].Ordered)
}

func TestProcessReturnsQuestionsInOrder(t *testing.T) {
	var b strings.Builder
	names := []string{"alpha", "beta", "gamma", "delta"}
	for _, name := range names {
		b.WriteString("# " + name + "\n\n- [x] yes\n- [ ] no\n\n")
	}
	questions, err := Process(b.String(), DefaultConfig())
	require.NoError(t, err)
	require.Len(t, questions, len(names))
	for i, name := range names {
		assert.Equal(t, "<h1>"+name+"</h1>", questions[i].Prompt)
	}
}

func TestProcessHeadlessPrompt(t *testing.T) {
	questions, err := Process("Which?\n\n- [x] this\n", DefaultConfig())
	require.NoError(t, err)
	require.Len(t, questions, 1)
	assert.Equal(t, "<b><i></i></b><p>Which?</p>\n", questions[0].Prompt)
}

func TestProcessPromptIncludesBody(t *testing.T) {
	src := "### Output?\n\nWhat does this print?\n\n```go\nfmt.Println(1)\n```\n\n- [x] `1`\n- [ ] nothing\n"
	questions, err := Process(src, DefaultConfig())
	require.NoError(t, err)
	require.Len(t, questions, 1)
	q := questions[0]
	assert.True(t, strings.HasPrefix(q.Prompt, "<h3>Output?</h3><p>What does this print?</p>\n<pre"), q.Prompt)
	assert.Contains(t, q.Prompt, "Println")
	assert.True(t, strings.HasPrefix(q.Options[0].Content, "<code"), q.Options[0].Content)
	assert.Equal(t, "nothing", q.Options[1].Content)
}

func TestProcessNoneOfTheAbove(t *testing.T) {
	src := "## One\n\n- [x] a\n- [ ] b\n\n## Two\n\n- [ ] c\n- [ ] d\n"
	questions, err := Process(src, DefaultConfig(WithNoneOfTheAbove(true)))
	require.NoError(t, err)
	require.Len(t, questions, 2)

	require.Len(t, questions[0].Options, 3)
	assert.Equal(t, QOption{Correct: false, Content: NoneOfTheAbove}, questions[0].Options[2])
	require.Len(t, questions[1].Options, 3)
	assert.Equal(t, QOption{Correct: true, Content: NoneOfTheAbove}, questions[1].Options[2])
}

func TestProcessStripsFrontMatter(t *testing.T) {
	src := "---\nname: cs101/week1\n---\n\n" + dogsQuiz
	questions, err := Process(src, DefaultConfig())
	require.NoError(t, err)
	require.Len(t, questions, 1)
	assert.NotContains(t, questions[0].Prompt, "cs101")
}

func TestProcessNormalizesUnicode(t *testing.T) {
	// "e" followed by a combining acute accent composes to U+00E9.
	questions, err := Process("## Cafe\u0301?\n\n- [x] oui\n", DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, "<h2>Caf\u00e9?</h2>", questions[0].Prompt)
}

func TestProcessConfigErrorsComeFirst(t *testing.T) {
	_, err := Process("", DefaultConfig(WithTheme("no-such-theme")))
	require.ErrorIs(t, err, ErrMissingSyntaxTheme)

	_, err = Process("not even a question", DefaultConfig(WithDefaultLang("no-such-lang")))
	require.ErrorIs(t, err, ErrMissingSyntaxLang)
}

func TestProcessAbortsOnFirstError(t *testing.T) {
	questions, err := Process("## Ok\n\n- [x] a\n\n## Bad\n\nno list\n", DefaultConfig())
	require.ErrorIs(t, err, ErrNoOptionsFound)
	assert.Nil(t, questions)
}

func TestProcessRejectsBinary(t *testing.T) {
	_, err := Process("## Q\x00\n\n- [x] a\n", DefaultConfig())
	require.ErrorIs(t, err, ErrBinaryInput)
}

func TestProcessEmptyDocument(t *testing.T) {
	questions, err := Process("", DefaultConfig())
	require.NoError(t, err)
	assert.Empty(t, questions)
}
