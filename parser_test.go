package quizdown

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseChunks(t *testing.T, src string) ([]*HeadingChunk, error) {
	t.Helper()
	events, err := Tokenize([]byte(src))
	require.NoError(t, err)
	p := newChunkParser([]byte(src), events)
	var chunks []*HeadingChunk
	for {
		chunk, err := p.Next()
		if errors.Is(err, io.EOF) {
			return chunks, nil
		}
		if err != nil {
			return chunks, err
		}
		chunks = append(chunks, chunk)
	}
}

func TestParserChunksInDocumentOrder(t *testing.T) {
	src := `# First

- [x] a
- [ ] b

## Second

Some body text.

1. [ ] c
2. [x] d

### Third

- [x] e
`
	chunks, err := parseChunks(t, src)
	require.NoError(t, err)
	require.Len(t, chunks, 3)

	assert.Equal(t, []int{1, 2, 3}, []int{chunks[0].Level, chunks[1].Level, chunks[2].Level})
	assert.Equal(t, "First", plainText(chunks[0].Header))
	assert.Equal(t, "Second", plainText(chunks[1].Header))
	assert.Empty(t, chunks[0].Contents)
	assert.Equal(t, "Some body text.", plainText(chunks[1].Contents))

	assert.False(t, chunks[0].Options.Ordered)
	assert.True(t, chunks[1].Options.Ordered)
	require.Len(t, chunks[1].Options.Options, 2)
	assert.False(t, chunks[1].Options.Options[0].Correct)
	assert.True(t, chunks[1].Options.Options[1].Correct)
	assert.Equal(t, "d", plainText(chunks[1].Options.Options[1].Contents))
}

func TestParserHeadlessChunk(t *testing.T) {
	chunks, err := parseChunks(t, "Pick one.\n\n- [ ] x\n- [x] y\n\n## Next\n\n- [x] z\n")
	require.NoError(t, err)
	require.Len(t, chunks, 2)
	assert.True(t, chunks[0].Headless())
	assert.Empty(t, chunks[0].Header)
	assert.Equal(t, "Pick one.", plainText(chunks[0].Contents))
	assert.False(t, chunks[1].Headless())
}

func TestParserNestedListInsideOption(t *testing.T) {
	src := "## Q\n\n- [x] outer\n  - plain sub item\n  - another\n- [ ] second\n"
	chunks, err := parseChunks(t, src)
	require.NoError(t, err)
	require.Len(t, chunks, 1)
	opts := chunks[0].Options.Options
	require.Len(t, opts, 2)
	assert.Equal(t, "outerplain sub itemanother", plainText(opts[0].Contents))
	assert.Equal(t, "second", plainText(opts[1].Contents))
}

func TestParserErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want error
	}{
		{
			name: "list without markers",
			src:  "## Q\n\n- a\n- b\n",
			want: ErrNoOptionsFound,
		},
		{
			name: "no list at all",
			src:  "## Q\n\nJust a paragraph.\n",
			want: ErrNoOptionsFound,
		},
		{
			name: "two task lists",
			src:  "## Q\n\n- [x] a\n\nbetween\n\n* [ ] b\n",
			want: ErrTooManyTaskLists,
		},
		{
			name: "nested task list",
			src:  "## Q\n\n- item\n  - [x] nested\n",
			want: ErrNestedTaskList,
		},
		{
			name: "nested marker under option",
			src:  "## Q\n\n- [x] a\n  - [ ] nested\n",
			want: ErrNestedTaskList,
		},
		{
			name: "content after options",
			src:  "## Q\n\n- [x] a\n\nTrailing words.\n",
			want: ErrContentIgnored,
		},
		{
			name: "item without marker",
			src:  "## Q\n\n- [x] a\n- b\n",
			want: ErrOptionWithoutMarker,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parseChunks(t, tc.src)
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.want)
			var perr *ParseError
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, 2, perr.Level)
			assert.Equal(t, "Q", perr.Heading)
		})
	}
}

func TestParserErrorNamesChunk(t *testing.T) {
	_, err := parseChunks(t, "## Fine\n\n- [x] a\n\n## Broken one\n\nNo list.\n")
	require.Error(t, err)
	assert.EqualError(t, err, `2nd question (h2 "Broken one"): found no options in question`)
}

func TestParserHeadingWithoutEnd(t *testing.T) {
	events := []Event{
		{Kind: EventStart, Tag: TagHeading, Level: 3},
		{Kind: EventText, Text: "dangling"},
	}
	_, err := newChunkParser(nil, events).Next()
	require.ErrorIs(t, err, ErrUnexpectedEOF)
	assert.Contains(t, err.Error(), "h3")
}

func TestParserMarkerOutsideList(t *testing.T) {
	events := []Event{
		{Kind: EventTaskListMarker, Checked: true},
	}
	_, err := newChunkParser(nil, events).Next()
	require.ErrorIs(t, err, ErrTaskListWithoutList)
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 1, perr.Chunk)
	assert.Contains(t, err.Error(), "no heading")
}

func TestParserUnbalancedListEnd(t *testing.T) {
	events := []Event{
		{Kind: EventEnd, Tag: TagList},
	}
	_, err := newChunkParser(nil, events).Next()
	require.ErrorIs(t, err, ErrInternal)
}

func TestParserEmptyInput(t *testing.T) {
	chunks, err := parseChunks(t, "")
	require.NoError(t, err)
	assert.Empty(t, chunks)
}

func TestParseErrorNamesSource(t *testing.T) {
	err := &ParseError{Err: ErrNoOptionsFound, Chunk: 2, Level: 2, Heading: "Two", Source: "week2.md"}
	assert.Equal(t, `week2.md: 2nd question (h2 "Two"): found no options in question`, err.Error())
	err.Source = ""
	assert.Equal(t, `2nd question (h2 "Two"): found no options in question`, err.Error())
}
