package quizdown

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// FrontMatter is the metadata block a quiz file may open with. YAML
// ("---") and JSON (";;;") blocks are decoded; TOML ("+++") blocks are
// recognized and stripped but not decoded.
type FrontMatter struct {
	Name           string `json:"name" yaml:"name"`
	Theme          string `json:"theme" yaml:"theme"`
	Lang           string `json:"lang" yaml:"lang"`
	NoneOfTheAbove *bool  `json:"none_of_the_above" yaml:"none_of_the_above"`
}

// Apply overrides the fields of cfg that the front matter sets.
func (m FrontMatter) Apply(cfg Config) Config {
	if m.Theme != "" {
		cfg.Syntax.Theme = m.Theme
	}
	if m.Lang != "" {
		cfg.Syntax.DefaultLang = m.Lang
	}
	if m.NoneOfTheAbove != nil {
		cfg.InsertNoneOfTheAbove = *m.NoneOfTheAbove
	}
	return cfg
}

// SplitFrontMatter separates a leading front matter block from the
// markdown body. Without a block, body is src. A block only counts if it
// opens on the first line, its first line looks like metadata and it is
// closed by the same delimiter.
func SplitFrontMatter(src []byte) (FrontMatter, []byte, error) {
	var meta FrontMatter
	openLine, openNext := nextLine(src, 0)
	delim, ok := parseOpeningFrontMatterDelimiter(openLine)
	if !ok || openNext >= len(src) {
		return meta, src, nil
	}
	secondLine, _ := nextLine(src, openNext)
	if !frontMatterMetadataLikely(secondLine) {
		return meta, src, nil
	}
	closeStart, closeNext, found := findClosingFrontMatterDelimiter(src, openNext, delim)
	if !found {
		return meta, src, nil
	}
	raw := src[openNext:closeStart]
	body := src[closeNext:]

	var err error
	switch string(delim) {
	case "---":
		err = yaml.Unmarshal(raw, &meta)
	case ";;;":
		err = json.Unmarshal(raw, &meta)
	}
	if err != nil {
		return FrontMatter{}, nil, fmt.Errorf("front matter: %w", err)
	}
	return meta, body, nil
}

// nextLine returns the line starting at start without its terminator and
// the offset of the following line.
func nextLine(src []byte, start int) ([]byte, int) {
	if start >= len(src) {
		return nil, len(src)
	}
	i := bytes.IndexByte(src[start:], '\n')
	if i < 0 {
		return trimCR(src[start:]), len(src)
	}
	return trimCR(src[start : start+i]), start + i + 1
}

func parseOpeningFrontMatterDelimiter(line []byte) ([]byte, bool) {
	trimmed := bytes.TrimSpace(trimBOM(line))
	for _, delim := range [][]byte{[]byte("---"), []byte("+++"), []byte(";;;")} {
		if bytes.Equal(trimmed, delim) {
			return delim, true
		}
	}
	return nil, false
}

func frontMatterMetadataLikely(line []byte) bool {
	trimmed := bytes.TrimSpace(line)
	if len(trimmed) == 0 {
		return false
	}
	if bytes.HasPrefix(trimmed, []byte("{")) || bytes.HasPrefix(trimmed, []byte("[")) {
		return true
	}
	return bytes.Contains(trimmed, []byte(":")) || bytes.Contains(trimmed, []byte("="))
}

// findClosingFrontMatterDelimiter returns the offsets of the closing line
// and of the line after it.
func findClosingFrontMatterDelimiter(src []byte, start int, delim []byte) (int, int, bool) {
	for idx := start; idx < len(src); {
		line, next := nextLine(src, idx)
		if bytes.Equal(bytes.TrimSpace(line), delim) {
			return idx, next, true
		}
		idx = next
	}
	return 0, 0, false
}

func trimCR(b []byte) []byte {
	if len(b) > 0 && b[len(b)-1] == '\r' {
		return b[:len(b)-1]
	}
	return b
}

func trimBOM(b []byte) []byte {
	if len(b) >= 3 && b[0] == 0xEF && b[1] == 0xBB && b[2] == 0xBF {
		return b[3:]
	}
	return b
}
