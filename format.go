package quizdown

import (
	"fmt"
	"path/filepath"
	"strings"
)

// OutputFormat selects a renderer.
type OutputFormat uint8

const (
	// FormatHTMLFull is a standalone HTML preview page.
	FormatHTMLFull OutputFormat = iota
	// FormatHTMLSnippet is the preview markup without document boilerplate.
	FormatHTMLSnippet
	// FormatMoodleXML is a Moodle question bank import file.
	FormatMoodleXML
	// FormatJSON is the question list as JSON.
	FormatJSON
)

var formatNames = [...]string{
	FormatHTMLFull:    "HtmlFull",
	FormatHTMLSnippet: "HtmlSnippet",
	FormatMoodleXML:   "MoodleXml",
	FormatJSON:        "JSON",
}

var formatAliases = map[string]OutputFormat{
	"htmlfull":     FormatHTMLFull,
	"html":         FormatHTMLFull,
	"html-full":    FormatHTMLFull,
	"htmlsnippet":  FormatHTMLSnippet,
	"html-snippet": FormatHTMLSnippet,
	"snippet":      FormatHTMLSnippet,
	"moodlexml":    FormatMoodleXML,
	"moodle":       FormatMoodleXML,
	"moodle-xml":   FormatMoodleXML,
	"xml":          FormatMoodleXML,
	"json":         FormatJSON,
}

// OutputFormats returns the canonical names of all formats.
func OutputFormats() []string {
	return append([]string(nil), formatNames[:]...)
}

func (f OutputFormat) String() string {
	if int(f) < len(formatNames) {
		return formatNames[f]
	}
	return fmt.Sprintf("OutputFormat(%d)", uint8(f))
}

// MarshalText implements encoding.TextMarshaler.
func (f OutputFormat) MarshalText() ([]byte, error) {
	if int(f) >= len(formatNames) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownFormat, uint8(f))
	}
	return []byte(formatNames[f]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *OutputFormat) UnmarshalText(text []byte) error {
	parsed, err := ParseOutputFormat(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// ParseOutputFormat accepts the canonical names and a few short aliases
// such as "html", "moodle" and "json", ignoring case.
func ParseOutputFormat(name string) (OutputFormat, error) {
	if f, ok := formatAliases[strings.ToLower(strings.TrimSpace(name))]; ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// GuessOutputFormat picks a format from the extension of an output path.
func GuessOutputFormat(path string) (OutputFormat, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return FormatHTMLFull, true
	case ".moodle", ".xml":
		return FormatMoodleXML, true
	case ".json":
		return FormatJSON, true
	}
	return 0, false
}

// Render renders questions in format. name labels the HTML preview and
// prefixes the Moodle category and question names.
func Render(format OutputFormat, name string, questions []Question) (string, error) {
	return format.Render(name, questions)
}

// Render renders questions in f.
func (f OutputFormat) Render(name string, questions []Question) (string, error) {
	tracer().Debugf("rendering %d questions as %s", len(questions), f)
	switch f {
	case FormatHTMLFull:
		return renderHTML(name, questions, true)
	case FormatHTMLSnippet:
		return renderHTML(name, questions, false)
	case FormatMoodleXML:
		return renderMoodle(name, questions)
	case FormatJSON:
		return renderJSON(questions)
	}
	return "", fmt.Errorf("%w: %d", ErrUnknownFormat, uint8(f))
}
