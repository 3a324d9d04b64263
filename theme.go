package quizdown

import (
	"sort"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
)

// ListThemes returns the sorted names of the built-in highlighting themes.
func ListThemes() []string {
	names := make([]string, 0, len(styles.Registry))
	for name := range styles.Registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ThemeByName returns a built-in highlighting theme. The empty name selects
// DefaultTheme; lookup ignores case and surrounding space.
func ThemeByName(name string) (*chroma.Style, bool) {
	if strings.TrimSpace(name) == "" {
		name = DefaultTheme
	}
	if style, ok := styles.Registry[name]; ok {
		return style, true
	}
	normalized := strings.ToLower(strings.TrimSpace(name))
	for key, style := range styles.Registry {
		if strings.ToLower(key) == normalized {
			return style, true
		}
	}
	return nil, false
}
