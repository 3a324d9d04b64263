package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/derekparker/trie"
	"github.com/muesli/reflow/wordwrap"
	"pkt.systems/quizdown"
)

const maxSuggestions = 5

// printThemes writes the theme names as a comma separated list wrapped to
// width.
func printThemes(w io.Writer, width int) {
	names := quizdown.ListThemes()
	fmt.Fprintln(w, wordwrap.String(strings.Join(names, ", "), width))
}

// suggestThemes returns theme names close to an unknown name: names sharing
// its prefix first, then fuzzy matches.
func suggestThemes(name string) []string {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return nil
	}
	t := trie.New()
	for _, theme := range quizdown.ListThemes() {
		t.Add(strings.ToLower(theme), theme)
	}
	seen := map[string]bool{}
	var out []string
	collect := func(keys []string) {
		sort.Strings(keys)
		for _, key := range keys {
			if len(out) >= maxSuggestions {
				return
			}
			if !seen[key] {
				seen[key] = true
				out = append(out, key)
			}
		}
	}
	collect(t.PrefixSearch(name))
	collect(t.FuzzySearch(name))
	return out
}
