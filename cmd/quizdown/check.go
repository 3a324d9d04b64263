package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/muesli/reflow/ansi"
	"pkt.systems/quizdown"
)

// printCheck writes one line per question: its position, the number of
// correct options out of all options and the prompt text, cut to width.
func printCheck(w io.Writer, questions []quizdown.Question, width int) {
	for i, q := range questions {
		prefix := fmt.Sprintf("%3d. [%d/%d] ", i+1, q.CorrectCount(), len(q.Options))
		if q.Ordered {
			prefix += "(ordered) "
		}
		line := prefix + truncateWithEllipsis(htmlText(q.Prompt), width-ansi.PrintableRuneWidth(prefix))
		fmt.Fprintln(w, line)
	}
	fmt.Fprintf(w, "%d questions ok\n", len(questions))
}

// htmlText returns the text content of an HTML fragment with whitespace
// runs collapsed.
func htmlText(fragment string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return strings.Join(strings.Fields(fragment), " ")
	}
	var parts []string
	doc.Find("body").Children().Each(func(_ int, s *goquery.Selection) {
		if text := strings.Join(strings.Fields(s.Text()), " "); text != "" {
			parts = append(parts, text)
		}
	})
	return strings.Join(parts, " ")
}

func truncateWithEllipsis(text string, limit int) string {
	if ansi.PrintableRuneWidth(text) <= limit {
		return text
	}
	if limit <= 0 {
		return ""
	}
	if limit == 1 {
		return "…"
	}
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit-1]) + "…"
}
