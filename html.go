package quizdown

import (
	"fmt"
	"html/template"
	"strings"
)

var previewTemplate = template.Must(template.New("preview").Parse(`
{{- define "questions" -}}
<p class='source'><i>Loaded from {{.Name}}</i></p>
{{range .Questions -}}
<div class='question' id='q{{.Index}}'>
<div class='prompt'>{{.Prompt}}</div>
{{if .Ordered}}<ol>{{else}}<ul>{{end}}
{{range .Options -}}
<li><input type='checkbox' id='{{.ID}}'{{if .Correct}} checked{{end}} disabled /> <label for='{{.ID}}'>{{.Content}}</label></li>
{{end -}}
{{if .Ordered}}</ol>{{else}}</ul>{{end}}
</div>
<hr />
{{end -}}
{{- end -}}
{{- if .Full -}}
<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8" />
<title>{{.Name}} - Quizdown</title>
</head>
<body>
{{template "questions" .}}</body>
</html>
{{else -}}
{{template "questions" .}}
{{- end -}}
`))

type previewPage struct {
	Name      string
	Full      bool
	Questions []previewQuestion
}

type previewQuestion struct {
	Index   int
	Prompt  template.HTML
	Ordered bool
	Options []previewOption
}

type previewOption struct {
	ID      string
	Correct bool
	Content template.HTML
}

// renderHTML renders a preview with correct options pre-checked. Prompt
// and option content are trusted markup produced by the highlighter.
func renderHTML(name string, questions []Question, full bool) (string, error) {
	page := previewPage{
		Name:      name,
		Full:      full,
		Questions: make([]previewQuestion, 0, len(questions)),
	}
	for i, q := range questions {
		pq := previewQuestion{
			Index:   i,
			Prompt:  template.HTML(q.Prompt),
			Ordered: q.Ordered,
		}
		for j, opt := range q.Options {
			pq.Options = append(pq.Options, previewOption{
				ID:      fmt.Sprintf("q%d-o%d", i, j),
				Correct: opt.Correct,
				Content: template.HTML(opt.Content),
			})
		}
		page.Questions = append(page.Questions, pq)
	}
	format := FormatHTMLSnippet
	if full {
		format = FormatHTMLFull
	}
	var b strings.Builder
	if err := previewTemplate.Execute(&b, page); err != nil {
		return "", fmt.Errorf("%s: %w", format, err)
	}
	return b.String(), nil
}
