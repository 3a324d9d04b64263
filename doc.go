// Package quizdown turns a restricted Markdown dialect into quiz questions.
//
// A document is a sequence of questions separated by headings. Each
// question holds a prompt (the heading plus any body text) and exactly one
// task list whose items are the answer options; checked items are correct.
//
//	## Do you want to build a snowman?
//
//	- [ ] No
//	- [x] Yes
//
// Process parses and renders a document into Questions whose prompt and
// option content are HTML, with code blocks and inline code highlighted
// by chroma. Render serializes questions as an HTML preview, a Moodle XML
// question bank or JSON.
//
// Example:
//
//	questions, err := quizdown.Process(src, quizdown.DefaultConfig())
//	if err != nil {
//		log.Fatal(err)
//	}
//	out, err := quizdown.Render(quizdown.FormatMoodleXML, "cs101/week1", questions)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Print(out)
//
// Errors in the document are reported as *ParseError wrapping one of the
// Err* sentinels, naming the question and its heading.
package quizdown
