package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"pkt.systems/quizdown"
)

// goldenName is the quiz name the golden tests render with.
const goldenName = "cs101/ex"

func main() {
	root := "testdata"
	var paths []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasSuffix(path, ".md") {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		fatalf("walk %s: %v", root, err)
	}
	if len(paths) == 0 {
		fatalf("no markdown files found under %s", root)
	}
	for _, path := range paths {
		src, err := os.ReadFile(path)
		if err != nil {
			fatalf("read %s: %v", path, err)
		}
		questions, err := quizdown.Process(string(src), quizdown.DefaultConfig())
		if err != nil {
			fatalf("process %s: %v", path, err)
		}
		out, err := quizdown.Render(quizdown.FormatMoodleXML, goldenName, questions)
		if err != nil {
			fatalf("render %s: %v", path, err)
		}
		goldenPath := strings.TrimSuffix(path, ".md") + ".moodle.golden"
		if err := os.WriteFile(goldenPath, []byte(out), 0o644); err != nil {
			fatalf("write %s: %v", goldenPath, err)
		}
		fmt.Fprintf(os.Stdout, "wrote %s (%d questions)\n", goldenPath, len(questions))
	}
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
