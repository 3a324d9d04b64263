package quizdown

import (
	"encoding/json"
	"fmt"
)

func renderJSON(questions []Question) (string, error) {
	if questions == nil {
		questions = []Question{}
	}
	out, err := json.MarshalIndent(questions, "", "  ")
	if err != nil {
		return "", fmt.Errorf("%s: %w", FormatJSON, err)
	}
	return string(out) + "\n", nil
}
