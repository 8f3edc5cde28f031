package commentclass

import (
	"fmt"
	"os"
	"strings"
)

// DefaultPromptPath is where the classify CLI looks for its prompt template.
const DefaultPromptPath = "classification_prompt.md"

// commentPlaceholder is replaced with the comment text in the template.
const commentPlaceholder = "{{comment}}"

// LoadPrompt reads the prompt template from path.
func LoadPrompt(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read prompt template: %w", err)
	}
	return string(data), nil
}

// BuildPrompt substitutes the comment into the template's placeholder.
func BuildPrompt(template, comment string) string {
	return strings.ReplaceAll(template, commentPlaceholder, strings.TrimSpace(comment))
}
