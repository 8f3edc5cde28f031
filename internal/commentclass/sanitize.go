package commentclass

import (
	"regexp"
	"strings"
)

// labelPatterns match each taxonomy label as a whole word, case-insensitive,
// compiled once in canonical order.
var labelPatterns = func() []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, len(Labels))
	for i, label := range Labels {
		patterns[i] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(label) + `\b`)
	}
	return patterns
}()

// SanitizeModelOutput reduces raw model output to a single label. It scans
// for the first taxonomy label present as a whole word anywhere in the text;
// when none is found it returns the trimmed first line so the caller still
// prints something bounded.
func SanitizeModelOutput(text string) string {
	for i, pattern := range labelPatterns {
		if pattern.MatchString(text) {
			return Labels[i]
		}
	}

	line, _, _ := strings.Cut(text, "\n")
	return strings.TrimSpace(line)
}
