package gemini

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// defaultTitle substitutes for a missing or empty title in an otherwise
// valid response. A cosmetic parse gap should not fail a whole item.
const defaultTitle = "Untitled"

var (
	reFenceOpen  = regexp.MustCompile("^```(?:json)?\\s*")
	reFenceClose = regexp.MustCompile("\\s*```$")
)

// ParseAnnotation decodes the raw model response into an Annotation. The
// response may arrive wrapped in a fenced code block; the fence is stripped
// before JSON decoding. Non-JSON input is an error. A missing or empty
// title or alt text is not: defaults are substituted ("Untitled", "").
func ParseAnnotation(text string) (Annotation, error) {
	text = stripFences(strings.TrimSpace(text))

	var a Annotation
	if err := json.Unmarshal([]byte(text), &a); err != nil {
		return Annotation{}, fmt.Errorf("gemini: malformed response: %w", err)
	}
	if a.Title == "" {
		a.Title = defaultTitle
	}
	return a, nil
}

// stripFences removes a leading ```/```json fence and the matching trailing
// fence. Input without a leading fence passes through untouched.
func stripFences(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = reFenceOpen.ReplaceAllString(s, "")
	return reFenceClose.ReplaceAllString(s, "")
}
