// Package interpret turns the vision model's free-form reply into a Result.
// The reply is expected to embed a JSON object of the form
// {"foods": [{"name": ..., "risk": ..., "details": ...}]}, possibly wrapped
// in prose or markdown.
package interpret

import (
	"encoding/json"
	"strings"

	"food-checker/api/internal/assess"
)

type foodsPayload struct {
	Foods []assess.FoodItem `json:"foods"`
}

// Interpret extracts and parses the embedded JSON and aggregates flagged
// foods into a single verdict. It is deterministic and never fails: both
// extraction and parse errors come back as degraded results carrying the
// offending text in Details.
func Interpret(raw string) assess.Result {
	obj, ok := ExtractJSON(raw)
	if !ok {
		f := &assess.Failure{
			Kind:    assess.FailureExtract,
			Message: "could not extract JSON from reply",
			Detail:  raw,
		}
		return f.Result()
	}

	var payload foodsPayload
	if err := json.Unmarshal([]byte(obj), &payload); err != nil {
		f := &assess.Failure{
			Kind:    assess.FailureParse,
			Message: "JSON parse error: " + err.Error(),
			Detail:  obj,
		}
		return f.Result()
	}

	var flagged []assess.FoodItem
	for _, item := range payload.Foods {
		if item.Risk {
			flagged = append(flagged, item)
		}
	}

	if len(flagged) == 0 {
		return assess.Result{
			Safe:         true,
			DetectedFood: assess.FoodList(nil),
			Message:      assess.MessageSafe,
		}
	}

	names := make([]string, 0, len(flagged))
	lines := make([]string, 0, len(flagged))
	for _, item := range flagged {
		names = append(names, item.Name)
		lines = append(lines, item.Name+": "+item.Details)
	}
	return assess.Result{
		Safe:         false,
		DetectedFood: assess.FoodList(names),
		Message:      assess.MessageRisk,
		Details:      strings.Join(lines, "\n"),
	}
}

// ExtractJSON returns the first balanced {...} object embedded in text.
// Braces inside JSON string values are ignored. Returns false when text
// contains no complete object.
func ExtractJSON(text string) (string, bool) {
	start := -1
	depth := 0
	inString := false
	escaped := false

	for i := 0; i < len(text); i++ {
		c := text[i]
		if start == -1 {
			if c == '{' {
				start = i
				depth = 1
			}
			continue
		}
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1], true
			}
		}
	}
	return "", false
}
