package generation

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/amirhossein-jamali/image2code-backend/internal/domain/entity"
	errs "github.com/amirhossein-jamali/image2code-backend/internal/domain/error"
)

var (
	// blockFencePattern only closes on a fence at the start of a line, so backticks inside JSON strings are skipped
	blockFencePattern  = regexp.MustCompile("(?s)```([A-Za-z0-9_-]*)[ \\t]*\\r?\\n(.*?)\\r?\\n[ \\t]*```")
	inlineFencePattern = regexp.MustCompile("(?s)```([A-Za-z0-9_-]*)[ \\t]*\\r?\\n?(.*?)```")
)

// ExtractAndParseJSON recovers a JSON value from model output.
// Fenced json blocks are tried first, then the whole payload, then the
// outermost object or array span.
func ExtractAndParseJSON(raw string) (any, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return nil, errs.NewGenerationFormatError("empty response", raw)
	}

	fenced := false
	for _, body := range jsonFenceBodies(text) {
		fenced = true
		var v any
		if err := json.Unmarshal([]byte(body), &v); err == nil {
			return v, nil
		}
	}

	var v any
	if err := json.Unmarshal([]byte(text), &v); err == nil {
		if isContainer(v) {
			return v, nil
		}
	}

	if span := outermostSpan(text); span != "" {
		if err := json.Unmarshal([]byte(span), &v); err == nil {
			return v, nil
		}
	}

	if fenced {
		return nil, errs.NewGenerationFormatError("fenced block is not valid JSON", raw)
	}
	return nil, errs.NewGenerationFormatError("no JSON object found", raw)
}

// jsonFenceBodies returns the bodies of the first json or unlabelled fence
// found by each pattern, line-anchored first
func jsonFenceBodies(text string) []string {
	var bodies []string
	for _, p := range []*regexp.Regexp{blockFencePattern, inlineFencePattern} {
		m := p.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		if lang := strings.ToLower(m[1]); lang != "" && lang != "json" {
			continue
		}
		body := strings.TrimSpace(m[2])
		if len(bodies) > 0 && bodies[0] == body {
			continue
		}
		bodies = append(bodies, body)
	}
	return bodies
}

// ParseProject extracts the JSON payload and checks it has the project shape
func ParseProject(raw string) (*entity.GeneratedProject, error) {
	v, err := ExtractAndParseJSON(raw)
	if err != nil {
		return nil, err
	}
	return entity.ValidateProjectShape(v, raw)
}

// StripCodeFence returns the body of the first fenced block, or text unchanged
func StripCodeFence(text string) string {
	trimmed := strings.TrimSpace(text)
	for _, p := range []*regexp.Regexp{blockFencePattern, inlineFencePattern} {
		if m := p.FindStringSubmatch(trimmed); m != nil {
			return strings.TrimSpace(m[2])
		}
	}
	return trimmed
}

func isContainer(v any) bool {
	switch v.(type) {
	case map[string]any, []any:
		return true
	default:
		return false
	}
}

func outermostSpan(s string) string {
	objStart := strings.Index(s, "{")
	arrStart := strings.Index(s, "[")
	start, end := -1, -1
	switch {
	case objStart >= 0 && (arrStart < 0 || objStart < arrStart):
		start = objStart
		end = strings.LastIndex(s, "}")
	case arrStart >= 0:
		start = arrStart
		end = strings.LastIndex(s, "]")
	}
	if start >= 0 && end > start {
		return s[start : end+1]
	}
	return ""
}
