package llm

import (
	"bytes"
	"encoding/json"
	"strings"
)

// envelopeShape identifies which provider response layout a body uses
type envelopeShape int

const (
	// shapePlainText is any body without a recognised envelope; the body itself is the text
	shapePlainText envelopeShape = iota
	shapeProviderError
	shapeChatMessage
	shapeLegacyText
	shapeGeminiCandidates
	shapeBareContent
	shapeOutputText
)

type providerError struct {
	Message string `json:"message"`
	Code    any    `json:"code"`
}

type chatMessageEnvelope struct {
	Choices []struct {
		Message struct {
			Content json.RawMessage `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

type legacyTextEnvelope struct {
	Choices []struct {
		Text string `json:"text"`
	} `json:"choices"`
}

type geminiEnvelope struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

type contentPart struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// classifyEnvelope picks the layout from the keys present at the top level and in the first choice
func classifyEnvelope(fields map[string]json.RawMessage) envelopeShape {
	if raw, ok := fields["error"]; ok {
		var perr providerError
		if json.Unmarshal(raw, &perr) == nil && perr.Message != "" {
			return shapeProviderError
		}
	}

	if raw, ok := fields["choices"]; ok {
		var choices []map[string]json.RawMessage
		if json.Unmarshal(raw, &choices) == nil && len(choices) > 0 {
			if _, ok := choices[0]["message"]; ok {
				return shapeChatMessage
			}
			if _, ok := choices[0]["text"]; ok {
				return shapeLegacyText
			}
		}
	}

	if raw, ok := fields["candidates"]; ok {
		var candidates []json.RawMessage
		if json.Unmarshal(raw, &candidates) == nil && len(candidates) > 0 {
			return shapeGeminiCandidates
		}
	}

	if _, ok := fields["content"]; ok {
		return shapeBareContent
	}
	if _, ok := fields["output_text"]; ok {
		return shapeOutputText
	}
	return shapePlainText
}

// normalizeEnvelope returns the assistant text of a provider response body.
// Bodies that match no known envelope are returned verbatim as plain text.
func normalizeEnvelope(body []byte) (text, model string, perr *providerError) {
	trimmed := bytes.TrimSpace(body)
	plain := string(trimmed)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return plain, "", nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		return plain, "", nil
	}
	if raw, ok := fields["model"]; ok {
		_ = json.Unmarshal(raw, &model)
	}

	switch classifyEnvelope(fields) {
	case shapeProviderError:
		var e providerError
		_ = json.Unmarshal(fields["error"], &e)
		return "", model, &e

	case shapeChatMessage:
		var env chatMessageEnvelope
		if err := json.Unmarshal(trimmed, &env); err != nil {
			return plain, model, nil
		}
		return contentText(env.Choices[0].Message.Content), model, nil

	case shapeLegacyText:
		var env legacyTextEnvelope
		if err := json.Unmarshal(trimmed, &env); err != nil {
			return plain, model, nil
		}
		return env.Choices[0].Text, model, nil

	case shapeGeminiCandidates:
		var env geminiEnvelope
		if err := json.Unmarshal(trimmed, &env); err != nil {
			return plain, model, nil
		}
		var sb strings.Builder
		for _, part := range env.Candidates[0].Content.Parts {
			sb.WriteString(part.Text)
		}
		return sb.String(), model, nil

	case shapeBareContent:
		return contentText(fields["content"]), model, nil

	case shapeOutputText:
		var s string
		if err := json.Unmarshal(fields["output_text"], &s); err != nil {
			return plain, model, nil
		}
		return s, model, nil

	default:
		return plain, model, nil
	}
}

// contentText flattens a message content that is either a string or a list of parts
func contentText(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}

	var parts []contentPart
	if err := json.Unmarshal(raw, &parts); err == nil {
		var sb strings.Builder
		for _, p := range parts {
			if p.Type == "" || p.Type == "text" || p.Type == "output_text" {
				sb.WriteString(p.Text)
			}
		}
		return sb.String()
	}
	return ""
}
