package gateway

import (
	"context"
)

// ContentPart is one element of a multimodal chat message
type ContentPart struct {
	Type     string // "text" or "image_url"
	Text     string
	ImageURL string
}

// ChatMessage is a single message sent to the model
type ChatMessage struct {
	Role  string
	Parts []ContentPart
}

// CompletionRequest describes a model invocation
type CompletionRequest struct {
	Model       string
	Messages    []ChatMessage
	MaxTokens   int
	Temperature float64
}

// Completion is the normalized text returned by the provider
type Completion struct {
	Content string
	Model   string
}

// ModelClient calls a hosted language model
type ModelClient interface {
	// Complete sends the request and returns the assistant text.
	//
	// Possible errors:
	// - ErrUpstreamFailure: If the provider answers with a non-2xx status
	// - ErrTimeout: If ctx expires before the provider answers
	// - ErrGenerationFormat: If the envelope carries no text
	Complete(ctx context.Context, req CompletionRequest) (*Completion, error)
}
