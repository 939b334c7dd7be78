package llm

import "context"

// CompletionRequest is one chat-completion call. System may be empty.
type CompletionRequest struct {
	System      string
	Prompt      string
	Temperature float64
	MaxTokens   int
}

// Client is the text-generation capability consumed by the prediction and
// productivity features. Implementations must honor ctx cancellation.
type Client interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}
