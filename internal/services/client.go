package services

import "context"

// ChatClient is the minimal LLM surface the intent parser and narrator
// share: one system-prompted completion per call. Backends are
// interchangeable; prompts own all structure.
type ChatClient interface {
	// Complete returns the model's reply to a system + user prompt pair.
	Complete(ctx context.Context, system, user string) (string, error)
}
