package services

import (
	"context"
	"log/slog"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ewhitmore/blindkeep/pkg/intent"
)

// IntentParser extracts a game command from a spoken transcript.
// A transcript that cannot be understood yields intent.Unknown with a
// nil error; errors are reserved for infrastructure failures the
// caller may want to surface.
type IntentParser interface {
	Parse(ctx context.Context, transcript string, ictx intent.Context) (intent.Intent, error)
}

// LLMIntentParser asks a chat model for a structured intent and then
// repairs or rejects the reply against the player's actual options.
type LLMIntentParser struct {
	client ChatClient
	logger *slog.Logger
}

var _ IntentParser = (*LLMIntentParser)(nil)

// NewLLMIntentParser creates a parser backed by the given chat client.
func NewLLMIntentParser(client ChatClient, logger *slog.Logger) *LLMIntentParser {
	return &LLMIntentParser{client: client, logger: logger}
}

func (p *LLMIntentParser) Parse(ctx context.Context, transcript string, ictx intent.Context) (intent.Intent, error) {
	transcript = strings.TrimSpace(transcript)
	if transcript == "" {
		return intent.Unknown, nil
	}

	reply, err := p.client.Complete(ctx, IntentSystemPrompt(), IntentUserPrompt(transcript, ictx))
	if err != nil {
		// A model outage is not a game error: the player just retries.
		p.logger.Warn("Intent extraction failed", "error", err)
		return intent.Unknown, nil
	}

	raw, ok := decodeIntent(reply)
	if !ok {
		p.logger.Warn("Unparseable intent reply", "reply", truncate(reply, 200))
		return intent.Unknown, nil
	}

	out := intent.Validate(raw, ictx)
	p.logger.Debug("Intent parsed",
		"transcript", transcript,
		"action", out.Action,
		"direction", out.Direction,
		"item_id", out.ItemID)
	return out, nil
}

// decodeIntent unmarshals a model reply, tolerating markdown code
// fences. YAML parses JSON replies too, so one decoder covers both
// reply styles.
func decodeIntent(reply string) (intent.Intent, bool) {
	cleaned := stripFences(reply)
	var out intent.Intent
	if err := yaml.Unmarshal([]byte(cleaned), &out); err != nil {
		return intent.Intent{}, false
	}
	return out, true
}

// stripFences removes a surrounding markdown code fence, with or
// without a language tag, from a model reply.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if i := strings.Index(s, "\n"); i >= 0 {
		s = s[i+1:] // drop the language tag line
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
