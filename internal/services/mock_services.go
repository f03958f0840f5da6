package services

import (
	"context"
	"sync"

	"github.com/ewhitmore/blindkeep/pkg/intent"
)

// MockChatClient is a ChatClient for tests. Set CompleteFunc to drive
// replies; calls are recorded for assertions.
type MockChatClient struct {
	CompleteFunc func(ctx context.Context, system, user string) (string, error)

	mu    sync.Mutex
	Calls []string // user prompts, in order
}

var _ ChatClient = (*MockChatClient)(nil)

func (m *MockChatClient) Complete(ctx context.Context, system, user string) (string, error) {
	m.mu.Lock()
	m.Calls = append(m.Calls, user)
	m.mu.Unlock()

	if m.CompleteFunc != nil {
		return m.CompleteFunc(ctx, system, user)
	}
	return "", nil
}

// MockIntentParser returns canned intents without touching a model.
type MockIntentParser struct {
	ParseFunc func(ctx context.Context, transcript string, ictx intent.Context) (intent.Intent, error)

	mu          sync.Mutex
	Transcripts []string
}

var _ IntentParser = (*MockIntentParser)(nil)

func (m *MockIntentParser) Parse(ctx context.Context, transcript string, ictx intent.Context) (intent.Intent, error) {
	m.mu.Lock()
	m.Transcripts = append(m.Transcripts, transcript)
	m.mu.Unlock()

	if m.ParseFunc != nil {
		return m.ParseFunc(ctx, transcript, ictx)
	}
	return intent.Unknown, nil
}

// MockNarrator returns canned narration. The default reply echoes the
// scene kind so tests can route on it.
type MockNarrator struct {
	NarrateFunc func(ctx context.Context, scene Scene) (*Narration, error)

	mu     sync.Mutex
	Scenes []Scene
}

var _ Narrator = (*MockNarrator)(nil)

func (m *MockNarrator) Narrate(ctx context.Context, scene Scene) (*Narration, error) {
	m.mu.Lock()
	m.Scenes = append(m.Scenes, scene)
	m.mu.Unlock()

	if m.NarrateFunc != nil {
		return m.NarrateFunc(ctx, scene)
	}
	return &Narration{Text: "narrated: " + string(scene.Kind)}, nil
}

// SceneKinds returns the kinds narrated so far, in order.
func (m *MockNarrator) SceneKinds() []SceneKind {
	m.mu.Lock()
	defer m.mu.Unlock()
	kinds := make([]SceneKind, 0, len(m.Scenes))
	for _, s := range m.Scenes {
		kinds = append(kinds, s.Kind)
	}
	return kinds
}

// MockSynthesizer records synthesized texts and returns a fixed path.
type MockSynthesizer struct {
	SynthesizeFunc func(ctx context.Context, text string) (string, error)

	mu    sync.Mutex
	Texts []string
}

var _ Synthesizer = (*MockSynthesizer)(nil)

func (m *MockSynthesizer) Synthesize(ctx context.Context, text string) (string, error) {
	m.mu.Lock()
	m.Texts = append(m.Texts, text)
	m.mu.Unlock()

	if m.SynthesizeFunc != nil {
		return m.SynthesizeFunc(ctx, text)
	}
	return "/tmp/mock.wav", nil
}
