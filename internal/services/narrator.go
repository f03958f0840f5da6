package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// SceneKind identifies which story beat is being narrated.
type SceneKind string

const (
	SceneRoom        SceneKind = "room"
	SceneBossEntry   SceneKind = "boss_entry"
	SceneCombatRound SceneKind = "combat_round"
	SceneBossDefeat  SceneKind = "boss_defeat"
	ScenePickup      SceneKind = "pickup"
	SceneExitBlocked SceneKind = "exit_blocked"
	SceneLocked      SceneKind = "locked"
	SceneUnlocked    SceneKind = "unlocked"
	SceneVictory     SceneKind = "victory"
)

// Scene carries the facts for one narration beat. Only the fields
// relevant to the Kind are set; the prompt builders ignore the rest.
type Scene struct {
	Kind SceneKind

	RoomName     string
	RoomHint     string
	PreviousRoom string
	Exits        map[string]string // direction -> destination room name
	RoomItems    []string          // item display names

	BossName  string
	SkillName string
	ItemName  string

	PlayerDamage int
	BossDamage   int
	PlayerHP     int
	BossHP       int
}

// Narration is a finished beat: the spoken text plus an optional audio
// file rendered from it. AudioPath is empty when synthesis is
// unavailable; the game stays playable text-only.
type Narration struct {
	Text      string
	AudioPath string
}

// Narrator turns a scene into narration. Implementations may block for
// seconds; callers run them off the control loop.
type Narrator interface {
	Narrate(ctx context.Context, scene Scene) (*Narration, error)
}

// LLMNarrator generates prose with a chat model and optionally renders
// it to audio.
type LLMNarrator struct {
	client ChatClient
	synth  Synthesizer
	logger *slog.Logger
}

var _ Narrator = (*LLMNarrator)(nil)

// NewLLMNarrator creates a narrator. synth may be nil for text-only play.
func NewLLMNarrator(client ChatClient, synth Synthesizer, logger *slog.Logger) *LLMNarrator {
	return &LLMNarrator{client: client, synth: synth, logger: logger}
}

func (n *LLMNarrator) Narrate(ctx context.Context, scene Scene) (*Narration, error) {
	text, err := n.client.Complete(ctx, NarrationSystemPrompt(), NarrationUserPrompt(scene))
	if err != nil {
		return nil, fmt.Errorf("narration generation failed: %w", err)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("narration generation returned empty text for %s scene", scene.Kind)
	}

	out := &Narration{Text: text}
	if n.synth != nil {
		path, err := n.synth.Synthesize(ctx, text)
		if err != nil {
			// Degrade to text-only rather than stall the game on a TTS outage.
			n.logger.Warn("Speech synthesis failed, continuing text-only",
				"scene", scene.Kind, "error", err)
		} else {
			out.AudioPath = path
		}
	}
	return out, nil
}
