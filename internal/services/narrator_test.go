package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLLMNarrator_TextOnly(t *testing.T) {
	client := replyWith("  The dark leans closer.  ")
	n := NewLLMNarrator(client, nil, testLogger())

	out, err := n.Narrate(context.Background(), Scene{Kind: SceneRoom, RoomName: "the Hall"})
	require.NoError(t, err)
	assert.Equal(t, "The dark leans closer.", out.Text)
	assert.Empty(t, out.AudioPath)
}

func TestLLMNarrator_WithSynthesis(t *testing.T) {
	synth := &MockSynthesizer{}
	n := NewLLMNarrator(replyWith("A door groans."), synth, testLogger())

	out, err := n.Narrate(context.Background(), Scene{Kind: SceneUnlocked, RoomName: "the Vault"})
	require.NoError(t, err)
	assert.Equal(t, "/tmp/mock.wav", out.AudioPath)
	assert.Equal(t, []string{"A door groans."}, synth.Texts)
}

func TestLLMNarrator_SynthFailureDegradesToText(t *testing.T) {
	synth := &MockSynthesizer{
		SynthesizeFunc: func(ctx context.Context, text string) (string, error) {
			return "", errors.New("tts down")
		},
	}
	n := NewLLMNarrator(replyWith("A door groans."), synth, testLogger())

	out, err := n.Narrate(context.Background(), Scene{Kind: SceneRoom})
	require.NoError(t, err, "losing audio must not lose the beat")
	assert.Equal(t, "A door groans.", out.Text)
	assert.Empty(t, out.AudioPath)
}

func TestLLMNarrator_ModelErrorPropagates(t *testing.T) {
	client := &MockChatClient{
		CompleteFunc: func(ctx context.Context, system, user string) (string, error) {
			return "", errors.New("model unavailable")
		},
	}
	n := NewLLMNarrator(client, nil, testLogger())

	_, err := n.Narrate(context.Background(), Scene{Kind: SceneRoom})
	require.Error(t, err)
}

func TestLLMNarrator_EmptyReplyIsError(t *testing.T) {
	n := NewLLMNarrator(replyWith("   "), nil, testLogger())

	_, err := n.Narrate(context.Background(), Scene{Kind: SceneVictory})
	require.Error(t, err)
}

func TestNarrationUserPrompt_RoomIncludesFacts(t *testing.T) {
	prompt := NarrationUserPrompt(Scene{
		Kind:         SceneRoom,
		RoomName:     "the Gallery",
		RoomHint:     "dripping water",
		PreviousRoom: "the Hall",
		Exits:        map[string]string{"north": "the Lair", "south": "the Hall"},
		RoomItems:    []string{"Dented Helm"},
	})

	assert.Contains(t, prompt, "the Gallery")
	assert.Contains(t, prompt, "dripping water")
	assert.Contains(t, prompt, "'north' leading to the Lair")
	assert.Contains(t, prompt, "came from: the Hall")
	assert.Contains(t, prompt, "Dented Helm")
}

func TestNarrationUserPrompt_CombatRoundIncludesNumbers(t *testing.T) {
	prompt := NarrationUserPrompt(Scene{
		Kind:         SceneCombatRound,
		BossName:     "the Warden",
		SkillName:    "Crush",
		ItemName:     "Woodcutter's Axe",
		PlayerDamage: 25,
		BossDamage:   7,
		PlayerHP:     68,
		BossHP:       30,
	})

	for _, want := range []string{"the Warden", "Crush", "Woodcutter's Axe", "25", "7", "68", "30"} {
		assert.Contains(t, prompt, want)
	}
}

func TestIntentUserPrompt_AlwaysOffersExits(t *testing.T) {
	// Exits are offered even mid-combat so the model can express a
	// flee as a move.
	prompt := IntentUserPrompt("run away north", parseCtx())
	assert.Contains(t, prompt, "north, south")
	assert.Contains(t, prompt, "Bare Fists")
	assert.Contains(t, prompt, "Dented Helm")
}

func TestTemplateNarrator_CoversEveryScene(t *testing.T) {
	n := NewTemplateNarrator()
	kinds := []SceneKind{
		SceneRoom, SceneBossEntry, SceneCombatRound, SceneBossDefeat,
		ScenePickup, SceneExitBlocked, SceneLocked, SceneUnlocked, SceneVictory,
	}
	for _, kind := range kinds {
		out, err := n.Narrate(context.Background(), Scene{
			Kind: kind, RoomName: "the Hall", RoomHint: "cold",
			BossName: "the Warden", ItemName: "Brass Key", SkillName: "Crush",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, strings.TrimSpace(out.Text), "kind %s", kind)
		assert.Empty(t, out.AudioPath)
	}
}
