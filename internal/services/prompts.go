package services

// All LLM prompt strings live here: pure string construction, no calls.

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ewhitmore/blindkeep/pkg/intent"
)

// IntentSystemPrompt instructs the model to emit exactly one YAML
// intent object and nothing else. YAML is a superset of JSON, so
// backends that prefer JSON replies parse identically.
func IntentSystemPrompt() string {
	return "You extract a single game command from a spoken transcript. " +
		"Reply with exactly one YAML object and nothing else, using the keys " +
		"action, direction, item_id. " +
		"action is one of: move, attack, pickup, unknown. " +
		"Set direction only for move, using one of the offered directions. " +
		"Set item_id only for attack or pickup, using one of the offered ids. " +
		"If the transcript does not clearly match an offered option, use action: unknown. " +
		"Never invent directions or item ids."
}

// IntentUserPrompt renders the transcript plus the player's current
// legal options. Exits and room items are always included, in combat
// too: hiding exits would make fleeing impossible to express.
func IntentUserPrompt(transcript string, ctx intent.Context) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Transcript: %q\n", transcript)
	fmt.Fprintf(&b, "Available directions: %s\n", strings.Join(ctx.Exits, ", "))
	fmt.Fprintf(&b, "Held weapons: %s\n", renderOptions(ctx.Weapons))
	fmt.Fprintf(&b, "Items in the room: %s\n", renderOptions(ctx.RoomItems))
	b.WriteString("Reply with the YAML object only.")
	return b.String()
}

func renderOptions(opts []intent.Option) string {
	if len(opts) == 0 {
		return "none"
	}
	parts := make([]string, 0, len(opts))
	for _, o := range opts {
		parts = append(parts, fmt.Sprintf("%s (id: %s)", o.Name, o.ID))
	}
	return strings.Join(parts, ", ")
}

// NarrationSystemPrompt sets the blind-dungeon narrator voice.
func NarrationSystemPrompt() string {
	return "You are a dungeon master narrating a blind dungeon game. " +
		"The player cannot see anything; your words are their only perception. " +
		"Be atmospheric and concise. " +
		"Speak in second person: 'you see...', 'you hear...', 'you smell...'. " +
		"Do not use markdown, lists, or formatting. " +
		"Do not mention game mechanics or rules."
}

// NarrationUserPrompt renders the scene facts for one narration beat.
func NarrationUserPrompt(s Scene) string {
	switch s.Kind {
	case SceneRoom:
		return roomPrompt(s)
	case SceneBossEntry:
		return bossEntryPrompt(s)
	case SceneCombatRound:
		return combatRoundPrompt(s)
	case SceneBossDefeat:
		return fmt.Sprintf(
			"%s has been defeated. Write 2 sentences describing the boss falling. "+
				"The tone is triumphant but with an undercurrent of dread. Second person.",
			s.BossName)
	case ScenePickup:
		return fmt.Sprintf(
			"The player picked up the %s in %s. "+
				"Write 1 sentence describing the find by touch and sound alone. Second person.",
			s.ItemName, s.RoomName)
	case SceneExitBlocked:
		return "The player tried to enter the final chamber but cannot; " +
			"a guardian still lives somewhere in the dungeon. " +
			"Write 1-2 sentences: the gate is sealed by dark energy, " +
			"and the player senses an undefeated presence."
	case SceneLocked:
		return fmt.Sprintf(
			"The player pushed at the way into %s, but it is locked fast. "+
				"Write 1 sentence: the door will not move, and something like a keyhole is under their fingers.",
			s.RoomName)
	case SceneUnlocked:
		return fmt.Sprintf(
			"The player's %s turns in the lock and the way into %s grinds open. "+
				"Write 1 sentence describing the sound of it giving way.",
			s.ItemName, s.RoomName)
	case SceneVictory:
		return fmt.Sprintf(
			"The player has finally reached %s, the end of their journey. "+
				"Narrate their triumph in 2 atmospheric sentences. "+
				"The tone should be both ominous and victorious: they survived, "+
				"but the dungeon will always remember them.",
			s.RoomName)
	default:
		return fmt.Sprintf("Describe this moment in one atmospheric sentence: %s.", s.RoomName)
	}
}

func roomPrompt(s Scene) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Room: %s. Atmosphere hints: %s. ", s.RoomName, s.RoomHint)

	dirs := make([]string, 0, len(s.Exits))
	for dir := range s.Exits {
		dirs = append(dirs, dir)
	}
	sort.Strings(dirs)
	parts := make([]string, 0, len(dirs))
	for _, dir := range dirs {
		parts = append(parts, fmt.Sprintf("'%s' leading to %s", dir, s.Exits[dir]))
	}
	fmt.Fprintf(&b, "Available exits: %s. ", strings.Join(parts, ", "))

	if s.PreviousRoom != "" {
		fmt.Fprintf(&b, "The player just came from: %s. ", s.PreviousRoom)
	} else {
		b.WriteString("This is the player's starting location. ")
	}
	if len(s.RoomItems) > 0 {
		fmt.Fprintf(&b, "Items present in this room: %s. Mention one or two of them naturally. ",
			strings.Join(s.RoomItems, ", "))
	}
	b.WriteString("Keep the entire narration to 1-2 sentences. Each exit and item gets one brief phrase.")
	return b.String()
}

func bossEntryPrompt(s Scene) string {
	origin := "entered"
	if s.PreviousRoom != "" {
		origin = "came from " + s.PreviousRoom
	}
	return fmt.Sprintf(
		"The player %s and now stands in %s. Atmosphere: %s. "+
			"%s is here, blocking the way. "+
			"Write 2-3 sentences of ominous atmosphere. "+
			"Describe the boss's presence dramatically. "+
			"Do NOT mention exits or how to leave. Second person.",
		origin, s.RoomName, s.RoomHint, s.BossName)
}

func combatRoundPrompt(s Scene) string {
	return fmt.Sprintf(
		"The player struck %s with the %s for %d damage. "+
			"%s retaliated with %s for %d damage. "+
			"Player HP is now %d. %s HP is now %d. "+
			"Write exactly 2 atmospheric sentences describing this exchange. "+
			"Second person. No game mechanics.",
		s.BossName, s.ItemName, s.PlayerDamage,
		s.BossName, s.SkillName, s.BossDamage,
		s.PlayerHP, s.BossName, s.BossHP)
}
