package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

// TemplateNarrator renders scenes from fixed phrasing, no model and no
// audio. It is the fallback when no LLM is configured, and it keeps the
// facts of a beat exact where an LLM might drift.
type TemplateNarrator struct{}

var _ Narrator = (*TemplateNarrator)(nil)

// NewTemplateNarrator creates the offline narrator.
func NewTemplateNarrator() *TemplateNarrator {
	return &TemplateNarrator{}
}

func (n *TemplateNarrator) Narrate(ctx context.Context, s Scene) (*Narration, error) {
	return &Narration{Text: renderScene(s)}, nil
}

func renderScene(s Scene) string {
	switch s.Kind {
	case SceneRoom:
		var b strings.Builder
		fmt.Fprintf(&b, "You are in %s. %s.", s.RoomName, s.RoomHint)
		if len(s.Exits) > 0 {
			dirs := make([]string, 0, len(s.Exits))
			for dir := range s.Exits {
				dirs = append(dirs, dir)
			}
			sort.Strings(dirs)
			parts := make([]string, 0, len(dirs))
			for _, dir := range dirs {
				parts = append(parts, dir+" to "+s.Exits[dir])
			}
			fmt.Fprintf(&b, " Ways out: %s.", strings.Join(parts, ", "))
		}
		if len(s.RoomItems) > 0 {
			fmt.Fprintf(&b, " On the floor: %s.", strings.Join(s.RoomItems, ", "))
		}
		return b.String()
	case SceneBossEntry:
		return fmt.Sprintf("You have entered %s. %s stirs in the dark, blocking your way.", s.RoomName, s.BossName)
	case SceneCombatRound:
		return fmt.Sprintf("You strike %s with the %s for %d. It answers with %s for %d. You stand at %d; it at %d.",
			s.BossName, s.ItemName, s.PlayerDamage, s.SkillName, s.BossDamage, s.PlayerHP, s.BossHP)
	case SceneBossDefeat:
		return fmt.Sprintf("%s collapses. The silence after is worse than the noise.", s.BossName)
	case ScenePickup:
		return fmt.Sprintf("Your hands find the %s.", s.ItemName)
	case SceneExitBlocked:
		return "The gate will not open. Something still lives in the keep, and the gate knows it."
	case SceneLocked:
		return fmt.Sprintf("The way into %s is locked. Your fingers find a keyhole.", s.RoomName)
	case SceneUnlocked:
		return fmt.Sprintf("The %s turns, and the way into %s grinds open.", s.ItemName, s.RoomName)
	case SceneVictory:
		return fmt.Sprintf("You step through %s into open air. The keep lets you go.", s.RoomName)
	default:
		return "Something shifts in the dark."
	}
}
