// Package intent defines the structured interpretation of a spoken
// command and the validation that narrows a raw NLU result against the
// player's current legal options.
package intent

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Action is the closed set of player intents.
type Action string

const (
	ActionMove    Action = "move"
	ActionAttack  Action = "attack"
	ActionPickup  Action = "pickup"
	ActionUnknown Action = "unknown"
)

// Intent is a structured player command. Direction is set for move,
// ItemID for attack and pickup.
type Intent struct {
	Action    Action `json:"action" yaml:"action"`
	Direction string `json:"direction,omitempty" yaml:"direction,omitempty"`
	ItemID    string `json:"item_id,omitempty" yaml:"item_id,omitempty"`
}

// Unknown is the downgrade target for every repair failure.
var Unknown = Intent{Action: ActionUnknown}

// Option pairs an id with a display name for collaborator prompts.
type Option struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Context is the legal-options snapshot an intent is validated
// against. Exits and room items are populated in every mode, combat
// included: suppressing exits during combat silently breaks fleeing.
type Context struct {
	Exits     []string
	Weapons   []Option
	RoomItems []Option
}

var fold = cases.Lower(language.English)

// Validate narrows a raw NLU result to a legal intent, repairing what
// it can and downgrading the rest to unknown:
//
//   - move: the direction must be a current legal exit (case-folded).
//   - attack: a missing or unheld weapon defaults to the first held
//     weapon; with no weapons held the intent is unknown.
//   - pickup: the item must be on the current room's floor.
func Validate(raw Intent, ctx Context) Intent {
	switch raw.Action {
	case ActionMove:
		dir := fold.String(raw.Direction)
		for _, exit := range ctx.Exits {
			if fold.String(exit) == dir {
				return Intent{Action: ActionMove, Direction: exit}
			}
		}
		return Unknown

	case ActionAttack:
		for _, w := range ctx.Weapons {
			if w.ID == raw.ItemID {
				return Intent{Action: ActionAttack, ItemID: w.ID}
			}
		}
		if len(ctx.Weapons) > 0 {
			return Intent{Action: ActionAttack, ItemID: ctx.Weapons[0].ID}
		}
		return Unknown

	case ActionPickup:
		for _, it := range ctx.RoomItems {
			if it.ID == raw.ItemID {
				return Intent{Action: ActionPickup, ItemID: it.ID}
			}
		}
		return Unknown

	default:
		return Unknown
	}
}
