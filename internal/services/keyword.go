package services

import (
	"context"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ewhitmore/blindkeep/pkg/intent"
)

var keywordFold = cases.Lower(language.English)

// KeywordParser is the offline IntentParser: plain token matching
// against the player's current options, no model behind it. It keeps
// typed play working when no LLM is configured or reachable.
type KeywordParser struct{}

var _ IntentParser = (*KeywordParser)(nil)

// NewKeywordParser creates the rule-based parser.
func NewKeywordParser() *KeywordParser {
	return &KeywordParser{}
}

var (
	attackWords = map[string]bool{"attack": true, "hit": true, "strike": true, "fight": true, "swing": true}
	pickupWords = map[string]bool{"take": true, "grab": true, "pickup": true, "pick": true, "get": true, "loot": true, "drink": true}
	moveWords   = map[string]bool{"go": true, "move": true, "walk": true, "head": true, "flee": true, "run": true}
)

func (p *KeywordParser) Parse(ctx context.Context, transcript string, ictx intent.Context) (intent.Intent, error) {
	words := strings.Fields(keywordFold.String(transcript))
	if len(words) == 0 {
		return intent.Unknown, nil
	}

	// A bare direction counts as a move.
	for _, w := range words {
		for _, exit := range ictx.Exits {
			if keywordFold.String(exit) == w {
				return intent.Validate(intent.Intent{Action: intent.ActionMove, Direction: exit}, ictx), nil
			}
		}
	}

	for _, w := range words {
		switch {
		case attackWords[w]:
			raw := intent.Intent{Action: intent.ActionAttack, ItemID: matchOption(words, ictx.Weapons)}
			return intent.Validate(raw, ictx), nil
		case pickupWords[w]:
			raw := intent.Intent{Action: intent.ActionPickup, ItemID: matchOption(words, ictx.RoomItems)}
			return intent.Validate(raw, ictx), nil
		case moveWords[w]:
			// Movement verb with no recognized direction.
			return intent.Unknown, nil
		}
	}
	return intent.Unknown, nil
}

// matchOption finds the option whose display name shares a word with
// the transcript, empty when nothing matches.
func matchOption(words []string, opts []intent.Option) string {
	for _, opt := range opts {
		nameWords := strings.Fields(keywordFold.String(opt.Name))
		for _, nw := range nameWords {
			for _, w := range words {
				if nw == w {
					return opt.ID
				}
			}
		}
	}
	return ""
}
