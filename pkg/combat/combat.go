// Package combat implements the pure turn-resolution algorithm. The
// resolver has no side effects; the engine applies the results.
package combat

import (
	"math/rand"

	"github.com/ewhitmore/blindkeep/pkg/boss"
	"github.com/ewhitmore/blindkeep/pkg/item"
)

// Outcome is the terminal judgment of an exchange, checked boss-first.
type Outcome int

const (
	Continue Outcome = iota
	Defeated
	PlayerDefeated
)

// RNG wraps a seeded math/rand source so combat is reproducible in
// tests and replays.
type RNG struct {
	src *rand.Rand
}

// NewRNG creates a deterministic RNG from a seed.
func NewRNG(seed int64) *RNG {
	return &RNG{src: rand.New(rand.NewSource(seed))}
}

// Pick returns a random index in [0, n).
func (r *RNG) Pick(n int) int {
	return r.src.Intn(n)
}

// Shuffle randomizes an indexable collection in place.
func (r *RNG) Shuffle(n int, swap func(i, j int)) {
	r.src.Shuffle(n, swap)
}

// Exchange is the result of one combat round: the player strikes, then
// the boss answers with one uniformly chosen skill. Both deltas are
// applied before terminal conditions are checked.
type Exchange struct {
	// PlayerDamage is dealt to the boss: the weapon's damage, no variance.
	PlayerDamage int

	Skill boss.Skill

	// RawBossDamage is the skill's damage before mitigation.
	RawBossDamage int

	// PlayerLoss is the damage applied to the player after equipment
	// mitigation: max(0, skill damage - total defense).
	PlayerLoss int
}

// Resolve computes one exchange for the given weapon and boss. defense
// is the player's total equipped defense at the moment of the exchange.
func Resolve(weapon *item.Item, b *boss.Boss, defense int, rng *RNG) Exchange {
	skill := b.Skills[rng.Pick(len(b.Skills))]

	loss := skill.Damage - defense
	if loss < 0 {
		loss = 0
	}

	return Exchange{
		PlayerDamage:  weapon.Damage,
		Skill:         skill,
		RawBossDamage: skill.Damage,
		PlayerLoss:    loss,
	}
}

// Judge checks terminal conditions after an exchange, boss first: a
// dead boss wins the round for the player even if both HP totals hit
// zero in the same exchange.
func Judge(bossHP, playerHP int) Outcome {
	if bossHP <= 0 {
		return Defeated
	}
	if playerHP <= 0 {
		return PlayerDefeated
	}
	return Continue
}
