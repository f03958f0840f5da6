package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func optionsCtx() Context {
	return Context{
		Exits: []string{"east", "north"},
		Weapons: []Option{
			{ID: "fists", Name: "Bare Fists"},
			{ID: "axe", Name: "Axe"},
		},
		RoomItems: []Option{
			{ID: "helm", Name: "Helm"},
		},
	}
}

func TestValidate_Move(t *testing.T) {
	tests := []struct {
		name string
		raw  Intent
		want Intent
	}{
		{"exact exit", Intent{Action: ActionMove, Direction: "north"}, Intent{Action: ActionMove, Direction: "north"}},
		{"case folded", Intent{Action: ActionMove, Direction: "North"}, Intent{Action: ActionMove, Direction: "north"}},
		{"not an exit", Intent{Action: ActionMove, Direction: "west"}, Unknown},
		{"empty direction", Intent{Action: ActionMove}, Unknown},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Validate(tc.raw, optionsCtx()))
		})
	}
}

func TestValidate_Attack(t *testing.T) {
	ctx := optionsCtx()

	got := Validate(Intent{Action: ActionAttack, ItemID: "axe"}, ctx)
	assert.Equal(t, Intent{Action: ActionAttack, ItemID: "axe"}, got)

	// An unheld or missing weapon falls back to the first held one
	// rather than refusing the swing.
	got = Validate(Intent{Action: ActionAttack, ItemID: "sword"}, ctx)
	assert.Equal(t, Intent{Action: ActionAttack, ItemID: "fists"}, got)

	got = Validate(Intent{Action: ActionAttack}, ctx)
	assert.Equal(t, Intent{Action: ActionAttack, ItemID: "fists"}, got)

	ctx.Weapons = nil
	assert.Equal(t, Unknown, Validate(Intent{Action: ActionAttack, ItemID: "axe"}, ctx))
}

func TestValidate_Pickup(t *testing.T) {
	ctx := optionsCtx()

	got := Validate(Intent{Action: ActionPickup, ItemID: "helm"}, ctx)
	assert.Equal(t, Intent{Action: ActionPickup, ItemID: "helm"}, got)

	// Only what is actually on the floor can be taken.
	assert.Equal(t, Unknown, Validate(Intent{Action: ActionPickup, ItemID: "axe"}, ctx))
	assert.Equal(t, Unknown, Validate(Intent{Action: ActionPickup}, ctx))
}

func TestValidate_UnknownActions(t *testing.T) {
	assert.Equal(t, Unknown, Validate(Intent{Action: "dance"}, optionsCtx()))
	assert.Equal(t, Unknown, Validate(Intent{}, optionsCtx()))
	assert.Equal(t, Unknown, Validate(Unknown, optionsCtx()))
}
