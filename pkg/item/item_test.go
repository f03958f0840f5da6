package item

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItem_Validate(t *testing.T) {
	tests := []struct {
		name    string
		item    Item
		wantErr string
	}{
		{"valid weapon", Item{ID: "axe", Name: "Axe", Kind: KindWeapon, Slot: SlotWeapon, Damage: 10}, ""},
		{"valid armor", Item{ID: "helm", Name: "Helm", Kind: KindArmor, Slot: SlotHead, Defense: 2}, ""},
		{"valid key", Item{ID: "key", Name: "Key", Kind: KindKey}, ""},
		{"valid potion", Item{ID: "vial", Name: "Vial", Kind: KindPotion, Heal: 10}, ""},
		{"missing id", Item{Name: "Axe", Kind: KindWeapon, Slot: SlotWeapon, Damage: 10}, "no id"},
		{"missing name", Item{ID: "axe", Kind: KindWeapon, Slot: SlotWeapon, Damage: 10}, "no name"},
		{"weapon in armor slot", Item{ID: "axe", Name: "Axe", Kind: KindWeapon, Slot: SlotHead, Damage: 10}, "weapon slot"},
		{"weapon without damage", Item{ID: "axe", Name: "Axe", Kind: KindWeapon, Slot: SlotWeapon}, "no damage"},
		{"sentinel cannot scatter", Item{ID: "fists", Name: "Fists", Kind: KindWeapon, Slot: SlotWeapon, Damage: 5, Sentinel: true, Scatter: true}, "scatter"},
		{"armor in weapon slot", Item{ID: "helm", Name: "Helm", Kind: KindArmor, Slot: SlotWeapon, Defense: 2}, "invalid slot"},
		{"armor without defense", Item{ID: "helm", Name: "Helm", Kind: KindArmor, Slot: SlotHead}, "no defense"},
		{"key with slot", Item{ID: "key", Name: "Key", Kind: KindKey, Slot: SlotHead}, "equip slot"},
		{"potion without heal", Item{ID: "vial", Name: "Vial", Kind: KindPotion}, "no heal"},
		{"sentinel armor", Item{ID: "helm", Name: "Helm", Kind: KindArmor, Slot: SlotHead, Defense: 2, Sentinel: true}, "sentinel"},
		{"unknown kind", Item{ID: "rock", Name: "Rock", Kind: "mineral"}, "unknown kind"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.item.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.wantErr)
			}
		})
	}
}

func TestSlots(t *testing.T) {
	assert.Len(t, ArmorSlots, 6)
	assert.Len(t, AllSlots, 7)
	assert.Equal(t, SlotWeapon, AllSlots[0], "weapon leads the slot order")
}

func testItems() []Item {
	return []Item{
		{ID: "fists", Name: "Bare Fists", Kind: KindWeapon, Slot: SlotWeapon, Damage: 5, Sentinel: true},
		{ID: "axe", Name: "Axe", Kind: KindWeapon, Slot: SlotWeapon, Damage: 25, Scatter: true},
		{ID: "helm", Name: "Helm", Kind: KindArmor, Slot: SlotHead, Defense: 2, Scatter: true},
		{ID: "vial", Name: "Vial", Kind: KindPotion, Heal: 10},
	}
}

func TestNewRegistry(t *testing.T) {
	reg, err := NewRegistry(testItems())
	require.NoError(t, err)

	assert.Equal(t, "fists", reg.SentinelID())
	assert.Equal(t, []string{"axe", "helm"}, reg.ScatterIDs())
	assert.Len(t, reg.All(), 4)

	it, ok := reg.Get("axe")
	require.True(t, ok)
	assert.Equal(t, 25, it.Damage)

	_, ok = reg.Get("missing")
	assert.False(t, ok)
}

func TestNewRegistry_SentinelRequired(t *testing.T) {
	items := testItems()
	items[0].Sentinel = false
	_, err := NewRegistry(items)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sentinel")
}

func TestNewRegistry_SingleSentinel(t *testing.T) {
	items := testItems()
	items[1].Sentinel = true
	items[1].Scatter = false
	_, err := NewRegistry(items)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sentinel")
}

func TestNewRegistry_DuplicateID(t *testing.T) {
	items := append(testItems(), Item{ID: "axe", Name: "Axe Again", Kind: KindWeapon, Slot: SlotWeapon, Damage: 1})
	_, err := NewRegistry(items)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")
}

func TestRegistry_NameFallsBackToID(t *testing.T) {
	reg, err := NewRegistry(testItems())
	require.NoError(t, err)

	assert.Equal(t, "Axe", reg.Name("axe"))
	assert.Equal(t, "mystery", reg.Name("mystery"))
}
