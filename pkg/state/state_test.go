package state

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ewhitmore/blindkeep/pkg/item"
)

func TestNew_Defaults(t *testing.T) {
	gs := New("hall", "fists")

	assert.Equal(t, "hall", gs.Player.CurrentRoom)
	assert.Equal(t, DefaultMaxHP, gs.Player.HP)
	assert.Equal(t, DefaultMaxHP, gs.Player.MaxHP)
	assert.Equal(t, "fists", gs.Player.Equipped[item.SlotWeapon])
	for _, slot := range item.ArmorSlots {
		assert.Empty(t, gs.Player.Equipped[slot])
	}
	assert.Empty(t, gs.Player.Bag)
	assert.Empty(t, gs.World.ClearedBosses)
}

func TestNormalize_RepairsLoadedState(t *testing.T) {
	// A hand-edited or older save may miss maps and the weapon slot.
	var gs GameState
	require.NoError(t, json.Unmarshal([]byte(`{"player":{"current_room":"hall","hp":40}}`), &gs))

	gs.Normalize("fists")

	assert.Equal(t, "fists", gs.Player.Equipped[item.SlotWeapon], "weapon slot is never empty")
	assert.Equal(t, DefaultMaxHP, gs.Player.MaxHP)
	assert.NotNil(t, gs.Player.Bag)
	assert.NotNil(t, gs.World.RoomItems)
	assert.NotNil(t, gs.World.BossHP)
	assert.NotNil(t, gs.World.UnlockedRooms)
	for _, slot := range item.AllSlots {
		_, ok := gs.Player.Equipped[slot]
		assert.True(t, ok, "slot %s present", slot)
	}
}

func TestEquip_ReturnsDisplaced(t *testing.T) {
	gs := New("hall", "fists")

	displaced := gs.Equip(item.SlotWeapon, "axe")
	assert.Equal(t, "fists", displaced)
	assert.Equal(t, "axe", gs.Player.Equipped[item.SlotWeapon])

	displaced = gs.Equip(item.SlotHead, "helm")
	assert.Empty(t, displaced)
}

func TestAddToBag_Capacity(t *testing.T) {
	gs := New("hall", "fists")

	assert.True(t, gs.AddToBag("a", 2))
	assert.True(t, gs.AddToBag("b", 2))
	assert.False(t, gs.AddToBag("c", 2), "bag at capacity")
	assert.Equal(t, []string{"a", "b"}, gs.Player.Bag)
}

func TestRemoveFromInventory_SlotsBeforeBag(t *testing.T) {
	gs := New("hall", "fists")
	gs.Equip(item.SlotHead, "helm")
	gs.AddToBag("helm", 8)

	require.True(t, gs.RemoveFromInventory("helm"))
	assert.Empty(t, gs.Player.Equipped[item.SlotHead], "equipped copy goes first")
	assert.Equal(t, []string{"helm"}, gs.Player.Bag)

	require.True(t, gs.RemoveFromInventory("helm"))
	assert.Empty(t, gs.Player.Bag)

	assert.False(t, gs.RemoveFromInventory("helm"))
}

func TestHealAndDamage_Clamped(t *testing.T) {
	gs := New("hall", "fists")

	gs.Damage(30)
	assert.Equal(t, 70, gs.Player.HP)

	assert.Equal(t, 30, gs.Heal(50), "heal reports the actual gain")
	assert.Equal(t, DefaultMaxHP, gs.Player.HP)
	assert.Equal(t, 0, gs.Heal(10), "no gain at full health")

	gs.Damage(500)
	assert.Equal(t, 0, gs.Player.HP, "floored at zero")
}

func TestTotalDefense_SumsArmorOnly(t *testing.T) {
	reg, err := item.NewRegistry([]item.Item{
		{ID: "fists", Name: "Fists", Kind: item.KindWeapon, Slot: item.SlotWeapon, Damage: 5, Sentinel: true},
		{ID: "helm", Name: "Helm", Kind: item.KindArmor, Slot: item.SlotHead, Defense: 3},
		{ID: "mail", Name: "Mail", Kind: item.KindArmor, Slot: item.SlotTorso, Defense: 5},
	})
	require.NoError(t, err)

	gs := New("hall", "fists")
	assert.Equal(t, 0, gs.TotalDefense(reg))

	gs.Equip(item.SlotHead, "helm")
	gs.Equip(item.SlotTorso, "mail")
	assert.Equal(t, 8, gs.TotalDefense(reg))
}

func TestHeldWeapons(t *testing.T) {
	reg, err := item.NewRegistry([]item.Item{
		{ID: "fists", Name: "Fists", Kind: item.KindWeapon, Slot: item.SlotWeapon, Damage: 5, Sentinel: true},
		{ID: "helm", Name: "Helm", Kind: item.KindArmor, Slot: item.SlotHead, Defense: 3},
	})
	require.NoError(t, err)

	gs := New("hall", "fists")
	gs.Equip(item.SlotHead, "helm")
	assert.Equal(t, []string{"fists"}, gs.HeldWeapons(reg))
}

func TestBossHP_InitializesOnFirstQuery(t *testing.T) {
	gs := New("hall", "fists")

	assert.Equal(t, 80, gs.BossHP("warden", 80))
	gs.SetBossHP("warden", 33)
	assert.Equal(t, 33, gs.BossHP("warden", 80), "stored value wins over max")
}

func TestBossClearing(t *testing.T) {
	gs := New("hall", "fists")

	assert.False(t, gs.IsBossCleared("warden"))
	gs.MarkBossCleared("warden")
	gs.MarkBossCleared("warden")
	assert.Equal(t, []string{"warden"}, gs.World.ClearedBosses, "recorded once")
	assert.True(t, gs.IsBossCleared("warden"))
}

func TestRoomItems(t *testing.T) {
	gs := New("hall", "fists")
	assert.True(t, gs.NeedsScatter())

	gs.AddRoomItem("hall", "axe")
	gs.AddRoomItem("hall", "helm")
	assert.False(t, gs.NeedsScatter())

	got := gs.RoomItems("hall")
	got[0] = "tampered"
	assert.Equal(t, []string{"axe", "helm"}, gs.RoomItems("hall"), "returned slice is a copy")

	gs.RemoveRoomItem("hall", "axe")
	assert.Equal(t, []string{"helm"}, gs.RoomItems("hall"))

	gs.RemoveRoomItem("hall", "ghost")
	assert.Equal(t, []string{"helm"}, gs.RoomItems("hall"))
}

func TestUnlockedRooms(t *testing.T) {
	gs := New("hall", "fists")

	assert.False(t, gs.IsUnlocked("vault"))
	gs.MarkUnlocked("vault")
	gs.MarkUnlocked("vault")
	assert.True(t, gs.IsUnlocked("vault"))
	assert.Equal(t, []string{"vault"}, gs.World.UnlockedRooms)
}

func TestReset(t *testing.T) {
	gs := New("hall", "fists")
	gs.MovePlayer("lair")
	gs.Damage(90)
	gs.MarkBossCleared("warden")
	gs.AddToBag("key", 8)

	gs.Reset("hall", "fists")

	assert.Equal(t, "hall", gs.Player.CurrentRoom)
	assert.Equal(t, DefaultMaxHP, gs.Player.HP)
	assert.Empty(t, gs.Player.Bag)
	assert.Empty(t, gs.World.ClearedBosses)
}

func TestSaveDocumentRoundTrip(t *testing.T) {
	gs := New("hall", "fists")
	gs.MovePlayer("lair")
	gs.SetBossHP("warden", 12)
	gs.AddRoomItem("mid", "axe")
	gs.SetLastAction("moved north")

	data, err := json.Marshal(gs)
	require.NoError(t, err)

	var back GameState
	require.NoError(t, json.Unmarshal(data, &back))
	back.Normalize("fists")
	assert.Equal(t, gs.Player, back.Player)
	assert.Equal(t, gs.World, back.World)
}
