// Package state holds the authoritative, mutable game state. Only the
// engine mutates it, and every mutation is followed by a durable save.
package state

import (
	"github.com/ewhitmore/blindkeep/pkg/item"
)

// DefaultMaxHP is the player's starting and maximum health.
const DefaultMaxHP = 100

// DefaultBagCapacity bounds the key-item bag unless configured otherwise.
const DefaultBagCapacity = 8

// Player is the player's portion of the save document.
type Player struct {
	CurrentRoom string `json:"current_room"`
	HP          int    `json:"hp"`
	MaxHP       int    `json:"max_hp"`

	// Equipped maps each of the seven slots to an item id, empty when
	// the slot is unoccupied. The weapon slot is never empty.
	Equipped map[item.Slot]string `json:"equipped"`

	// Bag holds key items only, in pickup order.
	Bag []string `json:"bag"`

	LastAction string `json:"last_action,omitempty"`
}

// World is the world's portion of the save document.
type World struct {
	ClearedBosses []string            `json:"cleared_bosses"`
	RoomItems     map[string][]string `json:"room_items"`
	BossHP        map[string]int      `json:"boss_hp,omitempty"`
	UnlockedRooms []string            `json:"unlocked_rooms,omitempty"`
}

// GameState is the complete persisted document.
type GameState struct {
	Player Player `json:"player"`
	World  World  `json:"world"`
}

// CombatSession is the transient record of an active boss encounter.
// It is derived, never persisted: on load, an uncleared boss room as
// the current room re-creates it.
type CombatSession struct {
	BossID string
	RoomID string
	BossHP int
}

// New returns the default state: full health at the home room with the
// sentinel weapon equipped and every other slot empty.
func New(homeRoomID, sentinelWeaponID string) *GameState {
	gs := &GameState{
		Player: Player{
			CurrentRoom: homeRoomID,
			HP:          DefaultMaxHP,
			MaxHP:       DefaultMaxHP,
			Equipped:    make(map[item.Slot]string, len(item.AllSlots)),
			Bag:         []string{},
			LastAction:  "game started",
		},
		World: World{
			ClearedBosses: []string{},
			RoomItems:     map[string][]string{},
			BossHP:        map[string]int{},
			UnlockedRooms: []string{},
		},
	}
	for _, slot := range item.AllSlots {
		gs.Player.Equipped[slot] = ""
	}
	gs.Player.Equipped[item.SlotWeapon] = sentinelWeaponID
	return gs
}

// Reset overwrites the state with defaults. Used on player defeat.
func (gs *GameState) Reset(homeRoomID, sentinelWeaponID string) {
	*gs = *New(homeRoomID, sentinelWeaponID)
}

// Normalize repairs a freshly-unmarshaled state: nil maps become empty,
// missing slots are added, and the weapon slot invariant is restored.
func (gs *GameState) Normalize(sentinelWeaponID string) {
	if gs.Player.Equipped == nil {
		gs.Player.Equipped = make(map[item.Slot]string, len(item.AllSlots))
	}
	for _, slot := range item.AllSlots {
		if _, ok := gs.Player.Equipped[slot]; !ok {
			gs.Player.Equipped[slot] = ""
		}
	}
	if gs.Player.Equipped[item.SlotWeapon] == "" {
		gs.Player.Equipped[item.SlotWeapon] = sentinelWeaponID
	}
	if gs.Player.Bag == nil {
		gs.Player.Bag = []string{}
	}
	if gs.Player.MaxHP <= 0 {
		gs.Player.MaxHP = DefaultMaxHP
	}
	if gs.World.ClearedBosses == nil {
		gs.World.ClearedBosses = []string{}
	}
	if gs.World.RoomItems == nil {
		gs.World.RoomItems = map[string][]string{}
	}
	if gs.World.BossHP == nil {
		gs.World.BossHP = map[string]int{}
	}
	if gs.World.UnlockedRooms == nil {
		gs.World.UnlockedRooms = []string{}
	}
}

// MovePlayer updates the current room. Legality is the engine's job.
func (gs *GameState) MovePlayer(roomID string) {
	gs.Player.CurrentRoom = roomID
}

// SetLastAction records a short description for narration context.
func (gs *GameState) SetLastAction(desc string) {
	gs.Player.LastAction = desc
}

// Equip places itemID into slot and returns the previous occupant,
// empty if the slot was free. The caller decides what happens to a
// displaced item; the sentinel weapon is simply discarded by callers.
func (gs *GameState) Equip(slot item.Slot, itemID string) (displaced string) {
	displaced = gs.Player.Equipped[slot]
	gs.Player.Equipped[slot] = itemID
	return displaced
}

// AddToBag appends itemID unless the bag is at capacity.
func (gs *GameState) AddToBag(itemID string, capacity int) bool {
	if len(gs.Player.Bag) >= capacity {
		return false
	}
	gs.Player.Bag = append(gs.Player.Bag, itemID)
	return true
}

// RemoveFromInventory removes the first match for itemID, searching
// equipped slots (weapon first, then armor) before the bag.
func (gs *GameState) RemoveFromInventory(itemID string) bool {
	for _, slot := range item.AllSlots {
		if gs.Player.Equipped[slot] == itemID {
			gs.Player.Equipped[slot] = ""
			return true
		}
	}
	for i, id := range gs.Player.Bag {
		if id == itemID {
			gs.Player.Bag = append(gs.Player.Bag[:i], gs.Player.Bag[i+1:]...)
			return true
		}
	}
	return false
}

// Heal raises HP by up to amount, clamped at MaxHP, and returns the
// actual gain (zero when already full).
func (gs *GameState) Heal(amount int) int {
	before := gs.Player.HP
	gs.Player.HP += amount
	if gs.Player.HP > gs.Player.MaxHP {
		gs.Player.HP = gs.Player.MaxHP
	}
	return gs.Player.HP - before
}

// Damage lowers HP by amount, floored at zero.
func (gs *GameState) Damage(amount int) {
	gs.Player.HP -= amount
	if gs.Player.HP < 0 {
		gs.Player.HP = 0
	}
}

// TotalDefense sums defense across all equipped non-weapon slots.
func (gs *GameState) TotalDefense(items *item.Registry) int {
	total := 0
	for _, slot := range item.ArmorSlots {
		id := gs.Player.Equipped[slot]
		if id == "" {
			continue
		}
		if it, ok := items.Get(id); ok {
			total += it.Defense
		}
	}
	return total
}

// FlatInventory returns everything the player holds: occupied equip
// slots in slot order, then the bag.
func (gs *GameState) FlatInventory() []string {
	var out []string
	for _, slot := range item.AllSlots {
		if id := gs.Player.Equipped[slot]; id != "" {
			out = append(out, id)
		}
	}
	out = append(out, gs.Player.Bag...)
	return out
}

// HeldWeapons filters the flat inventory down to weapon items.
func (gs *GameState) HeldWeapons(items *item.Registry) []string {
	var out []string
	for _, id := range gs.FlatInventory() {
		if it, ok := items.Get(id); ok && it.Kind == item.KindWeapon {
			out = append(out, id)
		}
	}
	return out
}

// HasInBag reports whether itemID is in the bag.
func (gs *GameState) HasInBag(itemID string) bool {
	for _, id := range gs.Player.Bag {
		if id == itemID {
			return true
		}
	}
	return false
}

// IsBossCleared reports whether bossID has been defeated.
func (gs *GameState) IsBossCleared(bossID string) bool {
	for _, id := range gs.World.ClearedBosses {
		if id == bossID {
			return true
		}
	}
	return false
}

// MarkBossCleared records a boss defeat exactly once.
func (gs *GameState) MarkBossCleared(bossID string) {
	if !gs.IsBossCleared(bossID) {
		gs.World.ClearedBosses = append(gs.World.ClearedBosses, bossID)
	}
}

// BossHP returns the persisted HP for bossID, initialising to maxHP on
// first query so mid-combat restarts resume at the right value.
func (gs *GameState) BossHP(bossID string, maxHP int) int {
	if hp, ok := gs.World.BossHP[bossID]; ok {
		return hp
	}
	gs.World.BossHP[bossID] = maxHP
	return maxHP
}

// SetBossHP records a boss's current HP.
func (gs *GameState) SetBossHP(bossID string, hp int) {
	gs.World.BossHP[bossID] = hp
}

// RoomItems returns the item ids on the floor of roomID.
func (gs *GameState) RoomItems(roomID string) []string {
	items := gs.World.RoomItems[roomID]
	out := make([]string, len(items))
	copy(out, items)
	return out
}

// AddRoomItem drops itemID onto the floor of roomID.
func (gs *GameState) AddRoomItem(roomID, itemID string) {
	gs.World.RoomItems[roomID] = append(gs.World.RoomItems[roomID], itemID)
}

// RemoveRoomItem removes the first match of itemID from roomID's floor.
func (gs *GameState) RemoveRoomItem(roomID, itemID string) {
	items := gs.World.RoomItems[roomID]
	for i, id := range items {
		if id == itemID {
			gs.World.RoomItems[roomID] = append(items[:i], items[i+1:]...)
			return
		}
	}
}

// NeedsScatter reports whether room items have never been placed.
func (gs *GameState) NeedsScatter() bool {
	return len(gs.World.RoomItems) == 0
}

// IsUnlocked reports whether a locked room has been opened.
func (gs *GameState) IsUnlocked(roomID string) bool {
	for _, id := range gs.World.UnlockedRooms {
		if id == roomID {
			return true
		}
	}
	return false
}

// MarkUnlocked records a room as permanently opened.
func (gs *GameState) MarkUnlocked(roomID string) {
	if !gs.IsUnlocked(roomID) {
		gs.World.UnlockedRooms = append(gs.World.UnlockedRooms, roomID)
	}
}
