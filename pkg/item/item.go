package item

import "fmt"

// Kind is the closed set of item categories. Pickup handling switches
// exhaustively on it; there is no free-form item type.
type Kind string

const (
	KindWeapon Kind = "weapon"
	KindArmor  Kind = "armor"
	KindKey    Kind = "key"
	KindPotion Kind = "potion"
)

// Slot identifies one of the seven fixed equipment positions.
type Slot string

const (
	SlotWeapon   Slot = "weapon"
	SlotHead     Slot = "head"
	SlotTorso    Slot = "torso"
	SlotLeftArm  Slot = "left_arm"
	SlotRightArm Slot = "right_arm"
	SlotLegs     Slot = "legs"
	SlotFeet     Slot = "feet"
)

// ArmorSlots lists the six non-weapon positions in display order.
var ArmorSlots = []Slot{SlotHead, SlotTorso, SlotLeftArm, SlotRightArm, SlotLegs, SlotFeet}

// AllSlots lists every equipment slot, weapon first.
var AllSlots = append([]Slot{SlotWeapon}, ArmorSlots...)

// Item is a static item definition. Only the fields relevant to the
// item's Kind are populated; Validate enforces that.
type Item struct {
	ID      string `json:"id" yaml:"id"`
	Name    string `json:"name" yaml:"name"`
	Kind    Kind   `json:"kind" yaml:"kind"`
	Slot    Slot   `json:"slot,omitempty" yaml:"slot,omitempty"`
	Damage  int    `json:"damage,omitempty" yaml:"damage,omitempty"`
	Defense int    `json:"defense,omitempty" yaml:"defense,omitempty"`
	Heal    int    `json:"heal,omitempty" yaml:"heal,omitempty"`

	// Scatter marks the item as eligible for first-run room placement.
	Scatter bool `json:"scatter,omitempty" yaml:"scatter,omitempty"`

	// Sentinel marks the default weapon that always occupies the weapon
	// slot. It can never be dropped or scattered.
	Sentinel bool `json:"sentinel,omitempty" yaml:"sentinel,omitempty"`

	// Rarity is cosmetic only; the narrator may mention it.
	Rarity string `json:"rarity,omitempty" yaml:"rarity,omitempty"`
}

// Validate checks kind-specific field consistency.
func (i *Item) Validate() error {
	if i.ID == "" {
		return fmt.Errorf("item has no id")
	}
	if i.Name == "" {
		return fmt.Errorf("item %q has no name", i.ID)
	}

	switch i.Kind {
	case KindWeapon:
		if i.Slot != SlotWeapon {
			return fmt.Errorf("weapon %q must use the weapon slot, got %q", i.ID, i.Slot)
		}
		if i.Damage <= 0 {
			return fmt.Errorf("weapon %q has no damage", i.ID)
		}
		if i.Sentinel && i.Scatter {
			return fmt.Errorf("sentinel weapon %q cannot be scatter-eligible", i.ID)
		}
	case KindArmor:
		if !isArmorSlot(i.Slot) {
			return fmt.Errorf("armor %q has invalid slot %q", i.ID, i.Slot)
		}
		if i.Defense <= 0 {
			return fmt.Errorf("armor %q has no defense", i.ID)
		}
	case KindKey:
		if i.Slot != "" {
			return fmt.Errorf("key %q cannot have an equip slot", i.ID)
		}
	case KindPotion:
		if i.Slot != "" {
			return fmt.Errorf("potion %q cannot have an equip slot", i.ID)
		}
		if i.Heal <= 0 {
			return fmt.Errorf("potion %q has no heal amount", i.ID)
		}
	default:
		return fmt.Errorf("item %q has unknown kind %q", i.ID, i.Kind)
	}

	if i.Sentinel && i.Kind != KindWeapon {
		return fmt.Errorf("item %q: only a weapon can be the sentinel", i.ID)
	}
	return nil
}

func isArmorSlot(s Slot) bool {
	for _, a := range ArmorSlots {
		if s == a {
			return true
		}
	}
	return false
}
