package entities

import (
	"fmt"

	"github.com/hearthvale/charsheet/internal/uuid"
)

// ItemType classifies a piece of equipment.
type ItemType string

const (
	ItemTypeWeapon ItemType = "weapon"
	ItemTypeArmor  ItemType = "armor"
	ItemTypeShield ItemType = "shield"
)

// ItemSubtype refines the classification: weapon handedness or armor weight.
type ItemSubtype string

const (
	SubtypeOneHanded ItemSubtype = "one-handed"
	SubtypeTwoHanded ItemSubtype = "two-handed"
	SubtypeFinesse   ItemSubtype = "finesse"
	SubtypeRanged    ItemSubtype = "ranged"

	SubtypeLightArmor  ItemSubtype = "light"
	SubtypeMediumArmor ItemSubtype = "medium"
	SubtypeHeavyArmor  ItemSubtype = "heavy"
)

// Slot identifies an exclusive equipment position.
type Slot string

const (
	SlotMainHand Slot = "main-hand"
	SlotOffHand  Slot = "off-hand"
	SlotArmor    Slot = "armor"
	SlotShield   Slot = "shield"
	SlotNone     Slot = "none"
)

// Item represents one piece of equipment a character possesses.
type Item struct {
	ID      string      `json:"id"`
	Name    string      `json:"name"`
	Type    ItemType    `json:"type"`
	Subtype ItemSubtype `json:"subtype"`

	// DamageDie is the weapon damage die size; zero for non-weapons.
	DamageDie int `json:"damage_die,omitempty"`

	// GoverningAttribute drives attack and damage modifiers for weapons.
	GoverningAttribute Attribute `json:"governing_attribute,omitempty"`

	ACBonus      int   `json:"ac_bonus,omitempty"`
	Requirements Stats `json:"requirements,omitempty"`
	Enchantment  int   `json:"enchantment,omitempty"`

	// StatBonuses are flat attribute bonuses granted while equipped.
	StatBonuses Stats `json:"stat_bonuses,omitempty"`

	Equipped bool `json:"equipped"`
	Slot     Slot `json:"slot,omitempty"`
}

// IsTwoHanded reports whether the weapon occupies both hand slots.
// Ranged weapons are handled as two-handed.
func (i *Item) IsTwoHanded() bool {
	return i.Type == ItemTypeWeapon && (i.Subtype == SubtypeTwoHanded || i.Subtype == SubtypeRanged)
}

// EquipResult reports the outcome of an equip attempt.
type EquipResult struct {
	Success bool
	Message string
}

// Inventory owns a character's items and their equip state. It holds a
// snapshot of the owning character's effective stats for requirement
// checks; the owner must push updates via SetCharacterStats.
type Inventory struct {
	items []*Item
	byID  map[string]*Item
	stats Stats
	idGen uuid.Generator
}

// NewInventory creates an empty inventory.
func NewInventory() *Inventory {
	return &Inventory{
		byID:  make(map[string]*Item),
		idGen: uuid.NewGoogleUUIDGenerator(),
	}
}

// SetIDGenerator overrides the item ID generator. Used by tests.
func (inv *Inventory) SetIDGenerator(gen uuid.Generator) {
	inv.idGen = gen
}

// AddItem adds an item to the inventory, assigning an ID if it has none,
// and returns it. Unequipped items always carry SlotNone so serialized
// forms are canonical regardless of how the item was constructed.
func (inv *Inventory) AddItem(item *Item) *Item {
	if item.ID == "" {
		item.ID = inv.idGen.New()
	}
	if !item.Equipped && item.Slot == "" {
		item.Slot = SlotNone
	}
	inv.items = append(inv.items, item)
	inv.byID[item.ID] = item
	return item
}

// RemoveItem removes an item by ID. Removing an unknown ID is a no-op.
func (inv *Inventory) RemoveItem(id string) {
	item, ok := inv.byID[id]
	if !ok {
		return
	}
	item.Equipped = false
	item.Slot = SlotNone
	delete(inv.byID, id)
	for i, it := range inv.items {
		if it.ID == id {
			inv.items = append(inv.items[:i], inv.items[i+1:]...)
			break
		}
	}
}

// Items returns all items in insertion order.
func (inv *Inventory) Items() []*Item {
	return inv.items
}

// GetItem returns the item with the given ID, nil if unknown.
func (inv *Inventory) GetItem(id string) *Item {
	return inv.byID[id]
}

// SetCharacterStats updates the attribute snapshot used for requirement
// checks. Must be called whenever the owner's effective stats change.
func (inv *Inventory) SetCharacterStats(stats Stats) {
	inv.stats = stats
}

// GetEquippedItemBySlot returns the item occupying the slot, nil if empty.
func (inv *Inventory) GetEquippedItemBySlot(slot Slot) *Item {
	for _, item := range inv.items {
		if item.Equipped && item.Slot == slot {
			return item
		}
	}
	return nil
}

// GetEquippedItemByType returns the first equipped item of the given type,
// nil if none.
func (inv *Inventory) GetEquippedItemByType(t ItemType) *Item {
	for _, item := range inv.items {
		if item.Equipped && item.Type == t {
			return item
		}
	}
	return nil
}

// GetEquippedWeapons returns the main-hand and off-hand occupants,
// either nilable.
func (inv *Inventory) GetEquippedWeapons() (mainHand, offHand *Item) {
	return inv.GetEquippedItemBySlot(SlotMainHand), inv.GetEquippedItemBySlot(SlotOffHand)
}

// UnequipItem clears the equipped flag and slot assignment. Other slots
// are untouched. Unknown IDs are a no-op.
func (inv *Inventory) UnequipItem(id string) {
	item, ok := inv.byID[id]
	if !ok {
		return
	}
	item.Equipped = false
	item.Slot = SlotNone
}

// EquipItem validates attribute requirements against the current stat
// snapshot, then places the item into its slot, displacing conflicting
// occupants per the slot rules.
func (inv *Inventory) EquipItem(id string) EquipResult {
	item, ok := inv.byID[id]
	if !ok {
		return EquipResult{Success: false, Message: fmt.Sprintf("Item %s not found", id)}
	}

	for _, attr := range Attributes() {
		required := item.Requirements.Get(attr)
		if required <= 0 {
			continue
		}
		if have := inv.stats.Get(attr); have < required {
			return EquipResult{
				Success: false,
				Message: fmt.Sprintf("Requires %d %s (you have %d)", required, attr.Display(), have),
			}
		}
	}

	switch item.Type {
	case ItemTypeArmor:
		inv.equipToSlot(item, SlotArmor)
	case ItemTypeShield:
		return inv.equipShield(item)
	case ItemTypeWeapon:
		if item.IsTwoHanded() {
			inv.equipTwoHanded(item)
		} else {
			inv.equipOneHanded(item)
		}
	default:
		return EquipResult{Success: false, Message: fmt.Sprintf("Cannot equip item of type %s", item.Type)}
	}

	return EquipResult{Success: true}
}

// equipToSlot places the item into the slot, displacing any occupant.
func (inv *Inventory) equipToSlot(item *Item, slot Slot) {
	if occupant := inv.GetEquippedItemBySlot(slot); occupant != nil && occupant.ID != item.ID {
		occupant.Equipped = false
		occupant.Slot = SlotNone
	}
	item.Equipped = true
	item.Slot = slot
}

// equipOneHanded resolves hand placement for one-handed and finesse
// weapons: main-hand if empty, else off-hand if empty, else the main-hand
// occupant is bumped. A two-handed weapon in the main hand conceptually
// fills the off hand too, so it is always bumped rather than paired with.
func (inv *Inventory) equipOneHanded(item *Item) {
	main := inv.GetEquippedItemBySlot(SlotMainHand)
	off := inv.GetEquippedItemBySlot(SlotOffHand)

	if main == nil || main.ID == item.ID {
		inv.equipToSlot(item, SlotMainHand)
		return
	}
	if main.IsTwoHanded() {
		inv.equipToSlot(item, SlotMainHand)
		return
	}
	if off == nil || off.ID == item.ID {
		inv.equipToSlot(item, SlotOffHand)
		return
	}
	inv.equipToSlot(item, SlotMainHand)
}

// equipTwoHanded clears both hand occupants and any shield, then takes
// the main hand alone.
func (inv *Inventory) equipTwoHanded(item *Item) {
	for _, slot := range []Slot{SlotMainHand, SlotOffHand, SlotShield} {
		if occupant := inv.GetEquippedItemBySlot(slot); occupant != nil && occupant.ID != item.ID {
			occupant.Equipped = false
			occupant.Slot = SlotNone
		}
	}
	item.Equipped = true
	item.Slot = SlotMainHand
}

// equipShield displaces any off-hand weapon and any prior shield. A
// two-handed weapon already in place wins: the shield equip is rejected,
// mirroring the rejection of pairing a second hand item with it.
func (inv *Inventory) equipShield(item *Item) EquipResult {
	if main := inv.GetEquippedItemBySlot(SlotMainHand); main != nil && main.IsTwoHanded() {
		return EquipResult{
			Success: false,
			Message: "Cannot equip a shield while wielding a two-handed weapon",
		}
	}

	if off := inv.GetEquippedItemBySlot(SlotOffHand); off != nil {
		off.Equipped = false
		off.Slot = SlotNone
	}
	inv.equipToSlot(item, SlotShield)
	return EquipResult{Success: true}
}

// TotalACBonus sums the AC bonuses of all equipped items.
func (inv *Inventory) TotalACBonus() int {
	total := 0
	for _, item := range inv.items {
		if item.Equipped {
			total += item.ACBonus
		}
	}
	return total
}

// EquippedStatBonuses sums the flat attribute bonuses of equipped items.
func (inv *Inventory) EquippedStatBonuses() Stats {
	var total Stats
	for _, item := range inv.items {
		if !item.Equipped {
			continue
		}
		for _, attr := range Attributes() {
			total.Add(attr, item.StatBonuses.Get(attr))
		}
	}
	return total
}
