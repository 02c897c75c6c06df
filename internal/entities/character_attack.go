package entities

import (
	"fmt"
	"strings"
)

// CombatResult carries a roll total and a human-readable breakdown of its
// components. A Result of 0 with a breakdown message signals a failed
// precondition (empty slot, no resource points), never an error.
type CombatResult struct {
	Result    int    `json:"result"`
	Breakdown string `json:"breakdown"`
}

// levelBonus is the flat attack bonus applied to main-hand attacks only.
func (c *Character) levelBonus() int {
	return 2 + (c.Level-1)/4
}

// weaponModifier returns the governing-attribute modifier for the weapon.
func (c *Character) weaponModifier(weapon *Item) int {
	return Modifier(c.GetEffectiveStats().Get(weapon.GoverningAttribute))
}

// MainHandAttackRoll rolls d20 plus the weapon's governing attribute
// modifier, the level bonus, and enchantment. Returns 0 when the main
// hand is empty.
func (c *Character) MainHandAttackRoll() (CombatResult, error) {
	return c.attackRoll(SlotMainHand, true)
}

// OffHandAttackRoll rolls d20 plus the governing attribute modifier and
// enchantment. The level bonus never applies to the off hand.
func (c *Character) OffHandAttackRoll() (CombatResult, error) {
	return c.attackRoll(SlotOffHand, false)
}

func (c *Character) attackRoll(slot Slot, withLevelBonus bool) (CombatResult, error) {
	weapon := c.Inventory.GetEquippedItemBySlot(slot)
	if weapon == nil || weapon.Type != ItemTypeWeapon {
		return CombatResult{Result: 0, Breakdown: fmt.Sprintf("No weapon equipped in %s", slot)}, nil
	}

	roll, err := c.roller.Roll(1, 20, 0)
	if err != nil {
		return CombatResult{}, err
	}

	mod := c.weaponModifier(weapon)
	total := roll.Total + mod
	parts := []string{
		fmt.Sprintf("d20(%d)", roll.Total),
		fmt.Sprintf("%+d %s", mod, weapon.GoverningAttribute.Display()),
	}

	if withLevelBonus {
		bonus := c.levelBonus()
		total += bonus
		parts = append(parts, fmt.Sprintf("%+d level", bonus))
	}
	if weapon.Enchantment != 0 {
		total += weapon.Enchantment
		parts = append(parts, fmt.Sprintf("%+d enchantment", weapon.Enchantment))
	}

	return CombatResult{
		Result:    total,
		Breakdown: fmt.Sprintf("%s = %d", strings.Join(parts, " "), total),
	}, nil
}

// MainHandDamageRoll rolls the weapon die plus the governing attribute
// modifier and enchantment. Returns 0 when the main hand is empty.
func (c *Character) MainHandDamageRoll() (CombatResult, error) {
	return c.damageRoll(SlotMainHand, true)
}

// OffHandDamageRoll rolls the weapon die plus enchantment only; the
// attribute modifier is deliberately omitted for the off hand.
func (c *Character) OffHandDamageRoll() (CombatResult, error) {
	return c.damageRoll(SlotOffHand, false)
}

func (c *Character) damageRoll(slot Slot, withModifier bool) (CombatResult, error) {
	weapon := c.Inventory.GetEquippedItemBySlot(slot)
	if weapon == nil || weapon.Type != ItemTypeWeapon {
		return CombatResult{Result: 0, Breakdown: fmt.Sprintf("No weapon equipped in %s", slot)}, nil
	}

	roll, err := c.roller.Roll(1, weapon.DamageDie, 0)
	if err != nil {
		return CombatResult{}, err
	}

	total := roll.Total
	parts := []string{fmt.Sprintf("d%d(%d)", weapon.DamageDie, roll.Total)}

	if withModifier {
		mod := c.weaponModifier(weapon)
		total += mod
		parts = append(parts, fmt.Sprintf("%+d %s", mod, weapon.GoverningAttribute.Display()))
	}
	if weapon.Enchantment != 0 {
		total += weapon.Enchantment
		parts = append(parts, fmt.Sprintf("%+d enchantment", weapon.Enchantment))
	}

	return CombatResult{
		Result:    total,
		Breakdown: fmt.Sprintf("%s = %d", strings.Join(parts, " "), total),
	}, nil
}
