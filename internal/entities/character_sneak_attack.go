package entities

import (
	"fmt"
	"strings"
)

// SneakAttackMainHand spends one finesse point and rolls main-hand damage
// with one bonus d8 per finesse point remaining after the spend.
func (c *Character) SneakAttackMainHand() (CombatResult, error) {
	return c.sneakAttack(SlotMainHand, true)
}

// SneakAttackOffHand is the off-hand variant: the attribute modifier is
// omitted, matching the plain off-hand damage roll.
func (c *Character) SneakAttackOffHand() (CombatResult, error) {
	return c.sneakAttack(SlotOffHand, false)
}

func (c *Character) sneakAttack(slot Slot, withModifier bool) (CombatResult, error) {
	weapon := c.Inventory.GetEquippedItemBySlot(slot)
	if weapon == nil || weapon.Type != ItemTypeWeapon {
		return CombatResult{Result: 0, Breakdown: fmt.Sprintf("No weapon equipped in %s", slot)}, nil
	}
	if !c.SpendFinessePoint() {
		return CombatResult{Result: 0, Breakdown: "No finesse points available"}, nil
	}

	return c.rollSneakDamage(weapon, withModifier, 1, c.Finesse.Current)
}

// AssassinationMainHand is a critical-hit variant of the sneak attack: no
// finesse point is spent, the weapon die count doubles, and the bonus dice
// count is twice the current finesse points.
func (c *Character) AssassinationMainHand() (CombatResult, error) {
	return c.assassination(SlotMainHand, true)
}

// AssassinationOffHand is the off-hand assassination variant.
func (c *Character) AssassinationOffHand() (CombatResult, error) {
	return c.assassination(SlotOffHand, false)
}

func (c *Character) assassination(slot Slot, withModifier bool) (CombatResult, error) {
	weapon := c.Inventory.GetEquippedItemBySlot(slot)
	if weapon == nil || weapon.Type != ItemTypeWeapon {
		return CombatResult{Result: 0, Breakdown: fmt.Sprintf("No weapon equipped in %s", slot)}, nil
	}
	if c.Finesse.Current == 0 {
		return CombatResult{Result: 0, Breakdown: "No finesse points available"}, nil
	}

	return c.rollSneakDamage(weapon, withModifier, 2, 2*c.Finesse.Current)
}

// rollSneakDamage rolls weaponDice copies of the weapon die plus
// sneakDice bonus d8s and assembles the component breakdown.
func (c *Character) rollSneakDamage(weapon *Item, withModifier bool, weaponDice, sneakDice int) (CombatResult, error) {
	weaponRoll, err := c.roller.Roll(weaponDice, weapon.DamageDie, 0)
	if err != nil {
		return CombatResult{}, err
	}

	total := weaponRoll.Total
	parts := []string{fmt.Sprintf("%dd%d(%s) weapon", weaponDice, weapon.DamageDie, joinRolls(weaponRoll.Rolls))}

	if withModifier {
		mod := c.weaponModifier(weapon)
		total += mod
		parts = append(parts, fmt.Sprintf("%+d %s", mod, weapon.GoverningAttribute.Display()))
	}
	if weapon.Enchantment != 0 {
		total += weapon.Enchantment
		parts = append(parts, fmt.Sprintf("%+d enchantment", weapon.Enchantment))
	}

	if sneakDice > 0 {
		sneakRoll, err := c.roller.Roll(sneakDice, 8, 0)
		if err != nil {
			return CombatResult{}, err
		}
		total += sneakRoll.Total
		parts = append(parts, fmt.Sprintf("+%dd8(%s) sneak", sneakDice, joinRolls(sneakRoll.Rolls)))
	}

	return CombatResult{
		Result:    total,
		Breakdown: fmt.Sprintf("%s = %d", strings.Join(parts, " "), total),
	}, nil
}

func joinRolls(rolls []int) string {
	parts := make([]string, len(rolls))
	for i, roll := range rolls {
		parts[i] = fmt.Sprintf("%d", roll)
	}
	return strings.Join(parts, "+")
}
