package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hearthvale/charsheet/internal/dice"
)

// newArmedCharacter builds a strength fighter with an enchanted longsword
// in the main hand and a plain dagger in the off hand, then scripts the
// dice for the test.
func newArmedCharacter(t *testing.T, rolls []int) (*Character, *Item, *Item) {
	t.Helper()

	c := newAverageCharacter("Ragnar", AttributeStrength, AttributeDexterity)

	sword := c.Inventory.AddItem(&Item{
		Name:               "Longsword",
		Type:               ItemTypeWeapon,
		Subtype:            SubtypeOneHanded,
		DamageDie:          8,
		GoverningAttribute: AttributeStrength,
		Enchantment:        1,
	})
	dagger := c.Inventory.AddItem(&Item{
		Name:               "Dagger",
		Type:               ItemTypeWeapon,
		Subtype:            SubtypeFinesse,
		DamageDie:          6,
		GoverningAttribute: AttributeDexterity,
	})

	require.True(t, c.EquipItem(sword.ID).Success)
	require.True(t, c.EquipItem(dagger.ID).Success)

	c.SetRoller(dice.NewScriptedRoller(rolls))
	return c, sword, dagger
}

func TestMainHandAttackRoll(t *testing.T) {
	c, _, _ := newArmedCharacter(t, []int{15})

	result, err := c.MainHandAttackRoll()
	require.NoError(t, err)

	// d20(15) + 3 strength + 2 level bonus + 1 enchantment.
	assert.Equal(t, 21, result.Result)
	assert.Equal(t, "d20(15) +3 STR +2 level +1 enchantment = 21", result.Breakdown)
}

func TestOffHandAttackRoll_NoLevelBonus(t *testing.T) {
	c, _, _ := newArmedCharacter(t, []int{15})

	result, err := c.OffHandAttackRoll()
	require.NoError(t, err)

	// Dexterity 10 contributes nothing and the level bonus never
	// applies off hand.
	assert.Equal(t, 15, result.Result)
	assert.Equal(t, "d20(15) +0 DEX = 15", result.Breakdown)
}

func TestMainHandAttackRoll_LevelBonusScales(t *testing.T) {
	c, _, _ := newArmedCharacter(t, nil)

	assert.Equal(t, 2, c.levelBonus())

	scripted := dice.NewScriptedRoller(nil)
	scripted.FallbackToAverage = true
	c.SetRoller(scripted)
	for i := 0; i < 4; i++ {
		require.NoError(t, c.LevelUp(AttributeIntelligence))
	}
	assert.Equal(t, 3, c.levelBonus(), "the bonus steps up at level 5")
}

func TestMainHandDamageRoll(t *testing.T) {
	c, _, _ := newArmedCharacter(t, []int{5})

	result, err := c.MainHandDamageRoll()
	require.NoError(t, err)

	// d8(5) + 3 strength + 1 enchantment.
	assert.Equal(t, 9, result.Result)
	assert.Equal(t, "d8(5) +3 STR +1 enchantment = 9", result.Breakdown)
}

func TestOffHandDamageRoll_NoAttributeModifier(t *testing.T) {
	c, _, _ := newArmedCharacter(t, []int{4})

	result, err := c.OffHandDamageRoll()
	require.NoError(t, err)

	assert.Equal(t, 4, result.Result)
	assert.Equal(t, "d6(4) = 4", result.Breakdown)
}

func TestAttackRoll_EmptySlot(t *testing.T) {
	c := newAverageCharacter("Ragnar", AttributeStrength, AttributeDexterity)

	result, err := c.MainHandAttackRoll()
	require.NoError(t, err)
	assert.Equal(t, 0, result.Result)
	assert.Equal(t, "No weapon equipped in main-hand", result.Breakdown)

	result, err = c.OffHandDamageRoll()
	require.NoError(t, err)
	assert.Equal(t, 0, result.Result)
	assert.Equal(t, "No weapon equipped in off-hand", result.Breakdown)
}

func TestAttackRoll_DiceFailurePropagates(t *testing.T) {
	c, _, _ := newArmedCharacter(t, nil)

	_, err := c.MainHandAttackRoll()
	assert.Error(t, err, "an exhausted script without fallback fails the roll")
}

func TestAttackRoll_UsesEffectiveStats(t *testing.T) {
	c, _, _ := newArmedCharacter(t, []int{10, 10})

	first, err := c.MainHandAttackRoll()
	require.NoError(t, err)

	c.SetStatOverride(AttributeStrength, 4)
	c.ToggleStatOverrides()

	second, err := c.MainHandAttackRoll()
	require.NoError(t, err)
	assert.Equal(t, first.Result+2, second.Result, "strength 20 adds two over strength 16")
}
