package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLearn_RequiresSpellcasting(t *testing.T) {
	fighter := newAverageCharacter("Ragnar", AttributeStrength, AttributeDexterity)

	result := fighter.Abilities.Learn("Twinned Spell", AbilityMetamagic)
	assert.False(t, result.Success)
	assert.Equal(t, "Requires spellcasting to be unlocked", result.Message)

	caster := newAverageCharacter("Mira", AttributeIntelligence, AttributeDexterity)
	result = caster.Abilities.Learn("Twinned Spell", AbilityMetamagic)
	assert.True(t, result.Success)

	result = caster.Abilities.Learn("Ignite", AbilitySpellword)
	assert.True(t, result.Success)
}

func TestLearn_RequiresManeuverAccess(t *testing.T) {
	caster := newAverageCharacter("Mira", AttributeIntelligence, AttributeDexterity)

	result := caster.Abilities.Learn("Disarm", AbilityCombatManeuver)
	assert.False(t, result.Success)
	assert.Equal(t, "Requires combat maneuver access", result.Message)

	fighter := newAverageCharacter("Ragnar", AttributeStrength, AttributeDexterity)
	result = fighter.Abilities.Learn("Disarm", AbilityCombatManeuver)
	assert.True(t, result.Success)
}

func TestLearn_RejectsDuplicates(t *testing.T) {
	c := newAverageCharacter("Mira", AttributeIntelligence, AttributeDexterity)

	require.True(t, c.Abilities.Learn("Ignite", AbilitySpellword).Success)

	result := c.Abilities.Learn("Ignite", AbilitySpellword)
	assert.False(t, result.Success)
	assert.Equal(t, "Already knows Ignite", result.Message)
	assert.Len(t, c.Abilities.List(), 1)
}

func TestLearn_RejectsUnknownCategory(t *testing.T) {
	c := newAverageCharacter("Mira", AttributeIntelligence, AttributeDexterity)

	result := c.Abilities.Learn("Juggling", "hobby")
	assert.False(t, result.Success)
	assert.Contains(t, result.Message, "Unknown ability category")
}

func TestLearn_RecordsLevel(t *testing.T) {
	c := newAverageCharacter("Mira", AttributeIntelligence, AttributeDexterity)
	require.NoError(t, c.LevelUp(AttributeIntelligence))
	require.NoError(t, c.LevelUp(AttributeIntelligence))

	require.True(t, c.Abilities.Learn("Quickened Spell", AbilityMetamagic).Success)

	list := c.Abilities.List()
	require.Len(t, list, 1)
	assert.Equal(t, 3, list[0].LevelLearned)
}

func TestUnlearn(t *testing.T) {
	c := newAverageCharacter("Mira", AttributeIntelligence, AttributeDexterity)
	require.True(t, c.Abilities.Learn("Ignite", AbilitySpellword).Success)

	assert.True(t, c.Abilities.Unlearn("Ignite"))
	assert.False(t, c.Abilities.Has("Ignite"))
	assert.False(t, c.Abilities.Unlearn("Ignite"), "already gone")

	// Relearning after unlearning is allowed.
	assert.True(t, c.Abilities.Learn("Ignite", AbilitySpellword).Success)
}

func TestRestore_ReplacesWholesale(t *testing.T) {
	c := newAverageCharacter("Mira", AttributeIntelligence, AttributeDexterity)
	require.True(t, c.Abilities.Learn("Ignite", AbilitySpellword).Success)

	c.Abilities.Restore([]LearnedAbility{
		{Name: "Twinned Spell", Category: AbilityMetamagic, LevelLearned: 2},
	})

	assert.False(t, c.Abilities.Has("Ignite"))
	assert.True(t, c.Abilities.Has("Twinned Spell"))
}
