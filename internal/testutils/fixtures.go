package testutils

import (
	"github.com/hearthvale/charsheet/internal/dice"
	"github.com/hearthvale/charsheet/internal/entities"
)

// CreateTestCharacter creates a level-1 strength character with
// deterministic (average) hit points.
func CreateTestCharacter(name string) *entities.Character {
	roller := dice.NewScriptedRoller(nil)
	roller.FallbackToAverage = true

	return entities.NewCharacter(&entities.CharacterConfig{
		Name:   name,
		High:   entities.AttributeStrength,
		Mid:    entities.AttributeDexterity,
		Roller: roller,
	})
}

// CreateTestWeapon creates a one-handed strength weapon with no
// requirements.
func CreateTestWeapon(id, name string) *entities.Item {
	return &entities.Item{
		ID:                 id,
		Name:               name,
		Type:               entities.ItemTypeWeapon,
		Subtype:            entities.SubtypeOneHanded,
		DamageDie:          8,
		GoverningAttribute: entities.AttributeStrength,
	}
}

// CreateTestFinesseWeapon creates a finesse (dexterity) weapon.
func CreateTestFinesseWeapon(id, name string) *entities.Item {
	return &entities.Item{
		ID:                 id,
		Name:               name,
		Type:               entities.ItemTypeWeapon,
		Subtype:            entities.SubtypeFinesse,
		DamageDie:          6,
		GoverningAttribute: entities.AttributeDexterity,
	}
}

// CreateTestShield creates a shield with a +2 AC bonus.
func CreateTestShield(id, name string) *entities.Item {
	return &entities.Item{
		ID:      id,
		Name:    name,
		Type:    entities.ItemTypeShield,
		ACBonus: 2,
	}
}

// CreateTestArmor creates light armor with a +1 AC bonus.
func CreateTestArmor(id, name string) *entities.Item {
	return &entities.Item{
		ID:      id,
		Name:    name,
		Type:    entities.ItemTypeArmor,
		Subtype: entities.SubtypeLightArmor,
		ACBonus: 1,
	}
}
