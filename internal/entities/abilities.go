package entities

import "fmt"

// AbilityCategory groups optional learned abilities.
type AbilityCategory string

const (
	AbilityMetamagic      AbilityCategory = "metamagic"
	AbilitySpellword      AbilityCategory = "spellword"
	AbilityCombatManeuver AbilityCategory = "combat-maneuver"
)

// LearnedAbility is a named ability with the level it was learned at.
// The engine treats ability names as opaque keys into external content
// catalogs.
type LearnedAbility struct {
	Name         string          `json:"name"`
	Category     AbilityCategory `json:"category"`
	LevelLearned int             `json:"level_learned"`
}

// LearnResult reports the outcome of a learn attempt.
type LearnResult struct {
	Success bool
	Message string
}

// AbilityManager tracks the abilities a character has learned and
// validates new ones against what the character's resources allow.
type AbilityManager struct {
	owner   *Character
	learned []LearnedAbility
}

// NewAbilityManager creates an ability manager bound to its character.
func NewAbilityManager(owner *Character) *AbilityManager {
	return &AbilityManager{owner: owner}
}

// Learn validates category access and records the ability at the current
// level. Metamagic and spellwords require spellcasting to be unlocked;
// combat maneuvers require maneuver access.
func (m *AbilityManager) Learn(name string, category AbilityCategory) LearnResult {
	if m.Has(name) {
		return LearnResult{Success: false, Message: fmt.Sprintf("Already knows %s", name)}
	}

	switch category {
	case AbilityMetamagic, AbilitySpellword:
		if m.owner.Sorcery.Max == 0 {
			return LearnResult{Success: false, Message: "Requires spellcasting to be unlocked"}
		}
	case AbilityCombatManeuver:
		if m.owner.Maneuver.Max == 0 {
			return LearnResult{Success: false, Message: "Requires combat maneuver access"}
		}
	default:
		return LearnResult{Success: false, Message: fmt.Sprintf("Unknown ability category %s", category)}
	}

	m.learned = append(m.learned, LearnedAbility{
		Name:         name,
		Category:     category,
		LevelLearned: m.owner.Level,
	})
	return LearnResult{Success: true}
}

// Unlearn removes the named ability, reporting whether it was known.
func (m *AbilityManager) Unlearn(name string) bool {
	for i, ability := range m.learned {
		if ability.Name == name {
			m.learned = append(m.learned[:i], m.learned[i+1:]...)
			return true
		}
	}
	return false
}

// Has reports whether the named ability is known.
func (m *AbilityManager) Has(name string) bool {
	for _, ability := range m.learned {
		if ability.Name == name {
			return true
		}
	}
	return false
}

// List returns the learned abilities in learn order.
func (m *AbilityManager) List() []LearnedAbility {
	return m.learned
}

// Restore replaces the learned list wholesale. Used by save reconstruction,
// which trusts the recorded levels instead of re-validating.
func (m *AbilityManager) Restore(abilities []LearnedAbility) {
	m.learned = abilities
}
