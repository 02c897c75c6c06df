package entities

import (
	"github.com/hearthvale/charsheet/internal/dice"
)

// Scores assigned at creation: one attribute high, one mid, the rest low.
const (
	HighScore = 16
	MidScore  = 10
	LowScore  = 6
)

// Pool is an expendable resource with a current and a max value.
type Pool struct {
	Current int `json:"current"`
	Max     int `json:"max"`
}

// Spend decrements the pool by one if possible and reports success.
// The pool never goes negative.
func (p *Pool) Spend() bool {
	if p.Current <= 0 {
		return false
	}
	p.Current--
	return true
}

// Character is the aggregate root of the rules engine: attributes,
// progression, resource pools, equipment, and learned abilities.
type Character struct {
	Name string
	High Attribute
	Mid  Attribute

	Race          string
	RacialBonuses []Attribute

	Base  Stats
	Level int

	// HP is the running hit-point total; HPRolls records the raw die of
	// each level so totals are reproducible on replay.
	HP      int
	HPRolls []int

	LevelUpChoices []LevelUpChoice

	// PendingLevelUpPoints is nonzero only while a split level-up is open.
	PendingLevelUpPoints int

	// Threshold levels record when a resource-unlocking condition first
	// became true. Zero means never. Once set they are immutable.
	SorceryThresholdLevel       int
	DoubleSorceryThresholdLevel int
	FinesseThresholdLevel       int

	Sorcery  Pool
	Finesse  Pool
	Maneuver Pool

	UseStatOverrides bool
	StatOverrides    Stats

	Notes string

	Inventory *Inventory
	Abilities *AbilityManager

	roller dice.Roller
}

// CharacterConfig holds creation choices for a new character.
type CharacterConfig struct {
	Name          string
	High          Attribute
	Mid           Attribute
	Race          string
	RacialBonuses []Attribute

	// Roller overrides the dice source; defaults to the process-wide
	// mode roller. Save replay injects a scripted roller here.
	Roller dice.Roller
}

// NewCharacter builds a level-1 character from creation choices: the high
// attribute starts at 16, the mid at 10, the remaining one at 6, plus +1
// per racial bonus entry. The first hit-point die is rolled immediately.
func NewCharacter(cfg *CharacterConfig) *Character {
	roller := cfg.Roller
	if roller == nil {
		roller = dice.NewRandomRoller()
	}

	c := &Character{
		Name:          cfg.Name,
		High:          cfg.High,
		Mid:           cfg.Mid,
		Race:          cfg.Race,
		RacialBonuses: cfg.RacialBonuses,
		Level:         1,
		Inventory:     NewInventory(),
		roller:        roller,
	}
	c.Abilities = NewAbilityManager(c)

	for _, attr := range Attributes() {
		switch attr {
		case cfg.High:
			c.Base.Set(attr, HighScore)
		case cfg.Mid:
			c.Base.Set(attr, MidScore)
		default:
			c.Base.Set(attr, LowScore)
		}
	}
	for _, attr := range cfg.RacialBonuses {
		c.Base.Add(attr, 1)
	}

	c.rollHitPoints()
	c.updateThresholds()
	c.recomputeResources(true)
	c.syncStats()

	return c
}

// SetRoller swaps the dice source for all subsequent rolls.
func (c *Character) SetRoller(roller dice.Roller) {
	c.roller = roller
}

// GetEffectiveStats returns the attributes every consumer must read:
// base scores, plus override deltas when enabled, plus flat bonuses from
// equipped items, each clamped to [0,30].
func (c *Character) GetEffectiveStats() Stats {
	stats := c.Base
	if c.UseStatOverrides {
		for _, attr := range Attributes() {
			stats.Add(attr, c.StatOverrides.Get(attr))
		}
	}
	if c.Inventory != nil {
		bonuses := c.Inventory.EquippedStatBonuses()
		for _, attr := range Attributes() {
			stats.Add(attr, bonuses.Get(attr))
		}
	}
	for _, attr := range Attributes() {
		stats.Set(attr, clampScore(stats.Get(attr)))
	}
	return stats
}

// ToggleStatOverrides flips the override flag. Stored deltas are kept
// while disabled.
func (c *Character) ToggleStatOverrides() {
	c.UseStatOverrides = !c.UseStatOverrides
	c.refreshDerivedState()
}

// SetStatOverride stores an additive delta for the attribute. The
// effective value is clamped to [0,30] at read time.
func (c *Character) SetStatOverride(attr Attribute, delta int) {
	if !IsValidAttribute(attr) {
		return
	}
	c.StatOverrides.Set(attr, delta)
	c.refreshDerivedState()
}

// ArmorClass is 10 plus the dexterity modifier plus equipped AC bonuses.
func (c *Character) ArmorClass() int {
	ac := 10 + Modifier(c.GetEffectiveStats().Dex)
	if c.Inventory != nil {
		ac += c.Inventory.TotalACBonus()
	}
	return ac
}

// EquipItem checks requirements against current effective stats and
// resolves slot conflicts, then refreshes stat-dependent state (item
// bonuses may have changed the effective scores).
func (c *Character) EquipItem(id string) EquipResult {
	c.syncStats()
	result := c.Inventory.EquipItem(id)
	if result.Success {
		c.refreshDerivedState()
	}
	return result
}

// UnequipItem clears the item's equip state and refreshes derived state.
func (c *Character) UnequipItem(id string) {
	c.Inventory.UnequipItem(id)
	c.refreshDerivedState()
}

// Rest restores all resource pools to their max. Hit points are not
// affected; the engine has no damage model.
func (c *Character) Rest() {
	c.Sorcery.Current = c.Sorcery.Max
	c.Finesse.Current = c.Finesse.Max
	c.Maneuver.Current = c.Maneuver.Max
}

// SpendSorceryPoint decrements the sorcery pool, reporting success.
func (c *Character) SpendSorceryPoint() bool { return c.Sorcery.Spend() }

// SpendFinessePoint decrements the finesse pool, reporting success.
func (c *Character) SpendFinessePoint() bool { return c.Finesse.Spend() }

// SpendManeuverPoint decrements the combat-maneuver pool, reporting success.
func (c *Character) SpendManeuverPoint() bool { return c.Maneuver.Spend() }

// syncStats pushes the current effective stats into the inventory's
// requirement-check snapshot.
func (c *Character) syncStats() {
	if c.Inventory != nil {
		c.Inventory.SetCharacterStats(c.GetEffectiveStats())
	}
}

// refreshDerivedState recomputes everything that reads effective stats
// outside of a level-up: the inventory snapshot and the stat-gated
// resource maxes. Threshold levels are never touched here.
func (c *Character) refreshDerivedState() {
	c.syncStats()
	c.recomputeResources(false)
}
