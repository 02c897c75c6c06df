package entities

import (
	"encoding/json"
	"log"

	dnderr "github.com/hearthvale/charsheet/internal/errors"
)

// Resource unlock minimums.
const (
	SorceryMinIntelligence       = 11
	DoubleSorceryMinIntelligence = 15
	FinesseMinDexterity          = 16
	ManeuverMinStrength          = 16
)

// LevelUpChoice records one attribute allocation in the level-up history.
// A standard level-up is a single 2-point entry; a split level-up records
// one 1-point entry per allocation. Every level grants exactly two points,
// so replay can group entries back into levels without extra bookkeeping.
type LevelUpChoice struct {
	Attribute Attribute `json:"attribute"`
	Points    int       `json:"points"`
}

// UnmarshalJSON accepts the current object form and, for older saves, a
// bare attribute name, which decodes as a full 2-point level-up.
func (l *LevelUpChoice) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		l.Attribute = Attribute(name)
		l.Points = 2
		return nil
	}

	type alias LevelUpChoice
	var obj alias
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	*l = LevelUpChoice(obj)
	return nil
}

// LevelUp advances the character one level, granting +2 to the chosen
// attribute, and finalizes the level: a hit die sized by current strength
// is rolled, unset threshold levels are checked, resource maxes are
// recomputed, and current values fill to the new max.
func (c *Character) LevelUp(attr Attribute) error {
	if !IsValidAttribute(attr) {
		return dnderr.InvalidArgumentf("unknown attribute %q", attr)
	}
	if c.PendingLevelUpPoints > 0 {
		return dnderr.InvalidArgument("a split level-up is in progress; allocate its remaining points first")
	}

	c.Level++
	c.Base.Add(attr, 2)
	c.LevelUpChoices = append(c.LevelUpChoices, LevelUpChoice{Attribute: attr, Points: 2})
	c.finalizeLevel()
	return nil
}

// StartLevelUp opens a split level-up: the level increments immediately
// and two points become available for one-at-a-time allocation.
func (c *Character) StartLevelUp() error {
	if c.PendingLevelUpPoints > 0 {
		return dnderr.InvalidArgument("a split level-up is already in progress")
	}

	c.Level++
	c.PendingLevelUpPoints = 2
	return nil
}

// AllocatePoint assigns one pending point to the attribute. When the last
// point lands the level is finalized exactly like a standard level-up.
func (c *Character) AllocatePoint(attr Attribute) error {
	if !IsValidAttribute(attr) {
		return dnderr.InvalidArgumentf("unknown attribute %q", attr)
	}
	if c.PendingLevelUpPoints == 0 {
		return dnderr.InvalidArgument("no level-up in progress")
	}

	c.Base.Add(attr, 1)
	c.LevelUpChoices = append(c.LevelUpChoices, LevelUpChoice{Attribute: attr, Points: 1})
	c.PendingLevelUpPoints--
	if c.PendingLevelUpPoints == 0 {
		c.finalizeLevel()
	}
	return nil
}

// finalizeLevel performs the per-level bookkeeping shared by both
// level-up forms.
func (c *Character) finalizeLevel() {
	c.rollHitPoints()
	c.updateThresholds()
	c.recomputeResources(true)
	c.syncStats()
}

// rollHitPoints rolls one hit die sized by current strength, records the
// raw die, and accumulates the roll plus the strength modifier.
func (c *Character) rollHitPoints() {
	str := c.GetEffectiveStats().Str
	size := HitDieForStrength(str)

	result, err := c.roller.Roll(1, size, 0)
	if err != nil {
		log.Printf("hit point roll failed, using average d%d: %v", size, err)
		avg := size/2 + 1
		c.HPRolls = append(c.HPRolls, avg)
		c.HP += avg + Modifier(str)
		return
	}

	c.HPRolls = append(c.HPRolls, result.Rolls[0])
	c.HP += result.Total + Modifier(str)
}

// HitDieForStrength maps a strength score to the hit die rolled per level.
func HitDieForStrength(str int) int {
	switch {
	case str >= 16:
		return 12
	case str >= 12:
		return 10
	case str >= 8:
		return 8
	default:
		return 6
	}
}

// updateThresholds records the level at which each unlock condition first
// became true. Set thresholds are never recomputed, so later stat drops
// (overrides included) cannot rewind the resource curve.
func (c *Character) updateThresholds() {
	stats := c.GetEffectiveStats()

	if c.SorceryThresholdLevel == 0 && stats.Int >= SorceryMinIntelligence {
		c.SorceryThresholdLevel = c.Level
	}
	if c.DoubleSorceryThresholdLevel == 0 && stats.Int >= DoubleSorceryMinIntelligence {
		c.DoubleSorceryThresholdLevel = c.Level
	}
	if c.FinesseThresholdLevel == 0 && stats.Dex >= FinesseMinDexterity {
		c.FinesseThresholdLevel = c.Level
	}
}

// recomputeResources derives the three resource maxes from level and the
// recorded thresholds. With fill, current values are topped up to the new
// max (the level-up behavior); otherwise they are only clamped.
func (c *Character) recomputeResources(fill bool) {
	c.Sorcery.Max = c.sorceryMax()
	c.Finesse.Max = c.finesseMax()
	c.Maneuver.Max = c.maneuverMax()

	if fill {
		c.Sorcery.Current = c.Sorcery.Max
		c.Finesse.Current = c.Finesse.Max
		c.Maneuver.Current = c.Maneuver.Max
		return
	}
	if c.Sorcery.Current > c.Sorcery.Max {
		c.Sorcery.Current = c.Sorcery.Max
	}
	if c.Finesse.Current > c.Finesse.Max {
		c.Finesse.Current = c.Finesse.Max
	}
	if c.Maneuver.Current > c.Maneuver.Max {
		c.Maneuver.Current = c.Maneuver.Max
	}
}

// sorceryMax is 3 at the unlock level, +1 per level since, plus +1 per
// level since the double-sorcery threshold if that was ever reached.
func (c *Character) sorceryMax() int {
	if c.SorceryThresholdLevel == 0 {
		return 0
	}
	max := 3 + (c.Level - c.SorceryThresholdLevel)
	if c.DoubleSorceryThresholdLevel > 0 {
		max += c.Level - c.DoubleSorceryThresholdLevel
	}
	return max
}

// finesseMax is 1 at the unlock level and gains a point at every second
// level after it (odd levels since unlock; even levels add nothing).
func (c *Character) finesseMax() int {
	if c.FinesseThresholdLevel == 0 {
		return 0
	}
	return 1 + (c.Level-c.FinesseThresholdLevel)/2
}

// maneuverMax scales with level while strength holds at the minimum; it
// is the one pool gated on the current score rather than a threshold.
func (c *Character) maneuverMax() int {
	if c.GetEffectiveStats().Str < ManeuverMinStrength {
		return 0
	}
	return (c.Level + 1) / 2
}
