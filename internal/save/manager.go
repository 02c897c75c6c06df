package save

import (
	"log"

	"github.com/hearthvale/charsheet/internal/dice"
	"github.com/hearthvale/charsheet/internal/entities"
	dnderr "github.com/hearthvale/charsheet/internal/errors"
)

// ReconstructionResult carries the rebuilt character and whether its
// recomputed hash matched the record. A mismatch is not an error;
// reconstruction proceeds with best-effort state and the caller decides
// what to do with the flag.
type ReconstructionResult struct {
	Character *entities.Character
	HashValid bool
}

// Reconstruct rebuilds a character from a saved record: a fresh character
// is created from the recorded creation choices, the level-up history is
// replayed with the recorded hit-point rolls scripted into the dice,
// items are re-equipped, overrides and abilities are restored, and the
// result is validated by re-hashing.
func Reconstruct(record *SavedCharacter) (*ReconstructionResult, error) {
	if record == nil {
		return nil, dnderr.InvalidArgument("record cannot be nil")
	}

	data := record.Data

	roller := dice.NewScriptedRoller(append([]int(nil), data.HPRolls...))
	roller.FallbackToAverage = true

	c := entities.NewCharacter(&entities.CharacterConfig{
		Name:          record.Name,
		High:          data.High,
		Mid:           data.Mid,
		Race:          data.Race,
		RacialBonuses: data.RacialBonuses,
		Roller:        roller,
	})

	if err := replayLevels(c, &data); err != nil {
		return nil, dnderr.Wrapf(err, "failed to replay level-up history for %q", record.Name)
	}

	// Overrides come back before equipment so requirement checks see the
	// same effective stats the original character equipped under.
	for _, attr := range entities.Attributes() {
		c.SetStatOverride(attr, data.StatModifiers.Get(attr))
	}
	if data.UseStatOverrides {
		c.ToggleStatOverrides()
	}

	restoreInventory(c, data.Inventory)

	c.Abilities.Restore(append([]entities.LearnedAbility(nil), data.LearnedAbilities...))
	c.Notes = data.Notes

	// Replay consumed the scripted rolls; future rolls are live again.
	c.SetRoller(dice.NewRandomRoller())

	valid := ValidateHash(c, record.Name, record.Hash)
	if !valid {
		log.Printf("WARN: hash mismatch reconstructing %q: expected %s, got %s",
			record.Name, record.Hash, CreateHash(c, record.Name))
	}

	return &ReconstructionResult{Character: c, HashValid: valid}, nil
}

// replayLevels re-applies the recorded level-up choices. Records without
// a history fall back to repeatedly leveling the high attribute, matching
// older saves that predate choice tracking. An in-flight split level-up
// is reopened so the pending counter survives the round trip.
func replayLevels(c *entities.Character, data *CharacterData) error {
	if len(data.LevelUpChoices) == 0 && data.Level > 1 {
		completed := data.Level
		if data.PendingLevelUpPoints > 0 {
			// The last level is an open split, reopened below.
			completed--
		}
		for level := 1; level < completed; level++ {
			if err := c.LevelUp(data.High); err != nil {
				return err
			}
		}
	}

	for _, choice := range data.LevelUpChoices {
		if choice.Points >= 2 {
			if err := c.LevelUp(choice.Attribute); err != nil {
				return err
			}
			continue
		}
		if c.PendingLevelUpPoints == 0 {
			if err := c.StartLevelUp(); err != nil {
				return err
			}
		}
		if err := c.AllocatePoint(choice.Attribute); err != nil {
			return err
		}
	}

	// A split saved before any point was allocated leaves no history
	// entries for its level; reopen it.
	if data.PendingLevelUpPoints > 0 && c.PendingLevelUpPoints == 0 {
		if err := c.StartLevelUp(); err != nil {
			return err
		}
	}

	return nil
}

// restoreInventory re-adds the recorded items and re-equips them in slot
// order (main-hand, off-hand, armor, shield) so conflict resolution
// reproduces the recorded layout.
func restoreInventory(c *entities.Character, items []*entities.Item) {
	recordedSlots := make(map[string]entities.Slot, len(items))

	for _, item := range items {
		copied := *item
		if copied.Equipped {
			recordedSlots[copied.ID] = copied.Slot
		}
		copied.Equipped = false
		copied.Slot = entities.SlotNone
		c.Inventory.AddItem(&copied)
	}

	for _, slot := range []entities.Slot{entities.SlotMainHand, entities.SlotOffHand, entities.SlotArmor, entities.SlotShield} {
		for id, recorded := range recordedSlots {
			if recorded != slot {
				continue
			}
			if result := c.EquipItem(id); !result.Success {
				log.Printf("WARN: could not re-equip item %s into %s: %s", id, slot, result.Message)
			}
		}
	}
}
