package save

import (
	"time"

	"github.com/hearthvale/charsheet/internal/entities"
)

// CharacterData is the persisted form of a character: every field needed
// to rebuild equivalent state by replaying creation choices, level-up
// history, and equipment. Optional fields default to empty/zero/disabled
// when absent from older records.
type CharacterData struct {
	High entities.Attribute `json:"high"`
	Mid  entities.Attribute `json:"mid"`

	Race          string               `json:"race,omitempty"`
	RacialBonuses []entities.Attribute `json:"racialBonuses,omitempty"`

	Level          int                      `json:"level"`
	HPRolls        []int                    `json:"hp_rolls"`
	LevelUpChoices []entities.LevelUpChoice `json:"level_up_choices"`

	PendingLevelUpPoints int `json:"pending_level_up_points,omitempty"`

	// Equipment summary kept alongside the full snapshot.
	Armor  string `json:"armor"`
	Weapon string `json:"weapon"`
	Shield bool   `json:"shield"`

	Inventory []*entities.Item `json:"inventory"`

	UseStatOverrides bool           `json:"useStatOverrides,omitempty"`
	StatModifiers    entities.Stats `json:"statModifiers,omitempty"`

	LearnedAbilities []entities.LearnedAbility `json:"learnedAbilities,omitempty"`

	SorceryThresholdLevel       *int `json:"sorceryThresholdLevel,omitempty"`
	DoubleSorceryThresholdLevel *int `json:"doubleSorceryThresholdLevel,omitempty"`
	FinesseThresholdLevel       *int `json:"finesseThresholdLevel,omitempty"`

	Notes string `json:"notes,omitempty"`
}

// SavedCharacter is one persisted record, unique by name within a store.
type SavedCharacter struct {
	Name      string        `json:"name"`
	Hash      string        `json:"hash"`
	Data      CharacterData `json:"data"`
	Timestamp int64         `json:"timestamp"`
}

// Snapshot captures a character's persistable state.
func Snapshot(c *entities.Character) CharacterData {
	data := CharacterData{
		High:                 c.High,
		Mid:                  c.Mid,
		Race:                 c.Race,
		RacialBonuses:        c.RacialBonuses,
		Level:                c.Level,
		HPRolls:              append([]int(nil), c.HPRolls...),
		LevelUpChoices:       append([]entities.LevelUpChoice(nil), c.LevelUpChoices...),
		PendingLevelUpPoints: c.PendingLevelUpPoints,
		UseStatOverrides:     c.UseStatOverrides,
		StatModifiers:        c.StatOverrides,
		LearnedAbilities:     append([]entities.LearnedAbility(nil), c.Abilities.List()...),
		Notes:                c.Notes,
	}

	data.SorceryThresholdLevel = thresholdPtr(c.SorceryThresholdLevel)
	data.DoubleSorceryThresholdLevel = thresholdPtr(c.DoubleSorceryThresholdLevel)
	data.FinesseThresholdLevel = thresholdPtr(c.FinesseThresholdLevel)

	for _, item := range c.Inventory.Items() {
		copied := *item
		data.Inventory = append(data.Inventory, &copied)
	}

	if armor := c.Inventory.GetEquippedItemBySlot(entities.SlotArmor); armor != nil {
		data.Armor = armor.Name
	}
	if weapon := c.Inventory.GetEquippedItemBySlot(entities.SlotMainHand); weapon != nil {
		data.Weapon = weapon.Name
	}
	data.Shield = c.Inventory.GetEquippedItemBySlot(entities.SlotShield) != nil

	return data
}

// CreateSavedCharacter packages the snapshot with its content hash and a
// save timestamp.
func CreateSavedCharacter(c *entities.Character, name string) *SavedCharacter {
	return &SavedCharacter{
		Name:      name,
		Hash:      CreateHash(c, name),
		Data:      Snapshot(c),
		Timestamp: time.Now().UnixMilli(),
	}
}

func thresholdPtr(level int) *int {
	if level == 0 {
		return nil
	}
	return &level
}
