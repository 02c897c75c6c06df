package entities

import "strings"

// Attribute identifies one of the three primary ability scores.
type Attribute string

const (
	AttributeStrength     Attribute = "str"
	AttributeDexterity    Attribute = "dex"
	AttributeIntelligence Attribute = "int"
)

// Attributes returns the primary attributes in canonical order.
func Attributes() []Attribute {
	return []Attribute{AttributeStrength, AttributeDexterity, AttributeIntelligence}
}

// IsValidAttribute reports whether the name is one of the three attributes.
func IsValidAttribute(a Attribute) bool {
	switch a {
	case AttributeStrength, AttributeDexterity, AttributeIntelligence:
		return true
	}
	return false
}

// Display returns the attribute name in the uppercase form used in
// player-facing messages ("STR", "DEX", "INT").
func (a Attribute) Display() string {
	return strings.ToUpper(string(a))
}

// Stats holds one value per attribute. It is used for base scores,
// override deltas, item requirements, and item bonuses alike.
type Stats struct {
	Str int `json:"str"`
	Dex int `json:"dex"`
	Int int `json:"int"`
}

// Get returns the value for the given attribute, 0 for unknown names.
func (s Stats) Get(a Attribute) int {
	switch a {
	case AttributeStrength:
		return s.Str
	case AttributeDexterity:
		return s.Dex
	case AttributeIntelligence:
		return s.Int
	}
	return 0
}

// Add adds n to the given attribute.
func (s *Stats) Add(a Attribute, n int) {
	switch a {
	case AttributeStrength:
		s.Str += n
	case AttributeDexterity:
		s.Dex += n
	case AttributeIntelligence:
		s.Int += n
	}
}

// Set assigns the value for the given attribute.
func (s *Stats) Set(a Attribute, n int) {
	switch a {
	case AttributeStrength:
		s.Str = n
	case AttributeDexterity:
		s.Dex = n
	case AttributeIntelligence:
		s.Int = n
	}
}

// IsZero reports whether all three values are zero.
func (s Stats) IsZero() bool {
	return s.Str == 0 && s.Dex == 0 && s.Int == 0
}

// Modifier returns the standard ability modifier for a score:
// (score-10)/2 rounded toward negative infinity.
func Modifier(score int) int {
	diff := score - 10
	if diff < 0 && diff%2 != 0 {
		return diff/2 - 1
	}
	return diff / 2
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 30 {
		return 30
	}
	return score
}
