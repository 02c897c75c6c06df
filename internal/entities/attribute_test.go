package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModifier(t *testing.T) {
	cases := map[int]int{
		0:  -5,
		6:  -2,
		7:  -2,
		9:  -1,
		10: 0,
		11: 0,
		12: 1,
		16: 3,
		22: 6,
		30: 10,
	}
	for score, want := range cases {
		assert.Equal(t, want, Modifier(score), "score %d", score)
	}
}

func TestAttributeDisplay(t *testing.T) {
	assert.Equal(t, "STR", AttributeStrength.Display())
	assert.Equal(t, "DEX", AttributeDexterity.Display())
	assert.Equal(t, "INT", AttributeIntelligence.Display())
}

func TestIsValidAttribute(t *testing.T) {
	for _, attr := range Attributes() {
		assert.True(t, IsValidAttribute(attr))
	}
	assert.False(t, IsValidAttribute("wisdom"))
	assert.False(t, IsValidAttribute(""))
}

func TestStats_GetSetAdd(t *testing.T) {
	var s Stats
	assert.True(t, s.IsZero())

	s.Set(AttributeStrength, 16)
	s.Add(AttributeStrength, 2)
	s.Add(AttributeDexterity, -1)

	assert.Equal(t, 18, s.Get(AttributeStrength))
	assert.Equal(t, -1, s.Get(AttributeDexterity))
	assert.Equal(t, 0, s.Get(AttributeIntelligence))
	assert.Equal(t, 0, s.Get("wisdom"), "unknown attributes read as zero")
	assert.False(t, s.IsZero())
}
