package save

import (
	"encoding/json"
	"sort"
	"strconv"

	"github.com/hearthvale/charsheet/internal/entities"
)

// hashPayload is the canonical object fed to the rolling hash. Struct
// field order gives stable JSON key ordering; the ability list is sorted
// so learn order does not affect the hash.
type hashPayload struct {
	Name string        `json:"name"`
	Data CharacterData `json:"data"`
}

// CreateHash derives a content hash covering every field of observable
// character state. Two characters built through different call sequences
// but ending in identical state hash identically.
func CreateHash(c *entities.Character, name string) string {
	data := Snapshot(c)
	sortAbilities(data.LearnedAbilities)

	encoded, err := json.Marshal(hashPayload{Name: name, Data: data})
	if err != nil {
		// CharacterData contains no unmarshalable types; this is unreachable.
		return ""
	}
	return rollingHash(string(encoded))
}

// ValidateHash recomputes the hash and compares it to the expected value.
// Used after reconstruction to detect divergence.
func ValidateHash(c *entities.Character, name, expected string) bool {
	return CreateHash(c, name) == expected
}

// rollingHash is a shift-and-subtract accumulator with 32-bit wraparound,
// emitted as the base-36 form of its absolute value.
func rollingHash(s string) string {
	var h int32
	for _, b := range []byte(s) {
		h = h<<5 - h + int32(b)
	}

	v := int64(h)
	if v < 0 {
		v = -v
	}
	return strconv.FormatInt(v, 36)
}

func sortAbilities(abilities []entities.LearnedAbility) {
	sort.Slice(abilities, func(i, j int) bool {
		if abilities[i].Category != abilities[j].Category {
			return abilities[i].Category < abilities[j].Category
		}
		return abilities[i].Name < abilities[j].Name
	})
}
