// Package uuid issues the identifiers that keep inventory items stable
// across saves. Tests swap in a deterministic Generator.
package uuid

import (
	"github.com/google/uuid"
)

// Generator produces unique string IDs.
type Generator interface {
	New() string
}

// GoogleUUIDGenerator backs Generator with random v4 UUIDs.
type GoogleUUIDGenerator struct{}

// New returns a fresh UUID string.
func (g *GoogleUUIDGenerator) New() string {
	return uuid.New().String()
}

// NewGoogleUUIDGenerator creates a new GoogleUUIDGenerator.
func NewGoogleUUIDGenerator() *GoogleUUIDGenerator {
	return &GoogleUUIDGenerator{}
}
