package characters

import (
	"context"

	"github.com/hearthvale/charsheet/internal/save"
)

// Repository defines the interface for saved-character persistence.
// Records are unique by name within one backend.
type Repository interface {
	// Save stores a record, replacing any prior save with the same name
	Save(ctx context.Context, record *save.SavedCharacter) error

	// GetByName retrieves a record by character name
	GetByName(ctx context.Context, name string) (*save.SavedCharacter, error)

	// GetByHash retrieves a record by content hash
	GetByHash(ctx context.Context, hash string) (*save.SavedCharacter, error)

	// List retrieves all saved records
	List(ctx context.Context) ([]*save.SavedCharacter, error)

	// Delete removes a record by character name
	Delete(ctx context.Context, name string) error

	// Exists reports whether a record with the name is stored
	Exists(ctx context.Context, name string) (bool, error)
}
