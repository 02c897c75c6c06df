package characters

import (
	"context"
	"sync"

	dnderr "github.com/hearthvale/charsheet/internal/errors"
	"github.com/hearthvale/charsheet/internal/save"
)

// InMemoryRepository is an in-memory implementation of the character
// repository. Useful for testing and development.
type InMemoryRepository struct {
	mu      sync.RWMutex
	byName  map[string]*save.SavedCharacter
	nameByH map[string]string
}

// NewInMemoryRepository creates a new in-memory repository
func NewInMemoryRepository() Repository {
	return &InMemoryRepository{
		byName:  make(map[string]*save.SavedCharacter),
		nameByH: make(map[string]string),
	}
}

// Save stores a record, replacing any prior save with the same name
func (r *InMemoryRepository) Save(ctx context.Context, record *save.SavedCharacter) error {
	if record == nil {
		return dnderr.InvalidArgument("record cannot be nil")
	}
	if record.Name == "" {
		return dnderr.InvalidArgument("character name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if prior, exists := r.byName[record.Name]; exists {
		delete(r.nameByH, prior.Hash)
	}

	// Store a copy to avoid external modifications
	recordCopy := *record
	r.byName[record.Name] = &recordCopy
	r.nameByH[record.Hash] = record.Name

	return nil
}

// GetByName retrieves a record by character name
func (r *InMemoryRepository) GetByName(ctx context.Context, name string) (*save.SavedCharacter, error) {
	if name == "" {
		return nil, dnderr.InvalidArgument("character name is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	record, exists := r.byName[name]
	if !exists {
		return nil, dnderr.NotFoundf("character %q not found", name).
			WithMeta("character_name", name)
	}

	recordCopy := *record
	return &recordCopy, nil
}

// GetByHash retrieves a record by content hash
func (r *InMemoryRepository) GetByHash(ctx context.Context, hash string) (*save.SavedCharacter, error) {
	if hash == "" {
		return nil, dnderr.InvalidArgument("hash is required")
	}

	r.mu.RLock()
	name, exists := r.nameByH[hash]
	r.mu.RUnlock()

	if !exists {
		return nil, dnderr.NotFoundf("no character with hash %q", hash).
			WithMeta("character_hash", hash)
	}

	return r.GetByName(ctx, name)
}

// List retrieves all saved records
func (r *InMemoryRepository) List(ctx context.Context) ([]*save.SavedCharacter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records := make([]*save.SavedCharacter, 0, len(r.byName))
	for _, record := range r.byName {
		recordCopy := *record
		records = append(records, &recordCopy)
	}

	return records, nil
}

// Delete removes a record by character name
func (r *InMemoryRepository) Delete(ctx context.Context, name string) error {
	if name == "" {
		return dnderr.InvalidArgument("character name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	record, exists := r.byName[name]
	if !exists {
		return dnderr.NotFoundf("character %q not found", name).
			WithMeta("character_name", name)
	}

	delete(r.nameByH, record.Hash)
	delete(r.byName, name)

	return nil
}

// Exists reports whether a record with the name is stored
func (r *InMemoryRepository) Exists(ctx context.Context, name string) (bool, error) {
	if name == "" {
		return false, dnderr.InvalidArgument("character name is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.byName[name]
	return exists, nil
}
