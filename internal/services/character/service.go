package character

import (
	"context"
	"log"

	"github.com/hearthvale/charsheet/internal/entities"
	dnderr "github.com/hearthvale/charsheet/internal/errors"
	characterRepo "github.com/hearthvale/charsheet/internal/repositories/characters"
	"github.com/hearthvale/charsheet/internal/save"
)

// Repository is an alias for the character repository interface
type Repository = characterRepo.Repository

// LoadResult carries a reconstructed character. HashValid is false when
// the replayed state hashes differently from the record; the character is
// still returned with best-effort state.
type LoadResult struct {
	Character *entities.Character
	Record    *save.SavedCharacter
	HashValid bool
}

// Service defines the character persistence service interface
type Service interface {
	// SaveCharacter hashes and stores the character under the given name
	SaveCharacter(ctx context.Context, char *entities.Character, name string) (*save.SavedCharacter, error)

	// LoadCharacter reconstructs a character from its saved record
	LoadCharacter(ctx context.Context, name string) (*LoadResult, error)

	// LoadCharacterByHash reconstructs a character found by content hash
	LoadCharacterByHash(ctx context.Context, hash string) (*LoadResult, error)

	// ListCharacters retrieves all saved records
	ListCharacters(ctx context.Context) ([]*save.SavedCharacter, error)

	// DeleteCharacter removes a saved record by name
	DeleteCharacter(ctx context.Context, name string) error

	// CharacterExists reports whether a record with the name is stored
	CharacterExists(ctx context.Context, name string) (bool, error)
}

// service implements the Service interface
type service struct {
	repository Repository
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Repository Repository
}

// NewService creates a new character service
func NewService(cfg *ServiceConfig) (Service, error) {
	if cfg == nil {
		return nil, dnderr.InvalidArgument("config cannot be nil")
	}
	if cfg.Repository == nil {
		return nil, dnderr.InvalidArgument("repository is required")
	}

	return &service{repository: cfg.Repository}, nil
}

// SaveCharacter hashes and stores the character under the given name
func (s *service) SaveCharacter(ctx context.Context, char *entities.Character, name string) (*save.SavedCharacter, error) {
	if char == nil {
		return nil, dnderr.InvalidArgument("character cannot be nil")
	}
	if name == "" {
		return nil, dnderr.InvalidArgument("character name is required")
	}

	record := save.CreateSavedCharacter(char, name)
	if err := s.repository.Save(ctx, record); err != nil {
		return nil, dnderr.Wrapf(err, "failed to save character %q", name)
	}

	return record, nil
}

// LoadCharacter reconstructs a character from its saved record
func (s *service) LoadCharacter(ctx context.Context, name string) (*LoadResult, error) {
	record, err := s.repository.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}

	return s.reconstruct(record)
}

// LoadCharacterByHash reconstructs a character found by content hash
func (s *service) LoadCharacterByHash(ctx context.Context, hash string) (*LoadResult, error) {
	record, err := s.repository.GetByHash(ctx, hash)
	if err != nil {
		return nil, err
	}

	return s.reconstruct(record)
}

func (s *service) reconstruct(record *save.SavedCharacter) (*LoadResult, error) {
	result, err := save.Reconstruct(record)
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to reconstruct character %q", record.Name)
	}

	if !result.HashValid {
		log.Printf("WARN: character %q loaded with hash mismatch", record.Name)
	}

	return &LoadResult{
		Character: result.Character,
		Record:    record,
		HashValid: result.HashValid,
	}, nil
}

// ListCharacters retrieves all saved records
func (s *service) ListCharacters(ctx context.Context) ([]*save.SavedCharacter, error) {
	return s.repository.List(ctx)
}

// DeleteCharacter removes a saved record by name
func (s *service) DeleteCharacter(ctx context.Context, name string) error {
	return s.repository.Delete(ctx, name)
}

// CharacterExists reports whether a record with the name is stored
func (s *service) CharacterExists(ctx context.Context, name string) (bool, error) {
	return s.repository.Exists(ctx, name)
}
