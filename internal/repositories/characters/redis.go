package characters

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	dnderr "github.com/hearthvale/charsheet/internal/errors"
	"github.com/hearthvale/charsheet/internal/save"
)

// redisRepo implements the Repository interface using Redis. Each record
// is one JSON value keyed by name, with a set of all names and a hash →
// name index alongside.
type redisRepo struct {
	client redis.UniversalClient
}

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client redis.UniversalClient
}

// NewRedisRepository creates a new Redis-backed character repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil {
		panic("RedisRepoConfig cannot be nil")
	}
	if cfg.Client == nil {
		panic("Redis client cannot be nil")
	}

	return &redisRepo{client: cfg.Client}
}

// key generates the Redis key for a saved character
func (r *redisRepo) key(name string) string {
	return fmt.Sprintf("character:%s", name)
}

const (
	namesKey     = "characters"
	hashIndexKey = "character-hashes"
)

// Save stores a record, replacing any prior save with the same name
func (r *redisRepo) Save(ctx context.Context, record *save.SavedCharacter) error {
	if record == nil {
		return dnderr.InvalidArgument("record cannot be nil")
	}
	if record.Name == "" {
		return dnderr.InvalidArgument("character name is required")
	}

	// A prior save under this name leaves a stale hash index entry
	prior, err := r.client.Get(ctx, r.key(record.Name)).Result()
	if err != nil && err != redis.Nil {
		return fmt.Errorf("failed to check for existing record: %w", err)
	}

	jsonData, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}

	pipe := r.client.Pipeline()
	if prior != "" {
		var existing save.SavedCharacter
		if unmarshalErr := json.Unmarshal([]byte(prior), &existing); unmarshalErr == nil && existing.Hash != record.Hash {
			pipe.HDel(ctx, hashIndexKey, existing.Hash)
		}
	}
	pipe.Set(ctx, r.key(record.Name), string(jsonData), 0)
	pipe.SAdd(ctx, namesKey, record.Name)
	pipe.HSet(ctx, hashIndexKey, record.Hash, record.Name)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save character: %w", err)
	}

	return nil
}

// GetByName retrieves a record by character name
func (r *redisRepo) GetByName(ctx context.Context, name string) (*save.SavedCharacter, error) {
	if name == "" {
		return nil, dnderr.InvalidArgument("character name is required")
	}

	jsonData, err := r.client.Get(ctx, r.key(name)).Result()
	if err == redis.Nil {
		return nil, dnderr.NotFoundf("character %q not found", name).
			WithMeta("character_name", name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get character: %w", err)
	}

	var record save.SavedCharacter
	if unmarshalErr := json.Unmarshal([]byte(jsonData), &record); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to unmarshal character record: %w", unmarshalErr)
	}

	return &record, nil
}

// GetByHash retrieves a record by content hash
func (r *redisRepo) GetByHash(ctx context.Context, hash string) (*save.SavedCharacter, error) {
	if hash == "" {
		return nil, dnderr.InvalidArgument("hash is required")
	}

	name, err := r.client.HGet(ctx, hashIndexKey, hash).Result()
	if err == redis.Nil {
		return nil, dnderr.NotFoundf("no character with hash %q", hash).
			WithMeta("character_hash", hash)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to resolve hash index: %w", err)
	}

	return r.GetByName(ctx, name)
}

// List retrieves all saved records, fetching them concurrently
func (r *redisRepo) List(ctx context.Context) ([]*save.SavedCharacter, error) {
	names, err := r.client.SMembers(ctx, namesKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list character names: %w", err)
	}

	records := make([]*save.SavedCharacter, len(names))
	g, gctx := errgroup.WithContext(ctx)

	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			record, err := r.GetByName(gctx, name)
			if err != nil {
				// Skip records that can't be loaded
				if dnderr.IsNotFound(err) {
					return nil
				}
				return err
			}
			records[i] = record
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := make([]*save.SavedCharacter, 0, len(records))
	for _, record := range records {
		if record != nil {
			result = append(result, record)
		}
	}

	return result, nil
}

// Delete removes a record by character name
func (r *redisRepo) Delete(ctx context.Context, name string) error {
	record, err := r.GetByName(ctx, name)
	if err != nil {
		return err
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, r.key(name))
	pipe.SRem(ctx, namesKey, name)
	pipe.HDel(ctx, hashIndexKey, record.Hash)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete character: %w", err)
	}

	return nil
}

// Exists reports whether a record with the name is stored
func (r *redisRepo) Exists(ctx context.Context, name string) (bool, error) {
	if name == "" {
		return false, dnderr.InvalidArgument("character name is required")
	}

	count, err := r.client.Exists(ctx, r.key(name)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check character existence: %w", err)
	}

	return count > 0, nil
}
