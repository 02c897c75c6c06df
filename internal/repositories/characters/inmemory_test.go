package characters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dnderr "github.com/hearthvale/charsheet/internal/errors"
	"github.com/hearthvale/charsheet/internal/save"
)

func testRecord(name, hash string) *save.SavedCharacter {
	return &save.SavedCharacter{
		Name: name,
		Hash: hash,
		Data: save.CharacterData{
			High:    "str",
			Mid:     "dex",
			Level:   1,
			HPRolls: []int{7},
		},
		Timestamp: 1700000000000,
	}
}

func TestInMemory_SaveAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryRepository()

	require.NoError(t, repo.Save(ctx, testRecord("Ragnar", "abc123")))

	record, err := repo.GetByName(ctx, "Ragnar")
	require.NoError(t, err)
	assert.Equal(t, "Ragnar", record.Name)
	assert.Equal(t, "abc123", record.Hash)

	byHash, err := repo.GetByHash(ctx, "abc123")
	require.NoError(t, err)
	assert.Equal(t, "Ragnar", byHash.Name)
}

func TestInMemory_SaveValidation(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryRepository()

	assert.Error(t, repo.Save(ctx, nil))
	assert.Error(t, repo.Save(ctx, testRecord("", "abc123")))
}

func TestInMemory_GetMissing(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryRepository()

	_, err := repo.GetByName(ctx, "Nobody")
	assert.True(t, dnderr.IsNotFound(err))

	_, err = repo.GetByHash(ctx, "nohash")
	assert.True(t, dnderr.IsNotFound(err))
}

func TestInMemory_OverwriteUpdatesHashIndex(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryRepository()

	require.NoError(t, repo.Save(ctx, testRecord("Ragnar", "old-hash")))
	require.NoError(t, repo.Save(ctx, testRecord("Ragnar", "new-hash")))

	_, err := repo.GetByHash(ctx, "old-hash")
	assert.True(t, dnderr.IsNotFound(err), "the stale hash no longer resolves")

	record, err := repo.GetByHash(ctx, "new-hash")
	require.NoError(t, err)
	assert.Equal(t, "Ragnar", record.Name)

	records, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestInMemory_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryRepository()

	require.NoError(t, repo.Save(ctx, testRecord("Ragnar", "abc123")))

	record, err := repo.GetByName(ctx, "Ragnar")
	require.NoError(t, err)
	record.Hash = "tampered"

	fresh, err := repo.GetByName(ctx, "Ragnar")
	require.NoError(t, err)
	assert.Equal(t, "abc123", fresh.Hash)
}

func TestInMemory_ListAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryRepository()

	require.NoError(t, repo.Save(ctx, testRecord("Ragnar", "h1")))
	require.NoError(t, repo.Save(ctx, testRecord("Vex", "h2")))

	records, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, records, 2)

	require.NoError(t, repo.Delete(ctx, "Ragnar"))

	exists, err := repo.Exists(ctx, "Ragnar")
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = repo.GetByHash(ctx, "h1")
	assert.True(t, dnderr.IsNotFound(err))

	assert.True(t, dnderr.IsNotFound(repo.Delete(ctx, "Ragnar")))
}
