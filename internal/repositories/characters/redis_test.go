package characters

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	dnderr "github.com/hearthvale/charsheet/internal/errors"
	"github.com/hearthvale/charsheet/internal/save"
)

type RedisRepoTestSuite struct {
	suite.Suite
	mockClient *redis.Client
	mock       redismock.ClientMock
	repo       Repository
}

func (s *RedisRepoTestSuite) SetupTest() {
	s.mockClient, s.mock = redismock.NewClientMock()
	s.repo = NewRedisRepository(&RedisRepoConfig{Client: s.mockClient})
}

func (s *RedisRepoTestSuite) TearDownTest() {
	s.NoError(s.mock.ExpectationsWereMet())
}

func TestRedisRepoTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepoTestSuite))
}

func (s *RedisRepoTestSuite) marshal(record *save.SavedCharacter) string {
	data, err := json.Marshal(record)
	s.Require().NoError(err)
	return string(data)
}

func (s *RedisRepoTestSuite) TestSave() {
	ctx := context.Background()
	record := testRecord("Ragnar", "abc123")
	jsonData := s.marshal(record)

	s.mock.ExpectGet("character:Ragnar").RedisNil()
	s.mock.ExpectSet("character:Ragnar", jsonData, 0).SetVal("OK")
	s.mock.ExpectSAdd("characters", "Ragnar").SetVal(1)
	s.mock.ExpectHSet("character-hashes", "abc123", "Ragnar").SetVal(1)

	s.NoError(s.repo.Save(ctx, record))
}

func (s *RedisRepoTestSuite) TestSave_ReplacesStaleHashIndex() {
	ctx := context.Background()
	prior := testRecord("Ragnar", "old-hash")
	record := testRecord("Ragnar", "new-hash")

	s.mock.ExpectGet("character:Ragnar").SetVal(s.marshal(prior))
	s.mock.ExpectHDel("character-hashes", "old-hash").SetVal(1)
	s.mock.ExpectSet("character:Ragnar", s.marshal(record), 0).SetVal("OK")
	s.mock.ExpectSAdd("characters", "Ragnar").SetVal(1)
	s.mock.ExpectHSet("character-hashes", "new-hash", "Ragnar").SetVal(1)

	s.NoError(s.repo.Save(ctx, record))
}

func (s *RedisRepoTestSuite) TestSave_DependencyError() {
	ctx := context.Background()
	record := testRecord("Ragnar", "abc123")

	s.mock.ExpectGet("character:Ragnar").RedisNil()
	s.mock.ExpectSet("character:Ragnar", s.marshal(record), 0).SetErr(errors.New("redis error"))

	s.Error(s.repo.Save(ctx, record))
}

func (s *RedisRepoTestSuite) TestSave_InputValidation() {
	ctx := context.Background()

	s.Error(s.repo.Save(ctx, nil))
	s.Error(s.repo.Save(ctx, testRecord("", "abc123")))
}

func (s *RedisRepoTestSuite) TestGetByName() {
	ctx := context.Background()
	record := testRecord("Ragnar", "abc123")

	s.mock.ExpectGet("character:Ragnar").SetVal(s.marshal(record))

	got, err := s.repo.GetByName(ctx, "Ragnar")
	s.Require().NoError(err)
	s.Equal(record, got)
}

func (s *RedisRepoTestSuite) TestGetByName_NotFound() {
	ctx := context.Background()

	s.mock.ExpectGet("character:Nobody").RedisNil()

	_, err := s.repo.GetByName(ctx, "Nobody")
	s.True(dnderr.IsNotFound(err))
}

func (s *RedisRepoTestSuite) TestGetByHash() {
	ctx := context.Background()
	record := testRecord("Ragnar", "abc123")

	s.mock.ExpectHGet("character-hashes", "abc123").SetVal("Ragnar")
	s.mock.ExpectGet("character:Ragnar").SetVal(s.marshal(record))

	got, err := s.repo.GetByHash(ctx, "abc123")
	s.Require().NoError(err)
	s.Equal("Ragnar", got.Name)
}

func (s *RedisRepoTestSuite) TestGetByHash_NotFound() {
	ctx := context.Background()

	s.mock.ExpectHGet("character-hashes", "nohash").RedisNil()

	_, err := s.repo.GetByHash(ctx, "nohash")
	s.True(dnderr.IsNotFound(err))
}

func (s *RedisRepoTestSuite) TestList() {
	ctx := context.Background()
	record := testRecord("Ragnar", "abc123")

	s.mock.ExpectSMembers("characters").SetVal([]string{"Ragnar"})
	s.mock.ExpectGet("character:Ragnar").SetVal(s.marshal(record))

	records, err := s.repo.List(ctx)
	s.Require().NoError(err)
	s.Require().Len(records, 1)
	s.Equal("Ragnar", records[0].Name)
}

func (s *RedisRepoTestSuite) TestList_SkipsVanishedRecords() {
	ctx := context.Background()

	// A name can linger in the set after its record expires; listing
	// skips it instead of failing.
	s.mock.ExpectSMembers("characters").SetVal([]string{"Ghost"})
	s.mock.ExpectGet("character:Ghost").RedisNil()

	records, err := s.repo.List(ctx)
	s.Require().NoError(err)
	s.Empty(records)
}

func (s *RedisRepoTestSuite) TestDelete() {
	ctx := context.Background()
	record := testRecord("Ragnar", "abc123")

	s.mock.ExpectGet("character:Ragnar").SetVal(s.marshal(record))
	s.mock.ExpectDel("character:Ragnar").SetVal(1)
	s.mock.ExpectSRem("characters", "Ragnar").SetVal(1)
	s.mock.ExpectHDel("character-hashes", "abc123").SetVal(1)

	s.NoError(s.repo.Delete(ctx, "Ragnar"))
}

func (s *RedisRepoTestSuite) TestDelete_NotFound() {
	ctx := context.Background()

	s.mock.ExpectGet("character:Nobody").RedisNil()

	s.True(dnderr.IsNotFound(s.repo.Delete(ctx, "Nobody")))
}

func (s *RedisRepoTestSuite) TestExists() {
	ctx := context.Background()

	s.mock.ExpectExists("character:Ragnar").SetVal(1)
	exists, err := s.repo.Exists(ctx, "Ragnar")
	s.Require().NoError(err)
	s.True(exists)

	s.mock.ExpectExists("character:Nobody").SetVal(0)
	exists, err = s.repo.Exists(ctx, "Nobody")
	s.Require().NoError(err)
	s.False(exists)
}
