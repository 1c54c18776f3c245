package characters_test

import (
	"context"
	"errors"
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/sparta-village/internal/domain/character"
	apperr "github.com/KirkDiggler/sparta-village/internal/errors"
	"github.com/KirkDiggler/sparta-village/internal/repositories/characters"
	"github.com/KirkDiggler/sparta-village/internal/testutils"
)

type RedisRepoTestSuite struct {
	suite.Suite
	mockClient *redis.Client
	mock       redismock.ClientMock
	repo       characters.Repository
	ctx        context.Context
}

func (s *RedisRepoTestSuite) SetupTest() {
	s.mockClient, s.mock = redismock.NewClientMock()
	s.repo = characters.NewRedis(s.mockClient)
	s.ctx = context.Background()
}

func (s *RedisRepoTestSuite) TearDownTest() {
	s.NoError(s.mock.ExpectationsWereMet())
}

func TestRedisRepoTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepoTestSuite))
}

func (s *RedisRepoTestSuite) encode(char *character.Character) string {
	data, err := characters.Encode(char)
	s.Require().NoError(err)
	return string(data)
}

func (s *RedisRepoTestSuite) TestSave() {
	char := testutils.CreateVeteranCharacter("Chad", "전사")
	record := s.encode(char)

	// Happy path
	s.mock.ExpectSet("save:main", record, 0).SetVal("OK")
	s.mock.ExpectSAdd("saves", "main").SetVal(1)

	s.NoError(s.repo.Save(s.ctx, "main", char))

	// Dependency error
	s.mock.ExpectSet("save:main", record, 0).SetErr(errors.New("redis error"))

	s.Error(s.repo.Save(s.ctx, "main", char))

	// Input validation
	s.True(apperr.IsInvalidArgument(s.repo.Save(s.ctx, "main", nil)))
	s.True(apperr.IsInvalidArgument(s.repo.Save(s.ctx, "no spaces", char)))
}

func (s *RedisRepoTestSuite) TestLoad() {
	char := testutils.CreateVeteranCharacter("Chad", "전사")

	s.mock.ExpectGet("save:main").SetVal(s.encode(char))

	loaded, err := s.repo.Load(s.ctx, "main")
	s.Require().NoError(err)
	s.Equal(char, loaded)
}

func (s *RedisRepoTestSuite) TestLoad_NotFound() {
	s.mock.ExpectGet("save:main").RedisNil()

	_, err := s.repo.Load(s.ctx, "main")
	s.True(apperr.IsNotFound(err))
}

func (s *RedisRepoTestSuite) TestLoad_Corrupt() {
	s.mock.ExpectGet("save:main").SetVal("Chad,전사,1,ten,5,100,1500,0\n0\n")

	_, err := s.repo.Load(s.ctx, "main")
	s.True(apperr.IsCorruptSave(err))
}

func (s *RedisRepoTestSuite) TestLoad_DependencyError() {
	s.mock.ExpectGet("save:main").SetErr(errors.New("connection refused"))

	_, err := s.repo.Load(s.ctx, "main")
	s.Error(err)
	s.False(apperr.IsNotFound(err))
}

func (s *RedisRepoTestSuite) TestDelete() {
	s.mock.ExpectDel("save:main").SetVal(1)
	s.mock.ExpectSRem("saves", "main").SetVal(1)

	s.NoError(s.repo.Delete(s.ctx, "main"))

	s.mock.ExpectDel("save:main").SetErr(errors.New("redis error"))

	s.Error(s.repo.Delete(s.ctx, "main"))
}

func (s *RedisRepoTestSuite) TestList() {
	s.mock.ExpectSMembers("saves").SetVal([]string{"main", "not a slot"})
	s.mock.ExpectGet("save:main").SetVal(s.encode(testutils.CreateVeteranCharacter("Chad", "전사")))

	summaries, err := s.repo.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(summaries, 1)
	s.Equal("main", summaries[0].Slot)
	s.Equal("Chad", summaries[0].Name)
	s.Equal(3, summaries[0].Level)
	s.Equal(2650, summaries[0].Gold)
	s.False(summaries[0].Corrupt)
}

func (s *RedisRepoTestSuite) TestList_CorruptAndMissing() {
	s.mock.ExpectSMembers("saves").SetVal([]string{"broken"})
	s.mock.ExpectGet("save:broken").SetVal("garbage")

	summaries, err := s.repo.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(summaries, 1)
	s.True(summaries[0].Corrupt)

	s.mock.ExpectSMembers("saves").SetVal([]string{"gone"})
	s.mock.ExpectGet("save:gone").RedisNil()

	summaries, err = s.repo.List(s.ctx)
	s.Require().NoError(err)
	s.Empty(summaries)
}

func (s *RedisRepoTestSuite) TestList_DependencyError() {
	s.mock.ExpectSMembers("saves").SetErr(errors.New("redis error"))

	_, err := s.repo.List(s.ctx)
	s.Error(err)

	s.mock.ExpectSMembers("saves").SetVal([]string{"main"})
	s.mock.ExpectGet("save:main").SetErr(errors.New("redis error"))

	_, err = s.repo.List(s.ctx)
	s.Error(err)
}

func TestNewRedisRepository_Panics(t *testing.T) {
	assert.Panics(t, func() { characters.NewRedisRepository(nil) })
	assert.Panics(t, func() { characters.NewRedisRepository(&characters.RedisRepoConfig{}) })
}
