package proficiency_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/gem-battle/internal/entities"
	"github.com/KirkDiggler/gem-battle/internal/errors"
	proficiencyrepo "github.com/KirkDiggler/gem-battle/internal/repositories/proficiency"
	"github.com/KirkDiggler/gem-battle/internal/testutils"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	repo    proficiencyrepo.Repository
	cleanup func()
	ctx     context.Context
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	client, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup
	s.ctx = context.Background()

	repo, err := proficiencyrepo.NewRedisRepository(&proficiencyrepo.Config{
		Client: client,
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	if s.cleanup != nil {
		s.cleanup()
	}
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetRoundTrip() {
	records := entities.ProficiencyRecords{
		entities.GemStrike: {GemKey: entities.GemStrike, SuccessCount: 20},
		entities.GemSmite:  {GemKey: entities.GemSmite, SuccessCount: 4, FailureChance: 0.36},
	}

	_, err := s.repo.Save(s.ctx, proficiencyrepo.SaveInput{
		Class:   entities.ClassKnight,
		Records: records,
	})
	s.Require().NoError(err)

	out, err := s.repo.Get(s.ctx, proficiencyrepo.GetInput{Class: entities.ClassKnight})
	s.Require().NoError(err)
	s.Equal(records, out.Records)
}

func (s *RedisRepositoryTestSuite) TestGetMissingClassIsNotFound() {
	_, err := s.repo.Get(s.ctx, proficiencyrepo.GetInput{Class: entities.ClassMage})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestClassesAreIsolated() {
	_, err := s.repo.Save(s.ctx, proficiencyrepo.SaveInput{
		Class: entities.ClassKnight,
		Records: entities.ProficiencyRecords{
			entities.GemCleave: {GemKey: entities.GemCleave, SuccessCount: 20},
		},
	})
	s.Require().NoError(err)

	_, err = s.repo.Get(s.ctx, proficiencyrepo.GetInput{Class: entities.ClassThief})
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestEmptyClassIsInvalid() {
	_, err := s.repo.Get(s.ctx, proficiencyrepo.GetInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Save(s.ctx, proficiencyrepo.SaveInput{})
	s.True(errors.IsInvalidArgument(err))
}

func TestRedisRepositorySuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}
