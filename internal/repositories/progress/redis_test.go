package progress_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/gem-battle/internal/entities"
	"github.com/KirkDiggler/gem-battle/internal/errors"
	progressrepo "github.com/KirkDiggler/gem-battle/internal/repositories/progress"
	"github.com/KirkDiggler/gem-battle/internal/testutils"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	repo    progressrepo.Repository
	cleanup func()
	ctx     context.Context
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	client, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup
	s.ctx = context.Background()

	repo, err := progressrepo.NewRedisRepository(&progressrepo.Config{
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

func (s *RedisRepositoryTestSuite) TestProgressRoundTrip() {
	saved := &progressrepo.Progress{Zenny: 120, Day: 4, DayPhase: 1}

	_, err := s.repo.SaveProgress(s.ctx, progressrepo.SaveProgressInput{Progress: saved})
	s.Require().NoError(err)

	out, err := s.repo.GetProgress(s.ctx, progressrepo.GetProgressInput{})
	s.Require().NoError(err)
	s.Equal(saved, out.Progress)
}

func (s *RedisRepositoryTestSuite) TestGetProgressBeforeSaveIsNotFound() {
	_, err := s.repo.GetProgress(s.ctx, progressrepo.GetProgressInput{})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestSaveProgressRejectsNegativeZenny() {
	_, err := s.repo.SaveProgress(s.ctx, progressrepo.SaveProgressInput{
		Progress: &progressrepo.Progress{Zenny: -10},
	})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestUnlocksRoundTrip() {
	keys := []string{entities.GemSmite, entities.GemRend}

	_, err := s.repo.SaveUnlocks(s.ctx, progressrepo.SaveUnlocksInput{
		Class:   entities.ClassKnight,
		GemKeys: keys,
	})
	s.Require().NoError(err)

	out, err := s.repo.GetUnlocks(s.ctx, progressrepo.GetUnlocksInput{Class: entities.ClassKnight})
	s.Require().NoError(err)
	s.Equal(keys, out.GemKeys)
}

func (s *RedisRepositoryTestSuite) TestUnlocksAreIsolatedByClass() {
	_, err := s.repo.SaveUnlocks(s.ctx, progressrepo.SaveUnlocksInput{
		Class:   entities.ClassMage,
		GemKeys: []string{entities.GemToxin},
	})
	s.Require().NoError(err)

	_, err = s.repo.GetUnlocks(s.ctx, progressrepo.GetUnlocksInput{Class: entities.ClassThief})
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestUnlocksRequireClass() {
	_, err := s.repo.GetUnlocks(s.ctx, progressrepo.GetUnlocksInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.SaveUnlocks(s.ctx, progressrepo.SaveUnlocksInput{})
	s.True(errors.IsInvalidArgument(err))
}

func TestRedisRepositorySuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}
