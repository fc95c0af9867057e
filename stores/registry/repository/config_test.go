package repository

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/staking/base/ctx"
	"github.com/x-xyz/staking/base/database/mongoclient"
	"github.com/x-xyz/staking/base/env"
	"github.com/x-xyz/staking/base/metrics"
	"github.com/x-xyz/staking/domain"
	"github.com/x-xyz/staking/domain/staking"
	"github.com/x-xyz/staking/service/query"
)

// ConfigRepoSuite runs against a live database named by MONGO_URI
type ConfigRepoSuite struct {
	suite.Suite
	client *mongoclient.Client
	repo   staking.ConfigRepo
}

func (s *ConfigRepoSuite) SetupSuite() {
	uri := env.MongoURI()
	if uri == "" {
		s.T().Skip("MONGO_URI not set")
	}
	s.client = mongoclient.MustConnectMongoClient(mongoclient.Options{URI: uri, AuthDBName: "admin", DBName: "stakingtest"})
	s.repo = NewConfigRepo(query.New(s.client, metrics.NewLog("query"), false))
}

func (s *ConfigRepoSuite) SetupTest() {
	c := ctx.Background()
	s.Require().NoError(s.client.Database(s.client.DbName).Collection(string(domain.TableTokenConfigs)).Drop(c))
	s.Require().NoError(s.repo.EnsureIndexes(c))
}

func config(code, reward string) *staking.TokenConfig {
	return &staking.TokenConfig{
		Creator:       "stakepurple",
		StakeToken:    domain.ExtendedSymbol{Contract: "purpletoken", Symbol: domain.NewSymbol(code, 4)},
		RewardToken:   domain.ExtendedSymbol{Contract: "bluxtoken", Symbol: domain.NewSymbol(reward, 4)},
		UnstakePeriod: 3600,
		RewardRate:    500,
	}
}

func (s *ConfigRepoSuite) TestUpsertAndLookups() {
	c := ctx.Background()
	s.Require().NoError(s.repo.Upsert(c, config("PURPLE", "BLUX")))
	s.Require().NoError(s.repo.Upsert(c, config("GREEN", "BLUX")))

	updated := config("PURPLE", "BLUX")
	updated.RewardRate = 700
	s.Require().NoError(s.repo.Upsert(c, updated))

	got, err := s.repo.FindOne(c, "PURPLE")
	s.Require().NoError(err)
	s.Equal(uint32(700), got.RewardRate)

	_, err = s.repo.FindOne(c, "BLUX")
	s.True(errors.Is(err, domain.ErrNotFound))

	byReward, err := s.repo.FindAll(c, staking.WithRewardSymbol("BLUX"))
	s.Require().NoError(err)
	s.Require().Len(byReward, 2)
	s.Equal("GREEN", byReward[0].Code())
}

func (s *ConfigRepoSuite) TestSetPaused() {
	c := ctx.Background()
	now := time.Unix(1000, 0).UTC()
	s.Require().NoError(s.repo.Upsert(c, config("PURPLE", "BLUX")))
	s.Require().NoError(s.repo.Upsert(c, config("GREEN", "BLUX")))

	code := "GREEN"
	n, err := s.repo.SetPaused(c, &code, true, now)
	s.Require().NoError(err)
	s.Equal(int64(1), n)

	got, err := s.repo.FindOne(c, "GREEN")
	s.Require().NoError(err)
	s.True(got.IsPaused)

	missing := "RED"
	_, err = s.repo.SetPaused(c, &missing, true, now)
	s.True(errors.Is(err, domain.ErrNotFound))

	n, err = s.repo.SetPaused(c, nil, true, now)
	s.Require().NoError(err)
	s.Equal(int64(2), n)
	all, err := s.repo.FindAll(c)
	s.Require().NoError(err)
	for _, cfg := range all {
		s.True(cfg.IsPaused, cfg.Code())
	}
}

func TestConfigRepoSuite(t *testing.T) {
	suite.Run(t, new(ConfigRepoSuite))
}
