package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/staking/base/ctx"
	"github.com/x-xyz/staking/domain"
	"github.com/x-xyz/staking/domain/staking"
	mStaking "github.com/x-xyz/staking/domain/staking/mocks"
	"github.com/x-xyz/staking/service/mutex"
)

type passTx struct{}

func (passTx) RunWithTransaction(c ctx.Ctx, run func(ctx.Ctx) error) error {
	return run(c)
}

type noopLocker struct {
	keys []string
}

func (l *noopLocker) Lock(c ctx.Ctx, key string) (mutex.Unlock, error) {
	l.keys = append(l.keys, key)
	return func() {}, nil
}

var (
	purple = domain.NewSymbol("PURPLE", 4)
	blux   = domain.NewSymbol("BLUX", 4)
)

type RegistryTestSuite struct {
	suite.Suite
	repo   *mStaking.ConfigRepo
	locker *noopLocker
	uc     staking.RegistryUseCase
	act    staking.Action
}

func (s *RegistryTestSuite) SetupTest() {
	s.repo = &mStaking.ConfigRepo{}
	s.locker = &noopLocker{}
	s.uc = NewRegistryUseCase(&RegistryUseCaseCfg{
		ConfigRepo: s.repo,
		Transactor: passTx{},
		Locker:     s.locker,
	})
	s.act = staking.Action{
		Contract: staking.Contract{Self: "stakepurple"},
		Auth:     []domain.Name{"stakepurple"},
		Now:      time.Unix(1000, 0).UTC(),
	}
}

func (s *RegistryTestSuite) TearDownTest() {
	s.repo.AssertExpectations(s.T())
}

func (s *RegistryTestSuite) args() staking.SetParamsArgs {
	return staking.SetParamsArgs{
		Caller:         "stakepurple",
		StakeSymbol:    purple,
		StakeContract:  "purpletoken",
		RewardSymbol:   blux,
		RewardContract: "bluxtoken",
		UnstakePeriod:  3600,
		RewardRate:     500,
	}
}

func (s *RegistryTestSuite) TestSetParamsRequiresContract() {
	act := s.act
	act.Auth = []domain.Name{"alice"}
	_, err := s.uc.SetParams(ctx.Background(), act, s.args())
	s.True(errors.Is(err, domain.ErrAuthorization))
}

func (s *RegistryTestSuite) TestSetParamsValidation() {
	for _, mutate := range []func(*staking.SetParamsArgs){
		func(a *staking.SetParamsArgs) { a.UnstakePeriod = 0 },
		func(a *staking.SetParamsArgs) { a.RewardRate = 0 },
		func(a *staking.SetParamsArgs) { a.StakeSymbol = domain.NewSymbol("purple", 4) },
		func(a *staking.SetParamsArgs) { a.RewardSymbol = domain.Symbol{} },
		func(a *staking.SetParamsArgs) { a.StakeContract = "Bad" },
	} {
		args := s.args()
		mutate(&args)
		_, err := s.uc.SetParams(ctx.Background(), s.act, args)
		s.True(errors.Is(err, domain.ErrValidation), "%+v", args)
	}
	s.Empty(s.locker.keys)
}

func (s *RegistryTestSuite) TestSetParamsCreates() {
	s.repo.On("FindOne", mock.Anything, "BLUX").Return(nil, domain.ErrNotFound).Once()
	s.repo.On("FindOne", mock.Anything, "PURPLE").Return(nil, domain.ErrNotFound).Once()
	s.repo.On("Upsert", mock.Anything, mock.MatchedBy(func(cfg *staking.TokenConfig) bool {
		return cfg.Creator == "stakepurple" && cfg.Code() == "PURPLE" && cfg.RewardToken.Contract == "bluxtoken" &&
			cfg.UnstakePeriod == 3600 && cfg.RewardRate == 500 && !cfg.IsPaused && cfg.CreatedAt.Equal(s.act.Now)
	})).Return(nil).Once()

	cfg, err := s.uc.SetParams(ctx.Background(), s.act, s.args())
	s.Require().NoError(err)
	s.Equal(purple, cfg.StakeToken.Symbol)
	s.Equal([]string{"lock:registry"}, s.locker.keys)
}

func (s *RegistryTestSuite) TestSetParamsUpdateKeepsCreatorAndPause() {
	created := time.Unix(10, 0).UTC()
	existing := &staking.TokenConfig{
		Creator:       "founder",
		StakeToken:    domain.ExtendedSymbol{Contract: "purpletoken", Symbol: purple},
		RewardToken:   domain.ExtendedSymbol{Contract: "bluxtoken", Symbol: blux},
		UnstakePeriod: 60,
		RewardRate:    100,
		IsPaused:      true,
		CreatedAt:     created,
	}
	s.repo.On("FindOne", mock.Anything, "BLUX").Return(nil, domain.ErrNotFound).Once()
	s.repo.On("FindOne", mock.Anything, "PURPLE").Return(existing, nil).Once()
	s.repo.On("Upsert", mock.Anything, mock.Anything).Return(nil).Once()

	args := s.args()
	args.Caller = "someoneelse"
	cfg, err := s.uc.SetParams(ctx.Background(), s.act, args)
	s.Require().NoError(err)
	s.Equal(domain.Name("founder"), cfg.Creator)
	s.True(cfg.IsPaused)
	s.Equal(created, cfg.CreatedAt)
	s.Equal(uint32(3600), cfg.UnstakePeriod)
	s.Equal(uint32(500), cfg.RewardRate)
	s.Equal(s.act.Now, cfg.UpdatedAt)
}

func (s *RegistryTestSuite) TestSetParamsKeepsStakePrecision() {
	existing := &staking.TokenConfig{
		Creator:     "founder",
		StakeToken:  domain.ExtendedSymbol{Contract: "purpletoken", Symbol: purple},
		RewardToken: domain.ExtendedSymbol{Contract: "bluxtoken", Symbol: blux},
	}
	s.repo.On("FindOne", mock.Anything, "BLUX").Return(nil, domain.ErrNotFound).Once()
	s.repo.On("FindOne", mock.Anything, "PURPLE").Return(existing, nil).Once()

	args := s.args()
	args.StakeSymbol = domain.NewSymbol("PURPLE", 6)
	_, err := s.uc.SetParams(ctx.Background(), s.act, args)
	s.True(errors.Is(err, domain.ErrConflict))
	s.Equal(purple, existing.StakeToken.Symbol)
	s.repo.AssertNotCalled(s.T(), "Upsert", mock.Anything, mock.Anything)
}

func (s *RegistryTestSuite) TestSetParamsRewardCollision() {
	s.repo.On("FindOne", mock.Anything, "BLUX").Return(&staking.TokenConfig{}, nil).Once()

	_, err := s.uc.SetParams(ctx.Background(), s.act, s.args())
	s.True(errors.Is(err, domain.ErrConflict))
	s.repo.AssertNotCalled(s.T(), "Upsert", mock.Anything, mock.Anything)
}

func (s *RegistryTestSuite) TestSetParamsRewardIsStake() {
	args := s.args()
	args.RewardSymbol = purple
	_, err := s.uc.SetParams(ctx.Background(), s.act, args)
	s.True(errors.Is(err, domain.ErrConflict))
}

func (s *RegistryTestSuite) TestSetPauseAllIsIdempotent() {
	s.repo.On("SetPaused", mock.Anything, (*string)(nil), true, s.act.Now).Return(int64(2), nil).Twice()

	for _, sym := range []domain.Symbol{{}, domain.NewSymbol(staking.PauseAll, 0)} {
		n, err := s.uc.SetPause(ctx.Background(), s.act, true, "purpletoken", sym)
		s.Require().NoError(err)
		s.Equal(2, n)
	}
}

func (s *RegistryTestSuite) TestSetPauseEmptyContractSelectsAll() {
	s.repo.On("SetPaused", mock.Anything, (*string)(nil), false, s.act.Now).Return(int64(0), nil).Once()

	n, err := s.uc.SetPause(ctx.Background(), s.act, false, "", purple)
	s.Require().NoError(err)
	s.Zero(n)
}

func (s *RegistryTestSuite) TestSetPauseOne() {
	s.repo.On("FindOne", mock.Anything, "PURPLE").Return(&staking.TokenConfig{
		StakeToken: domain.ExtendedSymbol{Contract: "purpletoken", Symbol: purple},
	}, nil)
	s.repo.On("SetPaused", mock.Anything, mock.MatchedBy(func(code *string) bool { return code != nil && *code == "PURPLE" }), true, s.act.Now).
		Return(int64(1), nil).Once()

	n, err := s.uc.SetPause(ctx.Background(), s.act, true, "purpletoken", purple)
	s.Require().NoError(err)
	s.Equal(1, n)

	_, err = s.uc.SetPause(ctx.Background(), s.act, true, "faketoken", purple)
	s.True(errors.Is(err, domain.ErrValidation))
}

func (s *RegistryTestSuite) TestSetPauseMissing() {
	s.repo.On("FindOne", mock.Anything, "BLUX").Return(nil, domain.ErrNotFound).Once()

	_, err := s.uc.SetPause(ctx.Background(), s.act, true, "bluxtoken", blux)
	s.True(errors.Is(err, domain.ErrNotFound))
}

func (s *RegistryTestSuite) TestSetPauseRequiresContract() {
	act := s.act
	act.Auth = nil
	_, err := s.uc.SetPause(ctx.Background(), act, true, "", domain.Symbol{})
	s.True(errors.Is(err, domain.ErrAuthorization))
}

func (s *RegistryTestSuite) TestFindOne() {
	s.repo.On("FindOne", mock.Anything, "PURPLE").Return(nil, domain.ErrNotFound).Once()

	_, err := s.uc.FindOne(ctx.Background(), "PURPLE")
	s.True(errors.Is(err, domain.ErrNotFound))
	_, err = s.uc.FindOne(ctx.Background(), "bad")
	s.True(errors.Is(err, domain.ErrValidation))
}

func TestRegistryTestSuite(t *testing.T) {
	suite.Run(t, new(RegistryTestSuite))
}
