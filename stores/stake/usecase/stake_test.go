package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/staking/base/ctx"
	"github.com/x-xyz/staking/domain"
	mDomain "github.com/x-xyz/staking/domain/mocks"
	"github.com/x-xyz/staking/domain/staking"
	mStaking "github.com/x-xyz/staking/domain/staking/mocks"
	"github.com/x-xyz/staking/domain/transfer"
	mTransfer "github.com/x-xyz/staking/domain/transfer/mocks"
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

const self = domain.Name("stakepurple")

var (
	purple = domain.NewSymbol("PURPLE", 4)
	green  = domain.NewSymbol("GREEN", 2)
	blux   = domain.NewSymbol("BLUX", 4)
	day    = int64(86400)
)

type StakeTestSuite struct {
	suite.Suite
	configs   *mStaking.ConfigRepo
	stakes    *mStaking.StakeRepo
	transfers *mTransfer.UseCase
	identity  *mDomain.IdentityService
	locker    *noopLocker
	uc        staking.UseCase
}

func (s *StakeTestSuite) SetupTest() {
	s.configs = &mStaking.ConfigRepo{}
	s.stakes = &mStaking.StakeRepo{}
	s.transfers = &mTransfer.UseCase{}
	s.identity = &mDomain.IdentityService{}
	s.locker = &noopLocker{}
	s.uc = NewStakeUseCase(&StakeUseCaseCfg{
		ConfigRepo: s.configs,
		StakeRepo:  s.stakes,
		TransferUC: s.transfers,
		Identity:   s.identity,
		Transactor: passTx{},
		Locker:     s.locker,
	})
}

func (s *StakeTestSuite) TearDownTest() {
	s.configs.AssertExpectations(s.T())
	s.stakes.AssertExpectations(s.T())
	s.transfers.AssertExpectations(s.T())
	s.identity.AssertExpectations(s.T())
}

func at(sec int64, auth ...domain.Name) staking.Action {
	return staking.Action{
		Contract: staking.Contract{Self: self, ClaimCooldown: staking.ClaimCooldown},
		Auth:     auth,
		Now:      time.Unix(sec, 0).UTC(),
	}
}

func purpleConfig() *staking.TokenConfig {
	return &staking.TokenConfig{
		Creator:       self,
		StakeToken:    domain.ExtendedSymbol{Contract: "purpletoken", Symbol: purple},
		RewardToken:   domain.ExtendedSymbol{Contract: "bluxtoken", Symbol: blux},
		UnstakePeriod: 3600,
		RewardRate:    500,
	}
}

func greenConfig(paused bool) *staking.TokenConfig {
	return &staking.TokenConfig{
		Creator:       self,
		StakeToken:    domain.ExtendedSymbol{Contract: "greentoken", Symbol: green},
		RewardToken:   domain.ExtendedSymbol{Contract: "bluxtoken", Symbol: blux},
		UnstakePeriod: 60,
		RewardRate:    200,
		IsPaused:      paused,
	}
}

func entry(account domain.Name, amount int64, sym domain.Symbol, lastClaim int64) staking.StakeEntry {
	return staking.StakeEntry{
		Account:      account,
		StakedAmount: domain.NewAsset(amount, sym),
		LastClaim:    time.Unix(lastClaim, 0).UTC(),
	}
}

func deposit(from domain.Name, amount int64, memo string) staking.TransferNotification {
	return staking.TransferNotification{
		Contract: "purpletoken",
		From:     from,
		To:       self,
		Quantity: domain.NewAsset(amount, purple),
		Memo:     memo,
	}
}

func rewardTo(to domain.Name, amount int64) interface{} {
	return mock.MatchedBy(func(ins *transfer.Instruction) bool {
		return ins.Kind == transfer.KindReward && ins.To == to && ins.From == self &&
			ins.Contract == "bluxtoken" && ins.Quantity == domain.NewAsset(amount, blux) && ins.Status == transfer.StatusPending
	})
}

func (s *StakeTestSuite) TestDepositCreatesEntry() {
	s.configs.On("FindOne", mock.Anything, "PURPLE").Return(purpleConfig(), nil).Once()
	s.stakes.On("FindOne", mock.Anything, domain.Name("alice"), "PURPLE").Return(nil, domain.ErrNotFound).Once()
	s.stakes.On("Create", mock.Anything, mock.MatchedBy(func(e *staking.StakeEntry) bool {
		return e.Account == "alice" && e.StakedAmount == domain.NewAsset(1000000, purple) && e.LastClaim.Equal(time.Unix(day, 0))
	})).Return(nil).Once()

	res, err := s.uc.OnTransfer(ctx.Background(), at(day, "purpletoken"), deposit("alice", 1000000, "stake"))
	s.Require().NoError(err)
	s.False(res.Ignored)
	s.Equal(domain.Name("alice"), res.Beneficiary)
	s.Empty(res.Payouts)
	s.Equal([]string{"lock:account:alice"}, s.locker.keys)
}

func (s *StakeTestSuite) TestDepositAccumulatesAfterForcedClaim() {
	existing := entry("alice", 500000, purple, 0)
	s.configs.On("FindOne", mock.Anything, "PURPLE").Return(purpleConfig(), nil).Twice()
	s.stakes.On("FindOne", mock.Anything, domain.Name("alice"), "PURPLE").Return(&existing, nil).Once()
	s.stakes.On("FindAll", mock.Anything, mock.Anything).Return([]staking.StakeEntry{entry("alice", 500000, purple, 0)}, nil).Once()
	// 50 units sit at level 5
	s.transfers.On("Enqueue", mock.Anything, rewardTo("alice", 50*5*1+21)).Return(nil).Once()
	s.stakes.On("Update", mock.Anything, mock.MatchedBy(func(e *staking.StakeEntry) bool {
		return e.StakedAmount.Amount == 1500000 && e.LastClaim.Equal(time.Unix(0, 0))
	})).Return(nil).Once()

	res, err := s.uc.OnTransfer(ctx.Background(), at(day, "purpletoken"), deposit("alice", 1000000, ""))
	s.Require().NoError(err)
	s.Equal(int64(1500000), res.Entry.StakedAmount.Amount)
	s.Len(res.Payouts, 1)
}

func (s *StakeTestSuite) TestDepositForcedClaimWithinCooldownFails() {
	existing := entry("alice", 500000, purple, day-10)
	s.configs.On("FindOne", mock.Anything, "PURPLE").Return(purpleConfig(), nil).Twice()
	s.stakes.On("FindOne", mock.Anything, domain.Name("alice"), "PURPLE").Return(&existing, nil).Once()
	s.stakes.On("FindAll", mock.Anything, mock.Anything).Return([]staking.StakeEntry{existing}, nil).Once()

	_, err := s.uc.OnTransfer(ctx.Background(), at(day, "purpletoken"), deposit("alice", 1000000, ""))
	s.True(errors.Is(err, domain.ErrPrecondition))
	s.stakes.AssertNotCalled(s.T(), "Update", mock.Anything, mock.Anything)
}

func (s *StakeTestSuite) TestDepositWhilePaused() {
	cfg := purpleConfig()
	cfg.IsPaused = true
	existing := entry("alice", 500000, purple, day-10)
	s.configs.On("FindOne", mock.Anything, "PURPLE").Return(cfg, nil).Twice()
	s.stakes.On("FindOne", mock.Anything, domain.Name("alice"), "PURPLE").Return(&existing, nil).Once()
	s.stakes.On("FindAll", mock.Anything, mock.Anything).Return([]staking.StakeEntry{existing}, nil).Once()
	s.stakes.On("Update", mock.Anything, mock.Anything).Return(nil).Once()

	res, err := s.uc.OnTransfer(ctx.Background(), at(day, "purpletoken"), deposit("alice", 1000000, ""))
	s.Require().NoError(err)
	s.Equal([]string{"PURPLE"}, res.Skipped)
	s.Empty(res.Payouts)
}

func (s *StakeTestSuite) TestDepositForMemo() {
	s.identity.On("IsRegisteredAccount", mock.Anything, domain.Name("bob")).Return(true, nil).Once()
	s.configs.On("FindOne", mock.Anything, "PURPLE").Return(purpleConfig(), nil).Once()
	s.stakes.On("FindOne", mock.Anything, domain.Name("bob"), "PURPLE").Return(nil, domain.ErrNotFound).Once()
	s.stakes.On("Create", mock.Anything, mock.MatchedBy(func(e *staking.StakeEntry) bool { return e.Account == "bob" })).Return(nil).Once()

	res, err := s.uc.OnTransfer(ctx.Background(), at(day, "purpletoken"), deposit("alice", 1000000, "for:  bob "))
	s.Require().NoError(err)
	s.Equal(domain.Name("bob"), res.Beneficiary)
}

func (s *StakeTestSuite) TestDepositForUnknownAccount() {
	s.identity.On("IsRegisteredAccount", mock.Anything, domain.Name("ghost")).Return(false, nil).Once()

	_, err := s.uc.OnTransfer(ctx.Background(), at(day, "purpletoken"), deposit("alice", 1000000, "for:ghost"))
	s.True(errors.Is(err, domain.ErrNotFound))
}

func (s *StakeTestSuite) TestDepositForBadMemo() {
	_, err := s.uc.OnTransfer(ctx.Background(), at(day, "purpletoken"), deposit("alice", 1000000, "for:waytoolongname1"))
	s.True(errors.Is(err, domain.ErrValidation))
}

func (s *StakeTestSuite) TestDepositTooSmall() {
	s.configs.On("FindOne", mock.Anything, "PURPLE").Return(purpleConfig(), nil).Once()

	_, err := s.uc.OnTransfer(ctx.Background(), at(day, "purpletoken"), deposit("alice", 1, ""))
	s.True(errors.Is(err, domain.ErrValidation))
}

func (s *StakeTestSuite) TestDepositPrecisionMismatch() {
	s.configs.On("FindOne", mock.Anything, "PURPLE").Return(purpleConfig(), nil).Once()
	n := deposit("alice", 1000, "")
	n.Quantity.Symbol = domain.NewSymbol("PURPLE", 2)

	_, err := s.uc.OnTransfer(ctx.Background(), at(day, "purpletoken"), n)
	s.True(errors.Is(err, domain.ErrValidation))
}

func (s *StakeTestSuite) TestDepositRequiresEmitter() {
	_, err := s.uc.OnTransfer(ctx.Background(), at(day, "alice"), deposit("alice", 1000000, ""))
	s.True(errors.Is(err, domain.ErrAuthorization))
}

func (s *StakeTestSuite) TestDepositIgnored() {
	res, err := s.uc.OnTransfer(ctx.Background(), at(day, "purpletoken"), deposit(self, 1000000, ""))
	s.Require().NoError(err)
	s.True(res.Ignored)

	n := deposit("alice", 1000000, "")
	n.To = "bob"
	res, err = s.uc.OnTransfer(ctx.Background(), at(day, "purpletoken"), n)
	s.Require().NoError(err)
	s.True(res.Ignored)

	// same symbol from another contract
	s.configs.On("FindOne", mock.Anything, "PURPLE").Return(purpleConfig(), nil).Once()
	s.configs.On("FindAll", mock.Anything, mock.Anything).Return([]staking.TokenConfig{}, nil).Once()
	n = deposit("alice", 1000000, "")
	n.Contract = "faketoken"
	res, err = s.uc.OnTransfer(ctx.Background(), at(day, "faketoken"), n)
	s.Require().NoError(err)
	s.True(res.Ignored)
	s.Equal("token is not stakeable", res.Reason)
}

func (s *StakeTestSuite) TestDepositRewardFunding() {
	s.configs.On("FindOne", mock.Anything, "BLUX").Return(nil, domain.ErrNotFound).Once()
	s.configs.On("FindAll", mock.Anything, mock.Anything).Return([]staking.TokenConfig{*purpleConfig()}, nil).Once()
	n := staking.TransferNotification{
		Contract: "bluxtoken",
		From:     "treasury",
		To:       self,
		Quantity: domain.NewAsset(100000000, blux),
	}

	res, err := s.uc.OnTransfer(ctx.Background(), at(day, "bluxtoken"), n)
	s.Require().NoError(err)
	s.True(res.Ignored)
	s.Equal("reward pool funding", res.Reason)
}

func (s *StakeTestSuite) TestClaimOneDay() {
	s.stakes.On("FindAll", mock.Anything, mock.Anything).Return([]staking.StakeEntry{entry("alice", 1000000, purple, 0)}, nil).Once()
	s.configs.On("FindOne", mock.Anything, "PURPLE").Return(purpleConfig(), nil).Once()
	s.stakes.On("Update", mock.Anything, mock.MatchedBy(func(e *staking.StakeEntry) bool {
		return e.LastClaim.Equal(time.Unix(day, 0)) && e.StakedAmount.Amount == 1000000
	})).Return(nil).Once()
	s.transfers.On("Enqueue", mock.Anything, rewardTo("alice", 100*5*1+36)).Return(nil).Once()

	res, err := s.uc.Claim(ctx.Background(), at(day, "alice"), "alice")
	s.Require().NoError(err)
	s.Require().Len(res.Payouts, 1)
	s.Equal("0.0536 BLUX", res.Payouts[0].Reward.Amount.String())
	s.Equal("Rewards: 1 days, 24 hours, 0m | staked: 100 PURPLE @ 5% | Bonus: 36 | Next Level: +20 PURPLE staked", res.Payouts[0].Instruction.Memo)
	s.Empty(res.Skipped)
}

func (s *StakeTestSuite) TestClaimSkipsPaused() {
	s.stakes.On("FindAll", mock.Anything, mock.Anything).Return([]staking.StakeEntry{
		entry("alice", 1000000, purple, 0),
		entry("alice", 5000, green, 0),
	}, nil).Once()
	s.configs.On("FindOne", mock.Anything, "PURPLE").Return(purpleConfig(), nil).Once()
	s.configs.On("FindOne", mock.Anything, "GREEN").Return(greenConfig(true), nil).Once()
	s.stakes.On("Update", mock.Anything, mock.MatchedBy(func(e *staking.StakeEntry) bool { return e.Code() == "PURPLE" })).Return(nil).Once()
	s.transfers.On("Enqueue", mock.Anything, rewardTo("alice", 536)).Return(nil).Once()

	res, err := s.uc.Claim(ctx.Background(), at(day, "alice"), "alice")
	s.Require().NoError(err)
	s.Len(res.Payouts, 1)
	s.Equal([]string{"GREEN"}, res.Skipped)
}

func (s *StakeTestSuite) TestClaimMissingConfigFailsWholeClaim() {
	s.stakes.On("FindAll", mock.Anything, mock.Anything).Return([]staking.StakeEntry{
		entry("alice", 1000000, purple, 0),
		entry("alice", 5000, green, 0),
	}, nil).Once()
	s.configs.On("FindOne", mock.Anything, "PURPLE").Return(purpleConfig(), nil).Once()
	s.configs.On("FindOne", mock.Anything, "GREEN").Return(nil, domain.ErrNotFound).Once()

	_, err := s.uc.Claim(ctx.Background(), at(day, "alice"), "alice")
	s.True(errors.Is(err, domain.ErrNotFound))
	s.transfers.AssertNotCalled(s.T(), "Enqueue", mock.Anything, mock.Anything)
	s.stakes.AssertNotCalled(s.T(), "Update", mock.Anything, mock.Anything)
}

func (s *StakeTestSuite) TestClaimCooldown() {
	s.stakes.On("FindAll", mock.Anything, mock.Anything).Return([]staking.StakeEntry{entry("alice", 1000000, purple, day-199)}, nil).Once()
	s.configs.On("FindOne", mock.Anything, "PURPLE").Return(purpleConfig(), nil).Once()

	_, err := s.uc.Claim(ctx.Background(), at(day, "alice"), "alice")
	s.True(errors.Is(err, domain.ErrPrecondition))
}

func (s *StakeTestSuite) TestClaimNoEntries() {
	s.stakes.On("FindAll", mock.Anything, mock.Anything).Return([]staking.StakeEntry{}, nil).Once()

	_, err := s.uc.Claim(ctx.Background(), at(day, self), "alice")
	s.True(errors.Is(err, domain.ErrNotFound))
}

func (s *StakeTestSuite) TestClaimAuthority() {
	_, err := s.uc.Claim(ctx.Background(), at(day, "mallory"), "alice")
	s.True(errors.Is(err, domain.ErrAuthorization))
	s.Empty(s.locker.keys)
}

func (s *StakeTestSuite) expectForcedClaim(e staking.StakeEntry, reward int64) {
	s.stakes.On("FindAll", mock.Anything, mock.Anything).Return([]staking.StakeEntry{e}, nil).Once()
	s.configs.On("FindOne", mock.Anything, "PURPLE").Return(purpleConfig(), nil).Once()
	s.transfers.On("Enqueue", mock.Anything, rewardTo(e.Account, reward)).Return(nil).Once()
}

func refundTo(to domain.Name, amount int64) interface{} {
	return mock.MatchedBy(func(ins *transfer.Instruction) bool {
		return ins.Kind == transfer.KindRefund && ins.To == to && ins.Contract == "purpletoken" &&
			ins.Quantity == domain.NewAsset(amount, purple) && ins.Memo == "here's your PURPLE back"
	})
}

func (s *StakeTestSuite) TestUnstakeLockBoundary() {
	now := int64(10000)
	locked := entry("alice", 1000000, purple, now-3599)
	s.identity.On("IsRegisteredAccount", mock.Anything, domain.Name("alice")).Return(true, nil)
	s.configs.On("FindOne", mock.Anything, "PURPLE").Return(purpleConfig(), nil).Once()
	s.expectForcedClaim(locked, 36)
	s.stakes.On("FindOne", mock.Anything, domain.Name("alice"), "PURPLE").Return(&locked, nil).Once()

	_, err := s.uc.Unstake(ctx.Background(), at(now, "alice"), "alice", domain.NewAsset(1000000, purple))
	s.Require().Error(err)
	s.True(errors.Is(err, domain.ErrPrecondition))
	s.Equal("you can unstake in 0 hours and 0 minutes", err.Error())

	unlocked := entry("alice", 1000000, purple, now-3600)
	s.configs.On("FindOne", mock.Anything, "PURPLE").Return(purpleConfig(), nil).Once()
	s.expectForcedClaim(unlocked, 36)
	s.stakes.On("FindOne", mock.Anything, domain.Name("alice"), "PURPLE").Return(&unlocked, nil).Once()
	s.stakes.On("Remove", mock.Anything, domain.Name("alice"), "PURPLE").Return(nil).Once()
	s.transfers.On("Enqueue", mock.Anything, refundTo("alice", 1000000)).Return(nil).Once()

	res, err := s.uc.Unstake(ctx.Background(), at(now, "alice"), "alice", domain.NewAsset(1000000, purple))
	s.Require().NoError(err)
	s.Nil(res.Entry, "a withdrawn stake leaves no row behind")
	s.Equal(transfer.KindRefund, res.Refund.Kind)
	s.stakes.AssertNotCalled(s.T(), "Update", mock.Anything, mock.Anything)
}

func (s *StakeTestSuite) TestUnstakePartial() {
	e := entry("alice", 1000000, purple, 0)
	s.identity.On("IsRegisteredAccount", mock.Anything, domain.Name("alice")).Return(true, nil).Once()
	s.configs.On("FindOne", mock.Anything, "PURPLE").Return(purpleConfig(), nil).Once()
	s.expectForcedClaim(e, 536)
	s.stakes.On("FindOne", mock.Anything, domain.Name("alice"), "PURPLE").Return(&e, nil).Once()
	s.stakes.On("Update", mock.Anything, mock.MatchedBy(func(e *staking.StakeEntry) bool {
		return e.StakedAmount.Amount == 250000 && e.LastClaim.Equal(time.Unix(0, 0))
	})).Return(nil).Once()
	s.transfers.On("Enqueue", mock.Anything, refundTo("alice", 750000)).Return(nil).Once()

	res, err := s.uc.Unstake(ctx.Background(), at(day, "alice"), "alice", domain.NewAsset(750000, purple))
	s.Require().NoError(err)
	s.Equal(int64(250000), res.Entry.StakedAmount.Amount)
	s.Len(res.Payouts, 1)
}

func (s *StakeTestSuite) TestUnstakeMoreThanStaked() {
	e := entry("alice", 1000000, purple, 0)
	s.identity.On("IsRegisteredAccount", mock.Anything, domain.Name("alice")).Return(true, nil).Once()
	s.configs.On("FindOne", mock.Anything, "PURPLE").Return(purpleConfig(), nil).Once()
	s.expectForcedClaim(e, 536)
	s.stakes.On("FindOne", mock.Anything, domain.Name("alice"), "PURPLE").Return(&e, nil).Once()

	_, err := s.uc.Unstake(ctx.Background(), at(day, "alice"), "alice", domain.NewAsset(1000001, purple))
	s.True(errors.Is(err, domain.ErrPrecondition))
	s.Contains(err.Error(), "100.0000 PURPLE")
}

func (s *StakeTestSuite) TestUnstakePausedSkipsClaim() {
	cfg := purpleConfig()
	cfg.IsPaused = true
	e := entry("alice", 1000000, purple, day-3600)
	s.identity.On("IsRegisteredAccount", mock.Anything, domain.Name("alice")).Return(true, nil).Once()
	s.configs.On("FindOne", mock.Anything, "PURPLE").Return(cfg, nil).Once()
	s.stakes.On("FindOne", mock.Anything, domain.Name("alice"), "PURPLE").Return(&e, nil).Once()
	s.stakes.On("Remove", mock.Anything, domain.Name("alice"), "PURPLE").Return(nil).Once()
	s.transfers.On("Enqueue", mock.Anything, refundTo("alice", 1000000)).Return(nil).Once()

	res, err := s.uc.Unstake(ctx.Background(), at(day, "alice"), "alice", domain.NewAsset(1000000, purple))
	s.Require().NoError(err)
	s.Empty(res.Payouts)
	s.stakes.AssertNotCalled(s.T(), "FindAll", mock.Anything, mock.Anything)
}

func (s *StakeTestSuite) TestUnstakeMissingConfig() {
	s.identity.On("IsRegisteredAccount", mock.Anything, domain.Name("alice")).Return(true, nil).Once()
	s.configs.On("FindOne", mock.Anything, "PURPLE").Return(nil, domain.ErrNotFound).Once()

	_, err := s.uc.Unstake(ctx.Background(), at(day, "alice"), "alice", domain.NewAsset(1, purple))
	s.True(errors.Is(err, domain.ErrNotFound))
}

func (s *StakeTestSuite) TestUnstakeValidation() {
	s.identity.On("IsRegisteredAccount", mock.Anything, domain.Name("alice")).Return(true, nil)
	s.identity.On("IsRegisteredAccount", mock.Anything, domain.Name("ghost")).Return(false, nil).Once()

	_, err := s.uc.Unstake(ctx.Background(), at(day, "ghost"), "ghost", domain.NewAsset(1, purple))
	s.True(errors.Is(err, domain.ErrNotFound))

	_, err = s.uc.Unstake(ctx.Background(), at(day, "alice"), "alice", domain.NewAsset(0, purple))
	s.True(errors.Is(err, domain.ErrValidation))

	_, err = s.uc.Unstake(ctx.Background(), at(day, "alice"), "alice", domain.NewAsset(-5, purple))
	s.True(errors.Is(err, domain.ErrValidation))

	_, err = s.uc.Unstake(ctx.Background(), at(day, self), "alice", domain.NewAsset(5, purple))
	s.True(errors.Is(err, domain.ErrAuthorization), "only the account itself may unstake")
}

func (s *StakeTestSuite) TestPositions() {
	s.stakes.On("FindAll", mock.Anything, mock.Anything).Return([]staking.StakeEntry{
		entry("alice", 1000000, purple, day-100),
		entry("alice", 5000, green, 0),
	}, nil).Once()
	s.configs.On("FindOne", mock.Anything, "PURPLE").Return(purpleConfig(), nil).Once()
	s.configs.On("FindOne", mock.Anything, "GREEN").Return(nil, domain.ErrNotFound).Once()

	res, err := s.uc.Positions(ctx.Background(), at(day), "alice")
	s.Require().NoError(err)
	s.Require().Len(res, 1)
	p := res[0]
	s.Equal(staking.LevelInfo{Level: 7, Bonus: 36, NextLevelGap: 20}, p.Level)
	s.Equal(domain.NewAsset(36, blux), p.Accrued)
	s.Equal(100*time.Second, p.ClaimableIn)
	s.Equal(3500*time.Second, p.UnlocksIn)
	s.False(p.Paused)
}

func (s *StakeTestSuite) TestPositionsKeepsAccountFilter() {
	s.stakes.On("FindAll", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			o, err := staking.GetStakeFindAllOptions(
				args.Get(1).(staking.StakeFindAllOptionsFunc),
				args.Get(2).(staking.StakeFindAllOptionsFunc),
				args.Get(3).(staking.StakeFindAllOptionsFunc),
			)
			s.Require().NoError(err)
			s.Equal(domain.Name("alice"), *o.Account)
			s.Equal("PURPLE", *o.Code)
			s.Equal(int32(10), *o.Limit)
		}).
		Return([]staking.StakeEntry{}, nil).Once()

	res, err := s.uc.Positions(ctx.Background(), at(day), "alice",
		staking.StakeWithAccount("bob"), staking.StakeWithSymbol("PURPLE"), staking.StakeWithPagination(0, 10))
	s.Require().NoError(err)
	s.Empty(res)
}

func TestStakeTestSuite(t *testing.T) {
	suite.Run(t, new(StakeTestSuite))
}
