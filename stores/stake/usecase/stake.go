package usecase

import (
	"errors"

	"github.com/x-xyz/staking/base/ctx"
	"github.com/x-xyz/staking/base/log"
	"github.com/x-xyz/staking/base/metrics"
	"github.com/x-xyz/staking/domain"
	"github.com/x-xyz/staking/domain/keys"
	"github.com/x-xyz/staking/domain/staking"
	"github.com/x-xyz/staking/domain/transfer"
	"github.com/x-xyz/staking/service/mutex"
)

type stakeUseCaseImpl struct {
	configs   staking.ConfigRepo
	stakes    staking.StakeRepo
	transfers transfer.UseCase
	identity  domain.IdentityService
	tx        domain.Transactor
	locker    mutex.Service
	met       metrics.Service
}

type StakeUseCaseCfg struct {
	ConfigRepo staking.ConfigRepo
	StakeRepo  staking.StakeRepo
	TransferUC transfer.UseCase
	Identity   domain.IdentityService
	Transactor domain.Transactor
	Locker     mutex.Service
	Metrics    metrics.Service
}

func NewStakeUseCase(cfg *StakeUseCaseCfg) staking.UseCase {
	met := cfg.Metrics
	if met == nil {
		met = metrics.NewLog("stake")
	}
	return &stakeUseCaseImpl{
		configs:   cfg.ConfigRepo,
		stakes:    cfg.StakeRepo,
		transfers: cfg.TransferUC,
		identity:  cfg.Identity,
		tx:        cfg.Transactor,
		locker:    cfg.Locker,
		met:       met,
	}
}

func ignored(reason string) *staking.DepositResult {
	return &staking.DepositResult{Ignored: true, Reason: reason}
}

func (im *stakeUseCaseImpl) OnTransfer(c ctx.Ctx, act staking.Action, n staking.TransferNotification) (*staking.DepositResult, error) {
	defer im.met.BumpTime("deposit.time").End()

	self := act.Contract.Self
	if n.From == self {
		return ignored("outgoing transfer"), nil
	}
	if n.To != self {
		return ignored("not addressed to the contract"), nil
	}
	if err := act.RequireAuth(n.Contract); err != nil {
		return nil, err
	}
	if err := n.Quantity.Symbol.Validate(); err != nil {
		return nil, err
	}

	beneficiary := n.From
	if name, ok, err := staking.ParseBeneficiary(n.Memo); err != nil {
		return nil, err
	} else if ok {
		if err := im.requireAccount(c, name, "account specified in memo does not exist: %s"); err != nil {
			return nil, err
		}
		beneficiary = name
	}

	code := n.Quantity.Symbol.Code
	cfg, err := im.configs.FindOne(c, code)
	if errors.Is(err, domain.ErrNotFound) {
		return im.notStakeable(c, n)
	} else if err != nil {
		c.WithField("err", err).Error("configs.FindOne failed")
		return nil, err
	}
	if cfg.StakeToken.Contract != n.Contract {
		return im.notStakeable(c, n)
	}

	if n.Quantity.Amount <= 1 {
		return nil, domain.Errorf(domain.ErrValidation, "must transfer more than one token")
	}
	if n.Quantity.Symbol != cfg.StakeToken.Symbol {
		return nil, domain.Errorf(domain.ErrValidation, "symbol mismatch: got %s, configured %s", n.Quantity.Symbol, cfg.StakeToken.Symbol)
	}

	res := &staking.DepositResult{Beneficiary: beneficiary}
	err = im.exclusive(c, beneficiary, func(c ctx.Ctx) error {
		entry, err := im.stakes.FindOne(c, beneficiary, code)
		if errors.Is(err, domain.ErrNotFound) {
			entry = &staking.StakeEntry{
				Account:      beneficiary,
				StakedAmount: n.Quantity,
				LastClaim:    act.Now,
				UpdatedAt:    act.Now,
			}
			if err := checkStakeSize(entry.StakedAmount); err != nil {
				return err
			}
			if err := im.stakes.Create(c, entry); err != nil {
				c.WithField("err", err).Error("stakes.Create failed")
				return err
			}
			res.Entry = entry
			return nil
		} else if err != nil {
			c.WithField("err", err).Error("stakes.FindOne failed")
			return err
		}

		// rewards accrued so far are paid out before the stake grows
		if res.Payouts, res.Skipped, err = im.processClaim(c, act, beneficiary, false); err != nil {
			return err
		}

		if entry.StakedAmount.Amount > domain.MaxAssetAmount-n.Quantity.Amount {
			return domain.Errorf(domain.ErrValidation, "stake of %s overflows", entry.StakedAmount)
		}
		entry.StakedAmount.Amount += n.Quantity.Amount
		if err := checkStakeSize(entry.StakedAmount); err != nil {
			return err
		}
		entry.UpdatedAt = act.Now
		if err := im.stakes.Update(c, entry); err != nil {
			c.WithField("err", err).Error("stakes.Update failed")
			return err
		}
		res.Entry = entry
		return nil
	})
	if err != nil {
		return nil, err
	}

	im.met.BumpSum("deposit.count", 1, "symbol", code)
	c.WithFields(log.Fields{
		"from":        n.From,
		"beneficiary": beneficiary,
		"quantity":    n.Quantity.String(),
		"staked":      res.Entry.StakedAmount.String(),
	}).Info("stake deposited")
	return res, nil
}

// notStakeable recognizes reward pool funding, every other token is ignored silently
func (im *stakeUseCaseImpl) notStakeable(c ctx.Ctx, n staking.TransferNotification) (*staking.DepositResult, error) {
	cfgs, err := im.configs.FindAll(c, staking.WithRewardSymbol(n.Quantity.Symbol.Code))
	if err != nil {
		c.WithField("err", err).Error("configs.FindAll failed")
		return nil, err
	}
	for _, cfg := range cfgs {
		if cfg.RewardToken.Contract == n.Contract {
			c.WithFields(log.Fields{"from": n.From, "quantity": n.Quantity.String()}).Info("reward pool funded")
			return ignored("reward pool funding"), nil
		}
	}
	return ignored("token is not stakeable"), nil
}

func checkStakeSize(a domain.Asset) error {
	if a.Units() > staking.MaxStakeUnits {
		return domain.Errorf(domain.ErrValidation, "stake of %s exceeds the maximum of %d units", a, staking.MaxStakeUnits)
	}
	return nil
}

func (im *stakeUseCaseImpl) Unstake(c ctx.Ctx, act staking.Action, account domain.Name, quantity domain.Asset) (*staking.UnstakeResult, error) {
	defer im.met.BumpTime("unstake.time").End()

	if err := account.Validate(); err != nil {
		return nil, err
	}
	if err := im.requireAccount(c, account, "invalid account: %s"); err != nil {
		return nil, err
	}
	if !quantity.IsValid() || quantity.Amount <= 0 {
		return nil, domain.Errorf(domain.ErrValidation, "invalid quantity: %s", quantity)
	}
	if err := act.RequireAuth(account); err != nil {
		return nil, err
	}

	code := quantity.Symbol.Code
	res := &staking.UnstakeResult{}
	err := im.exclusive(c, account, func(c ctx.Ctx) error {
		cfg, err := im.configs.FindOne(c, code)
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Errorf(domain.ErrNotFound, "token configuration not found for symbol: %s", code)
		} else if err != nil {
			c.WithField("err", err).Error("configs.FindOne failed")
			return err
		}

		if !cfg.IsPaused {
			if res.Payouts, res.Skipped, err = im.processClaim(c, act, account, false); err != nil {
				return err
			}
		}

		entry, err := im.stakes.FindOne(c, account, code)
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Errorf(domain.ErrNotFound, "no staked tokens found for %s with symbol %s", account, code)
		} else if err != nil {
			c.WithField("err", err).Error("stakes.FindOne failed")
			return err
		}
		if entry.StakedAmount.Symbol != quantity.Symbol {
			return domain.Errorf(domain.ErrValidation, "symbol mismatch: staked %s, requested %s", entry.StakedAmount.Symbol, quantity.Symbol)
		}
		if entry.StakedAmount.Amount < quantity.Amount {
			return domain.Errorf(domain.ErrPrecondition, "you currently have only %s staked", entry.StakedAmount)
		}
		if err := staking.CheckUnlocked(cfg, entry, act.Now); err != nil {
			return err
		}

		entry.StakedAmount.Amount -= quantity.Amount
		entry.UpdatedAt = act.Now
		if entry.StakedAmount.Amount == 0 {
			if err := im.stakes.Remove(c, account, code); err != nil {
				c.WithField("err", err).Error("stakes.Remove failed")
				return err
			}
		} else {
			if err := im.stakes.Update(c, entry); err != nil {
				c.WithField("err", err).Error("stakes.Update failed")
				return err
			}
			res.Entry = entry
		}

		res.Refund = transfer.NewInstruction(transfer.KindRefund, cfg.StakeToken.Contract, act.Contract.Self, account,
			quantity, staking.RefundMemo(code), act.Now)
		if err := im.transfers.Enqueue(c, res.Refund); err != nil {
			c.WithField("err", err).Error("transfers.Enqueue failed")
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	im.met.BumpSum("unstake.count", 1, "symbol", code)
	c.WithFields(log.Fields{
		"account":  account,
		"quantity": quantity.String(),
		"removed":  res.Entry == nil,
	}).Info("stake withdrawn")
	return res, nil
}

func (im *stakeUseCaseImpl) Claim(c ctx.Ctx, act staking.Action, account domain.Name) (*staking.ClaimResult, error) {
	defer im.met.BumpTime("claim.time").End()

	if err := account.Validate(); err != nil {
		return nil, err
	}
	if !act.HasAuth(account) {
		if err := act.RequireSelf(); err != nil {
			return nil, domain.Errorf(domain.ErrAuthorization, "missing authority of %s or %s", account, act.Contract.Self)
		}
	}

	res := &staking.ClaimResult{}
	err := im.exclusive(c, account, func(c ctx.Ctx) error {
		var err error
		res.Payouts, res.Skipped, err = im.processClaim(c, act, account, true)
		return err
	})
	if err != nil {
		return nil, err
	}
	if res.Payouts == nil {
		res.Payouts = []staking.Payout{}
	}
	if res.Skipped == nil {
		res.Skipped = []string{}
	}
	return res, nil
}

// processClaim pays every entry of account that is not paused. Configs are checked for all
// entries before anything is paid. With reset the last claim of each paid entry moves to now.
func (im *stakeUseCaseImpl) processClaim(c ctx.Ctx, act staking.Action, account domain.Name, reset bool) ([]staking.Payout, []string, error) {
	entries, err := im.stakes.FindAll(c, staking.StakeWithAccount(account))
	if err != nil {
		c.WithField("err", err).Error("stakes.FindAll failed")
		return nil, nil, err
	}
	if len(entries) == 0 {
		return nil, nil, domain.Errorf(domain.ErrNotFound, "no staked tokens found for %s", account)
	}

	cfgs := make([]*staking.TokenConfig, len(entries))
	for i := range entries {
		cfg, err := im.configs.FindOne(c, entries[i].Code())
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil, domain.Errorf(domain.ErrNotFound, "token configuration not found: %s", entries[i].Code())
		} else if err != nil {
			c.WithField("err", err).Error("configs.FindOne failed")
			return nil, nil, err
		}
		cfgs[i] = cfg
	}

	var (
		payouts []staking.Payout
		skipped []string
	)
	for i := range entries {
		entry, cfg := &entries[i], cfgs[i]
		if cfg.IsPaused {
			im.met.BumpSum("claim.skip", 1, "symbol", cfg.Code())
			skipped = append(skipped, cfg.Code())
			continue
		}
		if err := staking.CheckClaimCooldown(entry, act.Now, act.Cooldown()); err != nil {
			return nil, nil, err
		}
		reward, err := staking.ComputeReward(cfg, entry, act.Now)
		if err != nil {
			return nil, nil, err
		}

		if reset {
			entry.LastClaim = act.Now
			entry.UpdatedAt = act.Now
			if err := im.stakes.Update(c, entry); err != nil {
				c.WithField("err", err).Error("stakes.Update failed")
				return nil, nil, err
			}
		}

		ins := transfer.NewInstruction(transfer.KindReward, cfg.RewardToken.Contract, act.Contract.Self, account,
			reward.Amount, reward.Memo(cfg.Code()), act.Now)
		if err := im.transfers.Enqueue(c, ins); err != nil {
			c.WithField("err", err).Error("transfers.Enqueue failed")
			return nil, nil, err
		}
		payouts = append(payouts, staking.Payout{Symbol: cfg.Code(), Reward: reward, Instruction: ins})

		im.met.BumpSum("claim.count", 1, "symbol", cfg.Code())
		im.met.BumpSum("reward.sum", float64(reward.Amount.Amount), "symbol", cfg.RewardToken.Symbol.Code)
		c.WithFields(log.Fields{
			"account": account,
			"symbol":  cfg.Code(),
			"reward":  reward.Amount.String(),
			"reset":   reset,
		}).Info("reward claimed")
	}
	return payouts, skipped, nil
}

func (im *stakeUseCaseImpl) Positions(c ctx.Ctx, act staking.Action, account domain.Name, opts ...staking.StakeFindAllOptionsFunc) ([]staking.Position, error) {
	if err := account.Validate(); err != nil {
		return nil, err
	}
	// the account filter goes last so no option can widen it
	opts = append(opts, staking.StakeWithAccount(account))
	entries, err := im.stakes.FindAll(c, opts...)
	if err != nil {
		c.WithField("err", err).Error("stakes.FindAll failed")
		return nil, err
	}

	res := make([]staking.Position, 0, len(entries))
	for i := range entries {
		entry := &entries[i]
		cfg, err := im.configs.FindOne(c, entry.Code())
		if errors.Is(err, domain.ErrNotFound) {
			c.WithField("symbol", entry.Code()).Warn("stake without token configuration")
			continue
		} else if err != nil {
			c.WithField("err", err).Error("configs.FindOne failed")
			return nil, err
		}

		p := staking.Position{
			Entry:     *entry,
			Paused:    cfg.IsPaused,
			Level:     staking.GetLevelInfo(entry.StakedAmount.Units()),
			UnlocksIn: staking.UnlocksIn(cfg, entry, act.Now),
		}
		if elapsed := staking.Elapsed(entry, act.Now); elapsed < act.Cooldown() {
			p.ClaimableIn = act.Cooldown() - elapsed
		}
		if reward, err := staking.ComputeReward(cfg, entry, act.Now); err == nil {
			p.Accrued = reward.Amount
		} else {
			p.Accrued = domain.NewAsset(0, cfg.RewardToken.Symbol)
		}
		res = append(res, p)
	}
	return res, nil
}

func (im *stakeUseCaseImpl) requireAccount(c ctx.Ctx, name domain.Name, format string) error {
	ok, err := im.identity.IsRegisteredAccount(c, name)
	if err != nil {
		c.WithField("err", err).Error("identity.IsRegisteredAccount failed")
		return err
	}
	if !ok {
		return domain.Errorf(domain.ErrNotFound, format, name)
	}
	return nil
}

// exclusive keeps invocations on one account from interleaving and runs fn in one transaction
func (im *stakeUseCaseImpl) exclusive(c ctx.Ctx, account domain.Name, fn func(ctx.Ctx) error) error {
	unlock, err := im.locker.Lock(c, keys.AccountLockKey(account.String()))
	if err != nil {
		c.WithField("err", err).Error("locker.Lock failed")
		return err
	}
	defer unlock()

	if err := im.tx.RunWithTransaction(c, fn); err != nil {
		if domain.KindOf(err) == domain.ErrInternalServerError {
			im.met.BumpSum("tx.err", 1)
		}
		return err
	}
	return nil
}
