package usecase

import (
	"errors"

	"github.com/x-xyz/staking/base/ctx"
	"github.com/x-xyz/staking/base/log"
	"github.com/x-xyz/staking/base/metrics"
	"github.com/x-xyz/staking/domain"
	"github.com/x-xyz/staking/domain/keys"
	"github.com/x-xyz/staking/domain/staking"
	"github.com/x-xyz/staking/service/mutex"
)

type registryUseCaseImpl struct {
	repo   staking.ConfigRepo
	tx     domain.Transactor
	locker mutex.Service
	met    metrics.Service
}

type RegistryUseCaseCfg struct {
	ConfigRepo staking.ConfigRepo
	Transactor domain.Transactor
	Locker     mutex.Service
	Metrics    metrics.Service
}

func NewRegistryUseCase(cfg *RegistryUseCaseCfg) staking.RegistryUseCase {
	met := cfg.Metrics
	if met == nil {
		met = metrics.NewLog("registry")
	}
	return &registryUseCaseImpl{
		repo:   cfg.ConfigRepo,
		tx:     cfg.Transactor,
		locker: cfg.Locker,
		met:    met,
	}
}

func (im *registryUseCaseImpl) SetParams(c ctx.Ctx, act staking.Action, args staking.SetParamsArgs) (*staking.TokenConfig, error) {
	defer im.met.BumpTime("setparams.time").End()

	if err := act.RequireSelf(); err != nil {
		return nil, err
	}
	if err := validateParams(args); err != nil {
		return nil, err
	}

	var res *staking.TokenConfig
	err := im.exclusive(c, func(c ctx.Ctx) error {
		if args.RewardSymbol.Code == args.StakeSymbol.Code {
			return domain.Errorf(domain.ErrConflict, "reward token cannot be the stake token %s", args.StakeSymbol.Code)
		}
		if _, err := im.repo.FindOne(c, args.RewardSymbol.Code); err == nil {
			return domain.Errorf(domain.ErrConflict, "reward token cannot be an existing stakeable token: %s", args.RewardSymbol.Code)
		} else if !errors.Is(err, domain.ErrNotFound) {
			c.WithField("err", err).Error("repo.FindOne failed")
			return err
		}

		cfg, err := im.repo.FindOne(c, args.StakeSymbol.Code)
		if errors.Is(err, domain.ErrNotFound) {
			cfg = &staking.TokenConfig{
				Creator:   args.Caller,
				CreatedAt: act.Now,
			}
		} else if err != nil {
			c.WithField("err", err).Error("repo.FindOne failed")
			return err
		} else if cfg.StakeToken.Symbol.Precision != args.StakeSymbol.Precision {
			// staked balances are kept in the registered precision
			return domain.Errorf(domain.ErrConflict, "stake token %s is registered as %s, precision cannot change", args.StakeSymbol.Code, cfg.StakeToken.Symbol)
		}

		// creator and pause flag survive every update
		cfg.StakeToken = domain.ExtendedSymbol{Contract: args.StakeContract, Symbol: args.StakeSymbol}
		cfg.RewardToken = domain.ExtendedSymbol{Contract: args.RewardContract, Symbol: args.RewardSymbol}
		cfg.UnstakePeriod = args.UnstakePeriod
		cfg.RewardRate = args.RewardRate
		cfg.UpdatedAt = act.Now

		if err := im.repo.Upsert(c, cfg); err != nil {
			c.WithField("err", err).Error("repo.Upsert failed")
			return err
		}
		res = cfg
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.WithFields(log.Fields{
		"symbol":        res.StakeToken.String(),
		"reward":        res.RewardToken.String(),
		"unstakePeriod": res.UnstakePeriod,
		"rewardRate":    res.RewardRate,
	}).Info("token config saved")
	return res, nil
}

func validateParams(args staking.SetParamsArgs) error {
	if args.UnstakePeriod == 0 {
		return domain.Errorf(domain.ErrValidation, "unstake period must be positive")
	}
	if args.RewardRate == 0 {
		return domain.Errorf(domain.ErrValidation, "reward rate must be positive")
	}
	if err := args.StakeSymbol.Validate(); err != nil {
		return err
	}
	if err := args.RewardSymbol.Validate(); err != nil {
		return err
	}
	for _, n := range []domain.Name{args.Caller, args.StakeContract, args.RewardContract} {
		if err := n.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (im *registryUseCaseImpl) SetPause(c ctx.Ctx, act staking.Action, shouldPause bool, contract domain.Name, symbol domain.Symbol) (int, error) {
	if err := act.RequireSelf(); err != nil {
		return 0, err
	}

	var touched int64
	err := im.exclusive(c, func(c ctx.Ctx) error {
		if contract.IsEmpty() || symbol.IsEmpty() || symbol.Code == staking.PauseAll {
			n, err := im.repo.SetPaused(c, nil, shouldPause, act.Now)
			if err != nil {
				c.WithField("err", err).Error("repo.SetPaused failed")
				return err
			}
			touched = n
			return nil
		}

		cfg, err := im.repo.FindOne(c, symbol.Code)
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Errorf(domain.ErrNotFound, "token configuration not found: %s", symbol.Code)
		} else if err != nil {
			c.WithField("err", err).Error("repo.FindOne failed")
			return err
		}
		if cfg.StakeToken.Contract != contract {
			return domain.Errorf(domain.ErrValidation, "token contract does not match configuration: %s", contract)
		}
		code := cfg.Code()
		if touched, err = im.repo.SetPaused(c, &code, shouldPause, act.Now); err != nil {
			c.WithField("err", err).Error("repo.SetPaused failed")
			return err
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	c.WithFields(log.Fields{
		"paused":   shouldPause,
		"contract": contract,
		"symbol":   symbol.Code,
		"touched":  touched,
	}).Info("pause updated")
	return int(touched), nil
}

func (im *registryUseCaseImpl) FindOne(c ctx.Ctx, code string) (*staking.TokenConfig, error) {
	if err := domain.ValidateCode(code); err != nil {
		return nil, err
	}
	cfg, err := im.repo.FindOne(c, code)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.Errorf(domain.ErrNotFound, "token configuration not found for symbol: %s", code)
	} else if err != nil {
		c.WithField("err", err).Error("repo.FindOne failed")
		return nil, err
	}
	return cfg, nil
}

func (im *registryUseCaseImpl) FindAll(c ctx.Ctx, opts ...staking.ConfigFindAllOptionsFunc) ([]staking.TokenConfig, error) {
	res, err := im.repo.FindAll(c, opts...)
	if err != nil {
		c.WithField("err", err).Error("repo.FindAll failed")
		return nil, err
	}
	return res, nil
}

// exclusive serializes registry writes across replicas and runs fn in one transaction
func (im *registryUseCaseImpl) exclusive(c ctx.Ctx, fn func(ctx.Ctx) error) error {
	unlock, err := im.locker.Lock(c, keys.RegistryLockKey())
	if err != nil {
		c.WithField("err", err).Error("locker.Lock failed")
		return err
	}
	defer unlock()

	if err := im.tx.RunWithTransaction(c, fn); err != nil {
		if domain.KindOf(err) == domain.ErrInternalServerError {
			im.met.BumpSum("registry.err", 1)
		}
		return err
	}
	return nil
}
