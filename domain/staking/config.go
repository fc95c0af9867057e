package staking

import (
	"time"

	"github.com/x-xyz/staking/base/ctx"
	"github.com/x-xyz/staking/domain"
)

// PauseAll selects every config in SetPause
const PauseAll = "ALL"

// TokenConfig describes how one stake token is rewarded, keyed by the stake symbol code
type TokenConfig struct {
	Creator     domain.Name           `json:"creator" bson:"creator"`
	StakeToken  domain.ExtendedSymbol `json:"stakeToken" bson:"stakeToken"`
	RewardToken domain.ExtendedSymbol `json:"rewardToken" bson:"rewardToken"`
	// UnstakePeriod is the number of seconds since the last claim before a withdrawal is allowed
	UnstakePeriod uint32 `json:"unstakePeriod" bson:"unstakePeriod"`
	// RewardRate is the daily rate multiplied by 100
	RewardRate uint32    `json:"rewardRate" bson:"rewardRate"`
	IsPaused   bool      `json:"isPaused" bson:"isPaused"`
	CreatedAt  time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt" bson:"updatedAt"`
}

func (c *TokenConfig) Code() string {
	return c.StakeToken.Symbol.Code
}

func (c *TokenConfig) UnstakeDuration() time.Duration {
	return time.Duration(c.UnstakePeriod) * time.Second
}

// SetParamsArgs is the input of SetParams
type SetParamsArgs struct {
	Caller         domain.Name   `json:"caller" validate:"required,account"`
	StakeSymbol    domain.Symbol `json:"stakeSymbol"`
	StakeContract  domain.Name   `json:"stakeContract" validate:"required,account"`
	RewardSymbol   domain.Symbol `json:"rewardSymbol"`
	RewardContract domain.Name   `json:"rewardContract" validate:"required,account"`
	UnstakePeriod  uint32        `json:"unstakePeriod"`
	RewardRate     uint32        `json:"rewardRate"`
}

type ConfigFindAllOptions struct {
	RewardCode    *string      `bson:"-"`
	StakeContract *domain.Name `bson:"-"`
	IsPaused      *bool        `bson:"-"`
	Offset        *int32       `bson:"-"`
	Limit         *int32       `bson:"-"`
}

type ConfigFindAllOptionsFunc func(*ConfigFindAllOptions) error

func GetConfigFindAllOptions(opts ...ConfigFindAllOptionsFunc) (ConfigFindAllOptions, error) {
	res := ConfigFindAllOptions{}

	for _, opt := range opts {
		if err := opt(&res); err != nil {
			return res, err
		}
	}

	return res, nil
}

// WithRewardSymbol looks configs up through the reward symbol index
func WithRewardSymbol(code string) ConfigFindAllOptionsFunc {
	return func(options *ConfigFindAllOptions) error {
		if err := domain.ValidateCode(code); err != nil {
			return err
		}
		options.RewardCode = &code
		return nil
	}
}

func WithStakeContract(contract domain.Name) ConfigFindAllOptionsFunc {
	return func(options *ConfigFindAllOptions) error {
		options.StakeContract = &contract
		return nil
	}
}

func WithPaused(paused bool) ConfigFindAllOptionsFunc {
	return func(options *ConfigFindAllOptions) error {
		options.IsPaused = &paused
		return nil
	}
}

func ConfigWithPagination(offset int32, limit int32) ConfigFindAllOptionsFunc {
	return func(options *ConfigFindAllOptions) error {
		options.Offset = &offset
		options.Limit = &limit
		return nil
	}
}

type ConfigRepo interface {
	// FindOne returns domain.ErrNotFound when no config has the stake symbol code
	FindOne(c ctx.Ctx, code string) (*TokenConfig, error)
	FindAll(c ctx.Ctx, opts ...ConfigFindAllOptionsFunc) ([]TokenConfig, error)
	Upsert(c ctx.Ctx, cfg *TokenConfig) error
	// SetPaused updates one config, or every config when code is nil
	SetPaused(c ctx.Ctx, code *string, paused bool, now time.Time) (int64, error)
	EnsureIndexes(c ctx.Ctx) error
}

type RegistryUseCase interface {
	SetParams(c ctx.Ctx, act Action, args SetParamsArgs) (*TokenConfig, error)
	// SetPause returns the number of configs touched
	SetPause(c ctx.Ctx, act Action, shouldPause bool, contract domain.Name, symbol domain.Symbol) (int, error)
	FindOne(c ctx.Ctx, code string) (*TokenConfig, error)
	FindAll(c ctx.Ctx, opts ...ConfigFindAllOptionsFunc) ([]TokenConfig, error)
}
