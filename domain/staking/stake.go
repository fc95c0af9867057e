package staking

import (
	"time"

	"github.com/x-xyz/staking/base/ctx"
	"github.com/x-xyz/staking/domain"
)

// StakeEntry is what one account holds of one stake token. A row never holds a zero amount.
type StakeEntry struct {
	Account      domain.Name  `json:"account" bson:"account"`
	StakedAmount domain.Asset `json:"stakedAmount" bson:"stakedAmount"`
	LastClaim    time.Time    `json:"lastClaim" bson:"lastClaim"`
	UpdatedAt    time.Time    `json:"updatedAt" bson:"updatedAt"`
}

func (e *StakeEntry) Code() string {
	return e.StakedAmount.Symbol.Code
}

type StakeFindAllOptions struct {
	Account *domain.Name `bson:"-"`
	Code    *string      `bson:"-"`
	Offset  *int32       `bson:"-"`
	Limit   *int32       `bson:"-"`
}

type StakeFindAllOptionsFunc func(*StakeFindAllOptions) error

func GetStakeFindAllOptions(opts ...StakeFindAllOptionsFunc) (StakeFindAllOptions, error) {
	res := StakeFindAllOptions{}

	for _, opt := range opts {
		if err := opt(&res); err != nil {
			return res, err
		}
	}

	return res, nil
}

func StakeWithAccount(account domain.Name) StakeFindAllOptionsFunc {
	return func(options *StakeFindAllOptions) error {
		options.Account = &account
		return nil
	}
}

func StakeWithSymbol(code string) StakeFindAllOptionsFunc {
	return func(options *StakeFindAllOptions) error {
		options.Code = &code
		return nil
	}
}

func StakeWithPagination(offset int32, limit int32) StakeFindAllOptionsFunc {
	return func(options *StakeFindAllOptions) error {
		options.Offset = &offset
		options.Limit = &limit
		return nil
	}
}

type StakeRepo interface {
	// FindOne returns domain.ErrNotFound when the account holds nothing of code
	FindOne(c ctx.Ctx, account domain.Name, code string) (*StakeEntry, error)
	FindAll(c ctx.Ctx, opts ...StakeFindAllOptionsFunc) ([]StakeEntry, error)
	Create(c ctx.Ctx, entry *StakeEntry) error
	// Update stores the amount and last claim of an existing entry
	Update(c ctx.Ctx, entry *StakeEntry) error
	Remove(c ctx.Ctx, account domain.Name, code string) error
	EnsureIndexes(c ctx.Ctx) error
}
