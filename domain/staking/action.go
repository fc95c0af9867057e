package staking

import (
	"time"

	"github.com/benbjohnson/clock"

	"github.com/x-xyz/staking/base/ctx"
	"github.com/x-xyz/staking/domain"
)

const (
	// ClaimCooldown is the shipped minimum time between two claims of one entry.
	// The documented rule is DocumentedClaimCooldown, deployments choose through staking.claimCooldown.
	ClaimCooldown = 200 * time.Second
	// DocumentedClaimCooldown is the 12 hour rule users are told about
	DocumentedClaimCooldown = 12 * time.Hour
)

// Contract is the configuration of the staking contract itself
type Contract struct {
	// Self is the account holding staked tokens and paying rewards
	Self          domain.Name
	ClaimCooldown time.Duration
}

// ContractProvider reads the contract configuration, it is asked again on every invocation
type ContractProvider interface {
	Contract(c ctx.Ctx) (Contract, error)
}

type ContractProviderFunc func(c ctx.Ctx) (Contract, error)

func (f ContractProviderFunc) Contract(c ctx.Ctx) (Contract, error) {
	return f(c)
}

// Action is what one invocation runs with: the contract, who signed it, and the time it happens at
type Action struct {
	Contract Contract
	Auth     []domain.Name
	Now      time.Time
}

// NewAction reads the contract configuration and fixes the invocation time, truncated to seconds
func NewAction(c ctx.Ctx, p ContractProvider, clk clock.Clock, auth ...domain.Name) (Action, error) {
	contract, err := p.Contract(c)
	if err != nil {
		c.WithField("err", err).Error("ContractProvider.Contract failed")
		return Action{}, err
	}
	if err := contract.Self.Validate(); err != nil {
		c.WithField("err", err).Error("invalid contract account")
		return Action{}, domain.ErrInternalServerError
	}
	return Action{
		Contract: contract,
		Auth:     auth,
		Now:      clk.Now().UTC().Truncate(time.Second),
	}, nil
}

func (a Action) HasAuth(name domain.Name) bool {
	for _, n := range a.Auth {
		if n == name {
			return true
		}
	}
	return false
}

// RequireAuth fails with domain.ErrAuthorization unless name signed the invocation
func (a Action) RequireAuth(name domain.Name) error {
	if !a.HasAuth(name) {
		return domain.Errorf(domain.ErrAuthorization, "missing authority of %s", name)
	}
	return nil
}

// RequireSelf fails unless the contract itself signed the invocation
func (a Action) RequireSelf() error {
	return a.RequireAuth(a.Contract.Self)
}

// Cooldown is the claim cooldown in force for this invocation, ClaimCooldown when unset
func (a Action) Cooldown() time.Duration {
	if a.Contract.ClaimCooldown <= 0 {
		return ClaimCooldown
	}
	return a.Contract.ClaimCooldown
}
