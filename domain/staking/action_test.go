package staking

import (
	"errors"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/x-xyz/staking/base/ctx"
	"github.com/x-xyz/staking/domain"
)

func TestNewAction(t *testing.T) {
	clk := clock.NewMock()
	clk.Set(time.Unix(1000, 999))
	calls := 0
	p := ContractProviderFunc(func(c ctx.Ctx) (Contract, error) {
		calls++
		return Contract{Self: "stakepurple"}, nil
	})

	act, err := NewAction(ctx.Background(), p, clk, "alice")
	require.NoError(t, err)
	assert.Equal(t, time.Unix(1000, 0).UTC(), act.Now)
	assert.Equal(t, ClaimCooldown, act.Cooldown())
	assert.True(t, act.HasAuth("alice"))
	assert.NoError(t, act.RequireAuth("alice"))
	assert.True(t, errors.Is(act.RequireSelf(), domain.ErrAuthorization))

	_, err = NewAction(ctx.Background(), p, clk)
	require.NoError(t, err)
	assert.Equal(t, 2, calls, "contract configuration is read on every invocation")
}

func TestNewActionInvalidContract(t *testing.T) {
	p := ContractProviderFunc(func(c ctx.Ctx) (Contract, error) {
		return Contract{}, nil
	})
	_, err := NewAction(ctx.Background(), p, clock.NewMock())
	assert.Error(t, err)
}

func TestActionCooldown(t *testing.T) {
	act := Action{Contract: Contract{Self: "stakepurple", ClaimCooldown: DocumentedClaimCooldown}}
	assert.Equal(t, 12*time.Hour, act.Cooldown())
}
