package staking

import (
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common/math"

	"github.com/x-xyz/staking/domain"
)

const day = 24 * time.Hour

// Reward is the outcome of claiming one stake entry
type Reward struct {
	Elapsed    time.Duration `json:"elapsed"`
	DaysPassed uint64        `json:"daysPassed"`
	// Units is the whole number of stake tokens held, fractions never earn
	Units      uint64       `json:"units"`
	RateFactor uint64       `json:"rateFactor"`
	Level      LevelInfo    `json:"level"`
	Amount     domain.Asset `json:"amount"`
}

// ComputeReward prices a claim of entry at now:
// units * floor(rate/100) * whole days since the last claim + the level bonus, in reward token minor units.
func ComputeReward(cfg *TokenConfig, entry *StakeEntry, now time.Time) (Reward, error) {
	if entry.StakedAmount.Symbol != cfg.StakeToken.Symbol {
		return Reward{}, domain.Errorf(domain.ErrValidation, "symbol mismatch: staked %s, configured %s",
			entry.StakedAmount.Symbol, cfg.StakeToken.Symbol)
	}

	elapsed := Elapsed(entry, now)
	r := Reward{
		Elapsed:    elapsed,
		DaysPassed: uint64(elapsed / day),
		Units:      entry.StakedAmount.Units(),
		RateFactor: uint64(cfg.RewardRate / 100),
	}
	r.Level = GetLevelInfo(r.Units)

	amount, overflow := math.SafeMul(r.Units, r.RateFactor)
	if !overflow {
		amount, overflow = math.SafeMul(amount, r.DaysPassed)
	}
	if !overflow {
		amount, overflow = math.SafeAdd(amount, r.Level.Bonus)
	}
	if overflow || amount > uint64(domain.MaxAssetAmount) {
		return Reward{}, domain.Errorf(domain.ErrPrecondition, "reward of %s %s overflows", entry.Account, entry.Code())
	}
	r.Amount = domain.NewAsset(int64(amount), cfg.RewardToken.Symbol)
	return r, nil
}

// Elapsed is the time since the last claim, never negative
func Elapsed(entry *StakeEntry, now time.Time) time.Duration {
	d := now.Sub(entry.LastClaim)
	if d < 0 {
		return 0
	}
	return d
}

// CheckClaimCooldown fails with domain.ErrPrecondition while entry was claimed less than cooldown ago
func CheckClaimCooldown(entry *StakeEntry, now time.Time, cooldown time.Duration) error {
	elapsed := Elapsed(entry, now)
	if elapsed < cooldown {
		return domain.Errorf(domain.ErrPrecondition, "you must wait at least %s between claims of %s, %s left",
			cooldown, entry.Code(), cooldown-elapsed)
	}
	return nil
}

// CheckUnlocked fails with domain.ErrPrecondition until the unstake period has passed since the last claim
func CheckUnlocked(cfg *TokenConfig, entry *StakeEntry, now time.Time) error {
	remaining := UnlocksIn(cfg, entry, now)
	if remaining > 0 {
		secs := int64(remaining / time.Second)
		return domain.Errorf(domain.ErrPrecondition, "you can unstake in %d hours and %d minutes", secs/3600, secs%3600/60)
	}
	return nil
}

// UnlocksIn is how long until entry may be withdrawn, 0 when it already may
func UnlocksIn(cfg *TokenConfig, entry *StakeEntry, now time.Time) time.Duration {
	remaining := cfg.UnstakeDuration() - Elapsed(entry, now)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Memo describes the reward to its receiver, hours count the whole time since the last claim
func (r Reward) Memo(stakeCode string) string {
	secs := int64(r.Elapsed / time.Second)
	return fmt.Sprintf("Rewards: %d days, %d hours, %dm | staked: %d %s @ %d%% | Bonus: %d | Next Level: +%d %s staked",
		r.DaysPassed, secs/3600, secs%3600/60,
		r.Units, stakeCode, r.RateFactor,
		r.Level.Bonus, r.Level.NextLevelGap, stakeCode)
}

// RefundMemo is attached to the transfer returning unstaked tokens
func RefundMemo(code string) string {
	return fmt.Sprintf("here's your %s back", code)
}
