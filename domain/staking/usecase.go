package staking

import (
	"time"

	"github.com/x-xyz/staking/base/ctx"
	"github.com/x-xyz/staking/domain"
	"github.com/x-xyz/staking/domain/transfer"
)

// TransferNotification is an inbound token transfer observed on the ledger
type TransferNotification struct {
	// Contract is the token contract that emitted the transfer
	Contract domain.Name  `json:"contract" validate:"required,account"`
	From     domain.Name  `json:"from" validate:"required,account"`
	To       domain.Name  `json:"to" validate:"required,account"`
	Quantity domain.Asset `json:"quantity"`
	Memo     string       `json:"memo" validate:"max=256"`
}

type DepositResult struct {
	// Ignored is set when the transfer is not a stake deposit, Reason tells why
	Ignored     bool        `json:"ignored"`
	Reason      string      `json:"reason,omitempty"`
	Beneficiary domain.Name `json:"beneficiary,omitempty"`
	Entry       *StakeEntry `json:"entry,omitempty"`
	Payouts     []Payout    `json:"payouts,omitempty"`
	Skipped     []string    `json:"skipped,omitempty"`
}

type UnstakeResult struct {
	// Entry is nil once the whole stake is withdrawn
	Entry   *StakeEntry           `json:"entry"`
	Refund  *transfer.Instruction `json:"refund"`
	Payouts []Payout              `json:"payouts,omitempty"`
	Skipped []string              `json:"skipped,omitempty"`
}

// Payout is one reward paid while claiming
type Payout struct {
	Symbol      string                `json:"symbol"`
	Reward      Reward                `json:"reward"`
	Instruction *transfer.Instruction `json:"instruction"`
}

type ClaimResult struct {
	Payouts []Payout `json:"payouts"`
	// Skipped lists stake symbols whose claims are paused
	Skipped []string `json:"skipped"`
}

// Position previews an entry as if it were claimed now
type Position struct {
	Entry       StakeEntry    `json:"entry"`
	Paused      bool          `json:"paused"`
	Level       LevelInfo     `json:"level"`
	Accrued     domain.Asset  `json:"accrued"`
	ClaimableIn time.Duration `json:"claimableIn"`
	UnlocksIn   time.Duration `json:"unlocksIn"`
}

type UseCase interface {
	OnTransfer(c ctx.Ctx, act Action, n TransferNotification) (*DepositResult, error)
	Unstake(c ctx.Ctx, act Action, account domain.Name, quantity domain.Asset) (*UnstakeResult, error)
	Claim(c ctx.Ctx, act Action, account domain.Name) (*ClaimResult, error)
	// Positions previews every entry of account, opts narrow by symbol or page through them
	Positions(c ctx.Ctx, act Action, account domain.Name, opts ...StakeFindAllOptionsFunc) ([]Position, error)
}
