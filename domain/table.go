package domain

import "github.com/x-xyz/staking/base/ctx"

// Table is a mongo collection name
type Table string

const (
	TableTokenConfigs         Table = "token_configs"
	TableStakes               Table = "stakes"
	TableTransferInstructions Table = "transfer_instructions"
)

// Transactor runs run atomically against storage, joining the caller's transaction if any
type Transactor interface {
	RunWithTransaction(c ctx.Ctx, run func(ctx.Ctx) error) error
}
