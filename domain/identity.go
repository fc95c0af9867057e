package domain

import "github.com/x-xyz/staking/base/ctx"

// IdentityService answers whether an account name is registered on the ledger
type IdentityService interface {
	IsRegisteredAccount(c ctx.Ctx, name Name) (bool, error)
}
