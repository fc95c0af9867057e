package staking

import (
	"strings"

	"github.com/x-xyz/staking/domain"
)

const beneficiaryPrefix = "for:"

// ParseBeneficiary reads a "for:<account>" memo. ok is false when the memo names nobody.
// The name is only checked for grammar, whether it exists is up to the caller.
func ParseBeneficiary(memo string) (name domain.Name, ok bool, err error) {
	if !strings.HasPrefix(memo, beneficiaryPrefix) {
		return "", false, nil
	}
	s := strings.Trim(memo[len(beneficiaryPrefix):], " ")
	if len(s) > 12 {
		return "", true, domain.Errorf(domain.ErrValidation, "invalid account name length in memo: %q", s)
	}
	name = domain.Name(s)
	if err := name.Validate(); err != nil {
		return "", true, err
	}
	return name, true, nil
}
