package validator

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type ValidatorTestSuite struct {
	suite.Suite
}

func (s *ValidatorTestSuite) TestIsValidAccount() {
	tests := []struct {
		desc       string
		account    string
		expIsValid bool
	}{
		{
			desc:       "empty",
			account:    "",
			expIsValid: false,
		},
		{
			desc:       "valid account",
			account:    "alice.x",
			expIsValid: true,
		},
		{
			desc:       "digits out of range",
			account:    "alice9",
			expIsValid: false,
		},
		{
			desc:       "too long",
			account:    "abcdefghijklm",
			expIsValid: false,
		},
		{
			desc:       "trailing dot",
			account:    "alice.",
			expIsValid: false,
		},
	}
	for _, t := range tests {
		s.Equal(t.expIsValid, IsValidAccount(t.account), t.desc)
	}
}

func (s *ValidatorTestSuite) TestTags() {
	type req struct {
		Account string `validate:"required,account"`
		Code    string `validate:"omitempty,symbolcode"`
	}
	v := NewCustomValidator(New())

	s.NoError(v.Validate(&req{Account: "alice", Code: "PURPLE"}))
	s.NoError(v.Validate(&req{Account: "alice"}))
	s.Error(v.Validate(&req{Account: "Alice"}))
	s.Error(v.Validate(&req{Account: "alice", Code: "purple"}))
}

func TestValidatorTestSuite(t *testing.T) {
	suite.Run(t, new(ValidatorTestSuite))
}
