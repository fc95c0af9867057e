package validator

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/x-xyz/staking/domain"
)

// New returns a validate instance knowing the account and symbolcode tags
func New() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("account", func(fl validator.FieldLevel) bool {
		return IsValidAccount(fl.Field().String())
	})
	_ = v.RegisterValidation("symbolcode", func(fl validator.FieldLevel) bool {
		return domain.ValidateCode(fl.Field().String()) == nil
	})
	return v
}

// IsValidAccount returns is an account name well formed or not
func IsValidAccount(name string) bool {
	return domain.Name(name).Validate() == nil
}

func NewCustomValidator(v *validator.Validate) echo.Validator {
	return &CustomValidator{v}
}

type CustomValidator struct {
	validator *validator.Validate
}

func (v *CustomValidator) Validate(i interface{}) error {
	if err := v.validator.Struct(i); err != nil {
		return err
	}
	return nil
}
