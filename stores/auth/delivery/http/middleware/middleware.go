package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/x-xyz/staking/base/ctx"
	"github.com/x-xyz/staking/base/delivery"
	"github.com/x-xyz/staking/domain"
)

// PrincipalKey is where Auth stores the signer of the request
const PrincipalKey = "principal"

type AuthMiddleware struct {
	auth   domain.AuthUsecase
	admins []domain.Name
}

func New(auth domain.AuthUsecase, admins []domain.Name) *AuthMiddleware {
	return &AuthMiddleware{
		auth:   auth,
		admins: admins,
	}
}

func (m *AuthMiddleware) Auth() echo.MiddlewareFunc {
	return middleware.KeyAuth(m.validateAuthToken)
}

func (m *AuthMiddleware) OptionalAuth() echo.MiddlewareFunc {
	return middleware.KeyAuthWithConfig(middleware.KeyAuthConfig{
		Skipper: func(c echo.Context) bool {
			auth := c.Request().Header.Get(echo.HeaderAuthorization)
			return len(auth) == 0
		},
		Validator: m.validateAuthToken,
	})
}

// IsAdmin lets through principals listed as admins, it must run after Auth
func (m *AuthMiddleware) IsAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, _ := c.Get(PrincipalKey).(domain.Name)

			for _, admin := range m.admins {
				if admin == principal {
					return next(c)
				}
			}

			return delivery.MakeJsonResp(c, http.StatusUnauthorized, "require admin privilege")
		}
	}
}

func (m *AuthMiddleware) validateAuthToken(key string, c echo.Context) (bool, error) {
	ctx := c.Get("ctx").(ctx.Ctx)
	if principal, err := m.auth.ParseToken(ctx, key); err != nil {
		ctx.WithField("err", err).Warn("auth.ParseToken failed")
		return false, err
	} else {
		c.Set(PrincipalKey, principal)
		return true, nil
	}
}

// Principal returns the signer set by Auth, empty when the request carried no token
func Principal(c echo.Context) domain.Name {
	principal, _ := c.Get(PrincipalKey).(domain.Name)
	return principal
}
