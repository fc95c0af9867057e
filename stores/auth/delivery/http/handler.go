package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/staking/base/ctx"
	"github.com/x-xyz/staking/base/delivery"
	"github.com/x-xyz/staking/domain"
)

type authHandler struct {
	auth domain.AuthUsecase
	ttl  time.Duration
}

// New mounts token refresh, authed must verify the bearer token already in use
func New(e *echo.Echo, auth domain.AuthUsecase, authed echo.MiddlewareFunc, ttl time.Duration) {
	handler := &authHandler{
		auth: auth,
		ttl:  ttl,
	}
	g := e.Group("/auth")
	g.POST("/refresh", handler.refresh, authed)
}

// refresh
//
//	@Summary		Refresh access token
//	@Description	Issue a new token for the principal of the current one
//	@Tags			auth
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Success		201	{object}	object{data=string}
//	@Failure		401
//	@Failure		500
//	@Router			/auth/refresh [post]
func (h *authHandler) refresh(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	principal := c.Get("principal").(domain.Name)

	if tkn, err := h.auth.SignToken(ctx, principal, h.ttl); err != nil {
		ctx.WithField("err", err).Error("auth.SignToken failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusCreated, tkn)
	}
}
