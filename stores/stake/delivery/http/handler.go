package http

import (
	"net/http"

	"github.com/benbjohnson/clock"
	"github.com/labstack/echo/v4"

	"github.com/x-xyz/staking/base/ctx"
	"github.com/x-xyz/staking/base/delivery"
	"github.com/x-xyz/staking/domain"
	"github.com/x-xyz/staking/domain/staking"
	"github.com/x-xyz/staking/middleware"
	authMiddleware "github.com/x-xyz/staking/stores/auth/delivery/http/middleware"
)

type handler struct {
	stake    staking.UseCase
	contract staking.ContractProvider
	clk      clock.Clock
}

func New(e *echo.Echo, stake staking.UseCase, contract staking.ContractProvider, clk clock.Clock, auth *authMiddleware.AuthMiddleware) {
	h := &handler{stake, contract, clk}

	// the token contract reports every transfer touching the staking account
	e.POST("/notify/transfer", h.notifyTransfer, auth.Auth())

	e.POST("/stakes/unstake", h.unstake, auth.Auth())
	e.POST("/stakes/claim", h.claim, auth.Auth())

	e.GET("/accounts/:account/stakes", h.positions, middleware.IsValidAccount("account"), auth.OptionalAuth())
}

func (h *handler) action(c echo.Context) (staking.Action, error) {
	ctx := c.Get("ctx").(ctx.Ctx)
	var auth []domain.Name
	if p := authMiddleware.Principal(c); !p.IsEmpty() {
		auth = append(auth, p)
	}
	return staking.NewAction(ctx, h.contract, h.clk, auth...)
}

// notifyTransfer
//
//	@Summary		Notify a transfer
//	@Description	Deposit on an incoming stake token transfer, other transfers are ignored
//	@Tags			stakes
//	@Accept			json
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			params	body		http.notifyTransfer.payload	true	"params"
//	@Success		200		{object}	object{data=staking.DepositResult}
//	@Failure		400
//	@Failure		401
//	@Failure		409
//	@Failure		412
//	@Failure		500
//	@Router			/notify/transfer [post]
func (h *handler) notifyTransfer(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type payload struct {
		Contract domain.Name  `json:"contract" validate:"required,account"`
		From     domain.Name  `json:"from" validate:"required,account"`
		To       domain.Name  `json:"to" validate:"required,account"`
		Quantity domain.Asset `json:"quantity" swaggertype:"string" example:"100.0000 PURPLE"`
		Memo     string       `json:"memo" validate:"max=256"`
	}

	p := &payload{}

	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Warn("c.Bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	act, err := h.action(c)
	if err != nil {
		return delivery.MakeErrResp(c, err)
	}

	res, err := h.stake.OnTransfer(ctx, act, staking.TransferNotification{
		Contract: p.Contract,
		From:     p.From,
		To:       p.To,
		Quantity: p.Quantity,
		Memo:     p.Memo,
	})
	if err != nil {
		ctx.WithField("err", err).Warn("stake.OnTransfer failed")
		return delivery.MakeErrResp(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// unstake
//
//	@Summary		Unstake
//	@Description	Withdraw quantity from an entry once its unstake period has passed
//	@Tags			stakes
//	@Accept			json
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			params	body		http.unstake.payload	true	"params"
//	@Success		200		{object}	object{data=staking.UnstakeResult}
//	@Failure		400
//	@Failure		401
//	@Failure		404
//	@Failure		412
//	@Failure		500
//	@Router			/stakes/unstake [post]
func (h *handler) unstake(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type payload struct {
		Account  domain.Name  `json:"account" validate:"required,account" example:"alice"`
		Quantity domain.Asset `json:"quantity" swaggertype:"string" example:"100.0000 PURPLE"`
	}

	p := &payload{}

	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Warn("c.Bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	act, err := h.action(c)
	if err != nil {
		return delivery.MakeErrResp(c, err)
	}

	res, err := h.stake.Unstake(ctx, act, p.Account, p.Quantity)
	if err != nil {
		ctx.WithField("err", err).Warn("stake.Unstake failed")
		return delivery.MakeErrResp(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// claim
//
//	@Summary		Claim rewards
//	@Description	Pay the rewards of every entry of account, paused tokens are skipped
//	@Tags			stakes
//	@Accept			json
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			params	body		http.claim.payload	true	"params"
//	@Success		200		{object}	object{data=staking.ClaimResult}
//	@Failure		400
//	@Failure		401
//	@Failure		404
//	@Failure		412
//	@Failure		500
//	@Router			/stakes/claim [post]
func (h *handler) claim(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type payload struct {
		Account domain.Name `json:"account" validate:"required,account" example:"alice"`
	}

	p := &payload{}

	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Warn("c.Bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	act, err := h.action(c)
	if err != nil {
		return delivery.MakeErrResp(c, err)
	}

	res, err := h.stake.Claim(ctx, act, p.Account)
	if err != nil {
		ctx.WithField("err", err).Warn("stake.Claim failed")
		return delivery.MakeErrResp(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// positions
//
//	@Summary		List positions
//	@Description	Preview level and pending reward of the entries of account
//	@Tags			stakes
//	@Produce		json
//	@Param			account	path		string	true	"account"	example(alice)
//	@Param			symbol	query		string	false	"stake token code"	example(PURPLE)
//	@Param			offset	query		int		false	"offset"
//	@Param			limit	query		int		false	"limit"
//	@Success		200		{object}	object{data=[]staking.Position}
//	@Failure		400
//	@Failure		401
//	@Failure		500
//	@Router			/accounts/{account}/stakes [get]
func (h *handler) positions(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	account := domain.Name(c.Param("account"))

	type params struct {
		delivery.Paging
		Symbol string `query:"symbol" validate:"omitempty,symbolcode"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Warn("c.Bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	offset, limit := p.Normalize()
	opts := []staking.StakeFindAllOptionsFunc{staking.StakeWithPagination(offset, limit)}
	if p.Symbol != "" {
		opts = append(opts, staking.StakeWithSymbol(p.Symbol))
	}

	act, err := h.action(c)
	if err != nil {
		return delivery.MakeErrResp(c, err)
	}

	if res, err := h.stake.Positions(ctx, act, account, opts...); err != nil {
		ctx.WithField("err", err).Error("stake.Positions failed")
		return delivery.MakeErrResp(c, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}
