package http

import (
	"net/http"

	"github.com/benbjohnson/clock"
	"github.com/labstack/echo/v4"

	"github.com/x-xyz/staking/base/ctx"
	"github.com/x-xyz/staking/base/delivery"
	"github.com/x-xyz/staking/domain"
	"github.com/x-xyz/staking/domain/staking"
	authMiddleware "github.com/x-xyz/staking/stores/auth/delivery/http/middleware"
)

type handler struct {
	registry staking.RegistryUseCase
	contract staking.ContractProvider
	clk      clock.Clock
}

// New mounts the admin writes, open to configured admins only, and the public config reads wrapped by cached
func New(e *echo.Echo, registry staking.RegistryUseCase, contract staking.ContractProvider, clk clock.Clock, auth *authMiddleware.AuthMiddleware, cached echo.MiddlewareFunc) {
	h := &handler{registry, contract, clk}

	admin := e.Group("/admin", auth.Auth(), auth.IsAdmin())
	admin.POST("/params", h.setParams)
	admin.POST("/pause", h.setPause)

	e.GET("/configs", h.getAll, cached)
	e.GET("/configs/:symbol", h.getOne, cached)
}

func (h *handler) action(c echo.Context) (staking.Action, error) {
	ctx := c.Get("ctx").(ctx.Ctx)
	return staking.NewAction(ctx, h.contract, h.clk, authMiddleware.Principal(c))
}

// setParams
//
//	@Summary		Set token params
//	@Description	Create or update the config of a stakeable token
//	@Tags			configs
//	@Accept			json
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			params	body		http.setParams.payload	true	"params"
//	@Success		200		{object}	object{data=staking.TokenConfig}
//	@Failure		400
//	@Failure		401
//	@Failure		409
//	@Failure		500
//	@Router			/admin/params [post]
func (h *handler) setParams(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type payload struct {
		StakeSymbol    domain.Symbol `json:"stakeSymbol" swaggertype:"string" example:"4,PURPLE"`
		StakeContract  domain.Name   `json:"stakeContract" validate:"required,account"`
		RewardSymbol   domain.Symbol `json:"rewardSymbol" swaggertype:"string" example:"4,BLUX"`
		RewardContract domain.Name   `json:"rewardContract" validate:"required,account"`
		UnstakePeriod  uint32        `json:"unstakePeriod" validate:"required"`
		RewardRate     uint32        `json:"rewardRate" validate:"required"`
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

	res, err := h.registry.SetParams(ctx, act, staking.SetParamsArgs{
		Caller:         authMiddleware.Principal(c),
		StakeSymbol:    p.StakeSymbol,
		StakeContract:  p.StakeContract,
		RewardSymbol:   p.RewardSymbol,
		RewardContract: p.RewardContract,
		UnstakePeriod:  p.UnstakePeriod,
		RewardRate:     p.RewardRate,
	})
	if err != nil {
		ctx.WithField("err", err).Warn("registry.SetParams failed")
		return delivery.MakeErrResp(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// setPause
//
//	@Summary		Pause or resume
//	@Description	Pause one token, or every token when contract or symbol is empty or symbol is ALL
//	@Tags			configs
//	@Accept			json
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			params	body		http.setPause.payload	true	"params"
//	@Success		200		{object}	object{data=object{updated=int}}
//	@Failure		400
//	@Failure		401
//	@Failure		404
//	@Failure		500
//	@Router			/admin/pause [post]
func (h *handler) setPause(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type payload struct {
		ShouldPause bool        `json:"shouldPause"`
		Contract    domain.Name `json:"contract"`
		// Symbol is "<precision>,<code>", "ALL" or empty for every config
		Symbol string `json:"symbol"`
	}

	p := &payload{}

	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Warn("c.Bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	var sym domain.Symbol
	switch p.Symbol {
	case "":
	case staking.PauseAll:
		sym = domain.Symbol{Code: staking.PauseAll}
	default:
		s, err := domain.ParseSymbol(p.Symbol)
		if err != nil {
			return delivery.MakeErrResp(c, err)
		}
		sym = s
	}

	act, err := h.action(c)
	if err != nil {
		return delivery.MakeErrResp(c, err)
	}

	n, err := h.registry.SetPause(ctx, act, p.ShouldPause, p.Contract, sym)
	if err != nil {
		ctx.WithField("err", err).Warn("registry.SetPause failed")
		return delivery.MakeErrResp(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, map[string]int{"updated": n})
}

// getAll
//
//	@Summary		List token configs
//	@Tags			configs
//	@Produce		json
//	@Param			rewardSymbol	query		string	false	"reward token code"	example(BLUX)
//	@Param			stakeContract	query		string	false	"stake token contract"
//	@Param			paused			query		bool	false	"paused"
//	@Param			offset			query		int		false	"offset"
//	@Param			limit			query		int		false	"limit"
//	@Success		200				{object}	object{data=[]staking.TokenConfig}
//	@Failure		400
//	@Failure		500
//	@Router			/configs [get]
func (h *handler) getAll(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		delivery.Paging
		RewardSymbol  string      `query:"rewardSymbol" validate:"omitempty,symbolcode"`
		StakeContract domain.Name `query:"stakeContract" validate:"omitempty,account"`
		Paused        string      `query:"paused" validate:"omitempty,oneof=true false"`
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
	opts := []staking.ConfigFindAllOptionsFunc{staking.ConfigWithPagination(offset, limit)}
	if p.RewardSymbol != "" {
		opts = append(opts, staking.WithRewardSymbol(p.RewardSymbol))
	}
	if !p.StakeContract.IsEmpty() {
		opts = append(opts, staking.WithStakeContract(p.StakeContract))
	}
	if p.Paused != "" {
		opts = append(opts, staking.WithPaused(p.Paused == "true"))
	}

	if res, err := h.registry.FindAll(ctx, opts...); err != nil {
		ctx.WithField("err", err).Error("registry.FindAll failed")
		return delivery.MakeErrResp(c, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}

// getOne
//
//	@Summary		Get token config
//	@Tags			configs
//	@Produce		json
//	@Param			symbol	path		string	true	"stake token code"	example(PURPLE)
//	@Success		200		{object}	object{data=staking.TokenConfig}
//	@Failure		400
//	@Failure		404
//	@Failure		500
//	@Router			/configs/{symbol} [get]
func (h *handler) getOne(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	code := c.Param("symbol")
	if err := domain.ValidateCode(code); err != nil {
		return delivery.MakeErrResp(c, err)
	}

	if res, err := h.registry.FindOne(ctx, code); err != nil {
		return delivery.MakeErrResp(c, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}
