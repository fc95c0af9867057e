package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/staking/base/ctx"
	"github.com/x-xyz/staking/base/delivery"
	"github.com/x-xyz/staking/domain"
	"github.com/x-xyz/staking/domain/transfer"
)

type handler struct {
	transfers transfer.UseCase
}

func New(e *echo.Echo, transfers transfer.UseCase) {
	h := &handler{transfers}

	e.GET("/transfers", h.getAll)
}

// getAll
//
//	@Summary		List transfer instructions
//	@Description	Newest first
//	@Tags			transfers
//	@Produce		json
//	@Param			to		query		string	false	"receiver"
//	@Param			status	query		string	false	"status"	Enums(pending, sent, failed)
//	@Param			kind	query		string	false	"kind"		Enums(reward, refund)
//	@Param			offset	query		int		false	"offset"
//	@Param			limit	query		int		false	"limit"
//	@Success		200		{object}	object{data=[]transfer.Instruction}
//	@Failure		400
//	@Failure		500
//	@Router			/transfers [get]
func (h *handler) getAll(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		delivery.Paging
		To     domain.Name     `query:"to" validate:"omitempty,account"`
		Status transfer.Status `query:"status"`
		Kind   transfer.Kind   `query:"kind" validate:"omitempty,oneof=reward refund"`
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
	opts := []transfer.FindAllOptionsFunc{
		transfer.WithSort("createdAt", domain.SortDirDesc),
		transfer.WithPagination(offset, limit),
	}
	if !p.To.IsEmpty() {
		opts = append(opts, transfer.WithTo(p.To))
	}
	if p.Status != "" {
		opts = append(opts, transfer.WithStatus(p.Status))
	}
	if p.Kind != "" {
		opts = append(opts, transfer.WithKind(p.Kind))
	}

	if res, err := h.transfers.FindAll(ctx, opts...); err != nil {
		ctx.WithField("err", err).Warn("transfers.FindAll failed")
		return delivery.MakeErrResp(c, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}
