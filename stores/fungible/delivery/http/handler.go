package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/metaversus/goapi/base/ctx"
	"github.com/metaversus/goapi/base/delivery"
	"github.com/metaversus/goapi/domain"
	"github.com/metaversus/goapi/domain/fungible"
	"github.com/metaversus/goapi/middleware"
	authMiddleware "github.com/metaversus/goapi/stores/auth/delivery/http/middleware"
)

type fungibleHandler struct {
	fungible fungible.Usecase
}

func New(e *echo.Echo, am *authMiddleware.AuthMiddleware, fungibleUC fungible.Usecase) {
	handler := &fungibleHandler{fungible: fungibleUC}

	g := e.Group("/fungible")
	g.GET("/:token/balance/:account", handler.balanceOf, middleware.IsValidAddress("token"), middleware.IsValidAddress("account"))

	auth := e.Group("/fungible", am.Auth())
	auth.POST("/tokens", handler.register, am.IsAdmin())
	auth.POST("/:token/transfer", handler.transfer, middleware.IsValidAddress("token"))
	auth.POST("/:token/mint", handler.mint, am.IsAdmin(), middleware.IsValidAddress("token"))
	auth.POST("/:token/burn", handler.burn, am.IsAdmin(), middleware.IsValidAddress("token"))
	auth.POST("/:token/deposit", handler.deposit, am.IsAdmin(), middleware.IsValidAddress("token"))
}

func (h *fungibleHandler) balanceOf(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	balance, err := h.fungible.BalanceOf(ctx, domain.Address(c.Param("token")), domain.Address(c.Param("account")))
	if err != nil {
		return mapError(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, balance.String())
}

func (h *fungibleHandler) register(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Address     domain.Address `json:"address" validate:"required"`
		Name        string         `json:"name" validate:"required"`
		Symbol      string         `json:"symbol" validate:"required"`
		TotalSupply string         `json:"totalSupply" validate:"required"`
		Treasury    domain.Address `json:"treasury" validate:"required"`
	}
	p := &params{}
	if err := c.Bind(p); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, err)
	}
	if err := c.Validate(p); err != nil {
		return c.JSON(http.StatusBadRequest, err)
	}

	token := fungible.Token{
		Address:     p.Address,
		Name:        p.Name,
		Symbol:      p.Symbol,
		TotalSupply: p.TotalSupply,
	}
	if err := h.fungible.RegisterToken(ctx, token, p.Treasury); err != nil {
		return mapError(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, token)
}

func (h *fungibleHandler) transfer(c echo.Context) error {
	cont := c.Get("ctx").(ctx.Ctx)
	from := c.Get("address").(domain.Address)

	type params struct {
		To     domain.Address `json:"to" validate:"required"`
		Amount string         `json:"amount" validate:"required"`
	}
	p := &params{}
	if err := c.Bind(p); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, err)
	}

	amount, ok := domain.ParseAmount(p.Amount)
	if !ok {
		return mapError(c, domain.ErrInvalidAmount)
	}
	if err := h.fungible.Transfer(cont, domain.Address(c.Param("token")), from, p.To, amount); err != nil {
		return mapError(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}

func (h *fungibleHandler) mint(c echo.Context) error {
	return h.supplyChange(c, h.fungible.Mint)
}

func (h *fungibleHandler) burn(c echo.Context) error {
	return h.supplyChange(c, h.fungible.Burn)
}

func (h *fungibleHandler) supplyChange(c echo.Context, op func(ctx.Ctx, domain.Address, domain.Address, domain.Address, decimal.Decimal) error) error {
	cont := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	type params struct {
		Account domain.Address `json:"account" validate:"required"`
		Amount  string         `json:"amount" validate:"required"`
	}
	p := &params{}
	if err := c.Bind(p); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, err)
	}

	amount, ok := domain.ParseAmount(p.Amount)
	if !ok {
		return mapError(c, domain.ErrInvalidAmount)
	}
	if err := op(cont, caller, domain.Address(c.Param("token")), p.Account, amount); err != nil {
		return mapError(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}

func (h *fungibleHandler) deposit(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		To     domain.Address `json:"to" validate:"required"`
		Amount string         `json:"amount" validate:"required"`
	}
	p := &params{}
	if err := c.Bind(p); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, err)
	}

	amount, ok := domain.ParseAmount(p.Amount)
	if !ok {
		return mapError(c, domain.ErrInvalidAmount)
	}
	if err := h.fungible.Deposit(ctx, domain.Address(c.Param("token")), p.To, amount); err != nil {
		return mapError(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}

func mapError(c echo.Context, err error) error {
	switch err {
	case domain.ErrCallerIsNotOwnerOrAdmin:
		return delivery.MakeJsonResp(c, http.StatusForbidden, err)
	case domain.ErrNotFound, domain.ErrTokenIsNotExisted:
		return delivery.MakeJsonResp(c, http.StatusNotFound, err)
	case domain.ErrInvalidAddress, domain.ErrInvalidAmount:
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	case domain.ErrInsufficientBalance, domain.ErrTransferNativeFail:
		return delivery.MakeJsonResp(c, http.StatusConflict, err)
	default:
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
}
