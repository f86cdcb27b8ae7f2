package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/metaversus/goapi/base/ctx"
	"github.com/metaversus/goapi/base/delivery"
	"github.com/metaversus/goapi/domain"
	"github.com/metaversus/goapi/domain/admin"
	"github.com/metaversus/goapi/domain/treasury"
	authMiddleware "github.com/metaversus/goapi/stores/auth/delivery/http/middleware"
)

type adminHandler struct {
	admin    admin.Usecase
	treasury treasury.Usecase
}

// New mounts the access registry and treasury routes. Mutations require a
// signed-in wallet; ownership checks live in the usecases.
func New(e *echo.Echo, am *authMiddleware.AuthMiddleware, admin admin.Usecase, treasury treasury.Usecase) {
	handler := &adminHandler{admin: admin, treasury: treasury}

	g := e.Group("/admin", am.Auth())
	g.GET("/registry", handler.getRegistry)
	g.POST("/admins", handler.setAdmin)
	g.POST("/paymentTokens", handler.setPermittedPaymentToken)
	g.POST("/nfts", handler.setPermittedNFT)
	g.POST("/treasury", handler.setTreasury)
	g.POST("/treasury/distribute", handler.distribute)
}

func (h *adminHandler) getRegistry(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	registry, err := h.admin.Get(ctx)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, registry)
}

func (h *adminHandler) setAdmin(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	type params struct {
		Address domain.Address `json:"address"`
		Enable  bool           `json:"enable"`
	}
	p := &params{}
	if err := c.Bind(p); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, err)
	}

	if err := h.admin.SetAdmin(ctx, caller, p.Address, p.Enable); err != nil {
		return mapError(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}

func (h *adminHandler) setPermittedPaymentToken(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	type params struct {
		Token  domain.Address `json:"token"`
		Enable bool           `json:"enable"`
	}
	p := &params{}
	if err := c.Bind(p); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, err)
	}

	if err := h.admin.SetPermittedPaymentToken(ctx, caller, p.Token, p.Enable); err != nil {
		return mapError(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}

func (h *adminHandler) setPermittedNFT(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	type params struct {
		Nft    domain.Address `json:"nft"`
		Enable bool           `json:"enable"`
	}
	p := &params{}
	if err := c.Bind(p); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, err)
	}

	if err := h.admin.SetPermittedNFT(ctx, caller, p.Nft, p.Enable); err != nil {
		return mapError(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}

func (h *adminHandler) setTreasury(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	type params struct {
		Treasury domain.Address `json:"treasury"`
	}
	p := &params{}
	if err := c.Bind(p); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, err)
	}

	if err := h.admin.SetTreasury(ctx, caller, p.Treasury); err != nil {
		return mapError(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}

func (h *adminHandler) distribute(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	type params struct {
		Token  domain.Address `json:"token"`
		To     domain.Address `json:"to"`
		Amount string         `json:"amount"`
	}
	p := &params{}
	if err := c.Bind(p); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, err)
	}

	amount, err := decimal.NewFromString(p.Amount)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrInvalidAmount)
	}
	if err := h.treasury.Distribute(ctx, caller, p.Token, p.To, amount); err != nil {
		return mapError(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}

func mapError(c echo.Context, err error) error {
	switch err {
	case domain.ErrCallerIsNotOwner, domain.ErrCallerIsNotOwnerOrAdmin:
		return delivery.MakeJsonResp(c, http.StatusForbidden, err)
	case domain.ErrNotFound:
		return delivery.MakeJsonResp(c, http.StatusNotFound, err)
	case domain.ErrInvalidAddress, domain.ErrInvalidAmount, domain.ErrInvalidWallet,
		domain.ErrPaymentTokenIsNotSupported:
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	default:
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
}
