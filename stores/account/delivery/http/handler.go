package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/metaversus/goapi/base/ctx"
	"github.com/metaversus/goapi/base/delivery"
	"github.com/metaversus/goapi/domain"
	"github.com/metaversus/goapi/domain/account"
	"github.com/metaversus/goapi/middleware"
)

type accountHandler struct {
	account account.Usecase
}

func New(e *echo.Echo, account account.Usecase) {
	handler := &accountHandler{account: account}
	g := e.Group("/account")
	g.GET("/:address/nonce", handler.nonce, middleware.IsValidAddress("address"))
}

// nonce issues the login challenge for the wallet.
func (h *accountHandler) nonce(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	address := domain.Address(c.Param("address"))

	nonce, err := h.account.RotateNonce(ctx, address)
	if err != nil {
		ctx.WithField("err", err).Error("account.RotateNonce failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, nonce)
}
