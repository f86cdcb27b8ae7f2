package http

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/metaversus/goapi/base/ctx"
	"github.com/metaversus/goapi/base/delivery"
	"github.com/metaversus/goapi/domain"
	"github.com/metaversus/goapi/domain/account"
	"github.com/metaversus/goapi/stores/auth/usecase"
)

type authHandler struct {
	auth               domain.AuthUsecase
	account            account.Usecase
	signingMsgTemplate string
}

func New(e *echo.Echo, auth domain.AuthUsecase, account account.Usecase, template string) {
	handler := &authHandler{
		auth:               auth,
		account:            account,
		signingMsgTemplate: template,
	}
	g := e.Group("/auth")
	g.POST("/sign", handler.sign)
	g.GET("/signingMsgTemplate", handler.getSigningMsgTemplate)
}

// sign exchanges a wallet signature over the account nonce for an access
// token. The nonce rotates on every successful login.
func (h *authHandler) sign(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Address   domain.Address `json:"address"`
		Signature string         `json:"signature"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("bind failed")
		return c.JSON(http.StatusUnprocessableEntity, err)
	}

	acc, err := h.account.Get(ctx, p.Address)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrInvalidSignature)
	}

	message := fmt.Sprintf(h.signingMsgTemplate, acc.Nonce)
	signer, err := usecase.RecoverAddress(message, p.Signature)
	if err != nil || !signer.Equals(p.Address) {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrInvalidSignature)
	}

	if _, err := h.account.RotateNonce(ctx, p.Address); err != nil {
		ctx.WithField("err", err).Error("account.RotateNonce failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	if tkn, err := h.auth.SignToken(ctx, p.Address); err != nil {
		ctx.WithField("err", err).Error("auth.SignToken failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusCreated, tkn)
	}
}

func (h *authHandler) getSigningMsgTemplate(c echo.Context) error {
	res := struct {
		Msg string `json:"template"`
	}{
		Msg: h.signingMsgTemplate,
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}
