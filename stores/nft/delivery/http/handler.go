package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/metaversus/goapi/base/ctx"
	"github.com/metaversus/goapi/base/delivery"
	"github.com/metaversus/goapi/domain"
	"github.com/metaversus/goapi/domain/nft"
	"github.com/metaversus/goapi/middleware"
	authMiddleware "github.com/metaversus/goapi/stores/auth/delivery/http/middleware"
)

type nftHandler struct {
	nft nft.Usecase
}

// New mounts the nft manager routes. Mint routes require admin privilege on
// top of auth, mirroring the usecase gate.
func New(e *echo.Echo, am *authMiddleware.AuthMiddleware, nft nft.Usecase) {
	handler := &nftHandler{nft: nft}

	g := e.Group("/nft")
	g.GET("/:contract/:tokenId/uri", handler.uri, middleware.IsValidAddress("contract"))
	g.GET("/:contract/:tokenId/balance/:owner", handler.balanceOf, middleware.IsValidAddress("contract"), middleware.IsValidAddress("owner"))
	g.GET("/:contract/:tokenId/royalty", handler.royaltyInfo, middleware.IsValidAddress("contract"))

	auth := e.Group("/nft", am.Auth())
	auth.POST("/mint", handler.mint, am.IsAdmin())
	auth.POST("/mintBatch", handler.mintBatch, am.IsAdmin())
	auth.POST("/:contract/:tokenId/uri", handler.setURI, am.IsAdmin(), middleware.IsValidAddress("contract"))
	auth.POST("/:contract/:tokenId/transfer", handler.transfer, middleware.IsValidAddress("contract"))
}

func (h *nftHandler) mint(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	type params struct {
		Type   domain.TokenType `json:"type"`
		To     domain.Address   `json:"to"`
		Amount int64            `json:"amount"`
		Uri    string           `json:"uri"`
	}
	p := &params{}
	if err := c.Bind(p); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, err)
	}

	token, err := h.nft.CreateNFT(ctx, caller, p.Type, p.To, p.Amount, p.Uri)
	if err != nil {
		return mapError(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, token)
}

func (h *nftHandler) mintBatch(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	type params struct {
		Type            domain.TokenType `json:"type"`
		To              domain.Address   `json:"to"`
		Amounts         []int64          `json:"amounts"`
		Uris            []string         `json:"uris"`
		RoyaltyReceiver domain.Address   `json:"royaltyReceiver"`
		RoyaltyBps      int64            `json:"royaltyBps"`
	}
	p := &params{}
	if err := c.Bind(p); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, err)
	}

	var tokens []*nft.Token
	var err error
	if p.RoyaltyReceiver.IsEmpty() && p.RoyaltyBps == 0 {
		tokens, err = h.nft.CreateBatchNFT(ctx, caller, p.Type, p.To, p.Amounts, p.Uris)
	} else {
		tokens, err = h.nft.CreateBatchNFTWithRoyalties(ctx, caller, p.Type, p.To, p.Amounts, p.Uris, p.RoyaltyReceiver, p.RoyaltyBps)
	}
	if err != nil {
		return mapError(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, tokens)
}

func (h *nftHandler) setURI(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	type params struct {
		Uri string `json:"uri"`
	}
	p := &params{}
	if err := c.Bind(p); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, err)
	}

	contract := domain.Address(c.Param("contract"))
	tokenId := domain.TokenId(c.Param("tokenId"))
	if err := h.nft.SetURI(ctx, caller, contract, tokenId, p.Uri); err != nil {
		return mapError(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}

func (h *nftHandler) uri(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	uri, err := h.nft.URI(ctx, domain.Address(c.Param("contract")), domain.TokenId(c.Param("tokenId")))
	if err != nil {
		return mapError(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, uri)
}

func (h *nftHandler) balanceOf(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	balance, err := h.nft.BalanceOf(ctx, domain.Address(c.Param("contract")), domain.TokenId(c.Param("tokenId")), domain.Address(c.Param("owner")))
	if err != nil {
		return mapError(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, balance)
}

func (h *nftHandler) royaltyInfo(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	salePrice, ok := domain.ParseAmount(c.QueryParam("salePrice"))
	if !ok {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrInvalidAmount)
	}

	receiver, amount, err := h.nft.RoyaltyInfo(ctx, domain.Address(c.Param("contract")), domain.TokenId(c.Param("tokenId")), salePrice)
	if err != nil {
		return mapError(c, err)
	}
	res := struct {
		Receiver domain.Address `json:"receiver"`
		Amount   string         `json:"amount"`
	}{
		Receiver: receiver,
		Amount:   amount.String(),
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *nftHandler) transfer(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	type params struct {
		To     domain.Address `json:"to"`
		Amount int64          `json:"amount"`
	}
	p := &params{}
	if err := c.Bind(p); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, err)
	}

	contract := domain.Address(c.Param("contract"))
	tokenId := domain.TokenId(c.Param("tokenId"))
	if err := h.nft.Transfer(ctx, contract, tokenId, caller, p.To, p.Amount); err != nil {
		return mapError(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}

func mapError(c echo.Context, err error) error {
	switch err {
	case domain.ErrCallerIsNotOwnerOrAdmin:
		return delivery.MakeJsonResp(c, http.StatusForbidden, err)
	case domain.ErrNotFound:
		return delivery.MakeJsonResp(c, http.StatusNotFound, err)
	case domain.ErrInvalidAddress, domain.ErrInvalidAmount, domain.ErrInvalidLength,
		domain.ErrBadParamInput:
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	case domain.ErrExceedAmount:
		return delivery.MakeJsonResp(c, http.StatusConflict, err)
	default:
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
}
