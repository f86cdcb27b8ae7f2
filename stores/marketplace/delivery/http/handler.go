package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/metaversus/goapi/base/ctx"
	"github.com/metaversus/goapi/base/delivery"
	"github.com/metaversus/goapi/domain"
	"github.com/metaversus/goapi/domain/marketplace"
	authMiddleware "github.com/metaversus/goapi/stores/auth/delivery/http/middleware"
)

type marketplaceHandler struct {
	marketplace marketplace.Usecase
}

func New(e *echo.Echo, am *authMiddleware.AuthMiddleware, marketplace marketplace.Usecase) {
	handler := &marketplaceHandler{marketplace: marketplace}

	g := e.Group("/marketplace")
	g.GET("/items/:id", handler.getMarketItem)
	g.GET("/orders/:id", handler.getOrder)

	auth := e.Group("/marketplace", am.Auth())
	auth.POST("/sell", handler.sell)
	auth.POST("/items/:id/buy", handler.buy)
	auth.POST("/items/:id/cancel", handler.cancelSell)
	auth.POST("/items/:id/relist", handler.relist)
	auth.POST("/orders/wallet", handler.makeWalletOrder)
	auth.POST("/orders/marketItem", handler.makeMarketItemOrder)
	auth.POST("/orders/:id/accept", handler.acceptOrder)
	auth.POST("/orders/:id/cancel", handler.cancelOrder)
}

func (h *marketplaceHandler) sell(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	seller := c.Get("address").(domain.Address)

	type params struct {
		Nft           domain.Address `json:"nft"`
		TokenId       domain.TokenId `json:"tokenId"`
		Amount        int64          `json:"amount"`
		Price         string         `json:"price"`
		StartTime     time.Time      `json:"startTime"`
		EndTime       time.Time      `json:"endTime"`
		PaymentToken  domain.Address `json:"paymentToken"`
		WhitelistRoot string         `json:"whitelistRoot"`
	}
	p := &params{}
	if err := c.Bind(p); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, err)
	}

	item, err := h.marketplace.Sell(ctx, seller, p.Nft, p.TokenId, p.Amount, p.Price, p.StartTime, p.EndTime, p.PaymentToken, p.WhitelistRoot)
	if err != nil {
		return mapError(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, item)
}

func (h *marketplaceHandler) buy(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	buyer := c.Get("address").(domain.Address)

	id, err := itemId(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrInvalidMarketItemId)
	}

	type params struct {
		Proof []string `json:"proof"`
	}
	p := &params{}
	if err := c.Bind(p); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, err)
	}

	if err := h.marketplace.Buy(ctx, buyer, id, p.Proof); err != nil {
		return mapError(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}

func (h *marketplaceHandler) cancelSell(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	id, err := itemId(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrInvalidMarketItemId)
	}

	if err := h.marketplace.CancelSell(ctx, caller, id); err != nil {
		return mapError(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}

func (h *marketplaceHandler) relist(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	id, err := itemId(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrInvalidMarketItemId)
	}

	type params struct {
		Price     string    `json:"price"`
		StartTime time.Time `json:"startTime"`
		EndTime   time.Time `json:"endTime"`
	}
	p := &params{}
	if err := c.Bind(p); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, err)
	}

	if err := h.marketplace.SellAvailableInMarketplace(ctx, caller, id, p.Price, p.StartTime, p.EndTime); err != nil {
		return mapError(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}

func (h *marketplaceHandler) makeWalletOrder(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	bidder := c.Get("address").(domain.Address)

	type params struct {
		PaymentToken domain.Address `json:"paymentToken"`
		BidPrice     string         `json:"bidPrice"`
		To           domain.Address `json:"to"`
		Nft          domain.Address `json:"nft"`
		TokenId      domain.TokenId `json:"tokenId"`
		Amount       int64          `json:"amount"`
		ExpiredTime  time.Time      `json:"expiredTime"`
	}
	p := &params{}
	if err := c.Bind(p); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, err)
	}

	order, err := h.marketplace.MakeWalletOrder(ctx, bidder, p.PaymentToken, p.BidPrice, p.To, p.Nft, p.TokenId, p.Amount, p.ExpiredTime)
	if err != nil {
		return mapError(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, order)
}

func (h *marketplaceHandler) makeMarketItemOrder(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	bidder := c.Get("address").(domain.Address)

	type params struct {
		MarketItemId int64     `json:"marketItemId"`
		BidPrice     string    `json:"bidPrice"`
		ExpiredTime  time.Time `json:"expiredTime"`
		Proof        []string  `json:"proof"`
	}
	p := &params{}
	if err := c.Bind(p); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, err)
	}

	order, err := h.marketplace.MakeMarketItemOrder(ctx, bidder, p.MarketItemId, p.BidPrice, p.ExpiredTime, p.Proof)
	if err != nil {
		return mapError(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, order)
}

func (h *marketplaceHandler) acceptOrder(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	id, err := itemId(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrInvalidOrderId)
	}

	type params struct {
		AcceptPrice string `json:"acceptPrice"`
	}
	p := &params{}
	if err := c.Bind(p); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, err)
	}

	if err := h.marketplace.AcceptOrder(ctx, caller, id, p.AcceptPrice); err != nil {
		return mapError(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}

func (h *marketplaceHandler) cancelOrder(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	id, err := itemId(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrInvalidOrderId)
	}

	if err := h.marketplace.CancelOrder(ctx, caller, id); err != nil {
		return mapError(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}

func (h *marketplaceHandler) getMarketItem(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	id, err := itemId(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrInvalidMarketItemId)
	}

	item, err := h.marketplace.GetMarketItem(ctx, id)
	if err != nil {
		return mapError(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, item)
}

func (h *marketplaceHandler) getOrder(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	id, err := itemId(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrInvalidOrderId)
	}

	order, err := h.marketplace.GetOrder(ctx, id)
	if err != nil {
		return mapError(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, order)
}

func itemId(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}

func mapError(c echo.Context, err error) error {
	switch err {
	case domain.ErrNotTheSeller, domain.ErrNotTheOwnerOfOrder:
		return delivery.MakeJsonResp(c, http.StatusForbidden, err)
	case domain.ErrInvalidMarketItemId, domain.ErrInvalidOrderId, domain.ErrNotFound:
		return delivery.MakeJsonResp(c, http.StatusNotFound, err)
	case domain.ErrInvalidAmount, domain.ErrInvalidEndTime, domain.ErrInvalidOrderTime,
		domain.ErrInvalidNftAddress, domain.ErrInvalidWallet, domain.ErrTokenIsNotExisted,
		domain.ErrPaymentTokenIsNotSupported, domain.ErrNotEqualPrice,
		domain.ErrCanNotUpdatePaymentToken, domain.ErrExceedAmount:
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	case domain.ErrMarketItemIsNotAvailable, domain.ErrMarketItemIsNotSelling,
		domain.ErrOrderIsNotAvailable, domain.ErrOrderIsExpired, domain.ErrNotInTheOrderTime,
		domain.ErrCanNotBuyYourNFT, domain.ErrUserCanNotOffer, domain.ErrNotInWhitelist,
		domain.ErrInsufficientBalance, domain.ErrTransferNativeFail:
		return delivery.MakeJsonResp(c, http.StatusConflict, err)
	default:
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
}
