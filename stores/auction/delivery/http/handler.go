package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/metaversus/goapi/base/ctx"
	"github.com/metaversus/goapi/base/delivery"
	"github.com/metaversus/goapi/domain"
	"github.com/metaversus/goapi/domain/auction"
	"github.com/metaversus/goapi/middleware"
	authMiddleware "github.com/metaversus/goapi/stores/auth/delivery/http/middleware"
)

type auctionHandler struct {
	factory auction.FactoryUsecase
	english auction.EnglishUsecase
	dutch   auction.DutchUsecase
}

func New(e *echo.Echo, am *authMiddleware.AuthMiddleware, factory auction.FactoryUsecase, english auction.EnglishUsecase, dutch auction.DutchUsecase) {
	handler := &auctionHandler{
		factory: factory,
		english: english,
		dutch:   dutch,
	}

	g := e.Group("/auction")
	g.GET("/:address", handler.get, middleware.IsValidAddress("address"))
	g.GET("/:address/price", handler.getPrice, middleware.IsValidAddress("address"))

	auth := e.Group("/auction", am.Auth())
	auth.POST("/english", handler.createEnglish)
	auth.POST("/dutch", handler.createDutch)
	auth.POST("/:address/bid", handler.bid, middleware.IsValidAddress("address"))
	auth.POST("/:address/withdraw", handler.withdraw, middleware.IsValidAddress("address"))
	auth.POST("/:address/end", handler.end, middleware.IsValidAddress("address"))
	auth.POST("/:address/buy", handler.buy, middleware.IsValidAddress("address"))
}

func (h *auctionHandler) createEnglish(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	owner := c.Get("address").(domain.Address)

	type params struct {
		Nft          domain.Address `json:"nft"`
		TokenId      domain.TokenId `json:"tokenId"`
		PaymentToken domain.Address `json:"paymentToken"`
		StartingBid  string         `json:"startingBid"`
		StartTime    time.Time      `json:"startTime"`
		EndTime      time.Time      `json:"endTime"`
	}
	p := &params{}
	if err := c.Bind(p); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, err)
	}

	a, err := h.factory.CreateEnglishAuction(ctx, owner, p.Nft, p.TokenId, p.PaymentToken, p.StartingBid, p.StartTime, p.EndTime)
	if err != nil {
		return mapError(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, a)
}

func (h *auctionHandler) createDutch(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	owner := c.Get("address").(domain.Address)

	type params struct {
		Nft           domain.Address `json:"nft"`
		TokenId       domain.TokenId `json:"tokenId"`
		PaymentToken  domain.Address `json:"paymentToken"`
		StartingPrice string         `json:"startingPrice"`
		StartTime     time.Time      `json:"startTime"`
		EndTime       time.Time      `json:"endTime"`
		DecrementStep int64          `json:"decrementStep"`
	}
	p := &params{}
	if err := c.Bind(p); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, err)
	}

	a, err := h.factory.CreateDutchAuction(ctx, owner, p.Nft, p.TokenId, p.PaymentToken, p.StartingPrice, p.StartTime, p.EndTime, p.DecrementStep)
	if err != nil {
		return mapError(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, a)
}

func (h *auctionHandler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	a, err := h.factory.Get(ctx, domain.Address(c.Param("address")))
	if err != nil {
		return mapError(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, a)
}

func (h *auctionHandler) getPrice(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	price, err := h.dutch.GetPrice(ctx, domain.Address(c.Param("address")), time.Now())
	if err != nil {
		return mapError(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, price.String())
}

func (h *auctionHandler) bid(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	bidder := c.Get("address").(domain.Address)

	type params struct {
		Amount string `json:"amount"`
	}
	p := &params{}
	if err := c.Bind(p); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, err)
	}

	if err := h.english.Bid(ctx, domain.Address(c.Param("address")), bidder, p.Amount); err != nil {
		return mapError(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}

func (h *auctionHandler) withdraw(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)
	address := domain.Address(c.Param("address"))

	a, err := h.factory.Get(ctx, address)
	if err != nil {
		return mapError(c, err)
	}
	if a.Kind == auction.KindDutch {
		err = h.dutch.Withdraw(ctx, address, caller)
	} else {
		err = h.english.Withdraw(ctx, address, caller)
	}
	if err != nil {
		return mapError(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}

func (h *auctionHandler) end(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	if err := h.english.End(ctx, domain.Address(c.Param("address")), caller); err != nil {
		return mapError(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}

func (h *auctionHandler) buy(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	buyer := c.Get("address").(domain.Address)

	type params struct {
		Offer string `json:"offer"`
	}
	p := &params{}
	if err := c.Bind(p); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, err)
	}

	if err := h.dutch.Buy(ctx, domain.Address(c.Param("address")), buyer, p.Offer); err != nil {
		return mapError(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}

func mapError(c echo.Context, err error) error {
	switch err {
	case domain.ErrCallerIsNotOwner:
		return delivery.MakeJsonResp(c, http.StatusForbidden, err)
	case domain.ErrNotFound:
		return delivery.MakeJsonResp(c, http.StatusNotFound, err)
	case domain.ErrInvalidAmount, domain.ErrInvalidEndTime, domain.ErrInvalidAddress,
		domain.ErrInvalidNftAddress, domain.ErrPaymentTokenIsNotSupported:
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	case domain.ErrAuctionNotStarted, domain.ErrAuctionEnded, domain.ErrValueBelowPrice,
		domain.ErrAmountBelowHighest, domain.ErrHighestBidderNoWithdraw,
		domain.ErrInsufficientBalance, domain.ErrTransferNativeFail:
		return delivery.MakeJsonResp(c, http.StatusConflict, err)
	default:
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
}
