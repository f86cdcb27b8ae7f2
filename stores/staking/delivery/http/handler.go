package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/metaversus/goapi/base/ctx"
	"github.com/metaversus/goapi/base/delivery"
	"github.com/metaversus/goapi/domain"
	"github.com/metaversus/goapi/domain/staking"
	"github.com/metaversus/goapi/middleware"
	authMiddleware "github.com/metaversus/goapi/stores/auth/delivery/http/middleware"
)

type stakingHandler struct {
	staking staking.Usecase
}

func New(e *echo.Echo, am *authMiddleware.AuthMiddleware, staking staking.Usecase) {
	handler := &stakingHandler{staking: staking}

	g := e.Group("/staking")
	g.GET("/:address/pending/:staker", handler.pendingReward, middleware.IsValidAddress("address"), middleware.IsValidAddress("staker"))

	auth := e.Group("/staking", am.Auth())
	auth.POST("/pools", handler.createPool)
	auth.POST("/:address/stake", handler.stake, middleware.IsValidAddress("address"))
	auth.POST("/:address/unstake", handler.unstake, middleware.IsValidAddress("address"))
	auth.POST("/:address/claim", handler.claim, middleware.IsValidAddress("address"))
	auth.POST("/:address/close", handler.closePool, middleware.IsValidAddress("address"))
}

func (h *stakingHandler) createPool(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	owner := c.Get("address").(domain.Address)

	type params struct {
		StakeToken  domain.Address `json:"stakeToken"`
		RewardToken domain.Address `json:"rewardToken"`
		RewardRate  int64          `json:"rewardRate"`
		Duration    time.Duration  `json:"duration"`
	}
	p := &params{}
	if err := c.Bind(p); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, err)
	}

	pool, err := h.staking.CreatePool(ctx, owner, p.StakeToken, p.RewardToken, p.RewardRate, p.Duration)
	if err != nil {
		return mapError(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, pool)
}

func (h *stakingHandler) stake(c echo.Context) error {
	return h.move(c, h.staking.Stake)
}

func (h *stakingHandler) unstake(c echo.Context) error {
	return h.move(c, h.staking.Unstake)
}

func (h *stakingHandler) move(c echo.Context, op func(ctx.Ctx, domain.Address, domain.Address, string) error) error {
	cont := c.Get("ctx").(ctx.Ctx)
	staker := c.Get("address").(domain.Address)

	type params struct {
		Amount string `json:"amount"`
	}
	p := &params{}
	if err := c.Bind(p); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, err)
	}

	if err := op(cont, domain.Address(c.Param("address")), staker, p.Amount); err != nil {
		return mapError(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}

func (h *stakingHandler) pendingReward(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	pending, err := h.staking.PendingReward(ctx, domain.Address(c.Param("address")), domain.Address(c.Param("staker")))
	if err != nil {
		return mapError(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, pending)
}

func (h *stakingHandler) claim(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	staker := c.Get("address").(domain.Address)

	if err := h.staking.Claim(ctx, domain.Address(c.Param("address")), staker); err != nil {
		return mapError(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}

func (h *stakingHandler) closePool(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	if err := h.staking.ClosePool(ctx, domain.Address(c.Param("address")), caller); err != nil {
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
	case domain.ErrInvalidAddress, domain.ErrInvalidAmount, domain.ErrInvalidEndTime,
		domain.ErrPaymentTokenIsNotSupported:
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	case domain.ErrInsufficientBalance, domain.ErrOrderIsExpired:
		return delivery.MakeJsonResp(c, http.StatusConflict, err)
	default:
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
}
