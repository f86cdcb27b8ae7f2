package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/metaversus/goapi/base/ctx"
	"github.com/metaversus/goapi/base/delivery"
	"github.com/metaversus/goapi/domain"
	"github.com/metaversus/goapi/domain/collection"
	"github.com/metaversus/goapi/middleware"
	authMiddleware "github.com/metaversus/goapi/stores/auth/delivery/http/middleware"
)

type collectionHandler struct {
	collection collection.Usecase
}

func New(e *echo.Echo, am *authMiddleware.AuthMiddleware, collection collection.Usecase) {
	handler := &collectionHandler{collection: collection}

	g := e.Group("/collections")
	g.GET("/:id", handler.get)
	g.GET("/count", handler.count)
	g.GET("/user/:address", handler.getByUser, middleware.IsValidAddress("address"))

	auth := e.Group("/collections", am.Auth())
	auth.POST("", handler.create)
	auth.POST("/maxCollection", handler.setMaxCollection)
	auth.POST("/maxTotalSupply", handler.setMaxTotalSupply)
	auth.POST("/maxCollectionOfUser", handler.setMaxCollectionOfUser)
	auth.POST("/templates", handler.setTemplates)
}

func (h *collectionHandler) create(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	type params struct {
		Type            domain.TokenType `json:"type"`
		Name            string           `json:"name"`
		Symbol          string           `json:"symbol"`
		RoyaltyReceiver domain.Address   `json:"royaltyReceiver"`
		RoyaltyBps      int64            `json:"royaltyBps"`
	}
	p := &params{}
	if err := c.Bind(p); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, err)
	}

	info, err := h.collection.Create(ctx, caller, p.Type, p.Name, p.Symbol, p.RoyaltyReceiver, p.RoyaltyBps)
	if err != nil {
		return mapError(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, info)
}

func (h *collectionHandler) setMaxCollection(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	type params struct {
		Max int64 `json:"max"`
	}
	p := &params{}
	if err := c.Bind(p); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, err)
	}

	if err := h.collection.SetMaxCollection(ctx, caller, p.Max); err != nil {
		return mapError(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}

func (h *collectionHandler) setMaxTotalSupply(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	type params struct {
		Max int64 `json:"max"`
	}
	p := &params{}
	if err := c.Bind(p); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, err)
	}

	if err := h.collection.SetMaxTotalSupply(ctx, caller, p.Max); err != nil {
		return mapError(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}

func (h *collectionHandler) setMaxCollectionOfUser(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	type params struct {
		User domain.Address `json:"user"`
		Max  int64          `json:"max"`
	}
	p := &params{}
	if err := c.Bind(p); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, err)
	}

	if err := h.collection.SetMaxCollectionOfUser(ctx, caller, p.User, p.Max); err != nil {
		return mapError(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}

func (h *collectionHandler) setTemplates(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	type params struct {
		Template721  domain.Address `json:"template721"`
		Template1155 domain.Address `json:"template1155"`
	}
	p := &params{}
	if err := c.Bind(p); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, err)
	}

	if err := h.collection.SetTemplateAddress(ctx, caller, p.Template721, p.Template1155); err != nil {
		return mapError(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}

func (h *collectionHandler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	info, err := h.collection.Get(ctx, id)
	if err != nil {
		return mapError(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, info)
}

func (h *collectionHandler) getByUser(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	infos, err := h.collection.GetByUser(ctx, domain.Address(c.Param("address")))
	if err != nil {
		return mapError(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, infos)
}

func (h *collectionHandler) count(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	n, err := h.collection.TotalCollection(ctx)
	if err != nil {
		return mapError(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, n)
}

func mapError(c echo.Context, err error) error {
	switch err {
	case domain.ErrCallerIsNotOwnerOrAdmin:
		return delivery.MakeJsonResp(c, http.StatusForbidden, err)
	case domain.ErrNotFound:
		return delivery.MakeJsonResp(c, http.StatusNotFound, err)
	case domain.ErrBadParamInput, domain.ErrInvalidAddress, domain.ErrInvalidMaxCollection:
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	case domain.ErrExceedMaxCollection:
		return delivery.MakeJsonResp(c, http.StatusConflict, err)
	default:
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
}
