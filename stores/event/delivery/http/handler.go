package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/metaversus/goapi/base/ctx"
	"github.com/metaversus/goapi/base/delivery"
	"github.com/metaversus/goapi/domain"
	"github.com/metaversus/goapi/domain/event"
	"github.com/metaversus/goapi/middleware"
)

type eventHandler struct {
	events event.Repo
}

func New(e *echo.Echo, events event.Repo) {
	handler := &eventHandler{events: events}

	g := e.Group("/activities")
	g.GET("", handler.list, middleware.CacheHttp(30*time.Second))
}

// list returns recent activity, optionally filtered by type, account or
// source address.
func (h *eventHandler) list(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	opts := []event.FindAllOptionsFunc{}
	if t := c.QueryParam("type"); t != "" {
		opts = append(opts, event.WithType(event.Type(t)))
	}
	if account := c.QueryParam("account"); account != "" {
		opts = append(opts, event.WithAccount(domain.Address(account)))
	}
	if source := c.QueryParam("source"); source != "" {
		opts = append(opts, event.WithSource(domain.Address(source)))
	}
	limit := 100
	if l := c.QueryParam("limit"); l != "" {
		if n, err := strconv.Atoi(l); err == nil && n > 0 {
			limit = n
		}
	}
	opts = append(opts, event.WithLimit(limit))

	events, err := h.events.FindAll(ctx, opts...)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, events)
}
