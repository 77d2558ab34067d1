package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/pixelbay/goapi/base/ctx"
	"github.com/pixelbay/goapi/base/delivery"
	"github.com/pixelbay/goapi/domain/coin"
	"github.com/pixelbay/goapi/middleware"
)

type handler struct {
	coin coin.UseCase
}

// New adds the price board endpoints
func New(e *echo.Echo, coinUC coin.UseCase) {
	h := &handler{coin: coinUC}

	g := e.Group("/coin")
	g.GET("/prices", h.getPrices, middleware.CacheHttp(30*time.Second))
	g.GET("/:symbol", h.getPrice)
}

func (h *handler) getPrices(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	quotes, err := h.coin.GetQuotes(ctx)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, quotes)
}

func (h *handler) getPrice(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := struct {
		Symbol string `param:"symbol" validate:"required"`
	}{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	pair := coin.Pair(strings.ToUpper(p.Symbol) + "/USD")
	quote, err := h.coin.GetQuote(ctx, pair)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, quote)
}
