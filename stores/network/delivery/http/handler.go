package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/pixelbay/goapi/base/delivery"
	"github.com/pixelbay/goapi/domain/network"
	"github.com/pixelbay/goapi/middleware"
)

type handler struct {
	registry network.Registry
}

// New adds the supported networks listing
func New(e *echo.Echo, registry network.Registry) {
	h := &handler{registry: registry}
	e.GET("/networks", h.getNetworks, middleware.CacheHttp(time.Minute))
}

func (h *handler) getNetworks(c echo.Context) error {
	return delivery.MakeJsonResp(c, http.StatusOK, h.registry.All())
}
