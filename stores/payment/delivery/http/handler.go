package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pixelbay/goapi/base/ctx"
	"github.com/pixelbay/goapi/base/delivery"
	"github.com/pixelbay/goapi/domain"
	"github.com/pixelbay/goapi/domain/listing"
	"github.com/pixelbay/goapi/domain/payment"
)

type handler struct {
	payment payment.UseCase
}

// New adds the checkout endpoint
func New(e *echo.Echo, paymentUC payment.UseCase) {
	h := &handler{payment: paymentUC}
	e.POST("/checkout", h.checkout)
}

func (h *handler) checkout(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := struct {
		Ids []string `json:"ids" validate:"required,min=1"`
	}{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	ids := make([]listing.Id, 0, len(p.Ids))
	for _, id := range p.Ids {
		ids = append(ids, listing.Id(id))
	}

	result, err := h.payment.Checkout(ctx, ids)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotConnected):
			return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
		case errors.Is(err, domain.ErrNetworkUnavailable):
			return delivery.MakeJsonResp(c, http.StatusBadGateway, err)
		}
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	// a partially failed checkout is still a well-formed result
	return delivery.MakeJsonResp(c, http.StatusOK, result)
}
