package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/pixelbay/goapi/base/ctx"
	"github.com/pixelbay/goapi/base/delivery"
	"github.com/pixelbay/goapi/domain"
	"github.com/pixelbay/goapi/domain/listing"
)

type handler struct {
	listing listing.UseCase
}

// New adds the gallery endpoints: browse the available pool, fetch one
// listing, mint a new one.
func New(e *echo.Echo, listingUC listing.UseCase) {
	h := &handler{listing: listingUC}

	g := e.Group("/listings")
	g.GET("", h.getAvailable)
	g.GET("/:id", h.get)
	g.POST("", h.add)
}

func (h *handler) getAvailable(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	listings, err := h.listing.GetAvailable(ctx)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, listings)
}

func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := struct {
		Id string `param:"id" validate:"required"`
	}{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	l, err := h.listing.Get(ctx, listing.Id(p.Id))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, l)
}

func (h *handler) add(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := struct {
		Name    string `json:"name" validate:"required"`
		Src     string `json:"src" validate:"required"`
		Price   string `json:"price" validate:"required"`
		Creator string `json:"creator" validate:"omitempty,eth_addr"`
	}{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	price, err := decimal.NewFromString(p.Price)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrInvalidPrice)
	}

	l, err := h.listing.Add(ctx, &listing.Listing{
		Name:    p.Name,
		Src:     p.Src,
		Price:   price,
		Creator: domain.Address(p.Creator).ToLower(),
	})
	if err != nil {
		if err == domain.ErrInvalidPrice {
			return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
		}
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, l)
}
