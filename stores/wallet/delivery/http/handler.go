package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pixelbay/goapi/base/ctx"
	"github.com/pixelbay/goapi/base/delivery"
	"github.com/pixelbay/goapi/domain"
	"github.com/pixelbay/goapi/domain/wallet"
)

type handler struct {
	session wallet.Session
}

// New adds the wallet session endpoints. The events subgroup receives the
// accountsChanged/chainChanged notifications forwarded from the wallet
// bridge.
func New(e *echo.Echo, session wallet.Session) {
	h := &handler{session: session}

	g := e.Group("/wallet")
	g.GET("", h.getState)
	g.POST("/connect", h.connect)
	g.DELETE("", h.disconnect)
	g.POST("/network", h.switchNetwork)
	g.POST("/events/accountsChanged", h.accountsChanged)
	g.POST("/events/chainChanged", h.chainChanged)
}

func (h *handler) getState(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	return delivery.MakeJsonResp(c, http.StatusOK, h.session.State(ctx))
}

func (h *handler) connect(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	state, err := h.session.Connect(ctx)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserRejected):
			return delivery.MakeJsonResp(c, http.StatusForbidden, err)
		case errors.Is(err, domain.ErrWalletUnavailable):
			return delivery.MakeJsonResp(c, http.StatusServiceUnavailable, err)
		}
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, state)
}

func (h *handler) disconnect(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	return delivery.MakeJsonResp(c, http.StatusOK, h.session.Disconnect(ctx))
}

func (h *handler) switchNetwork(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := struct {
		ChainId string `json:"chainId" validate:"required"`
	}{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	state, err := h.session.SwitchOrAddNetwork(ctx, domain.ChainId(p.ChainId))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidChainId) {
			return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
		}
		return delivery.MakeJsonResp(c, http.StatusBadGateway, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, state)
}

func (h *handler) accountsChanged(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := struct {
		Accounts []string `json:"accounts"`
	}{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	accounts := make([]domain.Address, 0, len(p.Accounts))
	for _, a := range p.Accounts {
		accounts = append(accounts, domain.Address(a))
	}
	return delivery.MakeJsonResp(c, http.StatusOK, h.session.OnAccountsChanged(ctx, accounts))
}

func (h *handler) chainChanged(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	return delivery.MakeJsonResp(c, http.StatusOK, h.session.OnChainChanged(ctx))
}
