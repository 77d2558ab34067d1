package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pixelbay/goapi/base/ctx"
	"github.com/pixelbay/goapi/base/delivery"
	"github.com/pixelbay/goapi/domain"
	"github.com/pixelbay/goapi/domain/ledger"
	"github.com/pixelbay/goapi/domain/network"
	"github.com/pixelbay/goapi/middleware"
)

type handler struct {
	ledger   ledger.UseCase
	registry network.Registry
}

// New adds the dashboard endpoints: the NFTs a wallet owns and its transfer
// log, both enriched with the network descriptor the records settled on.
func New(e *echo.Echo, ledgerUC ledger.UseCase, registry network.Registry) {
	h := &handler{ledger: ledgerUC, registry: registry}

	g := e.Group("/account/:address", middleware.IsValidAddress("address"))
	g.GET("/nfts", h.getNfts)
	g.GET("/transactions", h.getTransactions)
}

type ownedNft struct {
	*ledger.PurchaseRecord
	NetworkName   string `json:"networkName"`
	NetworkSymbol string `json:"networkSymbol"`
	ExplorerUrl   string `json:"explorerUrl,omitempty"`
}

type transferLogEntry struct {
	*ledger.TransactionRecord
	NetworkName string `json:"networkName"`
	ExplorerUrl string `json:"explorerUrl,omitempty"`
}

// describe falls back to a synthetic descriptor so records written on a chain
// the registry no longer knows still render.
func (h *handler) describe(chainId domain.ChainId) *network.Network {
	if n, ok := h.registry.Lookup(chainId); ok {
		return n
	}
	return network.Synthetic(chainId)
}

func (h *handler) getNfts(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := struct {
		Address string `param:"address" validate:"required"`
	}{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	records, err := h.ledger.OwnedBy(ctx, domain.Address(p.Address))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	nfts := make([]*ownedNft, 0, len(records))
	for _, rec := range records {
		n := h.describe(rec.Network)
		nft := &ownedNft{PurchaseRecord: rec, NetworkName: n.Name, NetworkSymbol: n.Symbol}
		if rec.TransactionHash != "" {
			nft.ExplorerUrl = h.registry.ExplorerTxUrl(rec.Network, rec.TransactionHash)
		}
		nfts = append(nfts, nft)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, nfts)
}

func (h *handler) getTransactions(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := struct {
		Address string `param:"address" validate:"required"`
	}{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	records, err := h.ledger.TransactionsOf(ctx, domain.Address(p.Address))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	entries := make([]*transferLogEntry, 0, len(records))
	for _, rec := range records {
		entries = append(entries, &transferLogEntry{
			TransactionRecord: rec,
			NetworkName:       h.describe(rec.Network).Name,
			ExplorerUrl:       h.registry.ExplorerTxUrl(rec.Network, rec.Hash),
		})
	}
	return delivery.MakeJsonResp(c, http.StatusOK, entries)
}
