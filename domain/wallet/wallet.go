package wallet

import (
	"math/big"

	"github.com/pixelbay/goapi/base/ctx"
	"github.com/pixelbay/goapi/domain"
	"github.com/pixelbay/goapi/domain/network"
)

// TransferRequest is a plain native-currency transfer. GasLimit is fixed at
// 21000 by callers; that only covers value transfers to non-contract
// addresses, a contract recipient will make the transfer fail.
type TransferRequest struct {
	From     domain.Address
	To       domain.Address
	Value    *big.Int
	GasLimit uint64
}

type TransferReceipt struct {
	TxHash      domain.TxHash
	BlockNumber domain.BlockNumber
}

// Provider is the external wallet capability. Implementations map their
// failure modes onto domain errors: ErrUserRejected for a denied request,
// ErrChainUnrecognized when a switch targets a chain the wallet does not
// know, ErrWalletUnavailable when no capability is reachable.
type Provider interface {
	RequestAccounts(c ctx.Ctx) ([]domain.Address, error)
	ChainId(c ctx.Ctx) (domain.ChainId, error)
	SwitchChain(c ctx.Ctx, chainId domain.ChainId) error
	AddChain(c ctx.Ctx, net *network.Network) error
	SendTransfer(c ctx.Ctx, req *TransferRequest) (domain.TxHash, error)
	// WaitMined blocks until the transfer is mined. No timeout is enforced
	// here; cancellation comes from the context only.
	WaitMined(c ctx.Ctx, hash domain.TxHash) (*TransferReceipt, error)
}

// State is the ephemeral session snapshot. Never persisted.
type State struct {
	Connected bool             `json:"connected"`
	Address   *domain.Address  `json:"address,omitempty"`
	Network   *network.Network `json:"network"`
}

// Session tracks the connected wallet and its current chain. External
// accountsChanged/chainChanged notifications are delivered through the
// explicit On* methods rather than ambient listeners.
type Session interface {
	Connect(c ctx.Ctx) (*State, error)
	Disconnect(c ctx.Ctx) *State
	State(c ctx.Ctx) *State
	OnAccountsChanged(c ctx.Ctx, accounts []domain.Address) *State
	OnChainChanged(c ctx.Ctx) *State
	SwitchOrAddNetwork(c ctx.Ctx, chainId domain.ChainId) (*State, error)
}
