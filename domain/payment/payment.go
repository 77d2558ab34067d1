package payment

import (
	"github.com/pixelbay/goapi/base/ctx"
	"github.com/pixelbay/goapi/domain"
	"github.com/pixelbay/goapi/domain/listing"
)

// ItemState is the per cart item state machine:
//
//	Pending -> Submitted -> Confirmed | Failed
//
// Skipped is the terminal no-op state for items with no creator address.
// Confirmed, Failed and Skipped are terminal. A Failed item aborts the rest
// of the cart; items still Pending at that point are left untouched.
type ItemState string

const (
	ItemStatePending   ItemState = "pending"
	ItemStateSubmitted ItemState = "submitted"
	ItemStateConfirmed ItemState = "confirmed"
	ItemStateFailed    ItemState = "failed"
	ItemStateSkipped   ItemState = "skipped"
)

type ItemResult struct {
	Id          listing.Id         `json:"id"`
	Name        string             `json:"name"`
	State       ItemState          `json:"state"`
	TxHash      domain.TxHash      `json:"txHash,omitempty"`
	BlockNumber domain.BlockNumber `json:"blockNumber,omitempty"`
	Error       string             `json:"error,omitempty"`
}

// Result reports a whole checkout. Success means every item reached Confirmed
// or Skipped. Confirmed items stay confirmed even when Success is false;
// nothing on chain can be rolled back.
type Result struct {
	Network domain.ChainId `json:"network"`
	Items   []*ItemResult  `json:"items"`
	Success bool           `json:"success"`
}

type UseCase interface {
	// Checkout pays the creators of the given listings in cart order, one
	// sequential transfer per item. Parallel submission would nonce-race the
	// wallet against itself, so sequencing is a correctness requirement.
	Checkout(c ctx.Ctx, ids []listing.Id) (*Result, error)
}
