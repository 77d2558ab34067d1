package ledger

import (
	"time"

	"github.com/pixelbay/goapi/base/ctx"
	"github.com/pixelbay/goapi/domain"
	"github.com/pixelbay/goapi/domain/listing"
)

// PurchaseRecord snapshots a listing at the moment it was bought. Immutable
// once created. Keyed by the lowercased buyer address in the purchasedNFTs
// document.
type PurchaseRecord struct {
	listing.Listing `json:",inline"`
	Network         domain.ChainId `json:"network"`
	PurchaseDate    time.Time      `json:"purchaseDate"`
	TransactionHash domain.TxHash  `json:"transactionHash"`
}

// TransactionRecord is the append-only per-wallet transfer log. It duplicates
// the item snapshot on purpose; there is no foreign key between the two
// documents and the log is never deduplicated.
type TransactionRecord struct {
	Hash      domain.TxHash   `json:"hash"`
	Network   domain.ChainId  `json:"network"`
	Item      listing.Listing `json:"item"`
	Timestamp time.Time       `json:"timestamp"`
}

// Repo persists the purchasedNFTs and transactions documents, each a mapping
// from lowercase wallet address to an ordered sequence of records.
type Repo interface {
	GetPurchases(c ctx.Ctx) (map[string][]*PurchaseRecord, error)
	SavePurchases(c ctx.Ctx, purchases map[string][]*PurchaseRecord) error
	GetTransactions(c ctx.Ctx) (map[string][]*TransactionRecord, error)
	SaveTransactions(c ctx.Ctx, transactions map[string][]*TransactionRecord) error
}

type UseCase interface {
	// RecordPurchase appends a PurchaseRecord unless one with the same
	// (itemId, network) already exists for the wallet, and unconditionally
	// appends a TransactionRecord.
	RecordPurchase(c ctx.Ctx, address domain.Address, item *listing.Listing, network domain.ChainId, hash domain.TxHash) error
	OwnedBy(c ctx.Ctx, address domain.Address) ([]*PurchaseRecord, error)
	TransactionsOf(c ctx.Ctx, address domain.Address) ([]*TransactionRecord, error)
	// AllPurchasedItemIds unions owned ids across every wallet; the listing
	// store subtracts these from the minted pool.
	AllPurchasedItemIds(c ctx.Ctx) (map[listing.Id]struct{}, error)
}
