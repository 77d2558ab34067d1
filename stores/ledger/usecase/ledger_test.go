package usecase

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	bCtx "github.com/pixelbay/goapi/base/ctx"
	"github.com/pixelbay/goapi/domain"
	"github.com/pixelbay/goapi/domain/ledger"
	"github.com/pixelbay/goapi/domain/listing"
	"github.com/pixelbay/goapi/service/localstore"
	ledgerRepository "github.com/pixelbay/goapi/stores/ledger/repository"
)

func newLedgerEnv(t *testing.T) (bCtx.Ctx, ledger.UseCase) {
	repo := ledgerRepository.NewLedgerRepo(localstore.MustNew(t.TempDir()))
	uc := New(repo).(*ledgerUseCase)
	at := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return at }
	return bCtx.Background(), uc
}

func sample() *listing.Listing {
	return &listing.Listing{
		Id:      "pic-1",
		Name:    "sunset",
		Src:     "ipfs://sunset",
		Price:   decimal.RequireFromString("2.5"),
		Creator: "0xaaa0000000000000000000000000000000000001",
	}
}

func TestRecordPurchaseIdempotentPerNetwork(t *testing.T) {
	req := require.New(t)
	c, uc := newLedgerEnv(t)
	buyer := domain.Address("0xCE4468e7ce84aceb74363f4ea64e5a038176f369")

	req.NoError(uc.RecordPurchase(c, buyer, sample(), "0x72", "0xh1"))
	// same item, same network, different hash case
	req.NoError(uc.RecordPurchase(c, buyer, sample(), "0X72", "0xh2"))
	// same item on another network is a distinct purchase
	req.NoError(uc.RecordPurchase(c, buyer, sample(), "0x89", "0xh3"))

	owned, err := uc.OwnedBy(c, buyer)
	req.NoError(err)
	req.Len(owned, 2)
	req.Equal(domain.ChainId("0x72"), owned[0].Network)
	req.Equal(domain.TxHash("0xh1"), owned[0].TransactionHash)
	req.Equal(domain.ChainId("0x89"), owned[1].Network)

	// the transaction log grows every time regardless
	transactions, err := uc.TransactionsOf(c, buyer)
	req.NoError(err)
	req.Len(transactions, 3)
	req.Equal(domain.TxHash("0xh2"), transactions[1].Hash)
}

func TestRecordsKeyedByLowercasedAddress(t *testing.T) {
	req := require.New(t)
	c, uc := newLedgerEnv(t)

	req.NoError(uc.RecordPurchase(c, "0xABC0000000000000000000000000000000000001", sample(), "0x1", "0xh1"))

	owned, err := uc.OwnedBy(c, "0xabc0000000000000000000000000000000000001")
	req.NoError(err)
	req.Len(owned, 1)
	req.Equal(listing.Id("pic-1"), owned[0].Id)
}

func TestEmptyWalletReadsAreEmptyNotNil(t *testing.T) {
	req := require.New(t)
	c, uc := newLedgerEnv(t)

	owned, err := uc.OwnedBy(c, "0xabc0000000000000000000000000000000000001")
	req.NoError(err)
	req.NotNil(owned)
	req.Empty(owned)

	transactions, err := uc.TransactionsOf(c, "0xabc0000000000000000000000000000000000001")
	req.NoError(err)
	req.NotNil(transactions)
	req.Empty(transactions)
}

func TestAllPurchasedItemIdsUnionsWallets(t *testing.T) {
	req := require.New(t)
	c, uc := newLedgerEnv(t)

	other := sample()
	other.Id = "pic-2"
	req.NoError(uc.RecordPurchase(c, "0xaaa0000000000000000000000000000000000001", sample(), "0x1", "0xh1"))
	req.NoError(uc.RecordPurchase(c, "0xbbb0000000000000000000000000000000000002", other, "0x89", "0xh2"))

	ids, err := uc.AllPurchasedItemIds(c)
	req.NoError(err)
	req.Len(ids, 2)
	req.Contains(ids, listing.Id("pic-1"))
	req.Contains(ids, listing.Id("pic-2"))
}

func TestPurchaseSnapshotsListing(t *testing.T) {
	req := require.New(t)
	c, uc := newLedgerEnv(t)
	buyer := domain.Address("0xaaa0000000000000000000000000000000000001")

	req.NoError(uc.RecordPurchase(c, buyer, sample(), "0x72", "0xh1"))

	owned, err := uc.OwnedBy(c, buyer)
	req.NoError(err)
	req.Len(owned, 1)
	req.Equal("sunset", owned[0].Name)
	req.True(owned[0].Price.Equal(decimal.RequireFromString("2.5")))
	req.Equal(time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC), owned[0].PurchaseDate)
}
