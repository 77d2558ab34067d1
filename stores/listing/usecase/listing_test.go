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
	listingRepository "github.com/pixelbay/goapi/stores/listing/repository"
)

func newListingEnv(t *testing.T, maxPrice string) (bCtx.Ctx, listing.Repo, ledger.Repo, listing.UseCase) {
	store := localstore.MustNew(t.TempDir())
	listingRepo := listingRepository.NewListingRepo(store)
	ledgerRepo := ledgerRepository.NewLedgerRepo(store)
	cfg := &ListingUseCaseCfg{ListingRepo: listingRepo, LedgerRepo: ledgerRepo}
	if maxPrice != "" {
		cfg.MaxPrice = decimal.RequireFromString(maxPrice)
	}
	return bCtx.Background(), listingRepo, ledgerRepo, New(cfg)
}

func item(id, price string) *listing.Listing {
	return &listing.Listing{
		Id:      listing.Id(id),
		Name:    id,
		Src:     "ipfs://" + id,
		Price:   decimal.RequireFromString(price),
		Creator: "0xaaa0000000000000000000000000000000000001",
	}
}

func TestGetAvailableDedupsAndSubtracts(t *testing.T) {
	req := require.New(t)
	c, listingRepo, ledgerRepo, uc := newListingEnv(t, "")

	// the minted pool carries a duplicate id with a different price; the
	// first occurrence wins
	dup := item("a", "9")
	req.NoError(listingRepo.SaveAll(c, []*listing.Listing{
		item("a", "1"), item("b", "2"), dup, item("c", "3"),
	}))
	req.NoError(ledgerRepo.SavePurchases(c, map[string][]*ledger.PurchaseRecord{
		"0xbuyer": {{
			Listing:      *item("b", "2"),
			Network:      "0x72",
			PurchaseDate: time.Now().UTC(),
		}},
	}))

	available, err := uc.GetAvailable(c)
	req.NoError(err)
	req.Len(available, 2)
	req.Equal(listing.Id("a"), available[0].Id)
	req.True(available[0].Price.Equal(decimal.NewFromInt(1)))
	req.Equal(listing.Id("c"), available[1].Id)

	// the derived pool was persisted back
	minted, err := listingRepo.GetAll(c)
	req.NoError(err)
	req.Len(minted, 2)
}

func TestGetAvailableFiltersByMaxPrice(t *testing.T) {
	req := require.New(t)
	c, listingRepo, _, uc := newListingEnv(t, "100")

	req.NoError(listingRepo.SaveAll(c, []*listing.Listing{
		item("cheap", "99.99"), item("limit", "100"), item("dear", "100.01"),
	}))

	available, err := uc.GetAvailable(c)
	req.NoError(err)
	req.Len(available, 2)
	req.Equal(listing.Id("cheap"), available[0].Id)
	req.Equal(listing.Id("limit"), available[1].Id)
}

func TestMaxPriceFilterDoesNotDeleteListings(t *testing.T) {
	req := require.New(t)
	c, listingRepo, _, uc := newListingEnv(t, "100")

	req.NoError(listingRepo.SaveAll(c, []*listing.Listing{
		item("cheap", "50"), item("dear", "150"),
	}))

	available, err := uc.GetAvailable(c)
	req.NoError(err)
	req.Len(available, 1)
	req.Equal(listing.Id("cheap"), available[0].Id)

	// the over-priced listing is hidden from the view but never destroyed
	minted, err := listingRepo.GetAll(c)
	req.NoError(err)
	req.Len(minted, 2)
	req.Equal(listing.Id("dear"), minted[1].Id)

	// and repeated reads keep it intact
	available, err = uc.GetAvailable(c)
	req.NoError(err)
	req.Len(available, 1)
	minted, err = listingRepo.GetAll(c)
	req.NoError(err)
	req.Len(minted, 2)
}

func TestGetAvailableEmptyStore(t *testing.T) {
	req := require.New(t)
	c, _, _, uc := newListingEnv(t, "")

	available, err := uc.GetAvailable(c)
	req.NoError(err)
	req.NotNil(available)
	req.Empty(available)
}

func TestAddAssignsId(t *testing.T) {
	req := require.New(t)
	c, _, _, uc := newListingEnv(t, "")

	l, err := uc.Add(c, &listing.Listing{
		Name:    "sunset",
		Src:     "ipfs://sunset",
		Price:   decimal.RequireFromString("2.5"),
		Creator: "0xaaa0000000000000000000000000000000000001",
	})
	req.NoError(err)
	req.NotEmpty(l.Id)

	got, err := uc.Get(c, l.Id)
	req.NoError(err)
	req.Equal("sunset", got.Name)
}

func TestAddRejectsNegativePrice(t *testing.T) {
	req := require.New(t)
	c, _, _, uc := newListingEnv(t, "")

	_, err := uc.Add(c, &listing.Listing{Name: "bad", Price: decimal.RequireFromString("-1")})
	req.ErrorIs(err, domain.ErrInvalidPrice)
}

func TestGetUnknownId(t *testing.T) {
	req := require.New(t)
	c, _, _, uc := newListingEnv(t, "")

	_, err := uc.Get(c, "missing")
	req.ErrorIs(err, domain.ErrNotFound)
}

func TestRemovePurchased(t *testing.T) {
	req := require.New(t)
	c, listingRepo, _, uc := newListingEnv(t, "")

	req.NoError(listingRepo.SaveAll(c, []*listing.Listing{
		item("a", "1"), item("b", "2"), item("c", "3"),
	}))
	req.NoError(uc.RemovePurchased(c, []listing.Id{"b"}))

	available, err := uc.GetAvailable(c)
	req.NoError(err)
	req.Len(available, 2)
	req.Equal(listing.Id("a"), available[0].Id)
	req.Equal(listing.Id("c"), available[1].Id)
}

func TestDeriveHealsMissedRemoval(t *testing.T) {
	req := require.New(t)
	c, listingRepo, ledgerRepo, uc := newListingEnv(t, "")

	// the sold item is still in the minted pool, as if the eager removal
	// after checkout had been lost
	req.NoError(listingRepo.SaveAll(c, []*listing.Listing{item("a", "1"), item("b", "2")}))
	req.NoError(ledgerRepo.SavePurchases(c, map[string][]*ledger.PurchaseRecord{
		"0xbuyer": {{Listing: *item("a", "1"), Network: "0x1"}},
	}))

	available, err := uc.GetAvailable(c)
	req.NoError(err)
	req.Len(available, 1)
	req.Equal(listing.Id("b"), available[0].Id)
}
