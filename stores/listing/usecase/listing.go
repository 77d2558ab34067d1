package usecase

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	bCtx "github.com/pixelbay/goapi/base/ctx"
	"github.com/pixelbay/goapi/domain"
	"github.com/pixelbay/goapi/domain/ledger"
	"github.com/pixelbay/goapi/domain/listing"
)

type ListingUseCaseCfg struct {
	ListingRepo listing.Repo
	LedgerRepo  ledger.Repo
	// MaxPrice filters out listings above this native-unit price when
	// deriving the available pool. Zero disables the filter.
	MaxPrice decimal.Decimal
}

type listingUseCase struct {
	repo       listing.Repo
	ledgerRepo ledger.Repo
	maxPrice   decimal.Decimal
}

func New(cfg *ListingUseCaseCfg) listing.UseCase {
	return &listingUseCase{
		repo:       cfg.ListingRepo,
		ledgerRepo: cfg.LedgerRepo,
		maxPrice:   cfg.MaxPrice,
	}
}

// purchasedIds unions owned item ids across every wallet. Sold items are
// excluded from the pool globally, no matter who bought them.
func (u *listingUseCase) purchasedIds(c bCtx.Ctx) (map[listing.Id]struct{}, error) {
	purchases, err := u.ledgerRepo.GetPurchases(c)
	if err != nil {
		return nil, err
	}
	ids := map[listing.Id]struct{}{}
	for _, records := range purchases {
		for _, rec := range records {
			ids[rec.Id] = struct{}{}
		}
	}
	return ids, nil
}

func (u *listingUseCase) GetAvailable(c bCtx.Ctx) ([]*listing.Listing, error) {
	minted, err := u.repo.GetAll(c)
	if err != nil {
		return nil, err
	}
	purchased, err := u.purchasedIds(c)
	if err != nil {
		return nil, err
	}

	available := listing.DeriveAvailable(minted, purchased)

	// persist the derived pool so a missed removal elsewhere heals here
	if err := u.repo.SaveAll(c, available); err != nil {
		return nil, err
	}

	// the price filter shapes the returned view only; over-priced listings
	// stay in the pool until actually sold
	if u.maxPrice.IsPositive() {
		filtered := []*listing.Listing{}
		for _, l := range available {
			if l.Price.LessThanOrEqual(u.maxPrice) {
				filtered = append(filtered, l)
			}
		}
		available = filtered
	}
	return available, nil
}

func (u *listingUseCase) Get(c bCtx.Ctx, id listing.Id) (*listing.Listing, error) {
	available, err := u.GetAvailable(c)
	if err != nil {
		return nil, err
	}
	for _, l := range available {
		if l.Id == id {
			return l, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (u *listingUseCase) Add(c bCtx.Ctx, l *listing.Listing) (*listing.Listing, error) {
	if l.Price.IsNegative() {
		return nil, domain.ErrInvalidPrice
	}
	if l.Id == "" {
		l.Id = listing.Id(uuid.NewString())
	}

	minted, err := u.repo.GetAll(c)
	if err != nil {
		return nil, err
	}
	minted = append(minted, l)
	if err := u.repo.SaveAll(c, minted); err != nil {
		return nil, err
	}
	c.WithField("id", l.Id).Info("listing minted")
	return l, nil
}

func (u *listingUseCase) RemovePurchased(c bCtx.Ctx, ids []listing.Id) error {
	if len(ids) == 0 {
		return nil
	}
	sold := map[listing.Id]struct{}{}
	for _, id := range ids {
		sold[id] = struct{}{}
	}

	minted, err := u.repo.GetAll(c)
	if err != nil {
		return err
	}
	kept := []*listing.Listing{}
	for _, l := range minted {
		if _, ok := sold[l.Id]; !ok {
			kept = append(kept, l)
		}
	}
	return u.repo.SaveAll(c, kept)
}
