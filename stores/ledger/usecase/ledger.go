package usecase

import (
	"time"

	bCtx "github.com/pixelbay/goapi/base/ctx"
	"github.com/pixelbay/goapi/base/log"
	"github.com/pixelbay/goapi/domain"
	"github.com/pixelbay/goapi/domain/ledger"
	"github.com/pixelbay/goapi/domain/listing"
)

type ledgerUseCase struct {
	repo ledger.Repo
	now  func() time.Time
}

func New(repo ledger.Repo) ledger.UseCase {
	return &ledgerUseCase{repo: repo, now: time.Now}
}

func (u *ledgerUseCase) RecordPurchase(c bCtx.Ctx, address domain.Address, item *listing.Listing, network domain.ChainId, hash domain.TxHash) error {
	key := address.ToLowerStr()
	network = network.ToLower()
	now := u.now().UTC()

	// the transaction log grows on every call; it is intentionally not
	// deduplicated
	transactions, err := u.repo.GetTransactions(c)
	if err != nil {
		return err
	}
	transactions[key] = append(transactions[key], &ledger.TransactionRecord{
		Hash:      hash,
		Network:   network,
		Item:      *item,
		Timestamp: now,
	})
	if err := u.repo.SaveTransactions(c, transactions); err != nil {
		return err
	}

	purchases, err := u.repo.GetPurchases(c)
	if err != nil {
		return err
	}
	for _, rec := range purchases[key] {
		if rec.Id == item.Id && rec.Network.Equals(network) {
			c.WithFields(log.Fields{"item": item.Id, "network": network}).Warn("purchase already recorded")
			return nil
		}
	}
	purchases[key] = append(purchases[key], &ledger.PurchaseRecord{
		Listing:         *item,
		Network:         network,
		PurchaseDate:    now,
		TransactionHash: hash,
	})
	return u.repo.SavePurchases(c, purchases)
}

func (u *ledgerUseCase) OwnedBy(c bCtx.Ctx, address domain.Address) ([]*ledger.PurchaseRecord, error) {
	purchases, err := u.repo.GetPurchases(c)
	if err != nil {
		return nil, err
	}
	records := purchases[address.ToLowerStr()]
	if records == nil {
		records = []*ledger.PurchaseRecord{}
	}
	return records, nil
}

func (u *ledgerUseCase) TransactionsOf(c bCtx.Ctx, address domain.Address) ([]*ledger.TransactionRecord, error) {
	transactions, err := u.repo.GetTransactions(c)
	if err != nil {
		return nil, err
	}
	records := transactions[address.ToLowerStr()]
	if records == nil {
		records = []*ledger.TransactionRecord{}
	}
	return records, nil
}

func (u *ledgerUseCase) AllPurchasedItemIds(c bCtx.Ctx) (map[listing.Id]struct{}, error) {
	purchases, err := u.repo.GetPurchases(c)
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
