package repository

import (
	"errors"

	bCtx "github.com/pixelbay/goapi/base/ctx"
	"github.com/pixelbay/goapi/domain/ledger"
	"github.com/pixelbay/goapi/service/localstore"
)

const (
	docPurchasedNFTs = "purchasedNFTs"
	docTransactions  = "transactions"
)

type ledgerRepo struct {
	store localstore.Store
}

func NewLedgerRepo(store localstore.Store) ledger.Repo {
	return &ledgerRepo{store: store}
}

func (r *ledgerRepo) GetPurchases(c bCtx.Ctx) (map[string][]*ledger.PurchaseRecord, error) {
	purchases := map[string][]*ledger.PurchaseRecord{}
	if err := r.store.Get(c, docPurchasedNFTs, &purchases); err != nil {
		if errors.Is(err, localstore.ErrNotFound) {
			return map[string][]*ledger.PurchaseRecord{}, nil
		}
		c.WithField("err", err).Error("store.Get failed")
		return nil, err
	}
	return purchases, nil
}

func (r *ledgerRepo) SavePurchases(c bCtx.Ctx, purchases map[string][]*ledger.PurchaseRecord) error {
	if err := r.store.Put(c, docPurchasedNFTs, purchases); err != nil {
		c.WithField("err", err).Error("store.Put failed")
		return err
	}
	return nil
}

func (r *ledgerRepo) GetTransactions(c bCtx.Ctx) (map[string][]*ledger.TransactionRecord, error) {
	transactions := map[string][]*ledger.TransactionRecord{}
	if err := r.store.Get(c, docTransactions, &transactions); err != nil {
		if errors.Is(err, localstore.ErrNotFound) {
			return map[string][]*ledger.TransactionRecord{}, nil
		}
		c.WithField("err", err).Error("store.Get failed")
		return nil, err
	}
	return transactions, nil
}

func (r *ledgerRepo) SaveTransactions(c bCtx.Ctx, transactions map[string][]*ledger.TransactionRecord) error {
	if err := r.store.Put(c, docTransactions, transactions); err != nil {
		c.WithField("err", err).Error("store.Put failed")
		return err
	}
	return nil
}
