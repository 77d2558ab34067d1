package usecase

import (
	"github.com/ethereum/go-ethereum/params"
	"golang.org/x/xerrors"

	bCtx "github.com/pixelbay/goapi/base/ctx"
	"github.com/pixelbay/goapi/base/log"
	"github.com/pixelbay/goapi/base/metrics"
	"github.com/pixelbay/goapi/domain"
	"github.com/pixelbay/goapi/domain/ledger"
	"github.com/pixelbay/goapi/domain/listing"
	"github.com/pixelbay/goapi/domain/payment"
	"github.com/pixelbay/goapi/domain/wallet"
)

type CheckoutUseCaseCfg struct {
	Session   wallet.Session
	Provider  wallet.Provider
	ListingUC listing.UseCase
	LedgerUC  ledger.UseCase
}

type checkoutUseCase struct {
	session   wallet.Session
	provider  wallet.Provider
	listingUC listing.UseCase
	ledgerUC  ledger.UseCase
	met       metrics.Service
}

func New(cfg *CheckoutUseCaseCfg) payment.UseCase {
	return &checkoutUseCase{
		session:   cfg.Session,
		provider:  cfg.Provider,
		listingUC: cfg.ListingUC,
		ledgerUC:  cfg.LedgerUC,
		met:       metrics.New("checkout"),
	}
}

// Checkout pays each cart item in order with one awaited transfer per item.
// The first hard failure aborts the remaining items; confirmed transfers are
// never rolled back. Only confirmed items are removed from the available
// pool.
func (u *checkoutUseCase) Checkout(c bCtx.Ctx, ids []listing.Id) (*payment.Result, error) {
	defer u.met.BumpTime("checkout.time").End()

	state := u.session.State(c)
	if !state.Connected {
		return nil, domain.ErrNotConnected
	}
	buyer := *state.Address

	chainId, err := u.provider.ChainId(c)
	if err != nil {
		c.WithField("err", err).Warn("unable to detect current network")
		return nil, xerrors.Errorf("detect network: %w", domain.ErrNetworkUnavailable)
	}
	chainId = chainId.ToLower()

	available, err := u.listingUC.GetAvailable(c)
	if err != nil {
		return nil, err
	}
	pool := map[listing.Id]*listing.Listing{}
	for _, l := range available {
		pool[l.Id] = l
	}

	// collapse duplicate ids to their first occurrence, the same rule the
	// pool derivation uses; a repeated id must never pay the creator twice
	seen := map[listing.Id]struct{}{}
	deduped := make([]listing.Id, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		deduped = append(deduped, id)
	}

	result := &payment.Result{Network: chainId, Success: true}
	confirmed := []listing.Id{}

	for _, id := range deduped {
		item := pool[id]
		if item == nil {
			result.Items = append(result.Items, &payment.ItemResult{
				Id:    id,
				State: payment.ItemStateFailed,
				Error: domain.ErrNotFound.Error(),
			})
			result.Success = false
			break
		}

		res := u.payItem(c, buyer, chainId, item)
		result.Items = append(result.Items, res)

		if res.State == payment.ItemStateConfirmed {
			confirmed = append(confirmed, item.Id)
			continue
		}
		if res.State == payment.ItemStateFailed {
			// abort the rest of the cart, confirmed items stay confirmed
			result.Success = false
			break
		}
	}

	if err := u.listingUC.RemovePurchased(c, confirmed); err != nil {
		// the next gallery derivation re-subtracts sold ids, so losing the
		// eager removal is recoverable
		c.WithField("err", err).Warn("eager removal of sold listings failed")
	}

	c.WithFields(log.Fields{
		"buyer":     buyer,
		"network":   chainId,
		"requested": len(ids),
		"confirmed": len(confirmed),
		"success":   result.Success,
	}).Info("checkout finished")
	return result, nil
}

func (u *checkoutUseCase) payItem(c bCtx.Ctx, buyer domain.Address, chainId domain.ChainId, item *listing.Listing) *payment.ItemResult {
	res := &payment.ItemResult{Id: item.Id, Name: item.Name, State: payment.ItemStatePending}

	if item.Creator.IsEmpty() {
		c.WithField("item", item.Id).Warn("creator address missing, skipping item")
		res.State = payment.ItemStateSkipped
		res.Error = domain.ErrInvalidCartItem.Error()
		return res
	}

	if item.Price.IsNegative() {
		u.met.BumpSum("transfer.err", 1)
		res.State = payment.ItemStateFailed
		res.Error = domain.ErrInvalidPrice.Error()
		return res
	}
	// native unit -> base units, 18 decimals
	valueInWei := item.Price.Shift(18).BigInt()

	hash, err := u.provider.SendTransfer(c, &wallet.TransferRequest{
		From:     buyer,
		To:       item.Creator,
		Value:    valueInWei,
		GasLimit: params.TxGas,
	})
	if err != nil {
		u.met.BumpSum("transfer.err", 1)
		c.WithFields(log.Fields{"err": err, "item": item.Id}).Error("transfer submission failed")
		res.State = payment.ItemStateFailed
		res.Error = err.Error()
		return res
	}
	res.State = payment.ItemStateSubmitted
	res.TxHash = hash

	receipt, err := u.provider.WaitMined(c, hash)
	if err != nil {
		u.met.BumpSum("transfer.err", 1)
		c.WithFields(log.Fields{"err": err, "item": item.Id, "hash": hash}).Error("transfer confirmation failed")
		res.State = payment.ItemStateFailed
		res.Error = err.Error()
		return res
	}
	res.BlockNumber = receipt.BlockNumber

	if err := u.ledgerUC.RecordPurchase(c, buyer, item, chainId, hash); err != nil {
		u.met.BumpSum("ledger.err", 1)
		c.WithFields(log.Fields{"err": err, "item": item.Id}).Error("ledger write failed after confirmed transfer")
		res.State = payment.ItemStateFailed
		res.Error = err.Error()
		return res
	}

	res.State = payment.ItemStateConfirmed
	return res
}
