package repository

import (
	"errors"

	bCtx "github.com/pixelbay/goapi/base/ctx"
	"github.com/pixelbay/goapi/domain/listing"
	"github.com/pixelbay/goapi/service/localstore"
)

const docMintedPics = "mintedPics"

type listingRepo struct {
	store localstore.Store
}

func NewListingRepo(store localstore.Store) listing.Repo {
	return &listingRepo{store: store}
}

func (r *listingRepo) GetAll(c bCtx.Ctx) ([]*listing.Listing, error) {
	listings := []*listing.Listing{}
	if err := r.store.Get(c, docMintedPics, &listings); err != nil {
		if errors.Is(err, localstore.ErrNotFound) {
			return []*listing.Listing{}, nil
		}
		c.WithField("err", err).Error("store.Get failed")
		return nil, err
	}
	return listings, nil
}

func (r *listingRepo) SaveAll(c bCtx.Ctx, listings []*listing.Listing) error {
	if err := r.store.Put(c, docMintedPics, listings); err != nil {
		c.WithField("err", err).Error("store.Put failed")
		return err
	}
	return nil
}
