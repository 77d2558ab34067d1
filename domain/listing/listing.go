package listing

import (
	"github.com/shopspring/decimal"

	"github.com/pixelbay/goapi/base/ctx"
	"github.com/pixelbay/goapi/domain"
)

type Id string

func (i Id) String() string {
	return string(i)
}

// Listing is an item for sale: a minted picture tied to the creator address
// that receives payment. Price is denominated in the native unit of whatever
// network the buyer settles on.
type Listing struct {
	Id      Id              `json:"id"`
	Name    string          `json:"name"`
	Src     string          `json:"src"`
	Price   decimal.Decimal `json:"price"`
	Creator domain.Address  `json:"creator"`
}

// DeriveAvailable is the single recomputation rule for the available pool:
// dedup minted by id (first occurrence wins), then subtract every id in
// purchased. Runs on startup and on every gallery read, which self-heals the
// pool if an eager removal was missed.
func DeriveAvailable(minted []*Listing, purchased map[Id]struct{}) []*Listing {
	seen := map[Id]struct{}{}
	available := []*Listing{}
	for _, l := range minted {
		if _, ok := seen[l.Id]; ok {
			continue
		}
		seen[l.Id] = struct{}{}
		if _, ok := purchased[l.Id]; ok {
			continue
		}
		available = append(available, l)
	}
	return available
}

// Repo persists the minted pool, the shared "mintedPics" document
type Repo interface {
	GetAll(c ctx.Ctx) ([]*Listing, error)
	SaveAll(c ctx.Ctx, listings []*Listing) error
}

type UseCase interface {
	// GetAvailable re-derives the available pool from persisted state and
	// writes the result back.
	GetAvailable(c ctx.Ctx) ([]*Listing, error)
	// Get returns one available listing by id.
	Get(c ctx.Ctx, id Id) (*Listing, error)
	// Add mints a listing, assigning an id when absent.
	Add(c ctx.Ctx, l *Listing) (*Listing, error)
	// RemovePurchased eagerly drops sold ids ahead of the next derivation.
	RemovePurchased(c ctx.Ctx, ids []Id) error
}
