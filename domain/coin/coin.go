package coin

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/pixelbay/goapi/base/ctx"
)

// Pair is a quoted market pair, e.g. "ETH/USD"
type Pair string

func (p Pair) String() string {
	return string(p)
}

// DefaultPairs are the pairs shown on the dashboard price board
var DefaultPairs = []Pair{
	"FLR/USD",
	"XRP/USD",
	"BTC/USD",
	"ETH/USD",
	"MATIC/USD",
	"BNB/USD",
	"AVAX/USD",
}

type Quote struct {
	Pair      Pair            `json:"pair"`
	Price     decimal.Decimal `json:"price"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// Source produces a spot price for one pair
type Source interface {
	Quote(c ctx.Ctx, pair Pair) (decimal.Decimal, error)
}

type UseCase interface {
	// GetQuotes quotes every configured pair concurrently.
	GetQuotes(c ctx.Ctx) ([]*Quote, error)
	GetQuote(c ctx.Ctx, pair Pair) (*Quote, error)
}
