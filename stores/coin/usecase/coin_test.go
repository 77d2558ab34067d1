package usecase

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	bCtx "github.com/pixelbay/goapi/base/ctx"
	"github.com/pixelbay/goapi/domain"
	"github.com/pixelbay/goapi/domain/coin"
	"github.com/pixelbay/goapi/service/cache"
	"github.com/pixelbay/goapi/service/cache/provider/primitive"
)

type countingSource struct {
	calls map[coin.Pair]int
}

func (s *countingSource) Quote(c bCtx.Ctx, pair coin.Pair) (decimal.Decimal, error) {
	s.calls[pair]++
	return decimal.NewFromInt(int64(len(pair))), nil
}

func newCoinEnv(pairs []coin.Pair) (bCtx.Ctx, *countingSource, coin.UseCase) {
	source := &countingSource{calls: map[coin.Pair]int{}}
	uc := New(&CoinUseCaseCfg{
		Source: source,
		Cache: cache.New(cache.ServiceConfig{
			Ttl:   30 * time.Second,
			Pfx:   "coin",
			Cache: primitive.NewPrimitive("coin", 1),
		}),
		Pairs: pairs,
	})
	return bCtx.Background(), source, uc
}

func TestGetQuotesKeepsConfiguredOrder(t *testing.T) {
	req := require.New(t)
	c, _, uc := newCoinEnv(nil)

	quotes, err := uc.GetQuotes(c)
	req.NoError(err)
	req.Len(quotes, len(coin.DefaultPairs))
	for i, q := range quotes {
		req.Equal(coin.DefaultPairs[i], q.Pair)
		req.True(q.Price.IsPositive())
	}
}

func TestGetQuoteCaches(t *testing.T) {
	req := require.New(t)
	c, source, uc := newCoinEnv([]coin.Pair{"ETH/USD"})

	first, err := uc.GetQuote(c, "ETH/USD")
	req.NoError(err)
	second, err := uc.GetQuote(c, "ETH/USD")
	req.NoError(err)
	req.Equal(1, source.calls["ETH/USD"])
	req.True(first.Price.Equal(second.Price))
	req.Equal(first.UpdatedAt, second.UpdatedAt)
}

func TestGetQuoteUnknownPair(t *testing.T) {
	req := require.New(t)
	c, _, uc := newCoinEnv([]coin.Pair{"ETH/USD"})

	_, err := uc.GetQuote(c, "DOGE/USD")
	req.ErrorIs(err, domain.ErrNotFound)
}
