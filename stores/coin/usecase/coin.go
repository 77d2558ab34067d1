package usecase

import (
	"time"

	"github.com/viney-shih/goroutines"

	bCtx "github.com/pixelbay/goapi/base/ctx"
	"github.com/pixelbay/goapi/domain"
	"github.com/pixelbay/goapi/domain/coin"
	"github.com/pixelbay/goapi/service/cache"
)

type CoinUseCaseCfg struct {
	Source coin.Source
	Cache  cache.Service
	// Pairs defaults to coin.DefaultPairs when empty
	Pairs []coin.Pair
}

type coinUseCase struct {
	source coin.Source
	cache  cache.Service
	pairs  []coin.Pair
	now    func() time.Time
}

func New(cfg *CoinUseCaseCfg) coin.UseCase {
	pairs := cfg.Pairs
	if len(pairs) == 0 {
		pairs = coin.DefaultPairs
	}
	return &coinUseCase{
		source: cfg.Source,
		cache:  cfg.Cache,
		pairs:  pairs,
		now:    time.Now,
	}
}

func (u *coinUseCase) supported(pair coin.Pair) bool {
	for _, p := range u.pairs {
		if p == pair {
			return true
		}
	}
	return false
}

func (u *coinUseCase) GetQuote(c bCtx.Ctx, pair coin.Pair) (*coin.Quote, error) {
	if !u.supported(pair) {
		return nil, domain.ErrNotFound
	}

	quote := &coin.Quote{}
	err := u.cache.GetByFunc(c, pair.String(), quote, func() (interface{}, error) {
		price, err := u.source.Quote(c, pair)
		if err != nil {
			c.WithField("err", err).WithField("pair", pair).Error("source.Quote failed")
			return nil, err
		}
		return &coin.Quote{Pair: pair, Price: price, UpdatedAt: u.now().UTC()}, nil
	})
	if err != nil {
		return nil, err
	}
	return quote, nil
}

func (u *coinUseCase) GetQuotes(c bCtx.Ctx) ([]*coin.Quote, error) {
	b := goroutines.NewBatch(4, goroutines.WithBatchSize(len(u.pairs)))
	defer b.Close()
	for i := 0; i < len(u.pairs); i++ {
		idx := i
		b.Queue(func() (interface{}, error) {
			return u.GetQuote(c, u.pairs[idx])
		})
	}
	b.QueueComplete()

	byPair := map[coin.Pair]*coin.Quote{}
	for ret := range b.Results() {
		if ret.Error() != nil {
			c.WithField("err", ret.Error()).Error("quote batch error result")
			return nil, ret.Error()
		}
		q := ret.Value().(*coin.Quote)
		byPair[q.Pair] = q
	}

	quotes := make([]*coin.Quote, 0, len(u.pairs))
	for _, pair := range u.pairs {
		if q, ok := byPair[pair]; ok {
			quotes = append(quotes, q)
		}
	}
	return quotes, nil
}
