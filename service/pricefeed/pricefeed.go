package pricefeed

import (
	"math/rand"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	bCtx "github.com/pixelbay/goapi/base/ctx"
	"github.com/pixelbay/goapi/domain/coin"
)

type randomSource struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewRandom quotes every pair with a uniform price in (1, 101], rounded to
// two decimals. It stands in for a real oracle until one is wired up; quote
// consumers treat prices as display-only either way.
func NewRandom() coin.Source {
	return &randomSource{rnd: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (s *randomSource) Quote(c bCtx.Ctx, pair coin.Pair) (decimal.Decimal, error) {
	s.mu.Lock()
	v := s.rnd.Float64()*100 + 1
	s.mu.Unlock()
	return decimal.NewFromFloat(v).Round(2), nil
}
