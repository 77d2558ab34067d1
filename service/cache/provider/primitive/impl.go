package primitive

import (
	"time"

	"github.com/coocood/freecache"

	"github.com/pixelbay/goapi/base/ctx"
	"github.com/pixelbay/goapi/service/cache/provider"
)

type impl struct {
	name  string
	cache freecache.Cache
}

// NewPrimitive creates an in-process cache of the given size in MiB
func NewPrimitive(name string, size int) provider.Provider {
	return &impl{name, *freecache.NewCache(size * 1024 * 1024)}
}

func (im *impl) Get(c ctx.Ctx, key string) ([]byte, time.Duration, error) {
	val, ttl, err := im.cache.GetWithExpiration([]byte(key))
	if err != nil {
		if err == freecache.ErrNotFound {
			return nil, time.Duration(0), provider.ErrNotFound
		}
		c.WithField("err", err).WithField("key", key).Error("cache.Get failed")
		return nil, time.Duration(0), err
	}
	return val, time.Duration(ttl) * time.Second, nil
}

func (im *impl) Set(c ctx.Ctx, key string, value []byte, ttl time.Duration) error {
	if err := im.cache.Set([]byte(key), value, int(ttl.Seconds())); err != nil {
		c.WithField("err", err).WithField("key", key).Error("cache.Set failed")
		return err
	}
	return nil
}

func (im *impl) Del(c ctx.Ctx, key string) error {
	im.cache.Del([]byte(key))
	return nil
}
