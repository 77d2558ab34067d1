package repository

import (
	"time"

	"github.com/pixelbay/goapi/base/ctx"
	hcdomain "github.com/pixelbay/goapi/domain/healthcheck"
	"github.com/pixelbay/goapi/service/localstore"
)

const probeDoc = "healthcheck"

type impl struct {
	store localstore.Store
}

// New creates new healthCheckRepo object representation of HealthCheckRepo interface
func New(store localstore.Store) hcdomain.HealthCheckRepo {
	return &impl{
		store: store,
	}
}

func (im *impl) PingStore(context ctx.Ctx) error {
	ctx, cancel := ctx.WithTimeout(context, 2*time.Second)
	defer cancel()
	// write-read roundtrip proves the backing directory is usable
	if err := im.store.Put(ctx, probeDoc, map[string]int64{"at": time.Now().Unix()}); err != nil {
		context.WithField("err", err).Error("test store put failed")
		return err
	}
	probe := map[string]int64{}
	if err := im.store.Get(ctx, probeDoc, &probe); err != nil {
		context.WithField("err", err).Error("test store get failed")
		return err
	}
	return nil
}
