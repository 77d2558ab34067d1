package healthcheck

import (
	"github.com/pixelbay/goapi/base/ctx"
)

// HealthCheckUsecase represents the healthCheck's usecases
type HealthCheckUsecase interface {
	Check(context ctx.Ctx) error
}

// HealthCheckRepo is repository layer of healthCheck
type HealthCheckRepo interface {
	PingStore(context ctx.Ctx) error
}
