package healthcheck

import (
	"github.com/x-xyz/staking/base/ctx"
)

const (
	StatusOK   = "ok"
	StatusDown = "down"
)

// Report lists the state of every backing store
type Report struct {
	Mongo string `json:"mongo"`
	Redis string `json:"redis"`
}

func (r Report) Healthy() bool {
	return r.Mongo == StatusOK && r.Redis == StatusOK
}

// HealthCheckUsecase represents the healthCheck's usecases
type HealthCheckUsecase interface {
	Check(context ctx.Ctx) (Report, error)
}

// HealthCheckRepo is repository layer of healthCheck
type HealthCheckRepo interface {
	PingMongo(context ctx.Ctx) error
	PingRedis(context ctx.Ctx) error
}
