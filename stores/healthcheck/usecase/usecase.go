package usecase

import (
	"github.com/x-xyz/staking/base/ctx"
	hcdomain "github.com/x-xyz/staking/domain/healthcheck"
)

type impl struct {
	repo hcdomain.HealthCheckRepo
}

// New creates new healthCheckUsecase object representation of HealthCheckUsecase interface
func New(repo hcdomain.HealthCheckRepo) hcdomain.HealthCheckUsecase {
	return &impl{
		repo: repo,
	}
}

// Check pings every store. The error is the first failure, the report still covers all of them.
func (im *impl) Check(context ctx.Ctx) (hcdomain.Report, error) {
	var firstErr error
	status := func(err error) string {
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			return hcdomain.StatusDown
		}
		return hcdomain.StatusOK
	}

	report := hcdomain.Report{
		Mongo: status(im.repo.PingMongo(context)),
		Redis: status(im.repo.PingRedis(context)),
	}
	return report, firstErr
}
