package repository

import (
	"time"

	"github.com/x-xyz/staking/base/ctx"
	hcdomain "github.com/x-xyz/staking/domain/healthcheck"
	"github.com/x-xyz/staking/domain/keys"
	"github.com/x-xyz/staking/service/query"
	"github.com/x-xyz/staking/service/redis"
)

const pingTimeout = 2 * time.Second

type impl struct {
	mongo      query.Mongo
	redisCache redis.Service
}

// New creates new healthCheckRepo object representation of HealthCheckRepo interface
func New(
	mongo query.Mongo,
	redisCache redis.Service,
) hcdomain.HealthCheckRepo {
	return &impl{
		mongo:      mongo,
		redisCache: redisCache,
	}
}

func (im *impl) PingMongo(context ctx.Ctx) error {
	ctx, cancel := ctx.WithTimeout(context, pingTimeout)
	defer cancel()
	if err := im.mongo.Ping(ctx); err != nil {
		context.WithField("err", err).Error("ping mongo error")
		return err
	}
	return nil
}

// PingRedis writes a short lived key so a read only replica counts as down
func (im *impl) PingRedis(context ctx.Ctx) error {
	ctx, cancel := ctx.WithTimeout(context, pingTimeout)
	defer cancel()
	if err := im.redisCache.Set(ctx, keys.RedisKey(keys.PfxHealthCheck, "testset"), []byte("1"), 30*time.Second); err != nil {
		context.WithField("err", err).Error("test redis set failed")
		return err
	}
	return nil
}
