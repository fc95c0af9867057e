package mutex

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/x-xyz/staking/base/backoff"
	"github.com/x-xyz/staking/base/ctx"
	"github.com/x-xyz/staking/base/log"
	"github.com/x-xyz/staking/base/metrics"
	"github.com/x-xyz/staking/domain/keys"
	"github.com/x-xyz/staking/service/redis"
)

const (
	defaultTtl          = 10 * time.Second
	defaultWait         = 5 * time.Second
	defaultBackoffStart = 10 * time.Millisecond
	defaultBackoffLimit = 200 * time.Millisecond
)

type impl struct {
	redis        redis.Service
	ttl          time.Duration
	wait         time.Duration
	backoffStart time.Duration
	backoffLimit time.Duration
	met          metrics.Service
}

func New(cfg Config) Service {
	if cfg.Redis == nil {
		panic("Redis can not be nil")
	}
	if cfg.Ttl == 0 {
		cfg.Ttl = defaultTtl
	}
	if cfg.Wait == 0 {
		cfg.Wait = defaultWait
	}
	if cfg.BackoffStart == 0 {
		cfg.BackoffStart = defaultBackoffStart
	}
	if cfg.BackoffLimit == 0 {
		cfg.BackoffLimit = defaultBackoffLimit
	}
	if cfg.Metrics == nil {
		cfg.Metrics = metrics.NewLog("mutex")
	}
	return &impl{
		redis:        cfg.Redis,
		ttl:          cfg.Ttl,
		wait:         cfg.Wait,
		backoffStart: cfg.BackoffStart,
		backoffLimit: cfg.BackoffLimit,
		met:          cfg.Metrics,
	}
}

// Lock takes key with SET NX, retrying with exponential backoff until Wait passes
func (im *impl) Lock(c ctx.Ctx, key string) (Unlock, error) {
	defer im.met.BumpTime("lock.time", "key", keys.GetPrefix(key)).End()

	token := []byte(uuid.NewString())
	waitCtx, cancel := ctx.WithTimeout(c, im.wait)
	defer cancel()
	bo := backoff.NewExponential(im.backoffStart, im.backoffLimit)

	for {
		err := im.redis.SetNX(waitCtx, key, token, im.ttl)
		if err == nil {
			return im.unlocker(c, key, token), nil
		}
		if err != redis.ErrNotSet {
			c.WithFields(log.Fields{"err": err, "key": key}).Error("redis.SetNX failed")
			return nil, err
		}
		if err := bo.Wait(waitCtx); err != nil {
			if c.Err() != nil {
				return nil, c.Err()
			}
			im.met.BumpSum("lock.timeout", 1, "key", keys.GetPrefix(key))
			c.WithField("key", key).Warn("lock wait timeout")
			return nil, ErrLockTimeout
		}
	}
}

func (im *impl) unlocker(c ctx.Ctx, key string, token []byte) Unlock {
	return func() {
		// released even when the caller's context is already done
		bg := ctx.From(c, context.Background())
		ok, err := im.redis.DelIfEqual(bg, key, token)
		if err != nil {
			c.WithFields(log.Fields{"err": err, "key": key}).Error("redis.DelIfEqual failed")
			return
		}
		if !ok {
			c.WithField("key", key).Warn("lock expired before unlock")
		}
	}
}
