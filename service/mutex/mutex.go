package mutex

import (
	"errors"
	"time"

	"github.com/x-xyz/staking/base/ctx"
	"github.com/x-xyz/staking/base/metrics"
	"github.com/x-xyz/staking/service/redis"
)

var (
	// ErrLockTimeout is returned when the lock is still held by someone else after Wait
	ErrLockTimeout = errors.New("lock wait timeout")
)

// Unlock releases a lock, it is safe to call once the lock has expired
type Unlock func()

// Service hands out distributed locks shared by every replica
type Service interface {
	Lock(c ctx.Ctx, key string) (Unlock, error)
}

type Config struct {
	Redis redis.Service
	// Ttl bounds how long a crashed holder keeps the lock
	Ttl time.Duration
	// Wait bounds how long Lock retries before ErrLockTimeout
	Wait         time.Duration
	BackoffStart time.Duration
	BackoffLimit time.Duration
	Metrics      metrics.Service
}
