package redisclient

import (
	"context"
	"runtime"
	"time"

	"github.com/gomodule/redigo/redis"

	"github.com/x-xyz/staking/base/backoff"
	"github.com/x-xyz/staking/base/log"
)

const (
	dialTimeout  = 2 * time.Second
	ioTimeout    = 1500 * time.Millisecond
	idleTimeout  = 240 * time.Second
	pingInterval = time.Second
)

// Options describes one redis endpoint, usually read from the `redis_cache` config section
type Options struct {
	URI      string
	Password string
	// PoolMultiplier sizes the pool per cpu, 0 keeps 64 idle and 256 active connections
	PoolMultiplier float64
	// DialAttempts is how many times the first ping is tried, at least once
	DialAttempts int
}

// MustConnectRedis panics when the endpoint can't be reached
func MustConnectRedis(opts Options) *redis.Pool {
	p, err := ConnectRedis(context.Background(), opts)
	if err != nil {
		log.Log().WithFields(log.Fields{"redisURI": opts.URI, "err": err}).Panic("fail to dial Redis")
	}
	return p
}

// ConnectRedis builds a pool and pings through it, backing off between attempts
func ConnectRedis(c context.Context, opts Options) (*redis.Pool, error) {
	maxIdle, maxActive := 64, 256
	if opts.PoolMultiplier > 0 {
		cpu := float64(runtime.NumCPU())
		// a quarter of the pool may idle
		maxIdle = int(cpu * opts.PoolMultiplier / 4)
		maxActive = int(cpu * opts.PoolMultiplier)
	}

	dialOpts := []redis.DialOption{
		redis.DialConnectTimeout(dialTimeout),
		redis.DialReadTimeout(ioTimeout),
		redis.DialWriteTimeout(ioTimeout),
	}
	if opts.Password != "" {
		dialOpts = append(dialOpts, redis.DialPassword(opts.Password))
	}
	p := &redis.Pool{
		MaxIdle:     maxIdle,
		MaxActive:   maxActive,
		Wait:        true,
		IdleTimeout: idleTimeout,
		Dial: func() (redis.Conn, error) {
			return redis.Dial("tcp", opts.URI, dialOpts...)
		},
		TestOnBorrow: func(conn redis.Conn, t time.Time) error {
			if time.Since(t) < pingInterval {
				return nil
			}
			_, err := conn.Do("PING")
			return err
		},
	}

	bo := backoff.NewExponential(time.Second, 8*time.Second)
	for {
		err := ping(p)
		if err == nil {
			break
		}
		log.Log().WithFields(log.Fields{"redisURI": opts.URI, "err": err, "attempt": bo.Waits()}).Error("fail to dial Redis")
		if bo.Waits()+1 >= opts.DialAttempts {
			return nil, err
		}
		if werr := bo.Wait(c); werr != nil {
			return nil, err
		}
	}

	log.Log().WithField("redisURI", opts.URI).Info("redis connected")
	return p, nil
}

func ping(p *redis.Pool) error {
	conn, err := p.Dial()
	if err != nil {
		return err
	}
	defer conn.Close()
	_, err = conn.Do("PING")
	return err
}
