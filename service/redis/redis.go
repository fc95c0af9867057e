package redis

import (
	"errors"
	"time"

	"github.com/gomodule/redigo/redis"

	"github.com/x-xyz/staking/base/ctx"
)

const (
	// Forever stores the key without expiry
	Forever = time.Duration(0)
)

var (
	// ErrNotFound is returned when the key does not exist
	ErrNotFound = redis.ErrNil
	// ErrNoTTL is returned by TTL when the key has no associated expire
	ErrNoTTL = errors.New("key has no ttl")
	// ErrNotSet is returned by SetNX when the key already exists
	ErrNotSet = errors.New("key already exists")
)

// Service is the subset of redis commands the staking services rely on
type Service interface {
	Get(c ctx.Ctx, key string) ([]byte, error)
	Set(c ctx.Ctx, key string, val []byte, expire time.Duration) error
	SetNX(c ctx.Ctx, key string, val []byte, expire time.Duration) error
	// DelIfEqual removes key only when it still holds val
	DelIfEqual(c ctx.Ctx, key string, val []byte) (bool, error)
	Del(c ctx.Ctx, ks ...string) (int, error)
	TTL(c ctx.Ctx, key string) (int, error)
	Ping(c ctx.Ctx) error
}
