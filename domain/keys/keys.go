package keys

import (
	"strings"
)

const (
	// PfxHealthCheck is used for prefixing health check redis key
	PfxHealthCheck = "healthcheck"
	// PfxLock is used for prefixing distributed lock keys
	PfxLock = "lock"
	// PfxIdentity is used for prefixing cached account existence lookups
	PfxIdentity = "identity"
)

// CustomKey is used to join the customized key by componets with specified delimiter
func CustomKey(delimiter string, components ...string) string {
	return strings.Join(components, delimiter)
}

// RedisKey is used to join the redis key by componets
func RedisKey(components ...string) string {
	return CustomKey(":", components...)
}

// AccountLockKey guards every stake entry of one account
func AccountLockKey(account string) string {
	return RedisKey(PfxLock, "account", account)
}

// RegistryLockKey guards token config writes
func RegistryLockKey() string {
	return RedisKey(PfxLock, "registry")
}

// GetPrefix extracts the first one or two components of a key for metric tags
func GetPrefix(key string) string {
	s := strings.Split(key, ":")
	if len(s) > 2 {
		return strings.Join(s[:2], ":")
	} else if len(s) > 1 {
		return s[0]
	}
	return ""
}
