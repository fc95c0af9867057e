package env

import (
	"os"
)

// PodName example: k8ssta-staking-api-6868d88fbd-bz8zv
func PodName() string {
	return os.Getenv("PODNAME")
}

// EnvName example: k8ssta
func EnvName() string {
	return os.Getenv("ENV_NAME")
}

// ConfigPath overrides the default config file location when set
func ConfigPath() string {
	return os.Getenv("STAKING_CONFIG")
}

// MongoURI is only read by tests that need a live database
func MongoURI() string {
	return os.Getenv("MONGO_URI")
}

// RedisURI is only read by tests that need a live redis
func RedisURI() string {
	return os.Getenv("REDIS_URI")
}
