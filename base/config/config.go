package config

import (
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/x-xyz/staking/base/ctx"
	"github.com/x-xyz/staking/base/database/mongoclient"
	"github.com/x-xyz/staking/base/database/redisclient"
	"github.com/x-xyz/staking/base/env"
	"github.com/x-xyz/staking/base/log"
	"github.com/x-xyz/staking/base/metrics"
	"github.com/x-xyz/staking/domain"
	"github.com/x-xyz/staking/domain/staking"
	"github.com/x-xyz/staking/service/query"
	"github.com/x-xyz/staking/service/redis"
)

const DefaultPath = "infra/configs/config.yaml"

// Load reads the yaml config named by --config, STAKING_CONFIG or DefaultPath.
// Every key can be overridden by env, e.g. STAKING_MONGO_URI for mongo.uri.
func Load(flags *pflag.FlagSet, args []string) error {
	path := flags.String("config", "", "path of the yaml config")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if *path == "" {
		*path = env.ConfigPath()
	}
	if *path == "" {
		*path = DefaultPath
	}

	viper.SetConfigType("yaml")
	viper.SetConfigFile(*path)
	viper.SetEnvPrefix("staking")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	if err := viper.ReadInConfig(); err != nil {
		return err
	}

	if lvl := viper.GetString("log.level"); lvl != "" {
		if err := log.SetLevel(lvl); err != nil {
			return err
		}
	}
	if viper.GetBool("debug") {
		_ = log.SetLevel("debug")
		log.Log().Info("Service RUN on DEBUG mode")
	}
	return nil
}

// MustMongo connects to the `mongo` section
func MustMongo(c ctx.Ctx) query.Mongo {
	c.Info("init mongo")
	client := mongoclient.MustConnectMongoClient(mongoclient.Options{
		URI:                viper.GetString("mongo.uri"),
		AuthDBName:         viper.GetString("mongo.authDBName"),
		DBName:             viper.GetString("mongo.dbName"),
		SSL:                viper.GetBool("mongo.enableSSL"),
		SetSafe:            true,
		PoolSizeMultiplier: viper.GetFloat64("mongo.poolSizeMultiplier"),
	})
	return query.New(client, metrics.New("mongo"), viper.GetBool("mongo.checkIndex"))
}

// MustRedis connects to the `redis_cache` section
func MustRedis(c ctx.Ctx) redis.Service {
	c.Info("init redis cache")
	name := viper.GetString("redis_cache.name")
	pool := redisclient.MustConnectRedis(redisclient.Options{
		URI:            viper.GetString("redis_cache.uri"),
		Password:       viper.GetString("redis_cache.password"),
		PoolMultiplier: viper.GetFloat64("redis_cache.poolMultiplier"),
		DialAttempts:   4,
	})
	return redis.New(name, metrics.New(name), pool)
}

// ContractProvider reads the `staking` section on every call so a config reload applies to the next invocation
func ContractProvider() staking.ContractProvider {
	return staking.ContractProviderFunc(func(c ctx.Ctx) (staking.Contract, error) {
		cooldown := staking.ClaimCooldown
		if viper.IsSet("staking.claimCooldown") {
			cooldown = viper.GetDuration("staking.claimCooldown")
		}
		return staking.Contract{
			Self:          domain.Name(viper.GetString("staking.contract")),
			ClaimCooldown: cooldown,
		}, nil
	})
}

// DurationOr reads key, falling back to def when unset or not positive
func DurationOr(key string, def time.Duration) time.Duration {
	if d := viper.GetDuration(key); d > 0 {
		return d
	}
	return def
}
