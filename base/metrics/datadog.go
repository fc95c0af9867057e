package metrics

import (
	"fmt"
	"sync"

	"github.com/DataDog/datadog-go/statsd"
	"github.com/spf13/viper"

	"github.com/x-xyz/staking/base/env"
	"github.com/x-xyz/staking/base/log"
)

const (
	// buffer 10 counters before sending to statsd
	bufferMetrics = 10
	defaultDdPort = 8125
)

var (
	initOnce = sync.Once{}
	ddClient statsCli
)

// one connection toward the statsd agent is shared by every Service
func initDDClient() {
	host := viper.GetString("datadog.host")
	port := viper.GetInt("datadog.port")
	if port == 0 {
		port = defaultDdPort
	}
	if host == "" {
		log.Log().Info("datadog host not set, metrics go to debug log")
		ddClient = &LogClient{}
		return
	}

	addr := fmt.Sprintf("%s:%d", host, port)
	log.Log().WithField("addr", addr).Info("connecting to datadog agent")
	cli, err := statsd.NewBuffered(addr, bufferMetrics)
	if err != nil {
		log.Log().WithFields(log.Fields{"addr": addr, "err": err}).Panic("can't talk to datadog agent")
	}
	ddClient = cli
}

// New creates a datadog backed metric client with package name as prefix
func New(pkgName string) Service {
	initOnce.Do(initDDClient)
	return &Metrics{
		pkgName: pkgName,
		tags: []string{
			// using host removes all tags associated with host
			// ref: https://docs.datadoghq.com/developers/dogstatsd/data_types/#host-tag-key
			"host:",
			"pod:" + env.PodName(),
			"env:" + viper.GetString("env_name"),
			"app:" + viper.GetString("app_name"),
		},
		sampleRate: 1,
		cli:        ddClient,
	}
}
