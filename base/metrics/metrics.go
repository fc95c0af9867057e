/*Package metrics wraps datadog-go to faciliate metric recording
Following are naming convention of metric:
- Internal process time: *.time
- Error: *.err
- Skipped work: *.skip
*/
package metrics

import (
	"strings"
	"time"

	"github.com/x-xyz/staking/base/log"
)

// Ender provides interface for BumpTime
type Ender interface {
	End()
}

// Service provides interface for metrics
type Service interface {
	BumpAvg(key string, val float64, tags ...string)
	BumpSum(key string, val float64, tags ...string)
	BumpHistogram(key string, val float64, tags ...string)

	BumpTime(key string, tags ...string) Ender
}

type statsCli interface {
	Gauge(name string, value float64, tags []string, rate float64) error
	Count(name string, value int64, tags []string, rate float64) error
	Histogram(name string, value float64, tags []string, rate float64) error
	TimeInMilliseconds(name string, value float64, tags []string, rate float64) error
}

// Metrics prefixes every key with the package name and forwards it to a statsd style client
type Metrics struct {
	pkgName    string
	tags       []string
	sampleRate float64
	cli        statsCli
}

// NewLog returns a Service that only writes debug logs, used in tests and when no agent is configured
func NewLog(pkgName string) Service {
	return &Metrics{
		pkgName:    pkgName,
		sampleRate: 1,
		cli:        &LogClient{},
	}
}

func (mt *Metrics) key(key string) string {
	return mt.pkgName + "." + key
}

// recoverBump keeps a malformed tag list from crashing the caller
func (mt *Metrics) recoverBump(fn, key string, tags []string) {
	if err := recover(); err != nil {
		log.Log().WithFields(log.Fields{
			"err":  err,
			"func": fn,
			"key":  mt.key(key) + "#" + strings.Join(tags, "#"),
		}).Error("bump panic")
	}
}

// BumpAvg bumps the average for the given key.
func (mt *Metrics) BumpAvg(key string, val float64, tags ...string) {
	defer mt.recoverBump("BumpAvg", key, tags)
	if err := mt.cli.Gauge(mt.key(key), val, mt.withTags(tags), mt.sampleRate); err != nil {
		log.Log().WithFields(log.Fields{"err": err, "key": key, "val": val, "func": "BumpAvg"}).Error("Bump fail")
	}
}

// BumpSum bumps the sum for the given key.
func (mt *Metrics) BumpSum(key string, val float64, tags ...string) {
	defer mt.recoverBump("BumpSum", key, tags)
	if err := mt.cli.Count(mt.key(key), int64(val), mt.withTags(tags), mt.sampleRate); err != nil {
		log.Log().WithFields(log.Fields{"err": err, "key": key, "val": val, "func": "BumpSum"}).Error("Bump fail")
	}
}

// BumpHistogram bumps the histogram for the given key.
func (mt *Metrics) BumpHistogram(key string, val float64, tags ...string) {
	defer mt.recoverBump("BumpHistogram", key, tags)
	if err := mt.cli.Histogram(mt.key(key), val, mt.withTags(tags), mt.sampleRate); err != nil {
		log.Log().WithFields(log.Fields{"err": err, "key": key, "val": val, "func": "BumpHistogram"}).Error("Bump fail")
	}
}

// BumpTime starts a timer and returns a value on which End() records the elapsed time.
//
//     defer s.BumpTime("my.function").End()
func (mt *Metrics) BumpTime(key string, tags ...string) Ender {
	return &timeTracker{
		mt:    mt,
		start: time.Now(),
		key:   key,
		tags:  tags,
	}
}

func (mt *Metrics) withTags(tags []string) []string {
	parsed := parseTag(tags)
	res := make([]string, 0, len(mt.tags)+len(parsed))
	res = append(res, mt.tags...)
	return append(res, parsed...)
}

// parseTag turns key/value pairs into datadog "key:value" tags
func parseTag(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	if len(tags)%2 != 0 {
		log.Log().WithField("tags", tags).Panic("tag length needs to be multiple of 2")
	}
	arr := make([]string, len(tags)/2)
	for i := 0; i < len(tags); i += 2 {
		arr[i/2] = tags[i] + ":" + tags[i+1]
	}
	return arr
}

type timeTracker struct {
	mt    *Metrics
	start time.Time
	key   string
	tags  []string
}

func (t *timeTracker) End() {
	defer t.mt.recoverBump("BumpTime", t.key, t.tags)
	d := time.Since(t.start)
	dur := float64(d/time.Millisecond) + float64(d%time.Millisecond)*1e-6
	if err := t.mt.cli.TimeInMilliseconds(t.mt.key(t.key), dur, t.mt.withTags(t.tags), t.mt.sampleRate); err != nil {
		log.Log().WithFields(log.Fields{"err": err, "key": t.key, "val": dur, "func": "BumpTime"}).Error("Bump fail")
	}
}
