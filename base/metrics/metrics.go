/*
Package metrics wraps datadog-go to facilitate metric recording.
Naming convention:
  - internal process time: *.time
  - error: *.err
  - warning: *.warn
*/
package metrics

import (
	"fmt"
	"sync"
	"time"

	"github.com/DataDog/datadog-go/statsd"
	"github.com/spf13/viper"

	"github.com/pixelbay/goapi/base/log"
)

// Ender ends a timer started by BumpTime
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

var (
	initOnce sync.Once
	client   *statsd.Client
)

func getClient() *statsd.Client {
	initOnce.Do(func() {
		host := viper.GetString("datadog_host")
		if host == "" {
			return
		}
		addr := fmt.Sprintf("%s:8125", host)
		log.Log().WithField("addr", addr).Info("connecting to datadog agent")
		c, err := statsd.NewBuffered(addr, 10)
		if err != nil {
			log.Log().WithFields(log.Fields{"addr": addr, "err": err}).Warn("can't talk to datadog agent")
			return
		}
		client = c
	})
	return client
}

// New creates a metric service with pkgName as prefix. When no datadog agent
// is configured every bump is a no-op.
func New(pkgName string) Service {
	return &metrics{pkgName: pkgName}
}

type metrics struct {
	pkgName string
}

func (m *metrics) tagList(tags []string) []string {
	out := make([]string, 0, len(tags)/2)
	for i := 0; i+1 < len(tags); i += 2 {
		out = append(out, tags[i]+":"+tags[i+1])
	}
	return out
}

func (m *metrics) BumpAvg(key string, val float64, tags ...string) {
	if c := getClient(); c != nil {
		c.Gauge(m.pkgName+"."+key, val, m.tagList(tags), 1)
	}
}

func (m *metrics) BumpSum(key string, val float64, tags ...string) {
	if c := getClient(); c != nil {
		c.Count(m.pkgName+"."+key, int64(val), m.tagList(tags), 1)
	}
}

func (m *metrics) BumpHistogram(key string, val float64, tags ...string) {
	if c := getClient(); c != nil {
		c.Histogram(m.pkgName+"."+key, val, m.tagList(tags), 1)
	}
}

// BumpTime starts a timer; calling End() on the returned value records the
// elapsed duration:
//
//	defer m.BumpTime("my.function.time").End()
func (m *metrics) BumpTime(key string, tags ...string) Ender {
	return &timeTracker{
		key:   m.pkgName + "." + key,
		tags:  m.tagList(tags),
		start: time.Now(),
	}
}

type timeTracker struct {
	key   string
	tags  []string
	start time.Time
}

func (t *timeTracker) End() {
	if c := getClient(); c != nil {
		c.Timing(t.key, time.Since(t.start), t.tags, 1)
	}
}
