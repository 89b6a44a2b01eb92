package perf

import (
	"expvar"
	"net/http"

	"github.com/encodeous/metric"
)

var (
	RoundLatency        = metric.NewHistogram("1m1s")
	RoundsPerSecond     = metric.NewCounter("10s1s")
	DeliveriesPerSecond = metric.NewCounter("10s1s")
	UpdatesPerSecond    = metric.NewCounter("10s1s")
)

func init() {
	http.Handle("/debug/metrics", metric.Handler(metric.Exposed))
	expvar.Publish("dvsim:RoundLatency (µs)", RoundLatency)
	expvar.Publish("dvsim:Rounds/s", RoundsPerSecond)
	expvar.Publish("dvsim:Deliveries/s", DeliveriesPerSecond)
	expvar.Publish("dvsim:Updates/s", UpdatesPerSecond)
}
