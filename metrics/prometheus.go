package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lumen-bot/lumen-api/pkg/stats"
)

// Descriptors used by the statsCollector below.
var (
	serversDesc = prometheus.NewDesc(
		"lumen_bot_servers",
		"Number of servers the bot last reported being in",
		[]string{"bot"}, nil,
	)
	usersDesc = prometheus.NewDesc(
		"lumen_bot_users",
		"Number of users the bot last reported reaching",
		[]string{"bot"}, nil,
	)
	uptimeDesc = prometheus.NewDesc(
		"lumen_relay_uptime_seconds",
		"Seconds since the relay process started",
		nil, nil,
	)
)

// statsCollector reads the live stats record at scrape time instead of
// tracking its own counters, so /metrics and /stats can never disagree.
type statsCollector struct {
	store *stats.Store
}

func (sc statsCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- serversDesc
	ch <- usersDesc
	ch <- uptimeDesc
}

func (sc statsCollector) Collect(ch chan<- prometheus.Metric) {
	snap := sc.store.Snapshot()

	ch <- prometheus.MustNewConstMetric(
		serversDesc,
		prometheus.GaugeValue,
		float64(snap.Servers),
		snap.BotName,
	)

	ch <- prometheus.MustNewConstMetric(
		usersDesc,
		prometheus.GaugeValue,
		float64(snap.Users),
		snap.BotName,
	)

	ch <- prometheus.MustNewConstMetric(
		uptimeDesc,
		prometheus.GaugeValue,
		sc.store.Uptime().Seconds(),
	)
}

// Metrics owns the relay's Prometheus registry: process/runtime collectors,
// the stats gauges above, and a counter for outbound Discord calls. It
// satisfies the relay client's Observer interface.
type Metrics struct {
	registry *prometheus.Registry
	upstream *prometheus.CounterVec
}

func New(store *stats.Store) *Metrics {
	reg := prometheus.NewPedanticRegistry()

	upstream := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "lumen_discord_requests_total",
		Help: "Outbound Discord API calls by operation and outcome",
	}, []string{"operation", "outcome"})

	reg.MustRegister(
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
		upstream,
	)
	prometheus.WrapRegistererWith(nil, reg).MustRegister(statsCollector{store: store})

	return &Metrics{
		registry: reg,
		upstream: upstream,
	}
}

func (m *Metrics) ObserveUpstream(operation, outcome string) {
	m.upstream.WithLabelValues(operation, outcome).Inc()
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
