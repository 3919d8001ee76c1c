package favicon

import (
	"net/url"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	resolutionsMetricName = "favicon_resolutions_total"
	providerMetricName    = "favicon_provider_requests_total"
)

// Provider request results.
const (
	providerResultOK     = "ok"
	providerResultStatus = "status"
	providerResultError  = "error"
)

// Metrics counts where served icons came from and how providers answer.
// A nil *Metrics records nothing.
type Metrics struct {
	resolutions      *prometheus.CounterVec
	providerRequests *prometheus.CounterVec
}

// NewMetrics registers the favicon counters with reg, or with
// prometheus.DefaultRegisterer when reg is nil. It panics when the
// registration fails, like the request metrics middleware.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := &Metrics{
		resolutions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: resolutionsMetricName,
				Help: "Favicon responses served, labeled by where the image came from.",
			},
			[]string{"origin"},
		),
		providerRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: providerMetricName,
				Help: "Requests to third-party favicon providers, labeled by provider host and result.",
			},
			[]string{"provider", "result"},
		),
	}
	for _, c := range []prometheus.Collector{m.resolutions, m.providerRequests} {
		if err := reg.Register(c); err != nil {
			panic("metrics: failed to register favicon counter: " + err.Error())
		}
	}
	return m
}

func (m *Metrics) observeResolution(origin Origin) {
	if m == nil {
		return
	}
	m.resolutions.WithLabelValues(string(origin)).Inc()
}

func (m *Metrics) observeProvider(providerURL, result string) {
	if m == nil {
		return
	}
	m.providerRequests.WithLabelValues(providerLabel(providerURL), result).Inc()
}

// providerLabel keeps label cardinality bounded to the provider host.
func providerLabel(providerURL string) string {
	u, err := url.Parse(providerURL)
	if err != nil || u.Host == "" {
		return "invalid"
	}
	return u.Host
}
