package prerouter

import (
	"net/http"
	"strconv"

	"github.com/caasmo/iconfetch/core"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	requestsMetricName = "http_server_requests_total"
	requestsMetricHelp = "Total number of HTTP requests handled by the server, labeled by status code."
	statusCodeLabel    = "code"
)

// Metrics counts requests by status code. It reads the status from the
// core.ResponseRecorder, so Recorder must run before it.
type Metrics struct {
	app           *core.App
	requestsTotal *prometheus.CounterVec
}

// NewMetrics registers the request counter with reg, or with
// prometheus.DefaultRegisterer when reg is nil. It panics if the
// registration fails.
func NewMetrics(app *core.App, reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	counterVec := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: requestsMetricName,
			Help: requestsMetricHelp,
		},
		[]string{statusCodeLabel},
	)
	if err := reg.Register(counterVec); err != nil {
		panic("metrics: failed to register requests_total counter vec: " + err.Error())
	}
	return &Metrics{app: app, requestsTotal: counterVec}
}

func (m *Metrics) Execute(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !m.app.Config().Metrics.Activated {
			next.ServeHTTP(w, r)
			return
		}

		rec, ok := w.(*core.ResponseRecorder)
		if !ok {
			m.app.Logger().Error("metrics: expected core.ResponseRecorder, request not counted")
			next.ServeHTTP(w, r)
			return
		}

		next.ServeHTTP(rec, r)
		m.requestsTotal.WithLabelValues(strconv.Itoa(rec.Status)).Inc()
	})
}
