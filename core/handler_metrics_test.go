package core

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/caasmo/iconfetch/config"
	"github.com/prometheus/client_golang/prometheus"
)

func TestMetricsHandler(t *testing.T) {
	testCases := []struct {
		name           string
		config         config.Metrics
		remoteAddr     string
		proxyHeader    string
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "metrics disabled",
			config:         config.Metrics{Enabled: false, AllowedIPs: []string{"127.0.0.1"}},
			remoteAddr:     "127.0.0.1:12345",
			expectedStatus: http.StatusNotFound,
			expectedBody:   CodeErrorNotFound,
		},
		{
			name:           "ip not allowed",
			config:         config.Metrics{Enabled: true, AllowedIPs: []string{"192.168.1.1"}},
			remoteAddr:     "127.0.0.1:12345",
			expectedStatus: http.StatusNotFound,
			expectedBody:   CodeErrorNotFound,
		},
		{
			name:           "ip allowed",
			config:         config.Metrics{Enabled: true, AllowedIPs: []string{"192.168.1.1", "127.0.0.1"}},
			remoteAddr:     "127.0.0.1:12345",
			expectedStatus: http.StatusOK,
			expectedBody:   "test_requests_total",
		},
		{
			name:           "ipv6 allowed",
			config:         config.Metrics{Enabled: true, AllowedIPs: []string{"::1"}},
			remoteAddr:     "[::1]:12345",
			expectedStatus: http.StatusOK,
			expectedBody:   "test_requests_total",
		},
		{
			name:           "proxy header is ignored",
			config:         config.Metrics{Enabled: true, AllowedIPs: []string{"127.0.0.1"}},
			remoteAddr:     "203.0.113.9:12345",
			proxyHeader:    "127.0.0.1",
			expectedStatus: http.StatusNotFound,
			expectedBody:   CodeErrorNotFound,
		},
		{
			name:           "empty remote addr",
			config:         config.Metrics{Enabled: true, AllowedIPs: []string{"127.0.0.1"}},
			remoteAddr:     ":",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   CodeErrorInvalidRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			reg := prometheus.NewRegistry()
			counter := prometheus.NewCounter(prometheus.CounterOpts{Name: "test_requests_total"})
			reg.MustRegister(counter)
			counter.Inc()

			cfg := config.NewDefaultConfig()
			cfg.Metrics = tc.config
			cfg.Server.ClientIpProxyHeader = "X-Forwarded-For"

			app := newTestApp(t, &MockFavicons{}, &MockDownloader{}, cfg)
			WithGatherer(reg)(app)

			req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
			req.RemoteAddr = tc.remoteAddr
			if tc.proxyHeader != "" {
				req.Header.Set("X-Forwarded-For", tc.proxyHeader)
			}
			rr := httptest.NewRecorder()
			app.MetricsHandler(rr, req)

			if rr.Code != tc.expectedStatus {
				t.Errorf("status = %d, want %d", rr.Code, tc.expectedStatus)
			}
			if !strings.Contains(rr.Body.String(), tc.expectedBody) {
				t.Errorf("body %q does not contain %q", rr.Body.String(), tc.expectedBody)
			}
		})
	}
}
