package prerouter

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/caasmo/iconfetch/core"
)

const logMessage = "http_request"

var logType = slog.String("type", "request")

// cutStr limits string length by adding ellipsis if needed
func cutStr(str string, max int) string {
	if max > 0 && len(str) > max {
		return str[:max] + "..."
	}
	return str
}

// RequestLog writes one record per request once the response is done.
type RequestLog struct {
	app *core.App
}

func NewRequestLog(app *core.App) *RequestLog {
	return &RequestLog{app: app}
}

func (m *RequestLog) Execute(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cfg := m.app.Config()
		if !cfg.Log.Request.Activated {
			next.ServeHTTP(w, r)
			return
		}

		rec, ok := w.(*core.ResponseRecorder)
		if !ok {
			m.app.Logger().Error("request log: expected core.ResponseRecorder, request not logged")
			next.ServeHTTP(w, r)
			return
		}

		next.ServeHTTP(rec, r)

		limits := cfg.Log.Request.Limits
		attrs := make([]any, 0, 13)
		attrs = append(attrs,
			logType,
			slog.String("method", strings.ToUpper(r.Method)),
			slog.String("uri", cutStr(r.URL.RequestURI(), limits.URILength)),
			slog.Int("status", rec.Status),
			slog.Int64("bytes", rec.BytesWritten),
			slog.String("duration", rec.Duration().String()),
			slog.String("remote_ip", cutStr(core.ClientIP(r, cfg.Server.ClientIpProxyHeader), limits.RemoteIPLength)),
			slog.String("user_agent", cutStr(r.UserAgent(), limits.UserAgentLength)),
			slog.String("referer", cutStr(r.Referer(), limits.RefererLength)),
			slog.String("host", r.Host),
			slog.String("proto", r.Proto),
			slog.String("request_id", rec.RequestID),
		)
		m.app.Logger().Info(logMessage, attrs...)
	})
}
