package core

import (
	"net/http"
	"time"
)

// ResponseRecorder is installed first in the prerouter chain and shared by
// the middlewares after it.
type ResponseRecorder struct {
	http.ResponseWriter
	Status       int
	WroteHeader  bool
	BytesWritten int64
	StartTime    time.Time
	RequestID    string
}

func (r *ResponseRecorder) WriteHeader(status int) {
	if !r.WroteHeader {
		r.Status = status
		r.WroteHeader = true
		r.ResponseWriter.WriteHeader(status)
	}
}

func (r *ResponseRecorder) Write(b []byte) (int, error) {
	if !r.WroteHeader {
		r.WriteHeader(http.StatusOK)
	}
	n, err := r.ResponseWriter.Write(b)
	r.BytesWritten += int64(n)
	return n, err
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (r *ResponseRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}

// Duration returns the time elapsed since the request started
func (r *ResponseRecorder) Duration() time.Duration {
	return time.Since(r.StartTime)
}

// requestStart is the recorder start time, or now when the handler runs
// outside the prerouter chain.
func requestStart(w http.ResponseWriter) time.Time {
	if rec, ok := w.(*ResponseRecorder); ok && !rec.StartTime.IsZero() {
		return rec.StartTime
	}
	return time.Now()
}
