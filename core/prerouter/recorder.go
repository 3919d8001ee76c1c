// Package prerouter holds the middlewares that run for every request before
// routing.
package prerouter

import (
	"net/http"
	"time"

	"github.com/caasmo/iconfetch/core"
)

// Recorder installs the shared core.ResponseRecorder. It must be the first
// middleware of the chain.
type Recorder struct {
	app *core.App
}

func NewRecorder(app *core.App) *Recorder {
	return &Recorder{app: app}
}

func (r *Recorder) Execute(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		rec := &core.ResponseRecorder{
			ResponseWriter: w,
			Status:         http.StatusOK,
			StartTime:      time.Now(),
		}
		next.ServeHTTP(rec, req)
	})
}
