package prerouter

import (
	"net/http"

	"github.com/caasmo/iconfetch/core"
)

// Maintenance answers every request with 503 while maintenance.activated is
// set. The flag is read per request so a config reload toggles it.
type Maintenance struct {
	app *core.App
}

func NewMaintenance(app *core.App) *Maintenance {
	return &Maintenance{app: app}
}

func (m *Maintenance) Execute(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.app.Config().Maintenance.Activated {
			core.WriteServiceUnavailable(w)
			return
		}
		next.ServeHTTP(w, r)
	})
}
