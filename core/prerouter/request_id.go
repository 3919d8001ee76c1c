package prerouter

import (
	"net/http"

	"github.com/caasmo/iconfetch/core"
	"github.com/google/uuid"
)

const HeaderRequestID = "X-Request-Id"

// RequestID tags every request with a UUID. A valid UUID sent by a
// fronting proxy is kept so logs can be joined.
type RequestID struct {
	app *core.App
}

func NewRequestID(app *core.App) *RequestID {
	return &RequestID{app: app}
}

func (m *RequestID) Execute(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(HeaderRequestID)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}

		w.Header().Set(HeaderRequestID, id)
		if rec, ok := w.(*core.ResponseRecorder); ok {
			rec.RequestID = id
		}
		next.ServeHTTP(w, r)
	})
}
