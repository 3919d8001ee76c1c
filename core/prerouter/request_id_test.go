package prerouter

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/caasmo/iconfetch/core"
	"github.com/google/uuid"
)

func TestRequestID(t *testing.T) {
	existing := uuid.NewString()

	testCases := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{name: "generated when absent"},
		{name: "kept when valid", incoming: existing, keep: true},
		{name: "replaced when not a uuid", incoming: "<script>"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			app := newMockApp(nil, nil)

			var seen string
			final := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen = w.(*core.ResponseRecorder).RequestID
			})
			handler := NewRecorder(app).Execute(NewRequestID(app).Execute(final))

			req := httptest.NewRequest("GET", "/", nil)
			if tc.incoming != "" {
				req.Header.Set(HeaderRequestID, tc.incoming)
			}
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			got := rr.Header().Get(HeaderRequestID)
			if _, err := uuid.Parse(got); err != nil {
				t.Fatalf("response id %q is not a uuid", got)
			}
			if seen != got {
				t.Errorf("recorder id %q != header id %q", seen, got)
			}
			if tc.keep && got != tc.incoming {
				t.Errorf("id = %q, want incoming %q", got, tc.incoming)
			}
			if !tc.keep && got == tc.incoming {
				t.Errorf("invalid incoming id %q was kept", got)
			}
		})
	}
}
