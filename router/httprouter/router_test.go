package httprouter

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRouterParams(t *testing.T) {
	r := New()

	var got string
	r.HandleFunc("GET /favicon/:domain", func(w http.ResponseWriter, req *http.Request) {
		got = r.Param(req, "domain")
	})
	r.Handle("GET /download/*url", http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		got = r.Param(req, "url")
	}))
	r.HandleFunc("/favicon.ico", func(w http.ResponseWriter, req *http.Request) {
		got = "own favicon"
		w.WriteHeader(http.StatusNoContent)
	})

	testCases := []struct {
		name   string
		target string
		want   string
		status int
	}{
		{name: "named param", target: "/favicon/example.com", want: "example.com", status: http.StatusOK},
		{name: "catch all keeps double slash", target: "/download/https://example.com/a.png", want: "/https://example.com/a.png", status: http.StatusOK},
		{name: "static next to param", target: "/favicon.ico", want: "own favicon", status: http.StatusNoContent},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got = ""
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tc.target, nil))
			if rec.Code != tc.status {
				t.Errorf("status = %d, want %d", rec.Code, tc.status)
			}
			if got != tc.want {
				t.Errorf("param = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestRouterNotFound(t *testing.T) {
	r := New()
	r.NotFound(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nowhere", nil))
	if rec.Code != http.StatusTeapot {
		t.Errorf("status = %d, want custom not found handler", rec.Code)
	}
}

func TestRouterParamOutsideRoute(t *testing.T) {
	r := New()
	if got := r.Param(httptest.NewRequest(http.MethodGet, "/", nil), "domain"); got != "" {
		t.Errorf("Param() = %q, want empty", got)
	}
}
