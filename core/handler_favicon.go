package core

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/caasmo/iconfetch/favicon"
	"github.com/caasmo/iconfetch/fetch"
)

// FaviconHandler serves the best icon of a domain.
// Endpoint: GET /favicon/:domain?larger=true
// Authenticated: No
//
// A syntactically valid domain always gets a 200 image, from the page, a
// provider or the placeholder. 400 for malformed domains, 500 when the
// selected page icon cannot be downloaded.
func (a *App) FaviconHandler(w http.ResponseWriter, r *http.Request) {
	start := requestStart(w)

	domain := a.router.Param(r, "domain")
	larger := wantLarger(r.URL.Query().Get("larger"))

	icon, err := a.favicons.Lookup(r.Context(), domain, fetch.ForwardHeader(r.Header), larger)
	if err != nil {
		if errors.Is(err, favicon.ErrInvalidDomain) {
			a.logger.Info("favicon: rejected domain", "domain", domain)
			writeJsonError(w, errorInvalidDomain)
			return
		}
		a.logger.Error("favicon: failed to serve icon", "domain", domain, "error", err)
		writeJsonError(w, errorIconFetchFailed)
		return
	}

	cfg := a.Config()
	setHeaders(w, HeadersImage)
	h := w.Header()
	h.Set("Cache-Control", cfg.Favicon.CacheControl)
	h.Set("Content-Type", icon.ContentType)
	h.Set("Content-Length", strconv.Itoa(len(icon.Body)))
	h.Set("Link", fmt.Sprintf(`<%s>; rel="canonical"`, cfg.CanonicalLink(r.Host, r.URL.Path)))
	h.Set("X-Favicon-Origin", string(icon.Origin))
	h.Set("X-Execution-Time", executionTime(start))

	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(icon.Body)
}

// OwnFaviconHandler answers the browser's automatic /favicon.ico request
// with 204 so it does not show up as a 404.
func OwnFaviconHandler(w http.ResponseWriter, r *http.Request) {
	setHeaders(w, HeadersFavicon)
	w.WriteHeader(http.StatusNoContent)
}

// wantLarger accepts the strconv.ParseBool spellings; anything else is false.
func wantLarger(v string) bool {
	b, err := strconv.ParseBool(v)
	return err == nil && b
}

func executionTime(start time.Time) string {
	return strconv.FormatInt(time.Since(start).Milliseconds(), 10) + "ms"
}
