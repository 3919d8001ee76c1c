package core

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/caasmo/iconfetch/download"
)

// DownloadHandler proxies an image as an attachment named after its type.
// Endpoint: GET /download/*url
// Authenticated: No
//
// The target is everything after /download/, either plain
// (/download/https://example.com/a.png) or percent-encoded.
func (a *App) DownloadHandler(w http.ResponseWriter, r *http.Request) {
	target := downloadTarget(a.router.Param(r, "url"), r.URL.RawQuery)

	file, err := a.downloader.Download(r.Context(), target)
	if err != nil {
		switch {
		case errors.Is(err, download.ErrInvalidURL):
			a.logger.Info("download: rejected url", "url", target, "error", err)
			writeJsonError(w, errorInvalidURL)
		case errors.Is(err, download.ErrUnknownContentType):
			a.logger.Warn("download: rejected content type", "url", target, "error", err)
			writeJsonError(w, errorUnknownContentType)
		default:
			a.logger.Error("download: failed", "url", target, "error", err)
			writeJsonError(w, errorDownloadFailed)
		}
		return
	}

	setHeaders(w, HeadersImage)
	h := w.Header()
	h.Set("Content-Type", file.ContentType)
	h.Set("Content-Disposition", "attachment; filename="+file.Filename)
	h.Set("Content-Length", strconv.Itoa(len(file.Body)))
	h.Set("Cache-Control", "no-store")

	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(file.Body)
}

// downloadTarget rebuilds the target URL from the catch-all parameter and
// the query string, which belongs to the target. Proxies that merge
// slashes turn "https://" into "https:/"; the second slash is restored.
func downloadTarget(param, rawQuery string) string {
	target := strings.TrimPrefix(param, "/")
	for _, scheme := range []string{"http:/", "https:/"} {
		if strings.HasPrefix(target, scheme) && !strings.HasPrefix(target, scheme+"/") {
			target = scheme + "/" + target[len(scheme):]
			break
		}
	}
	if rawQuery != "" {
		target += "?" + rawQuery
	}
	return target
}
