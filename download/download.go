// Package download fetches a remote image on behalf of a client and names
// it after its content type.
package download

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"mime"
	"net/url"
	"strings"

	"github.com/caasmo/iconfetch/config"
	"github.com/caasmo/iconfetch/fetch"
)

var (
	// ErrInvalidURL is returned for unparsable targets and schemes other
	// than http and https.
	ErrInvalidURL = errors.New("invalid url")
	// ErrUpstream covers network failures and non 2xx answers.
	ErrUpstream = errors.New("failed to download image")
	// ErrUnknownContentType is only returned in strict mode.
	ErrUnknownContentType = errors.New("unknown content type")
)

const (
	defaultContentType = "image/png"
	// GenericExtension names files whose content type is not in the table.
	GenericExtension = "bin"
	filenamePrefix   = "favicon."
)

var extensions = map[string]string{
	"image/jpeg":    "jpg",
	"image/png":     "png",
	"image/gif":     "gif",
	"image/webp":    "webp",
	"image/x-icon":  "ico",
	"image/svg+xml": "svg",
}

// Extension maps a Content-Type header value to a file extension.
// Parameters such as charset are ignored. ok is false for types outside
// the table, in which case GenericExtension is returned.
func Extension(contentType string) (ext string, ok bool) {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		mediaType, _, _ = strings.Cut(contentType, ";")
		mediaType = strings.ToLower(strings.TrimSpace(mediaType))
	}
	ext, ok = extensions[mediaType]
	if !ok {
		return GenericExtension, false
	}
	return ext, true
}

// ParseTarget accepts absolute http and https URLs only.
func ParseTarget(raw string) (*url.URL, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("%w: scheme %q not allowed", ErrInvalidURL, u.Scheme)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("%w: missing host", ErrInvalidURL)
	}
	return u, nil
}

// File is a downloaded image ready to be sent as an attachment.
type File struct {
	Body        []byte
	ContentType string
	Extension   string
	// Filename is "favicon." plus Extension.
	Filename string
}

// Downloader is safe for concurrent use.
type Downloader struct {
	client         fetch.Getter
	configProvider *config.Provider
	logger         *slog.Logger
}

func New(client fetch.Getter, configProvider *config.Provider, logger *slog.Logger) *Downloader {
	return &Downloader{client: client, configProvider: configProvider, logger: logger}
}

// Download fetches rawURL. Unknown content types pass through with
// GenericExtension unless download.strict_content_type is set.
func (d *Downloader) Download(ctx context.Context, rawURL string) (*File, error) {
	target, err := ParseTarget(rawURL)
	if err != nil {
		return nil, err
	}

	resp, err := d.client.Get(ctx, target.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	if !resp.OK() {
		return nil, fmt.Errorf("%w: %s", ErrUpstream, resp.StatusText)
	}

	contentType := resp.ContentType()
	if contentType == "" {
		contentType = defaultContentType
	}

	ext, known := Extension(contentType)
	if !known {
		if d.configProvider.Get().Download.StrictContentType {
			return nil, fmt.Errorf("%w: %s", ErrUnknownContentType, contentType)
		}
		d.logger.Warn("download: unknown content type, using generic extension",
			"url", target.String(),
			"content_type", contentType,
		)
	}

	return &File{
		Body:        resp.Body,
		ContentType: contentType,
		Extension:   ext,
		Filename:    filenamePrefix + ext,
	}, nil
}
