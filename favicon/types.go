// Package favicon resolves the best icon for a domain: it probes the
// domain's HTML for icon links over http then https, selects a candidate by
// declared size, and otherwise falls back to third-party favicon providers
// and finally to a generated placeholder.
package favicon

import (
	"errors"
	"time"
)

var (
	// ErrInvalidDomain is returned before any network access when the
	// domain does not match the hostname grammar.
	ErrInvalidDomain = errors.New("invalid domain name format")

	// ErrNoIcons means neither probe found an icon link. It is the trigger
	// for the fallback providers, not a failure.
	ErrNoIcons = errors.New("no icons found")

	// ErrSelectedFetch means the chosen icon could not be downloaded. The
	// resolver already committed to the page icon so no fallback is tried.
	ErrSelectedFetch = errors.New("failed to fetch the selected icon")

	// ErrUpstreamStatus marks a probe answered with a non 2xx status.
	ErrUpstreamStatus = errors.New("upstream returned a non-success status")
)

// SizesUnknown is the Sizes value of a candidate declared without sizes.
const SizesUnknown = "unknown"

// IconCandidate is an icon link found in a page, not yet fetched.
type IconCandidate struct {
	// Sizes is the raw sizes attribute ("32x32") or SizesUnknown.
	Sizes string `json:"sizes"`
	// Href is always absolute.
	Href string `json:"href"`
}

// Outcome classifies a probe.
type Outcome int

const (
	OutcomeFound Outcome = iota
	OutcomeEmpty
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeFound:
		return "found"
	case OutcomeEmpty:
		return "empty"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// ResolutionResult is the result of one probe. Icons are in document order.
type ResolutionResult struct {
	SourceURL  string          `json:"url"`
	Host       string          `json:"host"`
	StatusCode int             `json:"status"`
	StatusText string          `json:"statusText"`
	Icons      []IconCandidate `json:"icons"`
	Outcome    Outcome         `json:"-"`
	// Err holds the failure reason when Outcome is OutcomeFailed.
	Err error `json:"-"`
}

// Origin tells where the bytes of an Icon came from.
type Origin string

const (
	OriginPage        Origin = "page"
	OriginLarger      Origin = "larger"
	OriginProvider    Origin = "provider"
	OriginPlaceholder Origin = "placeholder"
)

// Icon is a fetched or generated image ready to be served.
type Icon struct {
	// Domain is the normalized ASCII domain the icon belongs to.
	Domain      string
	Body        []byte
	ContentType string
	Origin      Origin
	// URL is where Body was downloaded from, empty for placeholders.
	URL string
	// Candidates and Selected are set for OriginPage.
	Candidates []IconCandidate
	Selected   IconCandidate
	Elapsed    time.Duration
}
