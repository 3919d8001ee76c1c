package favicon

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"golang.org/x/net/idna"
)

// hostnamePattern: labels of alphanumerics and inner hyphens, at most 63
// characters each, ending in an alphabetic TLD of two or more letters.
var hostnamePattern = regexp.MustCompile(`^(?:[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?\.)+[a-zA-Z]{2,}$`)

// ValidDomain reports whether d is an ASCII hostname accepted by the
// resolver.
func ValidDomain(d string) bool {
	return hostnamePattern.MatchString(d)
}

// NormalizeDomain reduces user input to its ASCII hostname form: port, path
// and userinfo are dropped, the host is lower-cased and internationalised
// labels are converted to punycode. The result is validated with
// ValidDomain.
func NormalizeDomain(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("%w: empty domain", ErrInvalidDomain)
	}

	u, err := url.Parse("http://" + raw)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidDomain, raw)
	}

	ascii, err := idna.Lookup.ToASCII(u.Hostname())
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrInvalidDomain, raw, err)
	}

	if !ValidDomain(ascii) {
		return "", fmt.Errorf("%w: %q", ErrInvalidDomain, raw)
	}
	return ascii, nil
}
