package favicon

import (
	"fmt"
	"strings"
)

const placeholderContentType = "image/svg+xml"

const placeholderSVG = `<svg width="100" height="100" xmlns="http://www.w3.org/2000/svg">` +
	`<rect width="100%%" height="100%%" fill="#cccccc"/>` +
	`<text x="50%%" y="50%%" font-size="48" text-anchor="middle" dominant-baseline="middle" fill="#000000">%s</text>` +
	`</svg>`

// Placeholder draws the first character of domain, uppercased, on a grey
// square. The output depends only on domain.
func Placeholder(domain string) *Icon {
	letter := "?"
	if domain != "" {
		letter = strings.ToUpper(domain[:1])
	}
	if !isAlnum(letter[0]) {
		letter = "?"
	}
	return &Icon{
		Domain:      domain,
		Body:        []byte(fmt.Sprintf(placeholderSVG, letter)),
		ContentType: placeholderContentType,
		Origin:      OriginPlaceholder,
	}
}

func isAlnum(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z'
}
