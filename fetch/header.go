package fetch

import (
	"net/http"
)

// droppedHeaders are never forwarded upstream. Content-Length is stale for
// a GET without body, hop-by-hop headers belong to the inbound connection,
// Accept-Encoding would disable transparent gzip decoding in the transport
// and credentials for this service must not reach third parties.
var droppedHeaders = []string{
	"Content-Length",
	"Content-Type",
	"Host",
	"Accept-Encoding",
	"Connection",
	"Keep-Alive",
	"Proxy-Authenticate",
	"Proxy-Authorization",
	"Proxy-Connection",
	"Te",
	"Trailer",
	"Transfer-Encoding",
	"Upgrade",
	"Authorization",
	"Cookie",
}

// ForwardHeader returns a copy of the inbound request headers suitable for
// passing to upstream favicon fetches.
func ForwardHeader(in http.Header) http.Header {
	out := in.Clone()
	if out == nil {
		out = http.Header{}
	}
	for _, h := range droppedHeaders {
		out.Del(h)
	}
	return out
}
