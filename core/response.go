package core

import (
	"encoding/json"
	"net/http"
)

// Response codes. Every JSON body carries one.
const (
	CodeErrorInvalidDomain      = "err_invalid_domain"
	CodeErrorInvalidURL         = "err_invalid_url"
	CodeErrorIconFetchFailed    = "err_icon_fetch_failed"
	CodeErrorDownloadFailed     = "err_download_failed"
	CodeErrorUnknownContentType = "err_unknown_content_type"
	CodeErrorNotFound           = "err_not_found"
	CodeErrorServiceUnavailable = "err_service_unavailable"
	CodeErrorInvalidRequest     = "err_invalid_input"
)

type jsonResponse struct {
	status int
	body   []byte
}

// JsonBasic contains the fields all JSON responses have.
type JsonBasic struct {
	Status  int    `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// precomputeBasicResponse marshals the body once at package init so
// handlers only write bytes.
func precomputeBasicResponse(status int, code, message string) jsonResponse {
	body, _ := json.Marshal(JsonBasic{
		Status:  status,
		Code:    code,
		Message: message,
	})
	return jsonResponse{status: status, body: body}
}

var (
	errorInvalidDomain      = precomputeBasicResponse(http.StatusBadRequest, CodeErrorInvalidDomain, "Invalid domain name format")
	errorInvalidURL         = precomputeBasicResponse(http.StatusBadRequest, CodeErrorInvalidURL, "Invalid URL")
	errorIconFetchFailed    = precomputeBasicResponse(http.StatusInternalServerError, CodeErrorIconFetchFailed, "Failed to fetch the selected icon")
	errorDownloadFailed     = precomputeBasicResponse(http.StatusInternalServerError, CodeErrorDownloadFailed, "Failed to download image")
	errorUnknownContentType = precomputeBasicResponse(http.StatusInternalServerError, CodeErrorUnknownContentType, "Unsupported image content type")
	errorNotFound           = precomputeBasicResponse(http.StatusNotFound, CodeErrorNotFound, "Requested resource not found")
	errorServiceUnavailable = precomputeBasicResponse(http.StatusServiceUnavailable, CodeErrorServiceUnavailable, "Service is temporarily unavailable")
	errorInvalidRequest     = precomputeBasicResponse(http.StatusBadRequest, CodeErrorInvalidRequest, "The request contains invalid data")
)

// writeJsonError writes a precomputed JSON error response
func writeJsonError(w http.ResponseWriter, resp jsonResponse) {
	setHeaders(w, HeadersJson)
	w.WriteHeader(resp.status)
	_, _ = w.Write(resp.body)
}

// WriteServiceUnavailable is used by the maintenance middleware.
func WriteServiceUnavailable(w http.ResponseWriter) {
	setHeaders(w, HeadersMaintenance)
	writeJsonError(w, errorServiceUnavailable)
}

// NotFoundHandler answers unmatched routes with the JSON not found body.
func NotFoundHandler(w http.ResponseWriter, r *http.Request) {
	writeJsonError(w, errorNotFound)
}
