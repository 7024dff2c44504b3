package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// statusErrors classifies the statuses the product service is known to send.
var statusErrors = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusNotFound:            ErrNotFound,
	http.StatusConflict:            ErrConflict,
	http.StatusInternalServerError: ErrInternalServerError,
	http.StatusBadGateway:          ErrBadGateway,
	http.StatusServiceUnavailable:  ErrServiceUnavailable,
	http.StatusGatewayTimeout:      ErrGatewayTimeout,
}

// mapHTTPError classifies a non-2xx product service answer. The result names
// the request and carries the server's error text, so a single log line tells
// which call was rejected and why. 2xx answers yield nil.
func mapHTTPError(resp *resty.Response) error {
	status := resp.StatusCode()
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}

	reason := strings.TrimSpace(string(resp.Body()))
	if reason == "" {
		reason = http.StatusText(status)
	}

	call := "request"
	if req := resp.Request; req != nil {
		call = req.Method + " " + req.URL
	}

	if classified, ok := statusErrors[status]; ok {
		return fmt.Errorf("%s: %w: %s", call, classified, reason)
	}
	return fmt.Errorf("%s: http %d: %s", call, status, reason)
}
