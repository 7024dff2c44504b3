// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "net/http"

// Unit is the body type of responses that carry no payload, such as the
// acknowledgement of a delete.
type Unit struct{}

// Response is the outcome of a single request/response exchange with the
// remote service that reached the server.
//
// Transport failures (timeouts, refused connections) never produce a
// Response; they are reported as errors by the adapter instead.
type Response[B any] struct {
	// StatusCode is the HTTP status returned by the server.
	StatusCode int

	// Body is the decoded response body, or nil when the server sent none.
	Body *B
}

// Successful reports whether the status code is in the 2xx range.
func (r Response[B]) Successful() bool {
	return r.StatusCode >= http.StatusOK && r.StatusCode < http.StatusMultipleChoices
}

// HasBody reports whether the server returned a decodable body.
func (r Response[B]) HasBody() bool {
	return r.Body != nil
}
