// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// go-stock-keeper client and server.
//
// All Msg* constants are human-readable message strings that are either
// delivered to the presentation layer as failure messages or written into
// HTTP response bodies by the server. Keeping them in one place ensures
// consistent wording on both sides of the wire.
package app

const (
	// MsgUnexpectedServerResponse is delivered to the caller when the remote
	// service answered with a non-success status, or with a success status
	// but without the body the operation required.
	MsgUnexpectedServerResponse = "unexpected server response"

	// MsgCommunicationError prefixes the failure delivered when the remote
	// service could not be reached at all (timeout, refused connection,
	// reset). The underlying cause is appended after the prefix.
	MsgCommunicationError = "communication error. Message: "

	// MsgInvalidDataProvided is returned by the server when the request body
	// cannot be decoded or fails validation.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidProductID is returned by the server when the {id} path
	// parameter is not a positive integer.
	MsgInvalidProductID = "invalid product id"

	// MsgProductNotFound is returned by the server when an update or delete
	// targets a product that does not exist.
	MsgProductNotFound = "product not found"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"
)

// CommunicationError builds the failure message for a transport-level error.
func CommunicationError(err error) string {
	if err == nil {
		return MsgCommunicationError
	}
	return MsgCommunicationError + err.Error()
}
