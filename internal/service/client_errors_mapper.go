// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-stock-keeper/internal/app"
	"github.com/MKhiriev/go-stock-keeper/models"
)

// remoteFailure translates the outcome of one remote exchange into the
// failure message delivered to the caller. It reports false when the exchange
// succeeded; needBody additionally requires a decoded body.
//
// Any adapter error, including a body that could not be decoded, is a
// communication error. A non-2xx status, or a missing required body, is an
// unexpected server response.
func remoteFailure[B any](resp models.Response[B], err error, needBody bool) (string, bool) {
	switch {
	case err != nil:
		return app.CommunicationError(err), true
	case !resp.Successful():
		return app.MsgUnexpectedServerResponse, true
	case needBody && !resp.HasBody():
		return app.MsgUnexpectedServerResponse, true
	}

	return "", false
}
