// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-stock-keeper/internal/app"
)

var (
	errEmptyName       = errors.New("name is required")
	errInvalidPrice    = errors.New("price must be a non-negative number")
	errInvalidQuantity = errors.New("quantity must be a non-negative whole number")
	errNothingToCopy   = errors.New("nothing to copy")
)

// serverUnavailableHint explains communication failures that are almost
// always a missing network or a stopped server. Other messages get no hint.
func serverUnavailableHint(message string) string {
	if !strings.HasPrefix(message, app.MsgCommunicationError) {
		return ""
	}

	s := strings.ToLower(message)
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "No network, or the server is unavailable"
	}

	return ""
}
