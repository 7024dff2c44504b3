// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-stock-keeper/internal/service"
	"github.com/MKhiriev/go-stock-keeper/models"
)

// Client is what cmd/client runs.
type Client interface {
	// Run shows the product screen and blocks until the user quits. Product
	// operations still in flight finish before it returns.
	Run() error
}

// ProductScreen is the interactive front end driven by [App].
type ProductScreen interface {
	// Run blocks until the screen is closed. onStart is called once the
	// screen accepts deliveries, with the callback background refreshes
	// report to.
	Run(ctx context.Context, onStart func(refresh service.Callback[[]models.Product])) error
}
