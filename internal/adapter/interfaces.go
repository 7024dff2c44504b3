// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client's transport to the remote product
// service.
//
// Every method returns the raw outcome of one exchange as a
// [models.Response]: the status code and, when the server sent one, the
// decoded body. A returned error means no usable response was obtained at all
// (timeout, refused connection, reset, undecodable body). Non-2xx statuses are
// not errors at this layer; mapHTTPError classifies them into the sentinel
// values in errors.go for logging.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-stock-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/product_adapter_mock.go -package=mock

// ProductAdapter talks to the remote product service.
type ProductAdapter interface {
	// List fetches the full authoritative product collection.
	List(ctx context.Context) (models.Response[[]models.Product], error)

	// Create sends a new product and returns the server's copy with its id.
	Create(ctx context.Context, product models.Product) (models.Response[models.Product], error)

	// Update replaces the product with the given id and returns the server's
	// copy.
	Update(ctx context.Context, id int64, product models.Product) (models.Response[models.Product], error)

	// Delete removes the product with the given id. The server answers with
	// an empty body.
	Delete(ctx context.Context, id int64) (models.Response[models.Unit], error)
}
