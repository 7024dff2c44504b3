package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-stock-keeper/models"
)

// ClientProductService is what the client UI needs from the product sync
// layer. Every method returns immediately; outcomes arrive on the callback
// through the configured [Dispatcher].
type ClientProductService interface {
	// List delivers the cached products, then the refreshed products or a
	// failure message.
	List(ctx context.Context, onResult Callback[[]models.Product])

	// ListStream is List with its deliveries on a channel that is closed
	// once the refresh is over.
	ListStream(ctx context.Context) <-chan Result[[]models.Product]

	// Create stores a new product remotely and then locally.
	Create(ctx context.Context, product models.Product, onResult Callback[models.Product])

	// Update replaces the product with the same id remotely and then locally.
	Update(ctx context.Context, product models.Product, onResult Callback[models.Product])

	// Delete removes the product remotely and then locally.
	Delete(ctx context.Context, product models.Product, onResult Callback[models.Unit])
}

// ClientRefreshJob periodically refreshes the product list in the background.
type ClientRefreshJob interface {
	// Start launches the background refresh goroutine. It refreshes every
	// interval, defaulting to 5 minutes if interval is zero or negative. Any
	// previously running job is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration, onResult Callback[[]models.Product])

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}
