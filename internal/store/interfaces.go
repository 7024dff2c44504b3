package store

import (
	"context"

	"github.com/MKhiriev/go-stock-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ProductRepository is the authoritative product table of the remote service.
type ProductRepository interface {
	// FindAll returns every product ordered by id.
	FindAll(ctx context.Context) ([]models.Product, error)
	// Create inserts a product and returns it with the assigned id.
	Create(ctx context.Context, product models.Product) (models.Product, error)
	// Update replaces every field of the product with the given id and
	// returns the stored row. Returns [ErrProductNotFound] for unknown ids.
	Update(ctx context.Context, product models.Product) (models.Product, error)
	// Delete removes the product. Returns [ErrProductNotFound] for unknown ids.
	Delete(ctx context.Context, id int64) error
}

// ErrorClassificator decides whether a failed database operation may be
// retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
