package store

import (
	"context"

	"github.com/MKhiriev/go-stock-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalProductRepository is the client's local product cache.
//
// Writes are keyed by product id: a row with the same id is overwritten,
// a new id is inserted.
type LocalProductRepository interface {
	FindAll(ctx context.Context) ([]models.Product, error)
	FindByID(ctx context.Context, id int64) (models.Product, error)
	// Upsert inserts or overwrites a single product and returns its id.
	// A product with a zero id gets a fresh local id.
	Upsert(ctx context.Context, product models.Product) (int64, error)
	// UpsertAll writes every product in a single transaction.
	UpsertAll(ctx context.Context, products []models.Product) error
	Delete(ctx context.Context, product models.Product) error
	// UpdateInPlace fully replaces the row with the product's id.
	UpdateInPlace(ctx context.Context, product models.Product) error
}
