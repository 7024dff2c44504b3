package service

import (
	"github.com/MKhiriev/go-stock-keeper/internal/adapter"
	"github.com/MKhiriev/go-stock-keeper/internal/logger"
	"github.com/MKhiriev/go-stock-keeper/internal/store"
	"github.com/MKhiriev/go-stock-keeper/models"
)

// ProductSyncRepository keeps the client's product cache in step with the
// product server.
type ProductSyncRepository = SyncRepository[models.Product]

var _ ClientProductService = (*ProductSyncRepository)(nil)

// NewProductSyncRepository wires the SQLite product cache and the HTTP product
// adapter into a [ProductSyncRepository].
func NewProductSyncRepository(
	local store.LocalProductRepository,
	remote adapter.ProductAdapter,
	dispatcher Dispatcher,
	log *logger.Logger,
	opts ...SyncRepositoryOption,
) *ProductSyncRepository {
	return NewSyncRepository[models.Product](local, remote, dispatcher, log, opts...)
}
