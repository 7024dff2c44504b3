package service

import (
	"github.com/MKhiriev/go-stock-keeper/internal/adapter"
	"github.com/MKhiriev/go-stock-keeper/internal/logger"
	"github.com/MKhiriev/go-stock-keeper/internal/store"
)

type ClientServices struct {
	Products   *ProductSyncRepository
	RefreshJob ClientRefreshJob
}

func NewClientServices(storages *store.ClientStorages, productAdapter adapter.ProductAdapter, dispatcher Dispatcher, log *logger.Logger) *ClientServices {
	products := NewProductSyncRepository(storages.ProductRepository, productAdapter, dispatcher, log)

	return &ClientServices{
		Products:   products,
		RefreshJob: NewClientRefreshJob(products),
	}
}

// Close stops the refresh job and waits for in-flight product operations.
func (s *ClientServices) Close() {
	s.RefreshJob.Stop()
	s.Products.Close()
}
