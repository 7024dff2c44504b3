package service

import (
	"context"

	"github.com/MKhiriev/go-stock-keeper/models"
)

// ProductService is the server's product catalogue.
type ProductService interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	CreateProduct(ctx context.Context, product models.Product) (models.Product, error)
	// UpdateProduct replaces the product with the given id.
	UpdateProduct(ctx context.Context, id int64, product models.Product) (models.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// ProductServiceWrapper defines middleware composition for ProductService.
// Implementations wrap an existing ProductService to add behavior such as
// validation.
type ProductServiceWrapper interface {
	Wrap(ProductService) ProductService
}
