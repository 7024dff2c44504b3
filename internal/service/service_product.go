package service

import (
	"context"

	"github.com/MKhiriev/go-stock-keeper/internal/logger"
	"github.com/MKhiriev/go-stock-keeper/internal/store"
	"github.com/MKhiriev/go-stock-keeper/models"
)

type productService struct {
	productRepository store.ProductRepository

	logger *logger.Logger
}

func NewProductService(productRepository store.ProductRepository, logger *logger.Logger) ProductService {
	return &productService{
		productRepository: productRepository,
		logger:            logger,
	}
}

func (p *productService) ListProducts(ctx context.Context) ([]models.Product, error) {
	products, err := p.productRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []models.Product{}
	}
	return products, nil
}

func (p *productService) CreateProduct(ctx context.Context, product models.Product) (models.Product, error) {
	// the server owns ids
	product.ID = 0
	return p.productRepository.Create(ctx, product)
}

func (p *productService) UpdateProduct(ctx context.Context, id int64, product models.Product) (models.Product, error) {
	return p.productRepository.Update(ctx, product.WithID(id))
}

func (p *productService) DeleteProduct(ctx context.Context, id int64) error {
	return p.productRepository.Delete(ctx, id)
}
