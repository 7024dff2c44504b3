package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-stock-keeper/internal/validators"
	"github.com/MKhiriev/go-stock-keeper/models"
)

type ProductValidationService struct {
	inner     ProductService
	validator validators.Validator
}

func NewProductValidationService() ProductServiceWrapper {
	return &ProductValidationService{
		validator: validators.NewProductValidator(),
	}
}

func (v *ProductValidationService) ListProducts(ctx context.Context) ([]models.Product, error) {
	return v.inner.ListProducts(ctx)
}

func (v *ProductValidationService) CreateProduct(ctx context.Context, product models.Product) (models.Product, error) {
	if err := v.validator.Validate(ctx, product); err != nil {
		return models.Product{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.CreateProduct(ctx, product)
}

func (v *ProductValidationService) UpdateProduct(ctx context.Context, id int64, product models.Product) (models.Product, error) {
	if id <= 0 {
		return models.Product{}, ErrInvalidProductID
	}
	// a body id, when present, must agree with the path
	if product.ID != 0 && product.ID != id {
		return models.Product{}, fmt.Errorf("%w: body id %d does not match %d", ErrInvalidDataProvided, product.ID, id)
	}
	if err := v.validator.Validate(ctx, product); err != nil {
		return models.Product{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.UpdateProduct(ctx, id, product)
}

func (v *ProductValidationService) DeleteProduct(ctx context.Context, id int64) error {
	if err := v.validator.Validate(ctx, models.Product{ID: id}, validators.FieldID); err != nil {
		return ErrInvalidProductID
	}

	return v.inner.DeleteProduct(ctx, id)
}

func (v *ProductValidationService) Wrap(wrapper ProductService) ProductService {
	v.inner = wrapper
	return v
}
