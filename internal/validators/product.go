package validators

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-stock-keeper/models"
)

// Field name constants used to restrict validation to a subset of product
// fields.
const (
	// FieldID targets the server-assigned identity; it must be positive.
	FieldID = "id"

	// FieldName targets the product name; it must not be blank.
	FieldName = "name"

	// FieldPrice targets the unit price; it must not be negative.
	FieldPrice = "price"

	// FieldQuantity targets the stock quantity; it must not be negative.
	FieldQuantity = "quantity"
)

// MaxNameLength is the longest product name accepted, in characters.
const MaxNameLength = 255

// ProductValidator implements Validator for models.Product.
type ProductValidator struct{}

// NewProductValidator constructs a new ProductValidator and returns it as
// the Validator interface.
func NewProductValidator() Validator {
	return &ProductValidator{}
}

// Validate checks a models.Product or *models.Product.
//
// Default validated fields (when none specified): Name, Price, Quantity.
// The id is only checked when FieldID is requested explicitly, since new
// products carry none.
func (v *ProductValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Product:
		return v.validateProduct(ctx, value, fields...)
	case *models.Product:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateProduct(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *ProductValidator) validateProduct(_ context.Context, p models.Product, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldPrice, FieldQuantity}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if p.ID <= 0 {
				return ErrInvalidProductID
			}
		case FieldName:
			name := strings.TrimSpace(p.Name)
			if name == "" {
				return ErrEmptyName
			}
			if utf8.RuneCountInString(name) > MaxNameLength {
				return ErrNameTooLong
			}
		case FieldPrice:
			if p.Price.IsNegative() {
				return ErrNegativePrice
			}
		case FieldQuantity:
			if p.Quantity < 0 {
				return ErrNegativeQuantity
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
