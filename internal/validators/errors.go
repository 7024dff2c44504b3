package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidProductID = errors.New("invalid product id")
	ErrEmptyName        = errors.New("name is required")
	ErrNameTooLong      = errors.New("name is too long")
	ErrNegativePrice    = errors.New("price must not be negative")
	ErrNegativeQuantity = errors.New("quantity must not be negative")
)
