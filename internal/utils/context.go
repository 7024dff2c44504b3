// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP response writing, HTTP client initialization, identifier generation,
// and other common operations.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// ProductIDCtxKey is the key used to store the product identifier parsed
// from the request path. Used together with GetProductIDFromContext for
// type-safe retrieval.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.ProductIDCtxKey, int64(42))
var ProductIDCtxKey = contextKey("productID")

// GetProductIDFromContext retrieves the product identifier from the context.
//
// Returns the product ID of type int64 and an ok flag:
//   - ok == true  - value is found and has the correct int64 type
//   - ok == false - value is missing or has an unexpected type
func GetProductIDFromContext(ctx context.Context) (int64, bool) {
	productID, ok := ctx.Value(ProductIDCtxKey).(int64)
	return productID, ok
}
