// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Product is a single stock item.
//
// ID is assigned by the remote service when the product is first created and
// is zero until then. All other fields are opaque payload for the sync layer:
// it only ever reads ID.
type Product struct {
	// ID is the server-assigned identity of the product.
	ID int64 `json:"id"`

	// Name is the human-readable product name shown in the list.
	Name string `json:"name"`

	// Price is the unit price. Stored as a decimal to avoid float rounding.
	Price decimal.Decimal `json:"price"`

	// Quantity is the number of units in stock.
	Quantity int `json:"quantity"`
}

// RecordID returns the server-assigned identity of the product.
func (p Product) RecordID() int64 {
	return p.ID
}

// WithID returns a copy of the product carrying the given id.
func (p Product) WithID(id int64) Product {
	p.ID = id
	return p
}

// String renders the product the way the list screen shows it.
func (p Product) String() string {
	return fmt.Sprintf("%s  x%d  %s", p.Name, p.Quantity, p.Price.StringFixed(2))
}
