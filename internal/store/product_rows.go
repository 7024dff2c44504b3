package store

import (
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-stock-keeper/models"
)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (models.Product, error) {
	var p models.Product
	if err := row.Scan(&p.ID, &p.Name, &p.Price, &p.Quantity); err != nil {
		return models.Product{}, err
	}
	return p, nil
}

func scanProducts(rows *sql.Rows) ([]models.Product, error) {
	products := make([]models.Product, 0, 50)

	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return products, nil
}
