package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-stock-keeper/internal/logger"
	"github.com/MKhiriev/go-stock-keeper/models"
)

// productRepository is the PostgreSQL-backed implementation of
// [ProductRepository]. It executes all product CRUD operations directly
// against the "products" table using the embedded [*DB] connection.
//
// Every public method prefers the context-scoped logger from
// [logger.FromContextOr] so that all database interactions carry the
// request's trace id, and falls back to the injected one.
type productRepository struct {
	*DB
	logger *logger.Logger
}

// NewProductRepository constructs a [ProductRepository] backed by the
// provided database connection and logger.
func NewProductRepository(db *DB, logger *logger.Logger) ProductRepository {
	return &productRepository{
		DB:     db,
		logger: logger,
	}
}

// FindAll returns every stored product ordered by id. Returns an empty slice
// when the table is empty.
func (p *productRepository) FindAll(ctx context.Context) ([]models.Product, error) {
	log := logger.FromContextOr(ctx, p.logger)

	query, args, err := buildFindAllProductsQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := p.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "productRepository.FindAll").
			Str("classification", p.classify(err).String()).
			Msg("failed to execute query for getting all products")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	products, err := scanProducts(rows)
	if err != nil {
		log.Err(err).
			Str("func", "productRepository.FindAll").
			Msg("failed to scan products")
		return nil, err
	}

	return products, nil
}

// Create inserts the product and returns the stored row with its new id.
// A client-supplied id is ignored.
func (p *productRepository) Create(ctx context.Context, product models.Product) (models.Product, error) {
	log := logger.FromContextOr(ctx, p.logger)

	query, args, err := buildCreateProductQuery(product)
	if err != nil {
		return models.Product{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanProduct(p.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).
			Str("func", "productRepository.Create").
			Str("name", product.Name).
			Str("classification", p.classify(err).String()).
			Msg("failed to insert product")
		return models.Product{}, p.wrapWriteError(err)
	}

	return created, nil
}

// Update replaces name, price and quantity of the product with the same id.
func (p *productRepository) Update(ctx context.Context, product models.Product) (models.Product, error) {
	log := logger.FromContextOr(ctx, p.logger)

	query, args, err := buildUpdateProductQuery(product)
	if err != nil {
		return models.Product{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanProduct(p.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Product{}, fmt.Errorf("%w: id=%d", ErrProductNotFound, product.ID)
	}
	if err != nil {
		log.Err(err).
			Str("func", "productRepository.Update").
			Int64("id", product.ID).
			Str("classification", p.classify(err).String()).
			Msg("failed to update product")
		return models.Product{}, p.wrapWriteError(err)
	}

	return updated, nil
}

// Delete removes the product with the given id.
func (p *productRepository) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOr(ctx, p.logger)

	query, args, err := buildDeleteProductQuery(id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := p.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "productRepository.Delete").
			Int64("id", id).
			Str("classification", p.classify(err).String()).
			Msg("failed to delete product")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: id=%d", ErrProductNotFound, id)
	}

	return nil
}

func (p *productRepository) classify(err error) ErrorClassification {
	if p.errorClassificator == nil {
		return NonRetryable
	}
	return p.errorClassificator.Classify(err)
}

func (p *productRepository) wrapWriteError(err error) error {
	if isConstraintViolation(err) {
		return fmt.Errorf("%w: %w", ErrInvalidProduct, err)
	}
	return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
}
