package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-stock-keeper/internal/logger"
	"github.com/MKhiriev/go-stock-keeper/models"
)

type localProductRepository struct {
	*DB
	logger *logger.Logger
}

func NewLocalProductRepository(db *DB, logger *logger.Logger) LocalProductRepository {
	return &localProductRepository{
		DB:     db,
		logger: logger,
	}
}

func (l *localProductRepository) log(ctx context.Context) *logger.Logger {
	return logger.FromContextOr(ctx, l.logger)
}

func (l *localProductRepository) FindAll(ctx context.Context) ([]models.Product, error) {
	log := l.log(ctx)

	query, args, err := buildLocalFindAllQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := l.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "localProductRepository.FindAll").
			Msg("failed to execute query for getting all products")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	products, err := scanProducts(rows)
	if err != nil {
		log.Err(err).
			Str("func", "localProductRepository.FindAll").
			Msg("failed to scan products")
		return nil, err
	}

	return products, nil
}

func (l *localProductRepository) FindByID(ctx context.Context, id int64) (models.Product, error) {
	log := l.log(ctx)

	query, args, err := buildLocalFindByIDQuery(id)
	if err != nil {
		return models.Product{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	product, err := scanProduct(l.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Product{}, fmt.Errorf("%w: id=%d", ErrProductNotFound, id)
	}
	if err != nil {
		log.Err(err).
			Str("func", "localProductRepository.FindByID").
			Int64("id", id).
			Msg("failed to scan product row")
		return models.Product{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return product, nil
}

func (l *localProductRepository) Upsert(ctx context.Context, product models.Product) (int64, error) {
	id, err := upsertProduct(ctx, l.DB.DB, product)
	if err != nil {
		l.log(ctx).Err(err).
			Str("func", "localProductRepository.Upsert").
			Int64("id", product.ID).
			Msg("failed to upsert product")
		return 0, err
	}

	return id, nil
}

func (l *localProductRepository) UpsertAll(ctx context.Context, products []models.Product) error {
	log := l.log(ctx)

	tx, err := l.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "localProductRepository.UpsertAll").
			Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	for i, product := range products {
		if _, err = upsertProduct(ctx, tx, product); err != nil {
			log.Err(err).
				Str("func", "localProductRepository.UpsertAll").
				Int("iteration", i).
				Int64("id", product.ID).
				Msg("failed to upsert product")
			return err
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).
			Str("func", "localProductRepository.UpsertAll").
			Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (l *localProductRepository) Delete(ctx context.Context, product models.Product) error {
	query, args, err := buildLocalDeleteQuery(product.ID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = l.DB.ExecContext(ctx, query, args...); err != nil {
		l.log(ctx).Err(err).
			Str("func", "localProductRepository.Delete").
			Int64("id", product.ID).
			Msg("failed to delete product")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// UpdateInPlace replaces the row with the product's id. A product that is not
// cached yet is inserted, so the cache always ends up holding the given row.
func (l *localProductRepository) UpdateInPlace(ctx context.Context, product models.Product) error {
	log := l.log(ctx)

	query, args, err := buildLocalUpdateQuery(product)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := l.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "localProductRepository.UpdateInPlace").
			Int64("id", product.ID).
			Msg("failed to update product")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected > 0 {
		return nil
	}

	log.Debug().
		Str("func", "localProductRepository.UpdateInPlace").
		Int64("id", product.ID).
		Msg("product not cached yet, inserting")

	if _, err = upsertProduct(ctx, l.DB.DB, product); err != nil {
		return err
	}

	return nil
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func upsertProduct(ctx context.Context, db execer, product models.Product) (int64, error) {
	query, args, err := buildLocalUpsertQuery(product)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if product.ID != 0 {
		return product.ID, nil
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrProductNotSaved, err)
	}

	return id, nil
}
