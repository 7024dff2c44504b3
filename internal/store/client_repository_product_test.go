package store

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-stock-keeper/internal/config"
	"github.com/MKhiriev/go-stock-keeper/internal/logger"
	"github.com/MKhiriev/go-stock-keeper/models"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

var productRowColumns = []string{"id", "name", "price", "quantity"}

func newTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

func newTestLocalRepo(t *testing.T) (LocalProductRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newTestDB(t)
	return NewLocalProductRepository(&DB{DB: db, dialect: dialectSQLite, logger: logger.Nop()}, logger.Nop()), mock
}

// newSQLiteRepo opens a real migrated sqlite file in a temp dir.
func newSQLiteRepo(t testing.TB) LocalProductRepository {
	t.Helper()
	cfg := config.ClientDB{DSN: filepath.Join(t.TempDir(), "nested", "stock.db")}

	db, err := NewConnectSQLite(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.Migrate())

	return NewLocalProductRepository(db, logger.Nop())
}

// ── sqlmock ─────────────────────────────────────────────────────────────────

func TestLocalProductRepository_FindAll(t *testing.T) {
	repo, mock := newTestLocalRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, price, quantity FROM products ORDER BY id")).
		WillReturnRows(sqlmock.NewRows(productRowColumns).
			AddRow(int64(1), "Cake", "3.50", int64(7)).
			AddRow(int64(2), "Tea", "1.20", int64(0)))

	products, err := repo.FindAll(testContext())

	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, int64(1), products[0].ID)
	assert.True(t, decimal.RequireFromString("3.5").Equal(products[0].Price))
	assert.Equal(t, "Tea", products[1].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLocalProductRepository_FindAll_QueryError(t *testing.T) {
	repo, mock := newTestLocalRepo(t)

	mock.ExpectQuery("SELECT").WillReturnError(errors.New("disk I/O error"))

	products, err := repo.FindAll(testContext())

	assert.Nil(t, products)
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestLocalProductRepository_FindAll_ScanError(t *testing.T) {
	repo, mock := newTestLocalRepo(t)

	mock.ExpectQuery("SELECT").
		WillReturnRows(sqlmock.NewRows(productRowColumns).AddRow("not-an-id", "Cake", "3.50", int64(7)))

	_, err := repo.FindAll(testContext())

	assert.ErrorIs(t, err, ErrScanningRow)
}

func TestLocalProductRepository_FindByID_NotFound(t *testing.T) {
	repo, mock := newTestLocalRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM products WHERE id = ?")).
		WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows(productRowColumns))

	_, err := repo.FindByID(testContext(), 9)

	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestLocalProductRepository_Upsert_NewProductReturnsRowID(t *testing.T) {
	repo, mock := newTestLocalRepo(t)
	p := models.Product{Name: "Cake", Price: decimal.RequireFromString("3.50"), Quantity: 7}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO products (name,price,quantity)")).
		WithArgs("Cake", p.Price, 7).
		WillReturnResult(sqlmock.NewResult(42, 1))

	id, err := repo.Upsert(testContext(), p)

	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLocalProductRepository_Upsert_KnownIDKeepsID(t *testing.T) {
	repo, mock := newTestLocalRepo(t)
	p := models.Product{ID: 5, Name: "Cake", Price: decimal.RequireFromString("3.50"), Quantity: 7}

	mock.ExpectExec(regexp.QuoteMeta("ON CONFLICT(id) DO UPDATE")).
		WithArgs(int64(5), "Cake", p.Price, 7).
		WillReturnResult(sqlmock.NewResult(0, 1))

	id, err := repo.Upsert(testContext(), p)

	require.NoError(t, err)
	assert.Equal(t, int64(5), id)
}

func TestLocalProductRepository_UpsertAll_RollsBackOnError(t *testing.T) {
	repo, mock := newTestLocalRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO products").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO products").WillReturnError(errors.New("constraint failed"))
	mock.ExpectRollback()

	err := repo.UpsertAll(testContext(), []models.Product{
		{ID: 1, Name: "Cake"},
		{ID: 2, Name: ""},
	})

	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLocalProductRepository_UpsertAll_Commits(t *testing.T) {
	repo, mock := newTestLocalRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO products").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO products").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.UpsertAll(testContext(), []models.Product{{ID: 1, Name: "Cake"}, {ID: 2, Name: "Tea"}})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLocalProductRepository_Delete(t *testing.T) {
	repo, mock := newTestLocalRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM products WHERE id = ?")).
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(testContext(), models.Product{ID: 3}))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLocalProductRepository_UpdateInPlace_InsertsWhenMissing(t *testing.T) {
	repo, mock := newTestLocalRepo(t)
	p := models.Product{ID: 8, Name: "Cake", Quantity: 1}

	mock.ExpectExec(regexp.QuoteMeta("UPDATE products SET")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("ON CONFLICT(id) DO UPDATE")).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.UpdateInPlace(testContext(), p))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLocalProductRepository_LogsThroughInjectedLogger(t *testing.T) {
	db, mock := newTestDB(t)
	var buf bytes.Buffer
	repo := NewLocalProductRepository(&DB{DB: db, dialect: dialectSQLite, logger: logger.Nop()},
		&logger.Logger{Logger: zerolog.New(&buf)})

	mock.ExpectQuery("SELECT").WillReturnError(errors.New("disk I/O error"))

	_, err := repo.FindAll(context.Background())

	require.ErrorIs(t, err, ErrExecutingQuery)
	assert.Contains(t, buf.String(), "localProductRepository.FindAll")
	assert.Contains(t, buf.String(), "disk I/O error")
}

// ── real sqlite ─────────────────────────────────────────────────────────────

func TestLocalProductRepository_SQLiteRoundTrip(t *testing.T) {
	repo := newSQLiteRepo(t)
	ctx := testContext()

	id, err := repo.Upsert(ctx, models.Product{Name: "Cake", Price: decimal.RequireFromString("3.50"), Quantity: 7})
	require.NoError(t, err)
	require.NotZero(t, id)

	got, err := repo.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Cake", got.Name)
	assert.Equal(t, "3.50", got.Price.StringFixed(2))

	got.Quantity = 9
	require.NoError(t, repo.UpdateInPlace(ctx, got))

	again, err := repo.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 9, again.Quantity)

	require.NoError(t, repo.Delete(ctx, again))
	_, err = repo.FindByID(ctx, id)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestLocalProductRepository_UpsertAllKeepsUnlistedRows(t *testing.T) {
	repo := newSQLiteRepo(t)
	ctx := testContext()

	require.NoError(t, repo.UpsertAll(ctx, []models.Product{{ID: 1, Name: "Cake"}, {ID: 2, Name: "Tea"}}))
	require.NoError(t, repo.UpsertAll(ctx, []models.Product{{ID: 2, Name: "Green tea"}, {ID: 3, Name: "Milk"}}))

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Cake", all[0].Name)
	assert.Equal(t, "Green tea", all[1].Name)
	assert.Equal(t, "Milk", all[2].Name)
}

func productGen() *rapid.Generator[models.Product] {
	return rapid.Custom(func(t *rapid.T) models.Product {
		return models.Product{
			ID:       rapid.Int64Range(1, 20).Draw(t, "id"),
			Name:     rapid.StringMatching(`[A-Za-z ]{1,12}`).Draw(t, "name"),
			Price:    decimal.New(rapid.Int64Range(0, 100000).Draw(t, "cents"), -2),
			Quantity: rapid.IntRange(0, 1000).Draw(t, "quantity"),
		}
	})
}

// Writing the same rows twice leaves the cache identical to writing them once.
func TestLocalProductRepository_UpsertIsIdempotent(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		repo := newSQLiteRepo(t)
		ctx := testContext()
		batch := rapid.SliceOf(productGen()).Draw(rt, "batch")

		require.NoError(rt, repo.UpsertAll(ctx, batch))
		once, err := repo.FindAll(ctx)
		require.NoError(rt, err)

		require.NoError(rt, repo.UpsertAll(ctx, batch))
		twice, err := repo.FindAll(ctx)
		require.NoError(rt, err)

		require.Equal(rt, len(once), len(twice))
		for i := range once {
			assert.Equal(rt, once[i].ID, twice[i].ID)
			assert.Equal(rt, once[i].Name, twice[i].Name)
			assert.True(rt, once[i].Price.Equal(twice[i].Price))
			assert.Equal(rt, once[i].Quantity, twice[i].Quantity)
		}
	})
}
