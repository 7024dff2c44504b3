package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-stock-keeper/models"
)

const productsTable = "products"

var productColumns = []string{"id", "name", "price", "quantity"}

var (
	psql   = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	sqlite = sq.StatementBuilder.PlaceholderFormat(sq.Question)
)

// ── server (postgres) ───────────────────────────────────────────────────────

func buildFindAllProductsQuery() (string, []any, error) {
	return psql.Select(productColumns...).
		From(productsTable).
		OrderBy("id").
		ToSql()
}

func buildCreateProductQuery(p models.Product) (string, []any, error) {
	return psql.Insert(productsTable).
		Columns("name", "price", "quantity").
		Values(p.Name, p.Price, p.Quantity).
		Suffix("RETURNING id, name, price, quantity").
		ToSql()
}

func buildUpdateProductQuery(p models.Product) (string, []any, error) {
	return psql.Update(productsTable).
		Set("name", p.Name).
		Set("price", p.Price).
		Set("quantity", p.Quantity).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": p.ID}).
		Suffix("RETURNING id, name, price, quantity").
		ToSql()
}

func buildDeleteProductQuery(id int64) (string, []any, error) {
	return psql.Delete(productsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

// ── client (sqlite) ─────────────────────────────────────────────────────────

func buildLocalFindAllQuery() (string, []any, error) {
	return sqlite.Select(productColumns...).
		From(productsTable).
		OrderBy("id").
		ToSql()
}

func buildLocalFindByIDQuery(id int64) (string, []any, error) {
	return sqlite.Select(productColumns...).
		From(productsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

// buildLocalUpsertQuery overwrites the row with the same id. A zero id lets
// sqlite assign the next rowid.
func buildLocalUpsertQuery(p models.Product) (string, []any, error) {
	if p.ID == 0 {
		return sqlite.Insert(productsTable).
			Columns("name", "price", "quantity").
			Values(p.Name, p.Price, p.Quantity).
			ToSql()
	}

	return sqlite.Insert(productsTable).
		Columns(productColumns...).
		Values(p.ID, p.Name, p.Price, p.Quantity).
		Suffix("ON CONFLICT(id) DO UPDATE SET name = excluded.name, price = excluded.price, quantity = excluded.quantity").
		ToSql()
}

func buildLocalUpdateQuery(p models.Product) (string, []any, error) {
	return sqlite.Update(productsTable).
		Set("name", p.Name).
		Set("price", p.Price).
		Set("quantity", p.Quantity).
		Where(sq.Eq{"id": p.ID}).
		ToSql()
}

func buildLocalDeleteQuery(id int64) (string, []any, error) {
	return sqlite.Delete(productsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}
