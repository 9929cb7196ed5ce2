package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"telegram-gift-certificates/internal/domain"
	"telegram-gift-certificates/internal/domain/model"
	"telegram-gift-certificates/internal/domain/ports/repository"
)

// Ensure implementation satisfies the interface.
var _ repository.CatalogRepository = (*catalogRepo)(nil)

type catalogRepo struct {
	pool *pgxpool.Pool
}

func NewCatalogRepo(pool *pgxpool.Pool) repository.CatalogRepository {
	return &catalogRepo{pool: pool}
}

const itemColumns = `id, number, name, english_name, price_rubles, price_euros, russian_url, english_url, available`

func scanItem(row pgx.Row) (*model.Item, error) {
	var it model.Item
	err := row.Scan(
		&it.ID, &it.Number, &it.Name, &it.EnglishName,
		&it.PriceRubles, &it.PriceEuros, &it.RussianURL, &it.EnglishURL, &it.Available,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, domain.ErrReadDatabaseRow
	}
	return &it, nil
}

func (r *catalogRepo) ListAvailable(ctx context.Context) ([]*model.Item, error) {
	const q = `
SELECT ` + itemColumns + `
  FROM items
 WHERE available = TRUE
 ORDER BY number;
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*model.Item
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *catalogRepo) FindByNumber(ctx context.Context, number int64) (*model.Item, error) {
	const q = `
SELECT ` + itemColumns + `
  FROM items
 WHERE number = $1 AND available = TRUE;
`
	return scanItem(r.pool.QueryRow(ctx, q, number))
}
