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

var _ repository.ContentRepository = (*contentRepo)(nil)

// contentRepo reads the single bot_content row. The row is seeded by
// the initial migration and edited by operators directly.
type contentRepo struct {
	pool *pgxpool.Pool
}

func NewContentRepo(pool *pgxpool.Pool) repository.ContentRepository {
	return &contentRepo{pool: pool}
}

func (r *contentRepo) Get(ctx context.Context) (*model.BotContent, error) {
	const q = `
SELECT russian_policy_url, english_policy_url,
       russian_payment_details, english_payment_details,
       russian_pickup_address, english_pickup_address,
       russian_pickup_hours, english_pickup_hours
  FROM bot_content
 LIMIT 1;
`
	var c model.BotContent
	err := r.pool.QueryRow(ctx, q).Scan(
		&c.RussianPolicyURL, &c.EnglishPolicyURL,
		&c.RussianPaymentDetails, &c.EnglishPaymentDetails,
		&c.RussianPickupAddress, &c.EnglishPickupAddress,
		&c.RussianPickupHours, &c.EnglishPickupHours,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, domain.ErrReadDatabaseRow
	}
	return &c, nil
}
