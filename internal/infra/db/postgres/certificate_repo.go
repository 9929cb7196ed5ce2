package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"telegram-gift-certificates/internal/domain"
	"telegram-gift-certificates/internal/domain/model"
	"telegram-gift-certificates/internal/domain/ports/repository"
)

var _ repository.CertificateRepository = (*certificateRepo)(nil)

type certificateRepo struct {
	pool *pgxpool.Pool
}

func NewCertificateRepo(pool *pgxpool.Pool) repository.CertificateRepository {
	return &certificateRepo{pool: pool}
}

func (r *certificateRepo) FindByCode(ctx context.Context, code string) (*model.Certificate, error) {
	const q = `
SELECT id, code, item_id, redeemed, redeemed_chat_id, redeemed_at, created_at, expires_at
  FROM certificates
 WHERE code = $1;
`
	var c model.Certificate
	var redeemedChatID *int64
	err := r.pool.QueryRow(ctx, q, code).Scan(
		&c.ID, &c.Code, &c.ItemID, &c.Redeemed, &redeemedChatID, &c.RedeemedAt, &c.CreatedAt, &c.ExpiresAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, domain.ErrReadDatabaseRow
	}
	if redeemedChatID != nil {
		c.RedeemedChatID = *redeemedChatID
	}
	return &c, nil
}

// MarkRedeemed flips the redeemed flag. A partial unique index on
// (code) WHERE redeemed keeps double redemption out even without the
// Redis lock; a violation maps to domain.ErrCodeAlreadyUsed.
func (r *certificateRepo) MarkRedeemed(ctx context.Context, id string, chatID int64) error {
	const q = `
UPDATE certificates
   SET redeemed = TRUE, redeemed_chat_id = $2, redeemed_at = $3
 WHERE id = $1 AND redeemed = FALSE;
`
	tag, err := r.pool.Exec(ctx, q, id, chatID, time.Now())
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrCodeAlreadyUsed
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCodeAlreadyUsed
	}
	return nil
}
