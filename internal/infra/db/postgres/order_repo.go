package postgres

import (
	"context"

	"github.com/jackc/pgx/v4/pgxpool"

	"telegram-gift-certificates/internal/domain"
	"telegram-gift-certificates/internal/domain/model"
	"telegram-gift-certificates/internal/domain/ports/repository"
	"telegram-gift-certificates/internal/infra/metrics"
)

var _ repository.OrderRepository = (*orderRepo)(nil)

type orderRepo struct {
	pool *pgxpool.Pool
}

func NewOrderRepo(pool *pgxpool.Pool) repository.OrderRepository {
	return &orderRepo{pool: pool}
}

func (r *orderRepo) Save(ctx context.Context, order *model.Order, proof []byte) error {
	const q = `
INSERT INTO orders (id, chat_id, username, language, customer_email, customer_name, customer_phone,
                    item_id, recipient_name, recipient_contact, via_email, delivery_method, proof_image, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
`
	_, err := r.pool.Exec(ctx, q,
		order.ID, order.ChatID, order.Username, string(order.Language),
		order.CustomerEmail, order.CustomerName, order.CustomerPhone,
		order.ItemID, order.RecipientName, order.RecipientContact,
		order.ViaEmail, order.DeliveryMethod, proof, order.CreatedAt,
	)
	if err != nil {
		return err
	}
	fulfillment := "gift_box"
	if order.ViaEmail {
		fulfillment = "email"
	}
	metrics.ObserveOrderCreated(fulfillment)
	return nil
}

func (r *orderRepo) ListRecent(ctx context.Context, limit int) ([]*model.Order, error) {
	const q = `
SELECT id, chat_id, username, language, customer_email, customer_name, customer_phone,
       item_id, recipient_name, recipient_contact, via_email, delivery_method,
       proof_image IS NOT NULL, created_at
  FROM orders
 ORDER BY created_at DESC
 LIMIT $1;
`
	rows, err := r.pool.Query(ctx, q, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []*model.Order
	for rows.Next() {
		var o model.Order
		var lang string
		err := rows.Scan(
			&o.ID, &o.ChatID, &o.Username, &lang,
			&o.CustomerEmail, &o.CustomerName, &o.CustomerPhone,
			&o.ItemID, &o.RecipientName, &o.RecipientContact,
			&o.ViaEmail, &o.DeliveryMethod, &o.HasProof, &o.CreatedAt,
		)
		if err != nil {
			return nil, domain.ErrReadDatabaseRow
		}
		o.Language = model.Language(lang)
		orders = append(orders, &o)
	}
	return orders, rows.Err()
}
