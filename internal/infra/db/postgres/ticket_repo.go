package postgres

import (
	"context"

	"github.com/jackc/pgx/v4/pgxpool"

	"telegram-gift-certificates/internal/domain"
	"telegram-gift-certificates/internal/domain/model"
	"telegram-gift-certificates/internal/domain/ports/repository"
	"telegram-gift-certificates/internal/infra/metrics"
)

var _ repository.TicketRepository = (*ticketRepo)(nil)

type ticketRepo struct {
	pool *pgxpool.Pool
}

func NewTicketRepo(pool *pgxpool.Pool) repository.TicketRepository {
	return &ticketRepo{pool: pool}
}

func (r *ticketRepo) Save(ctx context.Context, ticket *model.SupportTicket) error {
	const q = `
INSERT INTO support_tickets (id, chat_id, username, language, reason, created_at)
VALUES ($1, $2, $3, $4, $5, $6);
`
	_, err := r.pool.Exec(ctx, q,
		ticket.ID, ticket.ChatID, ticket.Username, string(ticket.Language), ticket.Reason, ticket.CreatedAt,
	)
	if err != nil {
		return err
	}
	metrics.ObserveTicket(ticket.Reason)
	return nil
}

func (r *ticketRepo) ListRecent(ctx context.Context, limit int) ([]*model.SupportTicket, error) {
	const q = `
SELECT id, chat_id, username, language, reason, created_at
  FROM support_tickets
 ORDER BY created_at DESC
 LIMIT $1;
`
	rows, err := r.pool.Query(ctx, q, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tickets []*model.SupportTicket
	for rows.Next() {
		var t model.SupportTicket
		var lang string
		if err := rows.Scan(&t.ID, &t.ChatID, &t.Username, &lang, &t.Reason, &t.CreatedAt); err != nil {
			return nil, domain.ErrReadDatabaseRow
		}
		t.Language = model.Language(lang)
		tickets = append(tickets, &t)
	}
	return tickets, rows.Err()
}
