package repository

import (
	"context"

	"telegram-gift-certificates/internal/domain/model"
)

// TicketRepository is the port for support tickets.
type TicketRepository interface {
	Save(ctx context.Context, ticket *model.SupportTicket) error
	ListRecent(ctx context.Context, limit int) ([]*model.SupportTicket, error)
}
