package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"telegram-gift-certificates/internal/domain/model"
	"telegram-gift-certificates/internal/domain/ports/repository"
)

// SupportUseCase records requests to be contacted by an operator.
type SupportUseCase struct {
	tickets repository.TicketRepository
	log     *zerolog.Logger
}

// NewSupportUseCase constructs a SupportUseCase.
func NewSupportUseCase(tickets repository.TicketRepository, log *zerolog.Logger) *SupportUseCase {
	l := log.With().Str("component", "support_uc").Logger()
	return &SupportUseCase{tickets: tickets, log: &l}
}

// Open stores a new ticket. ID and CreatedAt are filled in here.
func (uc *SupportUseCase) Open(ctx context.Context, ticket model.SupportTicket) error {
	ticket.ID = uuid.NewString()
	ticket.CreatedAt = time.Now()
	if err := uc.tickets.Save(ctx, &ticket); err != nil {
		return err
	}
	uc.log.Info().Str("ticket_id", ticket.ID).Int64("chat_id", ticket.ChatID).
		Str("reason", ticket.Reason).Msg("support ticket opened")
	return nil
}

// ListRecent exposes stored tickets to the operator API.
func (uc *SupportUseCase) ListRecent(ctx context.Context, limit int) ([]*model.SupportTicket, error) {
	return uc.tickets.ListRecent(ctx, limit)
}
