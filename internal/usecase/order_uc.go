package usecase

import (
	"context"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"

	"telegram-gift-certificates/internal/domain/model"
	"telegram-gift-certificates/internal/domain/ports/repository"
)

// OrderUseCase turns a finished checkout draft into a stored order.
type OrderUseCase struct {
	orders  repository.OrderRepository
	catalog repository.CatalogRepository
	log     *zerolog.Logger
}

// NewOrderUseCase constructs an OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository, catalog repository.CatalogRepository, log *zerolog.Logger) *OrderUseCase {
	l := log.With().Str("component", "order_uc").Logger()
	return &OrderUseCase{orders: orders, catalog: catalog, log: &l}
}

// Create validates the draft's item reference and persists the order.
// The item lookup error passes through unchanged, so an unavailable
// item surfaces as domain.ErrNotFound to the caller.
func (uc *OrderUseCase) Create(ctx context.Context, draft model.OrderDraft) error {
	if _, err := uc.catalog.FindByNumber(ctx, draft.ItemID); err != nil {
		return err
	}

	now := time.Now()
	order := &model.Order{
		ID:               ulid.Make().String(),
		ChatID:           draft.ChatID,
		Username:         draft.Username,
		Language:         draft.Language,
		CustomerEmail:    draft.CustomerEmail,
		CustomerName:     draft.CustomerName,
		CustomerPhone:    draft.CustomerPhone,
		ItemID:           draft.ItemID,
		RecipientName:    draft.RecipientName,
		RecipientContact: draft.RecipientContact,
		ViaEmail:         draft.ViaEmail,
		DeliveryMethod:   draft.DeliveryMethod,
		HasProof:         len(draft.ProofImage) > 0,
		CreatedAt:        now,
	}
	if err := uc.orders.Save(ctx, order, draft.ProofImage); err != nil {
		return err
	}

	fulfillment := "gift_box"
	if order.ViaEmail {
		fulfillment = "email"
	}
	uc.log.Info().Str("order_id", order.ID).Int64("chat_id", order.ChatID).
		Str("fulfillment", fulfillment).Msg("order created")
	return nil
}

// ListRecent exposes stored orders to the operator API.
func (uc *OrderUseCase) ListRecent(ctx context.Context, limit int) ([]*model.Order, error) {
	return uc.orders.ListRecent(ctx, limit)
}
