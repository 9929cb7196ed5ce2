package repository

import (
	"context"

	"telegram-gift-certificates/internal/domain/model"
)

// OrderRepository is the port for stored orders.
type OrderRepository interface {
	Save(ctx context.Context, order *model.Order, proof []byte) error
	ListRecent(ctx context.Context, limit int) ([]*model.Order, error)
}
