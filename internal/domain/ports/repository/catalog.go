package repository

import (
	"context"

	"telegram-gift-certificates/internal/domain/model"
)

// CatalogRepository is the port for gift-certificate catalog items.
// Only available items are visible through it.
type CatalogRepository interface {
	ListAvailable(ctx context.Context) ([]*model.Item, error)
	// FindByNumber returns domain.ErrNotFound for unknown or
	// unavailable item numbers.
	FindByNumber(ctx context.Context, number int64) (*model.Item, error)
}
