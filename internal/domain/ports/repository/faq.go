package repository

import (
	"context"

	"telegram-gift-certificates/internal/domain/model"
)

// FAQRepository is the port for FAQ entries. Only available entries
// are visible through it, ordered by position.
type FAQRepository interface {
	ListAvailable(ctx context.Context) ([]*model.FAQRecord, error)
	// FindByID returns domain.ErrNotFound for unknown or unavailable ids.
	FindByID(ctx context.Context, id int64) (*model.FAQRecord, error)
}
