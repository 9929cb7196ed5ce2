package repository

import (
	"context"

	"telegram-gift-certificates/internal/domain/model"
)

// ContentRepository is the port for the operator-maintained static
// text (policy links, payment details, pickup point).
type ContentRepository interface {
	Get(ctx context.Context) (*model.BotContent, error)
}
