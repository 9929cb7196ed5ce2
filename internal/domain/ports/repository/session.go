package repository

import (
	"context"

	"telegram-gift-certificates/internal/domain/model"
)

// SessionRepository is the port for per-chat dialogue sessions.
// Load returns domain.ErrNotFound when no session exists for the chat.
type SessionRepository interface {
	Load(ctx context.Context, chatID int64) (*model.Session, error)
	Save(ctx context.Context, chatID int64, session *model.Session) error
	Drop(ctx context.Context, chatID int64) error
}
