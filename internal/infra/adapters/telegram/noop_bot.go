package telegram

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"telegram-gift-certificates/internal/dialog"
)

var _ dialog.Sender = (*NoopBotAdapter)(nil)

// NoopBotAdapter implements dialog.Sender for local/dev testing.
// It logs replies instead of calling the Telegram API.
type NoopBotAdapter struct {
	log *zerolog.Logger
}

// NewNoopBotAdapter constructs the noop sender.
func NewNoopBotAdapter(log *zerolog.Logger) *NoopBotAdapter {
	l := log.With().Str("component", "noop-telegram").Logger()
	return &NoopBotAdapter{log: &l}
}

func (b *NoopBotAdapter) SendMessage(ctx context.Context, chatID int64, text string, rows [][]dialog.Button, markdown bool) error {
	select {
	case <-time.After(100 * time.Millisecond):
	case <-ctx.Done():
		return ctx.Err()
	}
	b.log.Info().Int64("chat_id", chatID).Int("button_rows", len(rows)).Msg(text)
	return nil
}

func (b *NoopBotAdapter) EditMessage(ctx context.Context, chatID int64, messageID int, text string, rows [][]dialog.Button, markdown bool) error {
	select {
	case <-time.After(100 * time.Millisecond):
	case <-ctx.Done():
		return ctx.Err()
	}
	b.log.Info().Int64("chat_id", chatID).Int("message_id", messageID).Int("button_rows", len(rows)).Msg(text)
	return nil
}

func (b *NoopBotAdapter) DownloadPhoto(ctx context.Context, fileID string) ([]byte, error) {
	b.log.Info().Str("file_id", fileID).Msg("photo download skipped")
	return []byte(fileID), nil
}
