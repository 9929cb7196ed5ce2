package telegram

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"telegram-gift-certificates/internal/config"
	"telegram-gift-certificates/internal/dialog"
	"telegram-gift-certificates/internal/infra/logging"
	red "telegram-gift-certificates/internal/infra/redis"
	"telegram-gift-certificates/internal/infra/worker"
)

var _ dialog.Sender = (*RealBotAdapter)(nil)

// RealBotAdapter polls Telegram for updates, decodes them into
// dialogue events, and fans them out through the worker pool. It also
// implements the Sender the dialogue core replies through.
type RealBotAdapter struct {
	bot         *tgbotapi.BotAPI
	cfg         *config.BotConfig
	dispatcher  *dialog.Dispatcher
	rateLimiter *red.RateLimiter
	eventsQuota int
	pool        *worker.Pool
	log         *zerolog.Logger

	cancelPolling context.CancelFunc
}

// NewRealBotAdapter connects to the Bot API. The dispatcher may be
// attached after construction: the dialogue machine replies through
// this adapter, so the two reference each other.
func NewRealBotAdapter(cfg *config.Config, dispatcher *dialog.Dispatcher, rateLimiter *red.RateLimiter, log *zerolog.Logger) (*RealBotAdapter, error) {
	bot, err := tgbotapi.NewBotAPI(cfg.Bot.Token)
	if err != nil {
		return nil, err
	}

	l := log.With().Str("component", "telegram").Logger()
	return &RealBotAdapter{
		bot:         bot,
		cfg:         &cfg.Bot,
		dispatcher:  dispatcher,
		rateLimiter: rateLimiter,
		eventsQuota: cfg.RateLimit.EventsPerMinute,
		pool:        worker.NewPool(cfg.Bot.Workers, log),
		log:         &l,
	}, nil
}

// AttachDispatcher sets the dispatcher updates are routed to. Must be
// called before StartPolling when the constructor received nil.
func (r *RealBotAdapter) AttachDispatcher(d *dialog.Dispatcher) {
	r.dispatcher = d
}

// StartPolling blocks until ctx is cancelled or StopPolling is called.
func (r *RealBotAdapter) StartPolling(ctx context.Context) error {
	if r.dispatcher == nil {
		return errors.New("no dispatcher attached")
	}
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := r.bot.GetUpdatesChan(u)

	ctx, cancel := context.WithCancel(ctx)
	r.cancelPolling = cancel

	r.pool.Start(ctx)
	defer r.pool.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case up := <-updates:
			r.acceptUpdate(ctx, up)
		}
	}
}

func (r *RealBotAdapter) StopPolling() {
	if r.cancelPolling != nil {
		r.cancelPolling()
	}
}

func (r *RealBotAdapter) acceptUpdate(ctx context.Context, up tgbotapi.Update) {
	// Callback queries are acknowledged at the boundary so the client
	// spinner stops even if handling fails later.
	if up.CallbackQuery != nil {
		cb := tgbotapi.NewCallback(up.CallbackQuery.ID, "")
		if _, err := r.bot.Request(cb); err != nil {
			r.log.Warn().Err(err).Msg("answer callback failed")
		}
	}

	ev, ok := decodeEvent(up)
	if !ok {
		return
	}

	if r.rateLimiter != nil {
		allowed, err := r.rateLimiter.Allow(ctx, red.ChatEventKey(ev.ChatID), r.eventsQuota, time.Minute)
		if err != nil {
			r.log.Warn().Err(err).Int64("chat_id", ev.ChatID).Msg("rate limiter check failed")
		} else if !allowed {
			r.log.Debug().Int64("chat_id", ev.ChatID).Msg("chat rate limited, update dropped")
			return
		}
	}

	// Each update gets a trace id so log lines from one update can be
	// tied together across the pool and the dialogue machine.
	traceID := uuid.NewString()
	err := r.pool.Submit(func(taskCtx context.Context) error {
		return r.dispatcher.Handle(logging.WithTraceID(taskCtx, traceID), ev)
	})
	if err != nil {
		r.log.Warn().Err(err).Int64("chat_id", ev.ChatID).Msg("update dropped")
	}
}

// decodeEvent maps a raw update onto a dialogue event. Updates that
// carry nothing the dialogue understands are skipped.
func decodeEvent(up tgbotapi.Update) (dialog.Event, bool) {
	if cb := up.CallbackQuery; cb != nil && cb.Message != nil {
		return dialog.Event{
			Kind:      dialog.KindCallback,
			ChatID:    cb.Message.Chat.ID,
			Username:  cb.From.UserName,
			Text:      cb.Data,
			MessageID: cb.Message.MessageID,
		}, true
	}

	msg := up.Message
	if msg == nil {
		return dialog.Event{}, false
	}

	ev := dialog.Event{
		ChatID:    msg.Chat.ID,
		MessageID: msg.MessageID,
	}
	if msg.From != nil {
		ev.Username = msg.From.UserName
	}

	switch {
	case msg.IsCommand():
		ev.Kind = dialog.KindCommand
		ev.Text = "/" + msg.Command()
	case len(msg.Photo) > 0:
		ev.Kind = dialog.KindPhoto
		// Telegram sends sizes smallest first; the last is the original.
		ev.PhotoFileID = msg.Photo[len(msg.Photo)-1].FileID
		ev.Text = msg.Caption
	case msg.Text != "":
		ev.Kind = dialog.KindText
		ev.Text = msg.Text
	default:
		return dialog.Event{}, false
	}
	return ev, true
}

// SendMessage implements dialog.Sender.
func (r *RealBotAdapter) SendMessage(ctx context.Context, chatID int64, text string, rows [][]dialog.Button, markdown bool) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	msg := tgbotapi.NewMessage(chatID, text)
	if markdown {
		msg.ParseMode = tgbotapi.ModeMarkdownV2
	}
	if kb, ok := buildKeyboard(rows); ok {
		msg.ReplyMarkup = kb
	}
	_, err := r.bot.Send(msg)
	return err
}

// EditMessage implements dialog.Sender. Menus triggered by a callback
// replace the message the button lived on instead of stacking a new one.
func (r *RealBotAdapter) EditMessage(ctx context.Context, chatID int64, messageID int, text string, rows [][]dialog.Button, markdown bool) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	edit := tgbotapi.NewEditMessageText(chatID, messageID, text)
	if markdown {
		edit.ParseMode = tgbotapi.ModeMarkdownV2
	}
	if kb, ok := buildKeyboard(rows); ok {
		edit.ReplyMarkup = &kb
	}
	_, err := r.bot.Send(edit)
	return err
}

// DownloadPhoto implements dialog.Sender by fetching the file body
// from Telegram's file endpoint.
func (r *RealBotAdapter) DownloadPhoto(ctx context.Context, fileID string) ([]byte, error) {
	url, err := r.bot.GetFileDirectURL(fileID)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("file download: unexpected status %s", resp.Status)
	}
	return io.ReadAll(resp.Body)
}

func buildKeyboard(rows [][]dialog.Button) (tgbotapi.InlineKeyboardMarkup, bool) {
	kbRows := make([][]tgbotapi.InlineKeyboardButton, 0, len(rows))
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		kbRow := make([]tgbotapi.InlineKeyboardButton, 0, len(row))
		for _, btn := range row {
			switch {
			case btn.URL != "":
				kbRow = append(kbRow, tgbotapi.NewInlineKeyboardButtonURL(btn.Text, btn.URL))
			case btn.Data != "":
				kbRow = append(kbRow, tgbotapi.NewInlineKeyboardButtonData(btn.Text, btn.Data))
			default:
				kbRow = append(kbRow, tgbotapi.NewInlineKeyboardButtonData(btn.Text, strings.ToLower(btn.Text)))
			}
		}
		kbRows = append(kbRows, kbRow)
	}
	if len(kbRows) == 0 {
		return tgbotapi.InlineKeyboardMarkup{}, false
	}
	return tgbotapi.NewInlineKeyboardMarkup(kbRows...), true
}
