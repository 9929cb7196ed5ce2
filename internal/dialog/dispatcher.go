package dialog

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"telegram-gift-certificates/internal/domain"
	"telegram-gift-certificates/internal/domain/model"
	"telegram-gift-certificates/internal/domain/ports/repository"
	"telegram-gift-certificates/internal/infra/logging"
	"telegram-gift-certificates/internal/infra/metrics"
)

// chatLocks serializes event processing per chat while leaving
// different chats fully concurrent. Entries are reference-counted so
// the map does not grow with every chat ever seen.
type chatLocks struct {
	mu      sync.Mutex
	entries map[int64]*chatLockEntry
}

type chatLockEntry struct {
	mu   sync.Mutex
	refs int
}

func newChatLocks() *chatLocks {
	return &chatLocks{entries: make(map[int64]*chatLockEntry)}
}

// Lock blocks until the chat's lock is held and returns the release
// function.
func (c *chatLocks) Lock(chatID int64) func() {
	c.mu.Lock()
	entry, ok := c.entries[chatID]
	if !ok {
		entry = &chatLockEntry{}
		c.entries[chatID] = entry
	}
	entry.refs++
	c.mu.Unlock()

	entry.mu.Lock()
	return func() {
		entry.mu.Unlock()
		c.mu.Lock()
		entry.refs--
		if entry.refs == 0 {
			delete(c.entries, chatID)
		}
		c.mu.Unlock()
	}
}

// Dispatcher routes every inbound event to the handler registered for
// the chat's current state and persists the returned next state.
type Dispatcher struct {
	sessions repository.SessionRepository
	handlers map[State]Handler
	locks    *chatLocks
	log      *zerolog.Logger
}

func NewDispatcher(sessions repository.SessionRepository, machine *Machine, log *zerolog.Logger) *Dispatcher {
	return &Dispatcher{
		sessions: sessions,
		handlers: machine.Handlers(),
		locks:    newChatLocks(),
		log:      log,
	}
}

// Handle processes one event to completion under the chat's lock.
// The session state is persisted only when the handler succeeds, so a
// failed send or store call leaves the stored session untouched and
// the same input can simply be sent again.
func (d *Dispatcher) Handle(ctx context.Context, ev Event) error {
	unlock := d.locks.Lock(ev.ChatID)
	defer unlock()

	ctx = logging.WithChatID(ctx, ev.ChatID)
	log := logging.With(ctx, d.log)

	start := time.Now()
	metrics.ObserveEvent(string(ev.Kind))

	sess, err := d.sessions.Load(ctx, ev.ChatID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("load session: %w", err)
	}
	if sess == nil {
		sess = &model.Session{}
	}

	state := State(sess.State)
	if state == "" || ev.IsStartCommand() {
		state = StateStart
	}
	sess.State = string(state)

	handler, ok := d.handlers[state]
	if !ok {
		// Only possible if a registered state was removed while
		// sessions referencing it persist. Abort this event and keep
		// the stored session as-is.
		metrics.ObserveUnknownState(string(state))
		log.Warn().Str("state", string(state)).Msg("no handler for stored state")
		return fmt.Errorf("%w: %q", domain.ErrUnknownState, state)
	}

	next, err := handler(ctx, ev, sess)
	if err != nil {
		metrics.ObserveHandlerError(string(state))
		log.Error().Err(err).Str("state", string(state)).Msg("handler failed")
		return fmt.Errorf("state %s: %w", state, err)
	}

	metrics.ObserveTransition(string(state), string(next), time.Since(start))

	sess.State = string(next)
	if err := d.sessions.Save(ctx, ev.ChatID, sess); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Drop removes a chat's stored session entirely, for explicit
// data-removal requests.
func (d *Dispatcher) Drop(ctx context.Context, chatID int64) error {
	unlock := d.locks.Lock(chatID)
	defer unlock()
	return d.sessions.Drop(ctx, chatID)
}
