package dialog

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"telegram-gift-certificates/internal/domain"
	"telegram-gift-certificates/internal/domain/model"
)

func TestHandlersCoverAllStates(t *testing.T) {
	log := zerolog.Nop()
	machine := NewMachine(&fakeSender{}, newFakeStore(), keyTranslator{}, &log)
	handlers := machine.Handlers()

	if len(handlers) != len(AllStates) {
		t.Fatalf("handler table has %d entries, want %d", len(handlers), len(AllStates))
	}
	for _, state := range AllStates {
		if handlers[state] == nil {
			t.Errorf("no handler registered for %s", state)
		}
	}
}

func TestUnknownStateAborts(t *testing.T) {
	d, _, _, sessions := newTestDispatcher()

	// A session referencing a state that no longer exists.
	if err := sessions.Save(context.Background(), testChat, &model.Session{State: "removed_state"}); err != nil {
		t.Fatal(err)
	}

	err := d.Handle(context.Background(), text("hello"))
	if !errors.Is(err, domain.ErrUnknownState) {
		t.Fatalf("Handle = %v, want ErrUnknownState", err)
	}
	// The stored session is untouched.
	if got := sessions.state(testChat); got != "removed_state" {
		t.Errorf("session state changed to %q", got)
	}
}

func TestHandlerErrorSkipsPersist(t *testing.T) {
	d, sender, _, sessions := newTestDispatcher()

	drive(t, d, sessions, command("/start"), StateSelectingLanguage)

	sender.sendErr = errors.New("telegram is down")
	if err := d.Handle(context.Background(), callback("russian")); err == nil {
		t.Fatal("Handle succeeded despite failing send")
	}
	// Still awaiting the language pick; resending works.
	if got := sessions.state(testChat); got != string(StateSelectingLanguage) {
		t.Errorf("state = %q after failed send", got)
	}

	sender.sendErr = nil
	drive(t, d, sessions, callback("russian"), StateMainMenu)
}

func TestChatLocksSerializePerChat(t *testing.T) {
	locks := newChatLocks()

	var mu sync.Mutex
	order := []int{}

	release := locks.Lock(1)
	done := make(chan struct{})
	go func() {
		r := locks.Lock(1)
		mu.Lock()
		order = append(order, 2)
		mu.Unlock()
		r()
		close(done)
	}()

	mu.Lock()
	order = append(order, 1)
	mu.Unlock()
	release()
	<-done

	if order[0] != 1 || order[1] != 2 {
		t.Errorf("lock ordering = %v", order)
	}

	// Entry is reclaimed once nobody holds it.
	locks.mu.Lock()
	defer locks.mu.Unlock()
	if len(locks.entries) != 0 {
		t.Errorf("lock map still holds %d entries", len(locks.entries))
	}
}

func TestDropRemovesSession(t *testing.T) {
	d, _, _, sessions := newTestDispatcher()
	drive(t, d, sessions, command("/start"), StateSelectingLanguage)

	if err := d.Drop(context.Background(), testChat); err != nil {
		t.Fatal(err)
	}
	if _, err := sessions.Load(context.Background(), testChat); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("session still present after Drop: %v", err)
	}
}
