package dialog

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"telegram-gift-certificates/internal/domain"
	"telegram-gift-certificates/internal/domain/model"
)

// memSessionRepo is an in-memory SessionRepository.
type memSessionRepo struct {
	mu    sync.Mutex
	store map[int64]*model.Session
}

func newMemSessionRepo() *memSessionRepo {
	return &memSessionRepo{store: make(map[int64]*model.Session)}
}

func (m *memSessionRepo) Load(ctx context.Context, chatID int64) (*model.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.store[chatID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *s
	return &cp, nil
}

func (m *memSessionRepo) Save(ctx context.Context, chatID int64, sess *model.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *sess
	m.store[chatID] = &cp
	return nil
}

func (m *memSessionRepo) Drop(ctx context.Context, chatID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.store, chatID)
	return nil
}

func (m *memSessionRepo) state(chatID int64) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.store[chatID]; ok {
		return s.State
	}
	return ""
}

func newTestDispatcher() (*Dispatcher, *fakeSender, *fakeStore, *memSessionRepo) {
	sender := &fakeSender{}
	store := newFakeStore()
	sessions := newMemSessionRepo()
	log := zerolog.Nop()
	machine := NewMachine(sender, store, keyTranslator{}, &log)
	return NewDispatcher(sessions, machine, &log), sender, store, sessions
}

const testChat = int64(777)

func command(text string) Event {
	return Event{Kind: KindCommand, ChatID: testChat, Username: "buyer", Text: text}
}

func text(text string) Event {
	return Event{Kind: KindText, ChatID: testChat, Username: "buyer", Text: text}
}

func callback(data string) Event {
	return Event{Kind: KindCallback, ChatID: testChat, Username: "buyer", Text: data, MessageID: 42}
}

func photo(fileID string) Event {
	return Event{Kind: KindPhoto, ChatID: testChat, Username: "buyer", PhotoFileID: fileID}
}

func drive(t *testing.T, d *Dispatcher, sessions *memSessionRepo, ev Event, wantState State) {
	t.Helper()
	if err := d.Handle(context.Background(), ev); err != nil {
		t.Fatalf("Handle(%v %q) failed: %v", ev.Kind, ev.Text, err)
	}
	if got := sessions.state(testChat); got != string(wantState) {
		t.Fatalf("after %v %q: state = %q, want %q", ev.Kind, ev.Text, got, wantState)
	}
}

func TestCheckoutByEmail(t *testing.T) {
	d, _, store, sessions := newTestDispatcher()

	drive(t, d, sessions, command("/start"), StateSelectingLanguage)
	drive(t, d, sessions, callback("russian"), StateMainMenu)
	drive(t, d, sessions, callback("impression"), StateSelectingItem)
	drive(t, d, sessions, callback("2"), StateSelectingFulfillment)
	drive(t, d, sessions, callback("email"), StateWaitingEmail)
	drive(t, d, sessions, text("a@b.com"), StateWaitingPolicyAck)
	drive(t, d, sessions, callback("privacy_policy"), StateWaitingFullName)
	drive(t, d, sessions, text("Ivan Petrov"), StateWaitingPhone)
	drive(t, d, sessions, text("89001112233"), StateWaitingPaymentProof)
	drive(t, d, sessions, photo("proof-1"), StateDialogueEnd)

	if len(store.orders) != 1 {
		t.Fatalf("orders created = %d, want 1", len(store.orders))
	}
	order := store.orders[0]
	if !order.ViaEmail {
		t.Error("order not marked as email fulfillment")
	}
	if order.ItemID != 2 {
		t.Errorf("order item = %d, want 2", order.ItemID)
	}
	if order.CustomerPhone != "+79001112233" {
		t.Errorf("order phone = %q, want normalized form", order.CustomerPhone)
	}
	if order.CustomerEmail != "a@b.com" {
		t.Errorf("order email = %q", order.CustomerEmail)
	}
	if order.RecipientName != order.CustomerName {
		t.Errorf("recipient %q should default to customer %q", order.RecipientName, order.CustomerName)
	}
	if order.DeliveryMethod != "" {
		t.Errorf("email order carries delivery method %q", order.DeliveryMethod)
	}
	if string(order.ProofImage) != "img:proof-1" {
		t.Errorf("proof image = %q", order.ProofImage)
	}
}

func TestCheckoutGiftBoxCourier(t *testing.T) {
	d, _, store, sessions := newTestDispatcher()

	drive(t, d, sessions, command("/start"), StateSelectingLanguage)
	drive(t, d, sessions, callback("english"), StateMainMenu)
	drive(t, d, sessions, callback("impression"), StateSelectingItem)
	drive(t, d, sessions, callback("1"), StateSelectingFulfillment)
	drive(t, d, sessions, callback("gift_box"), StateWaitingPolicyAck)
	drive(t, d, sessions, callback("privacy_policy"), StateWaitingFullName)
	drive(t, d, sessions, text("Anna Smith"), StateWaitingPhone)
	drive(t, d, sessions, text("+79001112233"), StateSelectingDelivery)
	drive(t, d, sessions, callback("courier_delivery"), StateWaitingRecipientName)
	drive(t, d, sessions, text("Maria"), StateWaitingRecipientContact)
	drive(t, d, sessions, text("@maria"), StateDialogueEnd)

	if len(store.orders) != 1 {
		t.Fatalf("orders created = %d, want 1", len(store.orders))
	}
	order := store.orders[0]
	if order.ViaEmail {
		t.Error("gift box order marked as email fulfillment")
	}
	if order.DeliveryMethod != "courier_delivery" {
		t.Errorf("delivery method = %q", order.DeliveryMethod)
	}
	if order.RecipientName != "Maria" || order.RecipientContact != "@maria" {
		t.Errorf("recipient = %q/%q", order.RecipientName, order.RecipientContact)
	}
	if order.CustomerEmail != "" {
		t.Errorf("gift box order carries email %q", order.CustomerEmail)
	}
}

func TestCheckoutGiftBoxPickup(t *testing.T) {
	d, _, store, sessions := newTestDispatcher()

	drive(t, d, sessions, command("/start"), StateSelectingLanguage)
	drive(t, d, sessions, callback("russian"), StateMainMenu)
	drive(t, d, sessions, callback("impression"), StateSelectingItem)
	drive(t, d, sessions, callback("3"), StateSelectingFulfillment)
	drive(t, d, sessions, callback("gift_box"), StateWaitingPolicyAck)
	drive(t, d, sessions, callback("privacy_policy"), StateWaitingFullName)
	drive(t, d, sessions, text("Petr Sidorov"), StateWaitingPhone)
	drive(t, d, sessions, text("89001112233"), StateSelectingDelivery)
	drive(t, d, sessions, callback("self_delivery"), StateConfirmingPickup)
	// Changed their mind about pickup once.
	drive(t, d, sessions, callback("self_delivery_no"), StateSelectingDelivery)
	drive(t, d, sessions, callback("self_delivery"), StateConfirmingPickup)
	drive(t, d, sessions, callback("self_delivery_yes"), StateDialogueEnd)

	if len(store.orders) != 1 {
		t.Fatalf("orders created = %d, want 1", len(store.orders))
	}
	order := store.orders[0]
	if order.DeliveryMethod != "self_delivery" {
		t.Errorf("delivery method = %q", order.DeliveryMethod)
	}
	if order.RecipientName != "Petr Sidorov" {
		t.Errorf("pickup recipient = %q, want the customer", order.RecipientName)
	}
}

func TestSelectingItemRejectsText(t *testing.T) {
	d, sender, store, sessions := newTestDispatcher()

	drive(t, d, sessions, command("/start"), StateSelectingLanguage)
	drive(t, d, sessions, callback("russian"), StateMainMenu)
	drive(t, d, sessions, callback("impression"), StateSelectingItem)

	// Typed text instead of pressing a button: stay put, re-render.
	drive(t, d, sessions, text("two please"), StateSelectingItem)
	// The prefix passes through markdown escaping, so match loosely.
	if got := sender.last().Text; !strings.Contains(got, "unrecognized") {
		t.Errorf("re-rendered menu missing error prefix: %q", got)
	}
	if len(store.orders) != 0 {
		t.Error("order created from unrecognized input")
	}
}

func TestActivationRejectAndRetry(t *testing.T) {
	d, _, store, sessions := newTestDispatcher()

	drive(t, d, sessions, command("/start"), StateSelectingLanguage)
	drive(t, d, sessions, callback("russian"), StateMainMenu)
	drive(t, d, sessions, callback("certificate"), StateWaitingCode)

	// Unknown code: rejection menu.
	drive(t, d, sessions, text("NOPE-123"), StateCodeRejected)
	drive(t, d, sessions, callback("certificate_id"), StateWaitingCode)

	// Second try succeeds.
	store.activation = model.ActivationResult{Available: true, ItemName: "Horseback ride"}
	drive(t, d, sessions, text("GIFT-456"), StateDialogueEnd)
}

func TestActivationCallPersonOpensTicket(t *testing.T) {
	d, _, store, sessions := newTestDispatcher()

	drive(t, d, sessions, command("/start"), StateSelectingLanguage)
	drive(t, d, sessions, callback("russian"), StateMainMenu)
	drive(t, d, sessions, callback("certificate"), StateWaitingCode)
	drive(t, d, sessions, text("NOPE-123"), StateCodeRejected)
	drive(t, d, sessions, callback("call_person"), StateDialogueEnd)

	if len(store.tickets) != 1 {
		t.Fatalf("tickets = %d, want 1", len(store.tickets))
	}
	if store.tickets[0].Reason != model.TicketReasonActivation {
		t.Errorf("ticket reason = %q", store.tickets[0].Reason)
	}
}

func TestFAQBrowsing(t *testing.T) {
	d, sender, store, sessions := newTestDispatcher()

	drive(t, d, sessions, command("/start"), StateSelectingLanguage)
	drive(t, d, sessions, callback("english"), StateMainMenu)
	drive(t, d, sessions, callback("faq"), StateSelectingQuestion)
	drive(t, d, sessions, callback("2"), StateAnswerShown)

	// Unrecognized input re-renders the same answer behind an error
	// notice.
	drive(t, d, sessions, text("hm"), StateAnswerShown)
	if got := sender.last().Text; !strings.Contains(got, "misunderstanding") {
		t.Fatalf("re-rendered answer lacks error notice: %q", got)
	}

	drive(t, d, sessions, callback("questions_list"), StateSelectingQuestion)
	drive(t, d, sessions, callback("call_person"), StateDialogueEnd)

	if len(store.tickets) != 1 || store.tickets[0].Reason != model.TicketReasonQuestion {
		t.Fatalf("expected one operator-question ticket, got %+v", store.tickets)
	}
}

func TestStartResetsMidFlow(t *testing.T) {
	d, _, _, sessions := newTestDispatcher()

	drive(t, d, sessions, command("/start"), StateSelectingLanguage)
	drive(t, d, sessions, callback("russian"), StateMainMenu)
	drive(t, d, sessions, callback("impression"), StateSelectingItem)

	// /start anywhere returns to the language menu.
	drive(t, d, sessions, command("/start"), StateSelectingLanguage)
}
