package dialog

import (
	"context"
	"fmt"
	"sync"

	"telegram-gift-certificates/internal/domain"
	"telegram-gift-certificates/internal/domain/model"
)

// fakeSender records every outbound reply.
type fakeSender struct {
	mu    sync.Mutex
	sends []sentMessage
	edits []sentMessage

	sendErr     error
	downloadErr error
}

type sentMessage struct {
	ChatID   int64
	Text     string
	Rows     [][]Button
	Markdown bool
}

func (f *fakeSender) SendMessage(ctx context.Context, chatID int64, text string, rows [][]Button, markdown bool) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sends = append(f.sends, sentMessage{ChatID: chatID, Text: text, Rows: rows, Markdown: markdown})
	return nil
}

func (f *fakeSender) EditMessage(ctx context.Context, chatID int64, messageID int, text string, rows [][]Button, markdown bool) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.edits = append(f.edits, sentMessage{ChatID: chatID, Text: text, Rows: rows, Markdown: markdown})
	return nil
}

func (f *fakeSender) DownloadPhoto(ctx context.Context, fileID string) ([]byte, error) {
	if f.downloadErr != nil {
		return nil, f.downloadErr
	}
	return []byte("img:" + fileID), nil
}

func (f *fakeSender) last() sentMessage {
	f.mu.Lock()
	defer f.mu.Unlock()
	if n := len(f.sends) + len(f.edits); n == 0 {
		return sentMessage{}
	}
	if len(f.edits) > 0 && len(f.sends) == 0 {
		return f.edits[len(f.edits)-1]
	}
	return f.sends[len(f.sends)-1]
}

// fakeStore is an in-memory dialog.Store.
type fakeStore struct {
	mu      sync.Mutex
	items   []model.CatalogItem
	faq     []model.FAQEntry
	orders  []model.OrderDraft
	tickets []model.SupportTicket

	activation model.ActivationResult

	orderErr      error
	listErr       error
	activationErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		items: []model.CatalogItem{
			{ID: 1, Name: "Balloon flight", Price: "9000 ₽", URL: "https://example.com/1"},
			{ID: 2, Name: "Horseback ride", Price: "5000 ₽", URL: "https://example.com/2"},
			{ID: 3, Name: "Surf lesson", Price: "7000 ₽", URL: "https://example.com/3"},
		},
		faq: []model.FAQEntry{
			{ID: 1, Question: "How long is a certificate valid?", Answer: "One year."},
			{ID: 2, Question: "Can I change the date?", Answer: "Yes, a day ahead."},
		},
	}
}

func (f *fakeStore) ListItems(ctx context.Context, lang model.Language) ([]model.CatalogItem, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.items, nil
}

func (f *fakeStore) GetItem(ctx context.Context, id int64, lang model.Language) (*model.CatalogItem, error) {
	for i := range f.items {
		if f.items[i].ID == id {
			return &f.items[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeStore) CreateOrder(ctx context.Context, draft model.OrderDraft) error {
	if f.orderErr != nil {
		return f.orderErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.orders = append(f.orders, draft)
	return nil
}

func (f *fakeStore) ActivateCertificate(ctx context.Context, req model.ActivationRequest) (model.ActivationResult, error) {
	if f.activationErr != nil {
		return model.ActivationResult{}, f.activationErr
	}
	return f.activation, nil
}

func (f *fakeStore) CreateSupportTicket(ctx context.Context, ticket model.SupportTicket) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tickets = append(f.tickets, ticket)
	return nil
}

func (f *fakeStore) PaymentDetails(ctx context.Context, lang model.Language) (string, error) {
	return "Account 12345", nil
}

func (f *fakeStore) PolicyURL(ctx context.Context, lang model.Language) (string, error) {
	return "https://example.com/policy", nil
}

func (f *fakeStore) PickupPoint(ctx context.Context, lang model.Language) (model.PickupPoint, error) {
	return model.PickupPoint{Address: "Bukit, 1", Hours: "10:00-18:00"}, nil
}

func (f *fakeStore) ListQuestions(ctx context.Context, lang model.Language) ([]model.FAQEntry, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.faq, nil
}

func (f *fakeStore) GetQuestion(ctx context.Context, id int64, lang model.Language) (*model.FAQEntry, error) {
	for i := range f.faq {
		if f.faq[i].ID == id {
			return &f.faq[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

// keyTranslator resolves every key to itself so tests can assert on
// message identity without loading locale files.
type keyTranslator struct{}

func (keyTranslator) T(lang model.Language, key string, args ...interface{}) string {
	if len(args) == 0 {
		return key
	}
	return key + fmt.Sprint(args...)
}
