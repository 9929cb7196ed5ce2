package usecase

import (
	"context"
	"sync"
	"time"

	"telegram-gift-certificates/internal/domain"
	"telegram-gift-certificates/internal/domain/model"
)

// memCatalogRepo is a small in-memory implementation used by unit tests.
type memCatalogRepo struct {
	mu    sync.RWMutex
	items map[int64]*model.Item
}

func newMemCatalogRepo(items ...*model.Item) *memCatalogRepo {
	m := &memCatalogRepo{items: make(map[int64]*model.Item)}
	for _, it := range items {
		m.items[it.Number] = it
	}
	return m
}

func (m *memCatalogRepo) ListAvailable(ctx context.Context) ([]*model.Item, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*model.Item
	for _, it := range m.items {
		if it.Available {
			cp := *it
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *memCatalogRepo) FindByNumber(ctx context.Context, number int64) (*model.Item, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	it, ok := m.items[number]
	if !ok || !it.Available {
		return nil, domain.ErrNotFound
	}
	cp := *it
	return &cp, nil
}

type memOrderRepo struct {
	mu      sync.Mutex
	orders  []*model.Order
	proofs  map[string][]byte
	saveErr error
}

func newMemOrderRepo() *memOrderRepo {
	return &memOrderRepo{proofs: make(map[string][]byte)}
}

func (m *memOrderRepo) Save(ctx context.Context, order *model.Order, proof []byte) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *order
	m.orders = append(m.orders, &cp)
	m.proofs[order.ID] = proof
	return nil
}

func (m *memOrderRepo) ListRecent(ctx context.Context, limit int) ([]*model.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*model.Order, 0, len(m.orders))
	for i := len(m.orders) - 1; i >= 0 && len(out) < limit; i-- {
		cp := *m.orders[i]
		out = append(out, &cp)
	}
	return out, nil
}

type memCertificateRepo struct {
	mu    sync.Mutex
	certs map[string]*model.Certificate // by code
}

func newMemCertificateRepo(certs ...*model.Certificate) *memCertificateRepo {
	m := &memCertificateRepo{certs: make(map[string]*model.Certificate)}
	for _, c := range certs {
		m.certs[c.Code] = c
	}
	return m
}

func (m *memCertificateRepo) FindByCode(ctx context.Context, code string) (*model.Certificate, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.certs[code]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (m *memCertificateRepo) MarkRedeemed(ctx context.Context, id string, chatID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.certs {
		if c.ID == id {
			if c.Redeemed {
				return domain.ErrCodeAlreadyUsed
			}
			now := time.Now()
			c.Redeemed = true
			c.RedeemedChatID = chatID
			c.RedeemedAt = &now
			return nil
		}
	}
	return domain.ErrNotFound
}

type memTicketRepo struct {
	mu      sync.Mutex
	tickets []*model.SupportTicket
}

func (m *memTicketRepo) Save(ctx context.Context, ticket *model.SupportTicket) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *ticket
	m.tickets = append(m.tickets, &cp)
	return nil
}

func (m *memTicketRepo) ListRecent(ctx context.Context, limit int) ([]*model.SupportTicket, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*model.SupportTicket, 0, len(m.tickets))
	for i := len(m.tickets) - 1; i >= 0 && len(out) < limit; i-- {
		cp := *m.tickets[i]
		out = append(out, &cp)
	}
	return out, nil
}

// ---- In-memory Locker (implements adapter.Locker port) ----

type mockLocker struct {
	mu   sync.Mutex
	held map[string]string
}

func newMockLocker() *mockLocker {
	return &mockLocker{held: map[string]string{}}
}

func (l *mockLocker) TryLock(ctx context.Context, key string, ttl time.Duration) (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, busy := l.held[key]; busy {
		return "", domain.ErrCodeBusy
	}
	token := "tok-" + key
	l.held[key] = token
	return token, nil
}

func (l *mockLocker) Unlock(ctx context.Context, key, token string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.held[key] == token {
		delete(l.held, key)
	}
	return nil
}

func testItem(number int64, name string) *model.Item {
	return &model.Item{
		ID:          number,
		Number:      number,
		Name:        name,
		EnglishName: name + " (en)",
		PriceRubles: 5000,
		PriceEuros:  50,
		Available:   true,
	}
}
