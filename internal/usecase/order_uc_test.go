package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"telegram-gift-certificates/internal/domain"
	"telegram-gift-certificates/internal/domain/model"
)

func testDraft(itemID int64) model.OrderDraft {
	return model.OrderDraft{
		ChatID:        42,
		Username:      "buyer",
		Language:      model.LanguageRussian,
		CustomerName:  "Ivan Petrov",
		CustomerPhone: "+79001112233",
		ItemID:        itemID,
		RecipientName: "Ivan Petrov",
		ViaEmail:      true,
		ProofImage:    []byte("screenshot"),
	}
}

func TestCreateOrderPersistsDraft(t *testing.T) {
	orders := newMemOrderRepo()
	catalog := newMemCatalogRepo(testItem(1, "Balloon flight"))
	log := zerolog.Nop()
	uc := NewOrderUseCase(orders, catalog, &log)

	if err := uc.Create(context.Background(), testDraft(1)); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	stored, err := uc.ListRecent(context.Background(), 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(stored) != 1 {
		t.Fatalf("stored orders = %d, want 1", len(stored))
	}
	order := stored[0]
	if order.ID == "" {
		t.Error("order has no id")
	}
	if order.CreatedAt.IsZero() {
		t.Error("order has no creation time")
	}
	if !order.HasProof {
		t.Error("order with screenshot not flagged")
	}
	if string(orders.proofs[order.ID]) != "screenshot" {
		t.Error("proof image not stored")
	}
}

func TestCreateOrderIDsAreUnique(t *testing.T) {
	orders := newMemOrderRepo()
	catalog := newMemCatalogRepo(testItem(1, "Balloon flight"))
	log := zerolog.Nop()
	uc := NewOrderUseCase(orders, catalog, &log)

	// Back-to-back orders land on the same clock tick; their IDs must
	// still differ.
	for i := 0; i < 10; i++ {
		if err := uc.Create(context.Background(), testDraft(1)); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}
	seen := make(map[string]bool)
	for _, o := range orders.orders {
		if seen[o.ID] {
			t.Fatalf("duplicate order id %q", o.ID)
		}
		seen[o.ID] = true
	}
	if len(seen) != 10 {
		t.Fatalf("distinct order ids = %d, want 10", len(seen))
	}
}

func TestCreateOrderRejectsUnknownItem(t *testing.T) {
	orders := newMemOrderRepo()
	catalog := newMemCatalogRepo(testItem(1, "Balloon flight"))
	log := zerolog.Nop()
	uc := NewOrderUseCase(orders, catalog, &log)

	err := uc.Create(context.Background(), testDraft(99))
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("Create = %v, want ErrNotFound", err)
	}
	if len(orders.orders) != 0 {
		t.Error("order stored for unknown item")
	}
}

func TestCreateOrderPropagatesSaveFailure(t *testing.T) {
	orders := newMemOrderRepo()
	orders.saveErr = errors.New("connection reset")
	catalog := newMemCatalogRepo(testItem(1, "Balloon flight"))
	log := zerolog.Nop()
	uc := NewOrderUseCase(orders, catalog, &log)

	if err := uc.Create(context.Background(), testDraft(1)); err == nil {
		t.Fatal("Create succeeded despite failing repository")
	}
}
