package application

import (
	"context"

	"telegram-gift-certificates/internal/dialog"
	"telegram-gift-certificates/internal/domain/model"
	"telegram-gift-certificates/internal/usecase"
)

var _ dialog.Store = (*Storefront)(nil)

// Storefront bundles the use cases behind the single backend the
// dialogue core talks to.
type Storefront struct {
	Catalog      *usecase.CatalogUseCase
	Orders       *usecase.OrderUseCase
	Certificates *usecase.CertificateUseCase
	Support      *usecase.SupportUseCase
	FAQ          *usecase.FAQUseCase
	Content      *usecase.ContentUseCase
}

func NewStorefront(
	catalog *usecase.CatalogUseCase,
	orders *usecase.OrderUseCase,
	certificates *usecase.CertificateUseCase,
	support *usecase.SupportUseCase,
	faq *usecase.FAQUseCase,
	content *usecase.ContentUseCase,
) *Storefront {
	return &Storefront{
		Catalog:      catalog,
		Orders:       orders,
		Certificates: certificates,
		Support:      support,
		FAQ:          faq,
		Content:      content,
	}
}

func (s *Storefront) ListItems(ctx context.Context, lang model.Language) ([]model.CatalogItem, error) {
	return s.Catalog.List(ctx, lang)
}

func (s *Storefront) GetItem(ctx context.Context, id int64, lang model.Language) (*model.CatalogItem, error) {
	return s.Catalog.Get(ctx, id, lang)
}

func (s *Storefront) CreateOrder(ctx context.Context, draft model.OrderDraft) error {
	return s.Orders.Create(ctx, draft)
}

func (s *Storefront) ActivateCertificate(ctx context.Context, req model.ActivationRequest) (model.ActivationResult, error) {
	return s.Certificates.Activate(ctx, req)
}

func (s *Storefront) CreateSupportTicket(ctx context.Context, ticket model.SupportTicket) error {
	return s.Support.Open(ctx, ticket)
}

func (s *Storefront) PaymentDetails(ctx context.Context, lang model.Language) (string, error) {
	return s.Content.PaymentDetails(ctx, lang)
}

func (s *Storefront) PolicyURL(ctx context.Context, lang model.Language) (string, error) {
	return s.Content.PolicyURL(ctx, lang)
}

func (s *Storefront) PickupPoint(ctx context.Context, lang model.Language) (model.PickupPoint, error) {
	return s.Content.PickupPoint(ctx, lang)
}

func (s *Storefront) ListQuestions(ctx context.Context, lang model.Language) ([]model.FAQEntry, error) {
	return s.FAQ.List(ctx, lang)
}

func (s *Storefront) GetQuestion(ctx context.Context, id int64, lang model.Language) (*model.FAQEntry, error) {
	return s.FAQ.Get(ctx, id, lang)
}
