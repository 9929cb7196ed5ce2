package usecase

import (
	"context"

	"telegram-gift-certificates/internal/domain/model"
	"telegram-gift-certificates/internal/domain/ports/repository"
)

// CatalogUseCase projects catalog items into the buyer's language.
type CatalogUseCase struct {
	repo repository.CatalogRepository
}

// NewCatalogUseCase constructs a CatalogUseCase.
func NewCatalogUseCase(repo repository.CatalogRepository) *CatalogUseCase {
	return &CatalogUseCase{repo: repo}
}

// List returns the available items localized for lang, ordered by number.
func (uc *CatalogUseCase) List(ctx context.Context, lang model.Language) ([]model.CatalogItem, error) {
	items, err := uc.repo.ListAvailable(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]model.CatalogItem, 0, len(items))
	for _, it := range items {
		out = append(out, it.Localize(lang))
	}
	return out, nil
}

// Get looks one item up by its menu number.
func (uc *CatalogUseCase) Get(ctx context.Context, number int64, lang model.Language) (*model.CatalogItem, error) {
	it, err := uc.repo.FindByNumber(ctx, number)
	if err != nil {
		return nil, err
	}
	ci := it.Localize(lang)
	return &ci, nil
}
