package usecase

import (
	"context"

	"telegram-gift-certificates/internal/domain/model"
	"telegram-gift-certificates/internal/domain/ports/repository"
)

// FAQUseCase projects FAQ entries into the reader's language.
type FAQUseCase struct {
	repo repository.FAQRepository
}

// NewFAQUseCase constructs a FAQUseCase.
func NewFAQUseCase(repo repository.FAQRepository) *FAQUseCase {
	return &FAQUseCase{repo: repo}
}

// List returns available entries localized for lang, ordered by position.
func (uc *FAQUseCase) List(ctx context.Context, lang model.Language) ([]model.FAQEntry, error) {
	records, err := uc.repo.ListAvailable(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]model.FAQEntry, 0, len(records))
	for _, rec := range records {
		out = append(out, rec.Localize(lang))
	}
	return out, nil
}

// Get looks one entry up by id.
func (uc *FAQUseCase) Get(ctx context.Context, id int64, lang model.Language) (*model.FAQEntry, error) {
	rec, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	entry := rec.Localize(lang)
	return &entry, nil
}
