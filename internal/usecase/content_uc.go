package usecase

import (
	"context"

	"telegram-gift-certificates/internal/domain/model"
	"telegram-gift-certificates/internal/domain/ports/repository"
)

// ContentUseCase serves the operator-maintained storefront text.
type ContentUseCase struct {
	repo repository.ContentRepository
}

// NewContentUseCase constructs a ContentUseCase.
func NewContentUseCase(repo repository.ContentRepository) *ContentUseCase {
	return &ContentUseCase{repo: repo}
}

func (uc *ContentUseCase) PaymentDetails(ctx context.Context, lang model.Language) (string, error) {
	c, err := uc.repo.Get(ctx)
	if err != nil {
		return "", err
	}
	return c.PaymentDetails(lang), nil
}

func (uc *ContentUseCase) PolicyURL(ctx context.Context, lang model.Language) (string, error) {
	c, err := uc.repo.Get(ctx)
	if err != nil {
		return "", err
	}
	return c.PolicyURL(lang), nil
}

func (uc *ContentUseCase) PickupPoint(ctx context.Context, lang model.Language) (model.PickupPoint, error) {
	c, err := uc.repo.Get(ctx)
	if err != nil {
		return model.PickupPoint{}, err
	}
	return c.Pickup(lang), nil
}
