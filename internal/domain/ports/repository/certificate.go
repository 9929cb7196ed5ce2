package repository

import (
	"context"

	"telegram-gift-certificates/internal/domain/model"
)

// CertificateRepository is the port for redemption codes.
type CertificateRepository interface {
	// FindByCode returns domain.ErrNotFound for unknown codes.
	FindByCode(ctx context.Context, code string) (*model.Certificate, error)
	// MarkRedeemed flips the redeemed flag for an unredeemed code.
	// Returns domain.ErrCodeAlreadyUsed when the code was redeemed
	// concurrently.
	MarkRedeemed(ctx context.Context, id string, chatID int64) error
}
