package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"telegram-gift-certificates/internal/domain"
	"telegram-gift-certificates/internal/domain/model"
	"telegram-gift-certificates/internal/domain/ports/adapter"
	"telegram-gift-certificates/internal/domain/ports/repository"
)

const activationLockTTL = 10 * time.Second

// CertificateUseCase redeems gift-certificate codes. A short Redis
// lock per code keeps two chats from redeeming the same code at once;
// the database's partial unique index is the backstop.
type CertificateUseCase struct {
	certs   repository.CertificateRepository
	catalog repository.CatalogRepository
	locker  adapter.Locker
	log     *zerolog.Logger
}

// NewCertificateUseCase constructs a CertificateUseCase.
func NewCertificateUseCase(certs repository.CertificateRepository, catalog repository.CatalogRepository, locker adapter.Locker, log *zerolog.Logger) *CertificateUseCase {
	l := log.With().Str("component", "certificate_uc").Logger()
	return &CertificateUseCase{certs: certs, catalog: catalog, locker: locker, log: &l}
}

// Activate redeems the code in req. Unknown, already redeemed and
// expired codes all come back as Available=false rather than an error,
// so the dialogue can show its retry menu; Outcome names the reason.
// Errors are reserved for store failures.
func (uc *CertificateUseCase) Activate(ctx context.Context, req model.ActivationRequest) (model.ActivationResult, error) {
	code := strings.TrimSpace(req.Code)
	if code == "" {
		return uc.rejected(model.ActivationEmpty), nil
	}

	lockKey := fmt.Sprintf("certificate_lock:%s", code)
	token, err := uc.locker.TryLock(ctx, lockKey, activationLockTTL)
	if err != nil {
		if errors.Is(err, domain.ErrCodeBusy) {
			return uc.rejected(model.ActivationBusy), nil
		}
		return model.ActivationResult{}, err
	}
	defer func() { _ = uc.locker.Unlock(ctx, lockKey, token) }()

	cert, err := uc.certs.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return uc.rejected(model.ActivationUnknown), nil
		}
		return model.ActivationResult{}, err
	}
	if cert.Redeemed {
		return uc.rejected(model.ActivationAlreadyUsed), nil
	}
	if cert.Expired(time.Now()) {
		return uc.rejected(model.ActivationExpired), nil
	}

	item, err := uc.catalog.FindByNumber(ctx, cert.ItemID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return model.ActivationResult{}, err
	}

	if err := uc.certs.MarkRedeemed(ctx, cert.ID, req.ChatID); err != nil {
		if errors.Is(err, domain.ErrCodeAlreadyUsed) {
			return uc.rejected(model.ActivationAlreadyUsed), nil
		}
		return model.ActivationResult{}, err
	}

	name := code
	if item != nil {
		name = item.LocalName(req.Language)
	}
	uc.log.Info().Str("certificate_id", cert.ID).Int64("chat_id", req.ChatID).Msg("certificate redeemed")
	return model.ActivationResult{Available: true, ItemName: name, Outcome: model.ActivationRedeemed}, nil
}

func (uc *CertificateUseCase) rejected(outcome string) model.ActivationResult {
	return model.ActivationResult{Available: false, Outcome: outcome}
}
