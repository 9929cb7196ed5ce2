package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"telegram-gift-certificates/internal/domain/model"
)

func newCertificateUC(certs *memCertificateRepo, catalog *memCatalogRepo) *CertificateUseCase {
	log := zerolog.Nop()
	return NewCertificateUseCase(certs, catalog, newMockLocker(), &log)
}

func activationReq(code string) model.ActivationRequest {
	return model.ActivationRequest{ChatID: 42, Username: "buyer", Language: model.LanguageRussian, Code: code}
}

func TestActivateRedeemsOnce(t *testing.T) {
	certs := newMemCertificateRepo(&model.Certificate{ID: "c1", Code: "GIFT-1", ItemID: 1})
	catalog := newMemCatalogRepo(testItem(1, "Balloon flight"))
	uc := newCertificateUC(certs, catalog)

	res, err := uc.Activate(context.Background(), activationReq("GIFT-1"))
	if err != nil {
		t.Fatalf("Activate failed: %v", err)
	}
	if !res.Available {
		t.Fatal("fresh code rejected")
	}
	if res.ItemName != "Balloon flight" {
		t.Errorf("item name = %q", res.ItemName)
	}
	if res.Outcome != model.ActivationRedeemed {
		t.Errorf("outcome = %q, want %q", res.Outcome, model.ActivationRedeemed)
	}

	// Second redemption of the same code is refused.
	res, err = uc.Activate(context.Background(), activationReq("GIFT-1"))
	if err != nil {
		t.Fatalf("second Activate errored: %v", err)
	}
	if res.Available {
		t.Error("code redeemed twice")
	}
	if res.Outcome != model.ActivationAlreadyUsed {
		t.Errorf("outcome = %q, want %q", res.Outcome, model.ActivationAlreadyUsed)
	}
}

func TestActivateRejectsUnknownAndExpired(t *testing.T) {
	past := time.Now().Add(-time.Hour)
	certs := newMemCertificateRepo(
		&model.Certificate{ID: "c2", Code: "OLD-1", ItemID: 1, ExpiresAt: &past},
	)
	catalog := newMemCatalogRepo(testItem(1, "Balloon flight"))
	uc := newCertificateUC(certs, catalog)

	cases := []struct {
		code    string
		outcome string
	}{
		{"MISSING", model.ActivationUnknown},
		{"OLD-1", model.ActivationExpired},
		{"", model.ActivationEmpty},
		{"   ", model.ActivationEmpty},
	}
	for _, tc := range cases {
		res, err := uc.Activate(context.Background(), activationReq(tc.code))
		if err != nil {
			t.Fatalf("Activate(%q) errored: %v", tc.code, err)
		}
		if res.Available {
			t.Errorf("Activate(%q) accepted", tc.code)
		}
		if res.Outcome != tc.outcome {
			t.Errorf("Activate(%q) outcome = %q, want %q", tc.code, res.Outcome, tc.outcome)
		}
	}
}

func TestActivateTrimsCode(t *testing.T) {
	certs := newMemCertificateRepo(&model.Certificate{ID: "c3", Code: "GIFT-2", ItemID: 1})
	catalog := newMemCatalogRepo(testItem(1, "Balloon flight"))
	uc := newCertificateUC(certs, catalog)

	res, err := uc.Activate(context.Background(), activationReq("  GIFT-2  "))
	if err != nil {
		t.Fatalf("Activate failed: %v", err)
	}
	if !res.Available {
		t.Error("padded code rejected")
	}
}

func TestActivateLocalizesItemName(t *testing.T) {
	certs := newMemCertificateRepo(&model.Certificate{ID: "c4", Code: "GIFT-3", ItemID: 1})
	catalog := newMemCatalogRepo(testItem(1, "Balloon flight"))
	uc := newCertificateUC(certs, catalog)

	req := activationReq("GIFT-3")
	req.Language = model.LanguageEnglish
	res, err := uc.Activate(context.Background(), req)
	if err != nil {
		t.Fatalf("Activate failed: %v", err)
	}
	if res.ItemName != "Balloon flight (en)" {
		t.Errorf("item name = %q, want english localization", res.ItemName)
	}
}
