package model

import "time"

// Certificate is a pre-issued redemption code entitling the holder to
// one catalog item. A certificate can be activated once.
type Certificate struct {
	ID             string
	Code           string
	ItemID         int64
	Redeemed       bool
	RedeemedChatID int64
	RedeemedAt     *time.Time
	CreatedAt      time.Time
	ExpiresAt      *time.Time
}

// Expired reports whether the certificate is past its expiry, if any.
func (c *Certificate) Expired(now time.Time) bool {
	return c.ExpiresAt != nil && now.After(*c.ExpiresAt)
}

// ActivationRequest identifies who tries to activate which code.
type ActivationRequest struct {
	ChatID   int64
	Username string
	Language Language
	Code     string
}

// Activation outcomes. Rejections carry the reason the code was turned
// down.
const (
	ActivationRedeemed    = "redeemed"
	ActivationEmpty       = "empty"
	ActivationBusy        = "busy"
	ActivationUnknown     = "unknown"
	ActivationAlreadyUsed = "already_used"
	ActivationExpired     = "expired"
)

// ActivationResult is what the dialogue shows the user: whether the
// code was accepted and, if so, the localized item name. Outcome holds
// one of the Activation constants.
type ActivationResult struct {
	Available bool
	ItemName  string
	Outcome   string
}
