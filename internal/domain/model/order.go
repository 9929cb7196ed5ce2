package model

import "time"

// OrderDraft is the data a finished checkout flow hands to the store.
// It is assembled from session scratch data at the terminal step and
// never persisted by the dialogue core itself.
type OrderDraft struct {
	ChatID           int64
	Username         string
	Language         Language
	CustomerEmail    string
	CustomerName     string
	CustomerPhone    string
	ItemID           int64
	RecipientName    string
	RecipientContact string
	ViaEmail         bool
	DeliveryMethod   string
	ProofImage       []byte
}

// Order is a stored order.
type Order struct {
	ID               string
	ChatID           int64
	Username         string
	Language         Language
	CustomerEmail    string
	CustomerName     string
	CustomerPhone    string
	ItemID           int64
	RecipientName    string
	RecipientContact string
	ViaEmail         bool
	DeliveryMethod   string
	HasProof         bool
	CreatedAt        time.Time
}
