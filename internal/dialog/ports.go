package dialog

import (
	"context"

	"telegram-gift-certificates/internal/domain/model"
)

// Button is one inline keyboard button. Data is sent back as a
// callback payload; URL buttons open a link instead.
type Button struct {
	Text string
	Data string
	URL  string
}

// Sender delivers replies to a chat. Implementations live at the
// transport boundary; the dialogue core never touches transport types.
type Sender interface {
	SendMessage(ctx context.Context, chatID int64, text string, rows [][]Button, markdown bool) error
	EditMessage(ctx context.Context, chatID int64, messageID int, text string, rows [][]Button, markdown bool) error
	DownloadPhoto(ctx context.Context, fileID string) ([]byte, error)
}

// Store is the dialogue's view of the catalog/order backend. The
// dialogue treats it as opaque; every method may fail and failures
// surface to the user as a retry-later notice.
type Store interface {
	ListItems(ctx context.Context, lang model.Language) ([]model.CatalogItem, error)
	GetItem(ctx context.Context, id int64, lang model.Language) (*model.CatalogItem, error)
	CreateOrder(ctx context.Context, draft model.OrderDraft) error
	ActivateCertificate(ctx context.Context, req model.ActivationRequest) (model.ActivationResult, error)
	CreateSupportTicket(ctx context.Context, ticket model.SupportTicket) error
	PaymentDetails(ctx context.Context, lang model.Language) (string, error)
	PolicyURL(ctx context.Context, lang model.Language) (string, error)
	PickupPoint(ctx context.Context, lang model.Language) (model.PickupPoint, error)
	ListQuestions(ctx context.Context, lang model.Language) ([]model.FAQEntry, error)
	GetQuestion(ctx context.Context, id int64, lang model.Language) (*model.FAQEntry, error)
}

// Translator resolves localized message templates by key.
type Translator interface {
	T(lang model.Language, key string, args ...interface{}) string
}
