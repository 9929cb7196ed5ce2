package dialog

import (
	"context"

	"github.com/rs/zerolog"

	"telegram-gift-certificates/internal/domain/model"
)

// Handler processes one inbound event for one dialogue state and
// returns the state that should await the chat's next event. Handlers
// perform their own side effects (sends, store calls) and may mutate
// session scratch data before returning.
type Handler func(ctx context.Context, ev Event, sess *model.Session) (State, error)

// Machine owns one handler per dialogue state plus the renderers they
// share. It is stateless itself; everything per-chat lives in the
// session passed through each call.
type Machine struct {
	sender Sender
	store  Store
	tr     Translator
	log    *zerolog.Logger
}

func NewMachine(sender Sender, store Store, tr Translator, log *zerolog.Logger) *Machine {
	return &Machine{sender: sender, store: store, tr: tr, log: log}
}

// Handlers returns the full state-to-handler table the dispatcher
// routes by. Every enumerated state is present.
func (m *Machine) Handlers() map[State]Handler {
	return map[State]Handler{
		StateStart:                   m.handleStart,
		StateSelectingLanguage:       m.handleLanguageMenu,
		StateMainMenu:                m.handleMainMenu,
		StateSelectingItem:           m.handleItemsMenu,
		StateSelectingFulfillment:    m.handleFulfillmentMenu,
		StateWaitingEmail:            m.handleCustomerEmail,
		StateWaitingPolicyAck:        m.handlePolicyAck,
		StateWaitingFullName:         m.handleCustomerFullName,
		StateWaitingPhone:            m.handleCustomerPhone,
		StateSelectingDelivery:       m.handleDeliveryMenu,
		StateWaitingRecipientName:    m.handleRecipientName,
		StateWaitingRecipientContact: m.handleRecipientContact,
		StateConfirmingPickup:        m.handlePickupMenu,
		StateWaitingPaymentProof:     m.handlePaymentProof,
		StateWaitingCode:             m.handleCertificateCode,
		StateCodeRejected:            m.handleWrongCodeMenu,
		StateSelectingQuestion:       m.handleQuestionsMenu,
		StateAnswerShown:             m.handleAnswerMenu,
		StateDialogueEnd:             m.handleDialogueEnd,
	}
}

// t resolves a localized template for the session's language.
func (m *Machine) t(sess *model.Session, key string, args ...interface{}) string {
	lang := sess.Language
	if !lang.Valid() {
		lang = model.LanguageRussian
	}
	return m.tr.T(lang, key, args...)
}

// reply renders a menu back to the chat: events that came from a
// button edit the originating message in place, everything else gets
// a fresh message.
func (m *Machine) reply(ctx context.Context, ev Event, text string, rows [][]Button, markdown bool) error {
	if ev.Kind == KindCallback && ev.MessageID != 0 {
		return m.sender.EditMessage(ctx, ev.ChatID, ev.MessageID, text, rows, markdown)
	}
	return m.sender.SendMessage(ctx, ev.ChatID, text, rows, markdown)
}

// currentState is the state to stay in when an external call fails
// mid-handler and the event must leave the session untouched.
func currentState(sess *model.Session) State {
	if sess.State == "" {
		return StateStart
	}
	return State(sess.State)
}

// storeFailure tells the user to retry later and keeps the dialogue
// where it was, so already-entered data is not lost.
func (m *Machine) storeFailure(ctx context.Context, ev Event, sess *model.Session, err error) (State, error) {
	m.log.Error().Err(err).Int64("chat_id", ev.ChatID).Str("state", sess.State).Msg("storefront call failed")
	state := currentState(sess)
	if sendErr := m.reply(ctx, ev, m.t(sess, "retry_later"), nil, false); sendErr != nil {
		return state, sendErr
	}
	return state, nil
}
