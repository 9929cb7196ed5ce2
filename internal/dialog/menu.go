package dialog

import (
	"context"

	"telegram-gift-certificates/internal/domain/model"
)

// Callback payloads shared across menus.
const (
	cbRussian     = "russian"
	cbEnglish     = "english"
	cbImpression  = "impression"
	cbCertificate = "certificate"
	cbFAQ         = "faq"
	cbMainMenu    = "main_menu"
)

// The language menu is the only text shown before a language exists.
const languagePrompt = "Выбери, пожалуйста, язык / Please, select a language"

func (m *Machine) handleStart(ctx context.Context, ev Event, sess *model.Session) (State, error) {
	return m.sendLanguageMenu(ctx, ev)
}

func (m *Machine) sendLanguageMenu(ctx context.Context, ev Event) (State, error) {
	rows := [][]Button{{
		{Text: "🇷🇺 Русский", Data: cbRussian},
		{Text: "🇬🇧 English", Data: cbEnglish},
	}}
	if err := m.reply(ctx, ev, languagePrompt, rows, false); err != nil {
		return StateSelectingLanguage, err
	}
	return StateSelectingLanguage, nil
}

func (m *Machine) handleLanguageMenu(ctx context.Context, ev Event, sess *model.Session) (State, error) {
	if ev.Kind != KindCallback {
		return m.sendLanguageMenu(ctx, ev)
	}

	switch ev.Text {
	case cbRussian:
		sess.Language = model.LanguageRussian
	case cbEnglish:
		sess.Language = model.LanguageEnglish
	default:
		return m.sendLanguageMenu(ctx, ev)
	}
	// Picking a language starts a fresh conversation.
	sess.ResetFlow()

	return m.sendMainMenu(ctx, ev, sess, "")
}

func (m *Machine) sendMainMenu(ctx context.Context, ev Event, sess *model.Session, prefix string) (State, error) {
	// Returning to the main menu abandons whatever flow was active.
	sess.ResetFlow()

	text := prefix + m.t(sess, "main_menu_prompt")
	rows := [][]Button{
		{
			{Text: m.t(sess, "btn_select_item"), Data: cbImpression},
			{Text: m.t(sess, "btn_activate_certificate"), Data: cbCertificate},
		},
		{
			{Text: m.t(sess, "btn_faq"), Data: cbFAQ},
		},
	}
	if err := m.reply(ctx, ev, text, rows, false); err != nil {
		return StateMainMenu, err
	}
	return StateMainMenu, nil
}

func (m *Machine) handleMainMenu(ctx context.Context, ev Event, sess *model.Session) (State, error) {
	if ev.Kind != KindCallback {
		return m.sendMainMenu(ctx, ev, sess, m.t(sess, "misunderstanding"))
	}

	switch ev.Text {
	case cbImpression:
		return m.sendItemsMenu(ctx, ev, sess, "")
	case cbCertificate:
		return m.sendCodePrompt(ctx, ev, sess, m.t(sess, "certificate_congrats"))
	case cbFAQ:
		return m.sendQuestionsMenu(ctx, ev, sess, "")
	}
	return m.sendMainMenu(ctx, ev, sess, m.t(sess, "misunderstanding"))
}

func (m *Machine) handleDialogueEnd(ctx context.Context, ev Event, sess *model.Session) (State, error) {
	// Terminal state: acknowledge and wait for an explicit /start.
	return StateDialogueEnd, nil
}
