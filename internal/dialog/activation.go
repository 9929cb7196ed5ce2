package dialog

import (
	"context"

	"telegram-gift-certificates/internal/domain/model"
	"telegram-gift-certificates/internal/infra/metrics"
)

const (
	cbEnterCode  = "certificate_id"
	cbCallPerson = "call_person"
)

func (m *Machine) sendCodePrompt(ctx context.Context, ev Event, sess *model.Session, prefix string) (State, error) {
	text := prefix + m.t(sess, "certificate_code_prompt")
	if err := m.reply(ctx, ev, text, nil, false); err != nil {
		return StateWaitingCode, err
	}
	return StateWaitingCode, nil
}

func (m *Machine) handleCertificateCode(ctx context.Context, ev Event, sess *model.Session) (State, error) {
	if ev.Kind != KindText {
		return m.sendCodePrompt(ctx, ev, sess, m.t(sess, "misunderstanding"))
	}

	result, err := m.store.ActivateCertificate(ctx, model.ActivationRequest{
		ChatID:   ev.ChatID,
		Username: ev.Username,
		Language: sess.Language,
		Code:     ev.Text,
	})
	if err != nil {
		return m.storeFailure(ctx, ev, sess, err)
	}
	metrics.ObserveActivation(result.Outcome)

	if !result.Available {
		return m.sendWrongCodeMenu(ctx, ev, sess, "")
	}

	text := EscapeMarkdown(m.t(sess, "certificate_success", result.ItemName))
	if err := m.reply(ctx, ev, text, nil, true); err != nil {
		return StateDialogueEnd, err
	}
	return StateDialogueEnd, nil
}

func (m *Machine) sendWrongCodeMenu(ctx context.Context, ev Event, sess *model.Session, prefix string) (State, error) {
	if prefix == "" {
		prefix = m.t(sess, "certificate_failed")
	}
	text := prefix + m.t(sess, "certificate_wrong_menu")
	rows := [][]Button{{
		{Text: m.t(sess, "btn_retry_code"), Data: cbEnterCode},
		{Text: m.t(sess, "btn_call_person"), Data: cbCallPerson},
	}}
	if err := m.reply(ctx, ev, text, rows, false); err != nil {
		return StateCodeRejected, err
	}
	return StateCodeRejected, nil
}

func (m *Machine) handleWrongCodeMenu(ctx context.Context, ev Event, sess *model.Session) (State, error) {
	if ev.Kind != KindCallback {
		return m.sendWrongCodeMenu(ctx, ev, sess, m.t(sess, "misunderstanding"))
	}

	switch ev.Text {
	case cbEnterCode:
		return m.sendCodePrompt(ctx, ev, sess, "")
	case cbCallPerson:
		sess.Scratch.RequestType = model.TicketReasonActivation
		return m.sendCallingPerson(ctx, ev, sess)
	}
	return m.sendWrongCodeMenu(ctx, ev, sess, m.t(sess, "misunderstanding"))
}

// sendCallingPerson creates the support ticket and confirms it.
func (m *Machine) sendCallingPerson(ctx context.Context, ev Event, sess *model.Session) (State, error) {
	err := m.store.CreateSupportTicket(ctx, model.SupportTicket{
		ChatID:   ev.ChatID,
		Username: ev.Username,
		Language: sess.Language,
		Reason:   sess.Scratch.RequestType,
	})
	if err != nil {
		return m.storeFailure(ctx, ev, sess, err)
	}

	if err := m.reply(ctx, ev, m.t(sess, "support_thanks"), nil, false); err != nil {
		return StateDialogueEnd, err
	}
	return StateDialogueEnd, nil
}
