package dialog

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"telegram-gift-certificates/internal/domain"
	"telegram-gift-certificates/internal/domain/model"
)

const cbQuestionsList = "questions_list"

func (m *Machine) sendQuestionsMenu(ctx context.Context, ev Event, sess *model.Session, prefix string) (State, error) {
	questions, err := m.store.ListQuestions(ctx, sess.Language)
	if err != nil {
		return m.storeFailure(ctx, ev, sess, err)
	}

	text := prefix
	buttons := make([]Button, 0, len(questions))
	for i, q := range questions {
		text += fmt.Sprintf("%d. %s\n", i+1, q.Question)
		buttons = append(buttons, Button{
			Text: strconv.Itoa(i + 1),
			Data: strconv.FormatInt(q.ID, 10),
		})
	}
	if len(questions) > 0 {
		text += m.t(sess, "questions_pick")
	} else {
		text += m.t(sess, "questions_empty")
	}

	rows := PackButtons(buttons)
	rows = append(rows,
		[]Button{{Text: m.t(sess, "btn_call_person"), Data: cbCallPerson}},
		[]Button{{Text: m.t(sess, "btn_back_main_menu"), Data: cbMainMenu}},
	)

	if err := m.reply(ctx, ev, text, rows, false); err != nil {
		return StateSelectingQuestion, err
	}
	return StateSelectingQuestion, nil
}

func (m *Machine) handleQuestionsMenu(ctx context.Context, ev Event, sess *model.Session) (State, error) {
	if ev.Kind != KindCallback {
		return m.sendQuestionsMenu(ctx, ev, sess, m.t(sess, "questions_unrecognized"))
	}

	switch ev.Text {
	case cbMainMenu:
		return m.sendMainMenu(ctx, ev, sess, "")
	case cbCallPerson:
		sess.Scratch.RequestType = model.TicketReasonQuestion
		return m.sendCallingPerson(ctx, ev, sess)
	}

	id, err := strconv.ParseInt(ev.Text, 10, 64)
	if err != nil {
		return m.sendQuestionsMenu(ctx, ev, sess, m.t(sess, "questions_unrecognized"))
	}
	return m.sendAnswerMenu(ctx, ev, sess, id, "")
}

func (m *Machine) sendAnswerMenu(ctx context.Context, ev Event, sess *model.Session, faqID int64, prefix string) (State, error) {
	entry, err := m.store.GetQuestion(ctx, faqID, sess.Language)
	if errors.Is(err, domain.ErrNotFound) {
		// The question is no longer published; show the current list.
		return m.sendQuestionsMenu(ctx, ev, sess, m.t(sess, "questions_unrecognized"))
	}
	if err != nil {
		return m.storeFailure(ctx, ev, sess, err)
	}

	sess.Scratch.FAQID = faqID
	text := EscapeMarkdown(fmt.Sprintf("%s*%s*\n\n%s", prefix, entry.Question, entry.Answer))
	rows := [][]Button{
		{{Text: m.t(sess, "btn_back_questions"), Data: cbQuestionsList}},
		{{Text: m.t(sess, "btn_back_main_menu"), Data: cbMainMenu}},
	}
	if err := m.reply(ctx, ev, text, rows, true); err != nil {
		return StateAnswerShown, err
	}
	return StateAnswerShown, nil
}

func (m *Machine) handleAnswerMenu(ctx context.Context, ev Event, sess *model.Session) (State, error) {
	if ev.Kind != KindCallback {
		return m.sendAnswerMenu(ctx, ev, sess, sess.Scratch.FAQID, m.t(sess, "misunderstanding"))
	}

	switch ev.Text {
	case cbMainMenu:
		return m.sendMainMenu(ctx, ev, sess, "")
	case cbQuestionsList:
		return m.sendQuestionsMenu(ctx, ev, sess, "")
	}
	return m.sendAnswerMenu(ctx, ev, sess, sess.Scratch.FAQID, m.t(sess, "misunderstanding"))
}
