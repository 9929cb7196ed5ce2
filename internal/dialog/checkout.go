package dialog

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"telegram-gift-certificates/internal/domain"
	"telegram-gift-certificates/internal/domain/model"
)

const (
	cbEmail      = "email"
	cbGiftBox    = "gift_box"
	cbPolicyAck  = "privacy_policy"
	cbCourier    = "courier_delivery"
	cbPickup     = "self_delivery"
	cbPickupYes  = "self_delivery_yes"
	cbPickupNo   = "self_delivery_no"
	cbThanks     = "dialogue_end"
)

func itemTitle(it model.CatalogItem) string {
	return fmt.Sprintf("%d. %s - %s", it.ID, it.Name, it.Price)
}

func (m *Machine) sendItemsMenu(ctx context.Context, ev Event, sess *model.Session, prefix string) (State, error) {
	items, err := m.store.ListItems(ctx, sess.Language)
	if err != nil {
		return m.storeFailure(ctx, ev, sess, err)
	}
	if len(items) == 0 {
		return m.sendMainMenu(ctx, ev, sess, m.t(sess, "items_empty"))
	}

	text := EscapeMarkdown(prefix) + m.t(sess, "items_prompt") + "\n\n"
	buttons := make([]Button, 0, len(items))
	for _, it := range items {
		text += "[" + EscapeMarkdown(itemTitle(it)) + "](" + it.URL + ")\n"
		buttons = append(buttons, Button{
			Text: strconv.FormatInt(it.ID, 10),
			Data: strconv.FormatInt(it.ID, 10),
		})
	}
	text += "\n"

	rows := PackButtons(buttons)
	rows = append(rows, []Button{{Text: m.t(sess, "btn_back_main_menu"), Data: cbMainMenu}})

	if err := m.reply(ctx, ev, text, rows, true); err != nil {
		return StateSelectingItem, err
	}
	return StateSelectingItem, nil
}

func (m *Machine) handleItemsMenu(ctx context.Context, ev Event, sess *model.Session) (State, error) {
	if ev.Kind != KindCallback {
		return m.sendItemsMenu(ctx, ev, sess, m.t(sess, "items_unrecognized"))
	}
	if ev.Text == cbMainMenu {
		return m.sendMainMenu(ctx, ev, sess, "")
	}

	id, err := strconv.ParseInt(ev.Text, 10, 64)
	if err != nil {
		return m.sendItemsMenu(ctx, ev, sess, m.t(sess, "items_unrecognized"))
	}

	sess.Scratch.ItemID = id
	return m.sendFulfillmentMenu(ctx, ev, sess, "")
}

func (m *Machine) sendFulfillmentMenu(ctx context.Context, ev Event, sess *model.Session, prefix string) (State, error) {
	it, err := m.store.GetItem(ctx, sess.Scratch.ItemID, sess.Language)
	if errors.Is(err, domain.ErrNotFound) {
		// The item vanished between listing and selection.
		return m.sendItemsMenu(ctx, ev, sess, m.t(sess, "items_unrecognized"))
	}
	if err != nil {
		return m.storeFailure(ctx, ev, sess, err)
	}

	text := EscapeMarkdown(prefix + m.t(sess, "fulfillment_prompt", itemTitle(*it)))
	rows := [][]Button{
		{
			{Text: m.t(sess, "btn_fulfillment_email"), Data: cbEmail},
			{Text: m.t(sess, "btn_fulfillment_gift_box"), Data: cbGiftBox},
		},
		{
			{Text: m.t(sess, "btn_back_items"), Data: cbImpression},
		},
		{
			{Text: m.t(sess, "btn_back_main_menu"), Data: cbMainMenu},
		},
	}
	if err := m.reply(ctx, ev, text, rows, true); err != nil {
		return StateSelectingFulfillment, err
	}
	return StateSelectingFulfillment, nil
}

func (m *Machine) handleFulfillmentMenu(ctx context.Context, ev Event, sess *model.Session) (State, error) {
	if ev.Kind != KindCallback {
		return m.sendFulfillmentMenu(ctx, ev, sess, m.t(sess, "fulfillment_unrecognized"))
	}

	switch ev.Text {
	case cbMainMenu:
		return m.sendMainMenu(ctx, ev, sess, "")
	case cbImpression:
		return m.sendItemsMenu(ctx, ev, sess, "")
	case cbEmail:
		sess.Scratch.Fulfillment = cbEmail
		if err := m.reply(ctx, ev, m.t(sess, "email_prompt"), nil, false); err != nil {
			return StateWaitingEmail, err
		}
		return StateWaitingEmail, nil
	case cbGiftBox:
		sess.Scratch.Fulfillment = cbGiftBox
		return m.sendPolicy(ctx, ev, sess)
	}
	return m.sendFulfillmentMenu(ctx, ev, sess, m.t(sess, "fulfillment_unrecognized"))
}

func (m *Machine) handleCustomerEmail(ctx context.Context, ev Event, sess *model.Session) (State, error) {
	if ev.Kind != KindText {
		if err := m.reply(ctx, ev, m.t(sess, "email_error"), nil, false); err != nil {
			return StateWaitingEmail, err
		}
		return StateWaitingEmail, nil
	}

	email, err := ValidateEmail(ev.Text)
	if err != nil {
		if err := m.reply(ctx, ev, m.t(sess, "email_error"), nil, false); err != nil {
			return StateWaitingEmail, err
		}
		return StateWaitingEmail, nil
	}

	sess.Scratch.CustomerEmail = email
	return m.sendPolicy(ctx, ev, sess)
}

func (m *Machine) sendPolicy(ctx context.Context, ev Event, sess *model.Session) (State, error) {
	policyURL, err := m.store.PolicyURL(ctx, sess.Language)
	if err != nil {
		return m.storeFailure(ctx, ev, sess, err)
	}

	text := m.t(sess, "policy_text", policyURL)
	rows := [][]Button{{{Text: m.t(sess, "btn_policy_ack"), Data: cbPolicyAck}}}
	if err := m.reply(ctx, ev, text, rows, true); err != nil {
		return StateWaitingPolicyAck, err
	}
	return StateWaitingPolicyAck, nil
}

func (m *Machine) handlePolicyAck(ctx context.Context, ev Event, sess *model.Session) (State, error) {
	if ev.Kind != KindCallback || ev.Text != cbPolicyAck {
		return m.sendPolicy(ctx, ev, sess)
	}
	if err := m.reply(ctx, ev, m.t(sess, "fullname_prompt"), nil, false); err != nil {
		return StateWaitingFullName, err
	}
	return StateWaitingFullName, nil
}

func (m *Machine) handleCustomerFullName(ctx context.Context, ev Event, sess *model.Session) (State, error) {
	name, err := ValidateFullName(ev.Text)
	if ev.Kind != KindText || err != nil {
		if err := m.reply(ctx, ev, m.t(sess, "fullname_error"), nil, false); err != nil {
			return StateWaitingFullName, err
		}
		return StateWaitingFullName, nil
	}

	sess.Scratch.CustomerName = name
	if err := m.reply(ctx, ev, m.t(sess, "phone_prompt"), nil, false); err != nil {
		return StateWaitingPhone, err
	}
	return StateWaitingPhone, nil
}

func (m *Machine) handleCustomerPhone(ctx context.Context, ev Event, sess *model.Session) (State, error) {
	phone, err := NormalizePhone(ev.Text)
	if ev.Kind != KindText || err != nil {
		if err := m.reply(ctx, ev, m.t(sess, "phone_error"), nil, false); err != nil {
			return StateWaitingPhone, err
		}
		return StateWaitingPhone, nil
	}

	sess.Scratch.CustomerPhone = phone
	if sess.Scratch.Fulfillment == cbEmail {
		return m.sendPaymentDetails(ctx, ev, sess, "")
	}
	return m.sendDeliveryMenu(ctx, ev, sess, "")
}

func (m *Machine) sendPaymentDetails(ctx context.Context, ev Event, sess *model.Session, prefix string) (State, error) {
	details, err := m.store.PaymentDetails(ctx, sess.Language)
	if err != nil {
		return m.storeFailure(ctx, ev, sess, err)
	}

	text := EscapeMarkdown(prefix + m.t(sess, "payment_details", details))
	if err := m.reply(ctx, ev, text, nil, true); err != nil {
		return StateWaitingPaymentProof, err
	}
	return StateWaitingPaymentProof, nil
}

func (m *Machine) handlePaymentProof(ctx context.Context, ev Event, sess *model.Session) (State, error) {
	if ev.Kind != KindPhoto || ev.PhotoFileID == "" {
		return m.sendPaymentDetails(ctx, ev, sess, m.t(sess, "payment_no_screenshot"))
	}

	proof, err := m.sender.DownloadPhoto(ctx, ev.PhotoFileID)
	if err != nil {
		return m.storeFailure(ctx, ev, sess, err)
	}

	draft := m.orderDraft(ev, sess, true, proof)
	if state, done, err := m.submitOrder(ctx, ev, sess, draft); done {
		return state, err
	}

	rows := [][]Button{{{Text: m.t(sess, "btn_thanks"), Data: cbThanks}}}
	if err := m.reply(ctx, ev, m.t(sess, "purchase_thanks"), rows, false); err != nil {
		return StateDialogueEnd, err
	}
	return StateDialogueEnd, nil
}

func (m *Machine) sendDeliveryMenu(ctx context.Context, ev Event, sess *model.Session, prefix string) (State, error) {
	text := prefix + m.t(sess, "delivery_prompt")
	rows := [][]Button{{
		{Text: m.t(sess, "btn_courier"), Data: cbCourier},
		{Text: m.t(sess, "btn_self_delivery"), Data: cbPickup},
	}}
	if err := m.reply(ctx, ev, text, rows, false); err != nil {
		return StateSelectingDelivery, err
	}
	return StateSelectingDelivery, nil
}

func (m *Machine) handleDeliveryMenu(ctx context.Context, ev Event, sess *model.Session) (State, error) {
	if ev.Kind != KindCallback {
		return m.sendDeliveryMenu(ctx, ev, sess, m.t(sess, "delivery_unrecognized"))
	}

	switch ev.Text {
	case cbCourier:
		sess.Scratch.DeliveryMethod = cbCourier
		if err := m.reply(ctx, ev, m.t(sess, "recipient_name_prompt"), nil, false); err != nil {
			return StateWaitingRecipientName, err
		}
		return StateWaitingRecipientName, nil
	case cbPickup:
		sess.Scratch.DeliveryMethod = cbPickup
		return m.sendPickupMenu(ctx, ev, sess, "")
	}
	return m.sendDeliveryMenu(ctx, ev, sess, m.t(sess, "delivery_unrecognized"))
}

func (m *Machine) handleRecipientName(ctx context.Context, ev Event, sess *model.Session) (State, error) {
	name, err := ValidateRecipientName(ev.Text)
	if ev.Kind != KindText || err != nil {
		if err := m.reply(ctx, ev, m.t(sess, "fullname_error"), nil, false); err != nil {
			return StateWaitingRecipientName, err
		}
		return StateWaitingRecipientName, nil
	}

	sess.Scratch.RecipientName = name
	if err := m.reply(ctx, ev, m.t(sess, "recipient_contact_prompt"), nil, false); err != nil {
		return StateWaitingRecipientContact, err
	}
	return StateWaitingRecipientContact, nil
}

func (m *Machine) handleRecipientContact(ctx context.Context, ev Event, sess *model.Session) (State, error) {
	contact, err := ValidateRecipientContact(ev.Text)
	if ev.Kind != KindText || err != nil {
		if err := m.reply(ctx, ev, m.t(sess, "recipient_contact_error"), nil, false); err != nil {
			return StateWaitingRecipientContact, err
		}
		return StateWaitingRecipientContact, nil
	}

	sess.Scratch.RecipientContact = contact
	return m.finishBooking(ctx, ev, sess)
}

func (m *Machine) sendPickupMenu(ctx context.Context, ev Event, sess *model.Session, prefix string) (State, error) {
	point, err := m.store.PickupPoint(ctx, sess.Language)
	if err != nil {
		return m.storeFailure(ctx, ev, sess, err)
	}

	text := prefix + m.t(sess, "pickup_info", point.Address, point.Hours)
	rows := [][]Button{{
		{Text: m.t(sess, "btn_pickup_confirm"), Data: cbPickupYes},
		{Text: m.t(sess, "btn_pickup_reject"), Data: cbPickupNo},
	}}
	if err := m.reply(ctx, ev, text, rows, false); err != nil {
		return StateConfirmingPickup, err
	}
	return StateConfirmingPickup, nil
}

func (m *Machine) handlePickupMenu(ctx context.Context, ev Event, sess *model.Session) (State, error) {
	if ev.Kind != KindCallback {
		return m.sendPickupMenu(ctx, ev, sess, m.t(sess, "misunderstanding"))
	}

	switch ev.Text {
	case cbPickupYes:
		return m.finishBooking(ctx, ev, sess)
	case cbPickupNo:
		return m.sendDeliveryMenu(ctx, ev, sess, "")
	}
	return m.sendPickupMenu(ctx, ev, sess, m.t(sess, "misunderstanding"))
}

// finishBooking creates the order for the gift-box branch and confirms
// the booking. The payment-proof branch has its own terminal message.
func (m *Machine) finishBooking(ctx context.Context, ev Event, sess *model.Session) (State, error) {
	draft := m.orderDraft(ev, sess, false, nil)
	if state, done, err := m.submitOrder(ctx, ev, sess, draft); done {
		return state, err
	}

	if err := m.reply(ctx, ev, m.t(sess, "booking_done"), nil, false); err != nil {
		return StateDialogueEnd, err
	}
	return StateDialogueEnd, nil
}

// orderDraft assembles the Order Draft from scratch data. For every
// fulfillment except courier delivery the customer is the recipient.
func (m *Machine) orderDraft(ev Event, sess *model.Session, viaEmail bool, proof []byte) model.OrderDraft {
	recipientName := sess.Scratch.RecipientName
	recipientContact := sess.Scratch.RecipientContact
	if viaEmail || sess.Scratch.DeliveryMethod != cbCourier {
		recipientName = sess.Scratch.CustomerName
		recipientContact = m.t(sess, "recipient_is_customer")
	}

	deliveryMethod := sess.Scratch.DeliveryMethod
	if viaEmail {
		deliveryMethod = ""
	}

	return model.OrderDraft{
		ChatID:           ev.ChatID,
		Username:         ev.Username,
		Language:         sess.Language,
		CustomerEmail:    sess.Scratch.CustomerEmail,
		CustomerName:     sess.Scratch.CustomerName,
		CustomerPhone:    sess.Scratch.CustomerPhone,
		ItemID:           sess.Scratch.ItemID,
		RecipientName:    recipientName,
		RecipientContact: recipientContact,
		ViaEmail:         viaEmail,
		DeliveryMethod:   deliveryMethod,
		ProofImage:       proof,
	}
}

// submitOrder hands the draft to the store. done=true means the caller
// must return (state, err) as-is: either the item disappeared and the
// item list was re-rendered, or the store failed and the user was told
// to retry.
func (m *Machine) submitOrder(ctx context.Context, ev Event, sess *model.Session, draft model.OrderDraft) (State, bool, error) {
	err := m.store.CreateOrder(ctx, draft)
	if errors.Is(err, domain.ErrNotFound) {
		state, rerr := m.sendItemsMenu(ctx, ev, sess, m.t(sess, "items_unrecognized"))
		return state, true, rerr
	}
	if err != nil {
		state, rerr := m.storeFailure(ctx, ev, sess, err)
		return state, true, rerr
	}
	return "", false, nil
}
