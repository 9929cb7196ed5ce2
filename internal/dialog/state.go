package dialog

// State identifies the dialogue step awaiting the user's next event.
type State string

const (
	StateStart                   State = "start"
	StateSelectingLanguage       State = "selecting_language"
	StateMainMenu                State = "main_menu"
	StateSelectingItem           State = "selecting_item"
	StateSelectingFulfillment    State = "selecting_fulfillment"
	StateWaitingEmail            State = "waiting_email"
	StateWaitingPolicyAck        State = "waiting_policy_ack"
	StateWaitingFullName         State = "waiting_full_name"
	StateWaitingPhone            State = "waiting_phone"
	StateSelectingDelivery       State = "selecting_delivery"
	StateWaitingRecipientName    State = "waiting_recipient_name"
	StateWaitingRecipientContact State = "waiting_recipient_contact"
	StateConfirmingPickup        State = "confirming_pickup"
	StateWaitingPaymentProof     State = "waiting_payment_proof"
	StateWaitingCode             State = "waiting_code"
	StateCodeRejected            State = "code_rejected"
	StateSelectingQuestion       State = "selecting_question"
	StateAnswerShown             State = "answer_shown"
	StateDialogueEnd             State = "dialogue_end"
)

// AllStates enumerates every dialogue state the dispatcher registers.
var AllStates = []State{
	StateStart,
	StateSelectingLanguage,
	StateMainMenu,
	StateSelectingItem,
	StateSelectingFulfillment,
	StateWaitingEmail,
	StateWaitingPolicyAck,
	StateWaitingFullName,
	StateWaitingPhone,
	StateSelectingDelivery,
	StateWaitingRecipientName,
	StateWaitingRecipientContact,
	StateConfirmingPickup,
	StateWaitingPaymentProof,
	StateWaitingCode,
	StateCodeRejected,
	StateSelectingQuestion,
	StateAnswerShown,
	StateDialogueEnd,
}
