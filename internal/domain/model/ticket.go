package model

import "time"

// Support ticket reason tags set by the dialogue before handing off.
const (
	TicketReasonActivation = "activation_problem"
	TicketReasonQuestion   = "question_for_operator"
)

// SupportTicket is a request to be contacted by an operator.
type SupportTicket struct {
	ID        string
	ChatID    int64
	Username  string
	Language  Language
	Reason    string
	CreatedAt time.Time
}
