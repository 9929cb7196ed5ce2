package model

// Language is the conversation language picked once per session.
type Language string

const (
	LanguageRussian Language = "russian"
	LanguageEnglish Language = "english"
)

// Valid reports whether l is one of the supported languages.
func (l Language) Valid() bool {
	return l == LanguageRussian || l == LanguageEnglish
}

// Scratch accumulates checkout data during a single flow. Fields are
// optional until the step that requires them; the whole struct is reset
// whenever a new top-level flow starts.
type Scratch struct {
	ItemID           int64  `json:"item_id,omitempty"`
	Fulfillment      string `json:"fulfillment,omitempty"`       // "email" | "gift_box"
	CustomerEmail    string `json:"customer_email,omitempty"`
	CustomerName     string `json:"customer_name,omitempty"`
	CustomerPhone    string `json:"customer_phone,omitempty"`
	DeliveryMethod   string `json:"delivery_method,omitempty"`   // "courier_delivery" | "self_delivery"
	RecipientName    string `json:"recipient_name,omitempty"`
	RecipientContact string `json:"recipient_contact,omitempty"`
	RequestType      string `json:"request_type,omitempty"`      // support ticket reason tag
	FAQID            int64  `json:"faq_id,omitempty"`            // last shown FAQ answer
}

// Session is the per-chat persisted dialogue state. State holds the
// identifier of the dialogue state awaiting the next event; an empty
// value means the conversation starts from the beginning.
type Session struct {
	State    string   `json:"state"`
	Language Language `json:"language,omitempty"`
	Scratch  Scratch  `json:"scratch"`
}

// ResetFlow clears scratch data collected by a finished or abandoned flow.
// Language is sticky and survives the reset.
func (s *Session) ResetFlow() {
	s.Scratch = Scratch{}
}
