package model

// PickupPoint describes the self-delivery location.
type PickupPoint struct {
	Address string
	Hours   string
}

// BotContent is the operator-maintained static text of the storefront,
// one row per deployment.
type BotContent struct {
	RussianPolicyURL       string
	EnglishPolicyURL       string
	RussianPaymentDetails  string
	EnglishPaymentDetails  string
	RussianPickupAddress   string
	EnglishPickupAddress   string
	RussianPickupHours     string
	EnglishPickupHours     string
}

func (c *BotContent) PolicyURL(lang Language) string {
	if lang == LanguageEnglish {
		return c.EnglishPolicyURL
	}
	return c.RussianPolicyURL
}

func (c *BotContent) PaymentDetails(lang Language) string {
	if lang == LanguageEnglish {
		return c.EnglishPaymentDetails
	}
	return c.RussianPaymentDetails
}

func (c *BotContent) Pickup(lang Language) PickupPoint {
	if lang == LanguageEnglish {
		return PickupPoint{Address: c.EnglishPickupAddress, Hours: c.EnglishPickupHours}
	}
	return PickupPoint{Address: c.RussianPickupAddress, Hours: c.RussianPickupHours}
}
