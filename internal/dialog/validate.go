package dialog

import (
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/nyaruka/phonenumbers"
)

// Validation failures are values consumed by state handlers to decide
// between re-prompting and advancing; they never escape the dialogue.
var (
	ErrBadEmail            = errors.New("malformed email address")
	ErrBadPhone            = errors.New("implausible phone number")
	ErrBadFullName         = errors.New("full name too short or missing surname")
	ErrBadRecipientName    = errors.New("recipient name is empty")
	ErrBadRecipientContact = errors.New("recipient contact too short")
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9_.+-]+@[a-zA-Z0-9-]+\.[a-zA-Z0-9-.]+$`)

// ValidateEmail checks raw input against a local-part/domain/TLD
// pattern and returns the trimmed address.
func ValidateEmail(raw string) (string, error) {
	email := strings.TrimSpace(raw)
	if !emailPattern.MatchString(email) {
		return "", ErrBadEmail
	}
	return email, nil
}

// NormalizePhone rewrites the domestic trunk prefix to the country
// code form, parses the number and checks it for plausibility. The
// result is normalized to +<countryCode><nationalNumber>.
func NormalizePhone(raw string) (string, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return "", ErrBadPhone
	}
	if value[0] == '8' {
		value = "+7" + value[1:]
	}
	num, err := phonenumbers.Parse(value, "")
	if err != nil {
		return "", ErrBadPhone
	}
	if !phonenumbers.IsValidNumber(num) {
		return "", ErrBadPhone
	}
	return phonenumbers.Format(num, phonenumbers.E164), nil
}

// ValidateFullName requires at least four characters and an internal
// space, a cheap first-plus-last-name heuristic. Lengths count runes,
// not bytes, so Cyrillic names are measured the same as Latin ones.
func ValidateFullName(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if utf8.RuneCountInString(name) < 4 || !strings.Contains(name, " ") {
		return "", ErrBadFullName
	}
	return name, nil
}

// ValidateRecipientName requires a non-empty name.
func ValidateRecipientName(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return "", ErrBadRecipientName
	}
	return name, nil
}

// ValidateRecipientContact requires at least three characters, enough
// for a short messenger handle.
func ValidateRecipientContact(raw string) (string, error) {
	contact := strings.TrimSpace(raw)
	if utf8.RuneCountInString(contact) < 3 {
		return "", ErrBadRecipientContact
	}
	return contact, nil
}
