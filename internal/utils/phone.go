package utils

import (
	"errors"
	"strings"
)

// Phones reach us in every historical shape: with or without the country
// code, with or without the mobile-indicator digit, with separators. The
// canonical form is digits only, country code and mobile indicator included.
const (
	countryPrefix   = "52"
	mobileIndicator = "1"
	suffixLen       = 10
)

// ErrInvalidPhone indicates the input has too few digits to be a phone number
var ErrInvalidPhone = errors.New("invalid phone number")

// stripNonDigits removes everything but digits from a phone string
func stripNonDigits(phone string) string {
	var b strings.Builder
	b.Grow(len(phone))
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NormalizePhone strips formatting and produces the canonical international
// form. A 12-digit number carrying the country prefix but missing the
// mobile-indicator digit gets it inserted ("52" + 10 digits -> "521" + 10).
func NormalizePhone(phone string) (string, error) {
	stripped := stripNonDigits(phone)
	if len(stripped) < suffixLen {
		return "", ErrInvalidPhone
	}

	if len(stripped) == 12 && strings.HasPrefix(stripped, countryPrefix) &&
		!strings.HasPrefix(stripped, countryPrefix+mobileIndicator) {
		stripped = countryPrefix + mobileIndicator + stripped[len(countryPrefix):]
	}

	return stripped, nil
}

// PhoneSuffix returns the last 10 digits of a phone string. Two phones
// denote the same person iff their suffixes match; this is the equality
// rule for every cross-record lookup.
func PhoneSuffix(phone string) string {
	stripped := stripNonDigits(phone)
	if len(stripped) <= suffixLen {
		return stripped
	}
	return stripped[len(stripped)-suffixLen:]
}

// SamePhone reports whether two phone strings resolve to the same identity
func SamePhone(a, b string) bool {
	return PhoneSuffix(a) != "" && PhoneSuffix(a) == PhoneSuffix(b)
}
