package reconcile

import (
	"regexp"
	"strings"
	"unicode"
)

const (
	// DefaultStatus is recorded when a vendor reply names no shipment status.
	DefaultStatus = "Pending"
	// DefaultPayment is recorded when a vendor reply names no payment amount.
	DefaultPayment = "N/A"
)

var (
	statusPattern  = regexp.MustCompile(`(?i)(shipped|dispatched|delivered|not\s+shipped|confirmed|dispatch)`)
	paymentPattern = regexp.MustCompile(`(?i)(?:payment|amount)[:\- ]*₹?\s?(\d+[,.]?\d*)`)
)

// ExtractStatus returns the first shipment status keyword found in text,
// capitalized, or DefaultStatus when none matches.
func ExtractStatus(text string) string {
	m := statusPattern.FindStringSubmatch(text)
	if m == nil {
		return DefaultStatus
	}
	return capitalize(m[1])
}

// ExtractPayment returns the first numeric value following a payment or
// amount keyword, or DefaultPayment when none matches.
func ExtractPayment(text string) string {
	m := paymentPattern.FindStringSubmatch(text)
	if m == nil {
		return DefaultPayment
	}
	return m[1]
}

// capitalize uppercases the first rune and lowercases the rest, so
// "not shipped" and "SHIPPED" become "Not shipped" and "Shipped".
func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(strings.ToLower(s))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
