package validation

import (
	"regexp"
	"strings"
)

// Validation rule patterns
var (
	// Email validation pattern - matches the shape the site accepts
	EmailPattern = `^[^\s@]+@[^\s@]+\.[^\s@]+$`

	// Subject/message length bounds for contact submissions
	SubjectMaxLength = 200
	MessageMaxLength = 5000
)

// CompiledPatterns caches compiled regex patterns for better performance
var CompiledPatterns = struct {
	Email *regexp.Regexp
}{
	Email: regexp.MustCompile(EmailPattern),
}

// IsValidEmail reports whether the value looks like an email address.
func IsValidEmail(value string) bool {
	return CompiledPatterns.Email.MatchString(strings.TrimSpace(value))
}

// SubscriptionFrequencies is the fixed set of newsletter frequencies.
var SubscriptionFrequencies = []string{"daily", "weekly"}

// IsValidFrequency reports whether the value is one of the accepted frequencies.
func IsValidFrequency(value string) bool {
	for _, f := range SubscriptionFrequencies {
		if value == f {
			return true
		}
	}
	return false
}
