package profile

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Validation messages are user-facing and field-scoped; an empty return
// means the input passed.

var (
	// Minimal local@domain.tld shape: no whitespace anywhere, no '@' inside
	// the local or domain parts, and at least one dot-delimited segment
	// after the domain.
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	nonDigits = regexp.MustCompile(`\D`)

	upperClass   = regexp.MustCompile(`[A-Z]`)
	lowerClass   = regexp.MustCompile(`[a-z]`)
	digitClass   = regexp.MustCompile(`\d`)
	specialClass = regexp.MustCompile(`[!@#$%^&*(),.?":{}|<>]`)
)

func validateAlias(alias string) string {
	trimmed := strings.TrimSpace(alias)
	if trimmed == "" {
		return "Alias name cannot be empty"
	}
	if utf8.RuneCountInString(trimmed) < 2 {
		return "Alias name must be at least 2 characters long"
	}
	return ""
}

func validateEmail(email string) string {
	trimmed := strings.TrimSpace(email)
	if trimmed == "" {
		return "Email is required"
	}
	if !emailPattern.MatchString(trimmed) {
		return "Please enter a valid email address"
	}
	return ""
}

// validMobilePrefixes are the digits an Indian mobile number may start with.
var validMobilePrefixes = "6789"

func validateMobile(mobile string) string {
	trimmed := strings.TrimSpace(mobile)
	if trimmed == "" {
		return "Mobile number is required"
	}

	digits := nonDigits.ReplaceAllString(trimmed, "")
	if len(digits) != 10 {
		return "Please enter a valid 10-digit mobile number"
	}
	if !strings.ContainsRune(validMobilePrefixes, rune(digits[0])) {
		return "Please enter a valid mobile number"
	}
	return ""
}

// validatePasswordStrength enforces the strength rule for new passwords:
// at least 6 characters with one uppercase letter, one lowercase letter,
// one digit, and one special character.
func validatePasswordStrength(password string) string {
	if len(password) < 6 {
		return "Password must be at least 6 characters long"
	}

	if !upperClass.MatchString(password) ||
		!lowerClass.MatchString(password) ||
		!digitClass.MatchString(password) ||
		!specialClass.MatchString(password) {
		return "Password must contain at least one uppercase letter, one lowercase letter, one number and one special character"
	}
	return ""
}

// validatePasswordChange runs the full pre-submit password checks in the
// order the user sees them.
func validatePasswordChange(current, newPassword, confirm string) string {
	if current == "" || newPassword == "" || confirm == "" {
		return "All password fields are required"
	}
	if current == newPassword {
		return "New password must be different from current password"
	}
	if newPassword != confirm {
		return "New password and confirm password do not match"
	}
	return validatePasswordStrength(newPassword)
}
