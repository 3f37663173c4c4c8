package domain

import (
	"strings"
	"unicode"
)

const specialCharacters = "!@#$%^&*()_+-=[]{}|;:,.<>?"

// ValidatePassword checks every policy rule independently and reports all
// violations, not just the first.
func ValidatePassword(password string) []string {
	var violations []string

	if len(password) < 8 {
		violations = append(violations, "Password must be at least 8 characters long")
	}

	if !strings.ContainsFunc(password, unicode.IsUpper) {
		violations = append(violations, "Password must contain at least one uppercase letter")
	}

	if !strings.ContainsFunc(password, unicode.IsLower) {
		violations = append(violations, "Password must contain at least one lowercase letter")
	}

	if !strings.ContainsFunc(password, unicode.IsDigit) {
		violations = append(violations, "Password must contain at least one number")
	}

	if !strings.ContainsAny(password, specialCharacters) {
		violations = append(violations, "Password must contain at least one special character")
	}

	return violations
}
