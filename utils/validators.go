// File: /utils/validators.go
package utils

import (
	"regexp"
	"unicode"
)

// profileNameRegex is the URL-safe character class for profile names:
// letters, digits, underscore and hyphen only. No whitespace, no other
// punctuation. Shared by the identity store and any pre-check a client
// layer wants to run before hitting the store.
var profileNameRegex = regexp.MustCompile(`^[a-zA-Z0-9_\-]+$`)

func IsValidProfileName(name string) bool {
	return profileNameRegex.MatchString(name)
}

func IsValidEmail(email string) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}

func IsValidPassword(password string) bool {
	if len(password) < 6 {
		return false
	}

	var (
		hasUpper   = false
		hasLower   = false
		hasNumber  = false
		hasSpecial = false
	)

	for _, char := range password {
		switch {
		case unicode.IsUpper(char):
			hasUpper = true
		case unicode.IsLower(char):
			hasLower = true
		case unicode.IsNumber(char):
			hasNumber = true
		case unicode.IsPunct(char) || unicode.IsSymbol(char):
			hasSpecial = true
		}
	}

	// At least 3 of 4 character types required
	count := 0
	if hasUpper {
		count++
	}
	if hasLower {
		count++
	}
	if hasNumber {
		count++
	}
	if hasSpecial {
		count++
	}

	return count >= 3
}
