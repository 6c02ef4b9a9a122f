package forms

import (
	"fmt"
	"net/mail"
	"strings"
)

const stellarKeyLength = 56

// Required rejects empty or whitespace-only values.
func Required(label string) Validator {
	return func(value string) string {
		if strings.TrimSpace(value) == "" {
			return fmt.Sprintf("%s is required", label)
		}
		return ""
	}
}

// Email accepts empty values so it can be combined with Required, and
// otherwise checks the address format.
func Email() Validator {
	return func(value string) string {
		if value == "" {
			return ""
		}
		if _, err := mail.ParseAddress(value); err != nil {
			return "Invalid email address"
		}
		return ""
	}
}

// WalletAddress checks for a Stellar public key: 56 characters, 'G' prefix,
// base32 alphabet.
func WalletAddress() Validator {
	return func(value string) string {
		if value == "" {
			return ""
		}
		if len(value) != stellarKeyLength || value[0] != 'G' {
			return "Invalid Stellar wallet address"
		}
		for _, r := range value {
			if (r < 'A' || r > 'Z') && (r < '2' || r > '7') {
				return "Invalid Stellar wallet address"
			}
		}
		return ""
	}
}

// MaxLen caps the value length in runes.
func MaxLen(label string, max int) Validator {
	return func(value string) string {
		if len([]rune(value)) > max {
			return fmt.Sprintf("%s must be at most %d characters", label, max)
		}
		return ""
	}
}

// All combines validators; the first failure wins.
func All(validators ...Validator) Validator {
	return func(value string) string {
		for _, v := range validators {
			if msg := v(value); msg != "" {
				return msg
			}
		}
		return ""
	}
}
