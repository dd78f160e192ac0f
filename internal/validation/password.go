package validation

import "unicode"

// Password strength criteria. The score grants one point per criterion met,
// so it always lies in [0,5] and never decreases as criteria are added.
const (
	MinPasswordLength = 8
	MaxPasswordLength = 72

	// Minimum acceptable strength score for registration.
	MinPasswordScore = 2
)

// StrengthScore scores a password 0-5: one point each for length >= 8, an
// uppercase letter, a lowercase letter, a digit, and a symbol.
func StrengthScore(password string) int {
	score := 0
	if len(password) >= MinPasswordLength {
		score++
	}

	var hasUpper, hasLower, hasNumber, hasSpecial bool
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

	for _, met := range []bool{hasUpper, hasLower, hasNumber, hasSpecial} {
		if met {
			score++
		}
	}
	return score
}

// StrengthFeedback lists the unmet criteria for a password, in the order
// they are presented to the user.
func StrengthFeedback(password string) []string {
	var feedback []string
	if len(password) < MinPasswordLength {
		feedback = append(feedback, "At least 8 characters")
	}

	var hasUpper, hasLower, hasNumber, hasSpecial bool
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

	if !hasUpper {
		feedback = append(feedback, "One uppercase letter")
	}
	if !hasLower {
		feedback = append(feedback, "One lowercase letter")
	}
	if !hasNumber {
		feedback = append(feedback, "One number")
	}
	if !hasSpecial {
		feedback = append(feedback, "One special character")
	}
	return feedback
}
