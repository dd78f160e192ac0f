package validation

import (
	"errors"
	"strings"

	"fixmycity/internal/models"
)

// Registration rule failures, reported one at a time in a fixed order.
var (
	ErrNameRequired      = errors.New("please enter your full name")
	ErrEmailRequired     = errors.New("please enter your email address")
	ErrEmailInvalid      = errors.New("please enter a valid email address")
	ErrMobileRequired    = errors.New("please enter your mobile number")
	ErrMobileInvalid     = errors.New("please enter a valid mobile number")
	ErrPasswordRequired  = errors.New("please enter a password")
	ErrPasswordMismatch  = errors.New("passwords do not match")
	ErrPasswordWeak      = errors.New("please create a stronger password")
	ErrTermsNotAccepted  = errors.New("please accept the terms and conditions")
	ErrAuthMethodInvalid = errors.New("please choose a valid authentication method")
)

var registrationErrors = []error{
	ErrNameRequired, ErrEmailRequired, ErrEmailInvalid,
	ErrMobileRequired, ErrMobileInvalid, ErrPasswordRequired,
	ErrPasswordMismatch, ErrPasswordWeak, ErrTermsNotAccepted,
	ErrAuthMethodInvalid,
}

// IsValidationError reports whether err is one of the registration rule
// failures, so handlers can answer with 400 instead of 500.
func IsValidationError(err error) bool {
	for _, target := range registrationErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// ValidateRegistration applies the registration rules in order and returns
// the first failure. Rules: full name; email present and well formed; mobile
// present and well formed; for password auth, password present, matching its
// confirmation, and scoring at least MinPasswordScore; terms accepted.
func ValidateRegistration(in *models.RegisterInput) error {
	if strings.TrimSpace(in.FullName) == "" {
		return ErrNameRequired
	}
	if strings.TrimSpace(in.Email) == "" {
		return ErrEmailRequired
	}
	if !ValidEmail(in.Email) {
		return ErrEmailInvalid
	}
	if strings.TrimSpace(in.Mobile) == "" {
		return ErrMobileRequired
	}
	if !ValidMobile(in.Mobile) {
		return ErrMobileInvalid
	}
	if !models.ValidAuthMethod(in.AuthMethod) {
		return ErrAuthMethodInvalid
	}
	if in.AuthMethod == models.AuthMethodPassword {
		if in.Password == "" {
			return ErrPasswordRequired
		}
		if in.Password != in.ConfirmPassword {
			return ErrPasswordMismatch
		}
		if StrengthScore(in.Password) < MinPasswordScore {
			return ErrPasswordWeak
		}
	}
	if !in.AgreeTerms {
		return ErrTermsNotAccepted
	}
	return nil
}
