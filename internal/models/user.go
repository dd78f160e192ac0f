package models

import (
	"time"

	"gorm.io/gorm"
)

// Authentication methods a citizen can choose at registration.
const (
	AuthMethodOTP       = "otp"
	AuthMethodBiometric = "biometric"
	AuthMethodPassword  = "password"
)

type User struct {
	gorm.Model
	Name         string `gorm:"not null" json:"name"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	Phone        string `gorm:"uniqueIndex;not null" json:"phone"`
	Password     string `gorm:"default:''" json:"-"`
	AuthMethod   string `gorm:"default:'otp'" json:"auth_method"`
	Verified     bool   `gorm:"default:false" json:"verified"`
	Role         string `gorm:"default:'citizen'" json:"role"`
	Language     string `gorm:"default:'en'" json:"language"`
	Location     string `json:"location"`
	AvatarURL    string `json:"avatar_url,omitempty"`
	TokenVersion int    `gorm:"default:1" json:"-"`
	LastLoginAt  time.Time `json:"last_login_at"`
}

// ValidAuthMethod reports whether m is one of the supported authentication methods.
func ValidAuthMethod(m string) bool {
	switch m {
	case AuthMethodOTP, AuthMethodBiometric, AuthMethodPassword:
		return true
	}
	return false
}

// RegisterInput carries the registration form fields.
type RegisterInput struct {
	FullName        string `json:"full_name"`
	Email           string `json:"email"`
	Mobile          string `json:"mobile"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	AuthMethod      string `json:"auth_method"`
	AgreeTerms      bool   `json:"agree_terms"`
}

// Session is the serialized per-user session object held in the key-value store.
type Session struct {
	UserID     uint      `json:"user_id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Verified   bool      `json:"verified"`
	AuthMethod string    `json:"auth_method"`
	LoggedInAt time.Time `json:"logged_in_at"`
}
