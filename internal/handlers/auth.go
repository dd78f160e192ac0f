package handlers

import (
	"errors"
	"log"
	"time"

	"fixmycity/internal/config"
	"fixmycity/internal/models"
	"fixmycity/internal/repositories"
	"fixmycity/internal/services/auth"
	"fixmycity/internal/utils"
	"fixmycity/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authService auth.Service
}

func NewAuthHandler(authService auth.Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// LoginUser handles user authentication and returns JWT tokens
func (h *AuthHandler) LoginUser(c *fiber.Ctx) error {
	var input struct {
		Identifier string `json:"identifier"`
		Password   string `json:"password"`
	}

	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	user, accessToken, refreshToken, err := h.authService.Login(c.UserContext(), input.Identifier, input.Password)
	if err != nil {
		if errors.Is(err, auth.ErrMissingCredentials) {
			return utils.BadRequest(c, err.Error())
		}
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return utils.Unauthorized(c, "Invalid email or password")
		}
		log.Printf("Login error: %v", err)
		return utils.InternalError(c, "Authentication failed")
	}

	h.setAuthCookies(c, accessToken, refreshToken)

	return utils.Success(c, fiber.Map{
		"access_token":  accessToken,
		"refresh_token": refreshToken,
		"user":          userPayload(user),
	})
}

// RegisterUser creates a new citizen account and logs it in.
func (h *AuthHandler) RegisterUser(c *fiber.Ctx) error {
	var input models.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	user, accessToken, refreshToken, err := h.authService.Register(c.UserContext(), &input)
	if err != nil {
		if errors.Is(err, repositories.ErrEmailTaken) || errors.Is(err, repositories.ErrPhoneTaken) {
			return utils.Error(c, fiber.StatusConflict, err.Error())
		}
		if validation.IsValidationError(err) {
			return utils.BadRequest(c, err.Error())
		}
		log.Printf("Registration error: %v", err)
		return utils.InternalError(c, "Registration failed")
	}

	h.setAuthCookies(c, accessToken, refreshToken)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"access_token":  accessToken,
		"refresh_token": refreshToken,
		"user":          userPayload(user),
	})
}

// SendOTP issues a one-time code to a mobile number.
func (h *AuthHandler) SendOTP(c *fiber.Ctx) error {
	var input struct {
		Mobile string `json:"mobile"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	if err := h.authService.SendOTP(c.UserContext(), input.Mobile); err != nil {
		return utils.BadRequest(c, err.Error())
	}

	return utils.Success(c, fiber.Map{
		"message": "Verification code sent",
	})
}

// VerifyOTP confirms a mobile number with the code sent to it.
func (h *AuthHandler) VerifyOTP(c *fiber.Ctx) error {
	var input struct {
		Mobile string `json:"mobile"`
		Code   string `json:"code"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	if err := h.authService.VerifyOTP(c.UserContext(), input.Mobile, input.Code); err != nil {
		if errors.Is(err, auth.ErrInvalidOTP) {
			return utils.BadRequest(c, err.Error())
		}
		return utils.InternalError(c, "Verification failed")
	}

	return utils.Success(c, fiber.Map{
		"message": "Mobile number verified",
	})
}

// RefreshToken handles token refresh requests
func (h *AuthHandler) RefreshToken(c *fiber.Ctx) error {
	// First try to get token from cookies
	refreshToken := c.Cookies("refresh_token")

	// If not in cookies, try request body
	if refreshToken == "" {
		var input struct {
			RefreshToken string `json:"refresh_token"`
		}
		if err := c.BodyParser(&input); err != nil {
			return utils.Unauthorized(c, "Refresh token not provided")
		}
		refreshToken = input.RefreshToken
	}

	if refreshToken == "" {
		return utils.Unauthorized(c, "Refresh token not provided")
	}

	newAccessToken, newRefreshToken, err := h.authService.RefreshTokens(refreshToken)
	if err != nil {
		log.Printf("Token refresh failed: %v", err)
		return utils.Unauthorized(c, "Invalid refresh token")
	}

	h.setAuthCookies(c, newAccessToken, newRefreshToken)

	return utils.Success(c, fiber.Map{
		"token":         newAccessToken,
		"refresh_token": newRefreshToken,
	})
}

// LogoutUser handles user logout
func (h *AuthHandler) LogoutUser(c *fiber.Ctx) error {
	claims, ok := c.Locals("claims").(*models.UserClaims)
	if !ok {
		return utils.Unauthorized(c, "Invalid claims")
	}

	// Increment token version to invalidate all existing tokens
	if err := h.authService.Logout(c.UserContext(), claims.UserID); err != nil {
		return utils.InternalError(c, "Failed to logout")
	}

	// Clear cookies
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   config.IsProduction(),
		Path:     "/",
	})
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   config.IsProduction(),
		Path:     "/",
	})

	return utils.Success(c, fiber.Map{
		"message": "Successfully logged out",
	})
}

// GetSession returns the stored session for the authenticated user so the
// client can resume where it left off. A null session means there is nothing
// to resume and the client should show the login screen.
func (h *AuthHandler) GetSession(c *fiber.Ctx) error {
	claims, ok := c.Locals("claims").(*models.UserClaims)
	if !ok {
		return utils.Unauthorized(c, "Invalid claims")
	}

	sess, err := h.authService.Session(c.UserContext(), claims.UserID)
	if err != nil {
		log.Printf("Session lookup failed for user %d: %v", claims.UserID, err)
		return utils.InternalError(c, "Failed to load session")
	}

	return utils.Success(c, fiber.Map{
		"session": sess,
	})
}

// Helper methods

func userPayload(user *models.User) fiber.Map {
	return fiber.Map{
		"id":          user.ID,
		"name":        user.Name,
		"email":       user.Email,
		"phone":       user.Phone,
		"verified":    user.Verified,
		"role":        user.Role,
		"permissions": models.GetDefaultPermissions(user.Role),
	}
}

func (h *AuthHandler) setAuthCookies(c *fiber.Ctx, accessToken, refreshToken string) {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    accessToken,
		HTTPOnly: true,
		Secure:   config.IsProduction(),
		Path:     "/",
		SameSite: "Strict",
		MaxAge:   15 * 60, // 15 minutes
	})

	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    refreshToken,
		HTTPOnly: true,
		Secure:   config.IsProduction(),
		Path:     "/",
		SameSite: "Strict",
		MaxAge:   7 * 24 * 60 * 60, // 7 days
	})
}
