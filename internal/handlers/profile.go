package handlers

import (
	"log"

	"fixmycity/internal/i18n"
	"fixmycity/internal/models"
	"fixmycity/internal/repositories"
	"fixmycity/internal/repositories/cache"
	"fixmycity/internal/uploads"
	"fixmycity/internal/utils"
	"fixmycity/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type ProfileHandler struct {
	userRepo repositories.UserRepository
	cache    *cache.CacheService
}

func NewProfileHandler(userRepo repositories.UserRepository, cacheService *cache.CacheService) *ProfileHandler {
	return &ProfileHandler{
		userRepo: userRepo,
		cache:    cacheService,
	}
}

// GetProfile returns the logged-in user's profile.
func (h *ProfileHandler) GetProfile(c *fiber.Ctx) error {
	claims, ok := c.Locals("claims").(*models.UserClaims)
	if !ok {
		return utils.Unauthorized(c, "Invalid claims")
	}

	user, err := h.userRepo.GetByID(claims.UserID)
	if err != nil {
		return utils.NotFound(c, "User not found")
	}

	return utils.Success(c, fiber.Map{
		"id":          user.ID,
		"name":        user.Name,
		"email":       user.Email,
		"phone":       user.Phone,
		"verified":    user.Verified,
		"role":        user.Role,
		"language":    user.Language,
		"location":    user.Location,
		"avatar_url":  user.AvatarURL,
		"auth_method": user.AuthMethod,
	})
}

// UpdateProfile changes the editable profile fields.
func (h *ProfileHandler) UpdateProfile(c *fiber.Ctx) error {
	claims, ok := c.Locals("claims").(*models.UserClaims)
	if !ok {
		return utils.Unauthorized(c, "Invalid claims")
	}

	var input struct {
		Name     string `json:"name"`
		Location string `json:"location"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	v := validation.New()
	if input.Name != "" {
		v.MaxLength("name", input.Name, 100)
	}
	if input.Location != "" {
		_, known := models.LocationLabel(input.Location)
		v.Check(known, "location", "must be one of the listed areas")
	}
	if !v.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"errors": v.Errors,
		})
	}

	user, err := h.userRepo.GetByID(claims.UserID)
	if err != nil {
		return utils.NotFound(c, "User not found")
	}

	if input.Name != "" {
		user.Name = input.Name
	}
	if input.Location != "" {
		user.Location = input.Location
	}

	if err := h.userRepo.Update(user); err != nil {
		log.Printf("Profile update failed for user %d: %v", user.ID, err)
		return utils.InternalError(c, "Failed to update profile")
	}

	return utils.Success(c, fiber.Map{
		"message": "Profile updated",
	})
}

// UploadPhoto validates and records a new profile photo.
func (h *ProfileHandler) UploadPhoto(c *fiber.Ctx) error {
	claims, ok := c.Locals("claims").(*models.UserClaims)
	if !ok {
		return utils.Unauthorized(c, "Invalid claims")
	}

	file, err := c.FormFile("photo")
	if err != nil {
		return utils.BadRequest(c, "No file provided")
	}

	if err := uploads.ValidateProfilePhoto(file.Filename, file.Header.Get("Content-Type"), file.Size); err != nil {
		return utils.BadRequest(c, err.Error())
	}

	user, err := h.userRepo.GetByID(claims.UserID)
	if err != nil {
		return utils.NotFound(c, "User not found")
	}

	user.AvatarURL = "/uploads/avatars/" + file.Filename
	if err := h.userRepo.Update(user); err != nil {
		return utils.InternalError(c, "Failed to save photo")
	}

	return utils.Success(c, fiber.Map{
		"avatar_url": user.AvatarURL,
	})
}

// UploadDocument validates a supporting document.
func (h *ProfileHandler) UploadDocument(c *fiber.Ctx) error {
	file, err := c.FormFile("document")
	if err != nil {
		return utils.BadRequest(c, "No file provided")
	}

	if err := uploads.ValidateDocument(file.Filename, file.Header.Get("Content-Type"), file.Size); err != nil {
		return utils.BadRequest(c, err.Error())
	}

	return utils.Success(c, fiber.Map{
		"file_name": file.Filename,
		"size":      file.Size,
	})
}

// GetLanguage returns the viewer's language preference.
func (h *ProfileHandler) GetLanguage(c *fiber.Ctx) error {
	claims, ok := c.Locals("claims").(*models.UserClaims)
	if !ok {
		return utils.Unauthorized(c, "Invalid claims")
	}

	return utils.Success(c, fiber.Map{
		"language":  h.cache.GetLanguage(c.UserContext(), claims.UserID),
		"languages": i18n.Languages,
	})
}

// SetLanguage stores the viewer's language preference.
func (h *ProfileHandler) SetLanguage(c *fiber.Ctx) error {
	claims, ok := c.Locals("claims").(*models.UserClaims)
	if !ok {
		return utils.Unauthorized(c, "Invalid claims")
	}

	var input struct {
		Language string `json:"language"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	if !i18n.Supported(input.Language) {
		return utils.BadRequest(c, "Unsupported language")
	}

	if err := h.cache.SetLanguage(c.UserContext(), claims.UserID, input.Language); err != nil {
		return utils.InternalError(c, "Failed to save language")
	}

	if user, err := h.userRepo.GetByID(claims.UserID); err == nil {
		user.Language = input.Language
		if err := h.userRepo.Update(user); err != nil {
			log.Printf("Language persist failed for user %d: %v", user.ID, err)
		}
	}

	return utils.Success(c, fiber.Map{
		"language": input.Language,
	})
}

// GetTranslations returns the fully resolved text table for a language.
// Untranslated keys fall back to English, then echo the key itself.
func (h *ProfileHandler) GetTranslations(c *fiber.Ctx) error {
	lang := c.Params("lang")
	return utils.Success(c, fiber.Map{
		"language":     lang,
		"translations": i18n.Table(lang),
	})
}
