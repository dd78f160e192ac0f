package handlers

import (
	"fixmycity/internal/models"
	"fixmycity/internal/services/directory"
	"fixmycity/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type DirectoryHandler struct {
	directoryService directory.Service
}

func NewDirectoryHandler(directoryService directory.Service) *DirectoryHandler {
	return &DirectoryHandler{
		directoryService: directoryService,
	}
}

// ListServices returns the service categories, optionally filtered by a
// search query.
func (h *DirectoryHandler) ListServices(c *fiber.Ctx) error {
	query := c.Query("q")

	var categories []models.ServiceCategory
	if query != "" {
		categories = h.directoryService.Search(query)
	} else {
		categories = h.directoryService.Categories()
	}

	return utils.Success(c, fiber.Map{
		"categories": categories,
		"total":      h.directoryService.TotalServices(),
	})
}

// ListLocations returns the selectable sectors and zones.
func (h *DirectoryHandler) ListLocations(c *fiber.Ctx) error {
	return utils.Success(c, fiber.Map{
		"locations": models.Locations,
	})
}

// EmergencyContacts returns the emergency service numbers.
func (h *DirectoryHandler) EmergencyContacts(c *fiber.Ctx) error {
	return utils.Success(c, fiber.Map{
		"services": h.directoryService.Emergency(),
	})
}

// ListSchemes returns active government schemes.
func (h *DirectoryHandler) ListSchemes(c *fiber.Ctx) error {
	schemes, err := h.directoryService.Schemes()
	if err != nil {
		return utils.InternalError(c, "Failed to fetch schemes")
	}

	return utils.Success(c, fiber.Map{
		"schemes": schemes,
	})
}

// ListAnnouncements returns municipal announcements, newest first.
func (h *DirectoryHandler) ListAnnouncements(c *fiber.Ctx) error {
	announcements, err := h.directoryService.Announcements()
	if err != nil {
		return utils.InternalError(c, "Failed to fetch announcements")
	}

	return utils.Success(c, fiber.Map{
		"announcements": announcements,
	})
}
