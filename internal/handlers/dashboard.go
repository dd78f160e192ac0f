package handlers

import (
	"log"

	"fixmycity/internal/models"
	"fixmycity/internal/services/dashboard"
	"fixmycity/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	dashboardService dashboard.Service
}

func NewDashboardHandler(dashboardService dashboard.Service) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// GetDashboard returns the viewer's stat tiles and recent activity feed.
func (h *DashboardHandler) GetDashboard(c *fiber.Ctx) error {
	claims, ok := c.Locals("claims").(*models.UserClaims)
	if !ok {
		return utils.Unauthorized(c, "Invalid claims")
	}

	stats, err := h.dashboardService.Stats(claims.UserID)
	if err != nil {
		log.Printf("Failed to build dashboard stats: %v", err)
		return utils.InternalError(c, "Failed to fetch dashboard")
	}

	activity, err := h.dashboardService.RecentActivity(claims.UserID)
	if err != nil {
		log.Printf("Failed to build activity feed: %v", err)
		return utils.InternalError(c, "Failed to fetch dashboard")
	}

	return utils.Success(c, fiber.Map{
		"stats":    stats,
		"activity": activity,
	})
}
