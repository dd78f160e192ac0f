package handlers

import (
	"strconv"

	"fixmycity/internal/models"
	"fixmycity/internal/services/notification"
	"fixmycity/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type NotificationHandler struct {
	notificationService notification.Service
}

func NewNotificationHandler(notificationService notification.Service) *NotificationHandler {
	return &NotificationHandler{
		notificationService: notificationService,
	}
}

// ListNotifications returns the viewer's notifications, newest first.
func (h *NotificationHandler) ListNotifications(c *fiber.Ctx) error {
	claims, ok := c.Locals("claims").(*models.UserClaims)
	if !ok {
		return utils.Unauthorized(c, "Invalid claims")
	}

	notifications, err := h.notificationService.List(claims.UserID)
	if err != nil {
		return utils.InternalError(c, "Failed to fetch notifications")
	}

	unread := 0
	for _, n := range notifications {
		if n.Unread {
			unread++
		}
	}

	return utils.Success(c, fiber.Map{
		"notifications": notifications,
		"unread":        unread,
	})
}

// MarkRead marks one notification as read.
func (h *NotificationHandler) MarkRead(c *fiber.Ctx) error {
	claims, ok := c.Locals("claims").(*models.UserClaims)
	if !ok {
		return utils.Unauthorized(c, "Invalid claims")
	}

	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.BadRequest(c, "Invalid notification ID")
	}

	if err := h.notificationService.MarkRead(uint(id), claims.UserID); err != nil {
		return utils.InternalError(c, "Failed to mark notification read")
	}

	return utils.Success(c, fiber.Map{
		"message": "Notification marked read",
	})
}

// MarkAllRead marks every notification of the viewer as read.
func (h *NotificationHandler) MarkAllRead(c *fiber.Ctx) error {
	claims, ok := c.Locals("claims").(*models.UserClaims)
	if !ok {
		return utils.Unauthorized(c, "Invalid claims")
	}

	if err := h.notificationService.MarkAllRead(claims.UserID); err != nil {
		return utils.InternalError(c, "Failed to mark notifications read")
	}

	return utils.Success(c, fiber.Map{
		"message": "All notifications marked read",
	})
}
