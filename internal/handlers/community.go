package handlers

import (
	"errors"
	"log"

	"fixmycity/internal/models"
	"fixmycity/internal/repositories"
	"fixmycity/internal/services/community"
	"fixmycity/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type CommunityHandler struct {
	communityService community.Service
}

func NewCommunityHandler(communityService community.Service) *CommunityHandler {
	return &CommunityHandler{
		communityService: communityService,
	}
}

// ListGroups returns all community groups with the viewer's joined flags.
func (h *CommunityHandler) ListGroups(c *fiber.Ctx) error {
	claims, ok := c.Locals("claims").(*models.UserClaims)
	if !ok {
		return utils.Unauthorized(c, "Invalid claims")
	}

	groups, err := h.communityService.ListGroups(claims.UserID)
	if err != nil {
		log.Printf("Failed to list groups: %v", err)
		return utils.InternalError(c, "Failed to fetch groups")
	}

	return utils.Success(c, fiber.Map{
		"groups": groups,
	})
}

// ToggleMembership joins or leaves a group for the viewer.
func (h *CommunityHandler) ToggleMembership(c *fiber.Ctx) error {
	claims, ok := c.Locals("claims").(*models.UserClaims)
	if !ok {
		return utils.Unauthorized(c, "Invalid claims")
	}

	group, err := h.communityService.ToggleMembership(claims.UserID, c.Params("id"))
	if err != nil {
		if errors.Is(err, repositories.ErrGroupNotFound) {
			return utils.NotFound(c, "Group not found")
		}
		log.Printf("Membership toggle failed for group %s: %v", c.Params("id"), err)
		return utils.InternalError(c, "Failed to update membership")
	}

	return utils.Success(c, fiber.Map{
		"group": group,
	})
}

// ListPosts returns group posts, newest first. An empty id segment is not
// routable, so the all-groups feed lives on its own route.
func (h *CommunityHandler) ListPosts(c *fiber.Ctx) error {
	posts, err := h.communityService.ListPosts(c.Params("id"))
	if err != nil {
		return utils.InternalError(c, "Failed to fetch posts")
	}

	return utils.Success(c, fiber.Map{
		"posts": posts,
	})
}

// ListAllPosts returns the combined feed across every group.
func (h *CommunityHandler) ListAllPosts(c *fiber.Ctx) error {
	posts, err := h.communityService.ListPosts("")
	if err != nil {
		return utils.InternalError(c, "Failed to fetch posts")
	}

	return utils.Success(c, fiber.Map{
		"posts": posts,
	})
}
