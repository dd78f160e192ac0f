package handlers

import (
	"log"

	"fixmycity/internal/models"
	"fixmycity/internal/services/leaderboard"
	"fixmycity/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type LeaderboardHandler struct {
	leaderboardService leaderboard.Service
}

func NewLeaderboardHandler(leaderboardService leaderboard.Service) *LeaderboardHandler {
	return &LeaderboardHandler{
		leaderboardService: leaderboardService,
	}
}

// TopContributors returns the ranked contributor list, flagging the viewer's
// own row. Query param: limit.
func (h *LeaderboardHandler) TopContributors(c *fiber.Ctx) error {
	claims, ok := c.Locals("claims").(*models.UserClaims)
	if !ok {
		return utils.Unauthorized(c, "Invalid claims")
	}

	contributors, err := h.leaderboardService.TopContributors(claims.UserID, c.QueryInt("limit"))
	if err != nil {
		log.Printf("Failed to rank contributors: %v", err)
		return utils.InternalError(c, "Failed to fetch leaderboard")
	}

	rank, err := h.leaderboardService.Rank(claims.UserID)
	if err != nil {
		return utils.InternalError(c, "Failed to fetch leaderboard")
	}

	return utils.Success(c, fiber.Map{
		"contributors": contributors,
		"your_rank":    rank,
	})
}

// MonthlyHeroes lists the highlighted citizens for the current month.
func (h *LeaderboardHandler) MonthlyHeroes(c *fiber.Ctx) error {
	heroes, err := h.leaderboardService.MonthlyHeroes()
	if err != nil {
		return utils.InternalError(c, "Failed to fetch monthly heroes")
	}

	return utils.Success(c, fiber.Map{
		"heroes": heroes,
	})
}

// Summary aggregates portal-wide participation numbers.
func (h *LeaderboardHandler) Summary(c *fiber.Ctx) error {
	summary, err := h.leaderboardService.Summary()
	if err != nil {
		return utils.InternalError(c, "Failed to fetch summary")
	}

	return utils.Success(c, summary)
}
