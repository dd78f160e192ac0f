package handlers

import (
	"errors"
	"log"

	"fixmycity/internal/models"
	"fixmycity/internal/repositories"
	"fixmycity/internal/services/complaint"
	"fixmycity/internal/share"
	"fixmycity/internal/uploads"
	"fixmycity/internal/utils"
	"fixmycity/internal/validation"
	"fixmycity/internal/voice"

	"github.com/gofiber/fiber/v2"
)

type ComplaintHandler struct {
	complaintService complaint.Service
	userRepo         repositories.UserRepository
	shareBuilder     share.Builder
}

func NewComplaintHandler(complaintService complaint.Service, userRepo repositories.UserRepository, shareBuilder share.Builder) *ComplaintHandler {
	return &ComplaintHandler{
		complaintService: complaintService,
		userRepo:         userRepo,
		shareBuilder:     shareBuilder,
	}
}

// ListComplaints returns complaints newest first, with the viewer's vote flag
// attached. Query params: mine, category, status.
func (h *ComplaintHandler) ListComplaints(c *fiber.Ctx) error {
	claims, ok := c.Locals("claims").(*models.UserClaims)
	if !ok {
		return utils.Unauthorized(c, "Invalid claims")
	}

	filter := complaint.ListFilter{
		Mine:     c.QueryBool("mine"),
		Category: c.Query("category"),
		Status:   c.Query("status"),
	}

	views, err := h.complaintService.List(filter, claims.UserID)
	if err != nil {
		log.Printf("Failed to list complaints: %v", err)
		return utils.InternalError(c, "Failed to fetch complaints")
	}

	return utils.Success(c, fiber.Map{
		"complaints": views,
		"count":      len(views),
	})
}

// GetComplaint returns a single complaint by its public ID.
func (h *ComplaintHandler) GetComplaint(c *fiber.Ctx) error {
	claims, ok := c.Locals("claims").(*models.UserClaims)
	if !ok {
		return utils.Unauthorized(c, "Invalid claims")
	}

	view, err := h.complaintService.Get(c.Params("id"), claims.UserID)
	if err != nil {
		if errors.Is(err, repositories.ErrComplaintNotFound) {
			return utils.NotFound(c, "Complaint not found")
		}
		return utils.InternalError(c, "Failed to fetch complaint")
	}

	return utils.Success(c, view)
}

// CreateComplaint registers a new complaint for the logged-in citizen.
func (h *ComplaintHandler) CreateComplaint(c *fiber.Ctx) error {
	claims, ok := c.Locals("claims").(*models.UserClaims)
	if !ok {
		return utils.Unauthorized(c, "Invalid claims")
	}

	var input models.NewComplaintInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	user, err := h.userRepo.GetByID(claims.UserID)
	if err != nil {
		return utils.Unauthorized(c, "Unknown user")
	}

	created, err := h.complaintService.Create(&input, claims, user.Name)
	if err != nil {
		if validation.IsComplaintValidationError(err) {
			return utils.BadRequest(c, err.Error())
		}
		log.Printf("Failed to create complaint: %v", err)
		return utils.InternalError(c, "Failed to submit complaint")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"complaint": created,
	})
}

// ToggleVote flips the viewer's vote on a complaint. A vanished complaint is
// answered with the current list state rather than an error.
func (h *ComplaintHandler) ToggleVote(c *fiber.Ctx) error {
	claims, ok := c.Locals("claims").(*models.UserClaims)
	if !ok {
		return utils.Unauthorized(c, "Invalid claims")
	}

	view, err := h.complaintService.ToggleVote(claims.UserID, c.Params("id"))
	if err != nil {
		log.Printf("Vote toggle failed for %s: %v", c.Params("id"), err)
		return utils.InternalError(c, "Failed to record vote")
	}
	if view == nil {
		return utils.Success(c, fiber.Map{"complaint": nil})
	}

	return utils.Success(c, fiber.Map{"complaint": view})
}

// ShareLinks returns the platform share links for a complaint.
func (h *ComplaintHandler) ShareLinks(c *fiber.Ctx) error {
	claims, ok := c.Locals("claims").(*models.UserClaims)
	if !ok {
		return utils.Unauthorized(c, "Invalid claims")
	}

	view, err := h.complaintService.Get(c.Params("id"), claims.UserID)
	if err != nil {
		if errors.Is(err, repositories.ErrComplaintNotFound) {
			return utils.NotFound(c, "Complaint not found")
		}
		return utils.InternalError(c, "Failed to fetch complaint")
	}

	return utils.Success(c, fiber.Map{
		"text":  h.shareBuilder.ShareText(&view.Complaint),
		"url":   h.shareBuilder.ComplaintURL(&view.Complaint),
		"links": h.shareBuilder.Links(&view.Complaint),
	})
}

// DraftFromVoice splits a spoken transcript into a title and description
// draft for the complaint form.
func (h *ComplaintHandler) DraftFromVoice(c *fiber.Ctx) error {
	var input struct {
		Transcript string `json:"transcript"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	title, description, ok := voice.Split(input.Transcript)
	if !ok {
		return utils.BadRequest(c, "Transcript is empty")
	}

	return utils.Success(c, fiber.Map{
		"title":       title,
		"description": description,
	})
}

// UploadAttachment validates an evidence file for a complaint draft.
func (h *ComplaintHandler) UploadAttachment(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return utils.BadRequest(c, "No file provided")
	}

	existing := c.QueryInt("existing")
	if err := uploads.ValidateComplaintCount(existing, 1); err != nil {
		return utils.BadRequest(c, err.Error())
	}
	if err := uploads.ValidateComplaintFile(file.Filename, file.Header.Get("Content-Type"), file.Size); err != nil {
		return utils.BadRequest(c, err.Error())
	}

	return utils.Success(c, fiber.Map{
		"file_name": file.Filename,
		"size":      file.Size,
	})
}

// UpdateStatus moves a complaint forward through its lifecycle. Admin only.
func (h *ComplaintHandler) UpdateStatus(c *fiber.Ctx) error {
	var input struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	if err := h.complaintService.UpdateStatus(c.Params("id"), input.Status); err != nil {
		switch {
		case errors.Is(err, repositories.ErrComplaintNotFound):
			return utils.NotFound(c, "Complaint not found")
		case errors.Is(err, complaint.ErrUnknownStatus),
			errors.Is(err, complaint.ErrInvalidTransition):
			return utils.BadRequest(c, err.Error())
		}
		return utils.InternalError(c, "Failed to update status")
	}

	return utils.Success(c, fiber.Map{
		"message": "Status updated",
	})
}

// Respond records an official reply on a complaint. Admin only.
func (h *ComplaintHandler) Respond(c *fiber.Ctx) error {
	var input struct {
		Response string `json:"response"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}
	if input.Response == "" {
		return utils.BadRequest(c, "Response is required")
	}

	if err := h.complaintService.Respond(c.Params("id"), input.Response); err != nil {
		if errors.Is(err, repositories.ErrComplaintNotFound) {
			return utils.NotFound(c, "Complaint not found")
		}
		return utils.InternalError(c, "Failed to record response")
	}

	return utils.Success(c, fiber.Map{
		"message": "Response recorded",
	})
}
