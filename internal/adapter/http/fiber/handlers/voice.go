package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/edustaff/staffhub/internal/domain"
	"github.com/edustaff/staffhub/internal/ports"
)

type VoiceHandler struct {
	service ports.VoiceService
	log     *zap.Logger
}

func NewVoiceHandler(service ports.VoiceService, log *zap.Logger) *VoiceHandler {
	return &VoiceHandler{
		service: service,
		log:     log,
	}
}

func (h *VoiceHandler) CreateTranscription(c *fiber.Ctx) error {
	var transcription domain.VoiceTranscription
	if err := c.BodyParser(&transcription); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	created, err := h.service.CreateTranscription(c.Context(), &transcription)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *VoiceHandler) GetTranscription(c *fiber.Ctx) error {
	id := c.Params("id")
	transcription, err := h.service.GetTranscription(c.Context(), id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if transcription == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Voice transcription not found"})
	}
	return c.JSON(transcription)
}

func (h *VoiceHandler) ListTranscriptionsByStaff(c *fiber.Ctx) error {
	staffID := c.Params("staffId")
	transcriptions, err := h.service.ListTranscriptionsByStaff(c.Context(), staffID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(transcriptions)
}

func (h *VoiceHandler) DeleteTranscription(c *fiber.Ctx) error {
	id := c.Params("id")
	deleted, err := h.service.DeleteTranscription(c.Context(), id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if !deleted {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Voice transcription not found"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

type ProcessTemplateRequest struct {
	Transcription string `json:"transcription"`
	StaffID       string `json:"staff_id"`
}

// ProcessTemplate runs the transcript through the extraction pipeline.
// An unmatched transcript is a normal 200 response with zero confidence.
func (h *VoiceHandler) ProcessTemplate(c *fiber.Ctx) error {
	var req ProcessTemplateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	result, err := h.service.ProcessVoiceToTemplate(c.Context(), req.Transcription, req.StaffID)
	if err != nil {
		h.log.Error("Failed to process voice to template", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(result)
}

func (h *VoiceHandler) CreateConversion(c *fiber.Ctx) error {
	var conversion domain.VoiceToTemplateConversion
	if err := c.BodyParser(&conversion); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	created, err := h.service.CreateConversion(c.Context(), &conversion)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *VoiceHandler) GetConversion(c *fiber.Ctx) error {
	id := c.Params("id")
	conversion, err := h.service.GetConversion(c.Context(), id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if conversion == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Conversion not found"})
	}
	return c.JSON(conversion)
}

func (h *VoiceHandler) ListConversionsByStaff(c *fiber.Ctx) error {
	staffID := c.Params("staffId")
	conversions, err := h.service.ListConversionsByStaff(c.Context(), staffID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(conversions)
}

func (h *VoiceHandler) DeleteConversion(c *fiber.Ctx) error {
	id := c.Params("id")
	deleted, err := h.service.DeleteConversion(c.Context(), id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if !deleted {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Conversion not found"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
