package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/edustaff/staffhub/internal/domain"
	"github.com/edustaff/staffhub/internal/ports"
)

type TemplateHandler struct {
	service ports.TemplateService
	log     *zap.Logger
}

func NewTemplateHandler(service ports.TemplateService, log *zap.Logger) *TemplateHandler {
	return &TemplateHandler{
		service: service,
		log:     log,
	}
}

func (h *TemplateHandler) Create(c *fiber.Ctx) error {
	var template domain.Template
	if err := c.BodyParser(&template); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	created, err := h.service.Create(c.Context(), &template)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *TemplateHandler) List(c *fiber.Ctx) error {
	if category := c.Query("category"); category != "" {
		templates, err := h.service.ListByCategory(c.Context(), category)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(templates)
	}

	templates, err := h.service.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(templates)
}

func (h *TemplateHandler) Get(c *fiber.Ctx) error {
	id := c.Params("id")
	template, err := h.service.Get(c.Context(), id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if template == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Template not found"})
	}
	return c.JSON(template)
}

func (h *TemplateHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	deleted, err := h.service.Delete(c.Context(), id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if !deleted {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Template not found"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Submissions

func (h *TemplateHandler) CreateSubmission(c *fiber.Ctx) error {
	var submission domain.FormSubmission
	if err := c.BodyParser(&submission); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	created, err := h.service.CreateSubmission(c.Context(), &submission)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *TemplateHandler) GetSubmission(c *fiber.Ctx) error {
	id := c.Params("id")
	submission, err := h.service.GetSubmission(c.Context(), id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if submission == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Submission not found"})
	}
	return c.JSON(submission)
}

func (h *TemplateHandler) ListSubmissionsByStaff(c *fiber.Ctx) error {
	staffID := c.Params("staffId")
	submissions, err := h.service.ListSubmissionsByStaff(c.Context(), staffID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(submissions)
}

func (h *TemplateHandler) UpdateSubmission(c *fiber.Ctx) error {
	id := c.Params("id")
	var update domain.FormSubmissionUpdate
	if err := c.BodyParser(&update); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	submission, err := h.service.UpdateSubmission(c.Context(), id, &update)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if submission == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Submission not found"})
	}
	return c.JSON(submission)
}

func (h *TemplateHandler) DeleteSubmission(c *fiber.Ctx) error {
	id := c.Params("id")
	deleted, err := h.service.DeleteSubmission(c.Context(), id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if !deleted {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Submission not found"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
