package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/edustaff/staffhub/internal/domain"
	"github.com/edustaff/staffhub/internal/ports"
	"github.com/edustaff/staffhub/internal/service/staff"
)

type StaffHandler struct {
	service ports.StaffService
	log     *zap.Logger
}

func NewStaffHandler(service ports.StaffService, log *zap.Logger) *StaffHandler {
	return &StaffHandler{
		service: service,
		log:     log,
	}
}

func (h *StaffHandler) Create(c *fiber.Ctx) error {
	var profile domain.StaffProfile
	if err := c.BodyParser(&profile); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	created, err := h.service.CreateProfile(c.Context(), &profile)
	if err != nil {
		if errors.Is(err, staff.ErrEmailTaken) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *StaffHandler) List(c *fiber.Ctx) error {
	if email := c.Query("email"); email != "" {
		profile, err := h.service.GetProfileByEmail(c.Context(), email)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		if profile == nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Staff profile not found"})
		}
		return c.JSON(profile)
	}

	profiles, err := h.service.ListProfiles(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(profiles)
}

func (h *StaffHandler) Get(c *fiber.Ctx) error {
	id := c.Params("id")
	profile, err := h.service.GetProfile(c.Context(), id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if profile == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Staff profile not found"})
	}
	return c.JSON(profile)
}

func (h *StaffHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	var update domain.StaffProfileUpdate
	if err := c.BodyParser(&update); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	profile, err := h.service.UpdateProfile(c.Context(), id, &update)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if profile == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Staff profile not found"})
	}
	return c.JSON(profile)
}

func (h *StaffHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	deleted, err := h.service.DeleteProfile(c.Context(), id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if !deleted {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Staff profile not found"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
