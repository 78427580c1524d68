package handlers

import (
	"context"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/edustaff/staffhub/internal/domain"
	"github.com/edustaff/staffhub/internal/ports"
	"github.com/edustaff/staffhub/internal/service/email"
)

type DashboardHandler struct {
	service ports.DashboardService
	staff   ports.StaffService
	mailer  *email.Service // nil disables announcement emails
	log     *zap.Logger
}

func NewDashboardHandler(service ports.DashboardService, staff ports.StaffService, mailer *email.Service, log *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		service: service,
		staff:   staff,
		mailer:  mailer,
		log:     log,
	}
}

func (h *DashboardHandler) GetDashboardData(c *fiber.Ctx) error {
	staffID := c.Params("staffId")
	data, err := h.service.GetDashboardData(c.Context(), staffID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(data)
}

// Tasks

func (h *DashboardHandler) CreateTask(c *fiber.Ctx) error {
	var task domain.Task
	if err := c.BodyParser(&task); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	created, err := h.service.CreateTask(c.Context(), &task)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *DashboardHandler) ListTasksByStaff(c *fiber.Ctx) error {
	staffID := c.Params("staffId")
	tasks, err := h.service.ListTasksByStaff(c.Context(), staffID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(tasks)
}

func (h *DashboardHandler) CompleteTask(c *fiber.Ctx) error {
	id := c.Params("id")
	task, err := h.service.CompleteTask(c.Context(), id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if task == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Task not found"})
	}
	return c.JSON(task)
}

// Activities

func (h *DashboardHandler) CreateActivity(c *fiber.Ctx) error {
	var activity domain.Activity
	if err := c.BodyParser(&activity); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	created, err := h.service.CreateActivity(c.Context(), &activity)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *DashboardHandler) ListRecentActivities(c *fiber.Ctx) error {
	staffID := c.Params("staffId")
	limit, err := strconv.Atoi(c.Query("limit", "10"))
	if err != nil || limit <= 0 {
		limit = 10
	}

	activities, err := h.service.ListRecentActivities(c.Context(), staffID, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(activities)
}

// Announcements

func (h *DashboardHandler) CreateAnnouncement(c *fiber.Ctx) error {
	var announcement domain.Announcement
	if err := c.BodyParser(&announcement); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	created, err := h.service.CreateAnnouncement(c.Context(), &announcement)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if c.QueryBool("notify") && h.mailer != nil {
		go h.broadcastAnnouncement(created)
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *DashboardHandler) ListRecentAnnouncements(c *fiber.Ctx) error {
	limit, err := strconv.Atoi(c.Query("limit", "10"))
	if err != nil || limit <= 0 {
		limit = 10
	}

	announcements, err := h.service.ListRecentAnnouncements(c.Context(), limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(announcements)
}

// broadcastAnnouncement emails the announcement to every staff profile.
// Runs in the background; failures are logged, not surfaced.
func (h *DashboardHandler) broadcastAnnouncement(announcement *domain.Announcement) {
	ctx := context.Background()

	profiles, err := h.staff.ListProfiles(ctx)
	if err != nil {
		h.log.Warn("Failed to list staff for announcement broadcast", zap.Error(err))
		return
	}

	recipients := make([]string, 0, len(profiles))
	for _, p := range profiles {
		if p.Email != "" {
			recipients = append(recipients, p.Email)
		}
	}
	if len(recipients) == 0 {
		return
	}

	if err := h.mailer.SendAnnouncement(ctx, recipients, announcement); err != nil {
		h.log.Warn("Announcement broadcast incomplete", zap.Error(err))
	}
}
