package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/edustaff/staffhub/internal/domain"
	"github.com/edustaff/staffhub/internal/ports"
)

type AttendanceHandler struct {
	service ports.AttendanceService
	log     *zap.Logger
}

func NewAttendanceHandler(service ports.AttendanceService, log *zap.Logger) *AttendanceHandler {
	return &AttendanceHandler{
		service: service,
		log:     log,
	}
}

func (h *AttendanceHandler) Create(c *fiber.Ctx) error {
	var record domain.AttendanceRecord
	if err := c.BodyParser(&record); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	created, err := h.service.Create(c.Context(), &record)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *AttendanceHandler) Get(c *fiber.Ctx) error {
	id := c.Params("id")
	record, err := h.service.Get(c.Context(), id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if record == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Attendance record not found"})
	}
	return c.JSON(record)
}

func (h *AttendanceHandler) ListByStaff(c *fiber.Ctx) error {
	staffID := c.Params("staffId")

	if date := c.Query("date"); date != "" {
		records, err := h.service.ListByDate(c.Context(), staffID, date)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(records)
	}

	records, err := h.service.ListByStaff(c.Context(), staffID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(records)
}

func (h *AttendanceHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	var update domain.AttendanceRecordUpdate
	if err := c.BodyParser(&update); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	record, err := h.service.Update(c.Context(), id, &update)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if record == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Attendance record not found"})
	}
	return c.JSON(record)
}

func (h *AttendanceHandler) UpdateStudentStatus(c *fiber.Ctx) error {
	recordID := c.Params("id")
	studentID := c.Params("studentId")
	var req struct {
		Status domain.AttendanceStatus `json:"status"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	record, err := h.service.UpdateStudentStatus(c.Context(), recordID, studentID, req.Status)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if record == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Attendance record or student not found"})
	}
	return c.JSON(record)
}

func (h *AttendanceHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	deleted, err := h.service.Delete(c.Context(), id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if !deleted {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Attendance record not found"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *AttendanceHandler) Stats(c *fiber.Ctx) error {
	staffID := c.Params("staffId")
	stats, err := h.service.Stats(c.Context(), staffID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(stats)
}
